package main

import (
	"log"
	"os"

	"github.com/quantrove/matchbook/params"
	"github.com/quantrove/matchbook/pkg/engine"
	"github.com/quantrove/matchbook/pkg/feed"
	"github.com/quantrove/matchbook/pkg/storage"
	"github.com/quantrove/matchbook/pkg/util"

	"go.uber.org/zap"
)

func main() {
	// Load config from .env file and environment variables
	cfg := params.LoadFromEnv("")

	var (
		logger *zap.Logger
		err    error
	)
	if cfg.LogFile != "" {
		logger, err = util.NewLoggerWithFile(cfg.LogFile, cfg.Verbose)
	} else {
		logger, err = util.NewLogger(cfg.Verbose)
	}
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	var journal storage.Journal = storage.NewNopJournal()
	if cfg.JournalFile != "" {
		fj, err := storage.NewFileJournal(cfg.JournalFile, util.RealClock{})
		if err != nil {
			sugar.Fatalw("journal_open_failed", "path", cfg.JournalFile, "err", err)
		}
		defer fj.Close()
		journal = fj
		sugar.Infow("journal_enabled", "path", cfg.JournalFile)
	}

	sugar.Infow("engine_starting", "log_file", cfg.LogFile, "verbose", cfg.Verbose)

	loop := feed.NewLoop(engine.New(), journal, sugar)
	if err := loop.Run(os.Stdin, os.Stdout); err != nil {
		sugar.Fatalw("feed_failed", "err", err)
	}
}
