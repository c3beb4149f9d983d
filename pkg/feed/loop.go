package feed

import (
	"bufio"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/quantrove/matchbook/pkg/engine"
	"github.com/quantrove/matchbook/pkg/storage"
)

// Loop is the line-oriented read loop around one engine instance. It owns
// the only reference to the engine, so processing is strictly sequential.
type Loop struct {
	eng     *engine.Engine
	journal storage.Journal
	log     *zap.SugaredLogger
}

func NewLoop(eng *engine.Engine, journal storage.Journal, log *zap.SugaredLogger) *Loop {
	return &Loop{eng: eng, journal: journal, log: log}
}

// Run reads one operation per line from r until end-of-input, writing report
// and diagnostic lines to w. A line that fails to parse produces one
// diagnostic and leaves the engine untouched; processing resumes with the
// next line. End-of-input terminates normally.
func (l *Loop) Run(r io.Reader, w io.Writer) error {
	sc := bufio.NewScanner(r)
	lines := 0
	rejected := 0
	for sc.Scan() {
		line := sc.Text()
		lines++
		l.journal.Append(line)

		op, err := Parse(line)
		if err != nil {
			rejected++
			fmt.Fprintln(w, err.Error())
			l.log.Warnw("operation_rejected", "line", line, "err", err)
			continue
		}
		for _, rep := range l.eng.Process(op) {
			fmt.Fprintln(w, rep)
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	l.log.Infow("feed_drained", "lines", lines, "rejected", rejected)
	return nil
}
