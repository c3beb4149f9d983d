package params

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	// LogFile receives structured logs in addition to the console. Empty
	// means console only. Report output always goes to stdout regardless.
	LogFile string
	// JournalFile receives a timestamped transcript of every input line.
	// Empty disables the journal.
	JournalFile string
	// Verbose enables debug-level logging.
	Verbose bool
}

func Default() Config {
	return Config{
		LogFile:     "",
		JournalFile: "",
		Verbose:     false,
	}
}

// LoadFromEnv loads configuration from a .env file (if present) and
// environment variables. Priority: ENV > .env file > defaults.
func LoadFromEnv(envPath string) Config {
	cfg := Default()

	if envPath != "" {
		_ = godotenv.Load(envPath)
	} else {
		_ = godotenv.Load() // .env in current directory, optional
	}

	if v := os.Getenv("LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
	if v := os.Getenv("JOURNAL_FILE"); v != "" {
		cfg.JournalFile = v
	}
	if v := os.Getenv("VERBOSE"); v != "" {
		cfg.Verbose = v == "true"
	}

	return cfg
}
