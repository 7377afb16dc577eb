package logger

import (
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/miteshrathod09/sick-fits/internal/config"
)

// New builds the process logger from config. Console format is meant for
// development; everything else gets JSON.
func New(cfg config.Log) zerolog.Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil {
		level = zerolog.InfoLevel
	}

	logger := zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()
	if cfg.Format == "console" {
		logger = logger.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	return logger
}
