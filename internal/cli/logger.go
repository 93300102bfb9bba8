package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// setupLogger configures the global zerolog logger from cfg and returns a
// cleanup that closes the log file and restores the previous logger.
// Logs go to errOut as console lines unless cfg.LogFile is set.
func setupLogger(cfg Config, errOut io.Writer) (func() error, error) {
	lvl, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("log level %q: %w", cfg.LogLevel, err)
	}

	prev := log.Logger
	var f *os.File
	var w io.Writer = zerolog.ConsoleWriter{Out: errOut, TimeFormat: time.Kitchen}
	if cfg.LogFile != "" {
		f, err = os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
	}

	log.Logger = zerolog.New(w).Level(lvl).With().Timestamp().Logger()

	return func() error {
		log.Logger = prev
		if f != nil {
			return f.Close()
		}
		return nil
	}, nil
}
