// Package logging configures the process-wide zerolog logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/rs/zerolog/pkgerrors"
)

// Setup parses level and installs the global logger.
// Human-readable console output is used in development; everywhere else logs are
// emitted as one JSON object per line so the platform's log shipper can parse them.
func Setup(level string, console bool) error {
	logger, err := New(os.Stderr, level, console)
	if err != nil {
		return err
	}
	log.Logger = logger
	return nil
}

// New builds a logger writing to w at the given level.
func New(w io.Writer, level string, console bool) (zerolog.Logger, error) {
	parsedLevel, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("failed to parse log level: %w", err)
	}

	// Errors wrapped with github.com/pkg/errors carry a stack; .Stack() on an event renders it.
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack

	output := w
	if console {
		output = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	return zerolog.New(output).Level(parsedLevel).With().Timestamp().Logger(), nil
}
