package config

import (
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/ironsheep/shutbox-mcp/internal/detection"
)

// NewLogger builds the process logger. Output goes to w (stderr in practice:
// stdout carries the MCP protocol and the one-shot report).
func NewLogger(w io.Writer, level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("log level %q: %w", level, err)
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: true}).
		Level(lvl).
		With().Timestamp().
		Logger(), nil
}

// LogRejections writes one warning per rejected detection.
func LogRejections(logger zerolog.Logger, rejections []error) {
	for _, err := range rejections {
		var rej *detection.RejectionError
		if errors.As(err, &rej) {
			logger.Warn().
				Str("detector", rej.Kind.String()).
				Str("label", rej.Label).
				Int("class_index", rej.ClassIndex).
				Msg(rej.Err.Error())
			continue
		}
		logger.Warn().Err(err).Msg("detection rejected")
	}
}
