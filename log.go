package beanfolio

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger creates a console logger writing to w at the given level
// ("debug", "info", "warn", "error"). Unknown levels mean "info".
func NewLogger(level string, w io.Writer) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	output := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
	}
	return zerolog.New(output).
		Level(lvl).
		With().
		Timestamp().
		Logger()
}
