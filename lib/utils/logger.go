package utils

import (
	"io"
	"log/slog"

	"github.com/lmittmann/tint"
	"github.com/pkg/errors"
)

// NewLogger creates the diagnostic logger. level is one of debug, info, warn
// or error, in any case.
func NewLogger(w io.Writer, level string) (*slog.Logger, error) {
	var l slog.Level
	err := l.UnmarshalText([]byte(level))
	if err != nil {
		return nil, errors.Wrapf(err, "invalid log level %v", level)
	}

	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      l,
		TimeFormat: "15:04:05",
	})), nil
}
