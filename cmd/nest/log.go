package main

import (
	"io"
	"log/slog"
	"os"
)

// newLogger returns a text logger without timestamps. Progress is
// logged at info level, which is dropped unless verbose.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}))
}

var (
	theLog     = newLogger(os.Stderr, false)
	verboseLog = newLogger(os.Stderr, true)
)
