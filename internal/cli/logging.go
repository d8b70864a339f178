package cli

import (
	"io"
	"log/slog"
	"strings"
)

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func joinNames(names []string) string {
	return strings.Join(names, " | ")
}
