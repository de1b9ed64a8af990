package logger

import (
	"log/slog"
	"os"
	"strings"
)

// Log defaults to the stdlib logger so packages can log before Init runs
// (mostly in tests that never build the full app).
var Log = slog.Default()

// Init replaces Log with a JSON handler. Level comes from LOG_LEVEL
// (debug|info|warn|error), defaulting to info.
func Init() {
	level := slog.LevelInfo
	switch strings.ToLower(os.Getenv("LOG_LEVEL")) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})
	Log = slog.New(handler)
}
