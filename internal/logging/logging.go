package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/lmittmann/tint"
)

// Init configures the global slog default with the given level and format.
// Format must be "text", "json" or "pretty". With no writers os.Stderr is
// used; with several, output is teed to all of them.
func Init(level slog.Level, format string, w ...io.Writer) {
	writer := combine(w)

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch format {
	case "json":
		handler = slog.NewJSONHandler(writer, opts)
	case "pretty":
		handler = tint.NewHandler(writer, &tint.Options{
			Level:      level,
			TimeFormat: "15:04:05",
		})
	default:
		handler = slog.NewTextHandler(writer, opts)
	}

	slog.SetDefault(slog.New(handler))
}

// New returns a logger with a "component" attribute for module-scoped logging.
func New(component string) *slog.Logger {
	return slog.Default().With(slog.String("component", component))
}

// ParseLevel maps a flag value to a slog level, defaulting to Info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func combine(w []io.Writer) io.Writer {
	var live []io.Writer
	for _, x := range w {
		if x != nil {
			live = append(live, x)
		}
	}
	switch len(live) {
	case 0:
		return os.Stderr
	case 1:
		return live[0]
	}
	return io.MultiWriter(live...)
}
