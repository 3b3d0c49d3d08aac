// Package logger holds the process-wide structured logger. It discards
// everything until Setup is called.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"
)

type Config struct {
	Level  string // debug, info, warn or error; empty means warn
	Writer io.Writer
}

var (
	mu     sync.RWMutex
	global = discard()
)

// Setup installs a JSON logger writing to cfg.Writer and returns a func
// restoring the discard logger.
func Setup(cfg Config) (func(), error) {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return nil, err
	}
	w := cfg.Writer
	if w == nil {
		w = io.Discard
	}
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: level == slog.LevelDebug,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
				a.Value = slog.StringValue(a.Value.Time().UTC().Format(time.RFC3339Nano))
			}
			return a
		},
	})

	mu.Lock()
	global = slog.New(h)
	mu.Unlock()

	L().Debug("logger.initialized", "level", level.String())

	return func() {
		mu.Lock()
		defer mu.Unlock()
		global = discard()
	}, nil
}

// L returns the current logger.
func L() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "", "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("unknown log level %q", s)
}

func discard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
