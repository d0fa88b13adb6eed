// Package logger holds the process-wide zerolog logger.
//
// Output goes to stderr: in MCP mode stdout carries the JSON-RPC stream and
// must not receive log lines.
package logger

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	mu    sync.RWMutex
	base  zerolog.Logger
	ready bool
)

// Init configures the global JSON logger on stderr.
//
// Environment variables (optional):
//   - LOG_LEVEL: debug|info|warn|error|disabled (default: info)
//   - LOG_PRETTY: true|false (default: false)
func Init() {
	var w io.Writer = os.Stderr
	if strings.EqualFold(getenv("LOG_PRETTY", "false"), "true") {
		w = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	}
	InitWithWriter(w)
}

// InitWithWriter is Init with an explicit destination.
func InitWithWriter(w io.Writer) {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	l := zerolog.New(w).With().
		Timestamp().
		Str("service", "statusinvest-mcp").
		Logger().
		Level(parseLevel(getenv("LOG_LEVEL", "info")))

	mu.Lock()
	base = l
	ready = true
	mu.Unlock()
}

// L returns the global logger, initializing it on first use.
func L() *zerolog.Logger {
	mu.RLock()
	ok := ready
	mu.RUnlock()
	if !ok {
		Init()
	}

	mu.RLock()
	defer mu.RUnlock()
	l := base
	return &l
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error", "err":
		return zerolog.ErrorLevel
	case "disabled", "off", "none":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}
