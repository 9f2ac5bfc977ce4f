// Package logging configures the process-wide zerolog logger for pmc.
package logging

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	mu   sync.RWMutex
	root zerolog.Logger = zerolog.New(io.Discard)
)

// Setup initializes the root logger. Log output goes to stderr so it never
// interleaves with TUI rendering on stdout.
func Setup(debug bool) {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}

	writer := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}

	mu.Lock()
	root = zerolog.New(writer).Level(level).With().Timestamp().Logger()
	mu.Unlock()
}

// SetOutput redirects the root logger, keeping its level. Used by tests and
// by the TUI to route logs to a file while the alternate screen is active.
func SetOutput(w io.Writer) {
	mu.Lock()
	root = root.Output(w)
	mu.Unlock()
}

// Root returns the root logger.
func Root() zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return root
}

// Component returns a child logger tagged with a component name.
func Component(name string) zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return root.With().Str("component", name).Logger()
}
