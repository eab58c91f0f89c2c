// Package logging configures the client's zerolog output. The terminal
// belongs to the TUI, so logs go to a file under the config dir.
package logging

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// Open returns a logger appending to path. Any failure yields a
// disabled logger: the client never refuses to run over logging.
func Open(path string) zerolog.Logger {
	if path == "" {
		return zerolog.Nop()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return zerolog.Nop()
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return zerolog.Nop()
	}
	return zerolog.New(f).With().Timestamp().Logger()
}

// Level parses TASKDECK_LOG_LEVEL, defaulting to info.
func Level() zerolog.Level {
	lvl, err := zerolog.ParseLevel(os.Getenv("TASKDECK_LOG_LEVEL"))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}
