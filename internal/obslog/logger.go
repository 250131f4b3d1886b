// Package obslog sets up this harness's structured logging: zerolog to
// stderr for local runs, optionally tee'd to a rotating file via
// lumberjack when a log file path is configured.
package obslog

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures the root logger.
type Options struct {
	// Level is one of zerolog's level strings ("debug", "info", "warn",
	// "error"); empty defaults to "info".
	Level string
	// FilePath, if set, also writes JSON lines to a lumberjack-rotated
	// file at this path.
	FilePath string
}

// New builds the root logger. Every component-specific logger elsewhere in
// this tree derives from it via .With().Str("component", name).Logger(),
// so a single call here controls the whole process's log sink and level.
func New(opts Options) zerolog.Logger {
	level, err := zerolog.ParseLevel(opts.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var writers []io.Writer
	writers = append(writers, zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	if opts.FilePath != "" {
		writers = append(writers, &lumberjack.Logger{
			Filename:   opts.FilePath,
			MaxSize:    50, // megabytes
			MaxBackups: 5,
			MaxAge:     28, // days
			Compress:   true,
		})
	}

	return zerolog.New(io.MultiWriter(writers...)).Level(level).With().Timestamp().Logger()
}
