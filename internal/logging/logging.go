// Package logging adapts the l structured logger to the small interface used across notmytype.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/baditaflorin/l"

	"github.com/ppiankov/notmytype/internal/model"
)

// Logger is the structured logger used by collaborators and the server
type Logger interface {
	Debug(msg string, keysAndValues ...interface{})
	Info(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
	Error(msg string, keysAndValues ...interface{})
	Close() error
}

type level int

const (
	levelDebug level = iota
	levelInfo
	levelWarn
	levelError
)

func parseLevel(s string) level {
	switch strings.ToLower(s) {
	case "debug":
		return levelDebug
	case "warn", "warning":
		return levelWarn
	case "error":
		return levelError
	default:
		return levelInfo
	}
}

// leveled filters messages below the configured level before handing them to l
type leveled struct {
	logger l.Logger
	min    level
	closer io.Closer
}

// New creates a logger from configuration. Output goes to stderr unless a file is set.
func New(cfg model.LogConfig) (Logger, error) {
	var output io.Writer = os.Stderr
	var closer io.Closer

	if cfg.File != "" {
		file, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		output = file
		closer = file
	}

	logger, err := l.NewStandardFactory().CreateLogger(l.Config{
		Output:      output,
		JsonFormat:  cfg.JSON,
		AsyncWrite:  false,
		BufferSize:  64 * 1024,
		MaxFileSize: 10 * 1024 * 1024,
		MaxBackups:  3,
		AddSource:   false,
		Metrics:     false,
	})
	if err != nil {
		if closer != nil {
			_ = closer.Close()
		}
		return nil, fmt.Errorf("create logger: %w", err)
	}

	return &leveled{logger: logger, min: parseLevel(cfg.Level), closer: closer}, nil
}

func (lg *leveled) Debug(msg string, keysAndValues ...interface{}) {
	if lg.min <= levelDebug {
		lg.logger.Debug(msg, keysAndValues...)
	}
}

func (lg *leveled) Info(msg string, keysAndValues ...interface{}) {
	if lg.min <= levelInfo {
		lg.logger.Info(msg, keysAndValues...)
	}
}

func (lg *leveled) Warn(msg string, keysAndValues ...interface{}) {
	if lg.min <= levelWarn {
		lg.logger.Warn(msg, keysAndValues...)
	}
}

func (lg *leveled) Error(msg string, keysAndValues ...interface{}) {
	lg.logger.Error(msg, keysAndValues...)
}

// Close flushes the logger and closes the log file, if any
func (lg *leveled) Close() error {
	err := lg.logger.Close()
	if lg.closer != nil {
		if cerr := lg.closer.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

type nop struct{}

// Nop returns a logger that discards everything
func Nop() Logger {
	return nop{}
}

func (nop) Debug(string, ...interface{}) {}

func (nop) Info(string, ...interface{}) {}

func (nop) Warn(string, ...interface{}) {}

func (nop) Error(string, ...interface{}) {}

func (nop) Close() error {
	return nil
}
