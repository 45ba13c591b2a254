// Copyright 2026 cloudygreybeard
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package logging provides component loggers shared by the CLI and the MCP
// server.
//
// Basic usage:
//
//	if err := logging.Init(logging.Config{Level: "info", Console: true}); err != nil {
//	    return err
//	}
//	defer logging.Close()
//
//	logger := logging.Get("service")
//	logger.Warn("saving favorites failed", "err", err)
//
// Before Init is called every logger writes to io.Discard.
package logging

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/log"
)

// Level represents a logging level.
type Level int

// Log levels from least to most severe.
const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String returns the string representation of the level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "unknown"
	}
}

func (l Level) charm() log.Level {
	switch l {
	case LevelDebug:
		return log.DebugLevel
	case LevelWarn:
		return log.WarnLevel
	case LevelError:
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

// ErrInvalidLevel is returned when an invalid log level string is provided.
var ErrInvalidLevel = errors.New("invalid log level")

// ParseLevel parses a string into a Level. An empty string is LevelWarn.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn", "warning", "":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelWarn, fmt.Errorf("%w: %s", ErrInvalidLevel, s)
	}
}

// Config configures the logging system.
type Config struct {
	// Level is the minimum level written (debug, info, warn, error).
	Level string

	// Path is an optional log file. Entries are appended to it.
	Path string

	// Console enables output to stderr. The MCP server leaves it on
	// since stdout carries the protocol.
	Console bool
}

// Logger wraps charmbracelet/log with component identification.
type Logger struct {
	file      *log.Logger
	console   *log.Logger
	component string
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string, args ...interface{}) {
	l.each(func(lg *log.Logger) { lg.Debug(msg, args...) })
}

// Info logs an info message.
func (l *Logger) Info(msg string, args ...interface{}) {
	l.each(func(lg *log.Logger) { lg.Info(msg, args...) })
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string, args ...interface{}) {
	l.each(func(lg *log.Logger) { lg.Warn(msg, args...) })
}

// Error logs an error message.
func (l *Logger) Error(msg string, args ...interface{}) {
	l.each(func(lg *log.Logger) { lg.Error(msg, args...) })
}

func (l *Logger) each(fn func(*log.Logger)) {
	if l.file != nil {
		fn(l.file)
	}
	if l.console != nil {
		fn(l.console)
	}
}

// With returns a new logger with additional context.
func (l *Logger) With(args ...interface{}) *Logger {
	out := &Logger{component: l.component}
	if l.file != nil {
		out.file = l.file.With(args...)
	}
	if l.console != nil {
		out.console = l.console.With(args...)
	}
	return out
}

type state struct {
	mu          sync.RWMutex
	initialized bool
	level       Level
	console     bool
	file        *os.File
	loggers     map[string]*Logger
}

var global = &state{loggers: make(map[string]*Logger)}

// Init configures the logging system. It may be called again to
// reconfigure; existing loggers pick up the new settings on their next Get.
func Init(cfg Config) error {
	level, err := ParseLevel(cfg.Level)
	if err != nil {
		return fmt.Errorf("parsing log level: %w", err)
	}

	var file *os.File
	if cfg.Path != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
			return fmt.Errorf("creating log directory: %w", err)
		}
		file, err = os.OpenFile(cfg.Path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("opening log file: %w", err)
		}
	}

	global.mu.Lock()
	defer global.mu.Unlock()

	if global.file != nil {
		_ = global.file.Close()
	}

	global.initialized = true
	global.level = level
	global.console = cfg.Console
	global.file = file
	global.loggers = make(map[string]*Logger)
	return nil
}

// Get returns the logger for component.
func Get(component string) *Logger {
	global.mu.RLock()
	if logger, ok := global.loggers[component]; ok {
		global.mu.RUnlock()
		return logger
	}
	global.mu.RUnlock()

	global.mu.Lock()
	defer global.mu.Unlock()

	if logger, ok := global.loggers[component]; ok {
		return logger
	}

	logger := newLogger(component)
	global.loggers[component] = logger
	return logger
}

// newLogger must be called with global.mu held.
func newLogger(component string) *Logger {
	if !global.initialized {
		return &Logger{
			file:      log.NewWithOptions(io.Discard, log.Options{Prefix: component}),
			component: component,
		}
	}

	logger := &Logger{component: component}
	if global.file != nil {
		logger.file = log.NewWithOptions(global.file, log.Options{
			Level:           global.level.charm(),
			ReportTimestamp: true,
			TimeFormat:      time.RFC3339,
			Prefix:          component,
		})
	}
	if global.console {
		logger.console = log.NewWithOptions(os.Stderr, log.Options{
			Level:  global.level.charm(),
			Prefix: component,
		})
	}
	return logger
}

// Close closes the log file and returns loggers to io.Discard.
func Close() error {
	global.mu.Lock()
	defer global.mu.Unlock()

	global.initialized = false
	global.loggers = make(map[string]*Logger)

	if global.file == nil {
		return nil
	}
	err := global.file.Close()
	global.file = nil
	if err != nil {
		return fmt.Errorf("closing log file: %w", err)
	}
	return nil
}

// DefaultLogPath returns $XDG_STATE_HOME/favorites/favorites.log.
func DefaultLogPath() string {
	return filepath.Join(xdg.StateHome, "favorites", "favorites.log")
}
