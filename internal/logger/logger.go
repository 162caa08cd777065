// SPDX-License-Identifier: Apache-2.0

// Package logger configures the application-wide slog logger. In TUI mode
// logs go to a file only, since stderr would corrupt the alternate screen; in
// CLI mode they also go to stderr.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

var defaultLogger *slog.Logger

// logFilePath returns the XDG state-dir location of the application log.
func logFilePath() (string, error) {
	stateDir := os.Getenv("XDG_STATE_HOME")
	if stateDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("could not get user home directory: %w", err)
		}
		stateDir = filepath.Join(homeDir, ".local", "state")
	}
	return filepath.Join(stateDir, "rexi", "rexi.log"), nil
}

// Init sets up the default logger. It must be called once at startup, before
// any log call. File-logging failures degrade to stderr (or to a discard
// logger in TUI mode) rather than aborting.
func Init(isTUI bool) {
	var writers []io.Writer

	path, err := logFilePath()
	if err == nil {
		if err = os.MkdirAll(filepath.Dir(path), 0750); err == nil {
			var file *os.File
			file, err = os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0640)
			if err == nil {
				writers = append(writers, file)
			}
		}
	}
	if err != nil && !isTUI {
		fmt.Fprintf(os.Stderr, "Warning: file logging disabled: %v\n", err)
	}

	if !isTUI {
		writers = append(writers, os.Stderr)
	}

	var w io.Writer
	switch len(writers) {
	case 0:
		w = io.Discard
	case 1:
		w = writers[0]
	default:
		w = io.MultiWriter(writers...)
	}

	defaultLogger = slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo}))
}

// SetLogger replaces the default logger, mainly for tests.
func SetLogger(l *slog.Logger) { defaultLogger = l }

func get() *slog.Logger {
	if defaultLogger == nil {
		// Accessed before Init; stay quiet rather than corrupting a TUI.
		defaultLogger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
	return defaultLogger
}

// Info logs an informational message.
func Info(msg string, args ...any) { get().Info(msg, args...) }

// Warn logs a warning message.
func Warn(msg string, args ...any) { get().Warn(msg, args...) }

// Error logs an error message.
func Error(msg string, args ...any) { get().Error(msg, args...) }

// Debug logs a debug message.
func Debug(msg string, args ...any) { get().Debug(msg, args...) }
