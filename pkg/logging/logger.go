// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package logging provides a leveled, colorized console logger.
//
// Five severities are supported, ordered Debug < Info < Success <
// Warning < Error. Each emitted line carries an optional timestamp, the
// uppercased level tag in brackets, and the message, wrapped in a
// level-specific ANSI color when the sink is a terminal:
//
//	14:02:31 [SUCCESS] model downloaded
//
// # Basic Usage
//
//	log := logging.New(logging.DefaultConfig())
//	log.Info("starting up")
//	log.Error("request failed: %v", err)
//
// or through the package-level default logger:
//
//	logging.Success("saved %d records", n)
//
// # File Export
//
// Setting Config.FilePath duplicates every line, color-free, as a JSON
// record through log/slog. A file that cannot be opened degrades to
// console-only output; construction never fails.
//
// # Testing
//
// Point Config.Out at a Buffer (or swap it in with SetOutput) and
// assert on Entries(). Suppression is observable: a disabled logger or
// a level below the threshold writes nothing at all.
//
// Logger is safe for concurrent use.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/vkashegde/smart-utils/pkg/timeutil"
)

// =============================================================================
// Log Levels
// =============================================================================

// Level represents log severity, ordered by increasing importance.
// Setting a minimum level suppresses everything strictly below it.
type Level int

const (
	// LevelDebug is verbose development output.
	LevelDebug Level = iota

	// LevelInfo is normal operational logging.
	LevelInfo

	// LevelSuccess marks a completed operation. It outranks Info so
	// completion lines survive an Info-suppressing threshold.
	LevelSuccess

	// LevelWarning is for recoverable problems.
	LevelWarning

	// LevelError is for failed operations.
	LevelError
)

// String returns the uppercase level name used in the bracket tag.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelSuccess:
		return "SUCCESS"
	case LevelWarning:
		return "WARNING"
	case LevelError:
		return "ERROR"
	default:
		return fmt.Sprintf("LEVEL(%d)", int(l))
	}
}

// ParseLevel converts a level name (any case) to a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "success":
		return LevelSuccess, nil
	case "warning", "warn":
		return LevelWarning, nil
	case "error":
		return LevelError, nil
	default:
		return LevelDebug, fmt.Errorf("unknown log level %q", s)
	}
}

// slogSuccess sits between slog's Info (0) and Warn (4) so file export
// preserves the ordering. ReplaceAttr renames it on the way out.
const slogSuccess = slog.Level(2)

func (l Level) toSlogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelInfo:
		return slog.LevelInfo
	case LevelSuccess:
		return slogSuccess
	case LevelWarning:
		return slog.LevelWarn
	default:
		return slog.LevelError
	}
}

// ANSI escape sequences, one color per level.
const (
	colorReset   = "\033[0m"
	colorDebug   = "\033[90m" // gray
	colorInfo    = "\033[36m" // cyan
	colorSuccess = "\033[32m" // green
	colorWarning = "\033[33m" // yellow
	colorError   = "\033[31m" // red
)

func (l Level) color() string {
	switch l {
	case LevelDebug:
		return colorDebug
	case LevelInfo:
		return colorInfo
	case LevelSuccess:
		return colorSuccess
	case LevelWarning:
		return colorWarning
	default:
		return colorError
	}
}

// =============================================================================
// Configuration
// =============================================================================

// ColorMode controls whether lines are wrapped in ANSI colors.
type ColorMode int

const (
	// ColorAuto enables color only when the sink is a terminal.
	ColorAuto ColorMode = iota
	// ColorAlways forces color on.
	ColorAlways
	// ColorNever forces color off.
	ColorNever
)

// Config controls Logger construction. Start from DefaultConfig and
// override; the zero value is a disabled logger.
type Config struct {
	// Enabled gates all output. A disabled logger swallows every call.
	Enabled bool

	// MinLevel suppresses calls strictly below it.
	MinLevel Level

	// ShowTimestamp prefixes each line with a rendered timestamp.
	ShowTimestamp bool

	// TimestampPattern is a timeutil date pattern for the prefix.
	// Empty falls back to RFC 3339.
	TimestampPattern string

	// Color selects the coloring policy. ColorAuto probes Out.
	Color ColorMode

	// Out is the console sink. Nil means os.Stderr, keeping stdout
	// clean for command output.
	Out io.Writer

	// FilePath, when set, duplicates every line as a JSON record in
	// the named file. Supports ~ expansion. Open failure degrades to
	// console-only.
	FilePath string
}

// DefaultConfig returns the stock configuration: enabled, Debug
// threshold, "HH:mm:ss" timestamps, automatic color, stderr.
func DefaultConfig() Config {
	return Config{
		Enabled:          true,
		MinLevel:         LevelDebug,
		ShowTimestamp:    true,
		TimestampPattern: "HH:mm:ss",
		Color:            ColorAuto,
	}
}

// =============================================================================
// Logger
// =============================================================================

// Logger writes leveled, colorized lines to a console sink and
// optionally duplicates them as JSON records to a file.
type Logger struct {
	mu        sync.Mutex
	enabled   bool
	minLevel  Level
	showTS    bool
	tsPattern string
	colorMode ColorMode
	out       io.Writer
	clock     timeutil.Clock

	file    *os.File
	slogger *slog.Logger
}

// New constructs a Logger from config. It never fails: a FilePath that
// cannot be opened leaves the logger console-only.
func New(config Config) *Logger {
	l := &Logger{
		enabled:   config.Enabled,
		minLevel:  config.MinLevel,
		showTS:    config.ShowTimestamp,
		tsPattern: config.TimestampPattern,
		colorMode: config.Color,
		out:       config.Out,
		clock:     timeutil.RealClock{},
	}
	if l.out == nil {
		l.out = os.Stderr
	}

	if config.FilePath != "" {
		path := expandPath(config.FilePath)
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err == nil {
			l.file = f
			l.slogger = slog.New(slog.NewJSONHandler(f, &slog.HandlerOptions{
				Level:       config.MinLevel.toSlogLevel(),
				ReplaceAttr: renameSuccess,
			}))
		}
	}
	return l
}

// renameSuccess maps the custom Success slog level to its proper name
// in JSON output.
func renameSuccess(groups []string, a slog.Attr) slog.Attr {
	if a.Key == slog.LevelKey {
		if lv, ok := a.Value.Any().(slog.Level); ok && lv == slogSuccess {
			a.Value = slog.StringValue("SUCCESS")
		}
	}
	return a
}

// Debug logs at the lowest severity. args are fmt.Sprintf operands.
func (l *Logger) Debug(msg string, args ...any) { l.log(LevelDebug, msg, args...) }

// Info logs routine operational messages.
func (l *Logger) Info(msg string, args ...any) { l.log(LevelInfo, msg, args...) }

// Success logs a completed operation.
func (l *Logger) Success(msg string, args ...any) { l.log(LevelSuccess, msg, args...) }

// Warning logs a recoverable problem.
func (l *Logger) Warning(msg string, args ...any) { l.log(LevelWarning, msg, args...) }

// Error logs a failed operation.
func (l *Logger) Error(msg string, args ...any) { l.log(LevelError, msg, args...) }

// SetEnabled toggles all output.
func (l *Logger) SetEnabled(on bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.enabled = on
}

// SetMinLevel changes the suppression threshold. Used by the config
// watcher for live reload.
func (l *Logger) SetMinLevel(level Level) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.minLevel = level
}

// MinLevel returns the current suppression threshold.
func (l *Logger) MinLevel() Level {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.minLevel
}

// SetOutput swaps the console sink. Under ColorAuto the color decision
// follows the new sink.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if w == nil {
		w = os.Stderr
	}
	l.out = w
}

// setClock pins the timestamp source for tests.
func (l *Logger) setClock(c timeutil.Clock) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.clock = c
}

// Close releases the export file, if any. Safe to call on a
// console-only logger.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	l.slogger = nil
	return err
}

// log emits one line for level, or nothing when the logger is disabled
// or level is below the threshold. Each call is a single synchronous
// write; there is no buffering.
func (l *Logger) log(level Level, msg string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.enabled || level < l.minLevel {
		return
	}
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}

	var b strings.Builder
	useColor := l.colorEnabled()
	if useColor {
		b.WriteString(level.color())
	}
	if l.showTS {
		b.WriteString(l.timestamp())
		b.WriteByte(' ')
	}
	b.WriteByte('[')
	b.WriteString(level.String())
	b.WriteString("] ")
	b.WriteString(msg)
	if useColor {
		b.WriteString(colorReset)
	}
	b.WriteByte('\n')
	fmt.Fprint(l.out, b.String())

	if l.slogger != nil {
		l.slogger.Log(context.Background(), level.toSlogLevel(), msg)
	}
}

// timestamp renders the prefix with the configured pattern, falling
// back to RFC 3339 when no pattern is set.
func (l *Logger) timestamp() string {
	now := l.clock.Now()
	if l.tsPattern == "" {
		return now.Format(time.RFC3339)
	}
	return timeutil.Format(now, l.tsPattern)
}

// colorEnabled resolves the color policy against the current sink.
// Callers must hold l.mu.
func (l *Logger) colorEnabled() bool {
	switch l.colorMode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	if f, ok := l.out.(*os.File); ok {
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return false
}

// expandPath expands a leading ~ to the user's home directory.
func expandPath(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

// =============================================================================
// Default Logger
// =============================================================================

var (
	defaultMu     sync.RWMutex
	defaultLogger *Logger
)

// Default returns the shared package logger, constructing it from
// DefaultConfig on first use.
func Default() *Logger {
	defaultMu.RLock()
	l := defaultLogger
	defaultMu.RUnlock()
	if l != nil {
		return l
	}

	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultLogger == nil {
		defaultLogger = New(DefaultConfig())
	}
	return defaultLogger
}

// SetDefault replaces the shared package logger.
func SetDefault(l *Logger) {
	if l == nil {
		return
	}
	defaultMu.Lock()
	defaultLogger = l
	defaultMu.Unlock()
}

// Debug logs to the default logger.
func Debug(msg string, args ...any) { Default().Debug(msg, args...) }

// Info logs to the default logger.
func Info(msg string, args ...any) { Default().Info(msg, args...) }

// Success logs to the default logger.
func Success(msg string, args ...any) { Default().Success(msg, args...) }

// Warning logs to the default logger.
func Warning(msg string, args ...any) { Default().Warning(msg, args...) }

// Error logs to the default logger.
func Error(msg string, args ...any) { Default().Error(msg, args...) }

// =============================================================================
// Test Sink
// =============================================================================

// Buffer is a mutex-guarded io.Writer that records every line it
// receives. Point Config.Out at one to make suppression observable in
// tests.
type Buffer struct {
	mu    sync.Mutex
	lines []string
}

// NewBuffer returns an empty Buffer.
func NewBuffer() *Buffer {
	return &Buffer{}
}

// Write records p, one entry per completed line.
func (b *Buffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.lines = append(b.lines, strings.Split(strings.TrimRight(string(p), "\n"), "\n")...)
	return len(p), nil
}

// Entries returns a copy of the recorded lines.
func (b *Buffer) Entries() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]string, len(b.lines))
	copy(out, b.lines)
	return out
}

// Reset discards all recorded lines.
func (b *Buffer) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.lines = nil
}
