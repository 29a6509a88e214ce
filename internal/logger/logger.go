// internal/logger/logger.go
package logger

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"
)

var (
	mu            sync.RWMutex // Guards the fields below
	defaultLogger *slog.Logger
	logLevel      *slog.LevelVar
	configured    bool     // Init or Setup installed a logger
	logFile       *os.File // Set when Setup opened a file we must close

	// debugFilter prints filtering decisions to stderr. Enabled with -debug-log.
	debugFilter bool
)

// ErrAlreadyInitialized is returned by Setup once Init or Setup has run.
var ErrAlreadyInitialized = errors.New("logger already initialized")

// SetDebugFilter toggles diagnostic output for the filtering handler.
func SetDebugFilter(enabled bool) {
	debugFilter = enabled
}

// Init initializes the logger package without filtering. It does nothing
// if a logger was already installed by Init or Setup.
func Init(level slog.Level, output io.Writer) {
	cfg := NewConfig()
	cfg.LogLevel = level.String()

	mu.Lock()
	defer mu.Unlock()
	if !configured {
		installLocked(&cfg, output, false)
	}
}

// Setup initializes the logger from a Config, opening the configured log
// file. An empty path or "-" logs to stderr. Messages logged before Setup go
// to the discarding fallback; Setup replaces it. Call Close on exit.
func Setup(cfg Config) error {
	mu.Lock()
	defer mu.Unlock()
	if configured {
		return ErrAlreadyInitialized
	}

	var output io.Writer = os.Stderr
	if cfg.LogFilePath != "" && cfg.LogFilePath != "-" {
		if dir := filepath.Dir(cfg.LogFilePath); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("failed to create log directory '%s': %w", dir, err)
			}
		}
		f, err := os.OpenFile(cfg.LogFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file '%s': %w", cfg.LogFilePath, err)
		}
		logFile = f
		output = f
	}
	installLocked(&cfg, output, true)
	return nil
}

// Close releases the log file opened by Setup, if any. Later messages are
// discarded.
func Close() error {
	mu.Lock()
	defer mu.Unlock()
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	if defaultLogger != nil {
		defaultLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: logLevel}))
	}
	return err
}

// installLocked builds the configured logger. mu must be held.
func installLocked(cfg *Config, output io.Writer, filtered bool) {
	if output == nil {
		output = io.Discard
	}
	cfg.process()
	logLevel = new(slog.LevelVar)
	logLevel.Set(cfg.level.Level())

	opts := slog.HandlerOptions{
		Level:     logLevel,
		AddSource: true,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.SourceKey {
				if source, ok := a.Value.Any().(*slog.Source); ok && source != nil {
					source.File = filepath.Base(source.File)
				}
			}
			if a.Key == slog.TimeKey {
				a.Value = slog.StringValue(a.Value.Time().Format(time.TimeOnly))
			}
			return a
		},
	}
	var handler slog.Handler = slog.NewTextHandler(output, &opts)
	if filtered {
		handler = newFilteringHandler(handler, cfg)
	}
	defaultLogger = slog.New(handler)
	configured = true

	// PC=0 means no source info; the wrappers would report this file.
	r := slog.NewRecord(time.Now(), slog.LevelInfo, "Logger initialized", 0)
	r.AddAttrs(slog.String("level", cfg.level.Level().String()))
	_ = handler.Handle(context.Background(), r)
}

// current returns the active logger, installing a discarding fallback if
// neither Init nor Setup has run, which is the case in tests.
func current() *slog.Logger {
	mu.RLock()
	l := defaultLogger
	mu.RUnlock()
	if l != nil {
		return l
	}

	mu.Lock()
	defer mu.Unlock()
	if defaultLogger == nil {
		logLevel = new(slog.LevelVar)
		logLevel.Set(slog.LevelInfo)
		defaultLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: logLevel}))
	}
	return defaultLogger
}

// logAtLevel creates and logs a record at the specified level, capturing the correct caller source.
func logAtLevel(level slog.Level, tag string, format string, args ...interface{}) {
	l := current()
	// Check level early to avoid overhead of Callers and Sprintf if disabled
	if !l.Enabled(context.Background(), level) {
		return
	}

	var pcs [1]uintptr
	// Skip runtime.Callers, logAtLevel and the exported wrapper.
	runtime.Callers(3, pcs[:])

	r := slog.NewRecord(time.Now(), level, fmt.Sprintf(format, args...), pcs[0])
	if tag != "" {
		r.AddAttrs(slog.String(tagKey, tag))
	}
	_ = l.Handler().Handle(context.Background(), r)
}

// Debugf logs a debug message using Printf-style formatting.
func Debugf(format string, args ...interface{}) {
	logAtLevel(slog.LevelDebug, "", format, args...)
}

// DebugTagf logs a debug message carrying a tag that the filter can match.
func DebugTagf(tag string, format string, args ...interface{}) {
	logAtLevel(slog.LevelDebug, tag, format, args...)
}

// Infof logs an info message using Printf-style formatting.
func Infof(format string, args ...interface{}) {
	logAtLevel(slog.LevelInfo, "", format, args...)
}

// Warnf logs a warning message using Printf-style formatting.
func Warnf(format string, args ...interface{}) {
	logAtLevel(slog.LevelWarn, "", format, args...)
}

// Errorf logs an error message using Printf-style formatting.
func Errorf(format string, args ...interface{}) {
	logAtLevel(slog.LevelError, "", format, args...)
}

// Fatalf logs an error message then exits.
func Fatalf(format string, args ...interface{}) {
	logAtLevel(slog.LevelError, "", format, args...)
	_ = Close()
	os.Exit(1)
}

// SetLevel changes the minimum level at runtime.
func SetLevel(level slog.Level) {
	current()
	mu.RLock()
	defer mu.RUnlock()
	logLevel.Set(level)
}

// Get retrieves the configured logger instance.
func Get() *slog.Logger {
	return current()
}
