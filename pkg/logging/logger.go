package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger interface for dependency injection and testing
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	With(args ...any) Logger
	WithGroup(name string) Logger
	SetLevel(level slog.Level)
}

// Config holds logger configuration
type Config struct {
	Level   slog.Level
	Format  Format
	Output  io.Writer
	AddTime bool
}

// Format represents the output format
type Format int

const (
	FormatText Format = iota
	FormatJSON
)

// LevelDisabled is above every level slog emits.
const LevelDisabled = slog.Level(1000)

const (
	envDebugFile  = "DBGCONSOLE_DEBUG_FILE"
	envDebugLevel = "DBGCONSOLE_DEBUG_LEVEL"
)

// slogLogger wraps slog.Logger to implement our Logger interface
type slogLogger struct {
	logger *slog.Logger
	config Config // kept for level updates
}

// NewLogger creates a new logger with the given configuration
func NewLogger(config Config) Logger {
	if config.Output == nil {
		config.Output = os.Stderr
	}

	return &slogLogger{
		logger: slog.New(newHandler(config)),
		config: config,
	}
}

func newHandler(config Config) slog.Handler {
	opts := &slog.HandlerOptions{
		Level: config.Level,
	}

	if !config.AddTime {
		opts.ReplaceAttr = func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		}
	}

	switch config.Format {
	case FormatJSON:
		return slog.NewJSONHandler(config.Output, opts)
	default:
		return slog.NewTextHandler(config.Output, opts)
	}
}

// NewQuietLogger creates a logger that only shows errors
func NewQuietLogger() Logger {
	return NewLogger(Config{
		Level:  slog.LevelError,
		Format: FormatText,
		Output: os.Stderr,
	})
}

// NewDisabledLogger creates a logger that discards all output (useful for tests)
func NewDisabledLogger() Logger {
	return NewLogger(Config{
		Level:  LevelDisabled,
		Format: FormatText,
		Output: io.Discard,
	})
}

// ParseLevel maps a level name to a slog level. Unknown names fall back to
// the error level.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "off", "none", "disabled":
		return LevelDisabled
	default:
		return slog.LevelError
	}
}

// GetDebugFilePath returns the debug file path from DBGCONSOLE_DEBUG_FILE, or
// defaultFileName inside the temp dir.
func GetDebugFilePath(defaultFileName string) string {
	debugFile := os.Getenv(envDebugFile)
	if debugFile == "" {
		debugFile = filepath.Join(os.TempDir(), defaultFileName)
	}
	return debugFile
}

// NewFileLoggerFromEnv creates a file-based logger. The terminal belongs to the
// TUI while it runs, so logs go to DBGCONSOLE_DEBUG_FILE. DBGCONSOLE_DEBUG_LEVEL
// overrides level when set.
func NewFileLoggerFromEnv(defaultFileName string, level slog.Level) Logger {
	debugFile := GetDebugFilePath(defaultFileName)
	if name := os.Getenv(envDebugLevel); name != "" {
		level = ParseLevel(name)
	}

	file := &lumberjack.Logger{
		Filename:   debugFile,
		MaxSize:    5, // megabytes
		MaxBackups: 2,
		MaxAge:     14, // days
	}

	return NewLogger(Config{
		Level:   level,
		Format:  FormatText,
		Output:  file,
		AddTime: true,
	})
}

// Debug logs a debug message
func (l *slogLogger) Debug(msg string, args ...any) {
	l.logger.Debug(msg, args...)
}

// Info logs an info message
func (l *slogLogger) Info(msg string, args ...any) {
	l.logger.Info(msg, args...)
}

// Warn logs a warning message
func (l *slogLogger) Warn(msg string, args ...any) {
	l.logger.Warn(msg, args...)
}

// Error logs an error message
func (l *slogLogger) Error(msg string, args ...any) {
	l.logger.Error(msg, args...)
}

// With returns a logger with additional attributes
func (l *slogLogger) With(args ...any) Logger {
	return &slogLogger{
		logger: l.logger.With(args...),
		config: l.config,
	}
}

// WithGroup returns a logger with a group name
func (l *slogLogger) WithGroup(name string) Logger {
	return &slogLogger{
		logger: l.logger.WithGroup(name),
		config: l.config,
	}
}

// SetLevel updates the logger's level. Attributes added with With are not
// carried over to the rebuilt handler.
func (l *slogLogger) SetLevel(level slog.Level) {
	l.config.Level = level
	l.logger = slog.New(newHandler(l.config))
}

// Global logger instance
var globalLogger Logger = NewQuietLogger()

// SetGlobalLogger sets the global logger instance
func SetGlobalLogger(logger Logger) {
	globalLogger = logger
}

// GetGlobalLogger returns the global logger instance
func GetGlobalLogger() Logger {
	return globalLogger
}

// Convenience functions that use the global logger
func Debug(msg string, args ...any) {
	globalLogger.Debug(msg, args...)
}

func Error(msg string, args ...any) {
	globalLogger.Error(msg, args...)
}

// NewComponentLogger returns the global logger tagged with a component name.
func NewComponentLogger(component string) Logger {
	return globalLogger.With("component", component)
}

// NewSessionLogger returns a component logger that also carries a console
// session id.
func NewSessionLogger(component, sessionID string) Logger {
	return globalLogger.With(
		"component", component,
		"session", sessionID,
	)
}

// LogError logs err under msg with the extra attributes.
func LogError(logger Logger, msg string, err error, args ...any) {
	allArgs := append(args, "error", err)
	logger.Error(msg, allArgs...)
}
