package logging

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	logger *zap.Logger
	mu     sync.RWMutex
)

// LogLevelEnvVar is the environment variable that controls logging verbosity.
// When unset or empty, logging is silent (no zap output).
// Valid values: "debug", "info", "warn", "error"
const LogLevelEnvVar = "MYLIBRARYBOOK_LOG_LEVEL"

// LogFileEnvVar overrides the log file location.
const LogFileEnvVar = "MYLIBRARYBOOK_LOG_FILE"

// DefaultLogFileName is the file created inside the config directory when
// no explicit log file is given.
const DefaultLogFileName = "mylibrarybook.log"

// Options controls Initialize.
type Options struct {
	// Level is one of debug, info, warn, error. Empty falls back to the
	// MYLIBRARYBOOK_LOG_LEVEL environment variable, then to silent.
	Level string

	// File receives the log output. Empty falls back to
	// MYLIBRARYBOOK_LOG_FILE, then to DefaultDir/DefaultLogFileName.
	// Logs never go to stdout: the browser owns the terminal.
	File string

	// DefaultDir is used to build the default log path.
	DefaultDir string
}

// Initialize creates the global logger. If no level is configured the
// logger is a no-op and no file is created.
func Initialize(opts Options) error {
	level := opts.Level
	if level == "" {
		level = os.Getenv(LogLevelEnvVar)
	}

	if level == "" {
		setLogger(zap.NewNop())
		return nil
	}

	path := resolveLogFile(opts)
	if path == "" {
		return fmt.Errorf("failed to initialize logger: no log file location (set --log-file or %s)", LogFileEnvVar)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(ParseLevel(level)),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{path},
		ErrorOutputPaths: []string{path},
	}

	config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	built, err := config.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	setLogger(built)
	return nil
}

// ParseLevel maps a level name to a zap level. Unknown names map to info.
func ParseLevel(level string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return zapcore.DebugLevel
	case "info":
		return zapcore.InfoLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

func resolveLogFile(opts Options) string {
	if opts.File != "" {
		return opts.File
	}
	if env := os.Getenv(LogFileEnvVar); env != "" {
		return env
	}
	if opts.DefaultDir != "" {
		return filepath.Join(opts.DefaultDir, DefaultLogFileName)
	}
	return ""
}

func setLogger(l *zap.Logger) {
	mu.Lock()
	defer mu.Unlock()
	logger = l
}

// SetLogger replaces the global logger. Tests use it with zaptest or an
// observer core.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	setLogger(l)
}

// GetLogger returns the global logger instance
func GetLogger() *zap.Logger {
	mu.RLock()
	l := logger
	mu.RUnlock()
	if l == nil {
		return zap.NewNop()
	}
	return l
}

// Named returns a child of the global logger.
func Named(name string) *zap.Logger {
	return GetLogger().Named(name)
}

// Info logs an info message
func Info(msg string, fields ...zap.Field) {
	GetLogger().Info(msg, fields...)
}

// Debug logs a debug message
func Debug(msg string, fields ...zap.Field) {
	GetLogger().Debug(msg, fields...)
}

// Warn logs a warning message
func Warn(msg string, fields ...zap.Field) {
	GetLogger().Warn(msg, fields...)
}

// Error logs an error message
func Error(msg string, fields ...zap.Field) {
	GetLogger().Error(msg, fields...)
}

// LogHTTPRequest logs an outgoing API request
func LogHTTPRequest(method, url string) {
	Debug("HTTP request",
		zap.String("method", method),
		zap.String("url", url),
	)
}

// LogHTTPResponse logs the outcome of an API request
func LogHTTPResponse(method, url string, statusCode int, elapsed time.Duration, err error) {
	fields := []zap.Field{
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status_code", statusCode),
		zap.Duration("elapsed", elapsed),
	}
	if err != nil {
		Warn("HTTP request failed", append(fields, zap.Error(err))...)
		return
	}
	Debug("HTTP response", fields...)
}

// Logr adapts the global zap logger to the logr interface.
func Logr() logr.Logger {
	return zapr.NewLogger(GetLogger())
}

// WithLogger stores l in ctx.
func WithLogger(ctx context.Context, l logr.Logger) context.Context {
	return logr.NewContext(ctx, l)
}

// FromContext returns the logr logger carried by ctx, or one backed by
// the global zap logger.
func FromContext(ctx context.Context) logr.Logger {
	if ctx != nil {
		if l, err := logr.FromContext(ctx); err == nil {
			return l
		}
	}
	return Logr()
}

// Sync flushes any buffered log entries
func Sync() {
	if l := GetLogger(); l != nil {
		_ = l.Sync()
	}
}
