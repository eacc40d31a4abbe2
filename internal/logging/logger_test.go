package logging

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestInitializeSilentByDefault(t *testing.T) {
	t.Setenv(LogLevelEnvVar, "")
	dir := t.TempDir()

	if err := Initialize(Options{DefaultDir: dir}); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	Info("should not be written")
	Sync()

	if _, err := os.Stat(filepath.Join(dir, DefaultLogFileName)); !os.IsNotExist(err) {
		t.Errorf("log file should not exist when logging is silent, stat err = %v", err)
	}
}

func TestInitializeWritesToFile(t *testing.T) {
	t.Setenv(LogLevelEnvVar, "")
	t.Setenv(LogFileEnvVar, "")
	dir := t.TempDir()

	if err := Initialize(Options{Level: "debug", DefaultDir: dir}); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	t.Cleanup(func() { SetLogger(nil) })

	Warn("Search failed", zap.String("query", "dune"))
	Sync()

	data, err := os.ReadFile(filepath.Join(dir, DefaultLogFileName))
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if !strings.Contains(string(data), "Search failed") || !strings.Contains(string(data), "dune") {
		t.Errorf("log file missing entry, got:\n%s", data)
	}
}

func TestInitializeLevelFromEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.log")
	t.Setenv(LogLevelEnvVar, "warn")
	t.Setenv(LogFileEnvVar, path)

	if err := Initialize(Options{}); err != nil {
		t.Fatalf("Initialize() error = %v", err)
	}
	t.Cleanup(func() { SetLogger(nil) })

	if GetLogger().Core().Enabled(zapcore.InfoLevel) {
		t.Error("info should be disabled at warn level")
	}
	if !GetLogger().Core().Enabled(zapcore.WarnLevel) {
		t.Error("warn should be enabled at warn level")
	}
}

func TestInitializeWithoutLocation(t *testing.T) {
	t.Setenv(LogFileEnvVar, "")
	if err := Initialize(Options{Level: "info"}); err == nil {
		t.Error("Initialize() should fail when no log file location is known")
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"INFO":    zapcore.InfoLevel,
		"warn":    zapcore.WarnLevel,
		"warning": zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"loud":    zapcore.InfoLevel,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestFromContextFallsBackToGlobal(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))
	t.Cleanup(func() { SetLogger(nil) })

	FromContext(context.Background()).Info("from global")

	if logs.FilterMessage("from global").Len() != 1 {
		t.Errorf("expected entry via global logger, got %d entries", logs.Len())
	}
}

func TestWithLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.NewNop())
	t.Cleanup(func() { SetLogger(nil) })

	ctx := WithLogger(context.Background(), zapr.NewLogger(zap.New(core)))
	FromContext(ctx).Info("scoped")

	if logs.FilterMessage("scoped").Len() != 1 {
		t.Errorf("expected entry via context logger, got %d entries", logs.Len())
	}
}

func TestLogHTTPResponseLevels(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	SetLogger(zap.New(core))
	t.Cleanup(func() { SetLogger(nil) })

	LogHTTPResponse("GET", "https://openlibrary.org/search.json", 200, 0, nil)
	LogHTTPResponse("GET", "https://openlibrary.org/search.json", 500, 0, os.ErrDeadlineExceeded)

	if logs.FilterLevelExact(zapcore.DebugLevel).Len() != 1 {
		t.Error("successful response should log at debug")
	}
	if logs.FilterLevelExact(zapcore.WarnLevel).Len() != 1 {
		t.Error("failed response should log at warn")
	}
}
