// ABOUTME: Tests for command line handling and exit codes
// ABOUTME: Covers startup failures that end before the audio device is opened

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"

	"sonido/config"
)

func TestRunVersion(t *testing.T) {
	var stdout, stderr bytes.Buffer

	if code := run([]string{"--version"}, &stdout, &stderr); code != 0 {
		t.Fatalf("Expected exit 0, got %d (stderr: %s)", code, stderr.String())
	}

	if !strings.Contains(stdout.String(), version) {
		t.Errorf("Expected version in output, got %q", stdout.String())
	}
}

func TestRunRecursiveEmptyDirectory(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "empty", "deeper"), 0o755); err != nil {
		t.Fatal(err)
	}

	var stdout, stderr bytes.Buffer
	args := []string{"-r", "-c", filepath.Join(t.TempDir(), "config.toml"), dir}

	if code := run(args, &stdout, &stderr); code != 1 {
		t.Fatalf("Expected exit 1, got %d", code)
	}

	if !strings.Contains(stderr.String(), "no music files found") {
		t.Errorf("Expected no tracks error, got %q", stderr.String())
	}
}

func TestRunInvalidPath(t *testing.T) {
	var stdout, stderr bytes.Buffer
	missing := filepath.Join(t.TempDir(), "missing")

	if code := run([]string{missing}, &stdout, &stderr); code != 1 {
		t.Fatalf("Expected exit 1, got %d", code)
	}

	if !strings.Contains(stderr.String(), "invalid path") {
		t.Errorf("Expected invalid path error, got %q", stderr.String())
	}
}

func TestRunTooManyArguments(t *testing.T) {
	var stdout, stderr bytes.Buffer

	if code := run([]string{"a", "b"}, &stdout, &stderr); code != 1 {
		t.Errorf("Expected exit 1, got %d", code)
	}
}

func TestNewLoggerDisabled(t *testing.T) {
	logger := newLogger(false, filepath.Join(t.TempDir(), "debug.log"))
	logger.Debug("dropped")

	if logger.Core().Enabled(0) {
		t.Error("Expected no-op logger when debug logging is off")
	}
}

func TestNewLoggerWritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")

	logger := newLogger(true, path)
	logger.Sugar().Debugf("[TEST] hello %d", 42)
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Expected log file: %v", err)
	}

	if !strings.Contains(string(data), "[TEST] hello 42") {
		t.Errorf("Expected message in log, got %q", string(data))
	}
}

func TestLoadSettingsReturnsWarning(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[config]\nseek_step = 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	var stderr bytes.Buffer
	settings, warning := loadSettings(path, &stderr, zap.NewNop().Sugar())

	if settings != config.DefaultConfig() {
		t.Error("Expected defaults for an invalid config")
	}
	if !strings.Contains(warning, "seek_step") {
		t.Errorf("Expected warning naming seek_step, got %q", warning)
	}
	if !strings.Contains(stderr.String(), warning) {
		t.Errorf("Expected warning on stderr, got %q", stderr.String())
	}
}

func TestLoadSettingsValidFileHasNoWarning(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	var stderr bytes.Buffer
	_, warning := loadSettings(path, &stderr, zap.NewNop().Sugar())

	if warning != "" {
		t.Errorf("Expected no warning on first run, got %q", warning)
	}
}
