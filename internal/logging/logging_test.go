package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ppiankov/notmytype/internal/model"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]level{
		"debug":   levelDebug,
		"DEBUG":   levelDebug,
		"info":    levelInfo,
		"warn":    levelWarn,
		"warning": levelWarn,
		"error":   levelError,
		"":        levelInfo,
		"bogus":   levelInfo,
	}

	for in, want := range tests {
		if got := parseLevel(in); got != want {
			t.Errorf("parseLevel(%q) = %d, want %d", in, got, want)
		}
	}
}

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notmytype.log")

	logger, err := New(model.LogConfig{Level: "info", JSON: true, File: path})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	logger.Info("validated pairing", "heading", "Inter", "body", "Lora")
	if err := logger.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	if _, err := os.Stat(path); err != nil {
		t.Errorf("Expected log file to exist: %v", err)
	}
}

func TestNew_BadFilePath(t *testing.T) {
	_, err := New(model.LogConfig{File: filepath.Join(t.TempDir(), "missing", "dir", "x.log")})
	if err == nil {
		t.Error("Expected error for unwritable log path")
	}
}

func TestNop(t *testing.T) {
	logger := Nop()
	logger.Debug("x")
	logger.Info("x", "k", 1)
	logger.Warn("x")
	logger.Error("x")
	if err := logger.Close(); err != nil {
		t.Errorf("Nop Close returned %v", err)
	}
}
