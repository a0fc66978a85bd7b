package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/idilsaglam/daily/internal/config"
)

func TestNewRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(config.LogConfig{Level: "warn"}, &buf)

	logger.Info("hidden")
	logger.Warn("shown", "key", "todos")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("info line leaked at warn level: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "key=todos") {
		t.Errorf("expected warn line with fields, got %q", out)
	}
	if !strings.Contains(out, prefix) {
		t.Errorf("expected prefix %q in %q", prefix, out)
	}
}

func TestNewUnknownLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := New(config.LogConfig{Level: "chatty"}, &buf)
	logger.Debug("debug line")
	logger.Info("info line")
	if strings.Contains(buf.String(), "debug line") {
		t.Error("debug should be filtered at info level")
	}
	if !strings.Contains(buf.String(), "info line") {
		t.Error("info should be written")
	}
}

func TestForTUI(t *testing.T) {
	t.Run("no file discards", func(t *testing.T) {
		logger, closer, err := ForTUI(config.LogConfig{Level: "info"})
		if err != nil {
			t.Fatalf("ForTUI failed: %v", err)
		}
		defer closer.Close()
		logger.Error("goes nowhere")
	})

	t.Run("file receives output", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "daily.log")
		logger, closer, err := ForTUI(config.LogConfig{Level: "info", File: path})
		if err != nil {
			t.Fatalf("ForTUI failed: %v", err)
		}
		logger.Warn("write failed", "key", "todos")
		if err := closer.Close(); err != nil {
			t.Fatalf("close: %v", err)
		}
		b, err := os.ReadFile(path)
		if err != nil {
			t.Fatalf("read log: %v", err)
		}
		if !strings.Contains(string(b), "write failed") {
			t.Errorf("log file missing entry: %q", b)
		}
	})
}
