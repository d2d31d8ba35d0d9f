package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInitCreatesLogFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "cfg")
	if err := Init(Config{Dir: dir}); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if Logger == nil {
		t.Fatal("Logger is nil after Init")
	}

	Warn("disk nearly full", "free_mb", 12)

	data, err := os.ReadFile(LogPath(dir))
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	if !strings.Contains(string(data), "disk nearly full") {
		t.Errorf("log file missing warning, got %q", string(data))
	}
}

func TestDebugSuppressedByDefault(t *testing.T) {
	dir := t.TempDir()
	if err := Init(Config{Dir: dir}); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	Debug("hidden detail")
	Info("hidden info")

	data, _ := os.ReadFile(LogPath(dir))
	if strings.Contains(string(data), "hidden") {
		t.Errorf("debug/info output written at warn level: %q", string(data))
	}
}

func TestHelpersWithoutInit(t *testing.T) {
	saved := Logger
	Logger = nil
	defer func() { Logger = saved }()

	Debug("x")
	Info("x")
	Warn("x")
	Error("x")
}
