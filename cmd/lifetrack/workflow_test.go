package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// TestEndToEndWorkflow drives a built binary through a full day of logging.
// Build it first and point LIFETRACK_BIN at it, e.g.
//
//	go build -o bin/lifetrack ./cmd/lifetrack && LIFETRACK_BIN=$PWD/bin/lifetrack go test ./cmd/lifetrack
func TestEndToEndWorkflow(t *testing.T) {
	cliPath := os.Getenv("LIFETRACK_BIN")
	if cliPath == "" {
		t.Skip("LIFETRACK_BIN not set, skipping end-to-end workflow")
	}
	if _, err := os.Stat(cliPath); err != nil {
		t.Fatalf("CLI binary not found at %s: %v", cliPath, err)
	}

	tempDir := t.TempDir()
	dbPath := filepath.Join(tempDir, "lifetrack", "lifetrack.db")

	var env []string
	for _, e := range os.Environ() {
		if !strings.HasPrefix(e, "HOME=") && !strings.HasPrefix(e, "LIFETRACK_DB_CONNECTION=") {
			env = append(env, e)
		}
	}
	env = append(env, fmt.Sprintf("HOME=%s", tempDir))

	run := func(args ...string) string {
		t.Helper()
		return runCmd(t, cliPath, env, append([]string{"--config", dbPath}, args...)...)
	}

	t.Log("Initializing store...")
	run("init")
	run("settings", "set", "--timezone", "UTC", "--week-start", "monday")

	t.Log("Logging a full day...")
	run("dopamine", "log", "--status", "passed", "--notes", "e2e")
	run("hygiene", "add", "Floss")
	run("hygiene", "toggle", "Floss", "--done")
	run("workout", "log", "completed")

	out := run("today")
	if !strings.Contains(out, "Total: 100%") {
		t.Errorf("expected a complete day, got:\n%s", out)
	}

	out = run("streak")
	if !strings.Contains(out, "Current streak: 1 day") {
		t.Errorf("expected a one day streak, got:\n%s", out)
	}

	out = run("doctor")
	if !strings.Contains(out, "All diagnostics passed") {
		t.Errorf("doctor reported problems:\n%s", out)
	}

	exportPath := filepath.Join(tempDir, "export.yaml")
	run("export", "--out", exportPath)
	if _, err := os.Stat(exportPath); err != nil {
		t.Errorf("export file missing: %v", err)
	}

	run("backup", "create")
	out = run("backup", "list")
	if !strings.Contains(out, "lifetrack-") {
		t.Errorf("expected a backup in the listing, got:\n%s", out)
	}
}

func runCmd(t *testing.T, path string, env []string, args ...string) string {
	t.Helper()
	cmd := exec.Command(path, args...)
	cmd.Env = env
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("Command %s %v failed: %v\nOutput: %s", path, args, err, out)
	}
	return string(out)
}
