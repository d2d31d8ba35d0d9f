package settings

import (
	"path/filepath"
	"testing"

	"github.com/julianstephens/lifetrack/internal/cli"
	"github.com/julianstephens/lifetrack/internal/storage/sqlite"
)

func setupTestSettingsDB(t *testing.T) *cli.Context {
	t.Helper()
	store := sqlite.NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to initialize store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return cli.NewContext(store)
}

func ptr(s string) *string { return &s }

func TestSettingsShow(t *testing.T) {
	ctx := setupTestSettingsDB(t)
	if err := (&SettingsShowCmd{}).Run(ctx); err != nil {
		t.Errorf("settings show failed: %v", err)
	}
}

func TestSettingsSet(t *testing.T) {
	ctx := setupTestSettingsDB(t)

	cmd := &SettingsSetCmd{Timezone: ptr("UTC"), WeekStart: ptr("Monday")}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("settings set failed: %v", err)
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		t.Fatal(err)
	}
	if settings.Timezone != "UTC" {
		t.Errorf("timezone = %q, want UTC", settings.Timezone)
	}
	if settings.WeekStart != "monday" {
		t.Errorf("week start = %q, want monday", settings.WeekStart)
	}
}

func TestSettingsSetValidation(t *testing.T) {
	ctx := setupTestSettingsDB(t)

	tests := []struct {
		name string
		cmd  SettingsSetCmd
	}{
		{"no flags", SettingsSetCmd{}},
		{"bad timezone", SettingsSetCmd{Timezone: ptr("Not/AZone")}},
		{"bad week start", SettingsSetCmd{WeekStart: ptr("friday")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cmd.Run(ctx); err == nil {
				t.Error("expected error")
			}
		})
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		t.Fatal(err)
	}
	if settings.WeekStart != "sunday" {
		t.Errorf("failed update changed week start to %q", settings.WeekStart)
	}
}
