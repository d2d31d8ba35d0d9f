package system

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/julianstephens/lifetrack/internal/cli"
	"github.com/julianstephens/lifetrack/internal/models"
	"github.com/julianstephens/lifetrack/internal/storage/sqlite"
)

func setupTestInitDB(t *testing.T) (*cli.Context, string) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	store := sqlite.NewStore(dbPath)
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("failed to close store: %v", err)
		}
	})
	return cli.NewContext(store), dbPath
}

func TestInitCmd_Success(t *testing.T) {
	ctx, dbPath := setupTestInitDB(t)

	if err := (&InitCmd{}).Run(ctx); err != nil {
		t.Fatalf("init command failed: %v", err)
	}
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Errorf("database file was not created at %s", dbPath)
	}

	settings, err := ctx.Store.GetSettings()
	if err != nil {
		t.Fatalf("failed to read settings: %v", err)
	}
	if settings.WeekStart != "sunday" {
		t.Errorf("default week start = %q, want sunday", settings.WeekStart)
	}
}

func TestInitCmd_Idempotent(t *testing.T) {
	ctx, _ := setupTestInitDB(t)
	cmd := &InitCmd{}

	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("first init failed: %v", err)
	}
	if _, err := ctx.Store.AddDopamineEntry(models.DopamineEntry{Date: "2024-06-01", Status: models.DopaminePassed}); err != nil {
		t.Fatal(err)
	}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("second init failed: %v", err)
	}

	entries, err := ctx.Store.GetAllDopamineEntries()
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("second init lost data: %d entries", len(entries))
	}
}

func TestInitCmd_Force(t *testing.T) {
	ctx, _ := setupTestInitDB(t)

	if err := (&InitCmd{}).Run(ctx); err != nil {
		t.Fatalf("init failed: %v", err)
	}
	if _, err := ctx.Store.AddDopamineEntry(models.DopamineEntry{Date: "2024-06-01", Status: models.DopaminePassed}); err != nil {
		t.Fatal(err)
	}

	if err := (&InitCmd{Force: true}).Run(ctx); err != nil {
		t.Fatalf("forced init failed: %v", err)
	}
	entries, err := ctx.Store.GetAllDopamineEntries()
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("forced init kept %d entries", len(entries))
	}
}

func TestInitCmd_Source(t *testing.T) {
	sourcePath := filepath.Join(t.TempDir(), "source.db")
	source := sqlite.NewStore(sourcePath)
	if err := source.Init(); err != nil {
		t.Fatal(err)
	}
	habitID, err := source.AddHygieneHabit(models.HygieneHabit{Name: "Floss", Order: 1})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := source.AddHygieneCompletion(models.HygieneCompletion{HabitID: habitID, Date: "2024-06-01", Completed: true}); err != nil {
		t.Fatal(err)
	}
	source.Close()

	ctx, _ := setupTestInitDB(t)
	if err := (&InitCmd{Source: sourcePath}).Run(ctx); err != nil {
		t.Fatalf("init with source failed: %v", err)
	}

	habit, err := ctx.Store.GetHygieneHabit(habitID)
	if err != nil {
		t.Fatalf("habit was not copied: %v", err)
	}
	if habit.Name != "Floss" {
		t.Errorf("copied habit name = %q", habit.Name)
	}
	summaries, err := ctx.Store.GetDailyCompletionsByDate("2024-06-01")
	if err != nil {
		t.Fatal(err)
	}
	if len(summaries) != 1 || !summaries[0].HygieneCompleted {
		t.Errorf("summary not rebuilt after copy: %+v", summaries)
	}
}

func TestInitCmd_ForceSameSource(t *testing.T) {
	ctx, dbPath := setupTestInitDB(t)
	if err := (&InitCmd{Force: true, Source: dbPath}).Run(ctx); err == nil {
		t.Error("expected error when forcing with the destination as source")
	}
}
