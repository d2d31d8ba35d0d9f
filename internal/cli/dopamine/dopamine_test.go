package dopamine

import (
	"path/filepath"
	"testing"

	"github.com/julianstephens/lifetrack/internal/cli"
	"github.com/julianstephens/lifetrack/internal/models"
	"github.com/julianstephens/lifetrack/internal/storage/sqlite"
)

func setupTestDopamineDB(t *testing.T) *cli.Context {
	t.Helper()
	store := sqlite.NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to initialize store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return cli.NewContext(store)
}

func TestDopamineLogUpserts(t *testing.T) {
	ctx := setupTestDopamineDB(t)

	if err := (&DopamineLogCmd{Date: "2024-06-01", Status: "failed"}).Run(ctx); err != nil {
		t.Fatalf("log failed: %v", err)
	}
	if err := (&DopamineLogCmd{Date: "2024-06-01", Status: "passed", Notes: "recovered"}).Run(ctx); err != nil {
		t.Fatalf("second log failed: %v", err)
	}

	entries, err := ctx.Store.GetDopamineEntriesByDate("2024-06-01")
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Status != models.DopaminePassed || entries[0].Notes != "recovered" {
		t.Errorf("entry = %+v", entries[0])
	}
}

func TestDopamineLogInvalidDate(t *testing.T) {
	ctx := setupTestDopamineDB(t)
	if err := (&DopamineLogCmd{Date: "06/01/2024", Status: "passed"}).Run(ctx); err == nil {
		t.Error("expected error for malformed date")
	}
}

func TestDopamineEdit(t *testing.T) {
	ctx := setupTestDopamineDB(t)
	entry, err := ctx.Tracker.LogDopamine("2024-06-01", models.DopaminePassed, "note")
	if err != nil {
		t.Fatal(err)
	}

	if err := (&DopamineEditCmd{ID: entry.ID, Date: "2024-06-02"}).Run(ctx); err != nil {
		t.Fatalf("edit failed: %v", err)
	}

	got, err := ctx.Store.GetDopamineEntry(entry.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Date != "2024-06-02" || got.Status != models.DopaminePassed || got.Notes != "note" {
		t.Errorf("edited entry = %+v", got)
	}

	old, err := ctx.Store.GetDailyCompletionsByDate("2024-06-01")
	if err != nil {
		t.Fatal(err)
	}
	if len(old) != 1 || old[0].DopamineCompleted {
		t.Errorf("old date summary not refreshed: %+v", old)
	}
}

func TestDopamineEditMissing(t *testing.T) {
	ctx := setupTestDopamineDB(t)
	if err := (&DopamineEditCmd{ID: "missing", Status: "failed"}).Run(ctx); err == nil {
		t.Error("expected error editing a missing entry")
	}
}

func TestDopamineListAndDelete(t *testing.T) {
	ctx := setupTestDopamineDB(t)
	entry, err := ctx.Tracker.LogDopamine("2024-06-01", models.DopamineFailed, "")
	if err != nil {
		t.Fatal(err)
	}

	if err := (&DopamineListCmd{Limit: 5}).Run(ctx); err != nil {
		t.Errorf("list failed: %v", err)
	}
	if err := (&DopamineListCmd{All: true}).Run(ctx); err != nil {
		t.Errorf("list --all failed: %v", err)
	}

	if err := (&DopamineDeleteCmd{ID: entry.ID, Yes: true}).Run(ctx); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	entries, err := ctx.Store.GetAllDopamineEntries()
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("entry not deleted")
	}
}

func TestDopamineCalendar(t *testing.T) {
	ctx := setupTestDopamineDB(t)
	if _, err := ctx.Tracker.LogDopamine("2024-06-01", models.DopaminePassed, ""); err != nil {
		t.Fatal(err)
	}
	if err := (&DopamineCalendarCmd{Month: "2024-06"}).Run(ctx); err != nil {
		t.Errorf("calendar failed: %v", err)
	}
	if err := (&DopamineCalendarCmd{Month: "June"}).Run(ctx); err == nil {
		t.Error("expected error for malformed month")
	}
}
