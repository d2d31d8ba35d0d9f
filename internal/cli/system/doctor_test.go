package system

import (
	"path/filepath"
	"testing"

	"github.com/julianstephens/lifetrack/internal/cli"
	"github.com/julianstephens/lifetrack/internal/models"
	"github.com/julianstephens/lifetrack/internal/storage/sqlite"
)

func TestDoctorCmd_HealthyDB(t *testing.T) {
	ctx, _ := setupTestContext(t)

	// missing backups only warn
	if err := (&DoctorCmd{}).Run(ctx); err != nil {
		t.Errorf("doctor command failed on healthy database: %v", err)
	}
}

func TestDoctorCmd_AfterTrackerWrites(t *testing.T) {
	ctx, _ := setupTestContext(t)

	if _, err := ctx.Tracker.LogDopamine("2024-06-01", models.DopaminePassed, ""); err != nil {
		t.Fatal(err)
	}
	if err := (&DoctorCmd{}).Run(ctx); err != nil {
		t.Errorf("doctor flagged tracker-maintained data: %v", err)
	}
}

func TestDoctorCmd_OrphanCompletion(t *testing.T) {
	ctx, store := setupTestContext(t)

	if _, err := store.AddHygieneCompletion(models.HygieneCompletion{HabitID: "missing", Date: "2024-06-01", Completed: true}); err != nil {
		t.Fatal(err)
	}
	if err := (&DoctorCmd{}).Run(ctx); err == nil {
		t.Error("doctor should fail when completions reference missing habits")
	}
}

func TestDoctorCmd_MissingSummary(t *testing.T) {
	ctx, store := setupTestContext(t)

	if _, err := store.AddDopamineEntry(models.DopamineEntry{Date: "2024-06-01", Status: models.DopaminePassed}); err != nil {
		t.Fatal(err)
	}
	if err := (&DoctorCmd{}).Run(ctx); err == nil {
		t.Error("doctor should fail when a logged date has no summary")
	}

	if _, err := ctx.Engine.RebuildSummaries(); err != nil {
		t.Fatal(err)
	}
	if err := (&DoctorCmd{}).Run(ctx); err != nil {
		t.Errorf("doctor still failing after rebuild: %v", err)
	}
}

func TestDoctorCmd_NewerSchema(t *testing.T) {
	ctx, store := setupTestContext(t)

	if _, err := store.GetDB().Exec("UPDATE schema_version SET version = 999"); err != nil {
		t.Fatal(err)
	}
	if err := (&DoctorCmd{}).Run(ctx); err == nil {
		t.Error("doctor should fail when the schema is newer than supported")
	}
}

func TestDoctorCmd_Uninitialized(t *testing.T) {
	ctx := cli.NewContext(sqlite.NewStore(filepath.Join(t.TempDir(), "missing.db")))

	if err := (&DoctorCmd{}).Run(ctx); err == nil {
		t.Error("doctor should fail when the database does not exist")
	}
}

func TestCheckSettings(t *testing.T) {
	ctx, store := setupTestContext(t)

	if err := store.SaveSettings(models.Settings{Timezone: "Mars/Olympus", WeekStart: "sunday"}); err != nil {
		t.Fatal(err)
	}
	if err := checkSettings(ctx); err == nil {
		t.Error("expected invalid timezone to fail")
	}

	if err := store.SaveSettings(models.Settings{Timezone: "UTC", WeekStart: "friday"}); err != nil {
		t.Fatal(err)
	}
	if err := checkSettings(ctx); err == nil {
		t.Error("expected invalid week start to fail")
	}
}
