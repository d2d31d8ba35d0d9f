package hygiene

import (
	"path/filepath"
	"testing"

	"github.com/julianstephens/lifetrack/internal/cli"
	"github.com/julianstephens/lifetrack/internal/models"
	"github.com/julianstephens/lifetrack/internal/storage/sqlite"
)

func setupTestHygieneDB(t *testing.T) (*cli.Context, *sqlite.Store) {
	t.Helper()
	store := sqlite.NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to initialize store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return cli.NewContext(store), store
}

func completion(t *testing.T, ctx *cli.Context, habitID, date string) (models.HygieneCompletion, bool) {
	t.Helper()
	completions, err := ctx.Store.GetHygieneCompletionsByHabit(habitID)
	if err != nil {
		t.Fatal(err)
	}
	for _, c := range completions {
		if c.Date == date {
			return c, true
		}
	}
	return models.HygieneCompletion{}, false
}

func TestHygieneAddRejectsDuplicateName(t *testing.T) {
	ctx, _ := setupTestHygieneDB(t)

	if err := (&HygieneAddCmd{Name: "Floss"}).Run(ctx); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if err := (&HygieneAddCmd{Name: "floss"}).Run(ctx); err == nil {
		t.Error("expected duplicate name to be rejected")
	}
}

func TestHygieneToggleFlips(t *testing.T) {
	ctx, _ := setupTestHygieneDB(t)
	habit, err := ctx.Tracker.AddHabit("Floss", "")
	if err != nil {
		t.Fatal(err)
	}

	cmd := &HygieneToggleCmd{Habit: "Floss", Date: "2024-06-01"}
	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("toggle failed: %v", err)
	}
	c, ok := completion(t, ctx, habit.ID, "2024-06-01")
	if !ok || !c.Completed {
		t.Fatalf("first toggle should complete, got %+v", c)
	}

	if err := cmd.Run(ctx); err != nil {
		t.Fatalf("second toggle failed: %v", err)
	}
	c, ok = completion(t, ctx, habit.ID, "2024-06-01")
	if !ok || c.Completed {
		t.Errorf("second toggle should clear, got %+v", c)
	}

	completions, err := ctx.Store.GetHygieneCompletionsByHabit(habit.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(completions) != 1 {
		t.Errorf("toggling created %d records, want 1", len(completions))
	}
}

func TestHygieneToggleExplicit(t *testing.T) {
	ctx, _ := setupTestHygieneDB(t)
	habit, err := ctx.Tracker.AddHabit("Shower", "")
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; i < 2; i++ {
		if err := (&HygieneToggleCmd{Habit: habit.ID, Date: "2024-06-01", Done: true}).Run(ctx); err != nil {
			t.Fatalf("toggle --done failed: %v", err)
		}
	}
	c, ok := completion(t, ctx, habit.ID, "2024-06-01")
	if !ok || !c.Completed {
		t.Errorf("--done twice should stay completed, got %+v", c)
	}

	if err := (&HygieneToggleCmd{Habit: habit.ID, Date: "2024-06-01", Undo: true}).Run(ctx); err != nil {
		t.Fatalf("toggle --undo failed: %v", err)
	}
	c, _ = completion(t, ctx, habit.ID, "2024-06-01")
	if c.Completed {
		t.Error("--undo should clear the completion")
	}
}

func TestHygieneToggleUnknownHabit(t *testing.T) {
	ctx, _ := setupTestHygieneDB(t)
	if err := (&HygieneToggleCmd{Habit: "Nope", Date: "2024-06-01"}).Run(ctx); err == nil {
		t.Error("expected error for unknown habit")
	}
}

func TestHygieneDeleteAndPurge(t *testing.T) {
	ctx, store := setupTestHygieneDB(t)
	habit, err := ctx.Tracker.AddHabit("Floss", "")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := ctx.Tracker.ToggleHabit(habit.ID, "2024-06-01", true); err != nil {
		t.Fatal(err)
	}
	if _, err := store.AddHygieneCompletion(models.HygieneCompletion{HabitID: "gone", Date: "2024-06-01", Completed: true}); err != nil {
		t.Fatal(err)
	}

	if err := (&HygieneDeleteCmd{Habit: "Floss", Yes: true}).Run(ctx); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, ok := completion(t, ctx, habit.ID, "2024-06-01"); ok {
		t.Error("delete left completions behind")
	}

	if err := (&HygienePurgeOrphansCmd{Yes: true}).Run(ctx); err != nil {
		t.Fatalf("purge failed: %v", err)
	}
	all, err := store.GetAllHygieneCompletions()
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 0 {
		t.Errorf("purge left %d completions", len(all))
	}
}

func TestHygieneReadCommands(t *testing.T) {
	ctx, _ := setupTestHygieneDB(t)

	if err := (&HygieneListCmd{Date: "2024-06-01"}).Run(ctx); err != nil {
		t.Errorf("list on empty store failed: %v", err)
	}
	if _, err := ctx.Tracker.AddHabit("Floss", "nightly"); err != nil {
		t.Fatal(err)
	}
	if err := (&HygieneListCmd{Date: "2024-06-01"}).Run(ctx); err != nil {
		t.Errorf("list failed: %v", err)
	}
	if err := (&HygieneRateCmd{Date: "2024-06-01"}).Run(ctx); err != nil {
		t.Errorf("rate failed: %v", err)
	}
	if err := (&HygieneCalendarCmd{Month: "2024-06"}).Run(ctx); err != nil {
		t.Errorf("calendar failed: %v", err)
	}
}
