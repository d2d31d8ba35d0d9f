package postgres

import (
	"errors"
	"os"
	"testing"

	"github.com/julianstephens/lifetrack/internal/models"
	"github.com/julianstephens/lifetrack/internal/storage"
)

// Set LIFETRACK_TEST_POSTGRES_URL to run, e.g.
// postgres://tracker@localhost:5432/lifetrack_test?sslmode=disable
func TestStoreIntegration(t *testing.T) {
	connStr := os.Getenv("LIFETRACK_TEST_POSTGRES_URL")
	if connStr == "" {
		t.Skip("LIFETRACK_TEST_POSTGRES_URL not set, skipping PostgreSQL integration test")
	}

	store := New(connStr)
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer store.Close()

	if _, err := store.DeleteAllDailyCompletions(); err != nil {
		t.Fatalf("DeleteAllDailyCompletions failed: %v", err)
	}

	t.Run("settings", func(t *testing.T) {
		if err := store.SaveSettings(models.Settings{Timezone: "UTC", WeekStart: "monday"}); err != nil {
			t.Fatalf("SaveSettings failed: %v", err)
		}
		got, err := store.GetSettings()
		if err != nil || got.WeekStart != "monday" {
			t.Errorf("GetSettings() = %+v, %v", got, err)
		}
	})

	t.Run("habit cascade", func(t *testing.T) {
		h, err := store.AddHygieneHabit(models.HygieneHabit{Name: "Floss"})
		if err != nil {
			t.Fatalf("AddHygieneHabit failed: %v", err)
		}
		if _, err := store.AddHygieneCompletion(models.HygieneCompletion{HabitID: h, Date: "2024-03-01", Completed: true}); err != nil {
			t.Fatalf("AddHygieneCompletion failed: %v", err)
		}
		if err := store.DeleteHygieneHabit(h); err != nil {
			t.Fatalf("DeleteHygieneHabit failed: %v", err)
		}
		left, _ := store.GetHygieneCompletionsByHabit(h)
		if len(left) != 0 {
			t.Errorf("%d completions left", len(left))
		}
	})

	t.Run("summaries", func(t *testing.T) {
		id, err := store.AddDailyCompletion(models.DailyCompletion{Date: "2024-03-01", WorkoutCompleted: true, TotalCompletion: 33})
		if err != nil {
			t.Fatalf("AddDailyCompletion failed: %v", err)
		}
		rows, _ := store.GetDailyCompletionsInRange("2024-03-01", "2024-03-01")
		if len(rows) != 1 || !rows[0].WorkoutCompleted {
			t.Errorf("unexpected rows: %+v", rows)
		}
		if err := store.DeleteDailyCompletion(id); err != nil {
			t.Fatalf("DeleteDailyCompletion failed: %v", err)
		}
		if err := store.DeleteDailyCompletion(id); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("second delete = %v, want ErrNotFound", err)
		}
	})
}
