package tracker

import (
	"errors"
	"path/filepath"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/lifetrack/internal/engine"
	"github.com/julianstephens/lifetrack/internal/models"
	"github.com/julianstephens/lifetrack/internal/storage"
	"github.com/julianstephens/lifetrack/internal/storage/sqlite"
)

var fixedNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func newTestTracker(t *testing.T) (*Tracker, *sqlite.Store) {
	t.Helper()
	store := sqlite.NewStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, store.Init())
	t.Cleanup(func() { store.Close() })
	require.NoError(t, store.SaveSettings(models.Settings{Timezone: "UTC", WeekStart: "sunday"}))

	tr := New(store, engine.New(store))
	tr.now = func() time.Time { return fixedNow }
	return tr, store
}

func summary(t *testing.T, store *sqlite.Store, date string) models.DailyCompletion {
	t.Helper()
	rows, err := store.GetDailyCompletionsByDate(date)
	require.NoError(t, err)
	require.Len(t, rows, 1, "expected exactly one summary for %s", date)
	return rows[0]
}

func TestToday(t *testing.T) {
	tr, store := newTestTracker(t)

	today, err := tr.Today()
	require.NoError(t, err)
	assert.Equal(t, "2024-06-15", today)

	require.NoError(t, store.SaveSettings(models.Settings{Timezone: "Pacific/Kiritimati", WeekStart: "sunday"}))
	tr.now = func() time.Time { return time.Date(2024, 6, 15, 23, 0, 0, 0, time.UTC) }
	today, err = tr.Today()
	require.NoError(t, err)
	assert.Equal(t, "2024-06-16", today)
}

func TestLogDopamineUpserts(t *testing.T) {
	tr, store := newTestTracker(t)

	first, err := tr.LogDopamine("2024-06-01", models.DopamineFailed, "rough")
	require.NoError(t, err)
	assert.Equal(t, 0, summary(t, store, "2024-06-01").TotalCompletion)

	second, err := tr.LogDopamine("2024-06-01", models.DopaminePassed, "better")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	entries, err := store.GetDopamineEntriesByDate("2024-06-01")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "better", entries[0].Notes)

	s := summary(t, store, "2024-06-01")
	assert.True(t, s.DopamineCompleted)
	assert.Equal(t, 33, s.TotalCompletion)
}

func TestLogDopamineValidation(t *testing.T) {
	tr, _ := newTestTracker(t)

	_, err := tr.LogDopamine("06/01/2024", models.DopaminePassed, "")
	assert.True(t, errors.Is(err, ErrInvalidInput), "got %v", err)

	_, err = tr.LogDopamine("2024-06-01", "meh", "")
	assert.True(t, errors.Is(err, ErrInvalidInput), "got %v", err)
}

func TestEditDopamineMovesDate(t *testing.T) {
	tr, store := newTestTracker(t)

	e, err := tr.LogDopamine("2024-06-01", models.DopaminePassed, "")
	require.NoError(t, err)
	_, err = tr.EditDopamine(e.ID, "2024-06-02", models.DopaminePassed, "moved")
	require.NoError(t, err)

	assert.False(t, summary(t, store, "2024-06-01").DopamineCompleted)
	assert.True(t, summary(t, store, "2024-06-02").DopamineCompleted)

	_, err = tr.EditDopamine("missing", "2024-06-02", models.DopaminePassed, "")
	assert.True(t, errors.Is(err, storage.ErrNotFound))
}

func TestEditDopamineOntoOccupiedDate(t *testing.T) {
	tr, store := newTestTracker(t)

	target, err := tr.LogDopamine("2024-06-02", models.DopamineFailed, "")
	require.NoError(t, err)
	moved, err := tr.LogDopamine("2024-06-01", models.DopaminePassed, "")
	require.NoError(t, err)

	got, err := tr.EditDopamine(moved.ID, "2024-06-02", models.DopaminePassed, "merged")
	require.NoError(t, err)
	assert.Equal(t, target.ID, got.ID)

	entries, err := store.GetDopamineEntriesByDate("2024-06-02")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, models.DopaminePassed, entries[0].Status)
	assert.Equal(t, "merged", entries[0].Notes)

	_, err = store.GetDopamineEntry(moved.ID)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	assert.True(t, summary(t, store, "2024-06-02").DopamineCompleted)
	assert.False(t, summary(t, store, "2024-06-01").DopamineCompleted)
}

func TestDeleteDopamineRefreshes(t *testing.T) {
	tr, store := newTestTracker(t)

	e, err := tr.LogDopamine("2024-06-01", models.DopaminePassed, "")
	require.NoError(t, err)
	require.NoError(t, tr.DeleteDopamine(e.ID))

	s := summary(t, store, "2024-06-01")
	assert.False(t, s.DopamineCompleted)
	assert.Equal(t, 0, s.TotalCompletion)
}

func TestRecentDopamine(t *testing.T) {
	tr, _ := newTestTracker(t)
	for _, d := range []string{"2024-06-03", "2024-06-01", "2024-06-07", "2024-06-05", "2024-06-02", "2024-06-06"} {
		_, err := tr.LogDopamine(d, models.DopaminePassed, "")
		require.NoError(t, err)
	}

	recent, err := tr.RecentDopamine(5)
	require.NoError(t, err)
	var dates []string
	for _, e := range recent {
		dates = append(dates, e.Date)
	}
	assert.Equal(t, []string{"2024-06-07", "2024-06-06", "2024-06-05", "2024-06-03", "2024-06-02"}, dates)

	_, err = tr.RecentDopamine(0)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestAddHabitOrder(t *testing.T) {
	tr, _ := newTestTracker(t)

	a, err := tr.AddHabit("Brush teeth", "")
	require.NoError(t, err)
	b, err := tr.AddHabit("  Floss  ", "after brushing")
	require.NoError(t, err)

	assert.Equal(t, 1, a.Order)
	assert.Equal(t, 2, b.Order)
	assert.Equal(t, "Floss", b.Name)

	_, err = tr.AddHabit("   ", "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestToggleHabitUpserts(t *testing.T) {
	tr, store := newTestTracker(t)
	a, _ := tr.AddHabit("A", "")
	b, _ := tr.AddHabit("B", "")

	_, err := tr.ToggleHabit(a.ID, "2024-06-01", true)
	require.NoError(t, err)
	assert.Equal(t, 0, summary(t, store, "2024-06-01").TotalCompletion)

	_, err = tr.ToggleHabit(b.ID, "2024-06-01", true)
	require.NoError(t, err)
	assert.True(t, summary(t, store, "2024-06-01").HygieneCompleted)

	_, err = tr.ToggleHabit(b.ID, "2024-06-01", false)
	require.NoError(t, err)

	completions, err := store.GetHygieneCompletionsByHabit(b.ID)
	require.NoError(t, err)
	require.Len(t, completions, 1)
	assert.False(t, completions[0].Completed)
	assert.False(t, summary(t, store, "2024-06-01").HygieneCompleted)

	states, err := tr.HabitsOn("2024-06-01")
	require.NoError(t, err)
	require.Len(t, states, 2)
	assert.True(t, states[0].Completed)
	assert.False(t, states[1].Completed)

	_, err = tr.ToggleHabit("missing", "2024-06-01", true)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestDeleteHabitRecomputesAffectedDates(t *testing.T) {
	tr, store := newTestTracker(t)
	a, _ := tr.AddHabit("A", "")
	b, _ := tr.AddHabit("B", "")
	c, _ := tr.AddHabit("C", "")
	d, _ := tr.AddHabit("D", "")
	e, _ := tr.AddHabit("E", "")

	for _, h := range []models.HygieneHabit{a, b, c, d} {
		_, err := tr.ToggleHabit(h.ID, "2024-06-01", true)
		require.NoError(t, err)
	}
	// 4 of 5 meets the threshold
	assert.True(t, summary(t, store, "2024-06-01").HygieneCompleted)

	require.NoError(t, tr.DeleteHabit(a.ID))
	// 3 of 4 no longer does
	assert.False(t, summary(t, store, "2024-06-01").HygieneCompleted)

	left, err := store.GetHygieneCompletionsByHabit(a.ID)
	require.NoError(t, err)
	assert.Empty(t, left)

	require.NoError(t, tr.DeleteHabit(e.ID))
	// 3 of 3
	assert.True(t, summary(t, store, "2024-06-01").HygieneCompleted)

	assert.ErrorIs(t, tr.DeleteHabit(e.ID), storage.ErrNotFound)
}

func TestHabitSetChangeRecomputesOtherDates(t *testing.T) {
	tr, store := newTestTracker(t)
	a, _ := tr.AddHabit("A", "")
	b, _ := tr.AddHabit("B", "")

	// only B is completed on this date, so deleting A never touches it directly
	_, err := tr.ToggleHabit(b.ID, "2024-06-01", true)
	require.NoError(t, err)
	assert.False(t, summary(t, store, "2024-06-01").HygieneCompleted)

	require.NoError(t, tr.DeleteHabit(a.ID))
	s := summary(t, store, "2024-06-01")
	assert.True(t, s.HygieneCompleted)
	assert.Equal(t, 33, s.TotalCompletion)

	_, err = tr.AddHabit("C", "")
	require.NoError(t, err)
	assert.False(t, summary(t, store, "2024-06-01").HygieneCompleted)

	report, err := tr.engine.CheckIntegrity()
	require.NoError(t, err)
	assert.True(t, report.Healthy(), report.FormatReport())
}

func TestPurgeOrphanCompletions(t *testing.T) {
	tr, store := newTestTracker(t)
	a, _ := tr.AddHabit("A", "")
	_, err := tr.ToggleHabit(a.ID, "2024-06-01", true)
	require.NoError(t, err)
	_, err = store.AddHygieneCompletion(models.HygieneCompletion{HabitID: "ghost", Date: "2024-06-02", Completed: true})
	require.NoError(t, err)

	n, err := tr.PurgeOrphanCompletions()
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	all, err := store.GetAllHygieneCompletions()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, a.ID, all[0].HabitID)

	n, err = tr.PurgeOrphanCompletions()
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestWorkoutTemplateLifecycle(t *testing.T) {
	tr, store := newTestTracker(t)

	tpl, err := tr.AddTemplate("Leg Day")
	require.NoError(t, err)
	squat, err := tr.AddExercise(tpl.ID, "Squat", "120kg")
	require.NoError(t, err)
	lunge, err := tr.AddExercise(tpl.ID, "Lunge", "")
	require.NoError(t, err)
	assert.Equal(t, 0, squat.Order)
	assert.Equal(t, 1, lunge.Order)

	s1, err := tr.AddSet(squat.ID, "100kg", 5)
	require.NoError(t, err)
	s2, err := tr.AddSet(squat.ID, "105kg", 3)
	require.NoError(t, err)
	assert.Equal(t, 0, s1.Order)
	assert.Equal(t, 1, s2.Order)

	updated, err := tr.UpdateExercisePR(squat.ID, "125kg")
	require.NoError(t, err)
	assert.Equal(t, "125kg", updated.PR)

	h, err := tr.LogWorkout("2024-06-01", models.WorkoutCompleted, tpl.ID, "felt strong")
	require.NoError(t, err)
	require.NotNil(t, h.TemplateID)

	require.NoError(t, tr.DeleteTemplate(tpl.ID))

	exercises, err := store.GetAllWorkoutExercises()
	require.NoError(t, err)
	assert.Empty(t, exercises)
	sets, err := store.GetAllWorkoutSets()
	require.NoError(t, err)
	assert.Empty(t, sets)

	kept, err := store.GetWorkoutHistory(h.ID)
	require.NoError(t, err)
	assert.Nil(t, kept.TemplateID)
	assert.Equal(t, models.WorkoutCompleted, kept.Type)

	_, err = tr.AddExercise(tpl.ID, "Deadlift", "")
	assert.ErrorIs(t, err, storage.ErrNotFound)
	_, err = tr.AddSet(squat.ID, "", -1)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestLogWorkoutUpserts(t *testing.T) {
	tr, store := newTestTracker(t)

	first, err := tr.LogWorkout("2024-06-01", models.WorkoutMissed, "", "")
	require.NoError(t, err)
	assert.False(t, summary(t, store, "2024-06-01").WorkoutCompleted)

	second, err := tr.LogWorkout("2024-06-01", models.WorkoutRest, "", "")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	history, err := store.GetWorkoutHistoryByDate("2024-06-01")
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, models.WorkoutRest, history[0].Type)
	assert.True(t, summary(t, store, "2024-06-01").WorkoutCompleted)

	require.NoError(t, tr.DeleteWorkout(first.ID))
	assert.False(t, summary(t, store, "2024-06-01").WorkoutCompleted)
}

func TestLogWorkoutValidation(t *testing.T) {
	tr, _ := newTestTracker(t)

	_, err := tr.LogWorkout("2024-06-01", "skipped", "", "")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = tr.LogWorkout("2024-06-01", models.WorkoutCompleted, "no-such-template", "")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = tr.LogWorkout("2024-13-01", models.WorkoutCompleted, "", "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}
