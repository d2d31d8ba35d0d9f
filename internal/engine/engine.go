// Package engine derives daily completion summaries and dopamine streaks from
// the dopamine, hygiene and workout logs.
//
// Dates are calendar-day strings (YYYY-MM-DD). The engine does not validate
// them: a malformed date matches no records and yields zero results.
package engine

import (
	"fmt"
	"math"
	"time"

	"github.com/julianstephens/lifetrack/internal/constants"
	"github.com/julianstephens/lifetrack/internal/logger"
	"github.com/julianstephens/lifetrack/internal/models"
	"github.com/julianstephens/lifetrack/internal/storage"
)

type Engine struct {
	store storage.Provider
	now   func() time.Time
}

func New(store storage.Provider) *Engine {
	return &Engine{store: store, now: time.Now}
}

// DaySummary is the computed, unpersisted state of one day
type DaySummary struct {
	Date        string
	Dopamine    bool
	Workout     bool
	Hygiene     bool
	HygieneRate int
	Total       int
}

func (d DaySummary) completedSignals() int {
	n := 0
	for _, ok := range []bool{d.Dopamine, d.Workout, d.Hygiene} {
		if ok {
			n++
		}
	}
	return n
}

// percent rounds half away from zero
func percent(done, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(done) / float64(total)))
}

// HygieneCompletionRate is the share of currently existing habits completed on
// date, 0 to 100. With no habits the rate is 0. Completions for deleted habits
// are ignored.
func (e *Engine) HygieneCompletionRate(date string) (int, error) {
	habits, err := e.store.GetAllHygieneHabits()
	if err != nil {
		return 0, fmt.Errorf("failed to load habits: %w", err)
	}
	if len(habits) == 0 {
		return 0, nil
	}
	completions, err := e.store.GetHygieneCompletionsByDate(date)
	if err != nil {
		return 0, fmt.Errorf("failed to load completions for %s: %w", date, err)
	}
	return hygieneRate(habits, completions), nil
}

// hygieneRate uses the first completion row per habit
func hygieneRate(habits []models.HygieneHabit, completions []models.HygieneCompletion) int {
	if len(habits) == 0 {
		return 0
	}
	first := make(map[string]bool, len(completions))
	for _, c := range completions {
		if _, seen := first[c.HabitID]; !seen {
			first[c.HabitID] = c.Completed
		}
	}
	done := 0
	for _, h := range habits {
		if first[h.ID] {
			done++
		}
	}
	return percent(done, len(habits))
}

func dopaminePassed(entries []models.DopamineEntry) bool {
	return len(entries) > 0 && entries[0].Passed()
}

func workoutCounts(history []models.WorkoutHistory) bool {
	return len(history) > 0 && history[0].Type.Counts()
}

// DayStatus evaluates the three daily signals for date
func (e *Engine) DayStatus(date string) (DaySummary, error) {
	s := DaySummary{Date: date}

	entries, err := e.store.GetDopamineEntriesByDate(date)
	if err != nil {
		return s, fmt.Errorf("failed to load dopamine entries for %s: %w", date, err)
	}
	s.Dopamine = dopaminePassed(entries)

	history, err := e.store.GetWorkoutHistoryByDate(date)
	if err != nil {
		return s, fmt.Errorf("failed to load workout history for %s: %w", date, err)
	}
	s.Workout = workoutCounts(history)

	rate, err := e.HygieneCompletionRate(date)
	if err != nil {
		return s, err
	}
	s.HygieneRate = rate
	s.Hygiene = rate >= constants.HygieneThreshold

	s.Total = percent(s.completedSignals(), constants.CompletionSignals)
	return s, nil
}

// TodayCompletionPercentage is the equally weighted share of the three daily
// signals met on date. It is always one of 0, 33, 67 or 100.
func (e *Engine) TodayCompletionPercentage(date string) (int, error) {
	s, err := e.DayStatus(date)
	if err != nil {
		return 0, err
	}
	return s.Total, nil
}

// UpsertDailyCompletion recomputes the summary for date and writes it, updating
// the first existing row for the date or inserting one. It must run after any
// change to the logs for that date.
func (e *Engine) UpsertDailyCompletion(date string) (models.DailyCompletion, error) {
	s, err := e.DayStatus(date)
	if err != nil {
		return models.DailyCompletion{}, err
	}

	existing, err := e.store.GetDailyCompletionsByDate(date)
	if err != nil {
		return models.DailyCompletion{}, fmt.Errorf("failed to look up summary for %s: %w", date, err)
	}

	row := models.DailyCompletion{
		Date:              date,
		DopamineCompleted: s.Dopamine,
		WorkoutCompleted:  s.Workout,
		HygieneCompleted:  s.Hygiene,
		TotalCompletion:   s.Total,
		CreatedAt:         e.now(),
	}

	if len(existing) > 0 {
		row.ID = existing[0].ID
		if err := e.store.UpdateDailyCompletion(row); err != nil {
			return models.DailyCompletion{}, fmt.Errorf("failed to update summary for %s: %w", date, err)
		}
	} else {
		id, err := e.store.AddDailyCompletion(row)
		if err != nil {
			return models.DailyCompletion{}, fmt.Errorf("failed to insert summary for %s: %w", date, err)
		}
		row.ID = id
	}

	logger.Debug("recomputed daily completion", "date", date, "total", row.TotalCompletion)
	return row, nil
}
