package engine

import (
	"fmt"

	"github.com/julianstephens/lifetrack/internal/calendar"
)

// DopamineMonth maps each logged day of m to passed or failed
func (e *Engine) DopamineMonth(m calendar.Month) (map[string]calendar.Status, error) {
	entries, err := e.store.GetDopamineEntriesInRange(m.First(), m.Last())
	if err != nil {
		return nil, fmt.Errorf("failed to load dopamine entries for %s: %w", m, err)
	}
	out := make(map[string]calendar.Status)
	for _, en := range entries {
		if _, seen := out[en.Date]; !seen {
			out[en.Date] = calendar.DopamineStatus(en)
		}
	}
	return out, nil
}

// HygieneMonth marks days at or above the hygiene threshold passed and days
// with some progress partial.
func (e *Engine) HygieneMonth(m calendar.Month) (map[string]calendar.Status, error) {
	habits, err := e.store.GetAllHygieneHabits()
	if err != nil {
		return nil, fmt.Errorf("failed to load habits: %w", err)
	}
	completions, err := e.store.GetHygieneCompletionsInRange(m.First(), m.Last())
	if err != nil {
		return nil, fmt.Errorf("failed to load completions for %s: %w", m, err)
	}
	idx := newLogIndex(habits, nil, nil, completions)

	out := make(map[string]calendar.Status)
	for date, cs := range idx.completions {
		if st := calendar.HygieneStatus(hygieneRate(habits, cs)); st != calendar.None {
			out[date] = st
		}
	}
	return out, nil
}

// WorkoutMonth maps completed days to passed, rest days to rest and missed days to failed
func (e *Engine) WorkoutMonth(m calendar.Month) (map[string]calendar.Status, error) {
	history, err := e.store.GetWorkoutHistoryInRange(m.First(), m.Last())
	if err != nil {
		return nil, fmt.Errorf("failed to load workout history for %s: %w", m, err)
	}
	out := make(map[string]calendar.Status)
	for _, h := range history {
		if _, seen := out[h.Date]; !seen {
			out[h.Date] = calendar.WorkoutStatus(h.Type)
		}
	}
	return out, nil
}

// DashboardMonth is the overview calendar. It shows the dopamine log.
func (e *Engine) DashboardMonth(m calendar.Month) (map[string]calendar.Status, error) {
	return e.DopamineMonth(m)
}
