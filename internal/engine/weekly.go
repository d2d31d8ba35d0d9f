package engine

import (
	"fmt"
	"time"

	"github.com/julianstephens/lifetrack/internal/utils"
)

type Week struct {
	Start string
	End   string
	Days  []DaySummary
	// Average is the rounded mean of the seven daily totals
	Average int
}

// WeeklyCompletion computes the seven day summaries of the week containing date.
// Summaries are computed from the logs, not read from the summary table. A
// malformed date yields an empty Week.
func (e *Engine) WeeklyCompletion(date string, weekStart time.Weekday) (Week, error) {
	start, end, err := utils.WeekBounds(date, weekStart)
	if err != nil {
		return Week{}, nil
	}
	w := Week{Start: start, End: end}

	habits, err := e.store.GetAllHygieneHabits()
	if err != nil {
		return Week{}, fmt.Errorf("failed to load habits: %w", err)
	}
	dopamine, err := e.store.GetDopamineEntriesInRange(start, end)
	if err != nil {
		return Week{}, fmt.Errorf("failed to load dopamine entries: %w", err)
	}
	workouts, err := e.store.GetWorkoutHistoryInRange(start, end)
	if err != nil {
		return Week{}, fmt.Errorf("failed to load workout history: %w", err)
	}
	completions, err := e.store.GetHygieneCompletionsInRange(start, end)
	if err != nil {
		return Week{}, fmt.Errorf("failed to load hygiene completions: %w", err)
	}
	idx := newLogIndex(habits, dopamine, workouts, completions)

	sum := 0
	for _, d := range utils.DatesBetween(start, end) {
		s := idx.summary(d)
		w.Days = append(w.Days, s)
		sum += s.Total
	}
	w.Average = percent(sum, 100*len(w.Days))
	return w, nil
}
