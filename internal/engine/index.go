package engine

import (
	"fmt"
	"sort"

	"github.com/julianstephens/lifetrack/internal/constants"
	"github.com/julianstephens/lifetrack/internal/models"
)

// logIndex holds the logs grouped by date, preserving store order within a date
type logIndex struct {
	habits      []models.HygieneHabit
	dopamine    map[string][]models.DopamineEntry
	workouts    map[string][]models.WorkoutHistory
	completions map[string][]models.HygieneCompletion
}

func newLogIndex(habits []models.HygieneHabit, dopamine []models.DopamineEntry,
	workouts []models.WorkoutHistory, completions []models.HygieneCompletion) *logIndex {
	idx := &logIndex{
		habits:      habits,
		dopamine:    make(map[string][]models.DopamineEntry),
		workouts:    make(map[string][]models.WorkoutHistory),
		completions: make(map[string][]models.HygieneCompletion),
	}
	for _, d := range dopamine {
		idx.dopamine[d.Date] = append(idx.dopamine[d.Date], d)
	}
	for _, w := range workouts {
		idx.workouts[w.Date] = append(idx.workouts[w.Date], w)
	}
	for _, c := range completions {
		idx.completions[c.Date] = append(idx.completions[c.Date], c)
	}
	return idx
}

// loadIndex reads every log collection once
func (e *Engine) loadIndex() (*logIndex, error) {
	habits, err := e.store.GetAllHygieneHabits()
	if err != nil {
		return nil, fmt.Errorf("failed to load habits: %w", err)
	}
	dopamine, err := e.store.GetAllDopamineEntries()
	if err != nil {
		return nil, fmt.Errorf("failed to load dopamine entries: %w", err)
	}
	workouts, err := e.store.GetAllWorkoutHistory()
	if err != nil {
		return nil, fmt.Errorf("failed to load workout history: %w", err)
	}
	completions, err := e.store.GetAllHygieneCompletions()
	if err != nil {
		return nil, fmt.Errorf("failed to load hygiene completions: %w", err)
	}
	return newLogIndex(habits, dopamine, workouts, completions), nil
}

func (idx *logIndex) summary(date string) DaySummary {
	s := DaySummary{
		Date:        date,
		Dopamine:    dopaminePassed(idx.dopamine[date]),
		Workout:     workoutCounts(idx.workouts[date]),
		HygieneRate: hygieneRate(idx.habits, idx.completions[date]),
	}
	s.Hygiene = s.HygieneRate >= constants.HygieneThreshold
	s.Total = percent(s.completedSignals(), constants.CompletionSignals)
	return s
}

// dates returns every date that appears in any log, ascending
func (idx *logIndex) dates() []string {
	set := make(map[string]struct{})
	for d := range idx.dopamine {
		set[d] = struct{}{}
	}
	for d := range idx.workouts {
		set[d] = struct{}{}
	}
	for d := range idx.completions {
		set[d] = struct{}{}
	}
	dates := make([]string, 0, len(set))
	for d := range set {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	return dates
}
