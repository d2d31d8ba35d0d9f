package tracker

import (
	"fmt"

	"github.com/julianstephens/lifetrack/internal/logger"
	"github.com/julianstephens/lifetrack/internal/models"
)

// AddHabit appends a habit after the current last one. The first habit gets order 1.
func (t *Tracker) AddHabit(name, description string) (models.HygieneHabit, error) {
	name, err := requireName("habit", name)
	if err != nil {
		return models.HygieneHabit{}, err
	}

	habits, err := t.store.GetAllHygieneHabits()
	if err != nil {
		return models.HygieneHabit{}, fmt.Errorf("failed to load habits: %w", err)
	}
	next := 1
	if len(habits) > 0 {
		next = habits[0].Order
		for _, h := range habits[1:] {
			next = max(next, h.Order)
		}
		next++
	}

	habit := models.HygieneHabit{Name: name, Description: description, Order: next, CreatedAt: t.now()}
	id, err := t.store.AddHygieneHabit(habit)
	if err != nil {
		return models.HygieneHabit{}, fmt.Errorf("failed to add habit: %w", err)
	}
	habit.ID = id
	logger.Info("added habit", "id", id, "name", name, "order", next)
	return habit, t.refreshHygieneDates()
}

// refreshHygieneDates recomputes today and every date with a hygiene
// completion. A change to the habit set moves the denominator of all of them.
func (t *Tracker) refreshHygieneDates() error {
	today, err := t.Today()
	if err != nil {
		return err
	}
	completions, err := t.store.GetAllHygieneCompletions()
	if err != nil {
		return fmt.Errorf("failed to load completions: %w", err)
	}
	dates := make([]string, 0, len(completions)+1)
	for _, c := range completions {
		dates = append(dates, c.Date)
	}
	dates = append(dates, today)
	return t.refresh(dates...)
}

// HabitState is a habit with its completion state on one date
type HabitState struct {
	Habit     models.HygieneHabit
	Completed bool
}

// HabitsOn lists every habit with whether it was completed on date
func (t *Tracker) HabitsOn(date string) ([]HabitState, error) {
	if err := validateDate(date); err != nil {
		return nil, err
	}
	habits, err := t.store.GetAllHygieneHabits()
	if err != nil {
		return nil, fmt.Errorf("failed to load habits: %w", err)
	}
	completions, err := t.store.GetHygieneCompletionsByDate(date)
	if err != nil {
		return nil, fmt.Errorf("failed to load completions: %w", err)
	}
	done := make(map[string]bool, len(completions))
	for _, c := range completions {
		if _, seen := done[c.HabitID]; !seen {
			done[c.HabitID] = c.Completed
		}
	}
	states := make([]HabitState, 0, len(habits))
	for _, h := range habits {
		states = append(states, HabitState{Habit: h, Completed: done[h.ID]})
	}
	return states, nil
}

// ToggleHabit sets the completion state of a habit on date, updating the
// existing (habit, date) record if there is one.
func (t *Tracker) ToggleHabit(habitID, date string, completed bool) (models.HygieneCompletion, error) {
	if err := validateDate(date); err != nil {
		return models.HygieneCompletion{}, err
	}
	if _, err := t.store.GetHygieneHabit(habitID); err != nil {
		return models.HygieneCompletion{}, fmt.Errorf("failed to get habit %s: %w", habitID, err)
	}

	existing, err := t.store.GetHygieneCompletionsByHabit(habitID)
	if err != nil {
		return models.HygieneCompletion{}, fmt.Errorf("failed to look up completions: %w", err)
	}

	c := models.HygieneCompletion{HabitID: habitID, Date: date, Completed: completed, CreatedAt: t.now()}
	for _, e := range existing {
		if e.Date == date {
			c.ID = e.ID
			break
		}
	}

	if c.ID != "" {
		if err := t.store.UpdateHygieneCompletion(c); err != nil {
			return models.HygieneCompletion{}, fmt.Errorf("failed to update completion: %w", err)
		}
	} else {
		id, err := t.store.AddHygieneCompletion(c)
		if err != nil {
			return models.HygieneCompletion{}, fmt.Errorf("failed to add completion: %w", err)
		}
		c.ID = id
	}

	logger.Info("toggled habit", "habit", habitID, "date", date, "completed", completed)
	return c, t.refresh(date)
}

// DeleteHabit removes the habit and its completions, then refreshes today and
// every date that had a completion for any habit.
func (t *Tracker) DeleteHabit(id string) error {
	completions, err := t.store.GetHygieneCompletionsByHabit(id)
	if err != nil {
		return fmt.Errorf("failed to load completions for habit %s: %w", id, err)
	}
	if err := t.store.DeleteHygieneHabit(id); err != nil {
		return fmt.Errorf("failed to delete habit %s: %w", id, err)
	}

	dates := make([]string, 0, len(completions))
	for _, c := range completions {
		dates = append(dates, c.Date)
	}
	logger.Info("deleted habit", "id", id, "completions", len(completions))

	// dates whose only completions belonged to this habit are gone from the scan
	if err := t.refresh(dates...); err != nil {
		return err
	}
	return t.refreshHygieneDates()
}

// PurgeOrphanCompletions deletes completions whose habit no longer exists and
// returns how many were removed.
func (t *Tracker) PurgeOrphanCompletions() (int, error) {
	habits, err := t.store.GetAllHygieneHabits()
	if err != nil {
		return 0, fmt.Errorf("failed to load habits: %w", err)
	}
	known := make(map[string]bool, len(habits))
	for _, h := range habits {
		known[h.ID] = true
	}

	completions, err := t.store.GetAllHygieneCompletions()
	if err != nil {
		return 0, fmt.Errorf("failed to load completions: %w", err)
	}

	removed := 0
	var dates []string
	for _, c := range completions {
		if known[c.HabitID] {
			continue
		}
		if err := t.store.DeleteHygieneCompletion(c.ID); err != nil {
			return removed, fmt.Errorf("failed to delete completion %s: %w", c.ID, err)
		}
		removed++
		dates = append(dates, c.Date)
	}

	if removed > 0 {
		logger.Info("purged orphan completions", "count", removed)
	}
	return removed, t.refresh(dates...)
}
