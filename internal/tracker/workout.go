package tracker

import (
	"errors"
	"fmt"

	"github.com/julianstephens/lifetrack/internal/logger"
	"github.com/julianstephens/lifetrack/internal/models"
	"github.com/julianstephens/lifetrack/internal/storage"
)

func (t *Tracker) AddTemplate(name string) (models.WorkoutTemplate, error) {
	name, err := requireName("template", name)
	if err != nil {
		return models.WorkoutTemplate{}, err
	}
	tpl := models.WorkoutTemplate{Name: name, CreatedAt: t.now()}
	id, err := t.store.AddWorkoutTemplate(tpl)
	if err != nil {
		return models.WorkoutTemplate{}, fmt.Errorf("failed to add template: %w", err)
	}
	tpl.ID = id
	logger.Info("added workout template", "id", id, "name", name)
	return tpl, nil
}

// DeleteTemplate removes a template with its exercises and sets. History rows
// that referenced it keep their outcome; their template reference is cleared.
func (t *Tracker) DeleteTemplate(id string) error {
	if err := t.store.DeleteWorkoutTemplate(id); err != nil {
		return fmt.Errorf("failed to delete template %s: %w", id, err)
	}
	logger.Info("deleted workout template", "id", id)
	return nil
}

// AddExercise appends an exercise to a template
func (t *Tracker) AddExercise(templateID, name, pr string) (models.WorkoutExercise, error) {
	name, err := requireName("exercise", name)
	if err != nil {
		return models.WorkoutExercise{}, err
	}
	if _, err := t.store.GetWorkoutTemplate(templateID); err != nil {
		return models.WorkoutExercise{}, fmt.Errorf("failed to get template %s: %w", templateID, err)
	}
	existing, err := t.store.GetWorkoutExercisesByTemplate(templateID)
	if err != nil {
		return models.WorkoutExercise{}, fmt.Errorf("failed to load exercises: %w", err)
	}

	ex := models.WorkoutExercise{
		TemplateID: templateID,
		Name:       name,
		PR:         pr,
		Order:      nextExerciseOrder(existing),
		CreatedAt:  t.now(),
	}
	id, err := t.store.AddWorkoutExercise(ex)
	if err != nil {
		return models.WorkoutExercise{}, fmt.Errorf("failed to add exercise: %w", err)
	}
	ex.ID = id
	logger.Info("added exercise", "id", id, "template", templateID, "name", name)
	return ex, nil
}

func nextExerciseOrder(existing []models.WorkoutExercise) int {
	next := 0
	for _, e := range existing {
		next = max(next, e.Order+1)
	}
	return next
}

func (t *Tracker) UpdateExercisePR(exerciseID, pr string) (models.WorkoutExercise, error) {
	ex, err := t.store.GetWorkoutExercise(exerciseID)
	if err != nil {
		return models.WorkoutExercise{}, fmt.Errorf("failed to get exercise %s: %w", exerciseID, err)
	}
	ex.PR = pr
	if err := t.store.UpdateWorkoutExercise(ex); err != nil {
		return models.WorkoutExercise{}, fmt.Errorf("failed to update exercise %s: %w", exerciseID, err)
	}
	logger.Info("updated personal record", "exercise", exerciseID, "pr", pr)
	return ex, nil
}

// AddSet appends a logged set to an exercise
func (t *Tracker) AddSet(exerciseID, weight string, reps int) (models.WorkoutSet, error) {
	if reps < 0 {
		return models.WorkoutSet{}, invalid("reps cannot be negative")
	}
	if _, err := t.store.GetWorkoutExercise(exerciseID); err != nil {
		return models.WorkoutSet{}, fmt.Errorf("failed to get exercise %s: %w", exerciseID, err)
	}
	existing, err := t.store.GetWorkoutSetsByExercise(exerciseID)
	if err != nil {
		return models.WorkoutSet{}, fmt.Errorf("failed to load sets: %w", err)
	}
	order := 0
	for _, s := range existing {
		order = max(order, s.Order+1)
	}

	set := models.WorkoutSet{ExerciseID: exerciseID, Weight: weight, Reps: reps, Order: order, CreatedAt: t.now()}
	id, err := t.store.AddWorkoutSet(set)
	if err != nil {
		return models.WorkoutSet{}, fmt.Errorf("failed to add set: %w", err)
	}
	set.ID = id
	return set, nil
}

// LogWorkout records the day's outcome, updating the existing history entry
// for date if there is one. templateID may be empty.
func (t *Tracker) LogWorkout(date string, typ models.WorkoutType, templateID, notes string) (models.WorkoutHistory, error) {
	if err := validateDate(date); err != nil {
		return models.WorkoutHistory{}, err
	}
	if !typ.Valid() {
		return models.WorkoutHistory{}, invalid("unknown workout type %q (expected completed, rest or missed)", typ)
	}

	h := models.WorkoutHistory{Date: date, Type: typ, Notes: notes, CreatedAt: t.now()}
	if templateID != "" {
		if _, err := t.store.GetWorkoutTemplate(templateID); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return models.WorkoutHistory{}, invalid("workout template %s does not exist", templateID)
			}
			return models.WorkoutHistory{}, fmt.Errorf("failed to get template %s: %w", templateID, err)
		}
		h.TemplateID = &templateID
	}

	existing, err := t.store.GetWorkoutHistoryByDate(date)
	if err != nil {
		return models.WorkoutHistory{}, fmt.Errorf("failed to look up workout history: %w", err)
	}
	if len(existing) > 0 {
		h.ID = existing[0].ID
		if err := t.store.UpdateWorkoutHistory(h); err != nil {
			return models.WorkoutHistory{}, fmt.Errorf("failed to update workout history: %w", err)
		}
	} else {
		id, err := t.store.AddWorkoutHistory(h)
		if err != nil {
			return models.WorkoutHistory{}, fmt.Errorf("failed to add workout history: %w", err)
		}
		h.ID = id
	}

	logger.Info("logged workout", "date", date, "type", typ)
	return h, t.refresh(date)
}

func (t *Tracker) DeleteWorkout(id string) error {
	h, err := t.store.GetWorkoutHistory(id)
	if err != nil {
		return fmt.Errorf("failed to get workout history %s: %w", id, err)
	}
	if err := t.store.DeleteWorkoutHistory(id); err != nil {
		return fmt.Errorf("failed to delete workout history %s: %w", id, err)
	}
	logger.Info("deleted workout history", "id", id, "date", h.Date)
	return t.refresh(h.Date)
}
