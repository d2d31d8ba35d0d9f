// Package exchange moves the event logs in and out of the store as YAML.
// Daily completions are derived and never exported; they are rebuilt on import.
package exchange

import (
	"errors"
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/julianstephens/lifetrack/internal/constants"
	"github.com/julianstephens/lifetrack/internal/engine"
	"github.com/julianstephens/lifetrack/internal/logger"
	"github.com/julianstephens/lifetrack/internal/models"
	"github.com/julianstephens/lifetrack/internal/storage"
)

type Snapshot struct {
	Version            int                        `yaml:"version"`
	ExportedAt         time.Time                  `yaml:"exported_at"`
	Settings           models.Settings            `yaml:"settings"`
	DopamineEntries    []models.DopamineEntry     `yaml:"dopamine_entries"`
	HygieneHabits      []models.HygieneHabit      `yaml:"hygiene_habits"`
	HygieneCompletions []models.HygieneCompletion `yaml:"hygiene_completions"`
	WorkoutTemplates   []models.WorkoutTemplate   `yaml:"workout_templates"`
	WorkoutExercises   []models.WorkoutExercise   `yaml:"workout_exercises"`
	WorkoutSets        []models.WorkoutSet        `yaml:"workout_sets"`
	WorkoutHistory     []models.WorkoutHistory    `yaml:"workout_history"`
}

// Export reads every log collection and the settings
func Export(store storage.Provider) (Snapshot, error) {
	snap := Snapshot{Version: constants.ExportVersion, ExportedAt: time.Now().UTC()}
	var err error

	if snap.Settings, err = store.GetSettings(); err != nil {
		return Snapshot{}, fmt.Errorf("failed to export settings: %w", err)
	}
	if snap.DopamineEntries, err = store.GetAllDopamineEntries(); err != nil {
		return Snapshot{}, fmt.Errorf("failed to export dopamine entries: %w", err)
	}
	if snap.HygieneHabits, err = store.GetAllHygieneHabits(); err != nil {
		return Snapshot{}, fmt.Errorf("failed to export habits: %w", err)
	}
	if snap.HygieneCompletions, err = store.GetAllHygieneCompletions(); err != nil {
		return Snapshot{}, fmt.Errorf("failed to export completions: %w", err)
	}
	if snap.WorkoutTemplates, err = store.GetAllWorkoutTemplates(); err != nil {
		return Snapshot{}, fmt.Errorf("failed to export workout templates: %w", err)
	}
	if snap.WorkoutExercises, err = store.GetAllWorkoutExercises(); err != nil {
		return Snapshot{}, fmt.Errorf("failed to export workout exercises: %w", err)
	}
	if snap.WorkoutSets, err = store.GetAllWorkoutSets(); err != nil {
		return Snapshot{}, fmt.Errorf("failed to export workout sets: %w", err)
	}
	if snap.WorkoutHistory, err = store.GetAllWorkoutHistory(); err != nil {
		return Snapshot{}, fmt.Errorf("failed to export workout history: %w", err)
	}
	return snap, nil
}

func WriteYAML(w io.Writer, snap Snapshot) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(snap); err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	return enc.Close()
}

// ReadYAML decodes a snapshot, rejecting versions this build does not understand
func ReadYAML(r io.Reader) (Snapshot, error) {
	var snap Snapshot
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&snap); err != nil {
		if errors.Is(err, io.EOF) {
			return Snapshot{}, fmt.Errorf("snapshot is empty")
		}
		return Snapshot{}, fmt.Errorf("failed to decode snapshot: %w", err)
	}
	if snap.Version < 1 || snap.Version > constants.ExportVersion {
		return Snapshot{}, fmt.Errorf("unsupported snapshot version %d (this build reads up to %d)", snap.Version, constants.ExportVersion)
	}
	return snap, nil
}

// Result counts what Import wrote
type Result struct {
	Added     int
	Updated   int
	Summaries int
}

// collection describes how to merge one record type into the store
type collection[T any] struct {
	kind   string
	items  []T
	id     func(T) string
	scan   func() ([]T, error)
	add    func(T) (string, error)
	update func(T) error
}

// merge adds records whose id is unknown and overwrites the rest
func merge[T any](res *Result, c collection[T]) error {
	current, err := c.scan()
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", c.kind, err)
	}
	existing := make(map[string]bool, len(current))
	for _, item := range current {
		existing[c.id(item)] = true
	}

	for _, item := range c.items {
		key := c.id(item)
		if key != "" && existing[key] {
			if err := c.update(item); err != nil {
				return fmt.Errorf("failed to update %s %s: %w", c.kind, key, err)
			}
			res.Updated++
			continue
		}
		if _, err := c.add(item); err != nil {
			return fmt.Errorf("failed to add %s %s: %w", c.kind, key, err)
		}
		res.Added++
	}
	return nil
}

// Import writes every record of snap, preserving ids, then rebuilds all daily
// summaries from the resulting logs. Records whose id already exists are overwritten.
func Import(store storage.Provider, eng *engine.Engine, snap Snapshot) (Result, error) {
	var res Result

	if snap.Settings.Timezone != "" {
		if err := store.SaveSettings(snap.Settings); err != nil {
			return res, fmt.Errorf("failed to import settings: %w", err)
		}
	}

	// parents before children
	steps := []func() error{
		func() error {
			return merge(&res, collection[models.HygieneHabit]{
				kind:   "habit",
				items:  snap.HygieneHabits,
				id:     func(h models.HygieneHabit) string { return h.ID },
				scan:   store.GetAllHygieneHabits,
				add:    store.AddHygieneHabit,
				update: store.UpdateHygieneHabit,
			})
		},
		func() error {
			return merge(&res, collection[models.HygieneCompletion]{
				kind:   "hygiene completion",
				items:  snap.HygieneCompletions,
				id:     func(c models.HygieneCompletion) string { return c.ID },
				scan:   store.GetAllHygieneCompletions,
				add:    store.AddHygieneCompletion,
				update: store.UpdateHygieneCompletion,
			})
		},
		func() error {
			return merge(&res, collection[models.DopamineEntry]{
				kind:   "dopamine entry",
				items:  snap.DopamineEntries,
				id:     func(e models.DopamineEntry) string { return e.ID },
				scan:   store.GetAllDopamineEntries,
				add:    store.AddDopamineEntry,
				update: store.UpdateDopamineEntry,
			})
		},
		func() error {
			return merge(&res, collection[models.WorkoutTemplate]{
				kind:   "workout template",
				items:  snap.WorkoutTemplates,
				id:     func(t models.WorkoutTemplate) string { return t.ID },
				scan:   store.GetAllWorkoutTemplates,
				add:    store.AddWorkoutTemplate,
				update: store.UpdateWorkoutTemplate,
			})
		},
		func() error {
			return merge(&res, collection[models.WorkoutExercise]{
				kind:   "workout exercise",
				items:  snap.WorkoutExercises,
				id:     func(e models.WorkoutExercise) string { return e.ID },
				scan:   store.GetAllWorkoutExercises,
				add:    store.AddWorkoutExercise,
				update: store.UpdateWorkoutExercise,
			})
		},
		func() error {
			return merge(&res, collection[models.WorkoutSet]{
				kind:   "workout set",
				items:  snap.WorkoutSets,
				id:     func(s models.WorkoutSet) string { return s.ID },
				scan:   store.GetAllWorkoutSets,
				add:    store.AddWorkoutSet,
				update: store.UpdateWorkoutSet,
			})
		},
		func() error {
			return merge(&res, collection[models.WorkoutHistory]{
				kind:   "workout history",
				items:  snap.WorkoutHistory,
				id:     func(h models.WorkoutHistory) string { return h.ID },
				scan:   store.GetAllWorkoutHistory,
				add:    store.AddWorkoutHistory,
				update: store.UpdateWorkoutHistory,
			})
		},
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return res, err
		}
	}

	n, err := eng.RebuildSummaries()
	if err != nil {
		return res, fmt.Errorf("failed to rebuild summaries: %w", err)
	}
	res.Summaries = n

	logger.Info("imported snapshot", "added", res.Added, "updated", res.Updated, "summaries", n)
	return res, nil
}
