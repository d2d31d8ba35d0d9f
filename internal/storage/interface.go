package storage

import (
	"errors"

	"github.com/julianstephens/lifetrack/internal/models"
)

// ErrNotFound is returned by point lookups, updates and deletes when no record has the given key
var ErrNotFound = errors.New("record not found")

// Provider is the record store. Every collection supports insert (returning the
// assigned id), lookup by id, lookup by indexed field, update by id, delete by id
// and a full scan. Implementations never cache: each call reads the database.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (models.Settings, error)
	SaveSettings(models.Settings) error

	// Dopamine entries
	AddDopamineEntry(models.DopamineEntry) (string, error)
	GetDopamineEntry(id string) (models.DopamineEntry, error)
	GetDopamineEntriesByDate(date string) ([]models.DopamineEntry, error)
	// GetDopamineEntriesInRange returns entries with start <= date <= end, ordered by date.
	GetDopamineEntriesInRange(start, end string) ([]models.DopamineEntry, error)
	GetAllDopamineEntries() ([]models.DopamineEntry, error)
	// GetRecentDopamineEntries returns at most limit entries, newest date first.
	GetRecentDopamineEntries(limit int) ([]models.DopamineEntry, error)
	UpdateDopamineEntry(models.DopamineEntry) error
	DeleteDopamineEntry(id string) error

	// Hygiene habits
	AddHygieneHabit(models.HygieneHabit) (string, error)
	GetHygieneHabit(id string) (models.HygieneHabit, error)
	GetAllHygieneHabits() ([]models.HygieneHabit, error)
	UpdateHygieneHabit(models.HygieneHabit) error
	// DeleteHygieneHabit removes the habit and every completion that references it
	// in a single transaction.
	DeleteHygieneHabit(id string) error

	// Hygiene completions
	AddHygieneCompletion(models.HygieneCompletion) (string, error)
	GetHygieneCompletion(id string) (models.HygieneCompletion, error)
	GetHygieneCompletionsByDate(date string) ([]models.HygieneCompletion, error)
	GetHygieneCompletionsByHabit(habitID string) ([]models.HygieneCompletion, error)
	GetHygieneCompletionsInRange(start, end string) ([]models.HygieneCompletion, error)
	GetAllHygieneCompletions() ([]models.HygieneCompletion, error)
	UpdateHygieneCompletion(models.HygieneCompletion) error
	DeleteHygieneCompletion(id string) error
	// DeleteHygieneCompletionsByHabit deletes every completion for habitID and returns the count.
	DeleteHygieneCompletionsByHabit(habitID string) (int, error)

	// Workout templates, exercises and sets
	AddWorkoutTemplate(models.WorkoutTemplate) (string, error)
	GetWorkoutTemplate(id string) (models.WorkoutTemplate, error)
	GetAllWorkoutTemplates() ([]models.WorkoutTemplate, error)
	UpdateWorkoutTemplate(models.WorkoutTemplate) error
	// DeleteWorkoutTemplate cascades to the template's exercises and their sets
	// and clears the template reference on workout history, in one transaction.
	DeleteWorkoutTemplate(id string) error

	AddWorkoutExercise(models.WorkoutExercise) (string, error)
	GetWorkoutExercise(id string) (models.WorkoutExercise, error)
	GetWorkoutExercisesByTemplate(templateID string) ([]models.WorkoutExercise, error)
	GetAllWorkoutExercises() ([]models.WorkoutExercise, error)
	UpdateWorkoutExercise(models.WorkoutExercise) error
	DeleteWorkoutExercise(id string) error

	AddWorkoutSet(models.WorkoutSet) (string, error)
	GetWorkoutSetsByExercise(exerciseID string) ([]models.WorkoutSet, error)
	GetAllWorkoutSets() ([]models.WorkoutSet, error)
	UpdateWorkoutSet(models.WorkoutSet) error
	DeleteWorkoutSet(id string) error

	// Workout history
	AddWorkoutHistory(models.WorkoutHistory) (string, error)
	GetWorkoutHistory(id string) (models.WorkoutHistory, error)
	GetWorkoutHistoryByDate(date string) ([]models.WorkoutHistory, error)
	GetWorkoutHistoryInRange(start, end string) ([]models.WorkoutHistory, error)
	GetAllWorkoutHistory() ([]models.WorkoutHistory, error)
	UpdateWorkoutHistory(models.WorkoutHistory) error
	DeleteWorkoutHistory(id string) error

	// Daily completions (derived summaries)
	AddDailyCompletion(models.DailyCompletion) (string, error)
	GetDailyCompletionsByDate(date string) ([]models.DailyCompletion, error)
	GetDailyCompletionsInRange(start, end string) ([]models.DailyCompletion, error)
	GetAllDailyCompletions() ([]models.DailyCompletion, error)
	UpdateDailyCompletion(models.DailyCompletion) error
	DeleteDailyCompletion(id string) error
	DeleteAllDailyCompletions() (int, error)
	// ReplaceDailyCompletions deletes every summary and inserts rows atomically,
	// returning the number deleted.
	ReplaceDailyCompletions(rows []models.DailyCompletion) (int, error)

	// Utils
	GetConfigPath() string
}
