package models

import "time"

// WorkoutType is the outcome logged for a day
type WorkoutType string

const (
	WorkoutCompleted WorkoutType = "completed"
	WorkoutRest      WorkoutType = "rest"
	WorkoutMissed    WorkoutType = "missed"
)

// Valid reports whether t is a known workout type
func (t WorkoutType) Valid() bool {
	switch t {
	case WorkoutCompleted, WorkoutRest, WorkoutMissed:
		return true
	}
	return false
}

// Counts reports whether the day counts as a workout success. A rest day does, a missed day does not.
func (t WorkoutType) Counts() bool {
	return t == WorkoutCompleted || t == WorkoutRest
}

// WorkoutTemplate is a named routine such as "Leg Day"
type WorkoutTemplate struct {
	ID        string    `json:"id" yaml:"id"`
	Name      string    `json:"name" yaml:"name"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}

// WorkoutExercise belongs to exactly one template
type WorkoutExercise struct {
	ID         string    `json:"id" yaml:"id"`
	TemplateID string    `json:"template_id" yaml:"template_id"`
	Name       string    `json:"name" yaml:"name"`
	PR         string    `json:"pr" yaml:"pr"` // free-form personal record
	Order      int       `json:"order" yaml:"order"`
	CreatedAt  time.Time `json:"created_at" yaml:"created_at"`
}

// WorkoutSet is a logged set for an exercise
type WorkoutSet struct {
	ID         string    `json:"id" yaml:"id"`
	ExerciseID string    `json:"exercise_id" yaml:"exercise_id"`
	Weight     string    `json:"weight" yaml:"weight"`
	Reps       int       `json:"reps" yaml:"reps"`
	Order      int       `json:"order" yaml:"order"`
	CreatedAt  time.Time `json:"created_at" yaml:"created_at"`
}

// WorkoutHistory is the day's workout outcome. One entry is expected per date.
type WorkoutHistory struct {
	ID         string      `json:"id" yaml:"id"`
	Date       string      `json:"date" yaml:"date"` // YYYY-MM-DD format
	Type       WorkoutType `json:"type" yaml:"type"`
	TemplateID *string     `json:"template_id,omitempty" yaml:"template_id,omitempty"`
	Notes      string      `json:"notes,omitempty" yaml:"notes,omitempty"`
	CreatedAt  time.Time   `json:"created_at" yaml:"created_at"`
}
