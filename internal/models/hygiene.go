package models

import "time"

// HygieneHabit is a checklist item. There is no archive state; deletion is a hard delete.
type HygieneHabit struct {
	ID          string    `json:"id" yaml:"id"`
	Name        string    `json:"name" yaml:"name"`
	Description string    `json:"description" yaml:"description"`
	Order       int       `json:"order" yaml:"order"`
	CreatedAt   time.Time `json:"created_at" yaml:"created_at"`
}

// HygieneCompletion is the state of one habit on one day
type HygieneCompletion struct {
	ID        string    `json:"id" yaml:"id"`
	HabitID   string    `json:"habit_id" yaml:"habit_id"`
	Date      string    `json:"date" yaml:"date"` // YYYY-MM-DD format
	Completed bool      `json:"completed" yaml:"completed"`
	CreatedAt time.Time `json:"created_at" yaml:"created_at"`
}
