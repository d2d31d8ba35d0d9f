package models

import "time"

// DailyCompletion is the derived summary for one date. It can be deleted and
// regenerated from the logs at any time.
type DailyCompletion struct {
	ID                string    `json:"id" yaml:"id"`
	Date              string    `json:"date" yaml:"date"` // YYYY-MM-DD format
	DopamineCompleted bool      `json:"dopamine_completed" yaml:"dopamine_completed"`
	WorkoutCompleted  bool      `json:"workout_completed" yaml:"workout_completed"`
	HygieneCompleted  bool      `json:"hygiene_completed" yaml:"hygiene_completed"`
	TotalCompletion   int       `json:"total_completion" yaml:"total_completion"` // 0-100
	CreatedAt         time.Time `json:"created_at" yaml:"created_at"`           // last recomputed at
}
