package models

import "time"

// DopamineStatus is the outcome of a day's impulse-control decision
type DopamineStatus string

const (
	DopaminePassed DopamineStatus = "passed"
	DopamineFailed DopamineStatus = "failed"
)

// Valid reports whether s is a known status
func (s DopamineStatus) Valid() bool {
	return s == DopaminePassed || s == DopamineFailed
}

// DopamineEntry records one day's dopamine-control status.
// Date is unique per day by convention only; the tracker upserts by date.
type DopamineEntry struct {
	ID        string         `json:"id" yaml:"id"`
	Date      string         `json:"date" yaml:"date"` // YYYY-MM-DD format
	Status    DopamineStatus `json:"status" yaml:"status"`
	Notes     string         `json:"notes,omitempty" yaml:"notes,omitempty"`
	CreatedAt time.Time      `json:"created_at" yaml:"created_at"`
}

// Passed reports whether the entry counts toward a streak
func (e DopamineEntry) Passed() bool {
	return e.Status == DopaminePassed
}
