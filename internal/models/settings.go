package models

// Settings holds user preferences persisted in the store
type Settings struct {
	Timezone  string `json:"timezone" yaml:"timezone"`
	WeekStart string `json:"week_start" yaml:"week_start"` // "sunday" or "monday"
}
