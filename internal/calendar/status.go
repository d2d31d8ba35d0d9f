package calendar

import (
	"github.com/julianstephens/lifetrack/internal/constants"
	"github.com/julianstephens/lifetrack/internal/models"
)

// Status is the marker drawn on a calendar day
type Status int

const (
	None Status = iota
	Passed
	Failed
	Partial
	Rest
)

func (s Status) String() string {
	switch s {
	case Passed:
		return "passed"
	case Failed:
		return "failed"
	case Partial:
		return "partial"
	case Rest:
		return "rest"
	}
	return "none"
}

// Lookup returns the status for a calendar-day string
type Lookup func(date string) Status

// FromMap adapts a date-keyed status map; absent dates are None
func FromMap(statuses map[string]Status) Lookup {
	return func(date string) Status {
		return statuses[date]
	}
}

func DopamineStatus(e models.DopamineEntry) Status {
	if e.Passed() {
		return Passed
	}
	return Failed
}

// HygieneStatus maps a completion rate to a marker: at or above the threshold
// is Passed, any progress below it is Partial.
func HygieneStatus(rate int) Status {
	switch {
	case rate >= constants.HygieneThreshold:
		return Passed
	case rate > 0:
		return Partial
	}
	return None
}

func WorkoutStatus(t models.WorkoutType) Status {
	switch t {
	case models.WorkoutCompleted:
		return Passed
	case models.WorkoutRest:
		return Rest
	case models.WorkoutMissed:
		return Failed
	}
	return None
}
