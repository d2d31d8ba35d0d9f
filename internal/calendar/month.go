// Package calendar builds month grids for status calendars. View state is the
// immutable Month value; navigation returns a new Month rather than mutating one.
package calendar

import (
	"fmt"
	"time"

	"github.com/julianstephens/lifetrack/internal/constants"
	"github.com/julianstephens/lifetrack/internal/utils"
)

type Month struct {
	Year  int
	Month time.Month
}

// MonthOf returns the month containing t
func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

// ParseMonth accepts either a calendar-day string or a YYYY-MM string
func ParseMonth(s string) (Month, error) {
	if t, err := time.Parse("2006-01", s); err == nil {
		return MonthOf(t), nil
	}
	t, err := utils.ParseDate(s)
	if err != nil {
		return Month{}, fmt.Errorf("invalid month %q, expected YYYY-MM or YYYY-MM-DD", s)
	}
	return MonthOf(t), nil
}

func (m Month) time() time.Time {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC)
}

func (m Month) Next() Month {
	return MonthOf(m.time().AddDate(0, 1, 0))
}

func (m Month) Prev() Month {
	return MonthOf(m.time().AddDate(0, -1, 0))
}

// First returns the first day of the month as a calendar-day string
func (m Month) First() string {
	return m.time().Format(constants.DateFormat)
}

func (m Month) Last() string {
	return m.time().AddDate(0, 1, -1).Format(constants.DateFormat)
}

func (m Month) Len() int {
	return m.time().AddDate(0, 1, -1).Day()
}

// Days lists every calendar-day string in the month, in order
func (m Month) Days() []string {
	days := make([]string, 0, m.Len())
	for d := m.time(); d.Month() == m.Month; d = d.AddDate(0, 0, 1) {
		days = append(days, d.Format(constants.DateFormat))
	}
	return days
}

// Contains reports whether date falls in the month. Malformed dates are never contained.
func (m Month) Contains(date string) bool {
	t, err := utils.ParseDate(date)
	if err != nil {
		return false
	}
	return t.Year() == m.Year && t.Month() == m.Month
}

// Label is the display heading, e.g. "June 2024"
func (m Month) Label() string {
	return fmt.Sprintf("%s %d", m.Month, m.Year)
}

func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}
