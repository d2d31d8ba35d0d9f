package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/lifetrack/internal/constants"
	"github.com/julianstephens/lifetrack/internal/models"
)

// FormatDate returns the zero-padded calendar-day string (YYYY-MM-DD) for t in t's location.
func FormatDate(t time.Time) string {
	return t.Format(constants.DateFormat)
}

// ParseDate parses a calendar-day string (YYYY-MM-DD) as midnight UTC.
// UTC keeps day arithmetic free of DST shifts.
func ParseDate(date string) (time.Time, error) {
	return time.Parse(constants.DateFormat, date)
}

// ValidateDate checks if the string is a well-formed calendar day.
func ValidateDate(date string) error {
	if _, err := ParseDate(date); err != nil {
		return fmt.Errorf("invalid date format: %s (expected YYYY-MM-DD)", date)
	}
	return nil
}

// AddDays shifts a calendar-day string by n days. Returns "" if date is malformed.
func AddDays(date string, n int) string {
	t, err := ParseDate(date)
	if err != nil {
		return ""
	}
	return FormatDate(t.AddDate(0, 0, n))
}

// LoadLocation loads a timezone location from an IANA timezone name.
// If the timezone is "Local" or empty, it returns the system's local timezone.
func LoadLocation(timezone string) (*time.Location, error) {
	if timezone == "" || timezone == "Local" {
		return time.Local, nil
	}
	return time.LoadLocation(timezone)
}

// NowInTimezone returns the current time in the specified timezone.
func NowInTimezone(timezone string) (time.Time, error) {
	loc, err := LoadLocation(timezone)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return time.Now().In(loc), nil
}

// GetTodayInTimezone returns today's date string (YYYY-MM-DD) in the specified timezone.
func GetTodayInTimezone(timezone string) (string, error) {
	now, err := NowInTimezone(timezone)
	if err != nil {
		return "", err
	}
	return FormatDate(now), nil
}

// GetTodayFromSettings returns today's date string using the timezone from settings.
func GetTodayFromSettings(settings models.Settings) (string, error) {
	return GetTodayInTimezone(settings.Timezone)
}

// ValidateTimezone checks if the timezone name is valid.
func ValidateTimezone(timezone string) bool {
	if timezone == "" || timezone == "Local" {
		return true
	}
	_, err := time.LoadLocation(timezone)
	return err == nil
}

// ParseWeekStart maps a week_start setting to its weekday. Anything but "monday" is Sunday.
func ParseWeekStart(s string) time.Weekday {
	if strings.EqualFold(strings.TrimSpace(s), "monday") {
		return time.Monday
	}
	return time.Sunday
}

// ValidateWeekStart checks if the week_start setting is a supported value.
func ValidateWeekStart(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sunday", "monday":
		return true
	}
	return false
}

// WeekBounds returns the first and last calendar day of the week containing date.
func WeekBounds(date string, weekStart time.Weekday) (string, string, error) {
	t, err := ParseDate(date)
	if err != nil {
		return "", "", err
	}
	offset := (int(t.Weekday()) - int(weekStart) + 7) % 7
	start := t.AddDate(0, 0, -offset)
	return FormatDate(start), FormatDate(start.AddDate(0, 0, 6)), nil
}

// DatesBetween returns every calendar day from start to end inclusive.
// Returns nil if either bound is malformed or end precedes start.
func DatesBetween(start, end string) []string {
	s, err := ParseDate(start)
	if err != nil {
		return nil
	}
	e, err := ParseDate(end)
	if err != nil {
		return nil
	}
	var dates []string
	for d := s; !d.After(e); d = d.AddDate(0, 0, 1) {
		dates = append(dates, FormatDate(d))
	}
	return dates
}
