// Package monthview renders one tab's month calendar. The month is replaced,
// never mutated, when the user pages backward or forward.
package monthview

import (
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/lifetrack/internal/calendar"
)

var captionStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("240")).
	Italic(true)

type Model struct {
	Month     calendar.Month
	Statuses  map[string]calendar.Status
	Today     string
	WeekStart time.Weekday
	legend    []calendar.Status
	styles    calendar.Styles
}

func New(month calendar.Month, weekStart time.Weekday, legend ...calendar.Status) Model {
	return Model{
		Month:     month,
		Statuses:  map[string]calendar.Status{},
		WeekStart: weekStart,
		legend:    legend,
		styles:    calendar.DefaultStyles(),
	}
}

// Prev returns a copy showing the previous month with no statuses loaded
func (m Model) Prev() Model {
	m.Month = m.Month.Prev()
	m.Statuses = map[string]calendar.Status{}
	return m
}

// Next returns a copy showing the following month with no statuses loaded
func (m Model) Next() Model {
	m.Month = m.Month.Next()
	m.Statuses = map[string]calendar.Status{}
	return m
}

func (m *Model) SetStatuses(statuses map[string]calendar.Status) {
	if statuses == nil {
		statuses = map[string]calendar.Status{}
	}
	m.Statuses = statuses
}

func (m *Model) SetStyles(styles calendar.Styles) {
	m.styles = styles
}

func (m Model) Grid() calendar.Grid {
	return calendar.Build(m.Month, m.Today, m.WeekStart, calendar.FromMap(m.Statuses))
}

func (m Model) View() string {
	parts := []string{calendar.Render(m.Grid(), m.styles)}
	if len(m.legend) > 0 {
		parts = append(parts, calendar.Legend(m.styles, m.legend...))
	}
	parts = append(parts, captionStyle.Render("←/→ change month"))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
