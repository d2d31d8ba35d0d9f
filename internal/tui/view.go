package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.tab {
	case TabDashboard:
		content = m.viewDashboard()
	case TabDopamine:
		content = m.viewDopamine()
	case TabHygiene:
		content = m.viewHygiene()
	case TabWorkout:
		content = m.viewWorkout()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		docStyle.Render(content),
		m.viewStatus(),
		m.help.View(m),
	)
}

func (m Model) viewTabs() string {
	var tabs []string
	for i, title := range tabTitles {
		if m.tab == Tab(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewStatus() string {
	if m.err != nil {
		return dangerStyle.Render("Error: " + m.err.Error())
	}
	if m.message != "" {
		return okStyle.Render(m.message)
	}
	return ""
}

func check(b bool) string {
	if b {
		return okStyle.Render("✓")
	}
	return failStyle.Render("✗")
}

func row(label, value string) string {
	return labelStyle.Render(label) + value
}

func (m Model) viewDashboard() string {
	summary := lipgloss.JoinVertical(lipgloss.Left,
		headingStyle.Render("Today "+m.today),
		"",
		row("Dopamine", check(m.day.Dopamine)),
		row("Workout", check(m.day.Workout)),
		row("Hygiene", fmt.Sprintf("%s %d%% (goal %s)", check(m.day.Hygiene), m.day.HygieneRate, hygieneThresholdLabel())),
		"",
		row("Completion", fmt.Sprintf("%d%%", m.day.Total)),
		row("Streak", fmt.Sprintf("%d days", m.streak)),
	)
	return lipgloss.JoinHorizontal(lipgloss.Top, summary, "    ", m.calendars[TabDashboard].View())
}

func (m Model) viewDopamine() string {
	var b strings.Builder
	b.WriteString(headingStyle.Render("Dopamine control") + "\n\n")
	b.WriteString(row("Current streak", fmt.Sprintf("%d days", m.streak)) + "\n")
	b.WriteString(row("Longest streak", fmt.Sprintf("%d days", m.longest)) + "\n\n")
	b.WriteString(headingStyle.Render("Recent") + "\n")
	if len(m.recent) == 0 {
		b.WriteString(mutedStyle.Render("No entries yet. Press p or f to log today.") + "\n")
	}
	for _, e := range m.recent {
		line := fmt.Sprintf("%s %s %s", e.Date, check(e.Passed()), e.Status)
		if e.Notes != "" {
			line += " " + mutedStyle.Render(e.Notes)
		}
		b.WriteString(line + "\n")
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, b.String(), "    ", m.calendars[TabDopamine].View())
}

func (m Model) viewHygiene() string {
	left := lipgloss.JoinVertical(lipgloss.Left,
		headingStyle.Render("Hygiene "+m.today),
		row("Rate", fmt.Sprintf("%d%% (goal %s)", m.day.HygieneRate, hygieneThresholdLabel())),
		"",
		m.habits.View(),
	)
	return lipgloss.JoinHorizontal(lipgloss.Top, left, "    ", m.calendars[TabHygiene].View())
}

func (m Model) viewWorkout() string {
	today := mutedStyle.Render("not logged")
	if m.workout != nil {
		today = string(m.workout.Type)
		if m.workout.Notes != "" {
			today += " " + mutedStyle.Render(m.workout.Notes)
		}
	}
	left := lipgloss.JoinVertical(lipgloss.Left,
		headingStyle.Render("Workout "+m.today),
		row("Today", today),
		"",
		mutedStyle.Render("c completed · r rest · m missed"),
	)
	return lipgloss.JoinHorizontal(lipgloss.Top, left, "    ", m.calendars[TabWorkout].View())
}
