package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/lifetrack/internal/models"
	"github.com/julianstephens/lifetrack/internal/tui/components/habitlist"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case habitlist.ToggleHabitMsg:
		m.toggleHabit(msg)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Tab):
			m.tab = (m.tab + 1) % tabCount
			return m, nil
		case key.Matches(msg, m.keys.ShiftTab):
			m.tab = (m.tab - 1 + tabCount) % tabCount
			return m, nil
		case key.Matches(msg, m.keys.PrevMonth):
			m.calendars[m.tab] = m.calendars[m.tab].Prev()
			m.err = m.loadMonth(m.tab)
			return m, nil
		case key.Matches(msg, m.keys.NextMonth):
			m.calendars[m.tab] = m.calendars[m.tab].Next()
			m.err = m.loadMonth(m.tab)
			return m, nil
		}
		return m.updateTab(msg)
	}

	return m, nil
}

func (m Model) updateTab(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.tab {
	case TabDopamine:
		switch {
		case key.Matches(msg, m.keys.Passed):
			m.logDopamine(models.DopaminePassed)
		case key.Matches(msg, m.keys.Failed):
			m.logDopamine(models.DopamineFailed)
		}
	case TabHygiene:
		var cmd tea.Cmd
		m.habits, cmd = m.habits.Update(msg)
		return m, cmd
	case TabWorkout:
		switch {
		case key.Matches(msg, m.keys.Completed):
			m.logWorkout(models.WorkoutCompleted)
		case key.Matches(msg, m.keys.Rest):
			m.logWorkout(models.WorkoutRest)
		case key.Matches(msg, m.keys.Missed):
			m.logWorkout(models.WorkoutMissed)
		}
	}
	return m, nil
}
