package habitlist

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/lifetrack/internal/tracker"
)

// ToggleHabitMsg asks the parent to set a habit's completion for today
type ToggleHabitMsg struct {
	ID        string
	Completed bool
}

var (
	cursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	doneStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	descStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Toggle key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "toggle"),
		),
	}
}

type Model struct {
	habits []tracker.HabitState
	cursor int
	keys   KeyMap
}

func New(habits []tracker.HabitState) Model {
	return Model{habits: habits, keys: DefaultKeyMap()}
}

// SetHabits replaces the list, keeping the cursor in range
func (m *Model) SetHabits(habits []tracker.HabitState) {
	m.habits = habits
	if m.cursor >= len(habits) {
		m.cursor = max(len(habits)-1, 0)
	}
}

func (m Model) Selected() (tracker.HabitState, bool) {
	if len(m.habits) == 0 {
		return tracker.HabitState{}, false
	}
	return m.habits[m.cursor], true
}

func (m Model) Cursor() int {
	return m.cursor
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < len(m.habits)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, m.keys.Toggle):
		if h, ok := m.Selected(); ok {
			return m, func() tea.Msg {
				return ToggleHabitMsg{ID: h.Habit.ID, Completed: !h.Completed}
			}
		}
	}
	return m, nil
}

func (m Model) View() string {
	if len(m.habits) == 0 {
		return "\n  No habits yet.\n  Add one with 'lifetrack hygiene add <name>'."
	}

	var b strings.Builder
	for i, h := range m.habits {
		cursor := "  "
		if i == m.cursor {
			cursor = cursorStyle.Render("> ")
		}
		check := "[ ]"
		if h.Completed {
			check = doneStyle.Render("[✓]")
		}
		line := fmt.Sprintf("%s%s %s", cursor, check, h.Habit.Name)
		if h.Habit.Description != "" {
			line += " " + descStyle.Render(h.Habit.Description)
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}
