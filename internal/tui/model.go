// Package tui is the interactive dashboard. Every view is rebuilt from the
// store after a mutation, so the screen never disagrees with the database.
package tui

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/lifetrack/internal/calendar"
	"github.com/julianstephens/lifetrack/internal/constants"
	"github.com/julianstephens/lifetrack/internal/engine"
	"github.com/julianstephens/lifetrack/internal/logger"
	"github.com/julianstephens/lifetrack/internal/models"
	"github.com/julianstephens/lifetrack/internal/storage"
	"github.com/julianstephens/lifetrack/internal/tracker"
	"github.com/julianstephens/lifetrack/internal/tui/components/habitlist"
	"github.com/julianstephens/lifetrack/internal/tui/components/monthview"
	"github.com/julianstephens/lifetrack/internal/utils"
)

type Tab int

const (
	TabDashboard Tab = iota
	TabDopamine
	TabHygiene
	TabWorkout
	tabCount
)

var tabTitles = [tabCount]string{"Dashboard", "Dopamine", "Hygiene", "Workout"}

func (t Tab) String() string {
	if t < 0 || t >= tabCount {
		return "Unknown"
	}
	return tabTitles[t]
}

const recentEntries = 5

type Model struct {
	store   storage.Provider
	engine  *engine.Engine
	tracker *tracker.Tracker

	tab       Tab
	keys      KeyMap
	help      help.Model
	calendars [tabCount]monthview.Model
	habits    habitlist.Model

	today   string
	day     engine.DaySummary
	streak  int
	longest int
	recent  []models.DopamineEntry
	workout *models.WorkoutHistory

	message  string
	err      error
	quitting bool
	width    int
	height   int
}

func NewModel(store storage.Provider, eng *engine.Engine, tr *tracker.Tracker) Model {
	m := Model{
		store:   store,
		engine:  eng,
		tracker: tr,
		tab:     TabDashboard,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		habits:  habitlist.New(nil),
	}

	today, err := tr.Today()
	if err != nil {
		m.err = err
		today = utils.FormatDate(time.Now())
	}
	m.today = today

	weekStart := time.Sunday
	if settings, err := store.GetSettings(); err == nil {
		weekStart = utils.ParseWeekStart(settings.WeekStart)
	} else if !errors.Is(err, storage.ErrNotFound) {
		m.err = err
	}

	month := calendar.Month{Year: 1970, Month: time.January}
	if t, err := utils.ParseDate(today); err == nil {
		month = calendar.MonthOf(t)
	}
	m.calendars[TabDashboard] = monthview.New(month, weekStart, calendar.Passed, calendar.Failed)
	m.calendars[TabDopamine] = monthview.New(month, weekStart, calendar.Passed, calendar.Failed)
	m.calendars[TabHygiene] = monthview.New(month, weekStart, calendar.Passed, calendar.Partial)
	m.calendars[TabWorkout] = monthview.New(month, weekStart, calendar.Passed, calendar.Rest, calendar.Failed)

	m.refresh()
	return m
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Tab() Tab {
	return m.tab
}

func (m Model) Month(t Tab) calendar.Month {
	return m.calendars[t].Month
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	return append(keys, m.tabKeys()...)
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help}
	navigation := []key.Binding{m.keys.PrevMonth, m.keys.NextMonth}
	return [][]key.Binding{global, navigation, m.tabKeys()}
}

func (m Model) tabKeys() []key.Binding {
	switch m.tab {
	case TabDopamine:
		return []key.Binding{m.keys.Passed, m.keys.Failed}
	case TabHygiene:
		return []key.Binding{m.keys.Up, m.keys.Down, m.keys.Toggle}
	case TabWorkout:
		return []key.Binding{m.keys.Completed, m.keys.Rest, m.keys.Missed}
	}
	return nil
}

// refresh re-reads today's state and every visible month. The first failure
// is kept for display; the rest of the screen still loads.
func (m *Model) refresh() {
	fail := func(err error) {
		if err != nil && m.err == nil {
			m.err = err
		}
	}

	day, err := m.engine.DayStatus(m.today)
	fail(err)
	m.day = day

	m.streak, err = m.engine.CurrentStreak(m.today)
	fail(err)
	m.longest, err = m.engine.LongestStreakFromStore()
	fail(err)

	m.recent, err = m.tracker.RecentDopamine(recentEntries)
	fail(err)

	habits, err := m.tracker.HabitsOn(m.today)
	fail(err)
	m.habits.SetHabits(habits)

	m.workout = nil
	history, err := m.store.GetWorkoutHistoryByDate(m.today)
	fail(err)
	if len(history) > 0 {
		m.workout = &history[0]
	}

	for t := range tabCount {
		fail(m.loadMonth(t))
	}
}

func (m *Model) loadMonth(t Tab) error {
	cal := &m.calendars[t]
	cal.Today = m.today

	var (
		statuses map[string]calendar.Status
		err      error
	)
	switch t {
	case TabDashboard:
		statuses, err = m.engine.DashboardMonth(cal.Month)
	case TabDopamine:
		statuses, err = m.engine.DopamineMonth(cal.Month)
	case TabHygiene:
		statuses, err = m.engine.HygieneMonth(cal.Month)
	case TabWorkout:
		statuses, err = m.engine.WorkoutMonth(cal.Month)
	}
	if err != nil {
		return fmt.Errorf("failed to load %s calendar: %w", t, err)
	}
	cal.SetStatuses(statuses)
	return nil
}

// mutate runs a tracker call, reports the outcome on the status line and
// reloads every view from the store.
func (m *Model) mutate(done string, fn func() error) {
	m.err = nil
	m.message = ""
	if err := fn(); err != nil {
		logger.Warn("tui mutation failed", "error", err)
		m.err = err
	} else {
		m.message = done
	}
	m.refresh()
}

func (m *Model) logDopamine(status models.DopamineStatus) {
	m.mutate(fmt.Sprintf("Dopamine %s for %s", status, m.today), func() error {
		notes := ""
		for _, e := range m.recent {
			if e.Date == m.today {
				notes = e.Notes
				break
			}
		}
		_, err := m.tracker.LogDopamine(m.today, status, notes)
		return err
	})
}

func (m *Model) logWorkout(typ models.WorkoutType) {
	m.mutate(fmt.Sprintf("Workout %s for %s", typ, m.today), func() error {
		templateID, notes := "", ""
		if m.workout != nil {
			notes = m.workout.Notes
			if m.workout.TemplateID != nil {
				templateID = *m.workout.TemplateID
			}
		}
		_, err := m.tracker.LogWorkout(m.today, typ, templateID, notes)
		return err
	})
}

func (m *Model) toggleHabit(msg habitlist.ToggleHabitMsg) {
	verb := "Completed"
	if !msg.Completed {
		verb = "Cleared"
	}
	name := msg.ID
	if h, ok := m.habits.Selected(); ok && h.Habit.ID == msg.ID {
		name = h.Habit.Name
	}
	m.mutate(fmt.Sprintf("%s %s", verb, name), func() error {
		_, err := m.tracker.ToggleHabit(msg.ID, m.today, msg.Completed)
		return err
	})
}

func hygieneThresholdLabel() string {
	return fmt.Sprintf("%d%%", constants.HygieneThreshold)
}
