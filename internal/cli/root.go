package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/julianstephens/lifetrack/internal/backup"
	"github.com/julianstephens/lifetrack/internal/calendar"
	"github.com/julianstephens/lifetrack/internal/constants"
	"github.com/julianstephens/lifetrack/internal/engine"
	"github.com/julianstephens/lifetrack/internal/models"
	"github.com/julianstephens/lifetrack/internal/storage"
	"github.com/julianstephens/lifetrack/internal/storage/sqlite"
	"github.com/julianstephens/lifetrack/internal/tracker"
	"github.com/julianstephens/lifetrack/internal/utils"
)

type Context struct {
	Store   storage.Provider
	Engine  *engine.Engine
	Tracker *tracker.Tracker
}

func NewContext(store storage.Provider) *Context {
	eng := engine.New(store)
	return &Context{
		Store:   store,
		Engine:  eng,
		Tracker: tracker.New(store, eng),
	}
}

var (
	OKStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	WarnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	FailStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	DimStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// PerformAutomaticBackup backs up a SQLite store before a risky operation.
// PostgreSQL stores are left to the server's own backup tooling.
func (c *Context) PerformAutomaticBackup(reason string) {
	if _, ok := c.Store.(*sqlite.Store); !ok {
		return
	}
	backup.Auto(c.Store.GetConfigPath(), reason)
}

// Settings returns the stored settings, falling back to defaults when the row is missing
func (c *Context) Settings() (models.Settings, error) {
	settings, err := c.Store.GetSettings()
	if errors.Is(err, storage.ErrNotFound) {
		return models.Settings{Timezone: constants.DefaultTimezone, WeekStart: constants.DefaultWeekStart}, nil
	}
	if err != nil {
		return models.Settings{}, fmt.Errorf("failed to get settings: %w", err)
	}
	return settings, nil
}

func (c *Context) WeekStart() (time.Weekday, error) {
	settings, err := c.Settings()
	if err != nil {
		return time.Sunday, err
	}
	return utils.ParseWeekStart(settings.WeekStart), nil
}

// ResolveDate returns date when set, otherwise today in the configured timezone
func (c *Context) ResolveDate(date string) (string, error) {
	if date == "" || date == "today" {
		return c.Tracker.Today()
	}
	if err := utils.ValidateDate(date); err != nil {
		return "", fmt.Errorf("invalid date format: %s (expected YYYY-MM-DD or 'today')", date)
	}
	return date, nil
}

// ResolveMonth parses YYYY-MM, defaulting to the current month
func (c *Context) ResolveMonth(month string) (calendar.Month, string, error) {
	today, err := c.Tracker.Today()
	if err != nil {
		return calendar.Month{}, "", err
	}
	if month == "" {
		month = today
	}
	m, err := calendar.ParseMonth(month)
	if err != nil {
		return calendar.Month{}, "", err
	}
	return m, today, nil
}

// RenderMonth draws a month calendar for statuses with a legend underneath
func (c *Context) RenderMonth(m calendar.Month, today string, statuses map[string]calendar.Status, legend ...calendar.Status) (string, error) {
	weekStart, err := c.WeekStart()
	if err != nil {
		return "", err
	}
	grid := calendar.Build(m, today, weekStart, calendar.FromMap(statuses))
	styles := calendar.DefaultStyles()
	return calendar.Render(grid, styles) + "\n" + calendar.Legend(styles, legend...), nil
}

// Confirm asks a yes/no question. assumeYes skips the prompt.
func Confirm(title string, assumeYes bool) (bool, error) {
	if assumeYes {
		return true, nil
	}
	var ok bool
	err := huh.NewConfirm().
		Title(title).
		Affirmative("Yes").
		Negative("No").
		Value(&ok).
		Run()
	if errors.Is(err, huh.ErrUserAborted) {
		return false, nil
	}
	return ok, err
}

func YesNo(b bool) string {
	if b {
		return OKStyle.Render("✓")
	}
	return FailStyle.Render("✗")
}

// NewTable returns a bordered table with bold headers
func NewTable(headers ...string) *table.Table {
	header := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(DimStyle).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		})
}
