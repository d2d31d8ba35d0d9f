package calendar

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type Styles struct {
	Title   lipgloss.Style
	Header  lipgloss.Style
	Day     lipgloss.Style
	Today   lipgloss.Style
	Passed  lipgloss.Style
	Failed  lipgloss.Style
	Partial lipgloss.Style
	Rest    lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205")),
		Header:  lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Day:     lipgloss.NewStyle(),
		Today:   lipgloss.NewStyle().Underline(true).Bold(true),
		Passed:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Failed:  lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		Partial: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Rest:    lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
	}
}

// PlainStyles renders without any color or attributes
func PlainStyles() Styles {
	s := lipgloss.NewStyle()
	return Styles{Title: s, Header: s, Day: s, Today: s, Passed: s, Failed: s, Partial: s, Rest: s}
}

func (s Styles) forStatus(st Status) lipgloss.Style {
	switch st {
	case Passed:
		return s.Passed
	case Failed:
		return s.Failed
	case Partial:
		return s.Partial
	case Rest:
		return s.Rest
	}
	return s.Day
}

const cellWidth = 3

// Render draws the grid as a titled month with weekday headers. Every cell is
// cellWidth columns wide so rows line up regardless of styling.
func Render(g Grid, styles Styles) string {
	var b strings.Builder

	title := g.Month.Label()
	width := cellWidth * 7
	pad := (width - len(title)) / 2
	if pad < 0 {
		pad = 0
	}
	b.WriteString(strings.Repeat(" ", pad))
	b.WriteString(styles.Title.Render(title))
	b.WriteString("\n")

	for _, h := range WeekdayHeaders(g.WeekStart) {
		b.WriteString(styles.Header.Render(fmt.Sprintf("%*s", cellWidth, h)))
	}
	b.WriteString("\n")

	for _, week := range g.Weeks {
		for _, c := range week {
			if c.Blank() {
				b.WriteString(strings.Repeat(" ", cellWidth))
				continue
			}
			style := styles.forStatus(c.Status)
			if c.Today {
				style = style.Inherit(styles.Today)
			}
			b.WriteString(" ")
			b.WriteString(style.Render(fmt.Sprintf("%2d", c.Day)))
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// Legend lists the markers with their styles
func Legend(styles Styles, statuses ...Status) string {
	parts := make([]string, 0, len(statuses))
	for _, st := range statuses {
		parts = append(parts, styles.forStatus(st).Render("■ "+st.String()))
	}
	return strings.Join(parts, "  ")
}
