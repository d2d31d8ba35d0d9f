package calendar

import (
	"time"

	"github.com/julianstephens/lifetrack/internal/utils"
)

// Cell is one square of the grid. Padding cells have an empty Date.
type Cell struct {
	Date   string
	Day    int
	Status Status
	Today  bool
}

func (c Cell) Blank() bool {
	return c.Date == ""
}

type Grid struct {
	Month     Month
	WeekStart time.Weekday
	Weeks     [][7]Cell
}

// Build lays out month in rows of seven starting at weekStart. lookup is called
// once per day of the month; a nil lookup leaves every status None.
func Build(month Month, today string, weekStart time.Weekday, lookup Lookup) Grid {
	g := Grid{Month: month, WeekStart: weekStart}

	first := month.time()
	lead := (int(first.Weekday()) - int(weekStart) + 7) % 7

	var week [7]Cell
	col := lead
	for i, date := range month.Days() {
		c := Cell{Date: date, Day: i + 1, Today: date == today}
		if lookup != nil {
			c.Status = lookup(date)
		}
		week[col] = c
		col++
		if col == 7 {
			g.Weeks = append(g.Weeks, week)
			week = [7]Cell{}
			col = 0
		}
	}
	if col > 0 {
		g.Weeks = append(g.Weeks, week)
	}
	return g
}

// WeekdayHeaders returns single-letter day names rotated to start at weekStart
func WeekdayHeaders(weekStart time.Weekday) [7]string {
	names := [7]string{"S", "M", "T", "W", "T", "F", "S"}
	var out [7]string
	for i := range out {
		out[i] = names[(int(weekStart)+i)%7]
	}
	return out
}

// Counts tallies statuses across the month's days
func (g Grid) Counts() map[Status]int {
	counts := make(map[Status]int)
	for _, w := range g.Weeks {
		for _, c := range w {
			if !c.Blank() {
				counts[c.Status]++
			}
		}
	}
	return counts
}

// Current builds the grid for the month containing today
func Current(today string, weekStart time.Weekday, lookup Lookup) (Grid, error) {
	t, err := utils.ParseDate(today)
	if err != nil {
		return Grid{}, err
	}
	return Build(MonthOf(t), today, weekStart, lookup), nil
}
