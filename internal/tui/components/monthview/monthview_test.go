package monthview

import (
	"strings"
	"testing"
	"time"

	"github.com/julianstephens/lifetrack/internal/calendar"
)

func TestPrevNextReplaceMonth(t *testing.T) {
	m := New(calendar.Month{Year: 2024, Month: time.January}, time.Sunday, calendar.Passed)
	m.SetStatuses(map[string]calendar.Status{"2024-01-05": calendar.Passed})

	prev := m.Prev()
	if prev.Month != (calendar.Month{Year: 2023, Month: time.December}) {
		t.Errorf("Prev() month = %v", prev.Month)
	}
	if len(prev.Statuses) != 0 {
		t.Error("Prev() should drop statuses of the old month")
	}
	if len(m.Statuses) != 1 || m.Month.Month != time.January {
		t.Error("Prev() must not modify the receiver")
	}
	if next := m.Next(); next.Month != (calendar.Month{Year: 2024, Month: time.February}) {
		t.Errorf("Next() month = %v", next.Month)
	}
}

func TestView(t *testing.T) {
	m := New(calendar.Month{Year: 2024, Month: time.June}, time.Monday, calendar.Passed, calendar.Failed)
	m.SetStyles(calendar.PlainStyles())
	m.SetStatuses(nil)
	m.Today = "2024-06-15"

	out := m.View()
	if !strings.Contains(out, "June 2024") {
		t.Errorf("view missing title:\n%s", out)
	}
	if got := m.Grid().WeekStart; got != time.Monday {
		t.Errorf("grid week start = %v", got)
	}
}
