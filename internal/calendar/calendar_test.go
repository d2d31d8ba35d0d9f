package calendar

import (
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/julianstephens/lifetrack/internal/models"
)

func TestMonthNavigation(t *testing.T) {
	jan := Month{Year: 2024, Month: time.January}

	if got, want := jan.Prev(), (Month{Year: 2023, Month: time.December}); got != want {
		t.Errorf("Prev() = %v, want %v", got, want)
	}
	if got, want := jan.Next(), (Month{Year: 2024, Month: time.February}); got != want {
		t.Errorf("Next() = %v, want %v", got, want)
	}
	if jan.Month != time.January {
		t.Error("navigation mutated the receiver")
	}

	feb := jan.Next()
	if feb.Len() != 29 || feb.Last() != "2024-02-29" || feb.First() != "2024-02-01" {
		t.Errorf("leap February bounds wrong: len=%d first=%s last=%s", feb.Len(), feb.First(), feb.Last())
	}
	if feb.Label() != "February 2024" || feb.String() != "2024-02" {
		t.Errorf("Label/String = %q/%q", feb.Label(), feb.String())
	}
}

func TestMonthContains(t *testing.T) {
	m := Month{Year: 2024, Month: time.June}
	tests := map[string]bool{
		"2024-06-01": true,
		"2024-06-30": true,
		"2024-07-01": false,
		"2023-06-15": false,
		"2024-6-1":   false,
		"garbage":    false,
	}
	for date, want := range tests {
		if got := m.Contains(date); got != want {
			t.Errorf("Contains(%q) = %v, want %v", date, got, want)
		}
	}
}

func TestParseMonth(t *testing.T) {
	for _, in := range []string{"2024-06", "2024-06-17"} {
		m, err := ParseMonth(in)
		if err != nil {
			t.Fatalf("ParseMonth(%q) failed: %v", in, err)
		}
		if m != (Month{Year: 2024, Month: time.June}) {
			t.Errorf("ParseMonth(%q) = %v", in, m)
		}
	}
	if _, err := ParseMonth("June"); err == nil {
		t.Error("expected error for invalid month")
	}
}

func TestDays(t *testing.T) {
	days := Month{Year: 2023, Month: time.February}.Days()
	if len(days) != 28 || days[0] != "2023-02-01" || days[27] != "2023-02-28" {
		t.Errorf("unexpected days: %v", days)
	}
}

func TestBuildSundayStart(t *testing.T) {
	// June 2024 starts on a Saturday
	m := Month{Year: 2024, Month: time.June}
	statuses := map[string]Status{"2024-06-01": Passed, "2024-06-02": Failed}
	g := Build(m, "2024-06-02", time.Sunday, FromMap(statuses))

	if len(g.Weeks) != 6 {
		t.Fatalf("got %d weeks, want 6", len(g.Weeks))
	}
	for i := 0; i < 6; i++ {
		if !g.Weeks[0][i].Blank() {
			t.Errorf("leading cell %d not blank: %+v", i, g.Weeks[0][i])
		}
	}
	wantFirst := Cell{Date: "2024-06-01", Day: 1, Status: Passed}
	if diff := cmp.Diff(wantFirst, g.Weeks[0][6]); diff != "" {
		t.Errorf("first day mismatch (-want +got):\n%s", diff)
	}
	wantSecond := Cell{Date: "2024-06-02", Day: 2, Status: Failed, Today: true}
	if diff := cmp.Diff(wantSecond, g.Weeks[1][0]); diff != "" {
		t.Errorf("second day mismatch (-want +got):\n%s", diff)
	}
	last := g.Weeks[5][0]
	if last.Date != "2024-06-30" || !g.Weeks[5][1].Blank() {
		t.Errorf("unexpected last row: %+v", g.Weeks[5])
	}
}

func TestBuildMondayStart(t *testing.T) {
	// April 2024 starts on a Monday
	g := Build(Month{Year: 2024, Month: time.April}, "", time.Monday, nil)

	if g.Weeks[0][0].Date != "2024-04-01" {
		t.Errorf("first cell = %+v, want 2024-04-01", g.Weeks[0][0])
	}
	if len(g.Weeks) != 5 {
		t.Errorf("got %d weeks, want 5", len(g.Weeks))
	}
	counts := g.Counts()
	if diff := cmp.Diff(map[Status]int{None: 30}, counts); diff != "" {
		t.Errorf("counts mismatch (-want +got):\n%s", diff)
	}
}

func TestWeekdayHeaders(t *testing.T) {
	if diff := cmp.Diff([7]string{"S", "M", "T", "W", "T", "F", "S"}, WeekdayHeaders(time.Sunday)); diff != "" {
		t.Errorf("sunday headers (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([7]string{"M", "T", "W", "T", "F", "S", "S"}, WeekdayHeaders(time.Monday)); diff != "" {
		t.Errorf("monday headers (-want +got):\n%s", diff)
	}
}

func TestStatusPolicies(t *testing.T) {
	hygiene := []struct {
		rate int
		want Status
	}{
		{0, None},
		{1, Partial},
		{79, Partial},
		{80, Passed},
		{100, Passed},
	}
	for _, tt := range hygiene {
		if got := HygieneStatus(tt.rate); got != tt.want {
			t.Errorf("HygieneStatus(%d) = %v, want %v", tt.rate, got, tt.want)
		}
	}

	workout := map[models.WorkoutType]Status{
		models.WorkoutCompleted: Passed,
		models.WorkoutRest:      Rest,
		models.WorkoutMissed:    Failed,
		"unknown":               None,
	}
	for typ, want := range workout {
		if got := WorkoutStatus(typ); got != want {
			t.Errorf("WorkoutStatus(%q) = %v, want %v", typ, got, want)
		}
	}

	if DopamineStatus(models.DopamineEntry{Status: models.DopaminePassed}) != Passed ||
		DopamineStatus(models.DopamineEntry{Status: models.DopamineFailed}) != Failed {
		t.Error("DopamineStatus mapping wrong")
	}
}

func TestRenderPlain(t *testing.T) {
	g := Build(Month{Year: 2024, Month: time.April}, "2024-04-03", time.Monday, nil)
	out := Render(g, PlainStyles())
	lines := strings.Split(out, "\n")

	if strings.TrimSpace(lines[0]) != "April 2024" {
		t.Errorf("title line = %q", lines[0])
	}
	if lines[1] != "  M  T  W  T  F  S  S" {
		t.Errorf("header line = %q", lines[1])
	}
	if lines[2] != "  1  2  3  4  5  6  7" {
		t.Errorf("first week = %q", lines[2])
	}
	if len(lines) != 7 {
		t.Errorf("got %d lines, want 7", len(lines))
	}
}
