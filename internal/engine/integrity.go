package engine

import (
	"fmt"
	"sort"
	"strings"

	"github.com/julianstephens/lifetrack/internal/models"
)

// HabitDate identifies the (habit, date) key of a hygiene completion
type HabitDate struct {
	HabitID string
	Date    string
}

// StaleSummary is a stored summary whose fields no longer match the logs
type StaleSummary struct {
	Stored   models.DailyCompletion
	Computed DaySummary
}

// IntegrityReport lists inconsistencies between the logs and the summary
// table. Nothing is repaired by the scan.
type IntegrityReport struct {
	OrphanCompletions      []models.HygieneCompletion
	OrphanExercises        []models.WorkoutExercise
	OrphanSets             []models.WorkoutSet
	DuplicateDopamineDates []string
	DuplicateWorkoutDates  []string
	DuplicateCompletions   []HabitDate
	DuplicateSummaryDates  []string
	StaleSummaries         []StaleSummary
	MissingSummaries       []string
}

// Problems is the total number of findings
func (r IntegrityReport) Problems() int {
	return len(r.OrphanCompletions) + len(r.OrphanExercises) + len(r.OrphanSets) +
		len(r.DuplicateDopamineDates) + len(r.DuplicateWorkoutDates) + len(r.DuplicateCompletions) +
		len(r.DuplicateSummaryDates) + len(r.StaleSummaries) + len(r.MissingSummaries)
}

func (r IntegrityReport) Healthy() bool {
	return r.Problems() == 0
}

// FormatReport returns a human-readable list of every finding
func (r IntegrityReport) FormatReport() string {
	if r.Healthy() {
		return "No integrity problems detected."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d integrity problem(s) detected:\n", r.Problems())
	for _, c := range r.OrphanCompletions {
		fmt.Fprintf(&b, "- hygiene completion %s on %s references missing habit %s\n", c.ID, c.Date, c.HabitID)
	}
	for _, ex := range r.OrphanExercises {
		fmt.Fprintf(&b, "- exercise %q references missing template %s\n", ex.Name, ex.TemplateID)
	}
	for _, set := range r.OrphanSets {
		fmt.Fprintf(&b, "- set %s references missing exercise %s\n", set.ID, set.ExerciseID)
	}
	for _, d := range r.DuplicateDopamineDates {
		fmt.Fprintf(&b, "- multiple dopamine entries on %s\n", d)
	}
	for _, d := range r.DuplicateWorkoutDates {
		fmt.Fprintf(&b, "- multiple workout entries on %s\n", d)
	}
	for _, k := range r.DuplicateCompletions {
		fmt.Fprintf(&b, "- multiple completions for habit %s on %s\n", k.HabitID, k.Date)
	}
	for _, d := range r.DuplicateSummaryDates {
		fmt.Fprintf(&b, "- multiple daily summaries on %s\n", d)
	}
	for _, s := range r.StaleSummaries {
		fmt.Fprintf(&b, "- summary for %s is stale (stored %d%%, computed %d%%)\n", s.Stored.Date, s.Stored.TotalCompletion, s.Computed.Total)
	}
	for _, d := range r.MissingSummaries {
		fmt.Fprintf(&b, "- no daily summary for %s\n", d)
	}
	return b.String()
}

func duplicateKeys[K comparable](keys []K) []K {
	counts := make(map[K]int, len(keys))
	var dups []K
	for _, k := range keys {
		counts[k]++
		if counts[k] == 2 {
			dups = append(dups, k)
		}
	}
	return dups
}

// CheckIntegrity scans every collection for orphans, duplicated per-date
// records and summaries that are stale or missing.
func (e *Engine) CheckIntegrity() (IntegrityReport, error) {
	var r IntegrityReport

	idx, err := e.loadIndex()
	if err != nil {
		return r, err
	}

	habitIDs := make(map[string]bool, len(idx.habits))
	for _, h := range idx.habits {
		habitIDs[h.ID] = true
	}

	var completionKeys []HabitDate
	for _, date := range idx.dates() {
		for _, c := range idx.completions[date] {
			if !habitIDs[c.HabitID] {
				r.OrphanCompletions = append(r.OrphanCompletions, c)
			}
			completionKeys = append(completionKeys, HabitDate{HabitID: c.HabitID, Date: c.Date})
		}
		if len(idx.dopamine[date]) > 1 {
			r.DuplicateDopamineDates = append(r.DuplicateDopamineDates, date)
		}
		if len(idx.workouts[date]) > 1 {
			r.DuplicateWorkoutDates = append(r.DuplicateWorkoutDates, date)
		}
	}
	r.DuplicateCompletions = duplicateKeys(completionKeys)

	if err := e.checkWorkoutTree(&r); err != nil {
		return r, err
	}

	summaries, err := e.store.GetAllDailyCompletions()
	if err != nil {
		return r, fmt.Errorf("failed to load summaries: %w", err)
	}
	summaryDates := make([]string, 0, len(summaries))
	stored := make(map[string]bool, len(summaries))
	for _, s := range summaries {
		summaryDates = append(summaryDates, s.Date)
		if stored[s.Date] {
			continue
		}
		stored[s.Date] = true
		computed := idx.summary(s.Date)
		if s.DopamineCompleted != computed.Dopamine || s.WorkoutCompleted != computed.Workout ||
			s.HygieneCompleted != computed.Hygiene || s.TotalCompletion != computed.Total {
			r.StaleSummaries = append(r.StaleSummaries, StaleSummary{Stored: s, Computed: computed})
		}
	}
	r.DuplicateSummaryDates = duplicateKeys(summaryDates)
	sort.Strings(r.DuplicateSummaryDates)

	for _, date := range idx.dates() {
		if !stored[date] {
			r.MissingSummaries = append(r.MissingSummaries, date)
		}
	}

	return r, nil
}

func (e *Engine) checkWorkoutTree(r *IntegrityReport) error {
	templates, err := e.store.GetAllWorkoutTemplates()
	if err != nil {
		return fmt.Errorf("failed to load workout templates: %w", err)
	}
	exercises, err := e.store.GetAllWorkoutExercises()
	if err != nil {
		return fmt.Errorf("failed to load workout exercises: %w", err)
	}
	sets, err := e.store.GetAllWorkoutSets()
	if err != nil {
		return fmt.Errorf("failed to load workout sets: %w", err)
	}

	templateIDs := make(map[string]bool, len(templates))
	for _, t := range templates {
		templateIDs[t.ID] = true
	}
	exerciseIDs := make(map[string]bool, len(exercises))
	for _, ex := range exercises {
		exerciseIDs[ex.ID] = true
		if !templateIDs[ex.TemplateID] {
			r.OrphanExercises = append(r.OrphanExercises, ex)
		}
	}
	for _, s := range sets {
		if !exerciseIDs[s.ExerciseID] {
			r.OrphanSets = append(r.OrphanSets, s)
		}
	}
	return nil
}
