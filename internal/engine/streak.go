package engine

import (
	"fmt"
	"sort"

	"github.com/julianstephens/lifetrack/internal/constants"
	"github.com/julianstephens/lifetrack/internal/models"
	"github.com/julianstephens/lifetrack/internal/utils"
)

// CurrentStreak counts consecutive passed days ending at asOf, walking back at
// most constants.StreakCap days. A day with no entry breaks the streak the same
// way a failed day does.
func (e *Engine) CurrentStreak(asOf string) (int, error) {
	start := utils.AddDays(asOf, -(constants.StreakCap - 1))
	if start == "" {
		return 0, nil
	}
	entries, err := e.store.GetDopamineEntriesInRange(start, asOf)
	if err != nil {
		return 0, fmt.Errorf("failed to load dopamine entries: %w", err)
	}
	return strictStreak(entries, asOf), nil
}

// StrictStreak is CurrentStreak under the name of its gap policy
func (e *Engine) StrictStreak(asOf string) (int, error) {
	return e.CurrentStreak(asOf)
}

func strictStreak(entries []models.DopamineEntry, asOf string) int {
	byDate := make(map[string]models.DopamineEntry, len(entries))
	for _, en := range entries {
		if _, seen := byDate[en.Date]; !seen {
			byDate[en.Date] = en
		}
	}

	streak := 0
	date := asOf
	for i := 0; i < constants.StreakCap; i++ {
		en, ok := byDate[date]
		if !ok || !en.Passed() {
			break
		}
		streak++
		date = utils.AddDays(date, -1)
	}
	return streak
}

// LongestStreak is the longest run of passed entries in date order. Only an
// entry that is not passed resets the run; days without an entry are skipped.
func LongestStreak(entries []models.DopamineEntry) int {
	sorted := make([]models.DopamineEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date < sorted[j].Date
	})

	longest, run := 0, 0
	for _, en := range sorted {
		if !en.Passed() {
			run = 0
			continue
		}
		run++
		if run > longest {
			longest = run
		}
	}
	return longest
}

// EntryOnlyStreak is LongestStreak under the name of its gap policy
func EntryOnlyStreak(entries []models.DopamineEntry) int {
	return LongestStreak(entries)
}

// LongestStreakFromStore applies LongestStreak to every stored dopamine entry
func (e *Engine) LongestStreakFromStore() (int, error) {
	entries, err := e.store.GetAllDopamineEntries()
	if err != nil {
		return 0, fmt.Errorf("failed to load dopamine entries: %w", err)
	}
	return LongestStreak(entries), nil
}
