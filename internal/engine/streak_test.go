package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/lifetrack/internal/constants"
	"github.com/julianstephens/lifetrack/internal/models"
	"github.com/julianstephens/lifetrack/internal/utils"
)

func TestCurrentStreakBreaksOnGap(t *testing.T) {
	eng, store := newTestEngine(t)
	dopamine(t, store, "2024-06-08", models.DopaminePassed)
	dopamine(t, store, "2024-06-10", models.DopaminePassed)

	streak, err := eng.CurrentStreak("2024-06-10")
	require.NoError(t, err)
	assert.Equal(t, 1, streak)
}

func TestCurrentStreak(t *testing.T) {
	eng, store := newTestEngine(t)
	dopamine(t, store, "2024-06-05", models.DopamineFailed)
	for _, d := range []string{"2024-06-06", "2024-06-07", "2024-06-08"} {
		dopamine(t, store, d, models.DopaminePassed)
	}

	tests := []struct {
		asOf string
		want int
	}{
		{"2024-06-08", 3},
		{"2024-06-07", 2},
		{"2024-06-05", 0},
		{"2024-06-09", 0},
	}
	for _, tt := range tests {
		t.Run(tt.asOf, func(t *testing.T) {
			got, err := eng.StrictStreak(tt.asOf)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCurrentStreakCapped(t *testing.T) {
	eng, store := newTestEngine(t)
	asOf := "2024-12-31"
	for i := 0; i < constants.StreakCap+10; i++ {
		dopamine(t, store, utils.AddDays(asOf, -i), models.DopaminePassed)
	}

	streak, err := eng.CurrentStreak(asOf)
	require.NoError(t, err)
	assert.Equal(t, constants.StreakCap, streak)
}

func entry(date string, status models.DopamineStatus) models.DopamineEntry {
	return models.DopamineEntry{Date: date, Status: status}
}

func TestLongestStreakIgnoresGaps(t *testing.T) {
	entries := []models.DopamineEntry{
		entry("2024-06-09", models.DopaminePassed),
		entry("2024-06-05", models.DopaminePassed),
		entry("2024-06-08", models.DopaminePassed),
		entry("2024-06-06", models.DopaminePassed),
	}
	assert.Equal(t, 4, LongestStreak(entries))
	assert.Equal(t, 4, EntryOnlyStreak(entries))
}

func TestLongestStreak(t *testing.T) {
	tests := []struct {
		name    string
		entries []models.DopamineEntry
		want    int
	}{
		{"empty", nil, 0},
		{"all failed", []models.DopamineEntry{entry("2024-01-01", models.DopamineFailed)}, 0},
		{
			"reset by failure",
			[]models.DopamineEntry{
				entry("2024-01-01", models.DopaminePassed),
				entry("2024-01-02", models.DopaminePassed),
				entry("2024-01-03", models.DopamineFailed),
				entry("2024-01-04", models.DopaminePassed),
			},
			2,
		},
		{
			"unsorted input",
			[]models.DopamineEntry{
				entry("2024-01-05", models.DopaminePassed),
				entry("2024-01-01", models.DopamineFailed),
				entry("2024-01-04", models.DopaminePassed),
				entry("2024-01-02", models.DopaminePassed),
				entry("2024-01-03", models.DopamineFailed),
			},
			2,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LongestStreak(tt.entries))
		})
	}
}

func TestLongestStreakDoesNotReorderInput(t *testing.T) {
	entries := []models.DopamineEntry{
		entry("2024-01-02", models.DopaminePassed),
		entry("2024-01-01", models.DopaminePassed),
	}
	LongestStreak(entries)
	assert.Equal(t, "2024-01-02", entries[0].Date)
}

func TestStreakAsymmetry(t *testing.T) {
	eng, store := newTestEngine(t)
	for _, d := range []string{"2024-06-05", "2024-06-06", "2024-06-08", "2024-06-09"} {
		dopamine(t, store, d, models.DopaminePassed)
	}

	current, err := eng.CurrentStreak("2024-06-09")
	require.NoError(t, err)
	longest, err := eng.LongestStreakFromStore()
	require.NoError(t, err)

	assert.Equal(t, 2, current)
	assert.Equal(t, 4, longest)
}
