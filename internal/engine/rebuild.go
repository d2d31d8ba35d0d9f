package engine

import (
	"fmt"

	"github.com/julianstephens/lifetrack/internal/logger"
	"github.com/julianstephens/lifetrack/internal/models"
)

// RebuildSummaries replaces every daily completion row with one per date found
// in any log, in a single transaction. It returns the number of rows written.
// Use it after edits that bypassed the tracker, such as a bulk import.
func (e *Engine) RebuildSummaries() (int, error) {
	idx, err := e.loadIndex()
	if err != nil {
		return 0, err
	}

	now := e.now()
	dates := idx.dates()
	rows := make([]models.DailyCompletion, 0, len(dates))
	for _, date := range dates {
		s := idx.summary(date)
		rows = append(rows, models.DailyCompletion{
			Date:              date,
			DopamineCompleted: s.Dopamine,
			WorkoutCompleted:  s.Workout,
			HygieneCompleted:  s.Hygiene,
			TotalCompletion:   s.Total,
			CreatedAt:         now,
		})
	}

	removed, err := e.store.ReplaceDailyCompletions(rows)
	if err != nil {
		return 0, fmt.Errorf("failed to rebuild summaries: %w", err)
	}
	written := len(rows)

	logger.Debug("rebuilt daily completions", "removed", removed, "written", written)
	return written, nil
}
