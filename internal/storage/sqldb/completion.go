package sqldb

import (
	"database/sql"
	"fmt"

	"github.com/julianstephens/lifetrack/internal/models"
)

const dailyColumns = "id, date, dopamine_completed, workout_completed, hygiene_completed, total_completion, created_at"

func scanDailyCompletion(row scanner) (models.DailyCompletion, error) {
	var d models.DailyCompletion
	var createdAt string
	if err := row.Scan(&d.ID, &d.Date, &d.DopamineCompleted, &d.WorkoutCompleted, &d.HygieneCompleted,
		&d.TotalCompletion, &createdAt); err != nil {
		return models.DailyCompletion{}, err
	}
	t, err := parseTimestamp(createdAt, "created_at", "daily completion "+d.ID)
	if err != nil {
		return models.DailyCompletion{}, err
	}
	d.CreatedAt = t
	return d, nil
}

func (s *Store) AddDailyCompletion(d models.DailyCompletion) (string, error) {
	db, err := s.conn()
	if err != nil {
		return "", err
	}
	id := ensureID(d.ID)
	_, err = s.exec(db, `INSERT INTO daily_completions (`+dailyColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		id, d.Date, d.DopamineCompleted, d.WorkoutCompleted, d.HygieneCompleted, d.TotalCompletion,
		formatTimestamp(d.CreatedAt))
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) GetDailyCompletionsByDate(date string) ([]models.DailyCompletion, error) {
	return queryAll(s, scanDailyCompletion,
		`SELECT `+dailyColumns+` FROM daily_completions WHERE date = ? ORDER BY created_at, id`, date)
}

func (s *Store) GetDailyCompletionsInRange(start, end string) ([]models.DailyCompletion, error) {
	return queryAll(s, scanDailyCompletion,
		`SELECT `+dailyColumns+` FROM daily_completions WHERE date >= ? AND date <= ? ORDER BY date, created_at, id`,
		start, end)
}

func (s *Store) GetAllDailyCompletions() ([]models.DailyCompletion, error) {
	return queryAll(s, scanDailyCompletion,
		`SELECT `+dailyColumns+` FROM daily_completions ORDER BY date, created_at, id`)
}

func (s *Store) UpdateDailyCompletion(d models.DailyCompletion) error {
	return s.execOne(`
		UPDATE daily_completions SET
			date = ?, dopamine_completed = ?, workout_completed = ?, hygiene_completed = ?,
			total_completion = ?, created_at = ?
		WHERE id = ?`,
		d.Date, d.DopamineCompleted, d.WorkoutCompleted, d.HygieneCompleted, d.TotalCompletion,
		formatTimestamp(d.CreatedAt), d.ID)
}

func (s *Store) DeleteDailyCompletion(id string) error {
	return s.execOne(`DELETE FROM daily_completions WHERE id = ?`, id)
}

func (s *Store) DeleteAllDailyCompletions() (int, error) {
	db, err := s.conn()
	if err != nil {
		return 0, err
	}
	return s.execCount(db, `DELETE FROM daily_completions`)
}

// ReplaceDailyCompletions swaps the whole summary table for rows in one
// transaction and returns how many rows were removed. Nothing changes on error.
func (s *Store) ReplaceDailyCompletions(rows []models.DailyCompletion) (int, error) {
	removed := 0
	err := s.withTx(func(tx *sql.Tx) error {
		n, err := s.execCount(tx, `DELETE FROM daily_completions`)
		if err != nil {
			return fmt.Errorf("failed to clear summaries: %w", err)
		}
		removed = n
		for _, d := range rows {
			_, err := s.exec(tx, `INSERT INTO daily_completions (`+dailyColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?)`,
				ensureID(d.ID), d.Date, d.DopamineCompleted, d.WorkoutCompleted, d.HygieneCompleted, d.TotalCompletion,
				formatTimestamp(d.CreatedAt))
			if err != nil {
				return fmt.Errorf("failed to write summary for %s: %w", d.Date, err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return removed, nil
}
