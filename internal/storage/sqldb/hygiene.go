package sqldb

import (
	"database/sql"
	"fmt"

	"github.com/julianstephens/lifetrack/internal/models"
	"github.com/julianstephens/lifetrack/internal/storage"
)

const (
	habitColumns      = "id, name, description, sort_order, created_at"
	completionColumns = "id, habit_id, date, completed, created_at"
)

func scanHygieneHabit(row scanner) (models.HygieneHabit, error) {
	var h models.HygieneHabit
	var createdAt string
	if err := row.Scan(&h.ID, &h.Name, &h.Description, &h.Order, &createdAt); err != nil {
		return models.HygieneHabit{}, err
	}
	t, err := parseTimestamp(createdAt, "created_at", "habit "+h.ID)
	if err != nil {
		return models.HygieneHabit{}, err
	}
	h.CreatedAt = t
	return h, nil
}

func scanHygieneCompletion(row scanner) (models.HygieneCompletion, error) {
	var c models.HygieneCompletion
	var createdAt string
	if err := row.Scan(&c.ID, &c.HabitID, &c.Date, &c.Completed, &createdAt); err != nil {
		return models.HygieneCompletion{}, err
	}
	t, err := parseTimestamp(createdAt, "created_at", "completion "+c.ID)
	if err != nil {
		return models.HygieneCompletion{}, err
	}
	c.CreatedAt = t
	return c, nil
}

func (s *Store) AddHygieneHabit(habit models.HygieneHabit) (string, error) {
	db, err := s.conn()
	if err != nil {
		return "", err
	}
	id := ensureID(habit.ID)
	_, err = s.exec(db, `INSERT INTO hygiene_habits (`+habitColumns+`) VALUES (?, ?, ?, ?, ?)`,
		id, habit.Name, habit.Description, habit.Order, formatTimestamp(habit.CreatedAt))
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) GetHygieneHabit(id string) (models.HygieneHabit, error) {
	return queryOne(s, scanHygieneHabit, `SELECT `+habitColumns+` FROM hygiene_habits WHERE id = ?`, id)
}

func (s *Store) GetAllHygieneHabits() ([]models.HygieneHabit, error) {
	return queryAll(s, scanHygieneHabit,
		`SELECT `+habitColumns+` FROM hygiene_habits ORDER BY sort_order, created_at, id`)
}

func (s *Store) UpdateHygieneHabit(habit models.HygieneHabit) error {
	return s.execOne(`UPDATE hygiene_habits SET name = ?, description = ?, sort_order = ? WHERE id = ?`,
		habit.Name, habit.Description, habit.Order, habit.ID)
}

func (s *Store) DeleteHygieneHabit(id string) error {
	return s.withTx(func(tx *sql.Tx) error {
		// Dependents first, then the parent
		if _, err := s.exec(tx, `DELETE FROM hygiene_completions WHERE habit_id = ?`, id); err != nil {
			return fmt.Errorf("failed to delete completions for habit %s: %w", id, err)
		}
		n, err := s.execCount(tx, `DELETE FROM hygiene_habits WHERE id = ?`, id)
		if err != nil {
			return fmt.Errorf("failed to delete habit %s: %w", id, err)
		}
		if n == 0 {
			return storage.ErrNotFound
		}
		return nil
	})
}

func (s *Store) AddHygieneCompletion(c models.HygieneCompletion) (string, error) {
	db, err := s.conn()
	if err != nil {
		return "", err
	}
	id := ensureID(c.ID)
	_, err = s.exec(db, `INSERT INTO hygiene_completions (`+completionColumns+`) VALUES (?, ?, ?, ?, ?)`,
		id, c.HabitID, c.Date, c.Completed, formatTimestamp(c.CreatedAt))
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) GetHygieneCompletion(id string) (models.HygieneCompletion, error) {
	return queryOne(s, scanHygieneCompletion,
		`SELECT `+completionColumns+` FROM hygiene_completions WHERE id = ?`, id)
}

func (s *Store) GetHygieneCompletionsByDate(date string) ([]models.HygieneCompletion, error) {
	return queryAll(s, scanHygieneCompletion,
		`SELECT `+completionColumns+` FROM hygiene_completions WHERE date = ? ORDER BY created_at, id`, date)
}

func (s *Store) GetHygieneCompletionsByHabit(habitID string) ([]models.HygieneCompletion, error) {
	return queryAll(s, scanHygieneCompletion,
		`SELECT `+completionColumns+` FROM hygiene_completions WHERE habit_id = ? ORDER BY date, created_at, id`, habitID)
}

func (s *Store) GetHygieneCompletionsInRange(start, end string) ([]models.HygieneCompletion, error) {
	return queryAll(s, scanHygieneCompletion,
		`SELECT `+completionColumns+` FROM hygiene_completions WHERE date >= ? AND date <= ? ORDER BY date, created_at, id`,
		start, end)
}

func (s *Store) GetAllHygieneCompletions() ([]models.HygieneCompletion, error) {
	return queryAll(s, scanHygieneCompletion,
		`SELECT `+completionColumns+` FROM hygiene_completions ORDER BY date, created_at, id`)
}

func (s *Store) UpdateHygieneCompletion(c models.HygieneCompletion) error {
	return s.execOne(`UPDATE hygiene_completions SET habit_id = ?, date = ?, completed = ?, created_at = ? WHERE id = ?`,
		c.HabitID, c.Date, c.Completed, formatTimestamp(c.CreatedAt), c.ID)
}

func (s *Store) DeleteHygieneCompletion(id string) error {
	return s.execOne(`DELETE FROM hygiene_completions WHERE id = ?`, id)
}

func (s *Store) DeleteHygieneCompletionsByHabit(habitID string) (int, error) {
	db, err := s.conn()
	if err != nil {
		return 0, err
	}
	return s.execCount(db, `DELETE FROM hygiene_completions WHERE habit_id = ?`, habitID)
}
