package sqldb

import (
	"database/sql"
	"fmt"

	"github.com/julianstephens/lifetrack/internal/models"
	"github.com/julianstephens/lifetrack/internal/storage"
)

const (
	templateColumns = "id, name, created_at"
	exerciseColumns = "id, template_id, name, pr, sort_order, created_at"
	setColumns      = "id, exercise_id, weight, reps, sort_order, created_at"
	historyColumns  = "id, date, type, template_id, notes, created_at"
)

func scanWorkoutTemplate(row scanner) (models.WorkoutTemplate, error) {
	var t models.WorkoutTemplate
	var createdAt string
	if err := row.Scan(&t.ID, &t.Name, &createdAt); err != nil {
		return models.WorkoutTemplate{}, err
	}
	ts, err := parseTimestamp(createdAt, "created_at", "template "+t.ID)
	if err != nil {
		return models.WorkoutTemplate{}, err
	}
	t.CreatedAt = ts
	return t, nil
}

func scanWorkoutExercise(row scanner) (models.WorkoutExercise, error) {
	var e models.WorkoutExercise
	var createdAt string
	if err := row.Scan(&e.ID, &e.TemplateID, &e.Name, &e.PR, &e.Order, &createdAt); err != nil {
		return models.WorkoutExercise{}, err
	}
	ts, err := parseTimestamp(createdAt, "created_at", "exercise "+e.ID)
	if err != nil {
		return models.WorkoutExercise{}, err
	}
	e.CreatedAt = ts
	return e, nil
}

func scanWorkoutSet(row scanner) (models.WorkoutSet, error) {
	var ws models.WorkoutSet
	var createdAt string
	if err := row.Scan(&ws.ID, &ws.ExerciseID, &ws.Weight, &ws.Reps, &ws.Order, &createdAt); err != nil {
		return models.WorkoutSet{}, err
	}
	ts, err := parseTimestamp(createdAt, "created_at", "set "+ws.ID)
	if err != nil {
		return models.WorkoutSet{}, err
	}
	ws.CreatedAt = ts
	return ws, nil
}

func scanWorkoutHistory(row scanner) (models.WorkoutHistory, error) {
	var h models.WorkoutHistory
	var typ, createdAt string
	var templateID sql.NullString
	if err := row.Scan(&h.ID, &h.Date, &typ, &templateID, &h.Notes, &createdAt); err != nil {
		return models.WorkoutHistory{}, err
	}
	h.Type = models.WorkoutType(typ)
	if templateID.Valid {
		id := templateID.String
		h.TemplateID = &id
	}
	ts, err := parseTimestamp(createdAt, "created_at", "workout history "+h.ID)
	if err != nil {
		return models.WorkoutHistory{}, err
	}
	h.CreatedAt = ts
	return h, nil
}

func nullableString(s *string) sql.NullString {
	if s == nil || *s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

// Templates

func (s *Store) AddWorkoutTemplate(t models.WorkoutTemplate) (string, error) {
	db, err := s.conn()
	if err != nil {
		return "", err
	}
	id := ensureID(t.ID)
	_, err = s.exec(db, `INSERT INTO workout_templates (`+templateColumns+`) VALUES (?, ?, ?)`,
		id, t.Name, formatTimestamp(t.CreatedAt))
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) GetWorkoutTemplate(id string) (models.WorkoutTemplate, error) {
	return queryOne(s, scanWorkoutTemplate, `SELECT `+templateColumns+` FROM workout_templates WHERE id = ?`, id)
}

func (s *Store) GetAllWorkoutTemplates() ([]models.WorkoutTemplate, error) {
	return queryAll(s, scanWorkoutTemplate, `SELECT `+templateColumns+` FROM workout_templates ORDER BY created_at, id`)
}

func (s *Store) UpdateWorkoutTemplate(t models.WorkoutTemplate) error {
	return s.execOne(`UPDATE workout_templates SET name = ? WHERE id = ?`, t.Name, t.ID)
}

func (s *Store) DeleteWorkoutTemplate(id string) error {
	return s.withTx(func(tx *sql.Tx) error {
		if _, err := s.exec(tx, `DELETE FROM workout_sets WHERE exercise_id IN (SELECT id FROM workout_exercises WHERE template_id = ?)`, id); err != nil {
			return fmt.Errorf("failed to delete sets for template %s: %w", id, err)
		}
		if _, err := s.exec(tx, `DELETE FROM workout_exercises WHERE template_id = ?`, id); err != nil {
			return fmt.Errorf("failed to delete exercises for template %s: %w", id, err)
		}
		if _, err := s.exec(tx, `UPDATE workout_history SET template_id = NULL WHERE template_id = ?`, id); err != nil {
			return fmt.Errorf("failed to detach history from template %s: %w", id, err)
		}
		n, err := s.execCount(tx, `DELETE FROM workout_templates WHERE id = ?`, id)
		if err != nil {
			return fmt.Errorf("failed to delete template %s: %w", id, err)
		}
		if n == 0 {
			return storage.ErrNotFound
		}
		return nil
	})
}

// Exercises

func (s *Store) AddWorkoutExercise(e models.WorkoutExercise) (string, error) {
	db, err := s.conn()
	if err != nil {
		return "", err
	}
	id := ensureID(e.ID)
	_, err = s.exec(db, `INSERT INTO workout_exercises (`+exerciseColumns+`) VALUES (?, ?, ?, ?, ?, ?)`,
		id, e.TemplateID, e.Name, e.PR, e.Order, formatTimestamp(e.CreatedAt))
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) GetWorkoutExercise(id string) (models.WorkoutExercise, error) {
	return queryOne(s, scanWorkoutExercise, `SELECT `+exerciseColumns+` FROM workout_exercises WHERE id = ?`, id)
}

func (s *Store) GetWorkoutExercisesByTemplate(templateID string) ([]models.WorkoutExercise, error) {
	return queryAll(s, scanWorkoutExercise,
		`SELECT `+exerciseColumns+` FROM workout_exercises WHERE template_id = ? ORDER BY sort_order, created_at, id`, templateID)
}

func (s *Store) GetAllWorkoutExercises() ([]models.WorkoutExercise, error) {
	return queryAll(s, scanWorkoutExercise,
		`SELECT `+exerciseColumns+` FROM workout_exercises ORDER BY template_id, sort_order, created_at, id`)
}

func (s *Store) UpdateWorkoutExercise(e models.WorkoutExercise) error {
	return s.execOne(`UPDATE workout_exercises SET template_id = ?, name = ?, pr = ?, sort_order = ? WHERE id = ?`,
		e.TemplateID, e.Name, e.PR, e.Order, e.ID)
}

func (s *Store) DeleteWorkoutExercise(id string) error {
	return s.withTx(func(tx *sql.Tx) error {
		if _, err := s.exec(tx, `DELETE FROM workout_sets WHERE exercise_id = ?`, id); err != nil {
			return fmt.Errorf("failed to delete sets for exercise %s: %w", id, err)
		}
		n, err := s.execCount(tx, `DELETE FROM workout_exercises WHERE id = ?`, id)
		if err != nil {
			return fmt.Errorf("failed to delete exercise %s: %w", id, err)
		}
		if n == 0 {
			return storage.ErrNotFound
		}
		return nil
	})
}

// Sets

func (s *Store) AddWorkoutSet(ws models.WorkoutSet) (string, error) {
	db, err := s.conn()
	if err != nil {
		return "", err
	}
	id := ensureID(ws.ID)
	_, err = s.exec(db, `INSERT INTO workout_sets (`+setColumns+`) VALUES (?, ?, ?, ?, ?, ?)`,
		id, ws.ExerciseID, ws.Weight, ws.Reps, ws.Order, formatTimestamp(ws.CreatedAt))
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) GetWorkoutSetsByExercise(exerciseID string) ([]models.WorkoutSet, error) {
	return queryAll(s, scanWorkoutSet,
		`SELECT `+setColumns+` FROM workout_sets WHERE exercise_id = ? ORDER BY sort_order, created_at, id`, exerciseID)
}

func (s *Store) GetAllWorkoutSets() ([]models.WorkoutSet, error) {
	return queryAll(s, scanWorkoutSet,
		`SELECT `+setColumns+` FROM workout_sets ORDER BY exercise_id, sort_order, created_at, id`)
}

func (s *Store) UpdateWorkoutSet(ws models.WorkoutSet) error {
	return s.execOne(`UPDATE workout_sets SET exercise_id = ?, weight = ?, reps = ?, sort_order = ? WHERE id = ?`,
		ws.ExerciseID, ws.Weight, ws.Reps, ws.Order, ws.ID)
}

func (s *Store) DeleteWorkoutSet(id string) error {
	return s.execOne(`DELETE FROM workout_sets WHERE id = ?`, id)
}

// History

func (s *Store) AddWorkoutHistory(h models.WorkoutHistory) (string, error) {
	db, err := s.conn()
	if err != nil {
		return "", err
	}
	id := ensureID(h.ID)
	_, err = s.exec(db, `INSERT INTO workout_history (`+historyColumns+`) VALUES (?, ?, ?, ?, ?, ?)`,
		id, h.Date, string(h.Type), nullableString(h.TemplateID), h.Notes, formatTimestamp(h.CreatedAt))
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) GetWorkoutHistory(id string) (models.WorkoutHistory, error) {
	return queryOne(s, scanWorkoutHistory, `SELECT `+historyColumns+` FROM workout_history WHERE id = ?`, id)
}

func (s *Store) GetWorkoutHistoryByDate(date string) ([]models.WorkoutHistory, error) {
	return queryAll(s, scanWorkoutHistory,
		`SELECT `+historyColumns+` FROM workout_history WHERE date = ? ORDER BY created_at, id`, date)
}

func (s *Store) GetWorkoutHistoryInRange(start, end string) ([]models.WorkoutHistory, error) {
	return queryAll(s, scanWorkoutHistory,
		`SELECT `+historyColumns+` FROM workout_history WHERE date >= ? AND date <= ? ORDER BY date, created_at, id`,
		start, end)
}

func (s *Store) GetAllWorkoutHistory() ([]models.WorkoutHistory, error) {
	return queryAll(s, scanWorkoutHistory,
		`SELECT `+historyColumns+` FROM workout_history ORDER BY date, created_at, id`)
}

func (s *Store) UpdateWorkoutHistory(h models.WorkoutHistory) error {
	return s.execOne(`UPDATE workout_history SET date = ?, type = ?, template_id = ?, notes = ?, created_at = ? WHERE id = ?`,
		h.Date, string(h.Type), nullableString(h.TemplateID), h.Notes, formatTimestamp(h.CreatedAt), h.ID)
}

func (s *Store) DeleteWorkoutHistory(id string) error {
	return s.execOne(`DELETE FROM workout_history WHERE id = ?`, id)
}
