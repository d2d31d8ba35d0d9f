package sqldb

import (
	"github.com/julianstephens/lifetrack/internal/models"
)

const dopamineColumns = "id, date, status, notes, created_at"

func scanDopamineEntry(row scanner) (models.DopamineEntry, error) {
	var e models.DopamineEntry
	var status, createdAt string
	if err := row.Scan(&e.ID, &e.Date, &status, &e.Notes, &createdAt); err != nil {
		return models.DopamineEntry{}, err
	}
	e.Status = models.DopamineStatus(status)
	t, err := parseTimestamp(createdAt, "created_at", "dopamine entry "+e.ID)
	if err != nil {
		return models.DopamineEntry{}, err
	}
	e.CreatedAt = t
	return e, nil
}

func (s *Store) AddDopamineEntry(entry models.DopamineEntry) (string, error) {
	db, err := s.conn()
	if err != nil {
		return "", err
	}
	id := ensureID(entry.ID)
	_, err = s.exec(db, `INSERT INTO dopamine_entries (`+dopamineColumns+`) VALUES (?, ?, ?, ?, ?)`,
		id, entry.Date, string(entry.Status), entry.Notes, formatTimestamp(entry.CreatedAt))
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) GetDopamineEntry(id string) (models.DopamineEntry, error) {
	return queryOne(s, scanDopamineEntry,
		`SELECT `+dopamineColumns+` FROM dopamine_entries WHERE id = ?`, id)
}

func (s *Store) GetDopamineEntriesByDate(date string) ([]models.DopamineEntry, error) {
	return queryAll(s, scanDopamineEntry,
		`SELECT `+dopamineColumns+` FROM dopamine_entries WHERE date = ? ORDER BY created_at, id`, date)
}

func (s *Store) GetDopamineEntriesInRange(start, end string) ([]models.DopamineEntry, error) {
	return queryAll(s, scanDopamineEntry,
		`SELECT `+dopamineColumns+` FROM dopamine_entries WHERE date >= ? AND date <= ? ORDER BY date, created_at, id`,
		start, end)
}

func (s *Store) GetAllDopamineEntries() ([]models.DopamineEntry, error) {
	return queryAll(s, scanDopamineEntry,
		`SELECT `+dopamineColumns+` FROM dopamine_entries ORDER BY date, created_at, id`)
}

func (s *Store) GetRecentDopamineEntries(limit int) ([]models.DopamineEntry, error) {
	return queryAll(s, scanDopamineEntry,
		`SELECT `+dopamineColumns+` FROM dopamine_entries ORDER BY date DESC, created_at DESC, id LIMIT ?`, limit)
}

func (s *Store) UpdateDopamineEntry(entry models.DopamineEntry) error {
	return s.execOne(`UPDATE dopamine_entries SET date = ?, status = ?, notes = ?, created_at = ? WHERE id = ?`,
		entry.Date, string(entry.Status), entry.Notes, formatTimestamp(entry.CreatedAt), entry.ID)
}

func (s *Store) DeleteDopamineEntry(id string) error {
	return s.execOne(`DELETE FROM dopamine_entries WHERE id = ?`, id)
}
