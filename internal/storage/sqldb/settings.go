package sqldb

import (
	"github.com/julianstephens/lifetrack/internal/models"
)

func (s *Store) GetSettings() (models.Settings, error) {
	return queryOne(s, func(row scanner) (models.Settings, error) {
		var st models.Settings
		err := row.Scan(&st.Timezone, &st.WeekStart)
		return st, err
	}, "SELECT timezone, week_start FROM settings WHERE id = 1")
}

func (s *Store) SaveSettings(settings models.Settings) error {
	db, err := s.conn()
	if err != nil {
		return err
	}
	_, err = s.exec(db, `
		INSERT INTO settings (id, timezone, week_start)
		VALUES (1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			timezone = excluded.timezone,
			week_start = excluded.week_start`,
		settings.Timezone, settings.WeekStart)
	return err
}
