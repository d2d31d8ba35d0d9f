package tracker

import (
	"fmt"

	"github.com/julianstephens/lifetrack/internal/logger"
	"github.com/julianstephens/lifetrack/internal/models"
)

func validateStatus(status models.DopamineStatus) error {
	if !status.Valid() {
		return invalid("unknown dopamine status %q (expected passed or failed)", status)
	}
	return nil
}

// LogDopamine records the day's status, updating the existing entry for date if there is one
func (t *Tracker) LogDopamine(date string, status models.DopamineStatus, notes string) (models.DopamineEntry, error) {
	if err := validateDate(date); err != nil {
		return models.DopamineEntry{}, err
	}
	if err := validateStatus(status); err != nil {
		return models.DopamineEntry{}, err
	}

	existing, err := t.store.GetDopamineEntriesByDate(date)
	if err != nil {
		return models.DopamineEntry{}, fmt.Errorf("failed to look up dopamine entry: %w", err)
	}

	entry := models.DopamineEntry{Date: date, Status: status, Notes: notes, CreatedAt: t.now()}
	if len(existing) > 0 {
		entry.ID = existing[0].ID
		if err := t.store.UpdateDopamineEntry(entry); err != nil {
			return models.DopamineEntry{}, fmt.Errorf("failed to update dopamine entry: %w", err)
		}
	} else {
		id, err := t.store.AddDopamineEntry(entry)
		if err != nil {
			return models.DopamineEntry{}, fmt.Errorf("failed to add dopamine entry: %w", err)
		}
		entry.ID = id
	}

	logger.Info("logged dopamine status", "date", date, "status", status)
	return entry, t.refresh(date)
}

// EditDopamine rewrites an entry by id. Moving it to another date refreshes both
// dates; if the target date already has an entry, that entry takes the edit and
// the moved one is removed.
func (t *Tracker) EditDopamine(id, date string, status models.DopamineStatus, notes string) (models.DopamineEntry, error) {
	if err := validateDate(date); err != nil {
		return models.DopamineEntry{}, err
	}
	if err := validateStatus(status); err != nil {
		return models.DopamineEntry{}, err
	}

	old, err := t.store.GetDopamineEntry(id)
	if err != nil {
		return models.DopamineEntry{}, fmt.Errorf("failed to get dopamine entry %s: %w", id, err)
	}

	entry := models.DopamineEntry{ID: id, Date: date, Status: status, Notes: notes, CreatedAt: t.now()}

	// A date holds one entry. Moving onto an occupied date rewrites that
	// entry and drops the moved one.
	if date != old.Date {
		existing, err := t.store.GetDopamineEntriesByDate(date)
		if err != nil {
			return models.DopamineEntry{}, fmt.Errorf("failed to look up dopamine entry: %w", err)
		}
		if len(existing) > 0 {
			entry.ID = existing[0].ID
		}
	}

	if err := t.store.UpdateDopamineEntry(entry); err != nil {
		return models.DopamineEntry{}, fmt.Errorf("failed to update dopamine entry %s: %w", entry.ID, err)
	}
	if entry.ID != id {
		if err := t.store.DeleteDopamineEntry(id); err != nil {
			return models.DopamineEntry{}, fmt.Errorf("failed to delete merged dopamine entry %s: %w", id, err)
		}
		logger.Info("merged dopamine entry", "from", id, "into", entry.ID, "date", date)
	}

	logger.Info("edited dopamine entry", "id", entry.ID, "date", date, "status", status)
	return entry, t.refresh(old.Date, date)
}

func (t *Tracker) DeleteDopamine(id string) error {
	entry, err := t.store.GetDopamineEntry(id)
	if err != nil {
		return fmt.Errorf("failed to get dopamine entry %s: %w", id, err)
	}
	if err := t.store.DeleteDopamineEntry(id); err != nil {
		return fmt.Errorf("failed to delete dopamine entry %s: %w", id, err)
	}
	logger.Info("deleted dopamine entry", "id", id, "date", entry.Date)
	return t.refresh(entry.Date)
}

// RecentDopamine returns up to limit entries, newest date first
func (t *Tracker) RecentDopamine(limit int) ([]models.DopamineEntry, error) {
	if limit <= 0 {
		return nil, invalid("limit must be positive")
	}
	entries, err := t.store.GetRecentDopamineEntries(limit)
	if err != nil {
		return nil, fmt.Errorf("failed to load recent dopamine entries: %w", err)
	}
	return entries, nil
}
