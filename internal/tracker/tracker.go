// Package tracker holds the user-facing mutations. Each one validates its
// input, writes the logs, then recomputes the daily summary of every date it
// touched.
package tracker

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/julianstephens/lifetrack/internal/engine"
	"github.com/julianstephens/lifetrack/internal/storage"
	"github.com/julianstephens/lifetrack/internal/utils"
)

// ErrInvalidInput wraps every validation failure
var ErrInvalidInput = errors.New("invalid input")

type Tracker struct {
	store  storage.Provider
	engine *engine.Engine
	now    func() time.Time
}

func New(store storage.Provider, eng *engine.Engine) *Tracker {
	return &Tracker{store: store, engine: eng, now: time.Now}
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

func validateDate(date string) error {
	if err := utils.ValidateDate(date); err != nil {
		return invalid("%v", err)
	}
	return nil
}

func requireName(kind, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", invalid("%s name cannot be empty", kind)
	}
	return name, nil
}

// Today is the current calendar day in the configured timezone
func (t *Tracker) Today() (string, error) {
	settings, err := t.store.GetSettings()
	if err != nil {
		return "", fmt.Errorf("failed to load settings: %w", err)
	}
	loc, err := utils.LoadLocation(settings.Timezone)
	if err != nil {
		return "", fmt.Errorf("invalid timezone %q: %w", settings.Timezone, err)
	}
	return utils.FormatDate(t.now().In(loc)), nil
}

// refresh recomputes the summaries for dates, skipping blanks and repeats
func (t *Tracker) refresh(dates ...string) error {
	seen := make(map[string]bool, len(dates))
	for _, d := range dates {
		if d == "" || seen[d] {
			continue
		}
		seen[d] = true
		if _, err := t.engine.UpsertDailyCompletion(d); err != nil {
			return fmt.Errorf("failed to refresh summary for %s: %w", d, err)
		}
	}
	return nil
}
