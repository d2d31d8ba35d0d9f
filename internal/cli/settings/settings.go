package settings

import (
	"errors"
	"fmt"
	"strings"

	"github.com/julianstephens/lifetrack/internal/cli"
	"github.com/julianstephens/lifetrack/internal/utils"
)

type SettingsCmd struct {
	Show SettingsShowCmd `cmd:"" help:"Show current settings." default:"1"`
	Set  SettingsSetCmd  `cmd:"" help:"Update settings."`
}

type SettingsShowCmd struct{}

func (c *SettingsShowCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Settings()
	if err != nil {
		return err
	}
	today, err := ctx.Tracker.Today()
	if err != nil {
		return err
	}

	fmt.Println("Current Settings:")
	fmt.Printf("  Timezone:   %s\n", settings.Timezone)
	fmt.Printf("  Week Start: %s\n", settings.WeekStart)
	fmt.Printf("  Today:      %s\n", today)
	return nil
}

type SettingsSetCmd struct {
	Timezone  *string `help:"IANA timezone used to decide the current day, or 'Local'."`
	WeekStart *string `help:"First day of the week for calendars and weekly summaries." placeholder:"sunday|monday"`
}

func (c *SettingsSetCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Settings()
	if err != nil {
		return err
	}

	updated := false
	if c.Timezone != nil {
		tz := strings.TrimSpace(*c.Timezone)
		if !utils.ValidateTimezone(tz) {
			return fmt.Errorf("invalid timezone %q", tz)
		}
		settings.Timezone = tz
		updated = true
	}
	if c.WeekStart != nil {
		ws := strings.ToLower(strings.TrimSpace(*c.WeekStart))
		if !utils.ValidateWeekStart(ws) {
			return fmt.Errorf("invalid week start %q (expected sunday or monday)", ws)
		}
		settings.WeekStart = ws
		updated = true
	}

	if !updated {
		return errors.New("nothing to update, pass --timezone or --week-start")
	}
	if err := ctx.Store.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	fmt.Println("Settings updated.")
	return nil
}
