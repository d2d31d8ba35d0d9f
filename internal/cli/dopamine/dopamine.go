package dopamine

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/lifetrack/internal/calendar"
	"github.com/julianstephens/lifetrack/internal/cli"
	"github.com/julianstephens/lifetrack/internal/models"
)

type DopamineCmd struct {
	Log      DopamineLogCmd      `cmd:"" help:"Log today's (or a given day's) dopamine status."`
	Edit     DopamineEditCmd     `cmd:"" help:"Edit an entry by id."`
	List     DopamineListCmd     `cmd:"" help:"List recent entries."`
	Delete   DopamineDeleteCmd   `cmd:"" help:"Delete an entry by id."`
	Calendar DopamineCalendarCmd `cmd:"" help:"Show a month of dopamine statuses."`
}

type DopamineLogCmd struct {
	Date   string `help:"Date in YYYY-MM-DD format (default: today)."`
	Status string `help:"passed or failed. Prompts when omitted." enum:",passed,failed" default:""`
	Notes  string `help:"Optional note."`
}

func (c *DopamineLogCmd) Run(ctx *cli.Context) error {
	date, err := ctx.ResolveDate(c.Date)
	if err != nil {
		return err
	}

	status, notes := models.DopamineStatus(c.Status), c.Notes
	if status == "" {
		if status, notes, err = prompt(date, notes); err != nil {
			return err
		}
	}

	entry, err := ctx.Tracker.LogDopamine(date, status, notes)
	if err != nil {
		return err
	}
	fmt.Printf("Logged %s for %s\n", entry.Status, entry.Date)
	return nil
}

func prompt(date, notes string) (models.DopamineStatus, string, error) {
	status := models.DopaminePassed
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[models.DopamineStatus]().
				Title("Dopamine control for "+date).
				Options(
					huh.NewOption("Passed", models.DopaminePassed),
					huh.NewOption("Failed", models.DopamineFailed),
				).
				Value(&status),
			huh.NewText().
				Title("Notes").
				Value(&notes),
		),
	)
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", "", errors.New("cancelled")
		}
		return "", "", err
	}
	return status, notes, nil
}

type DopamineEditCmd struct {
	ID     string  `arg:"" help:"Entry id."`
	Date   string  `help:"New date in YYYY-MM-DD format."`
	Status string  `help:"New status." enum:",passed,failed" default:""`
	Notes  *string `help:"Replace the note."`
}

func (c *DopamineEditCmd) Run(ctx *cli.Context) error {
	entry, err := ctx.Store.GetDopamineEntry(c.ID)
	if err != nil {
		return fmt.Errorf("dopamine entry %s: %w", c.ID, err)
	}

	date, status, notes := entry.Date, entry.Status, entry.Notes
	if c.Date != "" {
		if date, err = ctx.ResolveDate(c.Date); err != nil {
			return err
		}
	}
	if c.Status != "" {
		status = models.DopamineStatus(c.Status)
	}
	if c.Notes != nil {
		notes = *c.Notes
	}

	updated, err := ctx.Tracker.EditDopamine(c.ID, date, status, notes)
	if err != nil {
		return err
	}
	fmt.Printf("Updated entry %s: %s on %s\n", updated.ID, updated.Status, updated.Date)
	return nil
}

type DopamineListCmd struct {
	Limit int  `help:"Number of entries to show." default:"5"`
	All   bool `help:"Show every entry."`
}

func (c *DopamineListCmd) Run(ctx *cli.Context) error {
	var (
		entries []models.DopamineEntry
		err     error
	)
	if c.All {
		entries, err = ctx.Store.GetAllDopamineEntries()
	} else {
		entries, err = ctx.Tracker.RecentDopamine(c.Limit)
	}
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Println("No dopamine entries found.")
		return nil
	}

	t := cli.NewTable("DATE", "STATUS", "NOTES", "ID")
	for _, e := range entries {
		status := cli.FailStyle.Render(string(e.Status))
		if e.Passed() {
			status = cli.OKStyle.Render(string(e.Status))
		}
		t.Row(e.Date, status, e.Notes, e.ID)
	}
	fmt.Println(t)
	return nil
}

type DopamineDeleteCmd struct {
	ID  string `arg:"" help:"Entry id."`
	Yes bool   `short:"y" help:"Delete without asking for confirmation."`
}

func (c *DopamineDeleteCmd) Run(ctx *cli.Context) error {
	entry, err := ctx.Store.GetDopamineEntry(c.ID)
	if err != nil {
		return fmt.Errorf("dopamine entry %s: %w", c.ID, err)
	}

	ok, err := cli.Confirm(fmt.Sprintf("Delete the %s entry for %s?", entry.Status, entry.Date), c.Yes)
	if err != nil || !ok {
		return err
	}

	if err := ctx.Tracker.DeleteDopamine(c.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted entry for %s\n", entry.Date)
	return nil
}

type DopamineCalendarCmd struct {
	Month string `arg:"" optional:"" help:"Month in YYYY-MM format (default: current month)."`
}

func (c *DopamineCalendarCmd) Run(ctx *cli.Context) error {
	month, today, err := ctx.ResolveMonth(c.Month)
	if err != nil {
		return err
	}
	statuses, err := ctx.Engine.DopamineMonth(month)
	if err != nil {
		return err
	}
	out, err := ctx.RenderMonth(month, today, statuses, calendar.Passed, calendar.Failed)
	if err != nil {
		return err
	}
	fmt.Println(out)

	current, err := ctx.Engine.CurrentStreak(today)
	if err != nil {
		return err
	}
	longest, err := ctx.Engine.LongestStreakFromStore()
	if err != nil {
		return err
	}
	fmt.Printf("\nCurrent streak: %d days  Longest streak: %d days\n", current, longest)
	return nil
}
