package hygiene

import (
	"fmt"
	"strings"

	"github.com/julianstephens/lifetrack/internal/calendar"
	"github.com/julianstephens/lifetrack/internal/cli"
	"github.com/julianstephens/lifetrack/internal/constants"
	"github.com/julianstephens/lifetrack/internal/models"
)

type HygieneCmd struct {
	Add          HygieneAddCmd          `cmd:"" help:"Add a hygiene habit."`
	List         HygieneListCmd         `cmd:"" help:"List habits with their state for a day."`
	Toggle       HygieneToggleCmd       `cmd:"" help:"Flip a habit's completion for a day."`
	Delete       HygieneDeleteCmd       `cmd:"" help:"Delete a habit and all of its completions."`
	Rate         HygieneRateCmd         `cmd:"" help:"Show the completion rate for a day."`
	Calendar     HygieneCalendarCmd     `cmd:"" help:"Show a month of hygiene completion."`
	PurgeOrphans HygienePurgeOrphansCmd `cmd:"" name:"purge-orphans" help:"Delete completions whose habit no longer exists."`
}

// findHabit matches by id first, then by case-insensitive name
func findHabit(ctx *cli.Context, ref string) (models.HygieneHabit, error) {
	habits, err := ctx.Store.GetAllHygieneHabits()
	if err != nil {
		return models.HygieneHabit{}, err
	}
	for _, h := range habits {
		if h.ID == ref {
			return h, nil
		}
	}
	for _, h := range habits {
		if strings.EqualFold(h.Name, strings.TrimSpace(ref)) {
			return h, nil
		}
	}
	return models.HygieneHabit{}, fmt.Errorf("habit %q not found", ref)
}

type HygieneAddCmd struct {
	Name        string `arg:"" help:"Habit name."`
	Description string `help:"Optional description."`
}

func (c *HygieneAddCmd) Run(ctx *cli.Context) error {
	if _, err := findHabit(ctx, c.Name); err == nil {
		return fmt.Errorf("habit with name %q already exists", c.Name)
	}
	habit, err := ctx.Tracker.AddHabit(c.Name, c.Description)
	if err != nil {
		return err
	}
	fmt.Printf("Added habit: %s\n", habit.Name)
	return nil
}

type HygieneListCmd struct {
	Date string `help:"Date in YYYY-MM-DD format (default: today)."`
}

func (c *HygieneListCmd) Run(ctx *cli.Context) error {
	date, err := ctx.ResolveDate(c.Date)
	if err != nil {
		return err
	}
	states, err := ctx.Tracker.HabitsOn(date)
	if err != nil {
		return err
	}
	if len(states) == 0 {
		fmt.Printf("No habits found. Add one with '%s hygiene add <name>'.\n", constants.AppName)
		return nil
	}

	t := cli.NewTable("", "HABIT", "DESCRIPTION", "ID")
	for _, s := range states {
		t.Row(cli.YesNo(s.Completed), s.Habit.Name, s.Habit.Description, s.Habit.ID)
	}
	fmt.Printf("Hygiene for %s\n", date)
	fmt.Println(t)
	return nil
}

type HygieneToggleCmd struct {
	Habit string `arg:"" help:"Habit name or id."`
	Date  string `help:"Date in YYYY-MM-DD format (default: today)."`
	Done  bool   `help:"Mark completed instead of flipping." xor:"state"`
	Undo  bool   `help:"Mark not completed instead of flipping." xor:"state"`
}

func (c *HygieneToggleCmd) Run(ctx *cli.Context) error {
	habit, err := findHabit(ctx, c.Habit)
	if err != nil {
		return err
	}
	date, err := ctx.ResolveDate(c.Date)
	if err != nil {
		return err
	}

	completed := c.Done
	if !c.Done && !c.Undo {
		states, err := ctx.Tracker.HabitsOn(date)
		if err != nil {
			return err
		}
		for _, s := range states {
			if s.Habit.ID == habit.ID {
				completed = !s.Completed
			}
		}
	}

	if _, err := ctx.Tracker.ToggleHabit(habit.ID, date, completed); err != nil {
		return err
	}
	rate, err := ctx.Engine.HygieneCompletionRate(date)
	if err != nil {
		return err
	}
	fmt.Printf("%s %s on %s (%d%% complete)\n", cli.YesNo(completed), habit.Name, date, rate)
	return nil
}

type HygieneDeleteCmd struct {
	Habit string `arg:"" help:"Habit name or id."`
	Yes   bool   `short:"y" help:"Delete without asking for confirmation."`
}

func (c *HygieneDeleteCmd) Run(ctx *cli.Context) error {
	habit, err := findHabit(ctx, c.Habit)
	if err != nil {
		return err
	}
	ok, err := cli.Confirm(fmt.Sprintf("Delete %q and all of its completions?", habit.Name), c.Yes)
	if err != nil || !ok {
		return err
	}
	if err := ctx.Tracker.DeleteHabit(habit.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted habit: %s\n", habit.Name)
	return nil
}

type HygieneRateCmd struct {
	Date string `help:"Date in YYYY-MM-DD format (default: today)."`
}

func (c *HygieneRateCmd) Run(ctx *cli.Context) error {
	date, err := ctx.ResolveDate(c.Date)
	if err != nil {
		return err
	}
	rate, err := ctx.Engine.HygieneCompletionRate(date)
	if err != nil {
		return err
	}
	fmt.Printf("Hygiene %s: %d%% (complete at %d%%)\n", date, rate, constants.HygieneThreshold)
	return nil
}

type HygieneCalendarCmd struct {
	Month string `arg:"" optional:"" help:"Month in YYYY-MM format (default: current month)."`
}

func (c *HygieneCalendarCmd) Run(ctx *cli.Context) error {
	month, today, err := ctx.ResolveMonth(c.Month)
	if err != nil {
		return err
	}
	statuses, err := ctx.Engine.HygieneMonth(month)
	if err != nil {
		return err
	}
	out, err := ctx.RenderMonth(month, today, statuses, calendar.Passed, calendar.Partial)
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}

type HygienePurgeOrphansCmd struct {
	Yes bool `short:"y" help:"Purge without asking for confirmation."`
}

func (c *HygienePurgeOrphansCmd) Run(ctx *cli.Context) error {
	ok, err := cli.Confirm("Delete completions that reference deleted habits?", c.Yes)
	if err != nil || !ok {
		return err
	}
	n, err := ctx.Tracker.PurgeOrphanCompletions()
	if err != nil {
		return err
	}
	fmt.Printf("Removed %d orphaned completion(s)\n", n)
	return nil
}
