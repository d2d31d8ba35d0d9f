package summary

import (
	"fmt"
	"strconv"

	"github.com/julianstephens/lifetrack/internal/calendar"
	"github.com/julianstephens/lifetrack/internal/cli"
	"github.com/julianstephens/lifetrack/internal/constants"
	"github.com/julianstephens/lifetrack/internal/engine"
	"github.com/julianstephens/lifetrack/internal/models"
)

type TodayCmd struct {
	Date string `help:"Date in YYYY-MM-DD format (default: today)."`
}

func (c *TodayCmd) Run(ctx *cli.Context) error {
	date, err := ctx.ResolveDate(c.Date)
	if err != nil {
		return err
	}
	day, err := ctx.Engine.DayStatus(date)
	if err != nil {
		return err
	}
	printDay(day)
	return nil
}

func printDay(day engine.DaySummary) {
	fmt.Println(heading(day.Date))
	fmt.Printf("  %s Dopamine control\n", cli.YesNo(day.Dopamine))
	fmt.Printf("  %s Workout\n", cli.YesNo(day.Workout))
	fmt.Printf("  %s Hygiene (%d%%, complete at %d%%)\n", cli.YesNo(day.Hygiene), day.HygieneRate, constants.HygieneThreshold)
	fmt.Printf("  Total: %d%%\n", day.Total)
}

func heading(d string) string {
	return cli.DimStyle.Render(d)
}

type StreakCmd struct {
	AsOf string `name:"as-of" help:"Count back from this date (default: today)."`
}

func (c *StreakCmd) Run(ctx *cli.Context) error {
	asOf, err := ctx.ResolveDate(c.AsOf)
	if err != nil {
		return err
	}
	current, err := ctx.Engine.CurrentStreak(asOf)
	if err != nil {
		return err
	}
	longest, err := ctx.Engine.LongestStreakFromStore()
	if err != nil {
		return err
	}
	fmt.Printf("Current streak: %d day(s) as of %s\n", current, asOf)
	fmt.Printf("Longest streak: %d day(s)\n", longest)
	if current >= constants.StreakCap {
		fmt.Println(cli.DimStyle.Render(fmt.Sprintf("(current streak is counted back at most %d days)", constants.StreakCap)))
	}
	return nil
}

type SummaryCmd struct {
	Show     SummaryShowCmd     `cmd:"" help:"Show the stored summary for a day." default:"1"`
	Week     SummaryWeekCmd     `cmd:"" help:"Show the week containing a day."`
	List     SummaryListCmd     `cmd:"" help:"List stored daily summaries."`
	Rebuild  SummaryRebuildCmd  `cmd:"" help:"Delete and regenerate every daily summary from the logs."`
	Calendar SummaryCalendarCmd `cmd:"" help:"Show the dashboard month calendar."`
}

type SummaryShowCmd struct {
	Date    string `help:"Date in YYYY-MM-DD format (default: today)."`
	Refresh bool   `help:"Recompute and store the summary first."`
}

func (c *SummaryShowCmd) Run(ctx *cli.Context) error {
	date, err := ctx.ResolveDate(c.Date)
	if err != nil {
		return err
	}
	if c.Refresh {
		if _, err := ctx.Engine.UpsertDailyCompletion(date); err != nil {
			return err
		}
	}

	rows, err := ctx.Store.GetDailyCompletionsByDate(date)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		fmt.Printf("No stored summary for %s. Computed from the logs:\n", date)
		day, err := ctx.Engine.DayStatus(date)
		if err != nil {
			return err
		}
		printDay(day)
		return nil
	}

	row := rows[0]
	fmt.Println(heading(row.Date))
	fmt.Printf("  %s Dopamine control\n", cli.YesNo(row.DopamineCompleted))
	fmt.Printf("  %s Workout\n", cli.YesNo(row.WorkoutCompleted))
	fmt.Printf("  %s Hygiene\n", cli.YesNo(row.HygieneCompleted))
	fmt.Printf("  Total: %d%%\n", row.TotalCompletion)
	fmt.Println(cli.DimStyle.Render("  computed " + row.CreatedAt.Local().Format("2006-01-02 15:04")))
	return nil
}

type SummaryWeekCmd struct {
	Date string `help:"Any date in the week (default: today)."`
}

func (c *SummaryWeekCmd) Run(ctx *cli.Context) error {
	day, err := ctx.ResolveDate(c.Date)
	if err != nil {
		return err
	}
	weekStart, err := ctx.WeekStart()
	if err != nil {
		return err
	}
	week, err := ctx.Engine.WeeklyCompletion(day, weekStart)
	if err != nil {
		return err
	}

	t := cli.NewTable("DATE", "DOPAMINE", "WORKOUT", "HYGIENE", "TOTAL")
	for _, d := range week.Days {
		t.Row(d.Date, cli.YesNo(d.Dopamine), cli.YesNo(d.Workout), strconv.Itoa(d.HygieneRate)+"%", strconv.Itoa(d.Total)+"%")
	}
	fmt.Printf("Week %s to %s\n", week.Start, week.End)
	fmt.Println(t)
	fmt.Printf("Average: %d%%\n", week.Average)
	return nil
}

type SummaryListCmd struct {
	From string `help:"First date to include (YYYY-MM-DD)."`
	To   string `help:"Last date to include (YYYY-MM-DD)."`
}

func (c *SummaryListCmd) Run(ctx *cli.Context) error {
	var (
		rows []models.DailyCompletion
		err  error
	)
	if c.From == "" && c.To == "" {
		rows, err = ctx.Store.GetAllDailyCompletions()
	} else {
		from := "0000-01-01"
		if c.From != "" {
			if from, err = ctx.ResolveDate(c.From); err != nil {
				return err
			}
		}
		var to string
		if to, err = ctx.ResolveDate(c.To); err != nil {
			return err
		}
		rows, err = ctx.Store.GetDailyCompletionsInRange(from, to)
	}
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		fmt.Println("No daily summaries stored.")
		return nil
	}

	t := cli.NewTable("DATE", "DOPAMINE", "WORKOUT", "HYGIENE", "TOTAL")
	for _, r := range rows {
		t.Row(r.Date, cli.YesNo(r.DopamineCompleted), cli.YesNo(r.WorkoutCompleted), cli.YesNo(r.HygieneCompleted), strconv.Itoa(r.TotalCompletion)+"%")
	}
	fmt.Println(t)
	return nil
}

type SummaryRebuildCmd struct {
	Yes bool `short:"y" help:"Rebuild without asking for confirmation."`
}

func (c *SummaryRebuildCmd) Run(ctx *cli.Context) error {
	ok, err := cli.Confirm("Delete and regenerate every daily summary?", c.Yes)
	if err != nil || !ok {
		return err
	}
	ctx.PerformAutomaticBackup("summary rebuild")

	n, err := ctx.Engine.RebuildSummaries()
	if err != nil {
		return err
	}
	fmt.Printf("Rebuilt %d daily summaries\n", n)
	return nil
}

type SummaryCalendarCmd struct {
	Month string `arg:"" optional:"" help:"Month in YYYY-MM format (default: current month)."`
}

func (c *SummaryCalendarCmd) Run(ctx *cli.Context) error {
	month, today, err := ctx.ResolveMonth(c.Month)
	if err != nil {
		return err
	}
	statuses, err := ctx.Engine.DashboardMonth(month)
	if err != nil {
		return err
	}
	out, err := ctx.RenderMonth(month, today, statuses, calendar.Passed, calendar.Failed)
	if err != nil {
		return err
	}
	fmt.Println(out)

	total, err := ctx.Engine.TodayCompletionPercentage(today)
	if err != nil {
		return err
	}
	fmt.Printf("\nToday: %d%% complete\n", total)
	return nil
}
