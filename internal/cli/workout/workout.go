package workout

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/julianstephens/lifetrack/internal/calendar"
	"github.com/julianstephens/lifetrack/internal/cli"
	"github.com/julianstephens/lifetrack/internal/models"
)

type WorkoutCmd struct {
	Template struct {
		Add    TemplateAddCmd    `cmd:"" help:"Add a workout template."`
		List   TemplateListCmd   `cmd:"" help:"List templates with their exercises."`
		Delete TemplateDeleteCmd `cmd:"" help:"Delete a template, its exercises and sets."`
	} `cmd:"" help:"Manage workout templates."`
	Exercise struct {
		Add  ExerciseAddCmd  `cmd:"" help:"Add an exercise to a template."`
		List ExerciseListCmd `cmd:"" help:"List a template's exercises and sets."`
		PR   ExercisePRCmd   `cmd:"" name:"pr" help:"Update an exercise's personal record."`
	} `cmd:"" help:"Manage exercises."`
	Set struct {
		Add SetAddCmd `cmd:"" help:"Log a set for an exercise."`
	} `cmd:"" help:"Manage sets."`
	Log      WorkoutLogCmd      `cmd:"" help:"Log the day's workout outcome."`
	List     WorkoutListCmd     `cmd:"" help:"List workout history."`
	Delete   WorkoutDeleteCmd   `cmd:"" help:"Delete a workout history entry."`
	Calendar WorkoutCalendarCmd `cmd:"" help:"Show a month of workouts."`
}

// findTemplate matches by id first, then by case-insensitive name
func findTemplate(ctx *cli.Context, ref string) (models.WorkoutTemplate, error) {
	templates, err := ctx.Store.GetAllWorkoutTemplates()
	if err != nil {
		return models.WorkoutTemplate{}, err
	}
	for _, t := range templates {
		if t.ID == ref {
			return t, nil
		}
	}
	for _, t := range templates {
		if strings.EqualFold(t.Name, strings.TrimSpace(ref)) {
			return t, nil
		}
	}
	return models.WorkoutTemplate{}, fmt.Errorf("template %q not found", ref)
}

type TemplateAddCmd struct {
	Name string `arg:"" help:"Template name, e.g. \"Leg Day\"."`
}

func (c *TemplateAddCmd) Run(ctx *cli.Context) error {
	if _, err := findTemplate(ctx, c.Name); err == nil {
		return fmt.Errorf("template with name %q already exists", c.Name)
	}
	tpl, err := ctx.Tracker.AddTemplate(c.Name)
	if err != nil {
		return err
	}
	fmt.Printf("Added template: %s (%s)\n", tpl.Name, tpl.ID)
	return nil
}

type TemplateListCmd struct{}

func (c *TemplateListCmd) Run(ctx *cli.Context) error {
	templates, err := ctx.Store.GetAllWorkoutTemplates()
	if err != nil {
		return err
	}
	if len(templates) == 0 {
		fmt.Println("No templates found.")
		return nil
	}

	t := cli.NewTable("TEMPLATE", "EXERCISES", "ID")
	for _, tpl := range templates {
		exercises, err := ctx.Store.GetWorkoutExercisesByTemplate(tpl.ID)
		if err != nil {
			return err
		}
		names := make([]string, 0, len(exercises))
		for _, ex := range exercises {
			names = append(names, ex.Name)
		}
		t.Row(tpl.Name, strings.Join(names, ", "), tpl.ID)
	}
	fmt.Println(t)
	return nil
}

type TemplateDeleteCmd struct {
	Template string `arg:"" help:"Template name or id."`
	Yes      bool   `short:"y" help:"Delete without asking for confirmation."`
}

func (c *TemplateDeleteCmd) Run(ctx *cli.Context) error {
	tpl, err := findTemplate(ctx, c.Template)
	if err != nil {
		return err
	}
	ok, err := cli.Confirm(fmt.Sprintf("Delete %q with all of its exercises and sets?", tpl.Name), c.Yes)
	if err != nil || !ok {
		return err
	}
	if err := ctx.Tracker.DeleteTemplate(tpl.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted template: %s\n", tpl.Name)
	return nil
}

type ExerciseAddCmd struct {
	Template string `arg:"" help:"Template name or id."`
	Name     string `arg:"" help:"Exercise name."`
	PR       string `name:"pr" help:"Personal record, free-form (e.g. \"100kg x 5\")."`
}

func (c *ExerciseAddCmd) Run(ctx *cli.Context) error {
	tpl, err := findTemplate(ctx, c.Template)
	if err != nil {
		return err
	}
	ex, err := ctx.Tracker.AddExercise(tpl.ID, c.Name, c.PR)
	if err != nil {
		return err
	}
	fmt.Printf("Added %s to %s (%s)\n", ex.Name, tpl.Name, ex.ID)
	return nil
}

type ExerciseListCmd struct {
	Template string `arg:"" help:"Template name or id."`
}

func (c *ExerciseListCmd) Run(ctx *cli.Context) error {
	tpl, err := findTemplate(ctx, c.Template)
	if err != nil {
		return err
	}
	exercises, err := ctx.Store.GetWorkoutExercisesByTemplate(tpl.ID)
	if err != nil {
		return err
	}
	if len(exercises) == 0 {
		fmt.Printf("%s has no exercises.\n", tpl.Name)
		return nil
	}

	t := cli.NewTable("#", "EXERCISE", "PR", "SETS", "ID")
	for _, ex := range exercises {
		sets, err := ctx.Store.GetWorkoutSetsByExercise(ex.ID)
		if err != nil {
			return err
		}
		t.Row(strconv.Itoa(ex.Order+1), ex.Name, ex.PR, formatSets(sets), ex.ID)
	}
	fmt.Println(tpl.Name)
	fmt.Println(t)
	return nil
}

func formatSets(sets []models.WorkoutSet) string {
	parts := make([]string, 0, len(sets))
	for _, s := range sets {
		if s.Weight == "" {
			parts = append(parts, fmt.Sprintf("%d", s.Reps))
			continue
		}
		parts = append(parts, fmt.Sprintf("%s×%d", s.Weight, s.Reps))
	}
	return strings.Join(parts, ", ")
}

type ExercisePRCmd struct {
	Exercise string `arg:"" help:"Exercise id."`
	PR       string `arg:"" help:"New personal record."`
}

func (c *ExercisePRCmd) Run(ctx *cli.Context) error {
	ex, err := ctx.Tracker.UpdateExercisePR(c.Exercise, c.PR)
	if err != nil {
		return err
	}
	fmt.Printf("%s PR: %s\n", ex.Name, ex.PR)
	return nil
}

type SetAddCmd struct {
	Exercise string `arg:"" help:"Exercise id."`
	Reps     int    `arg:"" help:"Repetitions."`
	Weight   string `help:"Weight, free-form (e.g. \"60kg\")."`
}

func (c *SetAddCmd) Run(ctx *cli.Context) error {
	set, err := ctx.Tracker.AddSet(c.Exercise, c.Weight, c.Reps)
	if err != nil {
		return err
	}
	fmt.Printf("Logged set %d: %s\n", set.Order+1, formatSets([]models.WorkoutSet{set}))
	return nil
}

type WorkoutLogCmd struct {
	Type     string `arg:"" enum:"completed,rest,missed" help:"completed, rest or missed."`
	Date     string `help:"Date in YYYY-MM-DD format (default: today)."`
	Template string `help:"Template name or id the workout followed."`
	Notes    string `help:"Optional note."`
}

func (c *WorkoutLogCmd) Run(ctx *cli.Context) error {
	date, err := ctx.ResolveDate(c.Date)
	if err != nil {
		return err
	}
	templateID := ""
	if c.Template != "" {
		tpl, err := findTemplate(ctx, c.Template)
		if err != nil {
			return err
		}
		templateID = tpl.ID
	}

	h, err := ctx.Tracker.LogWorkout(date, models.WorkoutType(c.Type), templateID, c.Notes)
	if err != nil {
		return err
	}
	fmt.Printf("Logged %s workout for %s\n", h.Type, h.Date)
	return nil
}

type WorkoutListCmd struct {
	From string `help:"First date to include (YYYY-MM-DD)."`
	To   string `help:"Last date to include (YYYY-MM-DD)."`
}

func (c *WorkoutListCmd) Run(ctx *cli.Context) error {
	var (
		history []models.WorkoutHistory
		err     error
	)
	if c.From != "" || c.To != "" {
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
		history, err = ctx.Store.GetWorkoutHistoryInRange(from, to)
	} else {
		history, err = ctx.Store.GetAllWorkoutHistory()
	}
	if err != nil {
		return err
	}
	if len(history) == 0 {
		fmt.Println("No workouts logged.")
		return nil
	}

	names := map[string]string{}
	templates, err := ctx.Store.GetAllWorkoutTemplates()
	if err != nil {
		return err
	}
	for _, tpl := range templates {
		names[tpl.ID] = tpl.Name
	}

	t := cli.NewTable("DATE", "TYPE", "TEMPLATE", "NOTES", "ID")
	for _, h := range history {
		tpl := ""
		if h.TemplateID != nil {
			tpl = names[*h.TemplateID]
		}
		t.Row(h.Date, string(h.Type), tpl, h.Notes, h.ID)
	}
	fmt.Println(t)
	return nil
}

type WorkoutDeleteCmd struct {
	ID  string `arg:"" help:"History entry id."`
	Yes bool   `short:"y" help:"Delete without asking for confirmation."`
}

func (c *WorkoutDeleteCmd) Run(ctx *cli.Context) error {
	h, err := ctx.Store.GetWorkoutHistory(c.ID)
	if err != nil {
		return fmt.Errorf("workout %s: %w", c.ID, err)
	}
	ok, err := cli.Confirm(fmt.Sprintf("Delete the %s workout on %s?", h.Type, h.Date), c.Yes)
	if err != nil || !ok {
		return err
	}
	if err := ctx.Tracker.DeleteWorkout(c.ID); err != nil {
		return err
	}
	fmt.Printf("Deleted workout on %s\n", h.Date)
	return nil
}

type WorkoutCalendarCmd struct {
	Month string `arg:"" optional:"" help:"Month in YYYY-MM format (default: current month)."`
}

func (c *WorkoutCalendarCmd) Run(ctx *cli.Context) error {
	month, today, err := ctx.ResolveMonth(c.Month)
	if err != nil {
		return err
	}
	statuses, err := ctx.Engine.WorkoutMonth(month)
	if err != nil {
		return err
	}
	out, err := ctx.RenderMonth(month, today, statuses, calendar.Passed, calendar.Rest, calendar.Failed)
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}
