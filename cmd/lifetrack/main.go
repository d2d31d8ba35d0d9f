package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/julianstephens/lifetrack/internal/cli"
	"github.com/julianstephens/lifetrack/internal/cli/backups"
	"github.com/julianstephens/lifetrack/internal/cli/data"
	"github.com/julianstephens/lifetrack/internal/cli/dopamine"
	"github.com/julianstephens/lifetrack/internal/cli/hygiene"
	"github.com/julianstephens/lifetrack/internal/cli/settings"
	"github.com/julianstephens/lifetrack/internal/cli/summary"
	"github.com/julianstephens/lifetrack/internal/cli/system"
	"github.com/julianstephens/lifetrack/internal/cli/workout"
	"github.com/julianstephens/lifetrack/internal/constants"
	"github.com/julianstephens/lifetrack/internal/errors"
	"github.com/julianstephens/lifetrack/internal/logger"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"SQLite database path, PostgreSQL connection string, or 'keyring'. PostgreSQL credentials must NOT be embedded here; use ${env}, .pgpass or the OS keyring." default:"${config}"`
	Debug   bool   `help:"Write debug logs to stderr as well as the log file."`

	Init     system.InitCmd       `cmd:"" help:"Initialize lifetrack storage."`
	Migrate  system.MigrateCmd    `cmd:"" help:"Run database migrations."`
	Doctor   system.DoctorCmd     `cmd:"" help:"Run health checks and diagnostics."`
	Tui      system.TuiCmd        `cmd:"" help:"Launch the interactive TUI." default:"1"`
	Keyring  system.KeyringCmd    `cmd:"" help:"Manage the PostgreSQL connection string in the OS keyring."`
	Today    summary.TodayCmd     `cmd:"" help:"Show today's dopamine, workout and hygiene status."`
	Streak   summary.StreakCmd    `cmd:"" help:"Show the current and longest dopamine streaks."`
	Summary  summary.SummaryCmd   `cmd:"" help:"Daily summaries and weekly completion."`
	Dopamine dopamine.DopamineCmd `cmd:"" help:"Log and review dopamine control."`
	Hygiene  hygiene.HygieneCmd   `cmd:"" help:"Manage hygiene habits and completions."`
	Workout  workout.WorkoutCmd   `cmd:"" help:"Manage workout templates and history."`
	Backup   backups.BackupCmd    `cmd:"" help:"Manage database backups."`
	Export   data.ExportCmd       `cmd:"" help:"Export every log as YAML."`
	Import   data.ImportCmd       `cmd:"" help:"Import a YAML export."`
	Settings settings.SettingsCmd `cmd:"" help:"Manage application settings."`
}

// commands that manage their own connection
var selfLoading = []string{"init", "doctor", "keyring", "migrate"}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Daily dopamine, hygiene and workout tracker"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version": constants.Version,
			"config":  constants.DefaultConfigPath,
			"env":     constants.ConnectionEnvVar,
		},
	)

	tgt, err := resolveTarget(CLI.Config, os.Getenv(constants.ConnectionEnvVar))
	if err != nil {
		errors.Fatal(err)
	}

	if err := logger.Init(logger.Config{Debug: CLI.Debug, Dir: tgt.logDir()}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logger: %v\n", err)
	}

	store, err := tgt.open()
	if err != nil {
		errors.Fatal(err)
	}
	defer store.Close()

	if !loadsItself(ctx.Command()) {
		if err := store.Load(); err != nil {
			errors.Fatal(err)
		}
	}

	if err := ctx.Run(cli.NewContext(store)); err != nil {
		store.Close()
		errors.Fatal(err)
	}
}

func loadsItself(command string) bool {
	first, _, _ := strings.Cut(command, " ")
	for _, name := range selfLoading {
		if first == name {
			return true
		}
	}
	return false
}
