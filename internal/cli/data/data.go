package data

import (
	"fmt"
	"os"

	"github.com/julianstephens/lifetrack/internal/cli"
	"github.com/julianstephens/lifetrack/internal/exchange"
)

type ExportCmd struct {
	Out string `short:"o" help:"Write to this file instead of stdout." type:"path"`
}

func (c *ExportCmd) Run(ctx *cli.Context) error {
	snap, err := exchange.Export(ctx.Store)
	if err != nil {
		return err
	}

	if c.Out == "" {
		return exchange.WriteYAML(os.Stdout, snap)
	}

	f, err := os.OpenFile(c.Out, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	if err := exchange.WriteYAML(f, snap); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write export file: %w", err)
	}
	fmt.Fprintf(os.Stderr, "Exported %d dopamine entries, %d habits, %d workouts to %s\n",
		len(snap.DopamineEntries), len(snap.HygieneHabits), len(snap.WorkoutHistory), c.Out)
	return nil
}

type ImportCmd struct {
	File string `arg:"" help:"YAML file produced by export." type:"existingfile"`
	Yes  bool   `short:"y" help:"Import without asking for confirmation."`
}

func (c *ImportCmd) Run(ctx *cli.Context) error {
	f, err := os.Open(c.File)
	if err != nil {
		return fmt.Errorf("failed to open import file: %w", err)
	}
	defer f.Close()

	snap, err := exchange.ReadYAML(f)
	if err != nil {
		return err
	}

	ok, err := cli.Confirm(fmt.Sprintf("Import %s? Records with matching ids will be overwritten.", c.File), c.Yes)
	if err != nil || !ok {
		return err
	}
	ctx.PerformAutomaticBackup("import")

	res, err := exchange.Import(ctx.Store, ctx.Engine, snap)
	if err != nil {
		return err
	}
	fmt.Printf("Imported %d new and %d updated records, rebuilt %d daily summaries\n", res.Added, res.Updated, res.Summaries)
	return nil
}
