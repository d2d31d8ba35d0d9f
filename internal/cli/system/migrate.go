package system

import (
	"errors"
	"fmt"

	"github.com/julianstephens/lifetrack/internal/cli"
	"github.com/julianstephens/lifetrack/internal/storage"
)

type MigrateCmd struct {
	Status bool `help:"Only show the current and latest schema versions."`
}

func (c *MigrateCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load database: %w", err)
	}

	migrator, ok := ctx.Store.(storage.Migrator)
	if !ok {
		return errors.New("this storage backend does not support migrations")
	}

	if c.Status {
		st, err := migrator.MigrationStatus()
		if err != nil {
			return err
		}
		fmt.Printf("Current version: %d\n", st.Current)
		fmt.Printf("Latest version:  %d\n", st.Latest)
		for _, m := range st.Pending {
			fmt.Printf("  pending: %03d_%s\n", m.Version, m.Name)
		}
		return nil
	}

	ctx.PerformAutomaticBackup("migrate")
	count, err := migrator.Migrate(func(msg string) {
		fmt.Println(msg)
	})
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	if count == 0 {
		fmt.Println("No migrations to apply. Database is up to date.")
	} else {
		fmt.Printf("\nSuccessfully applied %d migration(s).\n", count)
	}
	return nil
}
