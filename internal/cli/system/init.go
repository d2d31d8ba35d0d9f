package system

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/julianstephens/lifetrack/internal/cli"
	"github.com/julianstephens/lifetrack/internal/engine"
	"github.com/julianstephens/lifetrack/internal/exchange"
	"github.com/julianstephens/lifetrack/internal/storage"
	"github.com/julianstephens/lifetrack/internal/storage/postgres"
	"github.com/julianstephens/lifetrack/internal/storage/sqlite"
)

type InitCmd struct {
	Force  bool   `help:"Force reset by deleting existing database before initialization."`
	Source string `help:"Source database path or connection string to copy data from."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if c.Force {
		dbPath := ctx.Store.GetConfigPath()
		if c.Source != "" {
			if absDB, err := filepath.Abs(dbPath); err == nil {
				dbPath = absDB
			}
			if absSource, err := filepath.Abs(c.Source); err == nil && absSource == dbPath {
				return fmt.Errorf("cannot use --force when source and destination are the same: %s", dbPath)
			}
		}
		if _, err := os.Stat(dbPath); err == nil {
			if err := ctx.Store.Close(); err != nil {
				return fmt.Errorf("failed to close existing database: %w", err)
			}
			if err := os.Remove(dbPath); err != nil {
				return fmt.Errorf("failed to delete existing database: %w", err)
			}
			fmt.Printf("Deleted existing database at: %s\n", dbPath)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("failed to access existing database: %w", err)
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	fmt.Printf("Initialized lifetrack storage at: %s\n", ctx.Store.GetConfigPath())

	if c.Source != "" {
		fmt.Printf("Copying data from: %s\n", c.Source)
		res, err := copyFrom(ctx, c.Source)
		if err != nil {
			return fmt.Errorf("copy failed: %w", err)
		}
		fmt.Printf("Copied %d records (%d updated), rebuilt %d daily summaries\n", res.Added+res.Updated, res.Updated, res.Summaries)
	}
	return nil
}

func openSource(source string) (storage.Provider, error) {
	if !postgres.IsConnString(source) {
		return sqlite.NewStore(source), nil
	}
	if err := postgres.ValidateConnString(source); err != nil {
		if errors.Is(err, postgres.ErrEmbeddedCredentials) {
			return nil, errors.New("PostgreSQL source connection string contains embedded credentials. Use environment variables or .pgpass instead")
		}
		return nil, err
	}
	return postgres.New(source), nil
}

func copyFrom(ctx *cli.Context, source string) (exchange.Result, error) {
	src, err := openSource(source)
	if err != nil {
		return exchange.Result{}, err
	}
	if err := src.Load(); err != nil {
		return exchange.Result{}, fmt.Errorf("failed to load source database: %w", err)
	}
	defer src.Close()

	snap, err := exchange.Export(src)
	if err != nil {
		return exchange.Result{}, err
	}
	return exchange.Import(ctx.Store, engine.New(ctx.Store), snap)
}
