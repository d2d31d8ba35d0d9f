package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/julianstephens/lifetrack/internal/constants"
	"github.com/julianstephens/lifetrack/internal/keyring"
	"github.com/julianstephens/lifetrack/internal/storage"
	"github.com/julianstephens/lifetrack/internal/storage/postgres"
	"github.com/julianstephens/lifetrack/internal/storage/sqlite"
)

const keyringConfig = "keyring"

type source int

const (
	fromFlag source = iota
	fromEnv
	fromKeyring
)

// target is the resolved storage location
type target struct {
	path    string
	connStr string
	source  source
}

func isPostgres(value string) bool {
	return postgres.IsConnString(value) || strings.Contains(value, "host=")
}

// resolveTarget picks the store from the environment, the keyring or the
// --config flag, in that order of precedence.
func resolveTarget(config, env string) (target, error) {
	switch {
	case env != "":
		if !isPostgres(env) {
			return target{}, fmt.Errorf("%s must be a PostgreSQL connection string", constants.ConnectionEnvVar)
		}
		return target{connStr: env, source: fromEnv}, nil
	case config == keyringConfig:
		connStr, err := keyring.GetConnectionString()
		if err != nil {
			if errors.Is(err, keyring.ErrNotFound) {
				return target{}, fmt.Errorf("no connection string in keyring, store one with '%s keyring set'", constants.AppName)
			}
			return target{}, err
		}
		return target{connStr: connStr, source: fromKeyring}, nil
	case isPostgres(config):
		return target{connStr: config, source: fromFlag}, nil
	}

	path, err := expandHome(config)
	if err != nil {
		return target{}, err
	}
	return target{path: path}, nil
}

func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

// open builds the provider. Passwords are only accepted from the environment
// or the keyring, never from the command line.
func (t target) open() (storage.Provider, error) {
	if t.connStr == "" {
		return sqlite.NewStore(t.path), nil
	}
	if err := postgres.ValidateConnString(t.connStr); err != nil {
		if !errors.Is(err, postgres.ErrEmbeddedCredentials) {
			return nil, err
		}
		if t.source == fromFlag {
			return nil, fmt.Errorf("PostgreSQL connection strings with embedded credentials are not allowed on the command line; "+
				"use '%s keyring set', %s or a .pgpass file", constants.AppName, constants.ConnectionEnvVar)
		}
	}
	return postgres.New(t.connStr), nil
}

// logDir keeps logs next to the SQLite file, or in the default config directory for PostgreSQL
func (t target) logDir() string {
	if t.path != "" {
		return filepath.Dir(t.path)
	}
	dir, err := expandHome(filepath.Dir(constants.DefaultConfigPath))
	if err != nil {
		return os.TempDir()
	}
	return dir
}
