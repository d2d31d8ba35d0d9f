package storage

import "github.com/julianstephens/lifetrack/internal/migration"

// Migrator is implemented by SQL-backed providers that can report and apply
// schema migrations outside of Init.
type Migrator interface {
	MigrationStatus() (migration.Status, error)
	Migrate(logFn func(string)) (int, error)
}
