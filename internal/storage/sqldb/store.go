// Package sqldb implements storage.Provider's record operations over database/sql.
// Queries are written with "?" placeholders and rebound for dialects that number them.
package sqldb

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/julianstephens/lifetrack/internal/storage"
)

// Dialect describes the placeholder style of the underlying driver
type Dialect int

const (
	// DialectSQLite uses "?" placeholders
	DialectSQLite Dialect = iota
	// DialectPostgres uses "$1", "$2", ... placeholders
	DialectPostgres
)

// timestampFormat is fixed-width so that created_at sorts lexically
const timestampFormat = "2006-01-02T15:04:05.000000000Z07:00"

type Store struct {
	db      *sql.DB
	dialect Dialect
}

func New(dialect Dialect) *Store {
	return &Store{dialect: dialect}
}

// Attach sets the open connection used for every query
func (s *Store) Attach(db *sql.DB) {
	s.db = db
}

// GetDB returns the underlying database connection.
// Returns nil if the database has not been initialized or loaded.
func (s *Store) GetDB() *sql.DB {
	return s.db
}

func (s *Store) Close() error {
	if s.db != nil {
		err := s.db.Close()
		s.db = nil
		return err
	}
	return nil
}

// queryer is satisfied by both *sql.DB and *sql.Tx
type queryer interface {
	Exec(query string, args ...any) (sql.Result, error)
	Query(query string, args ...any) (*sql.Rows, error)
	QueryRow(query string, args ...any) *sql.Row
}

// scanner is satisfied by both *sql.Row and *sql.Rows
type scanner interface {
	Scan(dest ...any) error
}

func (s *Store) rebind(query string) string {
	if s.dialect != DialectPostgres {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func (s *Store) conn() (*sql.DB, error) {
	if s.db == nil {
		return nil, errors.New("storage not loaded")
	}
	return s.db, nil
}

func (s *Store) exec(q queryer, query string, args ...any) (sql.Result, error) {
	return q.Exec(s.rebind(query), args...)
}

// execOne runs a statement that must touch exactly one row
func (s *Store) execOne(query string, args ...any) error {
	db, err := s.conn()
	if err != nil {
		return err
	}
	res, err := s.exec(db, query, args...)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// execCount runs a statement and returns the number of rows it touched
func (s *Store) execCount(q queryer, query string, args ...any) (int, error) {
	res, err := s.exec(q, query, args...)
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int(n), nil
}

// withTx runs fn inside a transaction, rolling back on any error
func (s *Store) withTx(fn func(tx *sql.Tx) error) error {
	db, err := s.conn()
	if err != nil {
		return err
	}
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}

// queryAll runs query and maps every row through scan
func queryAll[T any](s *Store, scan func(scanner) (T, error), query string, args ...any) ([]T, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}
	rows, err := db.Query(s.rebind(query), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []T{}
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// queryOne runs query and scans a single row, mapping sql.ErrNoRows to storage.ErrNotFound
func queryOne[T any](s *Store, scan func(scanner) (T, error), query string, args ...any) (T, error) {
	var zero T
	db, err := s.conn()
	if err != nil {
		return zero, err
	}
	item, err := scan(db.QueryRow(s.rebind(query), args...))
	if errors.Is(err, sql.ErrNoRows) {
		return zero, storage.ErrNotFound
	}
	return item, err
}

// ensureID returns id, or a fresh UUID when id is empty
func ensureID(id string) string {
	if id == "" {
		return uuid.New().String()
	}
	return id
}

func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		t = time.Now()
	}
	return t.UTC().Format(timestampFormat)
}

func parseTimestamp(value, field, id string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse %s for %s: %w", field, id, err)
	}
	return t, nil
}
