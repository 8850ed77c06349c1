// Package sqlstore implements the user and task repositories on database/sql
// for PostgreSQL (lib/pq) and SQLite (modernc.org/sqlite). Schema changes are
// embedded golang-migrate migrations, one directory per dialect.
package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/lib/pq"
	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"
)

// Dialect selects SQL placeholder style, driver and migration set.
type Dialect string

const (
	Postgres Dialect = "postgres"
	SQLite   Dialect = "sqlite"
)

// ErrUnknownDialect is returned for drivers other than Postgres and SQLite.
var ErrUnknownDialect = errors.New("unknown sql dialect")

// ParseDialect maps a configured driver name to a Dialect.
func ParseDialect(driver string) (Dialect, error) {
	switch d := Dialect(strings.ToLower(strings.TrimSpace(driver))); d {
	case Postgres, SQLite:
		return d, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownDialect, driver)
	}
}

// Store owns the connection pool shared by the user and task repositories.
type Store struct {
	db      *sql.DB
	dialect Dialect
	logger  *slog.Logger
}

// Options tunes Open.
type Options struct {
	// Migrate applies pending migrations before the store is returned.
	Migrate bool
	Logger  *slog.Logger
}

// Open connects to dsn, verifies the connection and optionally migrates the
// schema. The driver name registered by lib/pq is "postgres" and by
// modernc.org/sqlite is "sqlite", matching the Dialect values.
func Open(ctx context.Context, d Dialect, dsn string, opts Options) (*Store, error) {
	if strings.TrimSpace(dsn) == "" {
		return nil, errors.New("sqlstore: dsn is required")
	}
	if d != Postgres && d != SQLite {
		return nil, fmt.Errorf("%w: %q", ErrUnknownDialect, d)
	}

	db, err := sql.Open(string(d), dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s db: %w", d, err)
	}
	if d == SQLite {
		// SQLite serializes writers, and an in-memory database lives on a
		// single connection, so the pool never grows past one.
		db.SetMaxOpenConns(1)
		db.SetConnMaxIdleTime(0)
		db.SetConnMaxLifetime(0)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s db: %w", d, err)
	}

	if opts.Migrate {
		if err := migrateFor(d, dsn, db); err != nil {
			_ = db.Close()
			return nil, err
		}
	}

	return New(db, d, opts.Logger), nil
}

// migrateFor runs the migrations for d. SQLite migrates on the store's own
// pool; Postgres gets a dedicated handle because its migrator pins a
// connection until it is closed.
func migrateFor(d Dialect, dsn string, pool *sql.DB) error {
	if d == SQLite {
		return runMigrations(pool, d, false)
	}
	mdb, err := sql.Open(string(d), dsn)
	if err != nil {
		return fmt.Errorf("open %s db for migration: %w", d, err)
	}
	return Migrate(mdb, d)
}

// New wraps an already opened handle. The schema must exist.
func New(db *sql.DB, d Dialect, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Store{db: db, dialect: d, logger: logger}
}

// Users returns the user repository backed by this store.
func (s *Store) Users() *UserRepository {
	return &UserRepository{store: s}
}

// Tasks returns the task repository backed by this store.
func (s *Store) Tasks() *TaskRepository {
	return &TaskRepository{store: s}
}

// Name identifies the store in readiness reports.
func (s *Store) Name() string {
	return string(s.dialect)
}

// HealthCheck pings the database.
func (s *Store) HealthCheck(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close releases the connection pool.
func (s *Store) Close() error {
	return s.db.Close()
}

// rebind rewrites '?' placeholders into the dialect's style.
func (s *Store) rebind(query string) string {
	if s.dialect != Postgres {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)
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

// isUniqueViolation reports whether err is a unique-constraint failure from
// either driver.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	var liteErr *msqlite.Error
	if errors.As(err, &liteErr) {
		return liteErr.Code() == sqlite3lib.SQLITE_CONSTRAINT_UNIQUE ||
			liteErr.Code() == sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY
	}
	return false
}
