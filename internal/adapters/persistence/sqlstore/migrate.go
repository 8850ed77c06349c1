package sqlstore

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/postgres/*.sql migrations/sqlite/*.sql
var migrationsFS embed.FS

// Migrate applies every pending up migration for dialect on db. Being up to
// date is not an error. The migrator takes ownership of db and closes it on
// every path, so callers pass a dedicated handle rather than the store's pool.
func Migrate(db *sql.DB, d Dialect) error {
	return runMigrations(db, d, true)
}

// runMigrations migrates db. With release unset db stays open afterwards,
// which SQLite needs: an in-memory database exists only on the connection
// that created it, so the schema must be built on the store's own pool.
func runMigrations(db *sql.DB, d Dialect, release bool) (err error) {
	handedOver := false
	defer func() {
		if release && !handedOver {
			_ = db.Close()
		}
	}()

	source, err := iofs.New(migrationsFS, "migrations/"+string(d))
	if err != nil {
		return fmt.Errorf("creating migration source: %w", err)
	}

	var driver database.Driver
	switch d {
	case Postgres:
		driver, err = migratepg.WithInstance(db, &migratepg.Config{})
	case SQLite:
		driver, err = migratesqlite.WithInstance(db, &migratesqlite.Config{})
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownDialect, d)
	}
	if err != nil {
		_ = source.Close()
		return fmt.Errorf("creating migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, string(d), driver)
	if err != nil {
		_ = source.Close()
		return fmt.Errorf("creating migrator: %w", err)
	}
	if release {
		// Closing the migrator closes the source, the driver and db.
		handedOver = true
		defer m.Close()
	} else {
		defer source.Close()
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("running migrations: %w", err)
	}
	return nil
}
