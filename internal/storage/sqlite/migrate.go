package sqlite

import (
	"database/sql"
	"embed"
	"errors"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/m-mizutani/goerr/v2"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

// Migrate applies all pending up migrations to db.
// Only the migration source is closed afterwards; db stays usable.
func Migrate(db *sql.DB) error {
	src, err := iofs.New(migrationFS, "migrations")
	if err != nil {
		return goerr.Wrap(err, "failed to load migrations")
	}
	defer src.Close()

	driver, err := sqlite3.WithInstance(db, &sqlite3.Config{})
	if err != nil {
		return goerr.Wrap(err, "failed to create migrate driver")
	}

	m, err := migrate.NewWithInstance("iofs", src, "sqlite3", driver)
	if err != nil {
		return goerr.Wrap(err, "failed to create migrator")
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return goerr.Wrap(err, "failed to apply migrations")
	}
	return nil
}

// SchemaVersion returns the applied migration version
func SchemaVersion(db *sql.DB) (uint, bool, error) {
	src, err := iofs.New(migrationFS, "migrations")
	if err != nil {
		return 0, false, goerr.Wrap(err, "failed to load migrations")
	}
	defer src.Close()

	driver, err := sqlite3.WithInstance(db, &sqlite3.Config{})
	if err != nil {
		return 0, false, goerr.Wrap(err, "failed to create migrate driver")
	}

	m, err := migrate.NewWithInstance("iofs", src, "sqlite3", driver)
	if err != nil {
		return 0, false, goerr.Wrap(err, "failed to create migrator")
	}

	version, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, goerr.Wrap(err, "failed to read schema version")
	}
	return version, dirty, nil
}
