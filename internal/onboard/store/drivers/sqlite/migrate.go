package sqlite

import (
	"errors"

	"github.com/aussiebroadwan/onboard/internal/onboard/store/drivers/sqlite/migrations"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

// ApplyMigrations applies any pending migrations from the embedded files.
func (s *Store) ApplyMigrations() error {
	m, err := s.Migrator()
	if err != nil {
		return err
	}

	err = m.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

// Migrator exposes the migrate instance for the migrate command. The returned
// instance shares the store's connection: closing it closes the store.
func (s *Store) Migrator() (*migrate.Migrate, error) {
	// 1. Create the SQLite migration driver
	driver, err := sqlite.WithInstance(s.db, &sqlite.Config{})
	if err != nil {
		return nil, err
	}

	// 2. Create the iofs (embedded filesystem) source driver
	src, err := iofs.New(migrations.Migrations, ".")
	if err != nil {
		return nil, err
	}

	// 3. Create the migrate instance
	return migrate.NewWithInstance("iofs", src, "sqlite", driver)
}
