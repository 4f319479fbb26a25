package app

import (
	"context"
	"fmt"

	"github.com/aussiebroadwan/onboard/internal/onboard/store"
	"github.com/aussiebroadwan/onboard/internal/onboard/store/drivers/postgres"
	"github.com/aussiebroadwan/onboard/internal/onboard/store/drivers/sqlite"
	"github.com/golang-migrate/migrate/v4"
)

// Database is a store that can also hand out its migrator.
type Database interface {
	store.Store
	Migrator() (*migrate.Migrate, error)
}

// OpenStore connects to the configured driver without migrating.
func OpenStore(ctx context.Context, cfg DatabaseConfig) (Database, error) {
	switch cfg.Driver {
	case DriverPostgres:
		st, err := postgres.NewStore(ctx, postgres.Config{URL: cfg.URL, MaxConns: cfg.MaxConns})
		if err != nil {
			return nil, fmt.Errorf("open postgres: %w", err)
		}
		return st, nil
	default:
		st, err := sqlite.NewStore(cfg.File)
		if err != nil {
			return nil, fmt.Errorf("open sqlite: %w", err)
		}
		return st, nil
	}
}

// OpenMigratedStore opens the store and applies pending migrations.
func OpenMigratedStore(ctx context.Context, cfg DatabaseConfig) (Database, error) {
	st, err := OpenStore(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if err := st.ApplyMigrations(); err != nil {
		_ = st.Close()
		return nil, fmt.Errorf("apply migrations: %w", err)
	}
	return st, nil
}
