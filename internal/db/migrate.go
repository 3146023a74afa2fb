package db

import (
	"context"
	"embed"
	"fmt"
	"io/fs"

	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/sqlite/*.sql migrations/postgres/*.sql
var embedMigrations embed.FS

// RunMigrations applies all pending migrations for the connection's dialect.
func RunMigrations(ctx context.Context, conn *sqlx.DB) error {
	dialect, dir := goose.DialectSQLite3, "migrations/sqlite"
	if conn.DriverName() == DriverPostgres {
		dialect, dir = goose.DialectPostgres, "migrations/postgres"
	}

	fsys, err := fs.Sub(embedMigrations, dir)
	if err != nil {
		return fmt.Errorf("migration error locating %s: %w", dir, err)
	}

	provider, err := goose.NewProvider(dialect, conn.DB, fsys)
	if err != nil {
		return fmt.Errorf("migration error creating provider: %w", err)
	}

	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
