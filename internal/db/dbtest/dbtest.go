// Package dbtest provides a migrated and seeded in-memory store for tests.
package dbtest

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"mindfullearner/internal/db"
)

// Open returns a fresh in-memory SQLite store with the schema applied and the
// reference catalogs seeded. It is closed when the test ends.
func Open(t testing.TB) *sqlx.DB {
	t.Helper()
	ctx := context.Background()

	conn, err := db.Open(ctx, db.DriverSQLite, ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	require.NoError(t, db.RunMigrations(ctx, conn))
	require.NoError(t, db.NewSeeder(conn, zap.NewNop()).Seed(ctx))
	return conn
}
