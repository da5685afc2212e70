// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package testutil provides a migrated Postgres pool for store integration tests.
//
// Tests using it are skipped unless CATALOG_TEST_DATABASE_URL points at a
// disposable database: every test truncates the catalog tables.
package testutil

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/ptd0409/portfolio/internal/platform/database/schema"
	"github.com/ptd0409/portfolio/internal/platform/migration"
	"github.com/ptd0409/portfolio/internal/platform/postgres"
)

// DatabaseURLEnv names the variable that enables integration tests.
const DatabaseURLEnv = "CATALOG_TEST_DATABASE_URL"

var (
	migrateOnce sync.Once
	migrateErr  error
)

// Logger discards output so test runs stay readable.
func Logger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// MigrationsPath returns the absolute path of the repository's migrations directory.
func MigrationsPath() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "..", "..", "migrations")
}

/*
NewPool returns a pool on a freshly migrated, empty catalog.

Description: Migrations run once per test binary. The catalog tables are
truncated before the test and the pool is closed on cleanup.
*/
func NewPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := os.Getenv(DatabaseURLEnv)
	if dsn == "" {
		t.Skipf("%s not set; skipping Postgres integration test", DatabaseURLEnv)
	}

	migrateOnce.Do(func() {
		migrateErr = migration.RunUp(dsn, MigrationsPath(), Logger())
	})
	require.NoError(t, migrateErr)

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, dsn, Logger())
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	Truncate(t, pool)
	return pool
}

// Truncate empties every catalog table and resets identities.
func Truncate(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	tables := []string{
		schema.CatalogItemTag.Table,
		schema.CatalogItemTranslation.Table,
		schema.CatalogTagTranslation.Table,
		schema.CatalogItem.Table,
		schema.CatalogTag.Table,
	}

	query := fmt.Sprintf("TRUNCATE %s RESTART IDENTITY CASCADE", strings.Join(tables, ", "))
	_, err := pool.Exec(context.Background(), query)
	require.NoError(t, err)
}
