// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package pgtest provisions a scratch PostgreSQL database for integration tests.
//
// Tests that call [Open] are skipped unless TEST_DATABASE_URL points at a
// disposable database: every call rolls the schema all the way down and back up.
package pgtest

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/skumaster/internal/platform/migration"
	"github.com/taibuivan/skumaster/internal/platform/postgres"
)

// EnvDatabaseURL names the variable holding the scratch database DSN.
const EnvDatabaseURL = "TEST_DATABASE_URL"

// Open returns a pool connected to a freshly migrated scratch database.
func Open(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := os.Getenv(EnvDatabaseURL)
	if dsn == "" {
		t.Skipf("set %s to run postgres integration tests", EnvDatabaseURL)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	migrations := migrationsDir()

	require.NoError(t, migration.RunDown(dsn, migrations, logger))
	require.NoError(t, migration.RunUp(dsn, migrations, logger))

	pool, err := postgres.NewPool(context.Background(), dsn, logger)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	return pool
}

// migrationsDir locates data/migrations relative to this source file.
func migrationsDir() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "..", "..", "..", "..", "data", "migrations")
}
