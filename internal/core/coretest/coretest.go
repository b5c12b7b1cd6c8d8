// AngelaMos | 2026
// coretest.go

// Package coretest opens throwaway databases for package tests.
package coretest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/carterperez-dev/travel-marketplace/internal/config"
	"github.com/carterperez-dev/travel-marketplace/internal/core"
)

const memoryDSN = "file::memory:?_pragma=foreign_keys(1)"

// NewDatabase returns a migrated in-memory SQLite database that is closed
// when the test ends.
func NewDatabase(t testing.TB) *core.Database {
	t.Helper()

	ctx := context.Background()
	db, err := core.NewDatabase(ctx, config.DatabaseConfig{URL: memoryDSN})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, db.Migrate(ctx))
	return db
}
