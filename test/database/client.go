package database

import (
	"context"
	"testing"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/stretchr/testify/require"

	"github.com/loupe-hq/loupe/pkg/database"
	"github.com/loupe-hq/loupe/test/util"
)

// NewTestClient creates a test database client.
// In CI (when CI_DATABASE_URL is set): connects to external PostgreSQL service container.
// In local dev: spins up a testcontainer with PostgreSQL.
// The container/connection is automatically cleaned up when the test ends.
func NewTestClient(t *testing.T) *database.Client {
	ctx := context.Background()

	entClient, db := util.SetupTestDatabase(t)

	// Apply the auxiliary objects (events table, partial unique index,
	// GIN index) that live outside the ent schema, so tests see the
	// same database shape production migrations produce.
	drv := entsql.OpenDB(dialect.Postgres, db)
	err := database.CreateAuxiliaryObjects(ctx, drv)
	require.NoError(t, err)

	// Cleanup (schema drop and connection close) is handled by SetupTestDatabase.
	return database.NewClientFromEnt(entClient, db)
}
