package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateAuxiliaryObjects creates the database objects Ent's schema
// cannot express. Idempotent; also called by the test harness after
// auto-migration so tests see the same database shape as production.
func CreateAuxiliaryObjects(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	// Dashboard event log. Written by the NOTIFY publisher so clients
	// can fetch full payloads after a truncated delivery; not an Ent
	// entity because nothing queries it through the ORM.
	_, err := db.ExecContext(ctx,
		`CREATE TABLE IF NOT EXISTS events (
			id BIGSERIAL PRIMARY KEY,
			page_id TEXT NOT NULL,
			channel TEXT NOT NULL,
			payload JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`)
	if err != nil {
		return fmt.Errorf("failed to create events table: %w", err)
	}

	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_events_page_id_id
		ON events (page_id, id)`)
	if err != nil {
		return fmt.Errorf("failed to create events catchup index: %w", err)
	}

	// One active analytics connection per user. The checkpoint engine's
	// provider resolution assumes this.
	_, err = db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS analyticsconnection_user_id_active
		ON analytics_connections (user_id)
		WHERE status = 'active'`)
	if err != nil {
		return fmt.Errorf("failed to create active connection index: %w", err)
	}

	// GIN index for full-text search over audit summaries.
	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_analyses_freeform_output_gin
		ON analyses USING gin(to_tsvector('english', COALESCE(freeform_output, '')))`)
	if err != nil {
		return fmt.Errorf("failed to create freeform_output GIN index: %w", err)
	}

	return nil
}
