package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"
)

// Publisher broadcasts events for live dashboard delivery. Persistent
// events are stored in the events table then broadcast via NOTIFY in
// the same transaction; transient events are NOTIFY only.
//
// A nil *Publisher is valid and drops all events, so call sites never
// need a guard when live delivery is not configured.
type Publisher struct {
	db *sql.DB
}

// NewPublisher creates a Publisher. The db parameter should be the
// *sql.DB from database.Client.DB().
func NewPublisher(db *sql.DB) *Publisher {
	return &Publisher{db: db}
}

// PublishAnalysisStatus persists an analysis status event to the page
// channel and broadcasts a transient copy to the global pages channel.
// Both publishes are best-effort; returns the first error encountered.
func (p *Publisher) PublishAnalysisStatus(ctx context.Context, payload AnalysisStatusPayload) error {
	if p == nil {
		return nil
	}
	payload.Type = EventTypeAnalysisStatus
	if payload.Timestamp == "" {
		payload.Timestamp = time.Now().UTC().Format(time.RFC3339Nano)
	}
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal AnalysisStatusPayload: %w", err)
	}

	var firstErr error
	if err := p.persistAndNotify(ctx, payload.PageID, PageChannel(payload.PageID), payloadJSON); err != nil {
		slog.Warn("Failed to publish analysis status to page channel",
			"analysis_id", payload.AnalysisID, "status", payload.Status, "error", err)
		firstErr = err
	}
	if err := p.notifyOnly(ctx, GlobalPagesChannel, payloadJSON); err != nil {
		slog.Warn("Failed to publish analysis status to global channel",
			"analysis_id", payload.AnalysisID, "status", payload.Status, "error", err)
		if firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// PublishChangeStatus persists and broadcasts a change.status event on
// the page channel.
func (p *Publisher) PublishChangeStatus(ctx context.Context, payload ChangeStatusPayload) error {
	if p == nil {
		return nil
	}
	payload.Type = EventTypeChangeStatus
	if payload.Timestamp == "" {
		payload.Timestamp = time.Now().UTC().Format(time.RFC3339Nano)
	}
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal ChangeStatusPayload: %w", err)
	}
	return p.persistAndNotify(ctx, payload.PageID, PageChannel(payload.PageID), payloadJSON)
}

// PublishScanProgress broadcasts a scan.progress transient event (no
// DB persistence). Per-step noise, lost on disconnect.
func (p *Publisher) PublishScanProgress(ctx context.Context, payload ScanProgressPayload) error {
	if p == nil {
		return nil
	}
	payload.Type = EventTypeScanProgress
	if payload.Timestamp == "" {
		payload.Timestamp = time.Now().UTC().Format(time.RFC3339Nano)
	}
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal ScanProgressPayload: %w", err)
	}
	return p.notifyOnly(ctx, PageChannel(payload.PageID), payloadJSON)
}

// persistAndNotify persists a pre-marshaled event to the database and
// broadcasts via NOTIFY in a single transaction (pg_notify is
// transactional, held until COMMIT).
func (p *Publisher) persistAndNotify(ctx context.Context, pageID, channel string, payloadJSON []byte) error {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var eventID int64
	err = tx.QueryRowContext(ctx,
		`INSERT INTO events (page_id, channel, payload, created_at) VALUES ($1, $2, $3, $4) RETURNING id`,
		pageID, channel, payloadJSON, time.Now(),
	).Scan(&eventID)
	if err != nil {
		return fmt.Errorf("failed to persist event: %w", err)
	}

	notifyPayload, err := injectDBEventIDAndTruncate(payloadJSON, eventID)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload)
	if err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit event transaction: %w", err)
	}
	return nil
}

// notifyOnly broadcasts a pre-marshaled event via NOTIFY without
// persisting to DB.
func (p *Publisher) notifyOnly(ctx context.Context, channel string, payloadJSON []byte) error {
	notifyPayload, err := truncateIfNeeded(string(payloadJSON))
	if err != nil {
		return err
	}
	_, err = p.db.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload)
	if err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}
	return nil
}

// injectDBEventIDAndTruncate adds db_event_id to the NOTIFY payload so
// clients can fetch the full row after a truncated delivery.
func injectDBEventIDAndTruncate(payloadJSON []byte, dbEventID int64) (string, error) {
	var m map[string]any
	if err := json.Unmarshal(payloadJSON, &m); err != nil {
		return "", fmt.Errorf("failed to unmarshal payload for db_event_id injection: %w", err)
	}
	m["db_event_id"] = dbEventID

	enrichedBytes, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("failed to marshal enriched NOTIFY payload: %w", err)
	}
	return truncateIfNeeded(string(enrichedBytes))
}

// truncateIfNeeded returns the payload as-is when it fits within
// PostgreSQL's 8000-byte NOTIFY limit, otherwise a minimal envelope
// with only routing fields.
func truncateIfNeeded(payloadStr string) (string, error) {
	if len(payloadStr) <= 7900 {
		return payloadStr, nil
	}
	return buildTruncatedPayload([]byte(payloadStr))
}

// buildTruncatedPayload extracts the routing fields the client needs to
// fetch the complete event from the database.
func buildTruncatedPayload(payloadBytes []byte) (string, error) {
	var routing struct {
		Type      string `json:"type"`
		PageID    string `json:"page_id"`
		DBEventID *int64 `json:"db_event_id,omitempty"`
	}
	if err := json.Unmarshal(payloadBytes, &routing); err != nil {
		return "", fmt.Errorf("failed to extract routing fields for truncation: %w", err)
	}

	truncated := map[string]any{
		"type":      routing.Type,
		"page_id":   routing.PageID,
		"truncated": true,
	}
	if routing.DBEventID != nil {
		truncated["db_event_id"] = *routing.DBEventID
	}

	truncBytes, err := json.Marshal(truncated)
	if err != nil {
		return "", fmt.Errorf("failed to marshal truncated payload: %w", err)
	}
	return string(truncBytes), nil
}
