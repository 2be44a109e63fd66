package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

// maxCatchupEvents bounds a single catchup read. Clients page by
// passing the last id back as since_id.
const maxCatchupEvents = 200

// StoredEvent is one persisted event row, returned to clients catching
// up after a truncated NOTIFY delivery or a reconnect.
type StoredEvent struct {
	ID        int64           `json:"id"`
	PageID    string          `json:"page_id"`
	Channel   string          `json:"channel"`
	Payload   json.RawMessage `json:"payload"`
	CreatedAt time.Time       `json:"created_at"`
}

// Reader serves catchup queries against the events table. Like the
// Publisher it works on the raw *sql.DB; the events table is not an
// ORM entity.
type Reader struct {
	db *sql.DB
}

// NewReader creates a Reader on the same *sql.DB the Publisher writes
// through.
func NewReader(db *sql.DB) *Reader {
	return &Reader{db: db}
}

// Since returns up to maxCatchupEvents events for a page with id
// greater than sinceID, oldest first.
func (r *Reader) Since(ctx context.Context, pageID string, sinceID int64) ([]StoredEvent, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, page_id, channel, payload, created_at
		 FROM events
		 WHERE page_id = $1 AND id > $2
		 ORDER BY id ASC
		 LIMIT $3`,
		pageID, sinceID, maxCatchupEvents,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query events: %w", err)
	}
	defer rows.Close()

	var out []StoredEvent
	for rows.Next() {
		var ev StoredEvent
		if err := rows.Scan(&ev.ID, &ev.PageID, &ev.Channel, &ev.Payload, &ev.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan event row: %w", err)
		}
		out = append(out, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate event rows: %w", err)
	}
	return out, nil
}
