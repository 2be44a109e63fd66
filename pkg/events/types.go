// Package events broadcasts row-change notifications over PostgreSQL
// NOTIFY so dashboard pods can push live updates without polling.
//
// Persistent events are stored in the events table then broadcast via
// NOTIFY in the same transaction; transient events are NOTIFY only.
package events

// Persistent event types (stored in DB + NOTIFY).
const (
	// Analysis lifecycle: pending, processing, complete, failed.
	EventTypeAnalysisStatus = "analysis.status"

	// Change lifecycle: watching, validated, regressed, inconclusive,
	// reverted.
	EventTypeChangeStatus = "change.status"
)

// Transient event types (NOTIFY only, no DB persistence).
const (
	// Scan progress updates while an analysis is processing.
	EventTypeScanProgress = "scan.progress"
)

// GlobalPagesChannel carries page-level status events. The dashboard
// page list subscribes to this for live updates across all pages.
const GlobalPagesChannel = "pages"

// PageChannel returns the channel name for one page's events.
// Format: "page:{page_id}"
func PageChannel(pageID string) string {
	return "page:" + pageID
}
