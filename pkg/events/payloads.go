package events

import (
	"github.com/loupe-hq/loupe/ent/analysis"
	"github.com/loupe-hq/loupe/ent/detectedchange"
)

// AnalysisStatusPayload is the payload for analysis.status events.
// Published on every analysis lifecycle transition.
type AnalysisStatusPayload struct {
	Type        string               `json:"type"` // always EventTypeAnalysisStatus
	AnalysisID  string               `json:"analysis_id"`
	PageID      string               `json:"page_id"`
	Status      analysis.Status      `json:"status"`
	TriggerType analysis.TriggerType `json:"trigger_type"`
	Timestamp   string               `json:"timestamp"` // RFC3339Nano
}

// ChangeStatusPayload is the payload for change.status events.
// Published when a detected change is created or transitions status.
type ChangeStatusPayload struct {
	Type      string                `json:"type"` // always EventTypeChangeStatus
	ChangeID  string                `json:"change_id"`
	PageID    string                `json:"page_id"`
	Element   string                `json:"element"`
	Status    detectedchange.Status `json:"status"`
	Timestamp string                `json:"timestamp"` // RFC3339Nano
}

// ScanProgressPayload is the payload for scan.progress transient
// events, published per workflow step while an analysis runs.
type ScanProgressPayload struct {
	Type       string `json:"type"` // always EventTypeScanProgress
	AnalysisID string `json:"analysis_id"`
	PageID     string `json:"page_id"`
	Step       string `json:"step"`
	Timestamp  string `json:"timestamp"` // RFC3339Nano
}
