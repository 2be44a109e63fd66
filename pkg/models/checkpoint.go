package models

import "time"

// Assessment values produced by the checkpoint assessor and the
// deterministic fallback.
const (
	AssessmentImproved     = "improved"
	AssessmentRegressed    = "regressed"
	AssessmentNeutral      = "neutral"
	AssessmentInconclusive = "inconclusive"
)

// MetricsReasonDisconnected tags a metrics envelope when neither the
// analytics provider nor the owned database yielded data. The
// checkpoint is still valid, just inconclusive.
const MetricsReasonDisconnected = "analytics_disconnected"

// MetricDelta is one before/after metric comparison from a provider.
type MetricDelta struct {
	Name          string  `json:"name"`
	FriendlyName  string  `json:"friendly_name,omitempty"`
	Before        float64 `json:"before"`
	After         float64 `json:"after"`
	ChangePercent float64 `json:"change_percent"`
}

// MetricsEnvelope is the combined metrics payload persisted on a
// checkpoint row.
type MetricsEnvelope struct {
	Metrics []MetricDelta `json:"metrics"`
	Sources []string      `json:"sources,omitempty"`
	Reason  string        `json:"reason,omitempty"`
}

// Empty reports whether no source yielded any metric.
func (e MetricsEnvelope) Empty() bool {
	return len(e.Metrics) == 0
}

// CheckpointAssessment is the assessor verdict for one horizon.
type CheckpointAssessment struct {
	Assessment string   `json:"assessment"`
	Confidence *float64 `json:"confidence,omitempty"`
	Reasoning  string   `json:"reasoning"`
}

// Window is a half-open or half-closed time interval used for metric
// queries. Boundary semantics are documented where windows are built.
type Window struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// CreateCheckpointRequest contains fields for inserting a checkpoint row.
type CreateCheckpointRequest struct {
	ChangeID     string
	HorizonDays  int
	BeforeWindow Window
	AfterWindow  Window
	Metrics      MetricsEnvelope
	Assessment   string
	Confidence   *float64
	Reasoning    string
	DataSources  []string
	Provider     string
}
