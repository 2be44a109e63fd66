package models

// SummaryErrorKey is the sentinel key set on a degraded changes_summary
// so the UI can show the primary audit while noting change detection
// was unavailable.
const SummaryErrorKey = "_error"

// SummaryErrorPostAnalysisFailed is the sentinel value written when the
// post-analysis step fails after the primary audit succeeded.
const SummaryErrorPostAnalysisFailed = "post_analysis_failed"

// ChangesSummary is the changes_summary payload persisted on a
// chronicle analysis. The progress section is owned exclusively by the
// canonical composer; LLM-reported progress is always overwritten.
type ChangesSummary struct {
	Verdict           string              `json:"verdict"`
	VerdictContext    string              `json:"verdictContext,omitempty"`
	Changes           []ChangeItem        `json:"changes"`
	Suggestions       []SuggestionItem    `json:"suggestions"`
	Correlation       *CorrelationSection `json:"correlation"`
	Progress          ProgressSection     `json:"progress"`
	RunningSummary    string              `json:"running_summary"`
	StrategyNarrative string              `json:"strategy_narrative,omitempty"`
	Observations      []Observation       `json:"observations,omitempty"`
	RevertedChangeIDs []string            `json:"revertedChangeIds,omitempty"`
	Error             string              `json:"_error,omitempty"`
}

// ChangeItem is one detected delta between two page states.
type ChangeItem struct {
	Element         string   `json:"element"`
	Scope           string   `json:"scope"` // element | section | page
	Before          string   `json:"before"`
	After           string   `json:"after"`
	Description     string   `json:"description,omitempty"`
	MatchedChangeID string   `json:"matched_change_id,omitempty"`
	MatchConfidence *float64 `json:"match_confidence,omitempty"`
	MatchRationale  string   `json:"match_rationale,omitempty"`
}

// SuggestionItem is one proposed open-action.
type SuggestionItem struct {
	Title        string `json:"title"`
	Element      string `json:"element"`
	SuggestedFix string `json:"suggestedFix"`
	Impact       string `json:"impact"` // high | medium | low
}

// CorrelationSection summarizes analytics evidence for the scan.
type CorrelationSection struct {
	HasEnoughData bool                `json:"hasEnoughData"`
	Metrics       []CorrelationMetric `json:"metrics"`
}

// CorrelationMetric is one metric delta shown in the correlation view.
type CorrelationMetric struct {
	Name         string  `json:"name"`
	FriendlyName string  `json:"friendlyName"`
	Change       float64 `json:"change"`
	Assessment   string  `json:"assessment"`
}

// ProgressSection is the composed {validated, watching, open} view over
// a page's current database state. Materialized, never recomputed on read.
type ProgressSection struct {
	Validated      int            `json:"validated"`
	Watching       int            `json:"watching"`
	Open           int            `json:"open"`
	ValidatedItems []ProgressItem `json:"validatedItems"`
	WatchingItems  []ProgressItem `json:"watchingItems"`
	OpenItems      []ProgressItem `json:"openItems"`
}

// ProgressItem is one entry in a progress list. Change-backed entries
// carry element/status; suggestion-backed entries carry title/impact.
type ProgressItem struct {
	ID             string `json:"id"`
	Element        string `json:"element,omitempty"`
	Title          string `json:"title,omitempty"`
	Status         string `json:"status,omitempty"`
	Impact         string `json:"impact,omitempty"`
	TimesSuggested int    `json:"timesSuggested,omitempty"`
}

// Observation is assessor commentary attached to a specific change.
type Observation struct {
	ChangeID string `json:"changeId"`
	Text     string `json:"text"`
}
