// Package models defines request structs and wire payloads shared by
// the services, queue executors, and the HTTP API.
package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// CreateAnalysisRequest contains fields for creating a new analysis row.
// The row is created pending; the queue workers claim and process it.
type CreateAnalysisRequest struct {
	AnalysisID       string `json:"analysis_id"`
	PageID           string `json:"page_id"`
	UserID           string `json:"user_id"`
	URL              string `json:"url"`
	TriggerType      string `json:"trigger_type"`
	ParentAnalysisID string `json:"parent_analysis_id,omitempty"`
	DeployID         string `json:"deploy_id,omitempty"`
}

// AnalysisFilters contains filtering options for listing analyses.
type AnalysisFilters struct {
	PageID        string     `json:"page_id,omitempty"`
	UserID        string     `json:"user_id,omitempty"`
	Status        string     `json:"status,omitempty"`
	TriggerType   string     `json:"trigger_type,omitempty"`
	CreatedAfter  *time.Time `json:"created_after,omitempty"`
	CreatedBefore *time.Time `json:"created_before,omitempty"`
	Limit         int        `json:"limit,omitempty"`
	Offset        int        `json:"offset,omitempty"`
}

// StructuredAudit is the structured payload returned by the vision
// page audit.
type StructuredAudit struct {
	FindingsCount        int              `json:"findingsCount"`
	Verdict              string           `json:"verdict"`
	VerdictContext       string           `json:"verdictContext"`
	ProjectedImpactRange string           `json:"projectedImpactRange"`
	Summary              string           `json:"summary"`
	Findings             []Finding        `json:"findings"`
	HeadlineRewrite      *HeadlineRewrite `json:"headlineRewrite,omitempty"`
}

// Finding is one audit finding with its predicted impact.
type Finding struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	ElementType  string     `json:"elementType"`
	Impact       string     `json:"impact"` // high | medium | low
	CurrentValue string     `json:"currentValue"`
	Suggestion   string     `json:"suggestion"`
	Prediction   Prediction `json:"prediction"`
	Assumption   string     `json:"assumption"`
	Methodology  string     `json:"methodology"`
}

// Prediction is the projected impact of addressing a finding.
type Prediction struct {
	Range        string `json:"range"` // "N-M%"
	FriendlyText string `json:"friendlyText"`
}

// HeadlineRewrite is the optional headline suggestion from the audit.
type HeadlineRewrite struct {
	Current             string `json:"current"`
	Suggested           string `json:"suggested"`
	Reasoning           string `json:"reasoning"`
	CurrentAnnotation   string `json:"currentAnnotation,omitempty"`
	SuggestedAnnotation string `json:"suggestedAnnotation,omitempty"`
}

// ToMap converts any wire payload struct to the map representation the
// ent JSON columns store. Round-trips through encoding/json so field
// names match the wire format exactly.
func ToMap(v any) (map[string]interface{}, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}
	var m map[string]interface{}
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("failed to unmarshal payload into map: %w", err)
	}
	return m, nil
}

// FromMap decodes an ent JSON column back into a typed payload.
func FromMap(m map[string]interface{}, out any) error {
	raw, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to marshal map: %w", err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to unmarshal into %T: %w", out, err)
	}
	return nil
}
