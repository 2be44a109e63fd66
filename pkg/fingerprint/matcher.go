// Package fingerprint validates LLM-proposed identity claims about
// detected changes. Every id coming back from an LLM is untrusted:
// it must be a member of the exact candidate set that was sent out,
// and the claim must be internally consistent, before any existing row
// is touched. Unvalidated proposals degrade to fresh inserts.
package fingerprint

import (
	"strings"

	"github.com/loupe-hq/loupe/pkg/models"
)

// Candidate is the slice of an existing watching change exposed to the
// LLM for matching.
type Candidate struct {
	ID      string
	UserID  string
	Element string
	Scope   string
	Status  string
}

// MatchResult describes the outcome of validating one LLM change item
// against the candidate set.
type MatchResult struct {
	// Matched is non-nil when the proposal validated against an
	// existing candidate; the item should update that row.
	Matched *Candidate
	// Reason explains a rejection (for logs). Empty on success or when
	// no match was proposed.
	Reason string
}

// Matcher validates matched_change_id and revert proposals.
type Matcher struct {
	// MinConfidence is the acceptance threshold for match_confidence.
	// Proposals below it degrade to fresh inserts. Zero disables the
	// confidence check.
	MinConfidence float64
}

// Validate checks one change item's matched_change_id proposal against
// the candidate set. A nil Matched result means the caller inserts a
// new row.
func (m Matcher) Validate(item models.ChangeItem, candidates []Candidate) MatchResult {
	if item.MatchedChangeID == "" {
		return MatchResult{}
	}

	cand := findCandidate(candidates, item.MatchedChangeID)
	if cand == nil {
		return MatchResult{Reason: "proposed id not in candidate set"}
	}
	if !strings.EqualFold(cand.Scope, item.Scope) {
		return MatchResult{Reason: "scope mismatch between proposal and candidate"}
	}
	if m.MinConfidence > 0 && item.MatchConfidence != nil && *item.MatchConfidence < m.MinConfidence {
		return MatchResult{Reason: "match confidence below threshold"}
	}
	return MatchResult{Matched: cand}
}

// ValidReverts filters LLM-returned revert ids down to those that are
// in the candidate set, still watching, and owned by the requesting
// user. Anything else is silently dropped.
func ValidReverts(proposed []string, candidates []Candidate, userID string) []string {
	var valid []string
	for _, id := range proposed {
		cand := findCandidate(candidates, id)
		if cand == nil {
			continue
		}
		if cand.Status != "watching" {
			continue
		}
		if cand.UserID != userID {
			continue
		}
		valid = append(valid, id)
	}
	return valid
}

// ValidObservations filters assessor observations down to those whose
// changeId belongs to the given set.
func ValidObservations(obs []models.Observation, allowed map[string]bool) []models.Observation {
	var valid []models.Observation
	for _, o := range obs {
		if o.ChangeID == "" || o.Text == "" {
			continue
		}
		if !allowed[o.ChangeID] {
			continue
		}
		valid = append(valid, o)
	}
	return valid
}

func findCandidate(candidates []Candidate, id string) *Candidate {
	for i := range candidates {
		if candidates[i].ID == id {
			return &candidates[i]
		}
	}
	return nil
}

// SuggestionKey returns the normalized (element, title) dedup key used
// for within-scan suggestion deduplication and the persistent upsert.
func SuggestionKey(element, title string) string {
	norm := func(s string) string {
		return strings.Join(strings.Fields(strings.ToLower(s)), " ")
	}
	return norm(element) + "|" + norm(title)
}
