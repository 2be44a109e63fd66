package fingerprint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loupe-hq/loupe/pkg/models"
)

func conf(v float64) *float64 { return &v }

func testCandidates() []Candidate {
	return []Candidate{
		{ID: "ch-1", UserID: "user-1", Element: "headline", Scope: "element", Status: "watching"},
		{ID: "ch-2", UserID: "user-1", Element: "pricing section", Scope: "section", Status: "watching"},
		{ID: "ch-3", UserID: "user-2", Element: "cta", Scope: "element", Status: "watching"},
		{ID: "ch-4", UserID: "user-1", Element: "footer", Scope: "element", Status: "validated"},
	}
}

func TestValidateAcceptsCandidateMatch(t *testing.T) {
	m := Matcher{MinConfidence: 0.7}
	item := models.ChangeItem{
		Element:         "headline",
		Scope:           "element",
		MatchedChangeID: "ch-1",
		MatchConfidence: conf(0.9),
	}

	result := m.Validate(item, testCandidates())
	require.NotNil(t, result.Matched)
	assert.Equal(t, "ch-1", result.Matched.ID)
	assert.Empty(t, result.Reason)
}

func TestValidateRejections(t *testing.T) {
	m := Matcher{MinConfidence: 0.7}

	tests := []struct {
		name   string
		item   models.ChangeItem
		reason string
	}{
		{
			name:   "id outside candidate set",
			item:   models.ChangeItem{Scope: "element", MatchedChangeID: "ch-999", MatchConfidence: conf(0.95)},
			reason: "proposed id not in candidate set",
		},
		{
			name:   "scope mismatch",
			item:   models.ChangeItem{Scope: "element", MatchedChangeID: "ch-2", MatchConfidence: conf(0.95)},
			reason: "scope mismatch between proposal and candidate",
		},
		{
			name:   "confidence below threshold",
			item:   models.ChangeItem{Scope: "element", MatchedChangeID: "ch-1", MatchConfidence: conf(0.5)},
			reason: "match confidence below threshold",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := m.Validate(tt.item, testCandidates())
			assert.Nil(t, result.Matched)
			assert.Equal(t, tt.reason, result.Reason)
		})
	}
}

func TestValidateNoProposalIsFreshInsert(t *testing.T) {
	result := Matcher{}.Validate(models.ChangeItem{Element: "headline"}, testCandidates())
	assert.Nil(t, result.Matched)
	assert.Empty(t, result.Reason)
}

func TestValidateScopeComparisonIsCaseInsensitive(t *testing.T) {
	item := models.ChangeItem{Scope: "Element", MatchedChangeID: "ch-1"}
	result := Matcher{}.Validate(item, testCandidates())
	assert.NotNil(t, result.Matched)
}

func TestValidateZeroThresholdSkipsConfidenceCheck(t *testing.T) {
	item := models.ChangeItem{Scope: "element", MatchedChangeID: "ch-1", MatchConfidence: conf(0.1)}
	result := Matcher{}.Validate(item, testCandidates())
	assert.NotNil(t, result.Matched)
}

func TestValidReverts(t *testing.T) {
	proposed := []string{
		"ch-1",   // valid
		"ch-3",   // other user's change
		"ch-4",   // no longer watching
		"ch-999", // not in candidate set
	}
	valid := ValidReverts(proposed, testCandidates(), "user-1")
	assert.Equal(t, []string{"ch-1"}, valid)
}

func TestValidRevertsEmptyInputs(t *testing.T) {
	assert.Nil(t, ValidReverts(nil, testCandidates(), "user-1"))
	assert.Nil(t, ValidReverts([]string{"ch-1"}, nil, "user-1"))
}

func TestValidObservations(t *testing.T) {
	allowed := map[string]bool{"ch-1": true, "ch-2": true}
	obs := []models.Observation{
		{ChangeID: "ch-1", Text: "steady improvement in conversions"},
		{ChangeID: "ch-7", Text: "invented change id"},
		{ChangeID: "ch-2", Text: ""},
		{ChangeID: "", Text: "no id at all"},
	}

	valid := ValidObservations(obs, allowed)
	require.Len(t, valid, 1)
	assert.Equal(t, "ch-1", valid[0].ChangeID)
}

func TestSuggestionKey(t *testing.T) {
	assert.Equal(t, SuggestionKey("Hero  Headline", "Shorten The Copy"),
		SuggestionKey("hero headline", "shorten the copy"))
	assert.NotEqual(t, SuggestionKey("hero", "shorten"), SuggestionKey("hero", "lengthen"))
	assert.Equal(t, "hero headline|shorten the copy", SuggestionKey(" Hero\tHeadline ", "Shorten the Copy"))
}
