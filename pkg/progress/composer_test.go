package progress

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loupe-hq/loupe/ent"
	"github.com/loupe-hq/loupe/ent/detectedchange"
	"github.com/loupe-hq/loupe/ent/trackedsuggestion"
)

func ts(day int) time.Time {
	return time.Date(2026, 8, day, 12, 0, 0, 0, time.UTC)
}

func tsp(day int) *time.Time {
	t := ts(day)
	return &t
}

func change(id string, status detectedchange.Status, detected time.Time, unlocked *time.Time) *ent.DetectedChange {
	return &ent.DetectedChange{
		ID:                    id,
		Element:               "element " + id,
		Status:                status,
		FirstDetectedAt:       detected,
		CorrelationUnlockedAt: unlocked,
	}
}

func suggestion(id, impact string, times int) *ent.TrackedSuggestion {
	return &ent.TrackedSuggestion{
		ID:             id,
		Title:          "title " + id,
		Element:        "element " + id,
		Impact:         trackedsuggestion.Impact(impact),
		TimesSuggested: times,
	}
}

func TestBuildSection_PartitionsAndCounts(t *testing.T) {
	changes := []*ent.DetectedChange{
		change("v1", detectedchange.StatusValidated, ts(1), tsp(10)),
		change("w1", detectedchange.StatusWatching, ts(2), nil),
		change("r1", detectedchange.StatusRegressed, ts(3), tsp(11)),
		change("x1", detectedchange.StatusReverted, ts(4), nil),
		change("i1", detectedchange.StatusInconclusive, ts(5), tsp(12)),
	}
	open := []*ent.TrackedSuggestion{suggestion("s1", "high", 1)}

	section := BuildSection(changes, open)

	assert.Equal(t, 1, section.Validated)
	assert.Equal(t, 1, section.Watching)
	assert.Equal(t, 1, section.Open)
	// Regressed, inconclusive, and reverted never appear in the lists.
	require.Len(t, section.ValidatedItems, 1)
	assert.Equal(t, "v1", section.ValidatedItems[0].ID)
	require.Len(t, section.WatchingItems, 1)
	assert.Equal(t, "w1", section.WatchingItems[0].ID)
}

func TestBuildSection_ValidatedOrderedByUnlockDesc(t *testing.T) {
	changes := []*ent.DetectedChange{
		change("old", detectedchange.StatusValidated, ts(1), tsp(5)),
		change("new", detectedchange.StatusValidated, ts(2), tsp(20)),
		change("mid", detectedchange.StatusValidated, ts(3), tsp(12)),
	}

	section := BuildSection(changes, nil)

	require.Len(t, section.ValidatedItems, 3)
	assert.Equal(t, "new", section.ValidatedItems[0].ID)
	assert.Equal(t, "mid", section.ValidatedItems[1].ID)
	assert.Equal(t, "old", section.ValidatedItems[2].ID)
}

func TestBuildSection_WatchingOrderedByDetectionDesc(t *testing.T) {
	changes := []*ent.DetectedChange{
		change("a", detectedchange.StatusWatching, ts(3), nil),
		change("b", detectedchange.StatusWatching, ts(9), nil),
		change("c", detectedchange.StatusWatching, ts(6), nil),
	}

	section := BuildSection(changes, nil)

	require.Len(t, section.WatchingItems, 3)
	assert.Equal(t, "b", section.WatchingItems[0].ID)
	assert.Equal(t, "c", section.WatchingItems[1].ID)
	assert.Equal(t, "a", section.WatchingItems[2].ID)
}

func TestBuildSection_OpenOrderedByImpactThenTimes(t *testing.T) {
	open := []*ent.TrackedSuggestion{
		suggestion("low3", "low", 3),
		suggestion("high1", "high", 1),
		suggestion("med5", "medium", 5),
		suggestion("high4", "high", 4),
	}

	section := BuildSection(nil, open)

	require.Len(t, section.OpenItems, 4)
	assert.Equal(t, "high4", section.OpenItems[0].ID)
	assert.Equal(t, "high1", section.OpenItems[1].ID)
	assert.Equal(t, "med5", section.OpenItems[2].ID)
	assert.Equal(t, "low3", section.OpenItems[3].ID)
}

func TestBuildSection_EmptyInputs(t *testing.T) {
	section := BuildSection(nil, nil)

	assert.Zero(t, section.Validated)
	assert.Zero(t, section.Watching)
	assert.Zero(t, section.Open)
	assert.NotNil(t, section.ValidatedItems)
	assert.NotNil(t, section.WatchingItems)
	assert.NotNil(t, section.OpenItems)
}
