package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loupe-hq/loupe/ent"
	"github.com/loupe-hq/loupe/pkg/models"
)

func TestNextAt(t *testing.T) {
	t.Run("later today", func(t *testing.T) {
		now := time.Date(2026, 3, 10, 7, 0, 0, 0, time.UTC)
		next := nextAt(now, 9, 0)
		assert.Equal(t, time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC), next)
	})

	t.Run("already passed rolls to tomorrow", func(t *testing.T) {
		now := time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)
		next := nextAt(now, 9, 0)
		assert.Equal(t, time.Date(2026, 3, 11, 9, 0, 0, 0, time.UTC), next)
	})

	t.Run("exactly at the mark rolls forward", func(t *testing.T) {
		now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
		next := nextAt(now, 9, 0)
		assert.Equal(t, time.Date(2026, 3, 11, 9, 0, 0, 0, time.UTC), next)
	})
}

func TestNextWeekdayAt(t *testing.T) {
	// 2026-03-10 is a Tuesday.
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	next := nextWeekdayAt(now, time.Monday, 9, 0)
	assert.Equal(t, time.Date(2026, 3, 16, 9, 0, 0, 0, time.UTC), next)
	assert.Equal(t, time.Monday, next.Weekday())

	// Monday morning before the mark fires the same day.
	monday := time.Date(2026, 3, 16, 7, 0, 0, 0, time.UTC)
	next = nextWeekdayAt(monday, time.Monday, 9, 0)
	assert.Equal(t, time.Date(2026, 3, 16, 9, 0, 0, 0, time.UTC), next)
}

func summaryMap(t *testing.T, s models.ChangesSummary) map[string]interface{} {
	t.Helper()
	m, err := models.ToMap(s)
	require.NoError(t, err)
	return m
}

func TestBuildDigestsSkipsQuietPages(t *testing.T) {
	completed := []*ent.Analysis{
		{
			ID: "a1", UserID: "u1", PageID: "p1", URL: "https://example.com/pricing",
			ChangesSummary: summaryMap(t, models.ChangesSummary{
				Verdict: "improving",
				Changes: []models.ChangeItem{{Element: "hero headline"}},
				Progress: models.ProgressSection{
					Validated: 2, Watching: 1, Open: 3,
				},
			}),
		},
		{
			// Nothing observed: stays out of the digest entirely.
			ID: "a2", UserID: "u1", PageID: "p2", URL: "https://example.com/about",
			ChangesSummary: summaryMap(t, models.ChangesSummary{Verdict: "stable"}),
		},
		{
			ID: "a3", UserID: "u2", PageID: "p3", URL: "https://other.io",
			ChangesSummary: summaryMap(t, models.ChangesSummary{
				RevertedChangeIDs: []string{"c9"},
			}),
		},
	}

	digests := buildDigests(completed)

	require.Len(t, digests, 2)
	require.Len(t, digests["u1"], 1)
	assert.Equal(t, "https://example.com/pricing", digests["u1"][0].URL)
	assert.Equal(t, "improving", digests["u1"][0].Verdict)
	assert.Equal(t, 2, digests["u1"][0].Validated)
	require.Len(t, digests["u2"], 1)
}

func TestBuildDigestsKeepsNewestPerPage(t *testing.T) {
	older := summaryMap(t, models.ChangesSummary{
		Verdict: "declining",
		Changes: []models.ChangeItem{{Element: "cta"}},
	})
	newer := summaryMap(t, models.ChangesSummary{
		Verdict: "improving",
		Changes: []models.ChangeItem{{Element: "cta"}},
	})

	completed := []*ent.Analysis{
		{ID: "a1", UserID: "u1", PageID: "p1", URL: "https://example.com", ChangesSummary: older},
		{ID: "a2", UserID: "u1", PageID: "p1", URL: "https://example.com", ChangesSummary: newer},
	}

	digests := buildDigests(completed)
	require.Len(t, digests["u1"], 1)
	assert.Equal(t, "improving", digests["u1"][0].Verdict)
}

func TestBuildDigestsIgnoresMissingSummaries(t *testing.T) {
	completed := []*ent.Analysis{
		{ID: "a1", UserID: "u1", PageID: "p1", URL: "https://example.com"},
	}
	assert.Empty(t, buildDigests(completed))
}
