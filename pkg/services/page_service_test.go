package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loupe-hq/loupe/ent/analysis"
	"github.com/loupe-hq/loupe/ent/page"
)

func TestCreatePage(t *testing.T) {
	client := setupClient(t)
	svc := NewPageService(client.Client)
	ctx := context.Background()

	u := seedUser(t, client, "user-1")

	t.Run("creates with manual default frequency", func(t *testing.T) {
		p, err := svc.CreatePage(ctx, CreatePageInput{
			UserID: u.ID,
			URL:    "https://example.com/pricing",
		})
		require.NoError(t, err)
		assert.Equal(t, page.ScanFrequencyManual, p.ScanFrequency)
	})

	t.Run("same url twice for one user collides", func(t *testing.T) {
		_, err := svc.CreatePage(ctx, CreatePageInput{
			UserID: u.ID,
			URL:    "https://example.com/pricing",
		})
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("another user may watch the same url", func(t *testing.T) {
		other := seedUser(t, client, "user-2")
		_, err := svc.CreatePage(ctx, CreatePageInput{
			UserID: other.ID,
			URL:    "https://example.com/pricing",
		})
		require.NoError(t, err)
	})

	t.Run("rejects unknown frequency", func(t *testing.T) {
		_, err := svc.CreatePage(ctx, CreatePageInput{
			UserID:        u.ID,
			URL:           "https://example.com/other",
			ScanFrequency: "hourly",
		})
		assert.True(t, IsValidationError(err))
	})
}

func TestSetStableBaseline(t *testing.T) {
	client := setupClient(t)
	svc := NewPageService(client.Client)
	analyses := NewAnalysisService(client.Client)
	ctx := context.Background()

	u := seedUser(t, client, "user-1")
	p := seedPage(t, client, u.ID, "https://example.com/pricing")
	ref := pageRef{p.ID, u.ID, p.URL}

	pending, err := analyses.CreateAnalysis(ctx, createAnalysisRequest(ref, "manual"))
	require.NoError(t, err)

	t.Run("rejects a non-complete analysis", func(t *testing.T) {
		err := svc.SetStableBaseline(ctx, p.ID, pending.ID)
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects another page's analysis", func(t *testing.T) {
		other := seedPage(t, client, u.ID, "https://example.com/features")
		foreign, err := analyses.CreateAnalysis(ctx, createAnalysisRequest(pageRef{other.ID, u.ID, other.URL}, "manual"))
		require.NoError(t, err)
		require.NoError(t, analyses.CompleteAnalysis(ctx, foreign.ID, CompleteInput{}))

		err = svc.SetStableBaseline(ctx, p.ID, foreign.ID)
		assert.True(t, IsValidationError(err))
	})

	t.Run("accepts a complete analysis of this page", func(t *testing.T) {
		require.NoError(t, analyses.CompleteAnalysis(ctx, pending.ID, CompleteInput{}))
		require.NoError(t, svc.SetStableBaseline(ctx, p.ID, pending.ID))

		got, err := svc.GetPage(ctx, p.ID)
		require.NoError(t, err)
		require.NotNil(t, got.StableBaselineID)
		assert.Equal(t, pending.ID, *got.StableBaselineID)
	})
}

func TestBaselineFresh(t *testing.T) {
	client := setupClient(t)
	svc := NewPageService(client.Client)
	analyses := NewAnalysisService(client.Client)
	ctx := context.Background()
	now := time.Now()

	u := seedUser(t, client, "user-1")
	p := seedPage(t, client, u.ID, "https://example.com/pricing")
	ref := pageRef{p.ID, u.ID, p.URL}

	t.Run("no baseline pointer", func(t *testing.T) {
		base, fresh, err := svc.BaselineFresh(ctx, p, 14, now)
		require.NoError(t, err)
		assert.Nil(t, base)
		assert.False(t, fresh)
	})

	a, err := analyses.CreateAnalysis(ctx, createAnalysisRequest(ref, "manual"))
	require.NoError(t, err)
	require.NoError(t, analyses.SetScreenshots(ctx, a.ID, "https://cdn.example.com/desktop.png", ""))
	require.NoError(t, analyses.CompleteAnalysis(ctx, a.ID, CompleteInput{}))
	require.NoError(t, svc.SetStableBaseline(ctx, p.ID, a.ID))

	p, err = svc.GetPage(ctx, p.ID)
	require.NoError(t, err)

	t.Run("fresh baseline with captures", func(t *testing.T) {
		base, fresh, err := svc.BaselineFresh(ctx, p, 14, now)
		require.NoError(t, err)
		require.NotNil(t, base)
		assert.True(t, fresh)
	})

	t.Run("stale baseline forces full analysis", func(t *testing.T) {
		// Age the baseline by evaluating against a far-future now.
		base, fresh, err := svc.BaselineFresh(ctx, p, 14, now.AddDate(0, 0, 30))
		require.NoError(t, err)
		require.NotNil(t, base)
		assert.False(t, fresh)
	})

	t.Run("baseline without captures is unusable", func(t *testing.T) {
		bare, err := client.Analysis.Create().
			SetID("a-bare").
			SetPageID(p.ID).
			SetUserID(u.ID).
			SetURL(p.URL).
			SetStatus(analysis.StatusComplete).
			Save(ctx)
		require.NoError(t, err)
		require.NoError(t, svc.SetStableBaseline(ctx, p.ID, bare.ID))

		p, err = svc.GetPage(ctx, p.ID)
		require.NoError(t, err)

		base, fresh, err := svc.BaselineFresh(ctx, p, 14, now)
		require.NoError(t, err)
		require.NotNil(t, base)
		assert.False(t, fresh)
	})
}
