package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loupe-hq/loupe/ent/analysis"
	"github.com/loupe-hq/loupe/pkg/models"
)

type pageRef struct{ pageID, userID, url string }

func createAnalysisRequest(ref pageRef, trigger string) models.CreateAnalysisRequest {
	return models.CreateAnalysisRequest{
		PageID:      ref.pageID,
		UserID:      ref.userID,
		URL:         ref.url,
		TriggerType: trigger,
	}
}

func TestCreateAnalysis(t *testing.T) {
	client := setupClient(t)
	svc := NewAnalysisService(client.Client)
	ctx := context.Background()

	u := seedUser(t, client, "user-1")
	p := seedPage(t, client, u.ID, "https://example.com/pricing")
	ref := pageRef{p.ID, u.ID, p.URL}

	t.Run("creates pending with default trigger", func(t *testing.T) {
		a, err := svc.CreateAnalysis(ctx, createAnalysisRequest(ref, ""))
		require.NoError(t, err)
		assert.Equal(t, analysis.StatusPending, a.Status)
		assert.Equal(t, analysis.TriggerTypeManual, a.TriggerType)
	})

	t.Run("caller-supplied id makes retries idempotent", func(t *testing.T) {
		req := createAnalysisRequest(ref, "deploy")
		req.AnalysisID = "deploy-scan-1"
		req.DeployID = "dep-1"

		_, err := svc.CreateAnalysis(ctx, req)
		require.NoError(t, err)

		_, err = svc.CreateAnalysis(ctx, req)
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("rejects unknown trigger", func(t *testing.T) {
		_, err := svc.CreateAnalysis(ctx, createAnalysisRequest(ref, "hourly"))
		assert.True(t, IsValidationError(err))
	})
}

func TestAnalysisTerminalWrites(t *testing.T) {
	client := setupClient(t)
	svc := NewAnalysisService(client.Client)
	ctx := context.Background()

	u := seedUser(t, client, "user-1")
	p := seedPage(t, client, u.ID, "https://example.com/pricing")
	ref := pageRef{p.ID, u.ID, p.URL}

	t.Run("complete records outputs and summary", func(t *testing.T) {
		a, err := svc.CreateAnalysis(ctx, createAnalysisRequest(ref, "manual"))
		require.NoError(t, err)

		err = svc.CompleteAnalysis(ctx, a.ID, CompleteInput{
			FreeformOutput:   "The hero headline changed.",
			StructuredOutput: map[string]interface{}{"score": 82},
			ChangesSummary:   map[string]interface{}{"hasChanges": true},
		})
		require.NoError(t, err)

		got, err := svc.GetAnalysis(ctx, a.ID)
		require.NoError(t, err)
		assert.Equal(t, analysis.StatusComplete, got.Status)
		assert.NotNil(t, got.CompletedAt)
		require.NotNil(t, got.FreeformOutput)
		assert.Equal(t, "The hero headline changed.", *got.FreeformOutput)
	})

	t.Run("fail records the error message", func(t *testing.T) {
		a, err := svc.CreateAnalysis(ctx, createAnalysisRequest(ref, "manual"))
		require.NoError(t, err)

		require.NoError(t, svc.FailAnalysis(ctx, a.ID, "capture service unreachable"))

		got, err := svc.GetAnalysis(ctx, a.ID)
		require.NoError(t, err)
		assert.Equal(t, analysis.StatusFailed, got.Status)
		require.NotNil(t, got.ErrorMessage)
		assert.Equal(t, "capture service unreachable", *got.ErrorMessage)
	})
}

func TestRequeueForRetry(t *testing.T) {
	client := setupClient(t)
	svc := NewAnalysisService(client.Client)
	ctx := context.Background()

	u := seedUser(t, client, "user-1")
	p := seedPage(t, client, u.ID, "https://example.com/pricing")
	ref := pageRef{p.ID, u.ID, p.URL}

	a, err := svc.CreateAnalysis(ctx, createAnalysisRequest(ref, "manual"))
	require.NoError(t, err)

	// Only processing rows can be requeued; a pending row means another
	// actor already moved it.
	err = svc.RequeueForRetry(ctx, a.ID)
	assert.ErrorIs(t, err, ErrConcurrentModification)

	err = client.Analysis.UpdateOneID(a.ID).
		SetStatus(analysis.StatusProcessing).
		SetPodID("pod-a").
		SetLastInteractionAt(time.Now()).
		Exec(ctx)
	require.NoError(t, err)

	require.NoError(t, svc.RequeueForRetry(ctx, a.ID))

	got, err := svc.GetAnalysis(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, analysis.StatusPending, got.Status)
	assert.Nil(t, got.PodID)
	assert.Nil(t, got.LastInteractionAt)
}

func TestHasScanForDay(t *testing.T) {
	client := setupClient(t)
	svc := NewAnalysisService(client.Client)
	ctx := context.Background()

	u := seedUser(t, client, "user-1")
	p := seedPage(t, client, u.ID, "https://example.com/pricing")
	ref := pageRef{p.ID, u.ID, p.URL}

	_, err := svc.CreateAnalysis(ctx, createAnalysisRequest(ref, "daily"))
	require.NoError(t, err)

	now := time.Now().UTC()

	ok, err := svc.HasScanForDay(ctx, p.ID, analysis.TriggerTypeDaily, now)
	require.NoError(t, err)
	assert.True(t, ok, "today's daily scan exists")

	ok, err = svc.HasScanForDay(ctx, p.ID, analysis.TriggerTypeWeekly, now)
	require.NoError(t, err)
	assert.False(t, ok, "trigger types do not cross-satisfy")

	ok, err = svc.HasScanForDay(ctx, p.ID, analysis.TriggerTypeDaily, now.AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.False(t, ok, "tomorrow has no scan yet")
}

func TestLatestCompleteForPage(t *testing.T) {
	client := setupClient(t)
	svc := NewAnalysisService(client.Client)
	ctx := context.Background()

	u := seedUser(t, client, "user-1")
	p := seedPage(t, client, u.ID, "https://example.com/pricing")
	ref := pageRef{p.ID, u.ID, p.URL}

	got, err := svc.LatestCompleteForPage(ctx, p.ID)
	require.NoError(t, err)
	assert.Nil(t, got, "no complete analysis yet")

	// Inserted directly so created_at can be pinned in the past.
	_, err = client.Analysis.Create().
		SetID("a-older").
		SetPageID(p.ID).
		SetUserID(u.ID).
		SetURL(p.URL).
		SetStatus(analysis.StatusComplete).
		SetCreatedAt(time.Now().Add(-time.Hour)).
		SetCompletedAt(time.Now().Add(-time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	newer, err := svc.CreateAnalysis(ctx, createAnalysisRequest(ref, "manual"))
	require.NoError(t, err)
	require.NoError(t, svc.CompleteAnalysis(ctx, newer.ID, CompleteInput{
		ChangesSummary: map[string]interface{}{"hasChanges": false},
	}))

	got, err = svc.LatestCompleteForPage(ctx, p.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, newer.ID, got.ID)

	chronicle, err := svc.LatestChronicleForPage(ctx, p.ID)
	require.NoError(t, err)
	require.NotNil(t, chronicle)
	assert.Equal(t, newer.ID, chronicle.ID, "chronicle requires a changes_summary")
}

func TestFindOrphaned(t *testing.T) {
	client := setupClient(t)
	svc := NewAnalysisService(client.Client)
	ctx := context.Background()

	u := seedUser(t, client, "user-1")
	p := seedPage(t, client, u.ID, "https://example.com/pricing")
	ref := pageRef{p.ID, u.ID, p.URL}

	stale, err := svc.CreateAnalysis(ctx, createAnalysisRequest(ref, "manual"))
	require.NoError(t, err)
	require.NoError(t, client.Analysis.UpdateOneID(stale.ID).
		SetStatus(analysis.StatusProcessing).
		SetLastInteractionAt(time.Now().Add(-10*time.Minute)).
		Exec(ctx))

	healthy, err := svc.CreateAnalysis(ctx, createAnalysisRequest(ref, "manual"))
	require.NoError(t, err)
	require.NoError(t, client.Analysis.UpdateOneID(healthy.ID).
		SetStatus(analysis.StatusProcessing).
		SetLastInteractionAt(time.Now()).
		Exec(ctx))

	orphans, err := svc.FindOrphaned(ctx, 5*time.Minute)
	require.NoError(t, err)
	require.Len(t, orphans, 1)
	assert.Equal(t, stale.ID, orphans[0].ID)
}
