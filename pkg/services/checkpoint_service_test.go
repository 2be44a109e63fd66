package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loupe-hq/loupe/pkg/models"
)

func checkpointRequest(changeID string, horizon int) models.CreateCheckpointRequest {
	day := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	return models.CreateCheckpointRequest{
		ChangeID:    changeID,
		HorizonDays: horizon,
		BeforeWindow: models.Window{
			Start: day.AddDate(0, 0, -horizon),
			End:   day,
		},
		AfterWindow: models.Window{
			Start: day,
			End:   day.AddDate(0, 0, horizon),
		},
		Metrics: models.MetricsEnvelope{
			Metrics: []models.MetricDelta{
				{Name: "conversion_rate", Before: 2.1, After: 2.4, ChangePercent: 14.3},
			},
			Sources: []string{"posthog"},
		},
		Assessment: models.AssessmentImproved,
		Reasoning:  "conversion_rate up 14.3% against the pre-change window",
		Provider:   "posthog",
	}
}

func TestCreateCheckpoint(t *testing.T) {
	client := setupClient(t)
	svc := NewCheckpointService(client.Client)
	ctx := context.Background()

	u := seedUser(t, client, "user-1")
	p := seedPage(t, client, u.ID, "https://example.com/pricing")
	c := seedChange(t, client, p.ID, u.ID, "Hero headline")

	t.Run("one row per horizon", func(t *testing.T) {
		cp, err := svc.CreateCheckpoint(ctx, checkpointRequest(c.ID, 7))
		require.NoError(t, err)
		assert.Equal(t, 7, cp.HorizonDays)

		// A concurrent pod evaluating the same horizon loses the insert
		// race and treats it as already done.
		_, err = svc.CreateCheckpoint(ctx, checkpointRequest(c.ID, 7))
		assert.ErrorIs(t, err, ErrAlreadyExists)

		_, err = svc.CreateCheckpoint(ctx, checkpointRequest(c.ID, 14))
		require.NoError(t, err)
	})

	t.Run("list is ordered by horizon", func(t *testing.T) {
		_, err := svc.CreateCheckpoint(ctx, checkpointRequest(c.ID, 60))
		require.NoError(t, err)
		_, err = svc.CreateCheckpoint(ctx, checkpointRequest(c.ID, 30))
		require.NoError(t, err)

		checkpoints, err := svc.ListForChange(ctx, c.ID)
		require.NoError(t, err)
		horizons := make([]int, len(checkpoints))
		for i, cp := range checkpoints {
			horizons[i] = cp.HorizonDays
		}
		assert.Equal(t, []int{7, 14, 30, 60}, horizons)
	})

	t.Run("existing horizons feed due math", func(t *testing.T) {
		existing, err := svc.ExistingHorizons(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, map[int]bool{7: true, 14: true, 30: true, 60: true}, existing)

		none, err := svc.ExistingHorizons(ctx, "no-such-change")
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("rejects missing reasoning", func(t *testing.T) {
		req := checkpointRequest(c.ID, 90)
		req.Reasoning = ""
		_, err := svc.CreateCheckpoint(ctx, req)
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects unknown assessment", func(t *testing.T) {
		req := checkpointRequest(c.ID, 90)
		req.Assessment = "amazing"
		_, err := svc.CreateCheckpoint(ctx, req)
		assert.True(t, IsValidationError(err))
	})

	t.Run("persists the metrics envelope", func(t *testing.T) {
		cp, err := svc.GetCheckpoint(ctx, firstCheckpointID(t, svc, c.ID))
		require.NoError(t, err)
		require.NotNil(t, cp.Metrics)
		assert.Contains(t, cp.Metrics, "metrics")
	})
}

func firstCheckpointID(t *testing.T, svc *CheckpointService, changeID string) string {
	t.Helper()
	checkpoints, err := svc.ListForChange(context.Background(), changeID)
	require.NoError(t, err)
	require.NotEmpty(t, checkpoints)
	return checkpoints[0].ID
}
