package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loupe-hq/loupe/ent/outcomefeedback"
	"github.com/loupe-hq/loupe/pkg/models"
)

func TestCreateFeedback(t *testing.T) {
	client := setupClient(t)
	svc := NewFeedbackService(client.Client)
	checkpoints := NewCheckpointService(client.Client)
	ctx := context.Background()

	u := seedUser(t, client, "user-1")
	p := seedPage(t, client, u.ID, "https://example.com/pricing")
	c := seedChange(t, client, p.ID, u.ID, "Hero headline")
	other := seedChange(t, client, p.ID, u.ID, "CTA button")

	cp, err := checkpoints.CreateCheckpoint(ctx, checkpointRequest(c.ID, 30))
	require.NoError(t, err)

	t.Run("records a judgment on an owned checkpoint", func(t *testing.T) {
		fb, err := svc.CreateFeedback(ctx, models.CreateFeedbackRequest{
			ChangeID:     c.ID,
			CheckpointID: cp.ID,
			UserID:       u.ID,
			FeedbackType: "inaccurate",
			Comment:      "traffic spike came from a campaign, not this change",
		})
		require.NoError(t, err)
		assert.Equal(t, outcomefeedback.FeedbackTypeInaccurate, fb.FeedbackType)
	})

	t.Run("rejects a checkpoint that belongs to another change", func(t *testing.T) {
		_, err := svc.CreateFeedback(ctx, models.CreateFeedbackRequest{
			ChangeID:     other.ID,
			CheckpointID: cp.ID,
			UserID:       u.ID,
			FeedbackType: "accurate",
		})
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects unknown feedback type", func(t *testing.T) {
		_, err := svc.CreateFeedback(ctx, models.CreateFeedbackRequest{
			ChangeID:     c.ID,
			CheckpointID: cp.ID,
			UserID:       u.ID,
			FeedbackType: "meh",
		})
		assert.True(t, IsValidationError(err))
	})
}

func TestNotesForChange(t *testing.T) {
	client := setupClient(t)
	svc := NewFeedbackService(client.Client)
	checkpoints := NewCheckpointService(client.Client)
	ctx := context.Background()

	u := seedUser(t, client, "user-1")
	p := seedPage(t, client, u.ID, "https://example.com/pricing")
	c := seedChange(t, client, p.ID, u.ID, "Hero headline")

	cp, err := checkpoints.CreateCheckpoint(ctx, checkpointRequest(c.ID, 7))
	require.NoError(t, err)

	_, err = svc.CreateFeedback(ctx, models.CreateFeedbackRequest{
		ChangeID:     c.ID,
		CheckpointID: cp.ID,
		UserID:       u.ID,
		FeedbackType: "inaccurate",
		Comment:      "seasonal dip",
	})
	require.NoError(t, err)

	notes, err := svc.NotesForChange(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Contains(t, notes[0], "inaccurate")
	assert.Contains(t, notes[0], "seasonal dip")

	empty, err := svc.NotesForChange(ctx, "no-feedback")
	require.NoError(t, err)
	assert.Empty(t, empty)
}
