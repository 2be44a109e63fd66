package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loupe-hq/loupe/ent/changelifecycleevent"
	"github.com/loupe-hq/loupe/ent/detectedchange"
	"github.com/loupe-hq/loupe/pkg/models"
)

func TestCreateChange(t *testing.T) {
	client := setupClient(t)
	svc := NewChangeService(client.Client)
	ctx := context.Background()

	u := seedUser(t, client, "user-1")
	p := seedPage(t, client, u.ID, "https://example.com/pricing")

	t.Run("creates watching change with initial lifecycle event", func(t *testing.T) {
		c, err := svc.CreateChange(ctx, models.CreateChangeRequest{
			PageID:      p.ID,
			UserID:      u.ID,
			Element:     "Hero headline",
			BeforeValue: "Ship faster",
			AfterValue:  "Ship twice as fast",
		})
		require.NoError(t, err)
		assert.Equal(t, detectedchange.StatusWatching, c.Status)
		assert.Nil(t, c.CorrelationUnlockedAt)

		events, err := svc.ListLifecycleEvents(ctx, c.ID)
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Nil(t, events[0].FromStatus)
		assert.Equal(t, "watching", events[0].ToStatus)
		assert.Equal(t, changelifecycleevent.ActorTypeSystem, events[0].ActorType)
	})

	t.Run("same-day duplicate collapses", func(t *testing.T) {
		detectedAt := time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC)
		_, err := svc.CreateChange(ctx, models.CreateChangeRequest{
			PageID:      p.ID,
			UserID:      u.ID,
			Element:     "CTA button",
			BeforeValue: "Sign up",
			AfterValue:  "Start free trial",
			DetectedAt:  detectedAt,
		})
		require.NoError(t, err)

		_, err = svc.CreateChange(ctx, models.CreateChangeRequest{
			PageID:      p.ID,
			UserID:      u.ID,
			Element:     "CTA button",
			BeforeValue: "Sign up",
			AfterValue:  "Start free trial now",
			DetectedAt:  detectedAt.Add(3 * time.Hour),
		})
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})

	t.Run("next-day re-detection is a new change", func(t *testing.T) {
		detectedAt := time.Date(2026, 8, 20, 9, 0, 0, 0, time.UTC)
		_, err := svc.CreateChange(ctx, models.CreateChangeRequest{
			PageID:      p.ID,
			UserID:      u.ID,
			Element:     "Footer tagline",
			BeforeValue: "a",
			AfterValue:  "b",
			DetectedAt:  detectedAt,
		})
		require.NoError(t, err)

		_, err = svc.CreateChange(ctx, models.CreateChangeRequest{
			PageID:      p.ID,
			UserID:      u.ID,
			Element:     "Footer tagline",
			BeforeValue: "b",
			AfterValue:  "c",
			DetectedAt:  detectedAt.AddDate(0, 0, 1),
		})
		require.NoError(t, err)
	})

	t.Run("rejects missing element", func(t *testing.T) {
		_, err := svc.CreateChange(ctx, models.CreateChangeRequest{
			PageID: p.ID,
			UserID: u.ID,
		})
		assert.True(t, IsValidationError(err))
	})
}

func TestTransition(t *testing.T) {
	client := setupClient(t)
	svc := NewChangeService(client.Client)
	ctx := context.Background()

	u := seedUser(t, client, "user-1")
	p := seedPage(t, client, u.ID, "https://example.com/pricing")

	t.Run("first departure from watching unlocks correlation", func(t *testing.T) {
		c := seedChange(t, client, p.ID, u.ID, "Pricing card")

		eventID, err := svc.Transition(ctx, models.TransitionRequest{
			ChangeID:   c.ID,
			FromStatus: "watching",
			ToStatus:   "validated",
			Reason:     "conversion_rate up 12% over the D+30 window",
			ActorType:  "system",
		})
		require.NoError(t, err)
		require.NotEmpty(t, eventID)

		updated, err := svc.GetChange(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, detectedchange.StatusValidated, updated.Status)
		require.NotNil(t, updated.CorrelationUnlockedAt)

		events, err := svc.ListLifecycleEvents(ctx, c.ID)
		require.NoError(t, err)
		require.Len(t, events, 2)
		last := events[1]
		require.NotNil(t, last.FromStatus)
		assert.Equal(t, "watching", *last.FromStatus)
		assert.Equal(t, "validated", last.ToStatus)
	})

	t.Run("cas miss returns concurrent modification", func(t *testing.T) {
		c := seedChange(t, client, p.ID, u.ID, "Testimonial block")

		_, err := svc.Transition(ctx, models.TransitionRequest{
			ChangeID:   c.ID,
			FromStatus: "watching",
			ToStatus:   "regressed",
			Reason:     "bounce_rate up",
			ActorType:  "system",
		})
		require.NoError(t, err)

		// The row already left watching; a second CAS on the stale
		// prior status must not double-transition.
		_, err = svc.Transition(ctx, models.TransitionRequest{
			ChangeID:   c.ID,
			FromStatus: "watching",
			ToStatus:   "validated",
			Reason:     "stale verdict",
			ActorType:  "system",
		})
		assert.ErrorIs(t, err, ErrConcurrentModification)

		// Only the one successful transition left an audit row.
		events, err := svc.ListLifecycleEvents(ctx, c.ID)
		require.NoError(t, err)
		assert.Len(t, events, 2)
	})

	t.Run("reverted is terminal", func(t *testing.T) {
		c := seedChange(t, client, p.ID, u.ID, "Nav bar")

		_, err := svc.Transition(ctx, models.TransitionRequest{
			ChangeID:   c.ID,
			FromStatus: "watching",
			ToStatus:   "reverted",
			Reason:     "change no longer present",
			ActorType:  "system",
		})
		require.NoError(t, err)

		updated, err := svc.GetChange(ctx, c.ID)
		require.NoError(t, err)
		assert.NotNil(t, updated.RevertedAt)

		_, err = svc.Transition(ctx, models.TransitionRequest{
			ChangeID:   c.ID,
			FromStatus: "reverted",
			ToStatus:   "validated",
			Reason:     "should never happen",
			ActorType:  "system",
		})
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("verdict states move between each other", func(t *testing.T) {
		c := seedChange(t, client, p.ID, u.ID, "Feature grid")

		steps := []struct{ from, to string }{
			{"watching", "inconclusive"},
			{"inconclusive", "validated"},
			{"validated", "regressed"},
			{"regressed", "validated"},
		}
		for _, step := range steps {
			_, err := svc.Transition(ctx, models.TransitionRequest{
				ChangeID:   c.ID,
				FromStatus: step.from,
				ToStatus:   step.to,
				Reason:     "horizon verdict",
				ActorType:  "system",
			})
			require.NoError(t, err, "%s -> %s", step.from, step.to)
		}

		events, err := svc.ListLifecycleEvents(ctx, c.ID)
		require.NoError(t, err)
		// Initial insert plus four transitions.
		assert.Len(t, events, 5)
	})

	t.Run("rejects unknown actor type", func(t *testing.T) {
		c := seedChange(t, client, p.ID, u.ID, "Hero image")

		_, err := svc.Transition(ctx, models.TransitionRequest{
			ChangeID:   c.ID,
			FromStatus: "watching",
			ToStatus:   "validated",
			Reason:     "x",
			ActorType:  "robot",
		})
		assert.True(t, IsValidationError(err))
	})

	t.Run("checkpoint id lands on the audit row", func(t *testing.T) {
		c := seedChange(t, client, p.ID, u.ID, "Plan selector")
		cp, err := NewCheckpointService(client.Client).CreateCheckpoint(ctx, models.CreateCheckpointRequest{
			ChangeID:    c.ID,
			HorizonDays: 30,
			Assessment:  models.AssessmentImproved,
			Reasoning:   "signup_rate improved 8.2%",
			Provider:    "posthog",
		})
		require.NoError(t, err)

		eventID, err := svc.Transition(ctx, models.TransitionRequest{
			ChangeID:     c.ID,
			FromStatus:   "watching",
			ToStatus:     "validated",
			Reason:       "signup_rate improved 8.2%",
			ActorType:    "system",
			CheckpointID: cp.ID,
		})
		require.NoError(t, err)

		events, err := svc.ListLifecycleEvents(ctx, c.ID)
		require.NoError(t, err)
		var found bool
		for _, e := range events {
			if e.ID == eventID {
				found = true
				require.NotNil(t, e.CheckpointID)
				assert.Equal(t, cp.ID, *e.CheckpointID)
			}
		}
		assert.True(t, found)
	})
}

func TestWatchingCandidates(t *testing.T) {
	client := setupClient(t)
	svc := NewChangeService(client.Client)
	ctx := context.Background()

	u := seedUser(t, client, "user-1")
	p := seedPage(t, client, u.ID, "https://example.com/pricing")

	watching := seedChange(t, client, p.ID, u.ID, "Hero headline")
	moved := seedChange(t, client, p.ID, u.ID, "CTA button")
	_, err := svc.Transition(ctx, models.TransitionRequest{
		ChangeID:   moved.ID,
		FromStatus: "watching",
		ToStatus:   "validated",
		Reason:     "verdict",
		ActorType:  "system",
	})
	require.NoError(t, err)

	candidates, err := svc.WatchingCandidates(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, watching.ID, candidates[0].ID)
	assert.Equal(t, "watching", candidates[0].Status)
}

func TestSetHypothesis(t *testing.T) {
	client := setupClient(t)
	svc := NewChangeService(client.Client)
	ctx := context.Background()

	u := seedUser(t, client, "user-1")
	p := seedPage(t, client, u.ID, "https://example.com/pricing")
	c := seedChange(t, client, p.ID, u.ID, "Hero headline")

	require.NoError(t, svc.SetHypothesis(ctx, c.ID, "expect signups to rise"))

	updated, err := svc.GetChange(ctx, c.ID)
	require.NoError(t, err)
	require.NotNil(t, updated.Hypothesis)
	assert.Equal(t, "expect signups to rise", *updated.Hypothesis)

	assert.ErrorIs(t, svc.SetHypothesis(ctx, "missing", "x"), ErrNotFound)
}

func TestListCheckpointEligible(t *testing.T) {
	client := setupClient(t)
	svc := NewChangeService(client.Client)
	ctx := context.Background()

	u := seedUser(t, client, "user-1")
	p := seedPage(t, client, u.ID, "https://example.com/pricing")

	for _, element := range []string{"A", "B", "C"} {
		seedChange(t, client, p.ID, u.ID, element)
	}
	reverted := seedChange(t, client, p.ID, u.ID, "D")
	_, err := svc.Transition(ctx, models.TransitionRequest{
		ChangeID:   reverted.ID,
		FromStatus: "watching",
		ToStatus:   "reverted",
		Reason:     "gone",
		ActorType:  "system",
	})
	require.NoError(t, err)

	// Page through with size 2; reverted rows never appear.
	var seen []string
	afterID := ""
	for {
		batch, err := svc.ListCheckpointEligible(ctx, afterID, 2)
		require.NoError(t, err)
		if len(batch) == 0 {
			break
		}
		for _, c := range batch {
			assert.NotEqual(t, reverted.ID, c.ID)
			seen = append(seen, c.ID)
		}
		afterID = batch[len(batch)-1].ID
	}
	assert.Len(t, seen, 3)
}

func TestRecordObservation(t *testing.T) {
	client := setupClient(t)
	svc := NewChangeService(client.Client)
	ctx := context.Background()

	u := seedUser(t, client, "user-1")
	p := seedPage(t, client, u.ID, "https://example.com/pricing")
	ch := seedChange(t, client, p.ID, u.ID, "hero headline")

	require.NoError(t, svc.RecordObservation(ctx, ch.ID, "day-7: early lift in conversions", map[string]interface{}{"horizon": 7}))

	got, err := svc.GetChange(ctx, ch.ID)
	require.NoError(t, err)
	require.NotNil(t, got.ObservationText)
	assert.Equal(t, "day-7: early lift in conversions", *got.ObservationText)

	t.Run("later checkpoints keep the first commentary", func(t *testing.T) {
		require.NoError(t, svc.RecordObservation(ctx, ch.ID, "day-30: lift held", map[string]interface{}{"horizon": 30}))

		got, err := svc.GetChange(ctx, ch.ID)
		require.NoError(t, err)
		require.NotNil(t, got.ObservationText)
		assert.Equal(t, "day-7: early lift in conversions", *got.ObservationText)
		// The metrics snapshot still refreshes.
		assert.EqualValues(t, 30, got.CorrelationMetrics["horizon"])
	})

	t.Run("empty text never clears commentary", func(t *testing.T) {
		require.NoError(t, svc.RecordObservation(ctx, ch.ID, "", nil))

		got, err := svc.GetChange(ctx, ch.ID)
		require.NoError(t, err)
		require.NotNil(t, got.ObservationText)
		assert.Equal(t, "day-7: early lift in conversions", *got.ObservationText)
	})

	t.Run("missing change", func(t *testing.T) {
		assert.ErrorIs(t, svc.RecordObservation(ctx, "missing", "text", nil), ErrNotFound)
	})
}
