package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loupe-hq/loupe/ent/trackedsuggestion"
	"github.com/loupe-hq/loupe/pkg/models"
)

func TestUpsertFromScan(t *testing.T) {
	client := setupClient(t)
	svc := NewSuggestionService(client.Client)
	ctx := context.Background()

	u := seedUser(t, client, "user-1")
	p := seedPage(t, client, u.ID, "https://example.com/pricing")

	items := []models.SuggestionItem{
		{Title: "Shorten the headline", Element: "Hero headline", SuggestedFix: "Cut to eight words", Impact: "high"},
		{Title: "Add social proof", Element: "Testimonials", SuggestedFix: "Show customer logos", Impact: "medium"},
	}

	t.Run("first scan inserts open suggestions", func(t *testing.T) {
		require.NoError(t, svc.UpsertFromScan(ctx, p.ID, u.ID, items))

		open, err := svc.ListOpenForPage(ctx, p.ID)
		require.NoError(t, err)
		require.Len(t, open, 2)
		for _, s := range open {
			assert.Equal(t, 1, s.TimesSuggested)
		}
	})

	t.Run("re-proposal bumps the counter instead of duplicating", func(t *testing.T) {
		require.NoError(t, svc.UpsertFromScan(ctx, p.ID, u.ID, items[:1]))

		all, err := svc.ListForPage(ctx, p.ID)
		require.NoError(t, err)
		require.Len(t, all, 2)
		for _, s := range all {
			if s.Title == "Shorten the headline" {
				assert.Equal(t, 2, s.TimesSuggested)
			}
		}
	})

	t.Run("re-proposal reopens a dismissed suggestion", func(t *testing.T) {
		all, err := svc.ListForPage(ctx, p.ID)
		require.NoError(t, err)
		target := all[0]

		require.NoError(t, svc.SetStatus(ctx, target.ID, trackedsuggestion.StatusDismissed))
		require.NoError(t, svc.UpsertFromScan(ctx, p.ID, u.ID, []models.SuggestionItem{
			{Title: target.Title, Element: target.Element, SuggestedFix: "still worth doing", Impact: "high"},
		}))

		got, err := client.TrackedSuggestion.Get(ctx, target.ID)
		require.NoError(t, err)
		assert.Equal(t, trackedsuggestion.StatusOpen, got.Status)
	})

	t.Run("case and spacing variants collapse to one key", func(t *testing.T) {
		require.NoError(t, svc.UpsertFromScan(ctx, p.ID, u.ID, []models.SuggestionItem{
			{Title: "ADD  social   proof", Element: "testimonials", SuggestedFix: "logos", Impact: "medium"},
		}))

		all, err := svc.ListForPage(ctx, p.ID)
		require.NoError(t, err)
		assert.Len(t, all, 2)
	})

	t.Run("items without a title or element are skipped", func(t *testing.T) {
		require.NoError(t, svc.UpsertFromScan(ctx, p.ID, u.ID, []models.SuggestionItem{
			{Title: "", Element: "Hero"},
			{Title: "Orphan", Element: ""},
		}))

		all, err := svc.ListForPage(ctx, p.ID)
		require.NoError(t, err)
		assert.Len(t, all, 2)
	})

	t.Run("duplicate proposals in one scan count once", func(t *testing.T) {
		require.NoError(t, svc.UpsertFromScan(ctx, p.ID, u.ID, []models.SuggestionItem{
			{Title: "Swap hero image", Element: "Hero media", SuggestedFix: "Use a product shot", Impact: "low"},
			{Title: "Swap  HERO image", Element: "hero media", SuggestedFix: "Use a product shot", Impact: "low"},
		}))

		all, err := svc.ListForPage(ctx, p.ID)
		require.NoError(t, err)
		for _, s := range all {
			if s.Element == "Hero media" {
				assert.Equal(t, 1, s.TimesSuggested)
			}
		}
	})

	t.Run("re-proposal overwrites fix and impact", func(t *testing.T) {
		require.NoError(t, svc.UpsertFromScan(ctx, p.ID, u.ID, []models.SuggestionItem{
			{Title: "Swap hero image", Element: "Hero media", SuggestedFix: "Use a lifestyle shot instead", Impact: "high"},
		}))

		all, err := svc.ListForPage(ctx, p.ID)
		require.NoError(t, err)
		found := false
		for _, s := range all {
			if s.Element == "Hero media" {
				found = true
				assert.Equal(t, 2, s.TimesSuggested)
				assert.Equal(t, "Use a lifestyle shot instead", s.SuggestedFix)
				assert.Equal(t, trackedsuggestion.ImpactHigh, s.Impact)
			}
		}
		assert.True(t, found)
	})

	t.Run("unknown impact falls back to medium", func(t *testing.T) {
		require.NoError(t, svc.UpsertFromScan(ctx, p.ID, u.ID, []models.SuggestionItem{
			{Title: "Tighten spacing", Element: "Plan grid", SuggestedFix: "Reduce padding", Impact: "gigantic"},
		}))

		all, err := svc.ListForPage(ctx, p.ID)
		require.NoError(t, err)
		for _, s := range all {
			if s.Title == "Tighten spacing" {
				assert.Equal(t, trackedsuggestion.ImpactMedium, s.Impact)
			}
		}
	})
}

func TestSuggestionSetStatus(t *testing.T) {
	client := setupClient(t)
	svc := NewSuggestionService(client.Client)
	ctx := context.Background()

	u := seedUser(t, client, "user-1")
	p := seedPage(t, client, u.ID, "https://example.com/pricing")

	require.NoError(t, svc.UpsertFromScan(ctx, p.ID, u.ID, []models.SuggestionItem{
		{Title: "Shorten the headline", Element: "Hero headline", SuggestedFix: "Cut it", Impact: "high"},
	}))
	all, err := svc.ListForPage(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, all, 1)

	require.NoError(t, svc.SetStatus(ctx, all[0].ID, trackedsuggestion.StatusAddressed))

	open, err := svc.ListOpenForPage(ctx, p.ID)
	require.NoError(t, err)
	assert.Empty(t, open)

	assert.ErrorIs(t, svc.SetStatus(ctx, "missing", trackedsuggestion.StatusOpen), ErrNotFound)
	assert.True(t, IsValidationError(svc.SetStatus(ctx, all[0].ID, "archived")))
}
