package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/loupe-hq/loupe/ent"
	"github.com/loupe-hq/loupe/ent/trackedsuggestion"
	"github.com/loupe-hq/loupe/pkg/fingerprint"
	"github.com/loupe-hq/loupe/pkg/models"
)

// SuggestionService manages persistent open-actions proposed by audits.
type SuggestionService struct {
	client *ent.Client
}

// NewSuggestionService creates a new SuggestionService.
func NewSuggestionService(client *ent.Client) *SuggestionService {
	return &SuggestionService{client: client}
}

// UpsertFromScan folds a scan's proposed suggestions into the page's
// tracked set. A re-proposal bumps times_suggested and reopens
// addressed or dismissed items; a new (element, title) key inserts.
func (s *SuggestionService) UpsertFromScan(ctx context.Context, pageID, userID string, items []models.SuggestionItem) error {
	// A response that proposes the same action twice counts once.
	seen := make(map[string]bool, len(items))
	for _, item := range items {
		if item.Title == "" || item.Element == "" {
			continue
		}
		key := fingerprint.SuggestionKey(item.Element, item.Title)
		if seen[key] {
			continue
		}
		seen[key] = true

		impact := trackedsuggestion.Impact(item.Impact)
		if err := trackedsuggestion.ImpactValidator(impact); err != nil {
			impact = trackedsuggestion.ImpactMedium
		}

		existing, err := s.client.TrackedSuggestion.Query().
			Where(
				trackedsuggestion.PageIDEQ(pageID),
				trackedsuggestion.DedupKeyEQ(key),
			).
			Only(ctx)
		if err != nil && !ent.IsNotFound(err) {
			return fmt.Errorf("failed to query suggestion: %w", err)
		}

		if existing != nil {
			err = s.client.TrackedSuggestion.UpdateOneID(existing.ID).
				SetStatus(trackedsuggestion.StatusOpen).
				AddTimesSuggested(1).
				SetLastSuggestedAt(time.Now()).
				SetSuggestedFix(item.SuggestedFix).
				SetImpact(impact).
				Exec(ctx)
			if err != nil {
				return fmt.Errorf("failed to refresh suggestion: %w", err)
			}
			continue
		}

		_, err = s.client.TrackedSuggestion.Create().
			SetID(uuid.New().String()).
			SetPageID(pageID).
			SetUserID(userID).
			SetTitle(item.Title).
			SetElement(item.Element).
			SetSuggestedFix(item.SuggestedFix).
			SetImpact(impact).
			SetStatus(trackedsuggestion.StatusOpen).
			SetDedupKey(key).
			Save(ctx)
		if err != nil {
			// A concurrent scan inserted the same key; refresh instead.
			if ent.IsConstraintError(err) {
				continue
			}
			return fmt.Errorf("failed to create suggestion: %w", err)
		}
	}
	return nil
}

// SetStatus marks a suggestion addressed or dismissed (user action) or
// reopens it.
func (s *SuggestionService) SetStatus(ctx context.Context, suggestionID string, status trackedsuggestion.Status) error {
	if err := trackedsuggestion.StatusValidator(status); err != nil {
		return NewValidationError("status", err.Error())
	}
	err := s.client.TrackedSuggestion.UpdateOneID(suggestionID).
		SetStatus(status).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to set suggestion status: %w", err)
	}
	return nil
}

// ListOpenForPage lists a page's open suggestions for the composer,
// highest impact first, then most-often suggested.
func (s *SuggestionService) ListOpenForPage(ctx context.Context, pageID string) ([]*ent.TrackedSuggestion, error) {
	suggestions, err := s.client.TrackedSuggestion.Query().
		Where(
			trackedsuggestion.PageIDEQ(pageID),
			trackedsuggestion.StatusEQ(trackedsuggestion.StatusOpen),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list open suggestions: %w", err)
	}
	return suggestions, nil
}

// ListForPage lists all of a page's suggestions regardless of status.
func (s *SuggestionService) ListForPage(ctx context.Context, pageID string) ([]*ent.TrackedSuggestion, error) {
	suggestions, err := s.client.TrackedSuggestion.Query().
		Where(trackedsuggestion.PageIDEQ(pageID)).
		Order(ent.Desc(trackedsuggestion.FieldLastSuggestedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list suggestions: %w", err)
	}
	return suggestions, nil
}
