package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/loupe-hq/loupe/ent"
	"github.com/loupe-hq/loupe/ent/changecheckpoint"
	"github.com/loupe-hq/loupe/ent/outcomefeedback"
	"github.com/loupe-hq/loupe/pkg/models"
)

// FeedbackService records user judgments on checkpoint verdicts and
// serves them back to assessor prompts.
type FeedbackService struct {
	client *ent.Client
}

// NewFeedbackService creates a new FeedbackService.
func NewFeedbackService(client *ent.Client) *FeedbackService {
	return &FeedbackService{client: client}
}

// CreateFeedback records one judgment. The checkpoint must belong to
// the change it claims.
func (s *FeedbackService) CreateFeedback(ctx context.Context, req models.CreateFeedbackRequest) (*ent.OutcomeFeedback, error) {
	if req.ChangeID == "" {
		return nil, NewValidationError("change_id", "required")
	}
	if req.CheckpointID == "" {
		return nil, NewValidationError("checkpoint_id", "required")
	}
	feedbackType := outcomefeedback.FeedbackType(req.FeedbackType)
	if err := outcomefeedback.FeedbackTypeValidator(feedbackType); err != nil {
		return nil, NewValidationError("feedback_type", err.Error())
	}

	ok, err := s.client.ChangeCheckpoint.Query().
		Where(
			changecheckpoint.IDEQ(req.CheckpointID),
			changecheckpoint.ChangeIDEQ(req.ChangeID),
		).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to verify checkpoint ownership: %w", err)
	}
	if !ok {
		return nil, NewValidationError("checkpoint_id", "checkpoint does not belong to this change")
	}

	builder := s.client.OutcomeFeedback.Create().
		SetID(uuid.New().String()).
		SetChangeID(req.ChangeID).
		SetCheckpointID(req.CheckpointID).
		SetUserID(req.UserID).
		SetFeedbackType(feedbackType)
	if req.Comment != "" {
		builder.SetComment(req.Comment)
	}

	fb, err := builder.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create feedback: %w", err)
	}
	return fb, nil
}

// NotesForChange returns feedback rendered as prompt notes, oldest
// first so the assessor sees the judgment history in order.
func (s *FeedbackService) NotesForChange(ctx context.Context, changeID string) ([]string, error) {
	rows, err := s.client.OutcomeFeedback.Query().
		Where(outcomefeedback.ChangeIDEQ(changeID)).
		Order(ent.Asc(outcomefeedback.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list feedback: %w", err)
	}

	notes := make([]string, 0, len(rows))
	for _, r := range rows {
		note := fmt.Sprintf("marked a prior verdict %s", r.FeedbackType)
		if r.Comment != nil && *r.Comment != "" {
			note = fmt.Sprintf("%s: %s", note, *r.Comment)
		}
		notes = append(notes, note)
	}
	return notes, nil
}
