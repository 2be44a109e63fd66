package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/loupe-hq/loupe/ent"
	"github.com/loupe-hq/loupe/ent/changecheckpoint"
	"github.com/loupe-hq/loupe/pkg/models"
)

// CheckpointService manages the append-only checkpoint ledger.
type CheckpointService struct {
	client *ent.Client
}

// NewCheckpointService creates a new CheckpointService.
func NewCheckpointService(client *ent.Client) *CheckpointService {
	return &CheckpointService{client: client}
}

// CreateCheckpoint inserts one horizon evaluation. The unique
// (change_id, horizon_days) constraint turns concurrent duplicates into
// ErrAlreadyExists, which the engine treats as skip-and-continue.
func (s *CheckpointService) CreateCheckpoint(ctx context.Context, req models.CreateCheckpointRequest) (*ent.ChangeCheckpoint, error) {
	if req.ChangeID == "" {
		return nil, NewValidationError("change_id", "required")
	}
	if req.Reasoning == "" {
		return nil, NewValidationError("reasoning", "every checkpoint carries an explanation")
	}
	assessment := changecheckpoint.Assessment(req.Assessment)
	if err := changecheckpoint.AssessmentValidator(assessment); err != nil {
		return nil, NewValidationError("assessment", err.Error())
	}

	metricsMap, err := models.ToMap(req.Metrics)
	if err != nil {
		return nil, fmt.Errorf("failed to encode metrics envelope: %w", err)
	}

	builder := s.client.ChangeCheckpoint.Create().
		SetID(uuid.New().String()).
		SetChangeID(req.ChangeID).
		SetHorizonDays(req.HorizonDays).
		SetBeforeWindowStart(req.BeforeWindow.Start).
		SetBeforeWindowEnd(req.BeforeWindow.End).
		SetAfterWindowStart(req.AfterWindow.Start).
		SetAfterWindowEnd(req.AfterWindow.End).
		SetMetrics(metricsMap).
		SetAssessment(assessment).
		SetReasoning(req.Reasoning).
		SetProvider(req.Provider)
	if req.Confidence != nil {
		builder.SetConfidence(*req.Confidence)
	}
	if len(req.DataSources) > 0 {
		builder.SetDataSources(req.DataSources)
	}

	cp, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create checkpoint: %w", err)
	}
	return cp, nil
}

// GetCheckpoint retrieves a checkpoint by ID.
func (s *CheckpointService) GetCheckpoint(ctx context.Context, checkpointID string) (*ent.ChangeCheckpoint, error) {
	cp, err := s.client.ChangeCheckpoint.Get(ctx, checkpointID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get checkpoint: %w", err)
	}
	return cp, nil
}

// ListForChange returns a change's checkpoints ordered by horizon.
func (s *CheckpointService) ListForChange(ctx context.Context, changeID string) ([]*ent.ChangeCheckpoint, error) {
	checkpoints, err := s.client.ChangeCheckpoint.Query().
		Where(changecheckpoint.ChangeIDEQ(changeID)).
		Order(ent.Asc(changecheckpoint.FieldHorizonDays)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list checkpoints: %w", err)
	}
	return checkpoints, nil
}

// ExistingHorizons returns the set of horizons already recorded for a
// change, the input to due-horizon math.
func (s *CheckpointService) ExistingHorizons(ctx context.Context, changeID string) (map[int]bool, error) {
	var rows []struct {
		HorizonDays int `json:"horizon_days"`
	}
	err := s.client.ChangeCheckpoint.Query().
		Where(changecheckpoint.ChangeIDEQ(changeID)).
		Select(changecheckpoint.FieldHorizonDays).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to query existing horizons: %w", err)
	}

	existing := make(map[int]bool, len(rows))
	for _, r := range rows {
		existing[r.HorizonDays] = true
	}
	return existing, nil
}
