package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/loupe-hq/loupe/ent"
	"github.com/loupe-hq/loupe/ent/changelifecycleevent"
	"github.com/loupe-hq/loupe/ent/detectedchange"
	"github.com/loupe-hq/loupe/pkg/fingerprint"
	"github.com/loupe-hq/loupe/pkg/models"
)

// allowedTransitions is the lifecycle state machine. Reverted is
// terminal; everything else can be reverted; checkpoint verdicts move
// between the observation states.
var allowedTransitions = map[detectedchange.Status][]detectedchange.Status{
	detectedchange.StatusWatching:     {detectedchange.StatusValidated, detectedchange.StatusRegressed, detectedchange.StatusInconclusive, detectedchange.StatusReverted},
	detectedchange.StatusValidated:    {detectedchange.StatusRegressed, detectedchange.StatusInconclusive, detectedchange.StatusReverted},
	detectedchange.StatusRegressed:    {detectedchange.StatusValidated, detectedchange.StatusInconclusive, detectedchange.StatusReverted},
	detectedchange.StatusInconclusive: {detectedchange.StatusValidated, detectedchange.StatusRegressed, detectedchange.StatusReverted},
	detectedchange.StatusReverted:     {},
}

func transitionAllowed(from, to detectedchange.Status) bool {
	for _, t := range allowedTransitions[from] {
		if t == to {
			return true
		}
	}
	return false
}

// ChangeService manages detected changes and their lifecycle audit
// trail. Every status mutation writes exactly one lifecycle event in
// the same transaction.
type ChangeService struct {
	client *ent.Client
}

// NewChangeService creates a new ChangeService.
func NewChangeService(client *ent.Client) *ChangeService {
	return &ChangeService{client: client}
}

// CreateChange inserts a new change in watching state together with
// its initial lifecycle event. The unique (page_id, element, detected_on)
// constraint makes same-day duplicate detections collapse; the caller
// sees ErrAlreadyExists and treats it as a no-op.
func (s *ChangeService) CreateChange(ctx context.Context, req models.CreateChangeRequest) (*ent.DetectedChange, error) {
	if req.PageID == "" {
		return nil, NewValidationError("page_id", "required")
	}
	if req.Element == "" {
		return nil, NewValidationError("element", "required")
	}
	scope := detectedchange.ScopeElement
	if req.Scope != "" {
		scope = detectedchange.Scope(req.Scope)
		if err := detectedchange.ScopeValidator(scope); err != nil {
			return nil, NewValidationError("scope", err.Error())
		}
	}
	detectedAt := req.DetectedAt
	if detectedAt.IsZero() {
		detectedAt = time.Now()
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	builder := tx.DetectedChange.Create().
		SetID(uuid.New().String()).
		SetPageID(req.PageID).
		SetUserID(req.UserID).
		SetElement(req.Element).
		SetScope(scope).
		SetBeforeValue(req.BeforeValue).
		SetAfterValue(req.AfterValue).
		SetStatus(detectedchange.StatusWatching).
		SetFirstDetectedAt(detectedAt).
		SetDetectedOn(detectedAt.UTC().Format("2006-01-02"))
	if req.Description != "" {
		builder.SetDescription(req.Description)
	}
	if req.AnalysisID != "" {
		builder.SetFirstDetectedAnalysisID(req.AnalysisID)
	}
	if req.MatchConfidence != nil {
		builder.SetMatchConfidence(*req.MatchConfidence)
	}
	if req.MatchRationale != "" {
		builder.SetMatchRationale(req.MatchRationale)
	}

	change, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create change: %w", err)
	}

	_, err = tx.ChangeLifecycleEvent.Create().
		SetID(uuid.New().String()).
		SetChangeID(change.ID).
		SetToStatus(string(detectedchange.StatusWatching)).
		SetReason("change detected").
		SetActorType(changelifecycleevent.ActorTypeSystem).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create initial lifecycle event: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit change creation: %w", err)
	}
	return change, nil
}

// GetChange retrieves a change by ID.
func (s *ChangeService) GetChange(ctx context.Context, changeID string) (*ent.DetectedChange, error) {
	c, err := s.client.DetectedChange.Get(ctx, changeID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get change: %w", err)
	}
	return c, nil
}

// ListForPage lists a page's changes, newest first.
func (s *ChangeService) ListForPage(ctx context.Context, pageID string) ([]*ent.DetectedChange, error) {
	changes, err := s.client.DetectedChange.Query().
		Where(detectedchange.PageIDEQ(pageID)).
		Order(ent.Desc(detectedchange.FieldFirstDetectedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list changes: %w", err)
	}
	return changes, nil
}

// WatchingCandidates returns the page's watching changes as the closed
// candidate set handed to the diff prompt and the match validator.
func (s *ChangeService) WatchingCandidates(ctx context.Context, pageID string) ([]fingerprint.Candidate, error) {
	changes, err := s.client.DetectedChange.Query().
		Where(
			detectedchange.PageIDEQ(pageID),
			detectedchange.StatusEQ(detectedchange.StatusWatching),
		).
		Order(ent.Desc(detectedchange.FieldFirstDetectedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list watching changes: %w", err)
	}

	candidates := make([]fingerprint.Candidate, len(changes))
	for i, c := range changes {
		candidates[i] = fingerprint.Candidate{
			ID:      c.ID,
			UserID:  c.UserID,
			Element: c.Element,
			Scope:   string(c.Scope),
			Status:  string(c.Status),
		}
	}
	return candidates, nil
}

// Transition applies one lifecycle transition as a CAS on (id, expected
// prior status) and writes the paired audit event in the same
// transaction. A CAS miss returns ErrConcurrentModification; an illegal
// edge returns ErrInvalidTransition.
func (s *ChangeService) Transition(ctx context.Context, req models.TransitionRequest) (string, error) {
	from := detectedchange.Status(req.FromStatus)
	to := detectedchange.Status(req.ToStatus)
	if err := detectedchange.StatusValidator(to); err != nil {
		return "", NewValidationError("to_status", err.Error())
	}
	if !transitionAllowed(from, to) {
		return "", fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
	}
	actor := changelifecycleevent.ActorType(req.ActorType)
	if err := changelifecycleevent.ActorTypeValidator(actor); err != nil {
		return "", NewValidationError("actor_type", err.Error())
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	update := tx.DetectedChange.Update().
		Where(
			detectedchange.IDEQ(req.ChangeID),
			detectedchange.StatusEQ(from),
		).
		SetStatus(to)
	// correlation_unlocked_at is non-nil iff the change ever left
	// watching, so any first departure sets it.
	if from == detectedchange.StatusWatching {
		update.SetCorrelationUnlockedAt(time.Now())
	}
	if to == detectedchange.StatusReverted {
		update.SetRevertedAt(time.Now())
	}

	count, err := update.Save(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to transition change: %w", err)
	}
	if count == 0 {
		return "", ErrConcurrentModification
	}

	eventID := uuid.New().String()
	eventBuilder := tx.ChangeLifecycleEvent.Create().
		SetID(eventID).
		SetChangeID(req.ChangeID).
		SetFromStatus(string(from)).
		SetToStatus(string(to)).
		SetReason(req.Reason).
		SetActorType(actor)
	if req.CheckpointID != "" {
		eventBuilder.SetCheckpointID(req.CheckpointID)
	}
	if _, err := eventBuilder.Save(ctx); err != nil {
		return "", fmt.Errorf("failed to create lifecycle event: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit transition: %w", err)
	}
	return eventID, nil
}

// UpdateMatched refreshes a watching change that a scan re-observed
// with an accepted match.
func (s *ChangeService) UpdateMatched(ctx context.Context, req models.UpdateMatchedChangeRequest) error {
	update := s.client.DetectedChange.UpdateOneID(req.ChangeID).
		SetAfterValue(req.AfterValue)
	if req.Description != "" {
		update.SetDescription(req.Description)
	}
	if req.MatchConfidence != nil {
		update.SetMatchConfidence(*req.MatchConfidence)
	}
	if req.MatchRationale != "" {
		update.SetMatchRationale(req.MatchRationale)
	}
	if err := update.Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update matched change: %w", err)
	}
	return nil
}

// SetHypothesis records the user's expectation for a change, fed into
// checkpoint assessor prompts.
func (s *ChangeService) SetHypothesis(ctx context.Context, changeID, hypothesis string) error {
	err := s.client.DetectedChange.UpdateOneID(changeID).
		SetHypothesis(hypothesis).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to set hypothesis: %w", err)
	}
	return nil
}

// RecordObservation stores assessor commentary and the latest evidence
// snapshot on the change row. Commentary is write-once: a change that
// already carries observation text keeps it, so the earliest horizon's
// read survives later checkpoints. The metrics snapshot always
// refreshes.
func (s *ChangeService) RecordObservation(ctx context.Context, changeID, text string, metrics map[string]interface{}) error {
	ch, err := s.client.DetectedChange.Get(ctx, changeID)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to load change for observation: %w", err)
	}

	update := ch.Update()
	if text != "" && (ch.ObservationText == nil || *ch.ObservationText == "") {
		update.SetObservationText(text)
	}
	if metrics != nil {
		update.SetCorrelationMetrics(metrics)
	}
	if err := update.Exec(ctx); err != nil {
		return fmt.Errorf("failed to record observation: %w", err)
	}
	return nil
}

// ListCheckpointEligible pages through non-reverted changes for the
// daily checkpoint sweep using keyset pagination on ID. The engine
// groups the page by user before building providers.
func (s *ChangeService) ListCheckpointEligible(ctx context.Context, afterID string, pageSize int) ([]*ent.DetectedChange, error) {
	query := s.client.DetectedChange.Query().
		Where(detectedchange.StatusNEQ(detectedchange.StatusReverted)).
		Order(ent.Asc(detectedchange.FieldID)).
		Limit(pageSize)
	if afterID != "" {
		query = query.Where(detectedchange.IDGT(afterID))
	}

	changes, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list checkpoint-eligible changes: %w", err)
	}
	return changes, nil
}

// ListLifecycleEvents returns a change's audit trail in order.
func (s *ChangeService) ListLifecycleEvents(ctx context.Context, changeID string) ([]*ent.ChangeLifecycleEvent, error) {
	events, err := s.client.ChangeLifecycleEvent.Query().
		Where(changelifecycleevent.ChangeIDEQ(changeID)).
		Order(ent.Asc(changelifecycleevent.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list lifecycle events: %w", err)
	}
	return events, nil
}
