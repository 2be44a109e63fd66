package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/loupe-hq/loupe/ent"
	"github.com/loupe-hq/loupe/ent/analysis"
	"github.com/loupe-hq/loupe/pkg/models"
)

// AnalysisService manages analysis rows through their pending →
// processing → terminal lifecycle.
type AnalysisService struct {
	client *ent.Client
}

// NewAnalysisService creates a new AnalysisService.
func NewAnalysisService(client *ent.Client) *AnalysisService {
	return &AnalysisService{client: client}
}

// CreateAnalysis inserts a pending analysis for the worker pool to
// claim. The caller may supply the ID (webhook idempotency) or leave it
// empty.
func (s *AnalysisService) CreateAnalysis(ctx context.Context, req models.CreateAnalysisRequest) (*ent.Analysis, error) {
	if req.PageID == "" {
		return nil, NewValidationError("page_id", "required")
	}
	if req.UserID == "" {
		return nil, NewValidationError("user_id", "required")
	}
	if req.URL == "" {
		return nil, NewValidationError("url", "required")
	}
	id := req.AnalysisID
	if id == "" {
		id = uuid.New().String()
	}
	trigger := analysis.TriggerType(req.TriggerType)
	if req.TriggerType == "" {
		trigger = analysis.TriggerTypeManual
	} else if err := analysis.TriggerTypeValidator(trigger); err != nil {
		return nil, NewValidationError("trigger_type", err.Error())
	}

	builder := s.client.Analysis.Create().
		SetID(id).
		SetPageID(req.PageID).
		SetUserID(req.UserID).
		SetURL(req.URL).
		SetStatus(analysis.StatusPending).
		SetTriggerType(trigger)
	if req.ParentAnalysisID != "" {
		builder.SetParentAnalysisID(req.ParentAnalysisID)
	}
	if req.DeployID != "" {
		builder.SetDeployID(req.DeployID)
	}

	a, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create analysis: %w", err)
	}
	return a, nil
}

// GetAnalysis retrieves an analysis by ID.
func (s *AnalysisService) GetAnalysis(ctx context.Context, analysisID string) (*ent.Analysis, error) {
	a, err := s.client.Analysis.Get(ctx, analysisID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get analysis: %w", err)
	}
	return a, nil
}

// ListAnalyses lists analyses with filtering and pagination, newest
// first.
func (s *AnalysisService) ListAnalyses(ctx context.Context, filters models.AnalysisFilters) ([]*ent.Analysis, int, error) {
	query := s.client.Analysis.Query()

	if filters.PageID != "" {
		query = query.Where(analysis.PageIDEQ(filters.PageID))
	}
	if filters.UserID != "" {
		query = query.Where(analysis.UserIDEQ(filters.UserID))
	}
	if filters.Status != "" {
		query = query.Where(analysis.StatusEQ(analysis.Status(filters.Status)))
	}
	if filters.TriggerType != "" {
		query = query.Where(analysis.TriggerTypeEQ(analysis.TriggerType(filters.TriggerType)))
	}
	if filters.CreatedAfter != nil {
		query = query.Where(analysis.CreatedAtGTE(*filters.CreatedAfter))
	}
	if filters.CreatedBefore != nil {
		query = query.Where(analysis.CreatedAtLT(*filters.CreatedBefore))
	}

	totalCount, err := query.Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count analyses: %w", err)
	}

	limit := filters.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := filters.Offset
	if offset < 0 {
		offset = 0
	}

	analyses, err := query.
		Limit(limit).
		Offset(offset).
		Order(ent.Desc(analysis.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list analyses: %w", err)
	}
	return analyses, totalCount, nil
}

// Heartbeat refreshes the orphan-detection timestamp for a processing
// analysis.
func (s *AnalysisService) Heartbeat(ctx context.Context, analysisID string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.Analysis.UpdateOneID(analysisID).
		SetLastInteractionAt(time.Now()).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to heartbeat analysis: %w", err)
	}
	return nil
}

// SetScreenshots records capture URLs as soon as they exist, before the
// audit runs, so a later failure still leaves the captures visible.
func (s *AnalysisService) SetScreenshots(ctx context.Context, analysisID, desktopURL, mobileURL string) error {
	update := s.client.Analysis.UpdateOneID(analysisID).
		SetDesktopScreenshotURL(desktopURL).
		SetLastInteractionAt(time.Now())
	if mobileURL != "" {
		update.SetMobileScreenshotURL(mobileURL)
	}
	if err := update.Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to set screenshots: %w", err)
	}
	return nil
}

// CompleteInput carries the terminal write for a successful analysis.
type CompleteInput struct {
	FreeformOutput   string
	StructuredOutput map[string]interface{}
	ChangesSummary   map[string]interface{}
}

// CompleteAnalysis writes the terminal complete state. Uses a
// background context so an HTTP cancellation cannot lose a finished
// audit.
func (s *AnalysisService) CompleteAnalysis(ctx context.Context, analysisID string, input CompleteInput) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	update := s.client.Analysis.UpdateOneID(analysisID).
		SetStatus(analysis.StatusComplete).
		SetCompletedAt(time.Now()).
		SetLastInteractionAt(time.Now())
	if input.FreeformOutput != "" {
		update.SetFreeformOutput(input.FreeformOutput)
	}
	if input.StructuredOutput != nil {
		update.SetStructuredOutput(input.StructuredOutput)
	}
	if input.ChangesSummary != nil {
		update.SetChangesSummary(input.ChangesSummary)
	}

	if err := update.Exec(writeCtx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to complete analysis: %w", err)
	}
	return nil
}

// FailAnalysis writes the terminal failed state with the error message.
func (s *AnalysisService) FailAnalysis(ctx context.Context, analysisID, errorMessage string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := s.client.Analysis.UpdateOneID(analysisID).
		SetStatus(analysis.StatusFailed).
		SetErrorMessage(errorMessage).
		SetCompletedAt(time.Now()).
		Exec(writeCtx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to mark analysis failed: %w", err)
	}
	return nil
}

// RequeueForRetry sends a processing analysis back to pending so a
// worker reclaims it. Used for workflow retries and recovered orphans
// with remaining attempt budget.
func (s *AnalysisService) RequeueForRetry(ctx context.Context, analysisID string) error {
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	count, err := s.client.Analysis.Update().
		Where(
			analysis.IDEQ(analysisID),
			analysis.StatusEQ(analysis.StatusProcessing),
		).
		SetStatus(analysis.StatusPending).
		ClearPodID().
		ClearLastInteractionAt().
		Save(writeCtx)
	if err != nil {
		return fmt.Errorf("failed to requeue analysis: %w", err)
	}
	if count == 0 {
		return ErrConcurrentModification
	}
	return nil
}

// SetChangesSummary overwrites the changes_summary of a terminal
// analysis. This is the only mutation allowed on terminal rows; the
// checkpoint recomposition path uses it.
func (s *AnalysisService) SetChangesSummary(ctx context.Context, analysisID string, summary map[string]interface{}) error {
	err := s.client.Analysis.UpdateOneID(analysisID).
		SetChangesSummary(summary).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to set changes summary: %w", err)
	}
	return nil
}

// LatestCompleteForPage returns the page's newest complete analysis, or
// nil when none exists.
func (s *AnalysisService) LatestCompleteForPage(ctx context.Context, pageID string) (*ent.Analysis, error) {
	a, err := s.client.Analysis.Query().
		Where(
			analysis.PageIDEQ(pageID),
			analysis.StatusEQ(analysis.StatusComplete),
		).
		Order(ent.Desc(analysis.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query latest analysis: %w", err)
	}
	return a, nil
}

// LatestChronicleForPage returns the newest complete analysis of the
// page that carries a changes_summary, or nil. The composer's fallback
// path reads it.
func (s *AnalysisService) LatestChronicleForPage(ctx context.Context, pageID string) (*ent.Analysis, error) {
	a, err := s.client.Analysis.Query().
		Where(
			analysis.PageIDEQ(pageID),
			analysis.StatusEQ(analysis.StatusComplete),
			analysis.ChangesSummaryNotNil(),
		).
		Order(ent.Desc(analysis.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query latest chronicle: %w", err)
	}
	return a, nil
}

// HasScanForDay reports whether the page already has a scan with this
// trigger created on the given UTC day. The scheduler's idempotency
// check.
func (s *AnalysisService) HasScanForDay(ctx context.Context, pageID string, trigger analysis.TriggerType, day time.Time) (bool, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 1)

	ok, err := s.client.Analysis.Query().
		Where(
			analysis.PageIDEQ(pageID),
			analysis.TriggerTypeEQ(trigger),
			analysis.CreatedAtGTE(start),
			analysis.CreatedAtLT(end),
		).
		Exist(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check scan idempotency: %w", err)
	}
	return ok, nil
}

// ListCompletedScheduledSince returns scheduled (daily or weekly)
// analyses completed after the cutoff, oldest first. The digest job
// aggregates these per user.
func (s *AnalysisService) ListCompletedScheduledSince(ctx context.Context, since time.Time) ([]*ent.Analysis, error) {
	analyses, err := s.client.Analysis.Query().
		Where(
			analysis.StatusEQ(analysis.StatusComplete),
			analysis.TriggerTypeIn(analysis.TriggerTypeDaily, analysis.TriggerTypeWeekly),
			analysis.CompletedAtGTE(since),
		).
		Order(ent.Asc(analysis.FieldCompletedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list completed scheduled analyses: %w", err)
	}
	return analyses, nil
}

// FindOrphaned finds processing analyses whose heartbeat went stale.
func (s *AnalysisService) FindOrphaned(ctx context.Context, threshold time.Duration) ([]*ent.Analysis, error) {
	cutoff := time.Now().Add(-threshold)

	orphans, err := s.client.Analysis.Query().
		Where(
			analysis.StatusEQ(analysis.StatusProcessing),
			analysis.LastInteractionAtNotNil(),
			analysis.LastInteractionAtLT(cutoff),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to find orphaned analyses: %w", err)
	}
	return orphans, nil
}
