package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/loupe-hq/loupe/ent"
	"github.com/loupe-hq/loupe/ent/analysis"
	"github.com/loupe-hq/loupe/ent/page"
)

// CreatePageInput contains fields for registering a watched page.
type CreatePageInput struct {
	UserID        string
	URL           string
	ScanFrequency string
	MetricFocus   string
}

// PageService manages watched pages and their baseline pointers.
type PageService struct {
	client *ent.Client
}

// NewPageService creates a new PageService.
func NewPageService(client *ent.Client) *PageService {
	return &PageService{client: client}
}

// CreatePage registers a new watched page. (user_id, url) is unique.
func (s *PageService) CreatePage(ctx context.Context, input CreatePageInput) (*ent.Page, error) {
	if input.UserID == "" {
		return nil, NewValidationError("user_id", "required")
	}
	if input.URL == "" {
		return nil, NewValidationError("url", "required")
	}
	freq := page.ScanFrequencyManual
	if input.ScanFrequency != "" {
		freq = page.ScanFrequency(input.ScanFrequency)
		if err := page.ScanFrequencyValidator(freq); err != nil {
			return nil, NewValidationError("scan_frequency", err.Error())
		}
	}

	builder := s.client.Page.Create().
		SetID(uuid.New().String()).
		SetUserID(input.UserID).
		SetURL(input.URL).
		SetScanFrequency(freq)
	if input.MetricFocus != "" {
		builder.SetMetricFocus(input.MetricFocus)
	}

	p, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create page: %w", err)
	}
	return p, nil
}

// GetPage retrieves a page by ID.
func (s *PageService) GetPage(ctx context.Context, pageID string) (*ent.Page, error) {
	p, err := s.client.Page.Get(ctx, pageID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get page: %w", err)
	}
	return p, nil
}

// ListPagesForUser lists a user's pages ordered by creation.
func (s *PageService) ListPagesForUser(ctx context.Context, userID string) ([]*ent.Page, error) {
	pages, err := s.client.Page.Query().
		Where(page.UserIDEQ(userID)).
		Order(ent.Asc(page.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pages: %w", err)
	}
	return pages, nil
}

// ListPagesByFrequency lists pages on a scan cadence, for the
// scheduler's daily and weekly sweeps.
func (s *PageService) ListPagesByFrequency(ctx context.Context, freq page.ScanFrequency) ([]*ent.Page, error) {
	pages, err := s.client.Page.Query().
		Where(page.ScanFrequencyEQ(freq)).
		Order(ent.Asc(page.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list pages by frequency: %w", err)
	}
	return pages, nil
}

// SetStableBaseline points the page at the analysis quick-diffs compare
// against. The analysis must be a complete analysis of this page.
func (s *PageService) SetStableBaseline(ctx context.Context, pageID, analysisID string) error {
	ok, err := s.client.Analysis.Query().
		Where(
			analysis.IDEQ(analysisID),
			analysis.PageIDEQ(pageID),
			analysis.StatusEQ(analysis.StatusComplete),
		).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("failed to verify baseline analysis: %w", err)
	}
	if !ok {
		return NewValidationError("analysis_id", "baseline must be a complete analysis of this page")
	}

	err = s.client.Page.UpdateOneID(pageID).
		SetStableBaselineID(analysisID).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to set stable baseline: %w", err)
	}
	return nil
}

// RecordScan updates the page's last-scan pointer after a terminal
// analysis.
func (s *PageService) RecordScan(ctx context.Context, pageID, analysisID string) error {
	err := s.client.Page.UpdateOneID(pageID).
		SetLastScanID(analysisID).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to record scan: %w", err)
	}
	return nil
}

// BaselineFresh reports whether the page's stable baseline exists and
// is younger than maxAgeDays. A stale or missing baseline forces the
// full-analysis path on deploys.
func (s *PageService) BaselineFresh(ctx context.Context, p *ent.Page, maxAgeDays int, now time.Time) (*ent.Analysis, bool, error) {
	if p.StableBaselineID == nil || *p.StableBaselineID == "" {
		return nil, false, nil
	}
	base, err := s.client.Analysis.Query().
		Where(
			analysis.IDEQ(*p.StableBaselineID),
			analysis.StatusEQ(analysis.StatusComplete),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to load baseline analysis: %w", err)
	}
	cutoff := now.AddDate(0, 0, -maxAgeDays)
	if base.CreatedAt.Before(cutoff) {
		return base, false, nil
	}
	if base.DesktopScreenshotURL == nil || *base.DesktopScreenshotURL == "" {
		return base, false, nil
	}
	return base, true, nil
}
