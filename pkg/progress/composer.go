// Package progress derives the user-facing {validated, watching, open}
// summary exclusively from database state. It is the sole writer of
// the progress section of changes_summary; model-reported progress is
// always overwritten.
package progress

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/loupe-hq/loupe/ent"
	"github.com/loupe-hq/loupe/ent/detectedchange"
	"github.com/loupe-hq/loupe/pkg/models"
	"github.com/loupe-hq/loupe/pkg/services"
)

// Outcome tags how a composition was produced, for monitoring.
const (
	OutcomeCanonical        = "canonical"
	OutcomeSnapshot         = "snapshot_fallback"
	OutcomePreserveWatching = "preserve_watching"
)

// Composer builds canonical progress sections.
type Composer struct {
	changes     *services.ChangeService
	suggestions *services.SuggestionService
	analyses    *services.AnalysisService
	logger      *slog.Logger
}

// NewComposer creates a progress composer.
func NewComposer(changes *services.ChangeService, suggestions *services.SuggestionService, analyses *services.AnalysisService, logger *slog.Logger) *Composer {
	return &Composer{
		changes:     changes,
		suggestions: suggestions,
		analyses:    analyses,
		logger:      logger.With("component", "progress_composer"),
	}
}

// Compose builds the canonical section from live rows. Fail-closed:
// any query error propagates so the caller can fall back.
func (c *Composer) Compose(ctx context.Context, pageID string) (models.ProgressSection, error) {
	changes, err := c.changes.ListForPage(ctx, pageID)
	if err != nil {
		return models.ProgressSection{}, fmt.Errorf("failed to load changes for composition: %w", err)
	}
	open, err := c.suggestions.ListOpenForPage(ctx, pageID)
	if err != nil {
		return models.ProgressSection{}, fmt.Errorf("failed to load suggestions for composition: %w", err)
	}
	return BuildSection(changes, open), nil
}

// ComposeWithFallback applies the full fallback ladder: canonical, then
// the last persisted snapshot, then a minimal payload that preserves
// the scan's watching items so they do not vanish from the UI. The
// returned outcome tag is one of the Outcome constants.
func (c *Composer) ComposeWithFallback(ctx context.Context, pageID string, scanWatching []models.ProgressItem) (models.ProgressSection, string) {
	section, err := c.Compose(ctx, pageID)
	if err == nil {
		c.logger.Debug("Composed canonical progress", "page_id", pageID)
		return section, OutcomeCanonical
	}
	c.logger.Warn("Canonical composition failed, trying last snapshot",
		"page_id", pageID,
		"error", err)

	snapshot, snapErr := c.lastSnapshot(ctx, pageID)
	if snapErr == nil {
		c.logger.Warn("Using last progress snapshot",
			"page_id", pageID,
			"outcome", OutcomeSnapshot)
		return snapshot, OutcomeSnapshot
	}
	c.logger.Error("Progress snapshot fallback also failed, preserving watching items",
		"page_id", pageID,
		"outcome", OutcomePreserveWatching,
		"error", snapErr)

	return models.ProgressSection{
		Watching:       len(scanWatching),
		WatchingItems:  scanWatching,
		ValidatedItems: []models.ProgressItem{},
		OpenItems:      []models.ProgressItem{},
	}, OutcomePreserveWatching
}

// lastSnapshot reads the progress section persisted on the page's most
// recent chronicle analysis.
func (c *Composer) lastSnapshot(ctx context.Context, pageID string) (models.ProgressSection, error) {
	a, err := c.analyses.LatestChronicleForPage(ctx, pageID)
	if err != nil {
		return models.ProgressSection{}, err
	}
	if a == nil {
		return models.ProgressSection{}, fmt.Errorf("no prior chronicle for page %s", pageID)
	}
	var summary models.ChangesSummary
	if err := models.FromMap(a.ChangesSummary, &summary); err != nil {
		return models.ProgressSection{}, fmt.Errorf("failed to decode prior summary: %w", err)
	}
	return summary.Progress, nil
}

// BuildSection is the pure projection: partition changes by status,
// order each list, and attach open suggestions.
func BuildSection(changes []*ent.DetectedChange, open []*ent.TrackedSuggestion) models.ProgressSection {
	var validated, watching []*ent.DetectedChange
	for _, ch := range changes {
		switch ch.Status {
		case detectedchange.StatusValidated:
			validated = append(validated, ch)
		case detectedchange.StatusWatching:
			watching = append(watching, ch)
		}
	}

	// Validated: most recently unlocked first.
	sort.SliceStable(validated, func(i, j int) bool {
		ti, tj := validated[i].CorrelationUnlockedAt, validated[j].CorrelationUnlockedAt
		if ti == nil || tj == nil {
			return tj == nil && ti != nil
		}
		return ti.After(*tj)
	})
	// Watching: most recently detected first.
	sort.SliceStable(watching, func(i, j int) bool {
		return watching[i].FirstDetectedAt.After(watching[j].FirstDetectedAt)
	})
	// Open: highest impact first, then most-often suggested.
	sort.SliceStable(open, func(i, j int) bool {
		ri, rj := impactRank(string(open[i].Impact)), impactRank(string(open[j].Impact))
		if ri != rj {
			return ri < rj
		}
		return open[i].TimesSuggested > open[j].TimesSuggested
	})

	section := models.ProgressSection{
		Validated:      len(validated),
		Watching:       len(watching),
		Open:           len(open),
		ValidatedItems: make([]models.ProgressItem, 0, len(validated)),
		WatchingItems:  make([]models.ProgressItem, 0, len(watching)),
		OpenItems:      make([]models.ProgressItem, 0, len(open)),
	}
	for _, ch := range validated {
		section.ValidatedItems = append(section.ValidatedItems, changeItem(ch))
	}
	for _, ch := range watching {
		section.WatchingItems = append(section.WatchingItems, changeItem(ch))
	}
	for _, sg := range open {
		section.OpenItems = append(section.OpenItems, models.ProgressItem{
			ID:             sg.ID,
			Title:          sg.Title,
			Element:        sg.Element,
			Impact:         string(sg.Impact),
			TimesSuggested: sg.TimesSuggested,
		})
	}
	return section
}

func changeItem(ch *ent.DetectedChange) models.ProgressItem {
	return models.ProgressItem{
		ID:      ch.ID,
		Element: ch.Element,
		Status:  string(ch.Status),
	}
}

func impactRank(impact string) int {
	switch impact {
	case "high":
		return 0
	case "medium":
		return 1
	default:
		return 2
	}
}
