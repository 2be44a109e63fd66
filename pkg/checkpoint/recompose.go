package checkpoint

import (
	"context"

	"github.com/loupe-hq/loupe/pkg/fingerprint"
	"github.com/loupe-hq/loupe/pkg/llm"
	"github.com/loupe-hq/loupe/pkg/models"
)

// recomposePages refreshes the materialized progress section on the
// latest chronicle of every page whose changes transitioned this run,
// and optionally rewrites the strategy narrative. Recompose failures
// are logged and skipped; the transitions themselves already landed.
func (e *Engine) recomposePages(ctx context.Context, touched map[string]bool, stats *RunStats) {
	for pageID := range touched {
		if err := e.recomposePage(ctx, pageID); err != nil {
			e.logger.Error("Failed to recompose page after checkpoint", "page_id", pageID, "error", err)
			continue
		}
		stats.PagesRecomposed++
	}
}

func (e *Engine) recomposePage(ctx context.Context, pageID string) error {
	latest, err := e.analyses.LatestChronicleForPage(ctx, pageID)
	if err != nil {
		return err
	}
	if latest == nil {
		// Nothing materialized yet; the next scan composes from scratch.
		return nil
	}

	var summary models.ChangesSummary
	if err := models.FromMap(latest.ChangesSummary, &summary); err != nil {
		return err
	}

	section, err := e.composer.Compose(ctx, pageID)
	if err != nil {
		return err
	}
	summary.Progress = section

	if e.cfg.Checkpoint.Narrative() {
		e.refreshNarrative(ctx, pageID, &summary)
	}

	m, err := models.ToMap(summary)
	if err != nil {
		return err
	}
	return e.analyses.SetChangesSummary(ctx, latest.ID, m)
}

// refreshNarrative asks for an updated strategy narrative over the
// recomposed progress. Optional by contract: on any failure the summary
// keeps its previous narrative fields.
func (e *Engine) refreshNarrative(ctx context.Context, pageID string, summary *models.ChangesSummary) {
	page, err := e.pages.GetPage(ctx, pageID)
	if err != nil {
		e.logger.Warn("Failed to load page for narrative", "page_id", pageID, "error", err)
		return
	}

	result, err := e.shim.StrategyNarrative(ctx, &llm.NarrativeInput{
		PageID:             pageID,
		URL:                page.URL,
		Progress:           summary.Progress,
		RunningSummary:     summary.RunningSummary,
		RecentObservations: summary.Observations,
	})
	if err != nil {
		e.logger.Warn("Narrative refresh failed, keeping previous", "page_id", pageID, "error", err)
		return
	}

	// Model-proposed observation ids are only kept when they name a
	// change present in the page's progress lists.
	allowed := make(map[string]bool)
	for _, items := range [][]models.ProgressItem{
		summary.Progress.ValidatedItems,
		summary.Progress.WatchingItems,
		summary.Progress.OpenItems,
	} {
		for _, it := range items {
			if it.ID != "" {
				allowed[it.ID] = true
			}
		}
	}

	summary.StrategyNarrative = result.StrategyNarrative
	if result.RunningSummary != "" {
		summary.RunningSummary = result.RunningSummary
	}
	if obs := fingerprint.ValidObservations(result.Observations, allowed); obs != nil {
		summary.Observations = obs
	}
}
