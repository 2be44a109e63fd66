package queue

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/loupe-hq/loupe/ent"
	"github.com/loupe-hq/loupe/ent/detectedchange"
	"github.com/loupe-hq/loupe/pkg/capture"
	"github.com/loupe-hq/loupe/pkg/events"
	"github.com/loupe-hq/loupe/pkg/fingerprint"
	"github.com/loupe-hq/loupe/pkg/llm"
	"github.com/loupe-hq/loupe/pkg/models"
	"github.com/loupe-hq/loupe/pkg/services"
)

// timeNow is a test seam.
var timeNow = time.Now

// chronicleResult carries what the chronicle step produced, for the
// terminal write and completion tracking.
type chronicleResult struct {
	summaryMap map[string]interface{}
	newChanges []*ent.DetectedChange
	reverted   []string
}

func (c *chronicleResult) newChangeCount() int {
	if c == nil {
		return 0
	}
	return len(c.newChanges)
}

func (c *chronicleResult) revertedCount() int {
	if c == nil {
		return 0
	}
	return len(c.reverted)
}

// runChronicle produces the analysis's changes_summary: the comparison
// against the previous scan, change upserts, revert detection,
// suggestion tracking, and the composed progress section.
//
// A nil return means the page has no prior scan to compare against
// (first scan); the analysis completes without a chronicle. Chronicle
// failures never fail the analysis: the audit survives and a sentinel
// summary records the degradation.
func (e *Executor) runChronicle(ctx context.Context, a *ent.Analysis, page *ent.Page, audit *models.StructuredAudit, shots *capture.Result) *chronicleResult {
	log := e.logger.With("analysis_id", a.ID, "page_id", a.PageID)

	prior, err := e.analyses.LatestCompleteForPage(ctx, a.PageID)
	if err != nil {
		log.Error("Failed to load prior analysis, degrading chronicle", "error", err)
		return e.degradedChronicle(ctx, a, nil)
	}
	if prior == nil {
		log.Info("First scan for page, no chronicle to update")
		return nil
	}

	candidates, err := e.changes.WatchingCandidates(ctx, a.PageID)
	if err != nil {
		log.Error("Failed to load watching candidates, degrading chronicle", "error", err)
		return e.degradedChronicle(ctx, a, nil)
	}

	prevSummary, err := e.previousSummary(ctx, a.PageID)
	if err != nil {
		log.Warn("Failed to load previous summary, continuing without it", "error", err)
	}
	priorSuggestions, err := e.openSuggestionItems(ctx, a.PageID)
	if err != nil {
		log.Warn("Failed to load prior suggestions, continuing without them", "error", err)
	}
	histories, correlation := e.gatherChangeEvidence(ctx, candidates)

	summary, err := e.shim.PostAnalysis(ctx, &llm.PostAnalysisInput{
		AnalysisID:       a.ID,
		URL:              a.URL,
		PageFocus:        orEmpty(page.MetricFocus),
		DeployContext:    e.deployContext(ctx, a),
		Audit:            audit,
		PreviousSummary:  prevSummary,
		BaselineImageURL: orEmpty(prior.DesktopScreenshotURL),
		CurrentImageURL:  shots.DesktopURL,
		WatchingChanges:  candidates,
		PriorSuggestions: priorSuggestions,
		ChangeHistories:  histories,
	})
	if err != nil {
		log.Error("Chronicle update failed, keeping primary audit", "error", err)
		return e.degradedChronicle(ctx, a, candidates)
	}

	result := &chronicleResult{}

	// Every model-proposed match must validate against the closed
	// candidate set; anything else inserts fresh.
	matcher := fingerprint.Matcher{MinConfidence: e.cfg.Defaults.MinMatchConfidence}
	for _, item := range summary.Changes {
		match := matcher.Validate(item, candidates)
		if match.Matched != nil {
			err := e.changes.UpdateMatched(ctx, models.UpdateMatchedChangeRequest{
				ChangeID:        match.Matched.ID,
				AfterValue:      item.After,
				Description:     item.Description,
				MatchConfidence: item.MatchConfidence,
				MatchRationale:  item.MatchRationale,
			})
			if err != nil {
				log.Error("Failed to refresh matched change", "change_id", match.Matched.ID, "error", err)
			}
			continue
		}
		if match.Reason != "" {
			log.Warn("Rejected match proposal, inserting fresh",
				"proposed_id", item.MatchedChangeID,
				"reason", match.Reason)
		}
		change, err := e.changes.CreateChange(ctx, models.CreateChangeRequest{
			PageID:          a.PageID,
			UserID:          a.UserID,
			Element:         item.Element,
			Scope:           item.Scope,
			BeforeValue:     item.Before,
			AfterValue:      item.After,
			Description:     item.Description,
			AnalysisID:      a.ID,
			MatchConfidence: item.MatchConfidence,
			MatchRationale:  item.MatchRationale,
		})
		if errors.Is(err, services.ErrAlreadyExists) {
			// Same-day duplicate detection collapses to a no-op.
			continue
		}
		if err != nil {
			log.Error("Failed to create change", "element", item.Element, "error", err)
			continue
		}
		result.newChanges = append(result.newChanges, change)
		e.publishChange(ctx, a.PageID, change.ID, change.Element, detectedchange.StatusWatching)
	}

	// Reverts: only candidate-set members still watching and owned by
	// this user may be closed out.
	for _, id := range fingerprint.ValidReverts(summary.RevertedChangeIDs, candidates, a.UserID) {
		_, err := e.changes.Transition(ctx, models.TransitionRequest{
			ChangeID:   id,
			FromStatus: string(detectedchange.StatusWatching),
			ToStatus:   string(detectedchange.StatusReverted),
			Reason:     "change no longer present on page",
			ActorType:  "system",
		})
		if errors.Is(err, services.ErrConcurrentModification) {
			continue
		}
		if err != nil {
			log.Error("Failed to revert change", "change_id", id, "error", err)
			continue
		}
		result.reverted = append(result.reverted, id)
		e.publishChange(ctx, a.PageID, id, "", detectedchange.StatusReverted)
	}
	summary.RevertedChangeIDs = result.reverted

	if err := e.suggestions.UpsertFromScan(ctx, a.PageID, a.UserID, summary.Suggestions); err != nil {
		log.Error("Failed to upsert suggestions", "error", err)
	}

	// Observations may only reference known change ids: the pre-scan
	// candidate set plus rows this scan inserted. Survivors are merged
	// onto their change rows.
	allowed := make(map[string]bool, len(candidates)+len(result.newChanges))
	for _, c := range candidates {
		allowed[c.ID] = true
	}
	for _, ch := range result.newChanges {
		allowed[ch.ID] = true
	}
	summary.Observations = fingerprint.ValidObservations(summary.Observations, allowed)
	for _, o := range summary.Observations {
		if err := e.changes.RecordObservation(ctx, o.ChangeID, o.Text, nil); err != nil {
			log.Error("Failed to attach observation", "change_id", o.ChangeID, "error", err)
		}
	}

	// Correlation is server-composed evidence; whatever the model
	// reported for it is discarded.
	summary.Correlation = correlation

	// The composer owns progress; whatever the model reported is
	// overwritten. Revert handling above already changed rows, so this
	// reads post-revert state.
	section, outcome := e.composer.ComposeWithFallback(ctx, a.PageID, watchingItems(summary.Changes, candidates))
	summary.Progress = section
	log.Info("Chronicle progress composed", "outcome", outcome)

	m, err := models.ToMap(summary)
	if err != nil {
		log.Error("Failed to encode chronicle summary", "error", err)
		return e.degradedChronicle(ctx, a, candidates)
	}
	result.summaryMap = m
	return result
}

// degradedChronicle builds the sentinel summary written when the
// chronicle step fails after the primary audit succeeded. Progress
// still runs through the composer ladder so the UI keeps its lists.
func (e *Executor) degradedChronicle(ctx context.Context, a *ent.Analysis, candidates []fingerprint.Candidate) *chronicleResult {
	scanWatching := make([]models.ProgressItem, 0, len(candidates))
	for _, c := range candidates {
		scanWatching = append(scanWatching, models.ProgressItem{
			ID:      c.ID,
			Element: c.Element,
			Status:  c.Status,
		})
	}
	section, _ := e.composer.ComposeWithFallback(ctx, a.PageID, scanWatching)

	m, err := models.ToMap(models.ChangesSummary{
		Error:       models.SummaryErrorPostAnalysisFailed,
		Changes:     []models.ChangeItem{},
		Suggestions: []models.SuggestionItem{},
		Correlation: &models.CorrelationSection{Metrics: []models.CorrelationMetric{}},
		Progress:    section,
	})
	if err != nil {
		e.logger.Error("Failed to encode degraded summary", "analysis_id", a.ID, "error", err)
		return nil
	}
	return &chronicleResult{summaryMap: m}
}

// gatherChangeEvidence loads per-change hypotheses, checkpoint
// timelines, and verdict feedback for the chronicle prompt, plus the
// correlation section composed from the latest checkpoint metrics of
// each tracked change.
func (e *Executor) gatherChangeEvidence(ctx context.Context, candidates []fingerprint.Candidate) ([]llm.ChangeHistory, *models.CorrelationSection) {
	histories := make([]llm.ChangeHistory, 0, len(candidates))
	correlation := &models.CorrelationSection{Metrics: []models.CorrelationMetric{}}

	for _, cand := range candidates {
		history := llm.ChangeHistory{ChangeID: cand.ID, Element: cand.Element}

		ch, err := e.changes.GetChange(ctx, cand.ID)
		if err != nil {
			e.logger.Warn("Failed to load change for evidence", "change_id", cand.ID, "error", err)
		} else if ch.Hypothesis != nil {
			history.Hypothesis = *ch.Hypothesis
		}

		cps, err := e.checkpoints.ListForChange(ctx, cand.ID)
		if err != nil {
			e.logger.Warn("Failed to load checkpoints for evidence", "change_id", cand.ID, "error", err)
			cps = nil
		}
		for _, cp := range cps {
			history.Checkpoints = append(history.Checkpoints, llm.PriorCheckpoint{
				HorizonDays: cp.HorizonDays,
				Assessment:  string(cp.Assessment),
				Reasoning:   cp.Reasoning,
			})
		}
		if len(cps) > 0 {
			latest := cps[len(cps)-1]
			var envelope models.MetricsEnvelope
			if err := models.FromMap(latest.Metrics, &envelope); err == nil {
				for _, m := range envelope.Metrics {
					correlation.Metrics = append(correlation.Metrics, models.CorrelationMetric{
						Name:         m.Name,
						FriendlyName: m.FriendlyName,
						Change:       m.ChangePercent,
						Assessment:   string(latest.Assessment),
					})
				}
			}
		}

		notes, err := e.feedback.NotesForChange(ctx, cand.ID)
		if err != nil {
			e.logger.Warn("Failed to load feedback for evidence", "change_id", cand.ID, "error", err)
			notes = nil
		}
		history.Feedback = notes

		histories = append(histories, history)
	}

	correlation.HasEnoughData = len(correlation.Metrics) > 0
	return histories, correlation
}

// deployContext describes the deploy that triggered this scan, or ""
// for scheduled and manual scans.
func (e *Executor) deployContext(ctx context.Context, a *ent.Analysis) string {
	if a.DeployID == nil || *a.DeployID == "" {
		return ""
	}
	d, err := e.deploys.GetDeploy(ctx, *a.DeployID)
	if err != nil {
		e.logger.Warn("Failed to load deploy for chronicle", "deploy_id", *a.DeployID, "error", err)
		return ""
	}
	out := fmt.Sprintf("deploy %s", d.CommitSha)
	if d.CommitMessage != nil && *d.CommitMessage != "" {
		out += ": " + *d.CommitMessage
	}
	return out
}

// previousSummary loads and decodes the page's last chronicle, or nil.
func (e *Executor) previousSummary(ctx context.Context, pageID string) (*models.ChangesSummary, error) {
	prior, err := e.analyses.LatestChronicleForPage(ctx, pageID)
	if err != nil || prior == nil {
		return nil, err
	}
	var summary models.ChangesSummary
	if err := models.FromMap(prior.ChangesSummary, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// openSuggestionItems maps the page's open suggestions into prompt form.
func (e *Executor) openSuggestionItems(ctx context.Context, pageID string) ([]models.SuggestionItem, error) {
	open, err := e.suggestions.ListOpenForPage(ctx, pageID)
	if err != nil {
		return nil, err
	}
	items := make([]models.SuggestionItem, 0, len(open))
	for _, s := range open {
		items = append(items, models.SuggestionItem{
			Title:        s.Title,
			Element:      s.Element,
			SuggestedFix: s.SuggestedFix,
			Impact:       string(s.Impact),
		})
	}
	return items, nil
}

// watchingItems builds the preserve-watching fallback payload from the
// scan's own observations plus the pre-scan candidate set.
func watchingItems(scanChanges []models.ChangeItem, candidates []fingerprint.Candidate) []models.ProgressItem {
	seen := make(map[string]bool, len(candidates))
	items := make([]models.ProgressItem, 0, len(candidates)+len(scanChanges))
	for _, c := range candidates {
		seen[c.ID] = true
		items = append(items, models.ProgressItem{
			ID:      c.ID,
			Element: c.Element,
			Status:  c.Status,
		})
	}
	for _, ch := range scanChanges {
		if ch.MatchedChangeID != "" && seen[ch.MatchedChangeID] {
			continue
		}
		items = append(items, models.ProgressItem{
			Element: ch.Element,
			Status:  string(detectedchange.StatusWatching),
		})
	}
	return items
}

// publishChange broadcasts a change lifecycle event. Best-effort.
func (e *Executor) publishChange(ctx context.Context, pageID, changeID, element string, status detectedchange.Status) {
	_ = e.publisher.PublishChangeStatus(ctx, events.ChangeStatusPayload{
		ChangeID: changeID,
		PageID:   pageID,
		Element:  element,
		Status:   status,
	})
}
