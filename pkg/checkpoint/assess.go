package checkpoint

import (
	"context"
	"log/slog"
	"time"

	"github.com/loupe-hq/loupe/ent"
	"github.com/loupe-hq/loupe/pkg/analytics"
	"github.com/loupe-hq/loupe/pkg/horizon"
	"github.com/loupe-hq/loupe/pkg/llm"
	"github.com/loupe-hq/loupe/pkg/models"
)

// gatherMetrics queries the provider for every default metric over the
// horizon's windows. Provider errors drop that metric and keep going;
// an envelope with no data at all is tagged disconnected so the
// checkpoint row explains its own inconclusiveness.
func (e *Engine) gatherMetrics(ctx context.Context, provider analytics.Provider, pageURL string, firstDetected time.Time, horizonDays int) models.MetricsEnvelope {
	before, after := horizon.Windows(firstDetected, horizonDays)

	var envelope models.MetricsEnvelope
	for _, metric := range analytics.DefaultMetrics {
		queryCtx, cancel := context.WithTimeout(ctx, e.cfg.Checkpoint.ProviderTimeout)
		deltas, err := provider.MetricsForWindow(queryCtx, pageURL, metric, before, after)
		cancel()
		if err != nil {
			e.logger.Warn("Metric query failed",
				"provider", provider.Name(),
				"metric", metric,
				"error", err)
			continue
		}
		envelope.Metrics = append(envelope.Metrics, deltas...)
	}

	if envelope.Empty() {
		envelope.Reason = models.MetricsReasonDisconnected
		return envelope
	}
	envelope.Sources = []string{provider.Name()}
	return envelope
}

// assess produces the verdict for one change at one horizon. The
// assessor sees the page's stated metric focus and the verdicts of
// earlier horizons alongside the metric evidence. The LLM gets the
// retry budget from config; any failure falls through to the
// deterministic rule-based assessor, which always answers.
func (e *Engine) assess(ctx context.Context, ch *ent.DetectedChange, page *ent.Page, horizonDays int, envelope models.MetricsEnvelope, log *slog.Logger) models.CheckpointAssessment {
	notes, err := e.feedback.NotesForChange(ctx, ch.ID)
	if err != nil {
		log.Warn("Failed to load feedback notes, assessing without them", "error", err)
		notes = nil
	}
	if ch.Hypothesis != nil && *ch.Hypothesis != "" {
		notes = append(notes, "stated expectation for this change: "+*ch.Hypothesis)
	}

	priors, err := e.checkpoints.ListForChange(ctx, ch.ID)
	if err != nil {
		log.Warn("Failed to load prior checkpoints, assessing without them", "error", err)
		priors = nil
	}
	timeline := make([]llm.PriorCheckpoint, 0, len(priors))
	for _, cp := range priors {
		timeline = append(timeline, llm.PriorCheckpoint{
			HorizonDays: cp.HorizonDays,
			Assessment:  string(cp.Assessment),
			Reasoning:   cp.Reasoning,
		})
	}

	focus := ""
	if page.MetricFocus != nil {
		focus = *page.MetricFocus
	}

	assessCtx, cancel := context.WithTimeout(ctx, e.cfg.Checkpoint.AssessorTimeout)
	defer cancel()

	assessment, err := e.shim.CheckpointAssessment(assessCtx, &llm.AssessmentInput{
		ChangeID:         ch.ID,
		Element:          ch.Element,
		Before:           ch.BeforeValue,
		After:            ch.AfterValue,
		HorizonDays:      horizonDays,
		PageFocus:        focus,
		Metrics:          envelope,
		PriorCheckpoints: timeline,
		FeedbackNotes:    notes,
	}, e.cfg.Checkpoint.AssessorMaxAttempts)
	if err != nil {
		log.Warn("Assessor unavailable, using rule-based fallback",
			"horizon_days", horizonDays,
			"error", err)
		return horizon.FallbackAssess(envelope.Metrics)
	}
	return assessment
}
