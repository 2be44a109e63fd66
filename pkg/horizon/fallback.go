package horizon

import (
	"fmt"
	"math"
	"strings"

	"github.com/loupe-hq/loupe/pkg/models"
)

// NeutralBandPercent is the absolute change_percent below which a
// metric is considered noise.
const NeutralBandPercent = 5.0

// Fallback confidence levels. The LLM assessor floats in (0,1]; the
// deterministic path is deliberately low-confidence.
const (
	fallbackConfidenceNoMetrics = 0.0
	fallbackConfidenceMetrics   = 0.3
)

// FallbackAssess is the deterministic assessor used when the LLM is
// unavailable. Given the same metrics list it always returns the same
// assessment and confidence.
//
// A metric with |change_percent| <= 5 is neutral; positive change is
// improved; negative is regressed. Overall: majority wins; a tie is
// neutral, or inconclusive when there are no metrics at all.
func FallbackAssess(metrics []models.MetricDelta) models.CheckpointAssessment {
	if len(metrics) == 0 {
		conf := fallbackConfidenceNoMetrics
		return models.CheckpointAssessment{
			Assessment: models.AssessmentInconclusive,
			Confidence: &conf,
			Reasoning:  "No analytics data was available for either window, so no correlation could be established.",
		}
	}

	var improved, regressed, neutral int
	for _, m := range metrics {
		switch {
		case math.Abs(m.ChangePercent) <= NeutralBandPercent:
			neutral++
		case m.ChangePercent > 0:
			improved++
		default:
			regressed++
		}
	}

	assessment := models.AssessmentNeutral
	switch {
	case improved > regressed:
		assessment = models.AssessmentImproved
	case regressed > improved:
		assessment = models.AssessmentRegressed
	}

	conf := fallbackConfidenceMetrics
	return models.CheckpointAssessment{
		Assessment: assessment,
		Confidence: &conf,
		Reasoning:  fallbackReasoning(metrics, improved, regressed, neutral, assessment),
	}
}

// fallbackReasoning synthesizes an explanation string so every
// checkpoint row carries one even on the deterministic path.
func fallbackReasoning(metrics []models.MetricDelta, improved, regressed, neutral int, assessment string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Rule-based assessment over %d metric(s): %d improved, %d regressed, %d neutral (±%.0f%% band).",
		len(metrics), improved, regressed, neutral, NeutralBandPercent)
	if top := TopMetric(metrics); top != nil {
		fmt.Fprintf(&sb, " Largest movement: %s %+.1f%%.", top.Name, top.ChangePercent)
	}
	fmt.Fprintf(&sb, " Overall: %s.", assessment)
	return sb.String()
}

// TopMetric returns the metric with the largest absolute change, or
// nil for an empty list.
func TopMetric(metrics []models.MetricDelta) *models.MetricDelta {
	var top *models.MetricDelta
	for i := range metrics {
		if top == nil || math.Abs(metrics[i].ChangePercent) > math.Abs(top.ChangePercent) {
			top = &metrics[i]
		}
	}
	return top
}
