package horizon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loupe-hq/loupe/pkg/models"
)

func delta(name string, pct float64) models.MetricDelta {
	return models.MetricDelta{Name: name, ChangePercent: pct}
}

func TestFallbackAssessNoMetrics(t *testing.T) {
	got := FallbackAssess(nil)

	assert.Equal(t, models.AssessmentInconclusive, got.Assessment)
	require.NotNil(t, got.Confidence)
	assert.Equal(t, 0.0, *got.Confidence)
	assert.NotEmpty(t, got.Reasoning)
}

func TestFallbackAssessMajority(t *testing.T) {
	tests := []struct {
		name    string
		metrics []models.MetricDelta
		want    string
	}{
		{
			name:    "all improved",
			metrics: []models.MetricDelta{delta("conversion_rate", 12), delta("sessions", 8)},
			want:    models.AssessmentImproved,
		},
		{
			name:    "all regressed",
			metrics: []models.MetricDelta{delta("conversion_rate", -9), delta("bounce_rate", -30)},
			want:    models.AssessmentRegressed,
		},
		{
			name:    "majority improved beats one regression",
			metrics: []models.MetricDelta{delta("a", 10), delta("b", 7), delta("c", -20)},
			want:    models.AssessmentImproved,
		},
		{
			name:    "tie is neutral",
			metrics: []models.MetricDelta{delta("a", 10), delta("b", -10)},
			want:    models.AssessmentNeutral,
		},
		{
			name:    "all within band is neutral",
			metrics: []models.MetricDelta{delta("a", 4.9), delta("b", -3), delta("c", 0)},
			want:    models.AssessmentNeutral,
		},
		{
			name:    "band boundary counts as neutral",
			metrics: []models.MetricDelta{delta("a", 5.0), delta("b", -5.0)},
			want:    models.AssessmentNeutral,
		},
		{
			name:    "just outside band counts",
			metrics: []models.MetricDelta{delta("a", 5.1)},
			want:    models.AssessmentImproved,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FallbackAssess(tt.metrics)
			assert.Equal(t, tt.want, got.Assessment)
			require.NotNil(t, got.Confidence)
			assert.Equal(t, 0.3, *got.Confidence)
		})
	}
}

func TestFallbackAssessDeterministic(t *testing.T) {
	metrics := []models.MetricDelta{delta("conversion_rate", 11), delta("sessions", -2)}
	first := FallbackAssess(metrics)
	for i := 0; i < 3; i++ {
		again := FallbackAssess(metrics)
		assert.Equal(t, first.Assessment, again.Assessment)
		assert.Equal(t, *first.Confidence, *again.Confidence)
		assert.Equal(t, first.Reasoning, again.Reasoning)
	}
}

func TestFallbackReasoningNamesTopMetric(t *testing.T) {
	got := FallbackAssess([]models.MetricDelta{
		delta("sessions", 6),
		delta("conversion_rate", -42.5),
	})
	assert.Contains(t, got.Reasoning, "conversion_rate")
	assert.Contains(t, got.Reasoning, "-42.5%")
}

func TestTopMetric(t *testing.T) {
	assert.Nil(t, TopMetric(nil))

	metrics := []models.MetricDelta{delta("a", 3), delta("b", -15), delta("c", 9)}
	top := TopMetric(metrics)
	require.NotNil(t, top)
	assert.Equal(t, "b", top.Name)
}
