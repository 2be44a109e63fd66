package checkpoint

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loupe-hq/loupe/pkg/analytics"
	"github.com/loupe-hq/loupe/pkg/config"
	"github.com/loupe-hq/loupe/pkg/models"
)

// stubProvider answers canned deltas per metric and can fail selected
// metrics.
type stubProvider struct {
	deltas  map[string][]models.MetricDelta
	failing map[string]bool
}

func (s *stubProvider) Name() string { return "stub" }

func (s *stubProvider) MetricsForWindow(_ context.Context, _ string, metric string, _, _ models.Window) ([]models.MetricDelta, error) {
	if s.failing[metric] {
		return nil, errors.New("provider unavailable")
	}
	return s.deltas[metric], nil
}

func testEngine() *Engine {
	return &Engine{
		cfg:    &config.Config{Checkpoint: config.DefaultCheckpointConfig()},
		logger: slog.Default(),
	}
}

func TestGatherMetricsDisconnected(t *testing.T) {
	e := testEngine()

	env := e.gatherMetrics(context.Background(), analytics.None(), "https://example.com/pricing", time.Now().AddDate(0, 0, -30), 30)

	assert.True(t, env.Empty())
	assert.Equal(t, models.MetricsReasonDisconnected, env.Reason)
	assert.Empty(t, env.Sources)
}

func TestGatherMetricsCollectsAllDefaults(t *testing.T) {
	e := testEngine()
	p := &stubProvider{deltas: map[string][]models.MetricDelta{
		"pageviews":       {{Name: "pageviews", Before: 100, After: 120, ChangePercent: 20}},
		"unique_visitors": {{Name: "unique_visitors", Before: 50, After: 55, ChangePercent: 10}},
		"conversions":     {{Name: "conversions", Before: 10, After: 9, ChangePercent: -10}},
	}}

	env := e.gatherMetrics(context.Background(), p, "https://example.com/pricing", time.Now().AddDate(0, 0, -30), 30)

	require.Len(t, env.Metrics, 3)
	assert.Equal(t, []string{"stub"}, env.Sources)
	assert.Empty(t, env.Reason)
}

func TestGatherMetricsDropsFailedMetric(t *testing.T) {
	e := testEngine()
	p := &stubProvider{
		deltas: map[string][]models.MetricDelta{
			"pageviews":       {{Name: "pageviews", Before: 100, After: 120, ChangePercent: 20}},
			"unique_visitors": {{Name: "unique_visitors", Before: 50, After: 55, ChangePercent: 10}},
		},
		failing: map[string]bool{"conversions": true},
	}

	env := e.gatherMetrics(context.Background(), p, "https://example.com/pricing", time.Now().AddDate(0, 0, -30), 30)

	// One metric failing drops that metric only; the envelope stays usable.
	require.Len(t, env.Metrics, 2)
	assert.Equal(t, []string{"stub"}, env.Sources)
	assert.Empty(t, env.Reason)
}

func TestGatherMetricsProviderWithNoData(t *testing.T) {
	e := testEngine()
	p := &stubProvider{deltas: map[string][]models.MetricDelta{}}

	env := e.gatherMetrics(context.Background(), p, "https://example.com/pricing", time.Now().AddDate(0, 0, -7), 7)

	assert.True(t, env.Empty())
	assert.Equal(t, models.MetricsReasonDisconnected, env.Reason)
}
