// Package analytics abstracts behavioral metric sources behind a
// uniform window-query interface. Adapters exist for PostHog, GA4, a
// direct owned-database connection, and a "none" provider used when
// credentials are absent or fail to decrypt.
package analytics

import (
	"context"

	"github.com/loupe-hq/loupe/pkg/models"
)

// Provider labels. A checkpoint row records the provider that actually
// answered; a failed init is recorded as "none", never as the provider
// that failed.
const (
	ProviderPostHog  = "posthog"
	ProviderGA4      = "ga4"
	ProviderSupabase = "supabase"
	ProviderNone     = "none"
)

// Provider is a uniform metric source for one user.
type Provider interface {
	// Name returns the provider label recorded on checkpoint rows.
	Name() string

	// MetricsForWindow returns before/after deltas for the named metric
	// on a URL over the two windows. An empty slice with nil error
	// means the provider had no data, not a failure.
	MetricsForWindow(ctx context.Context, url, metric string, before, after models.Window) ([]models.MetricDelta, error)
}

// DefaultMetrics is the metric set pulled for every checkpoint.
var DefaultMetrics = []string{"pageviews", "unique_visitors", "conversions"}

// noneProvider is the degraded provider used when no analytics source
// is connected. It always returns no data.
type noneProvider struct{}

// None returns the degraded no-data provider.
func None() Provider { return noneProvider{} }

func (noneProvider) Name() string { return ProviderNone }

func (noneProvider) MetricsForWindow(context.Context, string, string, models.Window, models.Window) ([]models.MetricDelta, error) {
	return nil, nil
}

// changePercent computes the relative delta, guarding the zero-before
// case: 0 → 0 is flat, 0 → x is a full swing.
func changePercent(before, after float64) float64 {
	if before == 0 {
		if after == 0 {
			return 0
		}
		return 100
	}
	return (after - before) / before * 100
}
