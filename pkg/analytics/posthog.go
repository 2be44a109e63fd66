package analytics

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/loupe-hq/loupe/pkg/models"
)

// PostHogCredentials is the decrypted credential shape for PostHog.
type PostHogCredentials struct {
	APIKey    string `json:"api_key"`
	ProjectID string `json:"project_id"`
	Host      string `json:"host,omitempty"` // defaults to PostHog cloud
}

// PostHogProvider queries the PostHog trends API for before/after
// metric windows.
type PostHogProvider struct {
	creds      PostHogCredentials
	httpClient *http.Client
}

// NewPostHogProvider creates a PostHog provider from decrypted credentials.
func NewPostHogProvider(creds PostHogCredentials) (*PostHogProvider, error) {
	if creds.APIKey == "" || creds.ProjectID == "" {
		return nil, fmt.Errorf("posthog credentials missing api_key or project_id")
	}
	if creds.Host == "" {
		creds.Host = "https://us.posthog.com"
	}
	return &PostHogProvider{
		creds:      creds,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}, nil
}

// Name implements Provider.
func (p *PostHogProvider) Name() string { return ProviderPostHog }

// MetricsForWindow implements Provider. It issues one trends query per
// window and folds the totals into a single delta.
func (p *PostHogProvider) MetricsForWindow(ctx context.Context, url, metric string, before, after models.Window) ([]models.MetricDelta, error) {
	beforeTotal, err := p.windowTotal(ctx, url, metric, before)
	if err != nil {
		return nil, fmt.Errorf("posthog before-window query: %w", err)
	}
	afterTotal, err := p.windowTotal(ctx, url, metric, after)
	if err != nil {
		return nil, fmt.Errorf("posthog after-window query: %w", err)
	}
	if beforeTotal == 0 && afterTotal == 0 {
		return nil, nil
	}
	return []models.MetricDelta{{
		Name:          metric,
		FriendlyName:  FriendlyLabel(metric),
		Before:        beforeTotal,
		After:         afterTotal,
		ChangePercent: changePercent(beforeTotal, afterTotal),
	}}, nil
}

type posthogTrendsRequest struct {
	Events     []posthogEvent `json:"events"`
	DateFrom   string         `json:"date_from"`
	DateTo     string         `json:"date_to"`
	Properties []posthogProp  `json:"properties,omitempty"`
}

type posthogEvent struct {
	ID   string `json:"id"`
	Math string `json:"math,omitempty"`
}

type posthogProp struct {
	Key      string `json:"key"`
	Value    string `json:"value"`
	Operator string `json:"operator"`
}

type posthogTrendsResponse struct {
	Result []struct {
		Count float64 `json:"count"`
	} `json:"result"`
}

func (p *PostHogProvider) windowTotal(ctx context.Context, url, metric string, w models.Window) (float64, error) {
	reqBody := posthogTrendsRequest{
		Events:   []posthogEvent{eventForMetric(metric)},
		DateFrom: w.Start.UTC().Format("2006-01-02"),
		DateTo:   w.End.UTC().Format("2006-01-02"),
		Properties: []posthogProp{
			{Key: "$current_url", Value: url, Operator: "icontains"},
		},
	}
	raw, err := json.Marshal(reqBody)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal trends request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/api/projects/%s/insights/trend/", p.creds.Host, p.creds.ProjectID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(raw))
	if err != nil {
		return 0, fmt.Errorf("failed to build trends request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+p.creds.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("posthog returned status %d", resp.StatusCode)
	}

	var trends posthogTrendsResponse
	if err := json.NewDecoder(resp.Body).Decode(&trends); err != nil {
		return 0, fmt.Errorf("failed to decode trends response: %w", err)
	}

	var total float64
	for _, r := range trends.Result {
		total += r.Count
	}
	return total, nil
}

// eventForMetric maps engine metric names onto PostHog event queries.
func eventForMetric(metric string) posthogEvent {
	switch metric {
	case "unique_visitors":
		return posthogEvent{ID: "$pageview", Math: "dau"}
	case "conversions":
		return posthogEvent{ID: "conversion"}
	default:
		return posthogEvent{ID: "$pageview"}
	}
}
