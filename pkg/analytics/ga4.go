package analytics

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/loupe-hq/loupe/pkg/models"
)

// GA4Credentials is the decrypted credential shape for Google
// Analytics 4. The access token is refreshed by the OAuth webhook
// surface outside the engine; the engine only consumes it.
type GA4Credentials struct {
	PropertyID  string `json:"property_id"`
	AccessToken string `json:"access_token"`
}

// GA4Provider queries the GA4 Data API runReport endpoint.
type GA4Provider struct {
	creds      GA4Credentials
	httpClient *http.Client
}

// NewGA4Provider creates a GA4 provider from decrypted credentials.
func NewGA4Provider(creds GA4Credentials) (*GA4Provider, error) {
	if creds.PropertyID == "" || creds.AccessToken == "" {
		return nil, fmt.Errorf("ga4 credentials missing property_id or access_token")
	}
	return &GA4Provider{
		creds:      creds,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}, nil
}

// Name implements Provider.
func (p *GA4Provider) Name() string { return ProviderGA4 }

// MetricsForWindow implements Provider.
func (p *GA4Provider) MetricsForWindow(ctx context.Context, url, metric string, before, after models.Window) ([]models.MetricDelta, error) {
	ga4Metric, ok := ga4MetricNames[metric]
	if !ok {
		// Unknown metric names pass through to GA4 untransformed.
		ga4Metric = metric
	}

	beforeTotal, err := p.runReport(ctx, url, ga4Metric, before)
	if err != nil {
		return nil, fmt.Errorf("ga4 before-window report: %w", err)
	}
	afterTotal, err := p.runReport(ctx, url, ga4Metric, after)
	if err != nil {
		return nil, fmt.Errorf("ga4 after-window report: %w", err)
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

// ga4MetricNames maps engine metric names to GA4 Data API metric names.
var ga4MetricNames = map[string]string{
	"pageviews":       "screenPageViews",
	"unique_visitors": "totalUsers",
	"conversions":     "conversions",
}

type ga4RunReportRequest struct {
	DateRanges      []ga4DateRange   `json:"dateRanges"`
	Metrics         []ga4Metric      `json:"metrics"`
	DimensionFilter *ga4FilterClause `json:"dimensionFilter,omitempty"`
}

type ga4DateRange struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

type ga4Metric struct {
	Name string `json:"name"`
}

type ga4FilterClause struct {
	Filter ga4Filter `json:"filter"`
}

type ga4Filter struct {
	FieldName    string          `json:"fieldName"`
	StringFilter ga4StringFilter `json:"stringFilter"`
}

type ga4StringFilter struct {
	MatchType string `json:"matchType"`
	Value     string `json:"value"`
}

type ga4RunReportResponse struct {
	Rows []struct {
		MetricValues []struct {
			Value string `json:"value"`
		} `json:"metricValues"`
	} `json:"rows"`
}

func (p *GA4Provider) runReport(ctx context.Context, url, metricName string, w models.Window) (float64, error) {
	reqBody := ga4RunReportRequest{
		DateRanges: []ga4DateRange{{
			StartDate: w.Start.UTC().Format("2006-01-02"),
			EndDate:   w.End.UTC().Format("2006-01-02"),
		}},
		Metrics: []ga4Metric{{Name: metricName}},
		DimensionFilter: &ga4FilterClause{
			Filter: ga4Filter{
				FieldName: "pagePath",
				StringFilter: ga4StringFilter{
					MatchType: "CONTAINS",
					Value:     pagePath(url),
				},
			},
		},
	}
	raw, err := json.Marshal(reqBody)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal runReport request: %w", err)
	}

	endpoint := fmt.Sprintf("https://analyticsdata.googleapis.com/v1beta/properties/%s:runReport", p.creds.PropertyID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(raw))
	if err != nil {
		return 0, fmt.Errorf("failed to build runReport request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+p.creds.AccessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("ga4 returned status %d", resp.StatusCode)
	}

	var report ga4RunReportResponse
	if err := json.NewDecoder(resp.Body).Decode(&report); err != nil {
		return 0, fmt.Errorf("failed to decode runReport response: %w", err)
	}

	var total float64
	for _, row := range report.Rows {
		for _, mv := range row.MetricValues {
			v, err := strconv.ParseFloat(mv.Value, 64)
			if err != nil {
				continue
			}
			total += v
		}
	}
	return total, nil
}

// pagePath strips scheme and host so the GA4 pagePath filter matches.
func pagePath(url string) string {
	for _, prefix := range []string{"https://", "http://"} {
		url = strings.TrimPrefix(url, prefix)
	}
	if i := strings.IndexByte(url, '/'); i >= 0 {
		return url[i:]
	}
	return "/"
}
