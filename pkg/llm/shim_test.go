package llm

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loupe-hq/loupe/pkg/fingerprint"
	"github.com/loupe-hq/loupe/pkg/models"
)

// fakeClient returns canned responses per call and records requests.
type fakeClient struct {
	responses []fakeResponse
	requests  []*Request
}

type fakeResponse struct {
	text string
	err  error
}

func (f *fakeClient) Complete(_ context.Context, req *Request) (*Response, error) {
	f.requests = append(f.requests, req)
	if len(f.responses) == 0 {
		return nil, fmt.Errorf("no canned response")
	}
	next := f.responses[0]
	f.responses = f.responses[1:]
	if next.err != nil {
		return nil, next.err
	}
	return &Response{Text: next.text}, nil
}

func (f *fakeClient) Close() error { return nil }

func fastRetry(attempts int) RetryConfig {
	return RetryConfig{MaxAttempts: attempts, InitialDelay: time.Millisecond, MaxDelay: 2 * time.Millisecond}
}

func newTestShim(client Client, attempts int) *Shim {
	return NewShim(client, fastRetry(attempts), slog.Default())
}

func TestPageAudit_ParsesAndFixesFindingsCount(t *testing.T) {
	client := &fakeClient{responses: []fakeResponse{{text: "```json\n" + `{
		"findingsCount": 99,
		"verdict": "needs work",
		"summary": "weak hero",
		"findings": [{"id": "f1", "title": "Vague headline", "impact": "high"}]
	}` + "\n```"}}}
	shim := newTestShim(client, 1)

	audit, err := shim.PageAudit(context.Background(), &PageAuditInput{
		AnalysisID:      "an-1",
		URL:             "https://example.com",
		DesktopImageURL: "https://store/desktop.png",
		MobileImageURL:  "https://store/mobile.png",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, audit.FindingsCount)
	assert.Equal(t, "needs work", audit.Verdict)

	require.Len(t, client.requests, 1)
	assert.Equal(t, TaskPageAudit, client.requests[0].Task)
	assert.Equal(t, []string{"https://store/desktop.png", "https://store/mobile.png"}, client.requests[0].ImageURLs)
}

func TestPageAudit_RetriesThenFails(t *testing.T) {
	client := &fakeClient{responses: []fakeResponse{
		{err: fmt.Errorf("gateway unavailable")},
		{err: fmt.Errorf("gateway unavailable")},
	}}
	shim := newTestShim(client, 2)

	_, err := shim.PageAudit(context.Background(), &PageAuditInput{
		AnalysisID:      "an-1",
		URL:             "https://example.com",
		DesktopImageURL: "https://store/desktop.png",
	})
	require.Error(t, err)
	assert.Len(t, client.requests, 2)
}

func TestQuickDiff_MobilePairOnlyWhenBothSidesExist(t *testing.T) {
	client := &fakeClient{responses: []fakeResponse{{text: `{"hasChanges": false, "changes": []}`}}}
	shim := newTestShim(client, 1)

	result, err := shim.QuickDiff(context.Background(), &QuickDiffInput{
		AnalysisID:         "an-2",
		URL:                "https://example.com",
		BaselineDesktopURL: "https://store/base-d.png",
		CurrentDesktopURL:  "https://store/cur-d.png",
		// Baseline mobile exists but the current mobile capture failed.
		BaselineMobileURL: "https://store/base-m.png",
	})
	require.NoError(t, err)
	assert.False(t, result.HasChanges)

	require.Len(t, client.requests, 1)
	assert.Equal(t, []string{"https://store/base-d.png", "https://store/cur-d.png"}, client.requests[0].ImageURLs)
}

func TestQuickDiff_HasChangesForcedTrueWhenChangesPresent(t *testing.T) {
	client := &fakeClient{responses: []fakeResponse{{text: `{
		"hasChanges": false,
		"changes": [{"element": "hero headline", "scope": "element", "before": "Old", "after": "New"}]
	}`}}}
	shim := newTestShim(client, 1)

	result, err := shim.QuickDiff(context.Background(), &QuickDiffInput{
		AnalysisID:         "an-3",
		URL:                "https://example.com",
		BaselineDesktopURL: "https://store/base-d.png",
		CurrentDesktopURL:  "https://store/cur-d.png",
	})
	require.NoError(t, err)
	assert.True(t, result.HasChanges)
	require.Len(t, result.Changes, 1)
	assert.Equal(t, "hero headline", result.Changes[0].Element)
}

func TestPostAnalysis_IncludesTrackedChangesInPrompt(t *testing.T) {
	client := &fakeClient{responses: []fakeResponse{{text: `{
		"verdict": "improving",
		"changes": [],
		"suggestions": [],
		"running_summary": "Headline test in flight."
	}`}}}
	shim := newTestShim(client, 1)

	summary, err := shim.PostAnalysis(context.Background(), &PostAnalysisInput{
		AnalysisID:      "an-4",
		URL:             "https://example.com",
		CurrentImageURL: "https://store/cur-d.png",
		WatchingChanges: []fingerprint.Candidate{
			{ID: "chg-1", Element: "hero headline", Scope: "element", Status: "watching"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "improving", summary.Verdict)

	require.Len(t, client.requests, 1)
	assert.Contains(t, client.requests[0].UserPrompt, "chg-1")
}

func TestPostAnalysis_PromptCarriesScanContext(t *testing.T) {
	client := &fakeClient{responses: []fakeResponse{{text: `{
		"verdict": "steady",
		"changes": [],
		"suggestions": [],
		"running_summary": "No movement."
	}`}}}
	shim := newTestShim(client, 1)

	_, err := shim.PostAnalysis(context.Background(), &PostAnalysisInput{
		AnalysisID:      "an-5",
		URL:             "https://example.com/pricing",
		PageFocus:       "trial signups",
		DeployContext:   "deploy abc1234: rework pricing tiers",
		CurrentImageURL: "https://store/cur-d.png",
		WatchingChanges: []fingerprint.Candidate{
			{ID: "chg-1", Element: "hero headline", Scope: "element", Status: "watching"},
		},
		ChangeHistories: []ChangeHistory{{
			ChangeID:   "chg-1",
			Element:    "hero headline",
			Hypothesis: "shorter headline converts better",
			Checkpoints: []PriorCheckpoint{
				{HorizonDays: 7, Assessment: "improved", Reasoning: "early lift in signups"},
			},
			Feedback: []string{"marked a prior verdict inaccurate"},
		}},
	})
	require.NoError(t, err)

	require.Len(t, client.requests, 1)
	prompt := client.requests[0].UserPrompt
	assert.Contains(t, prompt, "trial signups")
	assert.Contains(t, prompt, "rework pricing tiers")
	assert.Contains(t, prompt, "shorter headline converts better")
	assert.Contains(t, prompt, "early lift in signups")
	assert.Contains(t, prompt, "marked a prior verdict inaccurate")
}

func TestCheckpointAssessment_ValidVerdict(t *testing.T) {
	client := &fakeClient{responses: []fakeResponse{{text: `{
		"assessment": "improved",
		"confidence": 0.85,
		"reasoning": "Conversions up 12% with flat traffic."
	}`}}}
	shim := newTestShim(client, 1)

	got, err := shim.CheckpointAssessment(context.Background(), &AssessmentInput{
		ChangeID:    "chg-1",
		Element:     "hero headline",
		HorizonDays: 30,
		Metrics: models.MetricsEnvelope{Metrics: []models.MetricDelta{
			{Name: "conversions", Before: 100, After: 112, ChangePercent: 12},
		}},
	}, 3)
	require.NoError(t, err)
	assert.Equal(t, models.AssessmentImproved, got.Assessment)
	require.NotNil(t, got.Confidence)
	assert.InDelta(t, 0.85, *got.Confidence, 0.001)
}

func TestCheckpointAssessment_PromptCarriesFocusAndTimeline(t *testing.T) {
	client := &fakeClient{responses: []fakeResponse{{text: `{"assessment": "improved", "reasoning": "sustained lift"}`}}}
	shim := newTestShim(client, 1)

	_, err := shim.CheckpointAssessment(context.Background(), &AssessmentInput{
		ChangeID:    "chg-1",
		Element:     "hero headline",
		HorizonDays: 30,
		PageFocus:   "checkout conversion rate",
		PriorCheckpoints: []PriorCheckpoint{
			{HorizonDays: 7, Assessment: "improved", Reasoning: "early signal positive"},
			{HorizonDays: 14, Assessment: "neutral", Reasoning: "flattened out"},
		},
	}, 1)
	require.NoError(t, err)

	require.Len(t, client.requests, 1)
	prompt := client.requests[0].UserPrompt
	assert.Contains(t, prompt, "checkout conversion rate")
	assert.Contains(t, prompt, "early signal positive")
	assert.Contains(t, prompt, "flattened out")
}

func TestCheckpointAssessment_UnknownVerdictRejected(t *testing.T) {
	client := &fakeClient{responses: []fakeResponse{{text: `{"assessment": "amazing", "reasoning": "up"}`}}}
	shim := newTestShim(client, 1)

	_, err := shim.CheckpointAssessment(context.Background(), &AssessmentInput{ChangeID: "chg-1", HorizonDays: 30}, 1)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown verdict")
}

func TestCheckpointAssessment_ConfidenceClamped(t *testing.T) {
	client := &fakeClient{responses: []fakeResponse{{text: `{"assessment": "neutral", "confidence": 1.7, "reasoning": "flat"}`}}}
	shim := newTestShim(client, 1)

	got, err := shim.CheckpointAssessment(context.Background(), &AssessmentInput{ChangeID: "chg-1", HorizonDays: 30}, 1)
	require.NoError(t, err)
	require.NotNil(t, got.Confidence)
	assert.Equal(t, 1.0, *got.Confidence)
}

func TestStrategyNarrative_ParsesResult(t *testing.T) {
	client := &fakeClient{responses: []fakeResponse{{text: "```json\n" + `{
		"strategy_narrative": "The headline test validated; ship the CTA change next.",
		"running_summary": "Two validated wins this quarter.",
		"observations": [{"changeId": "chg-1", "text": "Sustained lift at D+30."}]
	}` + "\n```"}}}
	shim := newTestShim(client, 1)

	got, err := shim.StrategyNarrative(context.Background(), &NarrativeInput{
		PageID: "page-1",
		URL:    "https://example.com",
	})
	require.NoError(t, err)
	assert.Contains(t, got.StrategyNarrative, "headline test")
	require.Len(t, got.Observations, 1)
	assert.Equal(t, "chg-1", got.Observations[0].ChangeID)
}

func TestCompleteWithRetry_SucceedsAfterTransientFailure(t *testing.T) {
	client := &fakeClient{responses: []fakeResponse{
		{err: fmt.Errorf("transient")},
		{text: `{"ok": true}`},
	}}

	resp, err := completeWithRetry(context.Background(), client, fastRetry(3), slog.Default(), &Request{Task: TaskQuickDiff})
	require.NoError(t, err)
	assert.Equal(t, `{"ok": true}`, resp.Text)
	assert.Len(t, client.requests, 2)
}
