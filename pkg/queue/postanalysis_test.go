package queue

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loupe-hq/loupe/ent"
	"github.com/loupe-hq/loupe/ent/detectedchange"
	"github.com/loupe-hq/loupe/pkg/capture"
	"github.com/loupe-hq/loupe/pkg/config"
	"github.com/loupe-hq/loupe/pkg/database"
	"github.com/loupe-hq/loupe/pkg/llm"
	"github.com/loupe-hq/loupe/pkg/models"
	"github.com/loupe-hq/loupe/pkg/progress"
	"github.com/loupe-hq/loupe/pkg/services"
	testdb "github.com/loupe-hq/loupe/test/database"
)

// chronicleGateway answers post-analysis calls with a canned chronicle
// and records the prompts it saw.
type chronicleGateway struct {
	response string
	fail     bool
	prompts  []string
}

func (g *chronicleGateway) Complete(_ context.Context, req *llm.Request) (*llm.Response, error) {
	if req.Task != llm.TaskPostAnalysis {
		return nil, fmt.Errorf("unexpected task %s", req.Task)
	}
	g.prompts = append(g.prompts, req.UserPrompt)
	if g.fail {
		return nil, fmt.Errorf("gateway unavailable")
	}
	return &llm.Response{Text: g.response}, nil
}

func (g *chronicleGateway) Close() error { return nil }

func setupChronicleExecutor(t *testing.T, gateway llm.Client) (*Executor, *database.Client) {
	t.Helper()
	client := testdb.NewTestClient(t)

	cfg := &config.Config{
		Defaults:   config.DefaultDefaults(),
		Queue:      config.DefaultQueueConfig(),
		Checkpoint: config.DefaultCheckpointConfig(),
	}
	changes := services.NewChangeService(client.Client)
	suggestions := services.NewSuggestionService(client.Client)
	analyses := services.NewAnalysisService(client.Client)

	shim := llm.NewShim(gateway, llm.RetryConfig{
		MaxAttempts:  1,
		InitialDelay: time.Millisecond,
		MaxDelay:     time.Millisecond,
	}, slog.Default())

	e := NewExecutor(ExecutorDeps{
		Config:      cfg,
		Users:       services.NewUserService(client.Client),
		Pages:       services.NewPageService(client.Client),
		Analyses:    analyses,
		Changes:     changes,
		Suggestions: suggestions,
		Checkpoints: services.NewCheckpointService(client.Client),
		Feedback:    services.NewFeedbackService(client.Client),
		Deploys:     services.NewDeployService(client.Client),
		Shim:        shim,
		Composer:    progress.NewComposer(changes, suggestions, analyses, slog.Default()),
	})
	return e, client
}

// seedChroniclePage creates a user, a watched page, and a prior
// complete scan with screenshots so the next scan takes the chronicle
// path.
func seedChroniclePage(t *testing.T, e *Executor, client *database.Client) *ent.Page {
	t.Helper()
	ctx := context.Background()

	_, err := client.User.Create().
		SetID("user-1").
		SetEmail("user-1@example.com").
		Save(ctx)
	require.NoError(t, err)

	page, err := e.pages.CreatePage(ctx, services.CreatePageInput{
		UserID:      "user-1",
		URL:         "https://example.com/pricing",
		MetricFocus: "trial signups",
	})
	require.NoError(t, err)

	prior, err := e.analyses.CreateAnalysis(ctx, models.CreateAnalysisRequest{
		PageID: page.ID,
		UserID: "user-1",
		URL:    page.URL,
	})
	require.NoError(t, err)
	require.NoError(t, e.analyses.SetScreenshots(ctx, prior.ID, "https://store/prior-d.png", ""))
	require.NoError(t, e.analyses.CompleteAnalysis(ctx, prior.ID, services.CompleteInput{
		FreeformOutput: "baseline audit",
	}))
	return page
}

func TestRunChronicleFirstScan(t *testing.T) {
	gateway := &chronicleGateway{fail: true}
	e, client := setupChronicleExecutor(t, gateway)
	ctx := context.Background()

	_, err := client.User.Create().
		SetID("user-1").
		SetEmail("user-1@example.com").
		Save(ctx)
	require.NoError(t, err)
	page, err := e.pages.CreatePage(ctx, services.CreatePageInput{
		UserID: "user-1",
		URL:    "https://example.com/pricing",
	})
	require.NoError(t, err)

	a, err := e.analyses.CreateAnalysis(ctx, models.CreateAnalysisRequest{
		PageID: page.ID,
		UserID: "user-1",
		URL:    page.URL,
	})
	require.NoError(t, err)

	result := e.runChronicle(ctx, a, page, &models.StructuredAudit{Verdict: "fresh"}, &capture.Result{DesktopURL: "https://store/cur-d.png"})

	// No prior scan means no chronicle and no gateway call.
	assert.Nil(t, result)
	assert.Empty(t, gateway.prompts)
}

func TestRunChronicleDeployScan(t *testing.T) {
	gateway := &chronicleGateway{}
	e, client := setupChronicleExecutor(t, gateway)
	ctx := context.Background()

	page := seedChroniclePage(t, e, client)

	tracked, err := e.changes.CreateChange(ctx, models.CreateChangeRequest{
		PageID:      page.ID,
		UserID:      "user-1",
		Element:     "hero headline",
		BeforeValue: "Try it free",
		AfterValue:  "Start your free trial",
		DetectedAt:  time.Now().AddDate(0, 0, -10),
	})
	require.NoError(t, err)
	require.NoError(t, e.changes.SetHypothesis(ctx, tracked.ID, "shorter headline converts better"))

	before, after := models.Window{Start: time.Now().AddDate(0, 0, -14), End: time.Now().AddDate(0, 0, -7)},
		models.Window{Start: time.Now().AddDate(0, 0, -7), End: time.Now()}
	cp, err := e.checkpoints.CreateCheckpoint(ctx, models.CreateCheckpointRequest{
		ChangeID:     tracked.ID,
		HorizonDays:  7,
		BeforeWindow: before,
		AfterWindow:  after,
		Metrics: models.MetricsEnvelope{
			Metrics: []models.MetricDelta{{Name: "conversions", FriendlyName: "Conversions", Before: 100, After: 112, ChangePercent: 12}},
			Sources: []string{"posthog"},
		},
		Assessment: models.AssessmentImproved,
		Reasoning:  "early lift in signups",
		Provider:   "posthog",
	})
	require.NoError(t, err)
	_, err = e.feedback.CreateFeedback(ctx, models.CreateFeedbackRequest{
		ChangeID:     tracked.ID,
		CheckpointID: cp.ID,
		UserID:       "user-1",
		FeedbackType: "inaccurate",
		Comment:      "traffic mix shifted",
	})
	require.NoError(t, err)

	d, err := e.deploys.CreateDeploy(ctx, models.CreateDeployRequest{
		UserID:        "user-1",
		RepoID:        "repo-1",
		CommitSHA:     "abc1234",
		FullName:      "acme/site",
		CommitMessage: "Rework pricing tiers",
	})
	require.NoError(t, err)

	a, err := e.analyses.CreateAnalysis(ctx, models.CreateAnalysisRequest{
		PageID:      page.ID,
		UserID:      "user-1",
		URL:         page.URL,
		TriggerType: "deploy",
		DeployID:    d.ID,
	})
	require.NoError(t, err)

	gateway.response = fmt.Sprintf(`{
		"verdict": "moving",
		"changes": [
			{"element": "hero headline", "scope": "element", "before": "Try it free", "after": "Start your free trial today", "matched_change_id": %q, "match_confidence": 0.9},
			{"element": "pricing table", "scope": "section", "before": "3 tiers", "after": "4 tiers"}
		],
		"suggestions": [
			{"title": "Add testimonials", "element": "social proof", "suggestedFix": "Show customer quotes", "impact": "high"}
		],
		"running_summary": "Pricing page evolving.",
		"observations": [
			{"changeId": %q, "text": "headline still converting"},
			{"changeId": "not-a-real-id", "text": "made up"}
		],
		"revertedChangeIds": []
	}`, tracked.ID, tracked.ID)

	result := e.runChronicle(ctx, a, page, &models.StructuredAudit{Verdict: "needs work"}, &capture.Result{DesktopURL: "https://store/cur-d.png"})
	require.NotNil(t, result)
	assert.Equal(t, 1, result.newChangeCount())
	assert.Equal(t, 0, result.revertedCount())

	var summary models.ChangesSummary
	require.NoError(t, models.FromMap(result.summaryMap, &summary))

	// Only observations naming known change ids survive, and the
	// survivor lands on its change row.
	require.Len(t, summary.Observations, 1)
	assert.Equal(t, tracked.ID, summary.Observations[0].ChangeID)
	got, err := e.changes.GetChange(ctx, tracked.ID)
	require.NoError(t, err)
	require.NotNil(t, got.ObservationText)
	assert.Equal(t, "headline still converting", *got.ObservationText)

	// Correlation is composed from the tracked change's checkpoint
	// evidence, never from the model.
	require.NotNil(t, summary.Correlation)
	assert.True(t, summary.Correlation.HasEnoughData)
	require.Len(t, summary.Correlation.Metrics, 1)
	assert.Equal(t, "conversions", summary.Correlation.Metrics[0].Name)
	assert.InDelta(t, 12, summary.Correlation.Metrics[0].Change, 0.001)
	assert.Equal(t, "improved", summary.Correlation.Metrics[0].Assessment)

	// The fresh item inserted; progress tracks both watching changes.
	assert.Equal(t, 2, summary.Progress.Watching)

	open, err := e.suggestions.ListOpenForPage(ctx, page.ID)
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.Equal(t, "Add testimonials", open[0].Title)

	// The prompt carried the page focus, deploy context, and the
	// tracked change's accumulated evidence.
	require.Len(t, gateway.prompts, 1)
	prompt := gateway.prompts[0]
	assert.Contains(t, prompt, "trial signups")
	assert.Contains(t, prompt, "Rework pricing tiers")
	assert.Contains(t, prompt, "shorter headline converts better")
	assert.Contains(t, prompt, "early lift in signups")
	assert.Contains(t, prompt, "traffic mix shifted")
}

func TestRunChronicleDegradedKeepsAudit(t *testing.T) {
	gateway := &chronicleGateway{fail: true}
	e, client := setupChronicleExecutor(t, gateway)
	ctx := context.Background()

	page := seedChroniclePage(t, e, client)

	tracked, err := e.changes.CreateChange(ctx, models.CreateChangeRequest{
		PageID:      page.ID,
		UserID:      "user-1",
		Element:     "hero headline",
		BeforeValue: "Try it free",
		AfterValue:  "Start your free trial",
	})
	require.NoError(t, err)

	a, err := e.analyses.CreateAnalysis(ctx, models.CreateAnalysisRequest{
		PageID: page.ID,
		UserID: "user-1",
		URL:    page.URL,
	})
	require.NoError(t, err)

	result := e.runChronicle(ctx, a, page, &models.StructuredAudit{Verdict: "needs work"}, &capture.Result{DesktopURL: "https://store/cur-d.png"})
	require.NotNil(t, result)
	assert.Equal(t, 0, result.newChangeCount())

	var summary models.ChangesSummary
	require.NoError(t, models.FromMap(result.summaryMap, &summary))
	assert.Equal(t, models.SummaryErrorPostAnalysisFailed, summary.Error)
	require.NotNil(t, summary.Correlation)
	assert.False(t, summary.Correlation.HasEnoughData)

	// The watching change survives in the composed progress lists.
	require.Len(t, summary.Progress.WatchingItems, 1)
	assert.Equal(t, tracked.ID, summary.Progress.WatchingItems[0].ID)

	fresh, err := e.changes.GetChange(ctx, tracked.ID)
	require.NoError(t, err)
	assert.Equal(t, detectedchange.StatusWatching, fresh.Status)
}
