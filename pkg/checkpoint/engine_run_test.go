package checkpoint

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loupe-hq/loupe/ent/detectedchange"
	"github.com/loupe-hq/loupe/pkg/analytics"
	"github.com/loupe-hq/loupe/pkg/config"
	"github.com/loupe-hq/loupe/pkg/database"
	"github.com/loupe-hq/loupe/pkg/llm"
	"github.com/loupe-hq/loupe/pkg/models"
	"github.com/loupe-hq/loupe/pkg/progress"
	"github.com/loupe-hq/loupe/pkg/secrets"
	"github.com/loupe-hq/loupe/pkg/services"
	testdb "github.com/loupe-hq/loupe/test/database"
)

// scriptedGateway plays back one assessor verdict per call, in call
// order, and records the prompts it saw. Narrative calls get a fixed
// reply.
type scriptedGateway struct {
	mu       sync.Mutex
	verdicts []string
	prompts  []string
}

func (g *scriptedGateway) Complete(_ context.Context, req *llm.Request) (*llm.Response, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	switch req.Task {
	case llm.TaskCheckpointAssessment:
		g.prompts = append(g.prompts, req.UserPrompt)
		if len(g.verdicts) == 0 {
			return nil, fmt.Errorf("no scripted verdict left")
		}
		v := g.verdicts[0]
		g.verdicts = g.verdicts[1:]
		text := fmt.Sprintf(`{"assessment": %q, "confidence": 0.8, "reasoning": "call %d says %s"}`, v, len(g.prompts), v)
		return &llm.Response{Text: text}, nil
	case llm.TaskStrategyNarrative:
		return &llm.Response{Text: `{"strategy_narrative": "keep iterating", "running_summary": "steady"}`}, nil
	default:
		return nil, fmt.Errorf("unexpected task %s", req.Task)
	}
}

func (g *scriptedGateway) Close() error { return nil }

func setupRunEngine(t *testing.T, gateway llm.Client) (*Engine, *database.Client) {
	t.Helper()
	client := testdb.NewTestClient(t)

	box, err := secrets.NewBox(bytes.Repeat([]byte{0x42}, 32))
	require.NoError(t, err)

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

	engine := NewEngine(EngineDeps{
		Config:      cfg,
		Users:       services.NewUserService(client.Client),
		Pages:       services.NewPageService(client.Client),
		Analyses:    analyses,
		Changes:     changes,
		Checkpoints: services.NewCheckpointService(client.Client),
		Connections: services.NewConnectionService(client.Client, box),
		Feedback:    services.NewFeedbackService(client.Client),
		Factory:     analytics.NewFactory(box),
		Shim:        shim,
		Composer:    progress.NewComposer(changes, suggestions, analyses, slog.Default()),
	})
	return engine, client
}

func seedTrackedChange(t *testing.T, client *database.Client, engine *Engine, ageDays int) (pageID, changeID string) {
	t.Helper()
	ctx := context.Background()

	_, err := client.User.Create().
		SetID("user-1").
		SetEmail("user-1@example.com").
		Save(ctx)
	require.NoError(t, err)

	p, err := engine.pages.CreatePage(ctx, services.CreatePageInput{
		UserID:      "user-1",
		URL:         "https://example.com/pricing",
		MetricFocus: "checkout conversion rate",
	})
	require.NoError(t, err)

	ch, err := engine.changes.CreateChange(ctx, models.CreateChangeRequest{
		PageID:      p.ID,
		UserID:      "user-1",
		Element:     "hero headline",
		BeforeValue: "Try it free",
		AfterValue:  "Start your free trial",
		DetectedAt:  time.Now().AddDate(0, 0, -ageDays),
	})
	require.NoError(t, err)
	return p.ID, ch.ID
}

func TestEngineRunValidatesAtThirtyDays(t *testing.T) {
	gateway := &scriptedGateway{verdicts: []string{"improved", "improved", "improved"}}
	engine, client := setupRunEngine(t, gateway)
	ctx := context.Background()

	_, changeID := seedTrackedChange(t, client, engine, 31)

	stats, err := engine.Run(ctx)
	require.NoError(t, err)

	// Day 7, 14, and 30 are due; only day 30 resolves.
	assert.Equal(t, 1, stats.ChangesDue)
	assert.Equal(t, 3, stats.CheckpointsCreated)
	assert.Equal(t, 1, stats.Transitions)
	assert.Equal(t, 1, stats.MailsSent)

	ch, err := engine.changes.GetChange(ctx, changeID)
	require.NoError(t, err)
	assert.Equal(t, detectedchange.StatusValidated, ch.Status)
	require.NotNil(t, ch.CorrelationUnlockedAt)

	// The first horizon's commentary sticks; later horizons never
	// overwrite it.
	require.NotNil(t, ch.ObservationText)
	assert.Equal(t, "call 1 says improved", *ch.ObservationText)

	cps, err := engine.checkpoints.ListForChange(ctx, changeID)
	require.NoError(t, err)
	require.Len(t, cps, 3)
	assert.Equal(t, []int{7, 14, 30}, []int{cps[0].HorizonDays, cps[1].HorizonDays, cps[2].HorizonDays})

	// Every assessor call carries the page's metric focus, and from the
	// second horizon on, the earlier verdicts.
	require.Len(t, gateway.prompts, 3)
	for _, prompt := range gateway.prompts {
		assert.Contains(t, prompt, "checkout conversion rate")
	}
	assert.True(t, strings.Contains(gateway.prompts[2], "call 1 says improved"))
	assert.True(t, strings.Contains(gateway.prompts[2], "call 2 says improved"))
}

func TestEngineRunLaterHorizonOverridesEarlierVerdict(t *testing.T) {
	gateway := &scriptedGateway{verdicts: []string{"improved", "improved", "improved", "regressed"}}
	engine, client := setupRunEngine(t, gateway)
	ctx := context.Background()

	_, changeID := seedTrackedChange(t, client, engine, 61)

	stats, err := engine.Run(ctx)
	require.NoError(t, err)

	// Day 30 validates, day 60 flips it; the final word stands and no
	// validated mail goes out for a change that ended regressed.
	assert.Equal(t, 4, stats.CheckpointsCreated)
	assert.Equal(t, 2, stats.Transitions)
	assert.Equal(t, 0, stats.MailsSent)

	ch, err := engine.changes.GetChange(ctx, changeID)
	require.NoError(t, err)
	assert.Equal(t, detectedchange.StatusRegressed, ch.Status)

	events, err := engine.changes.ListLifecycleEvents(ctx, changeID)
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, "validated", events[1].ToStatus)
	assert.Equal(t, "regressed", events[2].ToStatus)
}

func TestEngineRunIdempotentAcrossRuns(t *testing.T) {
	gateway := &scriptedGateway{verdicts: []string{"improved", "improved", "improved"}}
	engine, client := setupRunEngine(t, gateway)
	ctx := context.Background()

	seedTrackedChange(t, client, engine, 31)

	_, err := engine.Run(ctx)
	require.NoError(t, err)

	// A second run the same day finds nothing due and calls no assessor.
	stats, err := engine.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.ChangesDue)
	assert.Equal(t, 0, stats.CheckpointsCreated)
	assert.Len(t, gateway.prompts, 3)
}
