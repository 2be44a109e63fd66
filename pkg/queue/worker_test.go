package queue

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/loupe-hq/loupe/pkg/config"
	"github.com/loupe-hq/loupe/pkg/fingerprint"
	"github.com/loupe-hq/loupe/pkg/models"
)

func TestPollIntervalJitterBounds(t *testing.T) {
	w := &Worker{config: &config.QueueConfig{
		PollInterval:       time.Second,
		PollIntervalJitter: 500 * time.Millisecond,
	}}

	// Poll interval should stay within [base - jitter, base + jitter].
	for i := 0; i < 100; i++ {
		d := w.pollInterval()
		assert.GreaterOrEqual(t, d, 500*time.Millisecond)
		assert.LessOrEqual(t, d, 1500*time.Millisecond)
	}
}

func TestPollIntervalNoJitter(t *testing.T) {
	w := &Worker{config: &config.QueueConfig{PollInterval: 2 * time.Second}}
	assert.Equal(t, 2*time.Second, w.pollInterval())
}

func TestWorkerHealthTracking(t *testing.T) {
	w := NewWorker("w-0", "pod-1", nil, config.DefaultQueueConfig(), nil, nil)

	h := w.Health()
	assert.Equal(t, string(WorkerStatusIdle), h.Status)
	assert.Empty(t, h.CurrentAnalysisID)

	w.setStatus(WorkerStatusWorking, "an-1")
	h = w.Health()
	assert.Equal(t, string(WorkerStatusWorking), h.Status)
	assert.Equal(t, "an-1", h.CurrentAnalysisID)
}

func TestWorkerStopIdempotent(t *testing.T) {
	w := NewWorker("w-0", "pod-1", nil, config.DefaultQueueConfig(), nil, nil)
	w.Stop()
	w.Stop()
}

func TestWatchingItemsMergesScanAndCandidates(t *testing.T) {
	candidates := []fingerprint.Candidate{
		{ID: "c1", Element: "hero headline", Status: "watching"},
		{ID: "c2", Element: "cta button", Status: "watching"},
	}
	scan := []models.ChangeItem{
		{Element: "hero headline", MatchedChangeID: "c1"},
		{Element: "footer links"},
	}

	items := watchingItems(scan, candidates)

	assert.Len(t, items, 3)
	assert.Equal(t, "c1", items[0].ID)
	assert.Equal(t, "c2", items[1].ID)
	assert.Equal(t, "footer links", items[2].Element)
	assert.Equal(t, "watching", items[2].Status)
}

func TestChronicleResultNilSafety(t *testing.T) {
	var c *chronicleResult
	assert.Zero(t, c.newChangeCount())
	assert.Zero(t, c.revertedCount())
}
