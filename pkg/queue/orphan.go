package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/loupe-hq/loupe/ent"
	"github.com/loupe-hq/loupe/ent/analysis"
	"github.com/loupe-hq/loupe/pkg/services"
)

// orphanState tracks orphan recovery stats for pool health reporting.
type orphanState struct {
	mu               sync.Mutex
	lastOrphanScan   time.Time
	orphansRecovered int
}

// runOrphanDetection periodically scans for processing analyses whose
// heartbeat went stale and recovers them. All pods run this
// independently; recovery is guarded by conditional updates.
func (p *WorkerPool) runOrphanDetection(ctx context.Context) {
	ticker := time.NewTicker(p.config.OrphanDetectionInterval)
	defer ticker.Stop()

	slog.Info("Orphan detection started",
		"pod_id", p.podID,
		"interval", p.config.OrphanDetectionInterval,
		"threshold", p.config.OrphanThreshold)

	for {
		select {
		case <-p.stopCh:
			slog.Info("Orphan detection shutting down")
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			recovered := p.recoverOrphans(ctx)
			p.orphans.mu.Lock()
			p.orphans.lastOrphanScan = time.Now()
			p.orphans.orphansRecovered += recovered
			p.orphans.mu.Unlock()
		}
	}
}

// recoverOrphans requeues stale analyses with remaining attempt budget
// and fails the rest. Returns the number recovered either way.
func (p *WorkerPool) recoverOrphans(ctx context.Context) int {
	orphans, err := p.analyses.FindOrphaned(ctx, p.config.OrphanThreshold)
	if err != nil {
		slog.Error("Orphan scan failed", "pod_id", p.podID, "error", err)
		return 0
	}
	if len(orphans) == 0 {
		return 0
	}

	slog.Warn("Detected orphaned analyses", "count", len(orphans), "pod_id", p.podID)

	recovered := 0
	for _, a := range orphans {
		if err := p.recoverOrphan(ctx, a); err != nil {
			slog.Error("Failed to recover orphaned analysis",
				"analysis_id", a.ID,
				"orphan_pod_id", a.PodID,
				"error", err)
			continue
		}
		recovered++
	}
	return recovered
}

// recoverOrphan requeues one orphan if its attempt budget allows another
// run, otherwise marks it failed. A concurrent-modification error means
// another pod got there first.
func (p *WorkerPool) recoverOrphan(ctx context.Context, a *ent.Analysis) error {
	log := slog.With("analysis_id", a.ID, "orphan_pod_id", a.PodID, "attempts", a.Attempts)

	lastHeartbeat := "unknown"
	if a.LastInteractionAt != nil {
		lastHeartbeat = a.LastInteractionAt.Format(time.RFC3339)
	}

	if a.Attempts <= p.config.MaxWorkflowRetries {
		err := p.analyses.RequeueForRetry(ctx, a.ID)
		if errors.Is(err, services.ErrConcurrentModification) {
			log.Info("Orphan already recovered by another pod")
			return nil
		}
		if err != nil {
			return err
		}
		log.Warn("Orphaned analysis requeued", "last_heartbeat", lastHeartbeat)
		return nil
	}

	msg := fmt.Sprintf("orphaned: no heartbeat since %s, retry budget exhausted", lastHeartbeat)
	if err := p.analyses.FailAnalysis(ctx, a.ID, msg); err != nil {
		return err
	}
	log.Warn("Orphaned analysis marked failed", "last_heartbeat", lastHeartbeat)
	return nil
}

// CleanupStartupOrphans requeues analyses left in processing by a
// previous run of this pod. Called once during startup, before the
// worker pool begins claiming.
func CleanupStartupOrphans(ctx context.Context, client *ent.Client, analyses *services.AnalysisService, podID string) error {
	stale, err := client.Analysis.Query().
		Where(
			analysis.StatusEQ(analysis.StatusProcessing),
			analysis.PodIDEQ(podID),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query startup orphans: %w", err)
	}
	if len(stale) == 0 {
		return nil
	}

	slog.Warn("Found startup orphans from previous run",
		"pod_id", podID,
		"count", len(stale))

	for _, a := range stale {
		if err := analyses.RequeueForRetry(ctx, a.ID); err != nil {
			slog.Error("Failed to requeue startup orphan", "analysis_id", a.ID, "error", err)
			continue
		}
		slog.Info("Startup orphan requeued", "analysis_id", a.ID)
	}
	return nil
}
