// Package cleanup provides data retention sweeps.
package cleanup

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/loupe-hq/loupe/ent"
	"github.com/loupe-hq/loupe/ent/analysis"
	"github.com/loupe-hq/loupe/pkg/config"
)

// Service periodically enforces retention policies:
//   - Prunes events rows past their TTL (the live-update catchup log
//     only needs to cover reconnect windows)
//   - Prunes failed analyses past the retention window (failed rows are
//     never a baseline or chronicle, so nothing references them)
//
// All operations are idempotent and safe to run from multiple pods.
type Service struct {
	config *config.RetentionConfig
	client *ent.Client
	db     *sql.DB
	logger *slog.Logger

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service. The db parameter is the raw
// connection pool; the events table is not an ORM entity.
func NewService(cfg *config.RetentionConfig, client *ent.Client, db *sql.DB) *Service {
	return &Service{
		config: cfg,
		client: client,
		db:     db,
		logger: slog.Default().With("component", "cleanup"),
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	s.logger.Info("Cleanup service started",
		"event_ttl", s.config.EventTTL,
		"failed_analysis_retention_days", s.config.FailedAnalysisRetentionDays,
		"interval", s.config.Interval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	s.logger.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.runAll(ctx)

	ticker := time.NewTicker(s.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runAll(ctx)
		}
	}
}

func (s *Service) runAll(ctx context.Context) {
	if count, err := s.PruneEvents(ctx); err != nil {
		s.logger.Error("Retention: event prune failed", "error", err)
	} else if count > 0 {
		s.logger.Info("Retention: pruned old events", "count", count)
	}

	if count, err := s.PruneFailedAnalyses(ctx); err != nil {
		s.logger.Error("Retention: failed-analysis prune failed", "error", err)
	} else if count > 0 {
		s.logger.Info("Retention: pruned old failed analyses", "count", count)
	}
}

// PruneEvents deletes events rows older than the TTL and returns the
// number removed.
func (s *Service) PruneEvents(ctx context.Context) (int64, error) {
	cutoff := time.Now().Add(-s.config.EventTTL)
	res, err := s.db.ExecContext(ctx, `DELETE FROM events WHERE created_at < $1`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to prune events: %w", err)
	}
	count, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count pruned events: %w", err)
	}
	return count, nil
}

// PruneFailedAnalyses deletes terminally failed analyses older than the
// retention window and returns the number removed.
func (s *Service) PruneFailedAnalyses(ctx context.Context) (int, error) {
	cutoff := time.Now().AddDate(0, 0, -s.config.FailedAnalysisRetentionDays)
	count, err := s.client.Analysis.Delete().
		Where(
			analysis.StatusEQ(analysis.StatusFailed),
			analysis.CreatedAtLT(cutoff),
		).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to prune failed analyses: %w", err)
	}
	return count, nil
}
