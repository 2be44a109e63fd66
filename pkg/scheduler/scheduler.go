// Package scheduler drives the cron surface: daily and weekly scan
// fan-out, the checkpoint batch, the daily digest, and the
// screenshot-service health probe. All schedule times are UTC
// wall-clock; each loop sleeps until the next occurrence rather than
// ticking, so a restart never double-fires within a day on its own.
// Cross-pod double-fires are absorbed by the per-day idempotency check.
package scheduler

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/loupe-hq/loupe/ent/analysis"
	"github.com/loupe-hq/loupe/ent/page"
	"github.com/loupe-hq/loupe/pkg/capture"
	"github.com/loupe-hq/loupe/pkg/checkpoint"
	"github.com/loupe-hq/loupe/pkg/config"
	"github.com/loupe-hq/loupe/pkg/events"
	"github.com/loupe-hq/loupe/pkg/mailer"
	"github.com/loupe-hq/loupe/pkg/models"
	"github.com/loupe-hq/loupe/pkg/services"
)

// Scheduler owns the background cron loops.
type Scheduler struct {
	cfg       *config.Config
	users     *services.UserService
	pages     *services.PageService
	analyses  *services.AnalysisService
	engine    *checkpoint.Engine
	capture   *capture.Service
	mail      *mailer.Service
	publisher *events.Publisher
	logger    *slog.Logger

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// Deps bundles the scheduler's collaborators.
type Deps struct {
	Config    *config.Config
	Users     *services.UserService
	Pages     *services.PageService
	Analyses  *services.AnalysisService
	Engine    *checkpoint.Engine
	Capture   *capture.Service
	Mail      *mailer.Service
	Publisher *events.Publisher
}

// New creates the scheduler.
func New(deps Deps) *Scheduler {
	return &Scheduler{
		cfg:       deps.Config,
		users:     deps.Users,
		pages:     deps.Pages,
		analyses:  deps.Analyses,
		engine:    deps.Engine,
		capture:   deps.Capture,
		mail:      deps.Mail,
		publisher: deps.Publisher,
		logger:    slog.Default().With("component", "scheduler"),
		stopCh:    make(chan struct{}),
	}
}

// Start launches all cron loops.
func (s *Scheduler) Start(ctx context.Context) {
	sc := s.cfg.Schedule
	s.loop(ctx, "daily_scans", func(now time.Time) time.Time {
		return nextAt(now, sc.DailyScanHour, sc.DailyScanMinute)
	}, s.runDailyScans)
	s.loop(ctx, "weekly_scans", func(now time.Time) time.Time {
		return nextWeekdayAt(now, time.Weekday(sc.WeeklyScanWeekday), sc.DailyScanHour, sc.DailyScanMinute)
	}, s.runWeeklyScans)
	s.loop(ctx, "checkpoint", func(now time.Time) time.Time {
		return nextAt(now, sc.CheckpointHour, sc.CheckpointMinute)
	}, s.runCheckpoint)
	s.loop(ctx, "digest", func(now time.Time) time.Time {
		return nextAt(now, sc.DigestHour, sc.DigestMinute)
	}, s.runDigest)

	s.wg.Add(1)
	go s.healthProbeLoop(ctx)

	s.logger.Info("Scheduler started",
		"daily", timeOfDay(sc.DailyScanHour, sc.DailyScanMinute),
		"weekly_weekday", time.Weekday(sc.WeeklyScanWeekday).String(),
		"checkpoint", timeOfDay(sc.CheckpointHour, sc.CheckpointMinute),
		"digest", timeOfDay(sc.DigestHour, sc.DigestMinute))
}

// Stop signals all loops and waits for them to drain.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() { close(s.stopCh) })
	s.wg.Wait()
	s.logger.Info("Scheduler stopped")
}

// loop sleeps until each next occurrence and runs the job. Job panics
// are not recovered; a crashing job is a bug, not an operational state.
func (s *Scheduler) loop(ctx context.Context, name string, next func(time.Time) time.Time, job func(context.Context)) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		log := s.logger.With("job", name)
		for {
			wait := time.Until(next(time.Now().UTC()))
			select {
			case <-ctx.Done():
				return
			case <-s.stopCh:
				return
			case <-time.After(wait):
			}
			log.Info("Cron job firing")
			job(ctx)
		}
	}()
}

func (s *Scheduler) runDailyScans(ctx context.Context) {
	s.fanOutScans(ctx, page.ScanFrequencyDaily, analysis.TriggerTypeDaily)
}

func (s *Scheduler) runWeeklyScans(ctx context.Context) {
	s.fanOutScans(ctx, page.ScanFrequencyWeekly, analysis.TriggerTypeWeekly)
}

// fanOutScans enqueues one pending analysis per page on the given
// frequency. The per-day existence check makes cron double-fires and
// multi-pod races safe; the event publish is separate from the insert
// so a publish failure never duplicates rows.
func (s *Scheduler) fanOutScans(ctx context.Context, freq page.ScanFrequency, trigger analysis.TriggerType) {
	log := s.logger.With("job", string(trigger)+"_scans")
	pages, err := s.pages.ListPagesByFrequency(ctx, freq)
	if err != nil {
		log.Error("Failed to list pages for fan-out", "error", err)
		return
	}

	today := time.Now().UTC()
	created := 0
	for _, p := range pages {
		exists, err := s.analyses.HasScanForDay(ctx, p.ID, trigger, today)
		if err != nil {
			log.Error("Idempotency check failed", "page_id", p.ID, "error", err)
			continue
		}
		if exists {
			continue
		}

		a, err := s.analyses.CreateAnalysis(ctx, models.CreateAnalysisRequest{
			PageID:      p.ID,
			UserID:      p.UserID,
			URL:         p.URL,
			TriggerType: string(trigger),
		})
		if errors.Is(err, services.ErrAlreadyExists) {
			continue
		}
		if err != nil {
			log.Error("Failed to enqueue scheduled analysis", "page_id", p.ID, "error", err)
			continue
		}
		created++

		if err := s.publisher.PublishAnalysisStatus(ctx, events.AnalysisStatusPayload{
			AnalysisID:  a.ID,
			PageID:      a.PageID,
			Status:      analysis.StatusPending,
			TriggerType: trigger,
		}); err != nil {
			log.Warn("Failed to publish scheduled analysis event", "analysis_id", a.ID, "error", err)
		}
	}
	log.Info("Scan fan-out complete", "pages", len(pages), "created", created)
}

func (s *Scheduler) runCheckpoint(ctx context.Context) {
	if _, err := s.engine.Run(ctx); err != nil {
		s.logger.Error("Checkpoint batch failed", "error", err)
	}
}

// runDigest aggregates the morning's completed scheduled scans per user
// and sends one consolidated mail. Users whose pages saw no changes get
// nothing.
func (s *Scheduler) runDigest(ctx context.Context) {
	log := s.logger.With("job", "digest")
	since := time.Now().UTC().Add(-s.cfg.Schedule.DigestLookback)
	completed, err := s.analyses.ListCompletedScheduledSince(ctx, since)
	if err != nil {
		log.Error("Failed to load completed scans for digest", "error", err)
		return
	}

	sent := 0
	for userID, pages := range buildDigests(completed) {
		u, err := s.users.GetUser(ctx, userID)
		if err != nil {
			log.Error("Failed to load user for digest", "user_id", userID, "error", err)
			continue
		}
		s.mail.SendDigest(ctx, mailer.DigestInput{Email: u.Email, Pages: pages})
		sent++
	}
	log.Info("Digest complete", "scans", len(completed), "mails", sent)
}

// healthProbeLoop pings the screenshot service on a fixed cadence so
// capture outages surface in logs before the next scan window.
func (s *Scheduler) healthProbeLoop(ctx context.Context) {
	defer s.wg.Done()
	ticker := time.NewTicker(s.cfg.Schedule.HealthProbeInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-s.stopCh:
			return
		case <-ticker.C:
			probeCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			err := s.capture.Healthy(probeCtx)
			cancel()
			if err != nil {
				s.logger.Warn("Screenshot service unhealthy", "error", err)
			}
		}
	}
}

// nextAt returns the next UTC occurrence of HH:MM strictly after now.
func nextAt(now time.Time, hour, minute int) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, time.UTC)
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

// nextWeekdayAt returns the next UTC occurrence of HH:MM on the given
// weekday strictly after now.
func nextWeekdayAt(now time.Time, weekday time.Weekday, hour, minute int) time.Time {
	next := nextAt(now, hour, minute)
	for next.Weekday() != weekday {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

func timeOfDay(hour, minute int) string {
	return time.Date(0, 1, 1, hour, minute, 0, 0, time.UTC).Format("15:04")
}
