// Package checkpoint implements the daily correlation sweep: for every
// non-reverted change it computes due horizons, pulls metric windows
// from the user's analytics provider, records an assessment per
// horizon, and applies the horizon-gated lifecycle transitions.
package checkpoint

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/loupe-hq/loupe/ent"
	"github.com/loupe-hq/loupe/ent/detectedchange"
	"github.com/loupe-hq/loupe/pkg/analytics"
	"github.com/loupe-hq/loupe/pkg/config"
	"github.com/loupe-hq/loupe/pkg/events"
	"github.com/loupe-hq/loupe/pkg/horizon"
	"github.com/loupe-hq/loupe/pkg/llm"
	"github.com/loupe-hq/loupe/pkg/mailer"
	"github.com/loupe-hq/loupe/pkg/models"
	"github.com/loupe-hq/loupe/pkg/progress"
	"github.com/loupe-hq/loupe/pkg/services"
)

// Engine runs the daily checkpoint batch.
type Engine struct {
	cfg         *config.Config
	users       *services.UserService
	pages       *services.PageService
	analyses    *services.AnalysisService
	changes     *services.ChangeService
	checkpoints *services.CheckpointService
	connections *services.ConnectionService
	feedback    *services.FeedbackService
	factory     *analytics.Factory
	shim        *llm.Shim
	composer    *progress.Composer
	publisher   *events.Publisher
	mail        *mailer.Service
	logger      *slog.Logger
}

// EngineDeps bundles the engine's collaborators. Publisher and Mail may
// be nil; both are nil-safe.
type EngineDeps struct {
	Config      *config.Config
	Users       *services.UserService
	Pages       *services.PageService
	Analyses    *services.AnalysisService
	Changes     *services.ChangeService
	Checkpoints *services.CheckpointService
	Connections *services.ConnectionService
	Feedback    *services.FeedbackService
	Factory     *analytics.Factory
	Shim        *llm.Shim
	Composer    *progress.Composer
	Publisher   *events.Publisher
	Mail        *mailer.Service
}

// NewEngine creates the checkpoint engine.
func NewEngine(deps EngineDeps) *Engine {
	return &Engine{
		cfg:         deps.Config,
		users:       deps.Users,
		pages:       deps.Pages,
		analyses:    deps.Analyses,
		changes:     deps.Changes,
		checkpoints: deps.Checkpoints,
		connections: deps.Connections,
		feedback:    deps.Feedback,
		factory:     deps.Factory,
		shim:        deps.Shim,
		composer:    deps.Composer,
		publisher:   deps.Publisher,
		mail:        deps.Mail,
		logger:      slog.Default().With("component", "checkpoint_engine"),
	}
}

// RunStats summarizes one batch for logging and the trigger endpoint.
type RunStats struct {
	ChangesScanned     int `json:"changes_scanned"`
	ChangesDue         int `json:"changes_due"`
	CheckpointsCreated int `json:"checkpoints_created"`
	Transitions        int `json:"transitions"`
	PagesRecomposed    int `json:"pages_recomposed"`
	MailsSent          int `json:"mails_sent"`
}

// dueChange pairs a change with its newly due horizons.
type dueChange struct {
	change   *ent.DetectedChange
	horizons []int
}

// pendingVerdictMail coalesces verdict notifications per change within
// one run: a change that validates at D+30 and flips at D+60 in the
// same batch sends only the final word, and only terminal-positive
// verdicts mail at all.
type pendingVerdictMail struct {
	userID string
	pageID string
	input  mailer.VerdictInput
}

// Run executes one full checkpoint batch. Errors on individual changes
// are logged and skipped; only infrastructure failures abort the run.
func (e *Engine) Run(ctx context.Context) (RunStats, error) {
	now := time.Now().UTC()
	stats := RunStats{}
	log := e.logger.With("run_date", now.Format("2006-01-02"))
	log.Info("Checkpoint batch starting")

	due, err := e.collectDue(ctx, now, &stats)
	if err != nil {
		return stats, err
	}
	if len(due) == 0 {
		log.Info("No due horizons", "changes_scanned", stats.ChangesScanned)
		return stats, nil
	}
	stats.ChangesDue = len(due)

	// Group by user so provider credentials are decrypted once per user
	// and never outlive the sub-batch.
	byUser := make(map[string][]dueChange)
	for _, d := range due {
		byUser[d.change.UserID] = append(byUser[d.change.UserID], d)
	}

	touchedPages := make(map[string]bool)
	pendingMail := make(map[string]pendingVerdictMail)

	for userID, changes := range byUser {
		provider := e.buildProvider(ctx, userID)
		for _, d := range changes {
			e.processChange(ctx, d, provider, now, &stats, touchedPages, pendingMail)
		}
	}

	e.recomposePages(ctx, touchedPages, &stats)
	e.sendVerdictMail(ctx, pendingMail, &stats)

	log.Info("Checkpoint batch complete",
		"changes_scanned", stats.ChangesScanned,
		"changes_due", stats.ChangesDue,
		"checkpoints_created", stats.CheckpointsCreated,
		"transitions", stats.Transitions,
		"pages_recomposed", stats.PagesRecomposed,
		"mails_sent", stats.MailsSent)
	return stats, nil
}

// collectDue pages through eligible changes and keeps those with newly
// due horizons.
func (e *Engine) collectDue(ctx context.Context, now time.Time, stats *RunStats) ([]dueChange, error) {
	var due []dueChange
	afterID := ""
	for {
		batch, err := e.changes.ListCheckpointEligible(ctx, afterID, e.cfg.Checkpoint.PageSize)
		if err != nil {
			return nil, fmt.Errorf("failed to scan eligible changes: %w", err)
		}
		if len(batch) == 0 {
			return due, nil
		}
		for _, ch := range batch {
			stats.ChangesScanned++
			existing, err := e.checkpoints.ExistingHorizons(ctx, ch.ID)
			if err != nil {
				e.logger.Error("Failed to load existing horizons", "change_id", ch.ID, "error", err)
				continue
			}
			horizons := horizon.Due(ch.FirstDetectedAt, now, existing)
			if len(horizons) > 0 {
				due = append(due, dueChange{change: ch, horizons: horizons})
			}
		}
		afterID = batch[len(batch)-1].ID
	}
}

// buildProvider resolves one user's analytics provider, downgrading to
// the none provider on any failure. A broken connection is flagged for
// the UI but never aborts the batch.
func (e *Engine) buildProvider(ctx context.Context, userID string) analytics.Provider {
	conn, err := e.connections.ActiveForUser(ctx, userID)
	if err != nil {
		e.logger.Error("Failed to load analytics connection", "user_id", userID, "error", err)
		return analytics.None()
	}
	if conn == nil {
		return analytics.None()
	}
	provider, err := e.factory.Build(string(conn.Provider), conn.EncryptedCredentials)
	if err != nil {
		e.logger.Warn("Analytics connection unusable, downgrading to none",
			"user_id", userID,
			"provider", conn.Provider,
			"error", err)
		if markErr := e.connections.MarkError(ctx, conn.ID); markErr != nil {
			e.logger.Error("Failed to flag broken connection", "connection_id", conn.ID, "error", markErr)
		}
		return analytics.None()
	}
	return provider
}

// processChange evaluates every due horizon of one change in ascending
// order so a D+60 verdict can override a D+30 terminal within the same
// catch-up run.
func (e *Engine) processChange(ctx context.Context, d dueChange, provider analytics.Provider, now time.Time, stats *RunStats, touchedPages map[string]bool, pendingMail map[string]pendingVerdictMail) {
	ch := d.change
	log := e.logger.With("change_id", ch.ID, "page_id", ch.PageID)

	page, err := e.pages.GetPage(ctx, ch.PageID)
	if err != nil {
		log.Error("Failed to load page for checkpoint", "error", err)
		return
	}

	currentStatus := ch.Status
	for _, h := range d.horizons {
		envelope := e.gatherMetrics(ctx, provider, page.URL, ch.FirstDetectedAt, h)
		assessment := e.assess(ctx, ch, page, h, envelope, log)

		before, after := horizon.Windows(ch.FirstDetectedAt, h)
		cp, err := e.checkpoints.CreateCheckpoint(ctx, models.CreateCheckpointRequest{
			ChangeID:     ch.ID,
			HorizonDays:  h,
			BeforeWindow: before,
			AfterWindow:  after,
			Metrics:      envelope,
			Assessment:   assessment.Assessment,
			Confidence:   assessment.Confidence,
			Reasoning:    assessment.Reasoning,
			DataSources:  envelope.Sources,
			Provider:     provider.Name(),
		})
		if errors.Is(err, services.ErrAlreadyExists) {
			// Another pod already recorded this horizon; its transition
			// stands and this run must not re-apply it.
			log.Info("Checkpoint already recorded elsewhere", "horizon_days", h)
			continue
		}
		if err != nil {
			log.Error("Failed to create checkpoint", "horizon_days", h, "error", err)
			continue
		}
		stats.CheckpointsCreated++

		// The observation snapshot lives on the change row regardless of
		// whether a transition follows.
		metricsMap, mapErr := models.ToMap(envelope)
		if mapErr != nil {
			metricsMap = nil
		}
		if err := e.changes.RecordObservation(ctx, ch.ID, assessment.Reasoning, metricsMap); err != nil {
			log.Error("Failed to record observation", "error", err)
		}

		// Status must be re-read before gating: a scan may have reverted
		// the change mid-batch.
		fresh, err := e.changes.GetChange(ctx, ch.ID)
		if err != nil {
			log.Error("Failed to re-read change before transition", "error", err)
			continue
		}
		currentStatus = fresh.Status

		target := horizon.Transition(string(currentStatus), h, assessment.Assessment)
		if target == "" {
			continue
		}

		_, err = e.changes.Transition(ctx, models.TransitionRequest{
			ChangeID:     ch.ID,
			FromStatus:   string(currentStatus),
			ToStatus:     target,
			Reason:       fmt.Sprintf("day-%d checkpoint: %s", h, assessment.Assessment),
			ActorType:    "system",
			CheckpointID: cp.ID,
		})
		if errors.Is(err, services.ErrConcurrentModification) {
			log.Warn("Transition lost race, skipping", "horizon_days", h, "target", target)
			continue
		}
		if err != nil {
			log.Error("Failed to transition change", "horizon_days", h, "target", target, "error", err)
			continue
		}
		stats.Transitions++
		currentStatus = detectedchange.Status(target)
		touchedPages[ch.PageID] = true

		_ = e.publisher.PublishChangeStatus(ctx, events.ChangeStatusPayload{
			ChangeID: ch.ID,
			PageID:   ch.PageID,
			Element:  ch.Element,
			Status:   currentStatus,
		})

		// Coalesce verdict mail per change: only the final verdict of
		// the run sends, and only when it lands validated.
		if target == string(detectedchange.StatusValidated) {
			pendingMail[ch.ID] = pendingVerdictMail{
				userID: ch.UserID,
				pageID: ch.PageID,
				input: mailer.VerdictInput{
					PageID:      ch.PageID,
					PageURL:     page.URL,
					Element:     ch.Element,
					Verdict:     target,
					HorizonDays: h,
					Reasoning:   assessment.Reasoning,
				},
			}
		} else {
			delete(pendingMail, ch.ID)
		}
	}
}

// sendVerdictMail delivers the coalesced validated notifications.
func (e *Engine) sendVerdictMail(ctx context.Context, pending map[string]pendingVerdictMail, stats *RunStats) {
	for changeID, pm := range pending {
		u, err := e.users.GetUser(ctx, pm.userID)
		if err != nil {
			e.logger.Error("Failed to load user for verdict mail", "change_id", changeID, "error", err)
			continue
		}
		input := pm.input
		input.Email = u.Email
		e.mail.NotifyVerdict(ctx, input)
		stats.MailsSent++
	}
}
