package queue

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/loupe-hq/loupe/ent"
	"github.com/loupe-hq/loupe/ent/analysis"
	"github.com/loupe-hq/loupe/pkg/capture"
	"github.com/loupe-hq/loupe/pkg/config"
	"github.com/loupe-hq/loupe/pkg/events"
	"github.com/loupe-hq/loupe/pkg/llm"
	"github.com/loupe-hq/loupe/pkg/mailer"
	"github.com/loupe-hq/loupe/pkg/models"
	"github.com/loupe-hq/loupe/pkg/progress"
	"github.com/loupe-hq/loupe/pkg/services"
)

// Executor runs the scan workflow for one claimed analysis: capture,
// vision audit, chronicle update, terminal write, completion tracking.
type Executor struct {
	cfg         *config.Config
	users       *services.UserService
	pages       *services.PageService
	analyses    *services.AnalysisService
	changes     *services.ChangeService
	suggestions *services.SuggestionService
	checkpoints *services.CheckpointService
	feedback    *services.FeedbackService
	deploys     *services.DeployService
	capture     *capture.Service
	shim        *llm.Shim
	composer    *progress.Composer
	publisher   *events.Publisher
	mail        *mailer.Service
	logger      *slog.Logger
}

// ExecutorDeps bundles the executor's collaborators. Publisher and Mail
// may be nil; both are nil-safe.
type ExecutorDeps struct {
	Config      *config.Config
	Users       *services.UserService
	Pages       *services.PageService
	Analyses    *services.AnalysisService
	Changes     *services.ChangeService
	Suggestions *services.SuggestionService
	Checkpoints *services.CheckpointService
	Feedback    *services.FeedbackService
	Deploys     *services.DeployService
	Capture     *capture.Service
	Shim        *llm.Shim
	Composer    *progress.Composer
	Publisher   *events.Publisher
	Mail        *mailer.Service
}

// NewExecutor creates the scan workflow executor.
func NewExecutor(deps ExecutorDeps) *Executor {
	return &Executor{
		cfg:         deps.Config,
		users:       deps.Users,
		pages:       deps.Pages,
		analyses:    deps.Analyses,
		changes:     deps.Changes,
		suggestions: deps.Suggestions,
		checkpoints: deps.Checkpoints,
		feedback:    deps.Feedback,
		deploys:     deps.Deploys,
		capture:     deps.Capture,
		shim:        deps.Shim,
		composer:    deps.Composer,
		publisher:   deps.Publisher,
		mail:        deps.Mail,
		logger:      slog.Default().With("component", "analysis_executor"),
	}
}

// Execute runs the workflow. The terminal complete write happens here;
// failures are returned for the worker's retry-or-fail decision.
func (e *Executor) Execute(ctx context.Context, a *ent.Analysis) *ExecutionResult {
	log := e.logger.With("analysis_id", a.ID, "page_id", a.PageID, "trigger_type", a.TriggerType)

	// ────────────────────────────────────────────────────────────
	// Step 1: load context and resolve the tier gate
	// ────────────────────────────────────────────────────────────

	page, err := e.pages.GetPage(ctx, a.PageID)
	if err != nil {
		return &ExecutionResult{
			Status: analysis.StatusFailed,
			Error:  fmt.Errorf("failed to load page: %w", err),
		}
	}
	u, err := e.users.GetUser(ctx, a.UserID)
	if err != nil {
		return &ExecutionResult{
			Status: analysis.StatusFailed,
			Error:  fmt.Errorf("failed to load user: %w", err),
		}
	}
	tier := services.EffectiveTier(u, timeNow())
	includeMobile := services.MobileCaptureAllowed(tier)

	e.publishStatus(ctx, a, analysis.StatusProcessing)
	e.publishStep(ctx, a, "capture")

	// ────────────────────────────────────────────────────────────
	// Step 2: capture screenshots
	// ────────────────────────────────────────────────────────────

	shots, err := e.capture.Capture(ctx, &capture.Input{
		AnalysisID:    a.ID,
		PageID:        a.PageID,
		URL:           a.URL,
		IncludeMobile: includeMobile,
	})
	if err != nil {
		return &ExecutionResult{
			Status:    analysis.StatusFailed,
			Retryable: true,
			Error:     fmt.Errorf("capture failed: %w", err),
		}
	}
	// Persist capture URLs immediately so a later failure still leaves
	// the screenshots visible.
	if err := e.analyses.SetScreenshots(ctx, a.ID, shots.DesktopURL, shots.MobileURL); err != nil {
		return &ExecutionResult{
			Status:    analysis.StatusFailed,
			Retryable: true,
			Error:     fmt.Errorf("failed to persist screenshots: %w", err),
		}
	}
	log.Info("Capture complete", "mobile", shots.MobileURL != "")
	e.publishStep(ctx, a, "audit")

	// ────────────────────────────────────────────────────────────
	// Step 3: vision page audit
	// ────────────────────────────────────────────────────────────

	audit, err := e.shim.PageAudit(ctx, &llm.PageAuditInput{
		AnalysisID:      a.ID,
		URL:             a.URL,
		DesktopImageURL: shots.DesktopURL,
		MobileImageURL:  shots.MobileURL,
	})
	if err != nil {
		return &ExecutionResult{
			Status:    analysis.StatusFailed,
			Retryable: true,
			Error:     fmt.Errorf("page audit failed: %w", err),
		}
	}
	log.Info("Audit complete", "findings", audit.FindingsCount, "verdict", audit.Verdict)
	e.publishStep(ctx, a, "chronicle")

	// ────────────────────────────────────────────────────────────
	// Step 4: chronicle update (change detection + progress)
	// ────────────────────────────────────────────────────────────

	chronicle := e.runChronicle(ctx, a, page, audit, shots)

	// ────────────────────────────────────────────────────────────
	// Step 5: terminal write
	// ────────────────────────────────────────────────────────────

	structured, err := models.ToMap(audit)
	if err != nil {
		return &ExecutionResult{
			Status: analysis.StatusFailed,
			Error:  fmt.Errorf("failed to encode audit: %w", err),
		}
	}
	input := services.CompleteInput{
		FreeformOutput:   audit.Summary,
		StructuredOutput: structured,
	}
	if chronicle != nil {
		input.ChangesSummary = chronicle.summaryMap
	}
	if err := e.analyses.CompleteAnalysis(ctx, a.ID, input); err != nil {
		return &ExecutionResult{
			Status:    analysis.StatusFailed,
			Retryable: true,
			Error:     fmt.Errorf("failed to complete analysis: %w", err),
		}
	}

	// ────────────────────────────────────────────────────────────
	// Step 6: completion tracking
	// ────────────────────────────────────────────────────────────

	e.trackCompletion(ctx, a, page, chronicle, log)

	return &ExecutionResult{Status: analysis.StatusComplete}
}

// trackCompletion updates page pointers, the baseline policy, and
// outbound notifications. All best-effort: the analysis is already
// terminal.
func (e *Executor) trackCompletion(ctx context.Context, a *ent.Analysis, page *ent.Page, chronicle *chronicleResult, log *slog.Logger) {
	if err := e.pages.RecordScan(ctx, a.PageID, a.ID); err != nil {
		log.Error("Failed to record scan pointer", "error", err)
	}

	// Scheduled scans always roll the baseline forward; manual and
	// deploy scans only seed a page that never had one.
	updateBaseline := a.TriggerType == analysis.TriggerTypeDaily ||
		a.TriggerType == analysis.TriggerTypeWeekly ||
		page.StableBaselineID == nil || *page.StableBaselineID == ""
	if updateBaseline {
		if err := e.pages.SetStableBaseline(ctx, a.PageID, a.ID); err != nil {
			log.Error("Failed to update stable baseline", "error", err)
		}
	}

	e.publishStatus(ctx, a, analysis.StatusComplete)

	if chronicle != nil && len(chronicle.newChanges) > 0 {
		u, err := e.users.GetUser(ctx, a.UserID)
		if err != nil {
			log.Error("Failed to load user for notification", "error", err)
			return
		}
		first := chronicle.newChanges[0]
		e.mail.NotifyChangeDetected(ctx, mailer.ChangeDetectedInput{
			Email:       u.Email,
			PageID:      a.PageID,
			PageURL:     a.URL,
			Element:     first.Element,
			Description: orEmpty(first.Description),
		})
	}

	log.Info("Scan workflow complete",
		"new_changes", chronicle.newChangeCount(),
		"reverted", chronicle.revertedCount())
}

// publishStatus broadcasts an analysis lifecycle event. Best-effort.
func (e *Executor) publishStatus(ctx context.Context, a *ent.Analysis, status analysis.Status) {
	if err := e.publisher.PublishAnalysisStatus(ctx, events.AnalysisStatusPayload{
		AnalysisID:  a.ID,
		PageID:      a.PageID,
		Status:      status,
		TriggerType: a.TriggerType,
	}); err != nil {
		e.logger.Warn("Failed to publish analysis status", "analysis_id", a.ID, "error", err)
	}
}

// publishStep broadcasts a transient per-step progress event.
func (e *Executor) publishStep(ctx context.Context, a *ent.Analysis, step string) {
	_ = e.publisher.PublishScanProgress(ctx, events.ScanProgressPayload{
		AnalysisID: a.ID,
		PageID:     a.PageID,
		Step:       step,
	})
}

func orEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
