package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path"
	"strings"
	"time"

	"github.com/loupe-hq/loupe/ent"
	"github.com/loupe-hq/loupe/ent/analysis"
	"github.com/loupe-hq/loupe/ent/detectedchange"
	"github.com/loupe-hq/loupe/pkg/capture"
	"github.com/loupe-hq/loupe/pkg/config"
	"github.com/loupe-hq/loupe/pkg/fingerprint"
	"github.com/loupe-hq/loupe/pkg/llm"
	"github.com/loupe-hq/loupe/pkg/mailer"
	"github.com/loupe-hq/loupe/pkg/models"
	"github.com/loupe-hq/loupe/pkg/services"
)

// frontendExtensions mark changed files that can affect rendered pages.
// A deploy touching none of these skips scanning entirely.
var frontendExtensions = map[string]bool{
	".html": true, ".htm": true, ".css": true, ".scss": true,
	".js": true, ".jsx": true, ".ts": true, ".tsx": true,
	".vue": true, ".svelte": true, ".astro": true, ".mdx": true,
	".png": true, ".jpg": true, ".jpeg": true, ".svg": true, ".webp": true,
}

// DeployExecutor runs the deploy-triggered scan path: wait for the
// build to settle, then quick-diff each affected page against its
// stable baseline, falling back to a full queued analysis when the
// baseline is stale or the diff cannot run.
type DeployExecutor struct {
	cfg       *config.Config
	users     *services.UserService
	pages     *services.PageService
	analyses  *services.AnalysisService
	changes   *services.ChangeService
	deploys   *services.DeployService
	capture   *capture.Service
	shim      *llm.Shim
	mail      *mailer.Service
	publisher changePublisher
	logger    *slog.Logger
}

// changePublisher is the slice of the executor the deploy path reuses
// for change lifecycle broadcasts.
type changePublisher interface {
	publishChange(ctx context.Context, pageID, changeID, element string, status detectedchange.Status)
}

// NewDeployExecutor creates the deploy scan executor. It shares the
// analysis executor's collaborators.
func NewDeployExecutor(deps ExecutorDeps, deploys *services.DeployService, exec *Executor) *DeployExecutor {
	return &DeployExecutor{
		cfg:       deps.Config,
		users:     deps.Users,
		pages:     deps.Pages,
		analyses:  deps.Analyses,
		changes:   deps.Changes,
		deploys:   deploys,
		capture:   deps.Capture,
		shim:      deps.Shim,
		mail:      deps.Mail,
		publisher: exec,
		logger:    slog.Default().With("component", "deploy_executor"),
	}
}

// ProcessDeploy handles one ingested deploy end to end. Run from a
// goroutine off the webhook handler; the webhook response never waits
// for the settle delay.
func (e *DeployExecutor) ProcessDeploy(ctx context.Context, deployID string) error {
	log := e.logger.With("deploy_id", deployID)

	d, err := e.deploys.GetDeploy(ctx, deployID)
	if err != nil {
		return fmt.Errorf("failed to load deploy: %w", err)
	}

	// Let the build land before capturing, otherwise the diff sees the
	// previous release.
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(e.cfg.Defaults.DeploySettleDelay):
	}

	u, err := e.users.GetUser(ctx, d.UserID)
	if err != nil {
		return fmt.Errorf("failed to load user: %w", err)
	}
	tier := services.EffectiveTier(u, timeNow())
	if !services.DeployScansAllowed(tier) {
		log.Info("Deploy scans not available on tier, skipping", "tier", tier)
		return e.deploys.CompleteDeploy(ctx, deployID)
	}

	if err := e.deploys.MarkScanning(ctx, deployID); err != nil {
		if errors.Is(err, services.ErrConcurrentModification) {
			log.Info("Deploy already being scanned elsewhere")
			return nil
		}
		return fmt.Errorf("failed to mark deploy scanning: %w", err)
	}

	pages, err := e.pages.ListPagesForUser(ctx, d.UserID)
	if err != nil {
		return fmt.Errorf("failed to list pages: %w", err)
	}

	includeMobile := services.MobileCaptureAllowed(tier)
	for _, p := range pages {
		if !deployAffectsPage(d.ChangedFiles, p.URL) {
			continue
		}
		if err := e.scanPage(ctx, d, p, u, includeMobile); err != nil {
			log.Error("Deploy scan failed for page", "page_id", p.ID, "error", err)
		}
	}

	return e.deploys.CompleteDeploy(ctx, deployID)
}

// scanPage runs the quick-diff path for one page, or enqueues a full
// analysis when the baseline is stale or the diff fails.
func (e *DeployExecutor) scanPage(ctx context.Context, d *ent.Deploy, p *ent.Page, u *ent.User, includeMobile bool) error {
	log := e.logger.With("deploy_id", d.ID, "page_id", p.ID)

	baseline, fresh, err := e.pages.BaselineFresh(ctx, p, e.cfg.Defaults.BaselineMaxAgeDays, timeNow())
	if err != nil {
		return fmt.Errorf("failed to check baseline: %w", err)
	}
	if !fresh {
		log.Info("Baseline stale or missing, enqueueing full analysis")
		return e.enqueueFullAnalysis(ctx, d, p, baseline)
	}

	shots, err := e.capture.Capture(ctx, &capture.Input{
		AnalysisID:    "deploy-" + d.ID,
		PageID:        p.ID,
		URL:           p.URL,
		IncludeMobile: includeMobile,
	})
	if err != nil {
		log.Warn("Deploy capture failed, enqueueing full analysis", "error", err)
		return e.enqueueFullAnalysis(ctx, d, p, baseline)
	}

	candidates, err := e.changes.WatchingCandidates(ctx, p.ID)
	if err != nil {
		return fmt.Errorf("failed to load watching candidates: %w", err)
	}

	diff, err := e.shim.QuickDiff(ctx, &llm.QuickDiffInput{
		AnalysisID:         "deploy-" + d.ID,
		URL:                p.URL,
		BaselineDesktopURL: orEmpty(baseline.DesktopScreenshotURL),
		CurrentDesktopURL:  shots.DesktopURL,
		BaselineMobileURL:  orEmpty(baseline.MobileScreenshotURL),
		CurrentMobileURL:   shots.MobileURL,
		WatchingChanges:    candidates,
	})
	if err != nil {
		log.Warn("Quick diff failed, enqueueing full analysis", "error", err)
		return e.enqueueFullAnalysis(ctx, d, p, baseline)
	}

	if !diff.HasChanges {
		log.Info("Quick diff found no changes")
		return nil
	}

	newChanges := e.upsertDiffChanges(ctx, d, p, diff.Changes, candidates, log)
	if len(newChanges) > 0 {
		first := newChanges[0]
		e.mail.NotifyChangeDetected(ctx, mailer.ChangeDetectedInput{
			Email:       u.Email,
			PageID:      p.ID,
			PageURL:     p.URL,
			Element:     first.Element,
			Description: orEmpty(first.Description),
		})
	}
	log.Info("Quick diff complete", "changes", len(diff.Changes), "new", len(newChanges))
	return nil
}

// upsertDiffChanges validates each diff item against the candidate set
// and writes matched updates or fresh watching rows. The quick-diff
// path creates no analysis row; changes reference only the deploy scan.
func (e *DeployExecutor) upsertDiffChanges(ctx context.Context, d *ent.Deploy, p *ent.Page, items []models.ChangeItem, candidates []fingerprint.Candidate, log *slog.Logger) []*ent.DetectedChange {
	matcher := fingerprint.Matcher{MinConfidence: e.cfg.Defaults.MinMatchConfidence}

	var newChanges []*ent.DetectedChange
	for _, item := range items {
		match := matcher.Validate(item, candidates)
		if match.Matched != nil {
			err := e.changes.UpdateMatched(ctx, models.UpdateMatchedChangeRequest{
				ChangeID:        match.Matched.ID,
				AfterValue:      item.After,
				Description:     item.Description,
				MatchConfidence: item.MatchConfidence,
				MatchRationale:  item.MatchRationale,
			})
			if err != nil {
				log.Error("Failed to refresh matched change", "change_id", match.Matched.ID, "error", err)
			}
			continue
		}
		change, err := e.changes.CreateChange(ctx, models.CreateChangeRequest{
			PageID:          p.ID,
			UserID:          d.UserID,
			Element:         item.Element,
			Scope:           item.Scope,
			BeforeValue:     item.Before,
			AfterValue:      item.After,
			Description:     item.Description,
			MatchConfidence: item.MatchConfidence,
			MatchRationale:  item.MatchRationale,
		})
		if errors.Is(err, services.ErrAlreadyExists) {
			continue
		}
		if err != nil {
			log.Error("Failed to create change from diff", "element", item.Element, "error", err)
			continue
		}
		newChanges = append(newChanges, change)
		e.publisher.publishChange(ctx, p.ID, change.ID, change.Element, detectedchange.StatusWatching)
	}
	return newChanges
}

// enqueueFullAnalysis creates a pending deploy-triggered analysis for
// the worker pool. A redelivered deploy produces the same analysis ID,
// so the insert is idempotent.
func (e *DeployExecutor) enqueueFullAnalysis(ctx context.Context, d *ent.Deploy, p *ent.Page, baseline *ent.Analysis) error {
	req := models.CreateAnalysisRequest{
		AnalysisID:  fmt.Sprintf("%s-%s", d.ID, p.ID),
		PageID:      p.ID,
		UserID:      d.UserID,
		URL:         p.URL,
		TriggerType: string(analysis.TriggerTypeDeploy),
		DeployID:    d.ID,
	}
	if baseline != nil {
		req.ParentAnalysisID = baseline.ID
	}
	_, err := e.analyses.CreateAnalysis(ctx, req)
	if errors.Is(err, services.ErrAlreadyExists) {
		return nil
	}
	return err
}

// deployAffectsPage applies the changed-files heuristic. An empty list
// (webhook without file detail) affects everything. Otherwise the
// deploy must touch at least one frontend file; a file whose path
// shares a segment with the page URL path affects that page directly,
// and shared frontend files (no segment hit anywhere) affect all pages.
func deployAffectsPage(changedFiles []string, pageURL string) bool {
	if len(changedFiles) == 0 {
		return true
	}

	frontend := false
	for _, f := range changedFiles {
		if !frontendExtensions[strings.ToLower(path.Ext(f))] {
			continue
		}
		frontend = true
		if fileTargetsPage(f, pageURL) {
			return true
		}
	}
	return frontend
}

// fileTargetsPage reports whether a changed file's path names a segment
// of the page's URL path, e.g. "src/pages/pricing.tsx" targets
// "https://example.com/pricing".
func fileTargetsPage(file, pageURL string) bool {
	idx := strings.Index(pageURL, "://")
	if idx < 0 {
		return false
	}
	rest := pageURL[idx+3:]
	slash := strings.Index(rest, "/")
	if slash < 0 {
		return false
	}
	for _, seg := range strings.Split(rest[slash+1:], "/") {
		if seg == "" {
			continue
		}
		base := strings.TrimSuffix(path.Base(file), path.Ext(file))
		if strings.EqualFold(base, seg) || strings.Contains(strings.ToLower(file), "/"+strings.ToLower(seg)+"/") {
			return true
		}
	}
	return false
}
