package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/loupe-hq/loupe/pkg/fingerprint"
	"github.com/loupe-hq/loupe/pkg/models"
)

// Shim wraps the gateway client with typed per-task calls: prompt
// construction, retry, JSON extraction, and shape validation. Callers
// never see raw model text.
type Shim struct {
	client Client
	retry  RetryConfig
	logger *slog.Logger
}

// NewShim creates a typed call shim around a gateway client.
func NewShim(client Client, retry RetryConfig, logger *slog.Logger) *Shim {
	return &Shim{
		client: client,
		retry:  retry,
		logger: logger.With("component", "llm_shim"),
	}
}

// ────────────────────────────────────────────────────────────
// Page audit
// ────────────────────────────────────────────────────────────

// PageAuditInput carries the capture URLs for a full vision audit.
// MobileImageURL may be empty when the mobile capture failed.
type PageAuditInput struct {
	AnalysisID      string
	URL             string
	DesktopImageURL string
	MobileImageURL  string
}

// PageAudit runs the full vision audit. Failure here is fatal for the
// analysis, so the error propagates after retries.
func (s *Shim) PageAudit(ctx context.Context, in *PageAuditInput) (*models.StructuredAudit, error) {
	images := []string{in.DesktopImageURL}
	if in.MobileImageURL != "" {
		images = append(images, in.MobileImageURL)
	}
	resp, err := completeWithRetry(ctx, s.client, s.retry, s.logger, &Request{
		Task:         TaskPageAudit,
		SystemPrompt: auditSystemPrompt,
		UserPrompt:   auditUserPrompt(in.URL, in.MobileImageURL != ""),
		ImageURLs:    images,
		MaxTokens:    8192,
		ReferenceID:  in.AnalysisID,
	})
	if err != nil {
		return nil, fmt.Errorf("page audit failed: %w", err)
	}

	var audit models.StructuredAudit
	if err := decodeResponse(resp.Text, &audit); err != nil {
		return nil, fmt.Errorf("page audit returned unusable output: %w", err)
	}
	if audit.FindingsCount != len(audit.Findings) {
		audit.FindingsCount = len(audit.Findings)
	}
	return &audit, nil
}

// ────────────────────────────────────────────────────────────
// Quick diff
// ────────────────────────────────────────────────────────────

// QuickDiffInput compares a stable baseline against a fresh capture.
// The mobile pair is included only when both sides exist.
type QuickDiffInput struct {
	AnalysisID         string
	URL                string
	BaselineDesktopURL string
	CurrentDesktopURL  string
	BaselineMobileURL  string
	CurrentMobileURL   string
	// WatchingChanges is the closed id set the model may match against.
	WatchingChanges []fingerprint.Candidate
}

// QuickDiffResult is the parsed diff output. Match ids inside Changes
// are model-proposed and must still pass fingerprint validation.
type QuickDiffResult struct {
	HasChanges bool                `json:"hasChanges"`
	Changes    []models.ChangeItem `json:"changes"`
}

// QuickDiff compares baseline and current captures. On persistent
// failure the caller falls back to a full audit rather than losing the
// scan.
func (s *Shim) QuickDiff(ctx context.Context, in *QuickDiffInput) (*QuickDiffResult, error) {
	images := []string{in.BaselineDesktopURL, in.CurrentDesktopURL}
	hasMobilePair := in.BaselineMobileURL != "" && in.CurrentMobileURL != ""
	if hasMobilePair {
		images = append(images, in.BaselineMobileURL, in.CurrentMobileURL)
	}
	resp, err := completeWithRetry(ctx, s.client, s.retry, s.logger, &Request{
		Task:         TaskQuickDiff,
		SystemPrompt: quickDiffSystemPrompt,
		UserPrompt:   quickDiffUserPrompt(in.URL, hasMobilePair, in.WatchingChanges),
		ImageURLs:    images,
		MaxTokens:    4096,
		ReferenceID:  in.AnalysisID,
	})
	if err != nil {
		return nil, fmt.Errorf("quick diff failed: %w", err)
	}

	var result QuickDiffResult
	if err := decodeResponse(resp.Text, &result); err != nil {
		return nil, fmt.Errorf("quick diff returned unusable output: %w", err)
	}
	if len(result.Changes) > 0 {
		result.HasChanges = true
	}
	return &result, nil
}

// ────────────────────────────────────────────────────────────
// Post-analysis chronicle
// ────────────────────────────────────────────────────────────

// PriorCheckpoint is one earlier horizon verdict shown to a prompt.
type PriorCheckpoint struct {
	HorizonDays int    `json:"horizonDays"`
	Assessment  string `json:"assessment"`
	Reasoning   string `json:"reasoning"`
}

// ChangeHistory is the accumulated evidence for one tracked change: the
// owner's stated expectation, the checkpoint timeline so far, and any
// verdict feedback.
type ChangeHistory struct {
	ChangeID    string            `json:"changeId"`
	Element     string            `json:"element"`
	Hypothesis  string            `json:"hypothesis,omitempty"`
	Checkpoints []PriorCheckpoint `json:"checkpoints,omitempty"`
	Feedback    []string          `json:"feedback,omitempty"`
}

// PostAnalysisInput carries everything the chronicle update needs.
// PageFocus, DeployContext, and ChangeHistories are optional context;
// empty values are simply omitted from the prompt.
type PostAnalysisInput struct {
	AnalysisID       string
	URL              string
	PageFocus        string
	DeployContext    string
	Audit            *models.StructuredAudit
	PreviousSummary  *models.ChangesSummary
	BaselineImageURL string
	CurrentImageURL  string
	WatchingChanges  []fingerprint.Candidate
	PriorSuggestions []models.SuggestionItem
	ChangeHistories  []ChangeHistory
}

// PostAnalysis produces the updated chronicle. The returned summary
// carries model-proposed ids that the caller validates and a progress
// section the caller overwrites; an error leaves the primary audit
// intact and the caller records the degradation sentinel.
func (s *Shim) PostAnalysis(ctx context.Context, in *PostAnalysisInput) (*models.ChangesSummary, error) {
	var images []string
	if in.BaselineImageURL != "" {
		images = append(images, in.BaselineImageURL)
	}
	if in.CurrentImageURL != "" {
		images = append(images, in.CurrentImageURL)
	}
	resp, err := completeWithRetry(ctx, s.client, s.retry, s.logger, &Request{
		Task:         TaskPostAnalysis,
		SystemPrompt: postAnalysisSystemPrompt,
		UserPrompt:   postAnalysisUserPrompt(in),
		ImageURLs:    images,
		MaxTokens:    8192,
		ReferenceID:  in.AnalysisID,
	})
	if err != nil {
		return nil, fmt.Errorf("post-analysis failed: %w", err)
	}

	var summary models.ChangesSummary
	if err := decodeResponse(resp.Text, &summary); err != nil {
		return nil, fmt.Errorf("post-analysis returned unusable output: %w", err)
	}
	return &summary, nil
}

// ────────────────────────────────────────────────────────────
// Checkpoint assessment
// ────────────────────────────────────────────────────────────

// AssessmentInput carries one change's metric evidence for a horizon,
// the owner's metric focus, and the verdicts of earlier horizons so a
// later assessment can weigh them.
type AssessmentInput struct {
	ChangeID         string
	Element          string
	Before           string
	After            string
	HorizonDays      int
	PageFocus        string
	Metrics          models.MetricsEnvelope
	PriorCheckpoints []PriorCheckpoint
	FeedbackNotes    []string
}

// CheckpointAssessment asks the assessor for a verdict on one change
// at one horizon. The attempt budget comes from checkpoint config; the
// caller falls back to the deterministic assessor when this errors.
func (s *Shim) CheckpointAssessment(ctx context.Context, in *AssessmentInput, maxAttempts int) (models.CheckpointAssessment, error) {
	retry := s.retry
	if maxAttempts > 0 {
		retry.MaxAttempts = maxAttempts
	}
	resp, err := completeWithRetry(ctx, s.client, retry, s.logger, &Request{
		Task:         TaskCheckpointAssessment,
		SystemPrompt: assessmentSystemPrompt,
		UserPrompt:   assessmentUserPrompt(in),
		MaxTokens:    1024,
		ReferenceID:  in.ChangeID,
	})
	if err != nil {
		return models.CheckpointAssessment{}, fmt.Errorf("checkpoint assessment failed: %w", err)
	}

	var result models.CheckpointAssessment
	if err := decodeResponse(resp.Text, &result); err != nil {
		return models.CheckpointAssessment{}, fmt.Errorf("checkpoint assessment returned unusable output: %w", err)
	}
	if err := validateAssessment(&result); err != nil {
		return models.CheckpointAssessment{}, err
	}
	return result, nil
}

func validateAssessment(a *models.CheckpointAssessment) error {
	switch a.Assessment {
	case models.AssessmentImproved, models.AssessmentRegressed,
		models.AssessmentNeutral, models.AssessmentInconclusive:
	default:
		return fmt.Errorf("checkpoint assessment returned unknown verdict %q", a.Assessment)
	}
	if a.Confidence != nil {
		c := *a.Confidence
		if c < 0 {
			c = 0
		}
		if c > 1 {
			c = 1
		}
		a.Confidence = &c
	}
	return nil
}

// ────────────────────────────────────────────────────────────
// Strategy narrative
// ────────────────────────────────────────────────────────────

// NarrativeInput carries the composed progress state for the narrative
// rewrite after a checkpoint batch.
type NarrativeInput struct {
	PageID             string
	URL                string
	Progress           models.ProgressSection
	RunningSummary     string
	RecentObservations []models.Observation
}

// NarrativeResult is the parsed narrative output. Observation change
// ids are model-proposed; the caller drops any id outside the page's
// progress lists.
type NarrativeResult struct {
	StrategyNarrative string               `json:"strategy_narrative"`
	RunningSummary    string               `json:"running_summary"`
	Observations      []models.Observation `json:"observations,omitempty"`
}

// StrategyNarrative rewrites the page's strategy narrative. Optional:
// callers skip the update entirely on error.
func (s *Shim) StrategyNarrative(ctx context.Context, in *NarrativeInput) (*NarrativeResult, error) {
	resp, err := completeWithRetry(ctx, s.client, s.retry, s.logger, &Request{
		Task:         TaskStrategyNarrative,
		SystemPrompt: narrativeSystemPrompt,
		UserPrompt:   narrativeUserPrompt(in),
		MaxTokens:    2048,
		ReferenceID:  in.PageID,
	})
	if err != nil {
		return nil, fmt.Errorf("strategy narrative failed: %w", err)
	}

	var result NarrativeResult
	if err := decodeResponse(resp.Text, &result); err != nil {
		return nil, fmt.Errorf("strategy narrative returned unusable output: %w", err)
	}
	return &result, nil
}

// decodeResponse extracts the JSON object from model text and decodes
// it into out.
func decodeResponse(text string, out any) error {
	raw := ExtractJSON(text)
	if raw == "" {
		return fmt.Errorf("no JSON object found in response")
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return fmt.Errorf("failed to decode response JSON: %w", err)
	}
	return nil
}
