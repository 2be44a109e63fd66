package mailer

import (
	"context"
	"log/slog"
	"os"

	"github.com/loupe-hq/loupe/pkg/config"
)

// ChangeDetectedInput contains data for a change-detected notification.
type ChangeDetectedInput struct {
	Email       string
	PageID      string
	PageURL     string
	Element     string
	Description string
}

// VerdictInput contains data for a checkpoint verdict notification.
type VerdictInput struct {
	Email       string
	PageID      string
	PageURL     string
	Element     string
	Verdict     string
	HorizonDays int
	Reasoning   string
}

// DigestPage is one page's line in the daily digest.
type DigestPage struct {
	URL       string
	Verdict   string
	Validated int
	Watching  int
	Open      int
}

// DigestInput contains data for the daily digest email.
type DigestInput struct {
	Email string
	Pages []DigestPage
}

// Service handles notification email delivery.
// Nil-safe: all methods are no-ops when the service is nil.
type Service struct {
	client       *Client
	dashboardURL string
	logger       *slog.Logger
}

// NewService creates a mail service from config. Returns nil when mail
// is disabled or the API key env var is unset.
func NewService(cfg *config.MailConfig, dashboardURL string) *Service {
	if cfg == nil {
		return nil
	}
	if cfg.Enabled != nil && !*cfg.Enabled {
		return nil
	}
	apiKey := os.Getenv(cfg.APIKeyEnv)
	if apiKey == "" {
		return nil
	}
	return &Service{
		client:       NewClient(cfg.BaseURL, apiKey, cfg.FromAddress),
		dashboardURL: dashboardURL,
		logger:       slog.Default().With("component", "mail-service"),
	}
}

// NewServiceWithClient creates a Service backed by a pre-built Client.
// Useful for testing with a mock API server.
func NewServiceWithClient(client *Client, dashboardURL string) *Service {
	return &Service{
		client:       client,
		dashboardURL: dashboardURL,
		logger:       slog.Default().With("component", "mail-service"),
	}
}

// NotifyChangeDetected sends the "new change is being watched" email.
// Fail-open: errors are logged, never returned.
func (s *Service) NotifyChangeDetected(ctx context.Context, input ChangeDetectedInput) {
	if s == nil || input.Email == "" {
		return
	}
	subject, body := buildChangeDetectedHTML(input, s.dashboardURL)
	if _, err := s.client.Send(ctx, input.Email, subject, body); err != nil {
		s.logger.Error("Failed to send change-detected email",
			"page_id", input.PageID,
			"error", err)
	}
}

// NotifyVerdict sends a checkpoint verdict email.
// Fail-open: errors are logged, never returned.
func (s *Service) NotifyVerdict(ctx context.Context, input VerdictInput) {
	if s == nil || input.Email == "" {
		return
	}
	subject, body := buildVerdictHTML(input, s.dashboardURL)
	if _, err := s.client.Send(ctx, input.Email, subject, body); err != nil {
		s.logger.Error("Failed to send verdict email",
			"page_id", input.PageID,
			"verdict", input.Verdict,
			"error", err)
	}
}

// SendDigest sends the daily digest email. Skipped when there is
// nothing to report.
// Fail-open: errors are logged, never returned.
func (s *Service) SendDigest(ctx context.Context, input DigestInput) {
	if s == nil || input.Email == "" || len(input.Pages) == 0 {
		return
	}
	subject, body := buildDigestHTML(input, s.dashboardURL)
	if _, err := s.client.Send(ctx, input.Email, subject, body); err != nil {
		s.logger.Error("Failed to send digest email",
			"pages", len(input.Pages),
			"error", err)
	}
}
