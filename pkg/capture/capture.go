// Package capture drives the headless screenshot collaborator and
// stores the resulting images in the object store. Analyses consume
// the stored object URLs, never raw image bytes.
package capture

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"sync"
)

// Viewports sent to the screenshot collaborator. Mobile matches a
// current-generation phone; desktop a common laptop width.
var (
	desktopViewport = Viewport{Width: 1440, Height: 900}
	mobileViewport  = Viewport{Width: 390, Height: 844}
)

// Viewport is the requested render size for one capture.
type Viewport struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Input identifies one capture run. IDs are used for object naming so
// reruns of the same analysis overwrite rather than accumulate.
type Input struct {
	AnalysisID string
	PageID     string
	URL        string
	// IncludeMobile requests the mobile viewport alongside desktop.
	// Tier gating decides this per scan.
	IncludeMobile bool
}

// Result carries the stored object URLs. MobileURL is empty when the
// mobile capture failed; desktop failure fails the whole capture.
type Result struct {
	DesktopURL string
	MobileURL  string
}

// Config holds the collaborator endpoint and object store settings.
type Config struct {
	ServiceURL      string
	StorageURL      string
	StorageBucket   string
	StorageTokenEnv string
}

// Service captures page screenshots and uploads them.
type Service struct {
	cfg        Config
	httpClient *http.Client
	logger     *slog.Logger
}

// NewService creates a capture service. The client timeout should come
// from capture config (the collaborator has its own internal budget).
func NewService(cfg Config, httpClient *http.Client, logger *slog.Logger) *Service {
	return &Service{
		cfg:        cfg,
		httpClient: httpClient,
		logger:     logger.With("component", "capture"),
	}
}

// Capture renders the page and uploads the images. The desktop capture
// is required; a mobile failure is logged and tolerated. Both viewports
// render in parallel when mobile is requested.
func (s *Service) Capture(ctx context.Context, in *Input) (*Result, error) {
	var (
		wg                    sync.WaitGroup
		desktopURL, mobileURL string
		desktopErr, mobileErr error
	)

	wg.Add(1)
	go func() {
		defer wg.Done()
		desktopURL, desktopErr = s.captureOne(ctx, in, "desktop", desktopViewport)
	}()
	if in.IncludeMobile {
		wg.Add(1)
		go func() {
			defer wg.Done()
			mobileURL, mobileErr = s.captureOne(ctx, in, "mobile", mobileViewport)
		}()
	}
	wg.Wait()

	if desktopErr != nil {
		return nil, fmt.Errorf("desktop capture failed: %w", desktopErr)
	}
	if mobileErr != nil {
		s.logger.Warn("Mobile capture failed, continuing desktop-only",
			"analysis_id", in.AnalysisID,
			"url", in.URL,
			"error", mobileErr)
		mobileURL = ""
	}
	return &Result{DesktopURL: desktopURL, MobileURL: mobileURL}, nil
}

// captureOne renders one viewport and uploads the image, returning the
// stored object URL.
func (s *Service) captureOne(ctx context.Context, in *Input, variant string, vp Viewport) (string, error) {
	img, err := s.render(ctx, in.URL, vp)
	if err != nil {
		return "", err
	}
	object := fmt.Sprintf("%s/%s-%s.png", in.PageID, in.AnalysisID, variant)
	return s.upload(ctx, object, img)
}

type renderRequest struct {
	URL      string   `json:"url"`
	Viewport Viewport `json:"viewport"`
	FullPage bool     `json:"full_page"`
}

// render asks the collaborator for a PNG of the page.
func (s *Service) render(ctx context.Context, url string, vp Viewport) ([]byte, error) {
	raw, err := json.Marshal(renderRequest{URL: url, Viewport: vp, FullPage: true})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal render request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.ServiceURL+"/screenshot", bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to build render request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("screenshot service returned status %d: %s", resp.StatusCode, string(body))
	}
	img, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read screenshot body: %w", err)
	}
	if len(img) == 0 {
		return nil, fmt.Errorf("screenshot service returned empty image")
	}
	return img, nil
}

// upload PUTs the image into the object store and returns its public URL.
func (s *Service) upload(ctx context.Context, object string, img []byte) (string, error) {
	endpoint := fmt.Sprintf("%s/%s/%s", s.cfg.StorageURL, s.cfg.StorageBucket, object)
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, endpoint, bytes.NewReader(img))
	if err != nil {
		return "", fmt.Errorf("failed to build upload request: %w", err)
	}
	req.Header.Set("Content-Type", "image/png")
	if token := os.Getenv(s.cfg.StorageTokenEnv); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("object store returned status %d", resp.StatusCode)
	}
	return endpoint, nil
}

// Healthy probes the screenshot collaborator. Used by the scheduler's
// periodic health check and the API readiness endpoint.
func (s *Service) Healthy(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.cfg.ServiceURL+"/health", nil)
	if err != nil {
		return fmt.Errorf("failed to build health request: %w", err)
	}
	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("screenshot service unreachable: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("screenshot service unhealthy: status %d", resp.StatusCode)
	}
	return nil
}
