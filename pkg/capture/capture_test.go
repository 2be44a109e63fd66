package capture

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T, screenshotHandler http.HandlerFunc) (*Service, *objectStore) {
	t.Helper()

	shots := httptest.NewServer(screenshotHandler)
	t.Cleanup(shots.Close)

	store := &objectStore{objects: map[string][]byte{}}
	storage := httptest.NewServer(store)
	t.Cleanup(storage.Close)

	svc := NewService(Config{
		ServiceURL:      shots.URL,
		StorageURL:      storage.URL,
		StorageBucket:   "screenshots",
		StorageTokenEnv: "TEST_STORAGE_TOKEN",
	}, &http.Client{Timeout: 5 * time.Second}, slog.Default())
	return svc, store
}

// objectStore is a minimal in-memory PUT target.
type objectStore struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func (o *objectStore) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPut {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	o.mu.Lock()
	o.objects[r.URL.Path] = []byte("stored")
	o.mu.Unlock()
	w.WriteHeader(http.StatusCreated)
}

func (o *objectStore) count() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.objects)
}

func TestCapture_BothViewports(t *testing.T) {
	svc, store := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		var req renderRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "https://example.com", req.URL)
		_, _ = w.Write([]byte("png-bytes"))
	})

	result, err := svc.Capture(context.Background(), &Input{
		AnalysisID:    "an-1",
		PageID:        "page-1",
		URL:           "https://example.com",
		IncludeMobile: true,
	})
	require.NoError(t, err)
	assert.Contains(t, result.DesktopURL, "page-1/an-1-desktop.png")
	assert.Contains(t, result.MobileURL, "page-1/an-1-mobile.png")
	assert.Equal(t, 2, store.count())
}

func TestCapture_DesktopOnly(t *testing.T) {
	var mu sync.Mutex
	viewports := []Viewport{}
	svc, store := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		var req renderRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		mu.Lock()
		viewports = append(viewports, req.Viewport)
		mu.Unlock()
		_, _ = w.Write([]byte("png-bytes"))
	})

	result, err := svc.Capture(context.Background(), &Input{
		AnalysisID: "an-5",
		PageID:     "page-1",
		URL:        "https://example.com",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, result.DesktopURL)
	assert.Empty(t, result.MobileURL)
	assert.Equal(t, 1, store.count())
	assert.Equal(t, []Viewport{desktopViewport}, viewports)
}

func TestCapture_MobileFailureTolerated(t *testing.T) {
	svc, store := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		var req renderRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if req.Viewport == mobileViewport {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte("png-bytes"))
	})

	result, err := svc.Capture(context.Background(), &Input{
		AnalysisID:    "an-2",
		PageID:        "page-1",
		URL:           "https://example.com",
		IncludeMobile: true,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, result.DesktopURL)
	assert.Empty(t, result.MobileURL)
	assert.Equal(t, 1, store.count())
}

func TestCapture_DesktopFailureFails(t *testing.T) {
	svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		var req renderRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if req.Viewport == desktopViewport {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte("png-bytes"))
	})

	_, err := svc.Capture(context.Background(), &Input{
		AnalysisID: "an-3",
		PageID:     "page-1",
		URL:        "https://example.com",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "desktop capture failed")
}

func TestCapture_EmptyImageRejected(t *testing.T) {
	svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	_, err := svc.Capture(context.Background(), &Input{
		AnalysisID: "an-4",
		PageID:     "page-1",
		URL:        "https://example.com",
	})
	require.Error(t, err)
}

func TestHealthy(t *testing.T) {
	healthy := true
	svc, _ := newTestService(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/health" && healthy {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	require.NoError(t, svc.Healthy(context.Background()))

	healthy = false
	require.Error(t, svc.Healthy(context.Background()))
}
