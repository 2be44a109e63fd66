package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loupe-hq/loupe/pkg/services"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	s := NewServer(Deps{})
	return s.Router()
}

func doRequest(t *testing.T, router http.Handler, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestUserScopedRoutesRequireUserHeader(t *testing.T) {
	router := newTestRouter(t)

	cases := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/v1/pages"},
		{http.MethodGet, "/api/v1/pages"},
		{http.MethodPost, "/api/v1/analyses"},
		{http.MethodGet, "/api/v1/analyses"},
		{http.MethodPut, "/api/v1/connections"},
		{http.MethodPost, "/api/v1/feedback"},
		{http.MethodPut, "/api/v1/changes/ch-1/hypothesis"},
		{http.MethodPost, "/api/v1/changes/ch-1/transition"},
	}
	for _, tc := range cases {
		rec := doRequest(t, router, tc.method, tc.path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "%s %s", tc.method, tc.path)
	}
}

func TestBindingErrorsReturn400(t *testing.T) {
	router := newTestRouter(t)
	authed := map[string]string{"X-User-ID": "user-1"}

	cases := []struct {
		name   string
		method string
		path   string
		body   string
	}{
		{"create page missing url", http.MethodPost, "/api/v1/pages", `{}`},
		{"create page malformed json", http.MethodPost, "/api/v1/pages", `{"url":`},
		{"create analysis missing page", http.MethodPost, "/api/v1/analyses", `{}`},
		{"hypothesis missing body field", http.MethodPut, "/api/v1/changes/ch-1/hypothesis", `{}`},
		{"transition missing reason", http.MethodPost, "/api/v1/changes/ch-1/transition", `{"to_status":"reverted"}`},
		{"connection missing credentials", http.MethodPut, "/api/v1/connections", `{"provider":"posthog"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := doRequest(t, router, tc.method, tc.path, tc.body, authed)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestDeployWebhookRejectsMalformedPayload(t *testing.T) {
	router := newTestRouter(t)
	rec := doRequest(t, router, http.MethodPost, "/api/v1/webhooks/deploy", `{"deploy_id": 12}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPageEventsRejectsInvalidSinceID(t *testing.T) {
	router := newTestRouter(t)
	rec := doRequest(t, router, http.MethodGet, "/api/v1/pages/page-1/events?since_id=abc", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListAnalysesRejectsInvalidPagination(t *testing.T) {
	router := newTestRouter(t)
	authed := map[string]string{"X-User-ID": "user-1"}

	rec := doRequest(t, router, http.MethodGet, "/api/v1/analyses?limit=-5", "", authed)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(t, router, http.MethodGet, "/api/v1/analyses?offset=x", "", authed)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMapServiceError(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"validation", services.NewValidationError("url", "required"), http.StatusBadRequest},
		{"invalid input", services.ErrInvalidInput, http.StatusBadRequest},
		{"not found", services.ErrNotFound, http.StatusNotFound},
		{"already exists", services.ErrAlreadyExists, http.StatusConflict},
		{"concurrent modification", services.ErrConcurrentModification, http.StatusConflict},
		{"invalid transition", services.ErrInvalidTransition, http.StatusConflict},
		{"unknown", assert.AnError, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, body := mapServiceError(tc.err)
			assert.Equal(t, tc.status, status)
			require.Contains(t, body, "error")
		})
	}
}
