package mailer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedSend struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

func newMailServer(t *testing.T, sends *[]capturedSend) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/emails", r.URL.Path)
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req capturedSend
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		*sends = append(*sends, req)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"id": "msg-1"})
	}))
}

func TestNilServiceIsNoOp(t *testing.T) {
	var s *Service
	s.NotifyChangeDetected(context.Background(), ChangeDetectedInput{Email: "a@b.c"})
	s.NotifyVerdict(context.Background(), VerdictInput{Email: "a@b.c"})
	s.SendDigest(context.Background(), DigestInput{Email: "a@b.c"})
}

func TestNotifyChangeDetected(t *testing.T) {
	var sends []capturedSend
	server := newMailServer(t, &sends)
	defer server.Close()

	s := NewServiceWithClient(NewClient(server.URL, "test-key", "Loupe <notify@test>"), "https://app.test")
	s.NotifyChangeDetected(context.Background(), ChangeDetectedInput{
		Email:       "user@example.com",
		PageID:      "pg-1",
		PageURL:     "https://example.com/pricing",
		Element:     "hero headline",
		Description: "headline rewritten",
	})

	require.Len(t, sends, 1)
	assert.Equal(t, []string{"user@example.com"}, sends[0].To)
	assert.Contains(t, sends[0].Subject, "https://example.com/pricing")
	assert.Contains(t, sends[0].HTML, "hero headline")
	assert.Contains(t, sends[0].HTML, "https://app.test/pages/pg-1")
}

func TestNotifyVerdictSubjectsByVerdict(t *testing.T) {
	var sends []capturedSend
	server := newMailServer(t, &sends)
	defer server.Close()

	s := NewServiceWithClient(NewClient(server.URL, "test-key", "Loupe <notify@test>"), "")

	s.NotifyVerdict(context.Background(), VerdictInput{
		Email:       "user@example.com",
		PageURL:     "https://example.com",
		Element:     "cta button",
		Verdict:     "validated",
		HorizonDays: 30,
	})
	s.NotifyVerdict(context.Background(), VerdictInput{
		Email:       "user@example.com",
		PageURL:     "https://example.com",
		Element:     "cta button",
		Verdict:     "regressed",
		HorizonDays: 60,
	})

	require.Len(t, sends, 2)
	assert.Contains(t, sends[0].Subject, "working")
	assert.Contains(t, sends[1].Subject, "hurting")
	assert.Contains(t, sends[1].HTML, "Day 60")
}

func TestSendDigestSkipsEmpty(t *testing.T) {
	var sends []capturedSend
	server := newMailServer(t, &sends)
	defer server.Close()

	s := NewServiceWithClient(NewClient(server.URL, "test-key", "Loupe <notify@test>"), "")
	s.SendDigest(context.Background(), DigestInput{Email: "user@example.com"})
	assert.Empty(t, sends)

	s.SendDigest(context.Background(), DigestInput{
		Email: "user@example.com",
		Pages: []DigestPage{{URL: "https://example.com", Validated: 2, Watching: 1, Open: 3}},
	})
	require.Len(t, sends, 1)
	assert.Contains(t, sends[0].HTML, "2 validated")
}
