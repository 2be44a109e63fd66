package events

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTruncateIfNeeded(t *testing.T) {
	t.Run("passes through normal payload", func(t *testing.T) {
		payload, _ := json.Marshal(AnalysisStatusPayload{
			Type:       EventTypeAnalysisStatus,
			AnalysisID: "an-123",
			PageID:     "pg-123",
		})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.Contains(t, result, EventTypeAnalysisStatus)
		assert.Contains(t, result, "an-123")
	})

	t.Run("truncates oversized payload", func(t *testing.T) {
		payload, _ := json.Marshal(ChangeStatusPayload{
			Type:     EventTypeChangeStatus,
			ChangeID: "ch-456",
			PageID:   "pg-789",
			Element:  strings.Repeat("a", 8000),
		})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.Contains(t, result, `"truncated":true`)
		assert.Less(t, len(result), 8000)
	})

	t.Run("truncated payload preserves routing fields", func(t *testing.T) {
		payload, _ := json.Marshal(ChangeStatusPayload{
			Type:     EventTypeChangeStatus,
			ChangeID: "ch-456",
			PageID:   "pg-789",
			Element:  strings.Repeat("x", 8000),
		})

		result, err := truncateIfNeeded(string(payload))
		require.NoError(t, err)
		assert.Contains(t, result, EventTypeChangeStatus)
		assert.Contains(t, result, "pg-789")
	})
}

func TestInjectDBEventID(t *testing.T) {
	payload, _ := json.Marshal(AnalysisStatusPayload{
		Type:       EventTypeAnalysisStatus,
		AnalysisID: "an-1",
		PageID:     "pg-1",
	})

	result, err := injectDBEventIDAndTruncate(payload, 42)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(result), &m))
	assert.Equal(t, float64(42), m["db_event_id"])
	assert.Equal(t, "an-1", m["analysis_id"])
}

func TestNilPublisherDropsEvents(t *testing.T) {
	var p *Publisher

	err := p.PublishAnalysisStatus(context.Background(), AnalysisStatusPayload{
		AnalysisID: "an-1",
		PageID:     "pg-1",
	})
	assert.NoError(t, err)

	err = p.PublishChangeStatus(context.Background(), ChangeStatusPayload{
		ChangeID: "ch-1",
		PageID:   "pg-1",
	})
	assert.NoError(t, err)
}

func TestPageChannel(t *testing.T) {
	assert.Equal(t, "page:pg-1", PageChannel("pg-1"))
}
