package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loupe-hq/loupe/ent"
	"github.com/loupe-hq/loupe/ent/analysis"
	"github.com/loupe-hq/loupe/pkg/config"
	"github.com/loupe-hq/loupe/pkg/database"
	testdb "github.com/loupe-hq/loupe/test/database"
)

func setupService(t *testing.T) (*database.Client, *Service) {
	t.Helper()
	client := testdb.NewTestClient(t)
	svc := NewService(config.DefaultRetentionConfig(), client.Client, client.DB())
	return client, svc
}

func seedPage(t *testing.T, client *database.Client) *ent.Page {
	t.Helper()
	ctx := context.Background()
	u, err := client.User.Create().
		SetID("user-1").
		SetEmail("user-1@example.com").
		Save(ctx)
	require.NoError(t, err)
	p, err := client.Page.Create().
		SetID("page-1").
		SetUserID(u.ID).
		SetURL("https://example.com/pricing").
		Save(ctx)
	require.NoError(t, err)
	return p
}

func insertEvent(t *testing.T, client *database.Client, pageID string, age time.Duration) {
	t.Helper()
	_, err := client.DB().ExecContext(context.Background(),
		`INSERT INTO events (page_id, channel, payload, created_at) VALUES ($1, $2, $3, $4)`,
		pageID, "page:"+pageID, `{"type":"analysis.status"}`, time.Now().Add(-age))
	require.NoError(t, err)
}

func TestPruneEvents(t *testing.T) {
	client, svc := setupService(t)
	p := seedPage(t, client)
	ctx := context.Background()

	insertEvent(t, client, p.ID, 100*time.Hour)
	insertEvent(t, client, p.ID, 90*time.Hour)
	insertEvent(t, client, p.ID, time.Hour)

	count, err := svc.PruneEvents(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)

	var remaining int
	err = client.DB().QueryRowContext(ctx, `SELECT COUNT(*) FROM events`).Scan(&remaining)
	require.NoError(t, err)
	assert.Equal(t, 1, remaining)

	// Second sweep finds nothing.
	count, err = svc.PruneEvents(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestPruneFailedAnalyses(t *testing.T) {
	client, svc := setupService(t)
	p := seedPage(t, client)
	ctx := context.Background()

	create := func(id string, status analysis.Status, age time.Duration) {
		_, err := client.Analysis.Create().
			SetID(id).
			SetPageID(p.ID).
			SetUserID(p.UserID).
			SetURL(p.URL).
			SetStatus(status).
			SetCreatedAt(time.Now().Add(-age)).
			Save(ctx)
		require.NoError(t, err)
	}
	create("a-old-failed", analysis.StatusFailed, 45*24*time.Hour)
	create("a-recent-failed", analysis.StatusFailed, 2*24*time.Hour)
	create("a-old-complete", analysis.StatusComplete, 45*24*time.Hour)

	count, err := svc.PruneFailedAnalyses(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	remaining, err := client.Analysis.Query().IDs(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"a-recent-failed", "a-old-complete"}, remaining)
}

func TestStartStopIdempotent(t *testing.T) {
	_, svc := setupService(t)
	ctx := context.Background()

	svc.Start(ctx)
	svc.Stop()
	// A stopped service tolerates repeated Stop calls.
	svc.Stop()
}
