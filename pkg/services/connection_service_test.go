package services

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/loupe-hq/loupe/ent/analyticsconnection"
	"github.com/loupe-hq/loupe/pkg/secrets"
)

func newTestBox(t *testing.T) *secrets.Box {
	t.Helper()
	box, err := secrets.NewBox(bytes.Repeat([]byte{0x42}, 32))
	require.NoError(t, err)
	return box
}

func TestUpsertConnection(t *testing.T) {
	client := setupClient(t)
	box := newTestBox(t)
	svc := NewConnectionService(client.Client, box)
	ctx := context.Background()

	u := seedUser(t, client, "user-1")
	creds := []byte(`{"api_key":"posthog-key-123","site_id":"example.com"}`)

	t.Run("stores sealed credentials only", func(t *testing.T) {
		conn, err := svc.UpsertConnection(ctx, u.ID, "posthog", creds)
		require.NoError(t, err)
		assert.Equal(t, analyticsconnection.StatusActive, conn.Status)

		// The stored bytes must not contain the plaintext secret.
		assert.NotContains(t, string(conn.EncryptedCredentials), "posthog-key-123")

		opened, err := box.Open(conn.EncryptedCredentials)
		require.NoError(t, err)
		assert.Equal(t, creds, opened)
	})

	t.Run("reconnect same provider updates in place", func(t *testing.T) {
		rotated := []byte(`{"api_key":"rotated-key","site_id":"example.com"}`)
		conn, err := svc.UpsertConnection(ctx, u.ID, "posthog", rotated)
		require.NoError(t, err)

		count, err := client.AnalyticsConnection.Query().Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, count)

		opened, err := box.Open(conn.EncryptedCredentials)
		require.NoError(t, err)
		assert.Equal(t, rotated, opened)
	})

	t.Run("switching provider replaces the old connection", func(t *testing.T) {
		_, err := svc.UpsertConnection(ctx, u.ID, "ga4", []byte(`{"property_id":"12345"}`))
		require.NoError(t, err)

		all, err := client.AnalyticsConnection.Query().All(ctx)
		require.NoError(t, err)
		require.Len(t, all, 1)
		assert.Equal(t, analyticsconnection.ProviderGa4, all[0].Provider)
	})

	t.Run("rejects unknown provider", func(t *testing.T) {
		_, err := svc.UpsertConnection(ctx, u.ID, "matomo", creds)
		assert.True(t, IsValidationError(err))
	})

	t.Run("rejects empty credentials", func(t *testing.T) {
		_, err := svc.UpsertConnection(ctx, u.ID, "posthog", nil)
		assert.True(t, IsValidationError(err))
	})
}

func TestActiveForUserAndMarkError(t *testing.T) {
	client := setupClient(t)
	svc := NewConnectionService(client.Client, newTestBox(t))
	ctx := context.Background()

	u := seedUser(t, client, "user-1")

	conn, err := svc.ActiveForUser(ctx, u.ID)
	require.NoError(t, err)
	assert.Nil(t, conn, "no connection configured")

	created, err := svc.UpsertConnection(ctx, u.ID, "posthog", []byte(`{"api_key":"k"}`))
	require.NoError(t, err)

	conn, err = svc.ActiveForUser(ctx, u.ID)
	require.NoError(t, err)
	require.NotNil(t, conn)
	assert.Equal(t, created.ID, conn.ID)

	require.NoError(t, svc.MarkError(ctx, created.ID))

	conn, err = svc.ActiveForUser(ctx, u.ID)
	require.NoError(t, err)
	assert.Nil(t, conn, "errored connections are not served")

	assert.ErrorIs(t, svc.MarkError(ctx, "missing"), ErrNotFound)
}
