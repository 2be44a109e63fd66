package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/loupe-hq/loupe/ent"
	"github.com/loupe-hq/loupe/pkg/database"
	"github.com/loupe-hq/loupe/pkg/models"
	testdb "github.com/loupe-hq/loupe/test/database"
)

func setupClient(t *testing.T) *database.Client {
	t.Helper()
	return testdb.NewTestClient(t)
}

func seedUser(t *testing.T, client *database.Client, id string) *ent.User {
	t.Helper()
	u, err := client.User.Create().
		SetID(id).
		SetEmail(id + "@example.com").
		Save(context.Background())
	require.NoError(t, err)
	return u
}

func seedPage(t *testing.T, client *database.Client, userID, url string) *ent.Page {
	t.Helper()
	p, err := NewPageService(client.Client).CreatePage(context.Background(), CreatePageInput{
		UserID: userID,
		URL:    url,
	})
	require.NoError(t, err)
	return p
}

func seedChange(t *testing.T, client *database.Client, pageID, userID, element string) *ent.DetectedChange {
	t.Helper()
	c, err := NewChangeService(client.Client).CreateChange(context.Background(), models.CreateChangeRequest{
		PageID:      pageID,
		UserID:      userID,
		Element:     element,
		BeforeValue: "$29/mo",
		AfterValue:  "$39/mo",
	})
	require.NoError(t, err)
	return c
}
