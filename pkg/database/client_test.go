package database

import (
	"context"
	stdsql "database/sql"
	"encoding/json"
	"os"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/loupe-hq/loupe/ent"
	"github.com/loupe-hq/loupe/ent/analyticsconnection"
)

// newTestClient creates a test database client with CI/local detection.
// In CI (CI_DATABASE_URL set): connects to the external PostgreSQL
// service container. Locally: spins up a testcontainer.
func newTestClient(t *testing.T) *Client {
	ctx := context.Background()

	var connStr string
	if ciDatabaseURL := os.Getenv("CI_DATABASE_URL"); ciDatabaseURL != "" {
		t.Log("Using external PostgreSQL from CI_DATABASE_URL")
		connStr = ciDatabaseURL
	} else {
		t.Log("Using testcontainers for PostgreSQL")
		pgContainer, err := postgres.Run(ctx,
			"postgres:16-alpine",
			postgres.WithDatabase("test"),
			postgres.WithUsername("test"),
			postgres.WithPassword("test"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second)),
		)
		require.NoError(t, err)

		t.Cleanup(func() {
			if err := testcontainers.TerminateContainer(pgContainer); err != nil {
				t.Logf("failed to terminate container: %v", err)
			}
		})

		connStr, err = pgContainer.ConnectionString(ctx, "sslmode=disable")
		require.NoError(t, err)
	}

	db, err := stdsql.Open("pgx", connStr)
	require.NoError(t, err)
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)

	drv := entsql.OpenDB(dialect.Postgres, db)
	entClient := ent.NewClient(ent.Driver(drv))

	// Tests auto-migrate from the Ent schema instead of replaying SQL
	// files, then add the same auxiliary objects production gets.
	err = entClient.Schema.Create(ctx)
	require.NoError(t, err)
	err = CreateAuxiliaryObjects(ctx, drv)
	require.NoError(t, err)

	client := NewClientFromEnt(entClient, db)
	t.Cleanup(func() { client.Close() })
	return client
}

func seedPage(t *testing.T, client *Client, userID, pageID, url string) {
	ctx := context.Background()
	_, err := client.User.Create().
		SetID(userID).
		SetEmail(userID + "@example.com").
		Save(ctx)
	require.NoError(t, err)
	_, err = client.Page.Create().
		SetID(pageID).
		SetUserID(userID).
		SetURL(url).
		Save(ctx)
	require.NoError(t, err)
}

func TestDatabaseClient_ConnectionPool(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	err := client.DB().PingContext(ctx)
	require.NoError(t, err)

	health, err := Health(ctx, client.DB())
	require.NoError(t, err)
	assert.Equal(t, "healthy", health.Status)
	assert.Greater(t, health.MaxOpenConns, 0)
}

func TestFullTextSearchOnAuditNarrative(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()
	seedPage(t, client, "u-fts", "p-fts", "https://example.com/pricing")

	a1, err := client.Analysis.Create().
		SetID("an-1").
		SetPageID("p-fts").
		SetUserID("u-fts").
		SetURL("https://example.com/pricing").
		SetFreeformOutput("The pricing table buries the annual discount below the fold").
		Save(ctx)
	require.NoError(t, err)

	a2, err := client.Analysis.Create().
		SetID("an-2").
		SetPageID("p-fts").
		SetUserID("u-fts").
		SetURL("https://example.com/pricing").
		SetFreeformOutput("Hero headline is vague about the product category").
		Save(ctx)
	require.NoError(t, err)

	rows, err := client.DB().QueryContext(ctx,
		`SELECT analysis_id FROM analyses
		WHERE to_tsvector('english', COALESCE(freeform_output, '')) @@ to_tsquery('english', $1)`,
		"pricing & discount",
	)
	require.NoError(t, err)
	defer rows.Close()

	var results []string
	for rows.Next() {
		var id string
		require.NoError(t, rows.Scan(&id))
		results = append(results, id)
	}
	require.Len(t, results, 1)
	assert.Equal(t, a1.ID, results[0])

	rows2, err := client.DB().QueryContext(ctx,
		`SELECT analysis_id FROM analyses
		WHERE to_tsvector('english', COALESCE(freeform_output, '')) @@ to_tsquery('english', $1)`,
		"headline",
	)
	require.NoError(t, err)
	defer rows2.Close()

	results = results[:0]
	for rows2.Next() {
		var id string
		require.NoError(t, rows2.Scan(&id))
		results = append(results, id)
	}
	require.Len(t, results, 1)
	assert.Equal(t, a2.ID, results[0])
}

func TestOneActiveConnectionPerUser(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()
	seedPage(t, client, "u-conn", "p-conn", "https://example.com")

	_, err := client.AnalyticsConnection.Create().
		SetID("conn-1").
		SetUserID("u-conn").
		SetProvider("posthog").
		SetEncryptedCredentials([]byte("sealed")).
		Save(ctx)
	require.NoError(t, err)

	// A second active connection for the same user must be rejected by
	// the partial unique index even for a different provider.
	_, err = client.AnalyticsConnection.Create().
		SetID("conn-2").
		SetUserID("u-conn").
		SetProvider("ga4").
		SetEncryptedCredentials([]byte("sealed")).
		Save(ctx)
	require.Error(t, err)
	assert.True(t, ent.IsConstraintError(err))

	// An errored connection does not block a replacement active one.
	_, err = client.AnalyticsConnection.Update().
		Where(analyticsconnection.IDEQ("conn-1")).
		SetStatus("error").
		Save(ctx)
	require.NoError(t, err)

	_, err = client.AnalyticsConnection.Create().
		SetID("conn-3").
		SetUserID("u-conn").
		SetProvider("ga4").
		SetEncryptedCredentials([]byte("sealed")).
		Save(ctx)
	require.NoError(t, err)
}

func TestLoadConfigFromEnv(t *testing.T) {
	tests := []struct {
		name        string
		envVars     map[string]string
		wantErr     bool
		errContains string
	}{
		{
			name:    "valid config with defaults",
			envVars: map[string]string{"DB_PASSWORD": "test"},
			wantErr: false,
		},
		{
			name: "valid config with custom values",
			envVars: map[string]string{
				"DB_HOST":           "db.example.com",
				"DB_PORT":           "5433",
				"DB_USER":           "admin",
				"DB_PASSWORD":       "secret",
				"DB_NAME":           "production",
				"DB_SSLMODE":        "require",
				"DB_MAX_OPEN_CONNS": "50",
				"DB_MAX_IDLE_CONNS": "20",
			},
			wantErr: false,
		},
		{
			name: "invalid DB_PORT",
			envVars: map[string]string{
				"DB_PORT":     "invalid",
				"DB_PASSWORD": "test",
			},
			wantErr:     true,
			errContains: "invalid DB_PORT",
		},
		{
			name: "invalid DB_MAX_OPEN_CONNS",
			envVars: map[string]string{
				"DB_MAX_OPEN_CONNS": "not_a_number",
				"DB_PASSWORD":       "test",
			},
			wantErr:     true,
			errContains: "invalid DB_MAX_OPEN_CONNS",
		},
		{
			name: "invalid DB_MAX_IDLE_CONNS",
			envVars: map[string]string{
				"DB_MAX_IDLE_CONNS": "abc123",
				"DB_PASSWORD":       "test",
			},
			wantErr:     true,
			errContains: "invalid DB_MAX_IDLE_CONNS",
		},
		{
			name: "invalid DB_CONN_MAX_LIFETIME",
			envVars: map[string]string{
				"DB_CONN_MAX_LIFETIME": "invalid_duration",
				"DB_PASSWORD":          "test",
			},
			wantErr:     true,
			errContains: "invalid DB_CONN_MAX_LIFETIME",
		},
		{
			name: "invalid DB_CONN_MAX_IDLE_TIME",
			envVars: map[string]string{
				"DB_CONN_MAX_IDLE_TIME": "not_a_duration",
				"DB_PASSWORD":           "test",
			},
			wantErr:     true,
			errContains: "invalid DB_CONN_MAX_IDLE_TIME",
		},
		{
			name:        "missing password",
			envVars:     map[string]string{"DB_PASSWORD": ""},
			wantErr:     true,
			errContains: "DB_PASSWORD is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			envKeys := []string{
				"DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE",
				"DB_MAX_OPEN_CONNS", "DB_MAX_IDLE_CONNS",
				"DB_CONN_MAX_LIFETIME", "DB_CONN_MAX_IDLE_TIME",
			}
			for _, key := range envKeys {
				os.Unsetenv(key)
			}
			for key, val := range tt.envVars {
				if val != "" {
					os.Setenv(key, val)
				}
			}
			t.Cleanup(func() {
				for _, key := range envKeys {
					os.Unsetenv(key)
				}
			})

			cfg, err := LoadConfigFromEnv()

			if tt.wantErr {
				require.Error(t, err)
				if tt.errContains != "" {
					assert.Contains(t, err.Error(), tt.errContains)
				}
			} else {
				require.NoError(t, err)
				if tt.name == "valid config with defaults" {
					assert.Equal(t, "localhost", cfg.Host)
					assert.Equal(t, 5432, cfg.Port)
					assert.Equal(t, 25, cfg.MaxOpenConns)
					assert.Equal(t, 10, cfg.MaxIdleConns)
				}
			}
		})
	}
}

func TestHealthStatus_JSONMilliseconds(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	health, err := Health(ctx, client.DB())
	require.NoError(t, err)
	require.NotNil(t, health)

	assert.GreaterOrEqual(t, health.ResponseTime, int64(0))
	assert.Less(t, health.ResponseTime, int64(1000), "response time should be less than 1 second for a local ping")

	jsonBytes, err := json.Marshal(health)
	require.NoError(t, err)

	var jsonData map[string]interface{}
	require.NoError(t, json.Unmarshal(jsonBytes, &jsonData))

	responseTime, ok := jsonData["response_time_ms"].(float64)
	require.True(t, ok, "response_time_ms should be a number")
	// If this were nanoseconds it would exceed 1,000,000 (1ms in ns).
	assert.Less(t, responseTime, float64(1000000), "response_time_ms should be in milliseconds, not nanoseconds")

	waitDuration, ok := jsonData["wait_duration_ms"].(float64)
	require.True(t, ok, "wait_duration_ms should be a number")
	assert.GreaterOrEqual(t, waitDuration, float64(0))
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name: "valid config",
			cfg: Config{
				Host: "localhost", Port: 5432, User: "test", Password: "test",
				Database: "test", SSLMode: "disable",
				MaxOpenConns: 10, MaxIdleConns: 5,
			},
			wantErr: false,
		},
		{
			name: "missing password",
			cfg: Config{
				Host: "localhost", Port: 5432, User: "test",
				Database:     "test",
				MaxOpenConns: 10, MaxIdleConns: 5,
			},
			wantErr: true,
		},
		{
			name: "idle conns exceed max conns",
			cfg: Config{
				Host: "localhost", Port: 5432, User: "test", Password: "test",
				Database:     "test",
				MaxOpenConns: 5, MaxIdleConns: 10,
			},
			wantErr: true,
		},
		{
			name: "zero max open conns",
			cfg: Config{
				Host: "localhost", Port: 5432, User: "test", Password: "test",
				Database: "test",
			},
			wantErr: true,
		},
		{
			name: "negative idle conns",
			cfg: Config{
				Host: "localhost", Port: 5432, User: "test", Password: "test",
				Database:     "test",
				MaxOpenConns: 10, MaxIdleConns: -1,
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
