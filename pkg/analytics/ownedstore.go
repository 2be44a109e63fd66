package analytics

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/loupe-hq/loupe/pkg/models"
)

// SupabaseCredentials is the decrypted credential shape for the
// owned-database adapter: a direct Postgres connection string into the
// user's own project, read-only role expected.
type SupabaseCredentials struct {
	DSN string `json:"dsn"`
	// EventsTable overrides the default analytics events table name.
	EventsTable string `json:"events_table,omitempty"`
}

// OwnedStoreProvider reads first-party metrics straight from the
// user's own Postgres database. Connections are opened per query and
// closed immediately so credentials never outlive the sub-batch.
type OwnedStoreProvider struct {
	creds SupabaseCredentials
}

// NewOwnedStoreProvider creates the owned-database adapter.
func NewOwnedStoreProvider(creds SupabaseCredentials) (*OwnedStoreProvider, error) {
	if creds.DSN == "" {
		return nil, fmt.Errorf("supabase credentials missing dsn")
	}
	if creds.EventsTable == "" {
		creds.EventsTable = "analytics_events"
	}
	if !validIdentifier(creds.EventsTable) {
		return nil, fmt.Errorf("invalid events table name %q", creds.EventsTable)
	}
	return &OwnedStoreProvider{creds: creds}, nil
}

// Name implements Provider.
func (p *OwnedStoreProvider) Name() string { return ProviderSupabase }

// MetricsForWindow implements Provider.
func (p *OwnedStoreProvider) MetricsForWindow(ctx context.Context, url, metric string, before, after models.Window) ([]models.MetricDelta, error) {
	conn, err := pgx.Connect(ctx, p.creds.DSN)
	if err != nil {
		return nil, fmt.Errorf("owned-store connect: %w", err)
	}
	defer func() { _ = conn.Close(ctx) }()

	beforeTotal, err := p.windowTotal(ctx, conn, url, metric, before)
	if err != nil {
		return nil, fmt.Errorf("owned-store before-window query: %w", err)
	}
	afterTotal, err := p.windowTotal(ctx, conn, url, metric, after)
	if err != nil {
		return nil, fmt.Errorf("owned-store after-window query: %w", err)
	}
	if beforeTotal == 0 && afterTotal == 0 {
		return nil, nil
	}
	return []models.MetricDelta{{
		Name:          metric,
		FriendlyName:  FriendlyLabel(metric),
		Before:        beforeTotal,
		After:         afterTotal,
		ChangePercent: changePercent(beforeTotal, afterTotal),
	}}, nil
}

func (p *OwnedStoreProvider) windowTotal(ctx context.Context, conn *pgx.Conn, url, metric string, w models.Window) (float64, error) {
	// Table name is validated at construction; everything else is bound.
	query := fmt.Sprintf(
		`SELECT COUNT(*) FROM %s WHERE event_name = $1 AND page_url = $2 AND occurred_at >= $3 AND occurred_at < $4`,
		p.creds.EventsTable,
	)
	var total float64
	err := conn.QueryRow(ctx, query, metric, url, w.Start, w.End).Scan(&total)
	if err != nil {
		return 0, err
	}
	return total, nil
}

// validIdentifier accepts plain lowercase SQL identifiers only.
func validIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
		case r == '_':
		case r >= '0' && r <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}
