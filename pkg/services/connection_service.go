package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/loupe-hq/loupe/ent"
	"github.com/loupe-hq/loupe/ent/analyticsconnection"
	"github.com/loupe-hq/loupe/pkg/secrets"
)

// ConnectionService manages analytics provider connections. Credential
// JSON is sealed before it touches the database and never logged.
type ConnectionService struct {
	client *ent.Client
	box    *secrets.Box
}

// NewConnectionService creates a new ConnectionService.
func NewConnectionService(client *ent.Client, box *secrets.Box) *ConnectionService {
	return &ConnectionService{client: client, box: box}
}

// UpsertConnection seals the credential JSON and stores it as the
// user's connection. Connecting a different provider replaces the old
// connection; a partial unique index enforces at most one active
// connection per user.
func (s *ConnectionService) UpsertConnection(ctx context.Context, userID, provider string, credentialJSON []byte) (*ent.AnalyticsConnection, error) {
	prov := analyticsconnection.Provider(provider)
	if err := analyticsconnection.ProviderValidator(prov); err != nil {
		return nil, NewValidationError("provider", err.Error())
	}
	if len(credentialJSON) == 0 {
		return nil, NewValidationError("credentials", "required")
	}

	sealed, err := s.box.Seal(credentialJSON)
	if err != nil {
		return nil, fmt.Errorf("failed to seal credentials: %w", err)
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.AnalyticsConnection.Delete().
		Where(
			analyticsconnection.UserIDEQ(userID),
			analyticsconnection.ProviderNEQ(prov),
		).
		Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to replace previous connection: %w", err)
	}

	existing, err := tx.AnalyticsConnection.Query().
		Where(
			analyticsconnection.UserIDEQ(userID),
			analyticsconnection.ProviderEQ(prov),
		).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to query connection: %w", err)
	}

	var conn *ent.AnalyticsConnection
	if existing != nil {
		conn, err = tx.AnalyticsConnection.UpdateOneID(existing.ID).
			SetEncryptedCredentials(sealed).
			SetStatus(analyticsconnection.StatusActive).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to update connection: %w", err)
		}
	} else {
		conn, err = tx.AnalyticsConnection.Create().
			SetID(uuid.New().String()).
			SetUserID(userID).
			SetProvider(prov).
			SetEncryptedCredentials(sealed).
			SetStatus(analyticsconnection.StatusActive).
			Save(ctx)
		if err != nil {
			if ent.IsConstraintError(err) {
				return nil, ErrAlreadyExists
			}
			return nil, fmt.Errorf("failed to create connection: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit connection upsert: %w", err)
	}
	return conn, nil
}

// ActiveForUser returns the user's active connection, or nil when none
// is configured. Single connection per user for now; the first active
// one wins.
func (s *ConnectionService) ActiveForUser(ctx context.Context, userID string) (*ent.AnalyticsConnection, error) {
	conn, err := s.client.AnalyticsConnection.Query().
		Where(
			analyticsconnection.UserIDEQ(userID),
			analyticsconnection.StatusEQ(analyticsconnection.StatusActive),
		).
		Order(ent.Asc(analyticsconnection.FieldCreatedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query active connection: %w", err)
	}
	return conn, nil
}

// MarkError flags a connection whose credentials stopped working so
// the UI can prompt for reconnection. The engine keeps running with
// the none provider.
func (s *ConnectionService) MarkError(ctx context.Context, connectionID string) error {
	err := s.client.AnalyticsConnection.UpdateOneID(connectionID).
		SetStatus(analyticsconnection.StatusError).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to mark connection error: %w", err)
	}
	return nil
}
