package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/loupe-hq/loupe/ent"
	"github.com/loupe-hq/loupe/ent/deploy"
	"github.com/loupe-hq/loupe/pkg/models"
)

// DeployService manages webhook-ingested deploys.
type DeployService struct {
	client *ent.Client
}

// NewDeployService creates a new DeployService.
func NewDeployService(client *ent.Client) *DeployService {
	return &DeployService{client: client}
}

// CreateDeploy ingests a deploy webhook. The caller-supplied ID makes
// webhook redelivery idempotent.
func (s *DeployService) CreateDeploy(ctx context.Context, req models.CreateDeployRequest) (*ent.Deploy, error) {
	if req.UserID == "" {
		return nil, NewValidationError("user_id", "required")
	}
	if req.CommitSHA == "" {
		return nil, NewValidationError("commit_sha", "required")
	}
	id := req.DeployID
	if id == "" {
		id = uuid.New().String()
	}

	builder := s.client.Deploy.Create().
		SetID(id).
		SetUserID(req.UserID).
		SetRepoID(req.RepoID).
		SetCommitSha(req.CommitSHA).
		SetFullName(req.FullName).
		SetStatus(deploy.StatusPending)
	if req.CommitMessage != "" {
		builder.SetCommitMessage(req.CommitMessage)
	}
	if len(req.ChangedFiles) > 0 {
		builder.SetChangedFiles(req.ChangedFiles)
	}

	d, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create deploy: %w", err)
	}
	return d, nil
}

// GetDeploy retrieves a deploy by ID.
func (s *DeployService) GetDeploy(ctx context.Context, deployID string) (*ent.Deploy, error) {
	d, err := s.client.Deploy.Get(ctx, deployID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get deploy: %w", err)
	}
	return d, nil
}

// MarkScanning moves a pending deploy to scanning. CAS so a redelivered
// webhook cannot start the scan twice.
func (s *DeployService) MarkScanning(ctx context.Context, deployID string) error {
	count, err := s.client.Deploy.Update().
		Where(
			deploy.IDEQ(deployID),
			deploy.StatusEQ(deploy.StatusPending),
		).
		SetStatus(deploy.StatusScanning).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to mark deploy scanning: %w", err)
	}
	if count == 0 {
		return ErrConcurrentModification
	}
	return nil
}

// CompleteDeploy marks the deploy done once its scans are enqueued.
func (s *DeployService) CompleteDeploy(ctx context.Context, deployID string) error {
	err := s.client.Deploy.UpdateOneID(deployID).
		SetStatus(deploy.StatusComplete).
		SetCompletedAt(time.Now()).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to complete deploy: %w", err)
	}
	return nil
}
