package services

import (
	"context"
	"fmt"
	"time"

	"github.com/loupe-hq/loupe/ent"
	"github.com/loupe-hq/loupe/ent/user"
)

// UserService reads user tier state. Auth and billing live outside the
// engine; this only answers feature-gating questions.
type UserService struct {
	client *ent.Client
}

// NewUserService creates a new UserService.
func NewUserService(client *ent.Client) *UserService {
	return &UserService{client: client}
}

// GetUser retrieves a user by ID.
func (s *UserService) GetUser(ctx context.Context, userID string) (*ent.User, error) {
	u, err := s.client.User.Get(ctx, userID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return u, nil
}

// EffectiveTier resolves the tier used for gating. Free users inside an
// active trial window get starter features.
func EffectiveTier(u *ent.User, now time.Time) user.Tier {
	if u.Tier == user.TierFree && u.TrialEndsAt != nil && now.Before(*u.TrialEndsAt) {
		return user.TierStarter
	}
	return u.Tier
}

// DeployScansAllowed reports whether the tier may run deploy-triggered
// scans. The free tier is excluded.
func DeployScansAllowed(tier user.Tier) bool {
	return tier == user.TierStarter || tier == user.TierPro
}

// MobileCaptureAllowed reports whether the tier gets the mobile
// viewport capture alongside desktop.
func MobileCaptureAllowed(tier user.Tier) bool {
	return tier == user.TierStarter || tier == user.TierPro
}
