package ports

import (
	"context"

	"github.com/influencer-summit/summit-api/internal/core/domain"
)

// IssueBadgeInput carries the data needed to award a badge.
type IssueBadgeInput struct {
	InfluencerID string
	Badge        string
}

type BadgeService interface {
	Issue(ctx context.Context, in IssueBadgeInput) (*domain.Badge, error)
	ListAll(ctx context.Context) ([]domain.Badge, error)
	ListByInfluencer(ctx context.Context, influencerID string) ([]domain.Badge, error)
	Delete(ctx context.Context, badgeID string) error
}
