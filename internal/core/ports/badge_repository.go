package ports

import (
	"context"

	"github.com/influencer-summit/summit-api/internal/core/domain"
)

// BadgeRepository persists badges, one document per badgeId.
type BadgeRepository interface {
	List(ctx context.Context) ([]domain.Badge, error)
	// Create inserts b under its badgeId; domain.ErrIDTaken when that id is
	// already stored.
	Create(ctx context.Context, b *domain.Badge) error
	// Delete removes the badge; domain.ErrNotFound when absent.
	Delete(ctx context.Context, badgeID string) error
}
