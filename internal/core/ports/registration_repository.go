package ports

import (
	"context"

	"github.com/influencer-summit/summit-api/internal/core/domain"
)

// RegistrationRepository persists registrations, one document per regId.
type RegistrationRepository interface {
	// List returns every stored registration in no particular order.
	List(ctx context.Context) ([]domain.Registration, error)
	// Create inserts r only if no document with the same regId, email or
	// influencerId exists. A taken regId yields domain.ErrIDTaken, a taken
	// email or influencerId domain.ErrConflict.
	Create(ctx context.Context, r *domain.Registration) error
	// Delete removes the registration; domain.ErrNotFound when absent.
	Delete(ctx context.Context, regID string) error
	// ReplaceAll overwrites the whole collection atomically.
	ReplaceAll(ctx context.Context, regs []domain.Registration) error
}
