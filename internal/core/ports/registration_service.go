package ports

import (
	"context"

	"github.com/influencer-summit/summit-api/internal/core/domain"
)

// RegisterInput is the DTO passed from the transport layer to RegistrationService.
type RegisterInput struct {
	InfluencerID string
	Email        string
	Name         string // optional
}

// RegistrationService defines the summit sign-up use cases.
type RegistrationService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.Registration, error)
	ListAll(ctx context.Context) ([]domain.Registration, error)
	ListByInfluencer(ctx context.Context, influencerID string) ([]domain.Registration, error)
	Delete(ctx context.Context, regID string) error
	// Import replaces the stored registrations with regs and returns how many were written.
	Import(ctx context.Context, regs []domain.Registration) (int, error)
}
