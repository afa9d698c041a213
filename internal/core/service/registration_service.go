package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/influencer-summit/summit-api/internal/core/domain"
	"github.com/influencer-summit/summit-api/internal/core/ports"
)

type RegistrationService struct {
	repo   ports.RegistrationRepository
	ids    ports.IDAllocator
	logger zerolog.Logger
	now    func() time.Time
}

// maxIDAttempts bounds how often a write re-allocates after losing its id to
// a concurrent writer.
const maxIDAttempts = 3

func NewRegistrationService(repo ports.RegistrationRepository, ids ports.IDAllocator, logger zerolog.Logger) *RegistrationService {
	return &RegistrationService{repo: repo, ids: ids, logger: logger, now: time.Now}
}

// Register validates the sign-up, rejects duplicates by influencer or email,
// and stores a new registration under the next SR_ id. When the allocated id
// was taken by a concurrent writer the id is allocated again, up to
// maxIDAttempts times.
func (s *RegistrationService) Register(ctx context.Context, in ports.RegisterInput) (*domain.Registration, error) {
	if in.InfluencerID == "" || in.Email == "" {
		return nil, fmt.Errorf("%w: influencerId and email are required", domain.ErrInvalidInput)
	}
	if !domain.IsValidEmail(in.Email) {
		return nil, fmt.Errorf("%w: invalid email format", domain.ErrInvalidInput)
	}

	for attempt := 1; ; attempt++ {
		reg, err := s.register(ctx, in)
		if errors.Is(err, domain.ErrIDTaken) && attempt < maxIDAttempts {
			s.logger.Warn().Int("attempt", attempt).Str("influencer_id", in.InfluencerID).Msg("registration id taken, allocating again")
			continue
		}
		if err != nil {
			return nil, err
		}

		s.logger.Info().
			Str("reg_id", reg.RegID).
			Str("influencer_id", reg.InfluencerID).
			Msg("registration created")
		return reg, nil
	}
}

func (s *RegistrationService) register(ctx context.Context, in ports.RegisterInput) (*domain.Registration, error) {
	// A failed load must not look like an empty collection here, or the
	// duplicate check would be skipped.
	existing, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("register: load registrations: %w", err)
	}

	ids := make([]string, 0, len(existing))
	for _, r := range existing {
		if r.ConflictsWith(in.InfluencerID, in.Email) {
			return nil, fmt.Errorf("%w: influencer already registered for summit", domain.ErrConflict)
		}
		ids = append(ids, r.RegID)
	}

	regID, err := s.ids.Next(ctx, domain.RegistrationPrefix, ids)
	if err != nil {
		return nil, fmt.Errorf("register: allocate id: %w", err)
	}

	reg := &domain.Registration{
		RegID:        regID,
		InfluencerID: in.InfluencerID,
		Email:        in.Email,
		Name:         in.Name,
		RegisteredAt: domain.Timestamp(s.now()),
	}

	if err := s.repo.Create(ctx, reg); err != nil {
		switch {
		case errors.Is(err, domain.ErrIDTaken):
			return nil, fmt.Errorf("register %s: %w", regID, domain.ErrIDTaken)
		case errors.Is(err, domain.ErrConflict):
			return nil, fmt.Errorf("%w: influencer already registered for summit", domain.ErrConflict)
		}
		s.logger.Error().Err(err).Str("reg_id", regID).Msg("failed to store registration")
		return nil, fmt.Errorf("register: %w", err)
	}
	return reg, nil
}

func (s *RegistrationService) ListAll(ctx context.Context) ([]domain.Registration, error) {
	regs, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list registrations: %w", err)
	}
	return regs, nil
}

// ListByInfluencer returns the registrations whose influencerId equals id exactly.
func (s *RegistrationService) ListByInfluencer(ctx context.Context, influencerID string) ([]domain.Registration, error) {
	regs, err := s.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Registration, 0, len(regs))
	for _, r := range regs {
		if r.InfluencerID == influencerID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *RegistrationService) Delete(ctx context.Context, regID string) error {
	if regID == "" {
		return fmt.Errorf("%w: registration ID is required", domain.ErrInvalidInput)
	}
	if err := s.repo.Delete(ctx, regID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("registration %s: %w", regID, domain.ErrNotFound)
		}
		return fmt.Errorf("delete registration: %w", err)
	}
	s.logger.Info().Str("reg_id", regID).Msg("registration deleted")
	return nil
}

// Import replaces the whole registrations collection with regs. Every record
// must carry a well-formed SR_ id and email, and the batch itself must honour
// the one-registration-per-influencer and per-email rule. regs is not
// modified; missing registeredAt values are stamped on a copy.
func (s *RegistrationService) Import(ctx context.Context, regs []domain.Registration) (int, error) {
	regs = append([]domain.Registration(nil), regs...)

	seenIDs := make(map[string]struct{}, len(regs))
	seenInfluencers := make(map[string]struct{}, len(regs))
	seenEmails := make(map[string]struct{}, len(regs))

	for i, r := range regs {
		if _, ok := domain.SequenceOf(domain.RegistrationPrefix, r.RegID); !ok || r.InfluencerID == "" || !domain.IsValidEmail(r.Email) {
			return 0, fmt.Errorf("%w: record %d (%q) is malformed", domain.ErrInvalidInput, i, r.RegID)
		}
		if _, dup := seenIDs[r.RegID]; dup {
			return 0, fmt.Errorf("%w: duplicate regId %s", domain.ErrConflict, r.RegID)
		}
		if _, dup := seenInfluencers[r.InfluencerID]; dup {
			return 0, fmt.Errorf("%w: duplicate influencerId %s", domain.ErrConflict, r.InfluencerID)
		}
		if _, dup := seenEmails[r.Email]; dup {
			return 0, fmt.Errorf("%w: duplicate email %s", domain.ErrConflict, r.Email)
		}
		seenIDs[r.RegID] = struct{}{}
		seenInfluencers[r.InfluencerID] = struct{}{}
		seenEmails[r.Email] = struct{}{}

		if r.RegisteredAt == "" {
			regs[i].RegisteredAt = domain.Timestamp(s.now())
		}
	}

	if err := s.repo.ReplaceAll(ctx, regs); err != nil {
		return 0, fmt.Errorf("import registrations: %w", err)
	}

	s.logger.Info().Int("count", len(regs)).Msg("registrations imported")
	return len(regs), nil
}
