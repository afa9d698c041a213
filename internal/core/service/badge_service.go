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

type BadgeService struct {
	repo   ports.BadgeRepository
	ids    ports.IDAllocator
	logger zerolog.Logger
	now    func() time.Time
}

func NewBadgeService(repo ports.BadgeRepository, ids ports.IDAllocator, logger zerolog.Logger) *BadgeService {
	return &BadgeService{repo: repo, ids: ids, logger: logger, now: time.Now}
}

// Issue awards a badge. The same label may be issued to the same influencer
// any number of times; each grant gets its own BD_ id. A BD_ id taken by a
// concurrent issue is allocated again.
func (s *BadgeService) Issue(ctx context.Context, in ports.IssueBadgeInput) (*domain.Badge, error) {
	if in.InfluencerID == "" || in.Badge == "" {
		return nil, fmt.Errorf("%w: influencerId and badge are required", domain.ErrInvalidInput)
	}
	if !domain.IsInfluencerID(in.InfluencerID) {
		return nil, fmt.Errorf("%w: invalid influencer ID format, must start with '%s'", domain.ErrInvalidInput, domain.InfluencerPrefix)
	}

	for attempt := 1; ; attempt++ {
		badge, err := s.issue(ctx, in)
		if errors.Is(err, domain.ErrIDTaken) && attempt < maxIDAttempts {
			s.logger.Warn().Int("attempt", attempt).Str("influencer_id", in.InfluencerID).Msg("badge id taken, allocating again")
			continue
		}
		if err != nil {
			return nil, err
		}

		s.logger.Info().
			Str("badge_id", badge.BadgeID).
			Str("influencer_id", badge.InfluencerID).
			Str("badge", badge.Badge).
			Msg("badge issued")
		return badge, nil
	}
}

func (s *BadgeService) issue(ctx context.Context, in ports.IssueBadgeInput) (*domain.Badge, error) {
	existing, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("issue badge: load badges: %w", err)
	}
	ids := make([]string, len(existing))
	for i, b := range existing {
		ids[i] = b.BadgeID
	}

	badgeID, err := s.ids.Next(ctx, domain.BadgePrefix, ids)
	if err != nil {
		return nil, fmt.Errorf("issue badge: allocate id: %w", err)
	}

	badge := &domain.Badge{
		BadgeID:      badgeID,
		InfluencerID: in.InfluencerID,
		Badge:        in.Badge,
		AwardedAt:    domain.Timestamp(s.now()),
	}
	if err := s.repo.Create(ctx, badge); err != nil {
		if errors.Is(err, domain.ErrIDTaken) {
			return nil, fmt.Errorf("issue badge %s: %w", badgeID, domain.ErrIDTaken)
		}
		s.logger.Error().Err(err).Str("badge_id", badgeID).Msg("failed to store badge")
		return nil, fmt.Errorf("issue badge: %w", err)
	}
	return badge, nil
}

func (s *BadgeService) ListAll(ctx context.Context) ([]domain.Badge, error) {
	badges, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list badges: %w", err)
	}
	return badges, nil
}

func (s *BadgeService) ListByInfluencer(ctx context.Context, influencerID string) ([]domain.Badge, error) {
	badges, err := s.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Badge, 0, len(badges))
	for _, b := range badges {
		if b.InfluencerID == influencerID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (s *BadgeService) Delete(ctx context.Context, badgeID string) error {
	if badgeID == "" {
		return fmt.Errorf("%w: badge ID is required", domain.ErrInvalidInput)
	}
	if err := s.repo.Delete(ctx, badgeID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("badge %s: %w", badgeID, domain.ErrNotFound)
		}
		return fmt.Errorf("delete badge: %w", err)
	}
	s.logger.Info().Str("badge_id", badgeID).Msg("badge deleted")
	return nil
}
