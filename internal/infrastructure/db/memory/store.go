// Package memory provides process-local implementations of the repository
// ports. It mirrors the MongoDB adapter's rules (unique ids, unique email and
// influencerId on registrations, not-found on deletes) and is meant for local
// development and tests.
package memory

import (
	"context"
	"sync"

	"github.com/influencer-summit/summit-api/internal/core/domain"
)

// RegistrationRepository is a mutex-guarded registrations collection.
type RegistrationRepository struct {
	mu   sync.RWMutex
	byID map[string]domain.Registration
}

func NewRegistrationRepository() *RegistrationRepository {
	return &RegistrationRepository{byID: make(map[string]domain.Registration)}
}

func (r *RegistrationRepository) List(_ context.Context) ([]domain.Registration, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Registration, 0, len(r.byID))
	for _, reg := range r.byID {
		out = append(out, reg)
	}
	return out, nil
}

func (r *RegistrationRepository) Create(_ context.Context, reg *domain.Registration) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[reg.RegID]; ok {
		return domain.ErrIDTaken
	}
	for _, existing := range r.byID {
		if existing.ConflictsWith(reg.InfluencerID, reg.Email) {
			return domain.ErrConflict
		}
	}
	r.byID[reg.RegID] = *reg
	return nil
}

func (r *RegistrationRepository) Delete(_ context.Context, regID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[regID]; !ok {
		return domain.ErrNotFound
	}
	delete(r.byID, regID)
	return nil
}

// ReplaceAll swaps the whole collection under the write lock.
func (r *RegistrationRepository) ReplaceAll(_ context.Context, regs []domain.Registration) error {
	next := make(map[string]domain.Registration, len(regs))
	for _, reg := range regs {
		if _, dup := next[reg.RegID]; dup {
			return domain.ErrConflict
		}
		next[reg.RegID] = reg
	}

	r.mu.Lock()
	r.byID = next
	r.mu.Unlock()
	return nil
}

// BadgeRepository is a mutex-guarded badges collection.
type BadgeRepository struct {
	mu   sync.RWMutex
	byID map[string]domain.Badge
}

func NewBadgeRepository() *BadgeRepository {
	return &BadgeRepository{byID: make(map[string]domain.Badge)}
}

func (r *BadgeRepository) List(_ context.Context) ([]domain.Badge, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Badge, 0, len(r.byID))
	for _, b := range r.byID {
		out = append(out, b)
	}
	return out, nil
}

func (r *BadgeRepository) Create(_ context.Context, b *domain.Badge) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[b.BadgeID]; ok {
		return domain.ErrIDTaken
	}
	r.byID[b.BadgeID] = *b
	return nil
}

func (r *BadgeRepository) Delete(_ context.Context, badgeID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[badgeID]; !ok {
		return domain.ErrNotFound
	}
	delete(r.byID, badgeID)
	return nil
}
