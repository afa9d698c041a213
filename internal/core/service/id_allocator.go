package service

import (
	"context"

	"github.com/influencer-summit/summit-api/internal/core/domain"
)

// ScanAllocator derives the next id purely from the ids it is given. Two
// callers working from the same snapshot get the same id; the store's
// duplicate-key check is what turns that into a conflict.
type ScanAllocator struct{}

func (ScanAllocator) Next(_ context.Context, prefix string, existing []string) (string, error) {
	return domain.NextSequentialID(prefix, existing), nil
}
