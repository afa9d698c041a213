package redis

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/influencer-summit/summit-api/internal/core/domain"
)

// nextSeq raises the counter to at least ARGV[1] and increments it, in one
// server-side step. Seeding from the stored maximum keeps ids continuous
// when the counter key is new or was flushed.
var nextSeq = redis.NewScript(`
local cur = tonumber(redis.call("GET", KEYS[1]) or "0")
local floor = tonumber(ARGV[1])
if cur < floor then
	redis.call("SET", KEYS[1], floor)
end
return redis.call("INCR", KEYS[1])
`)

// SequenceAllocator hands out ids from an atomic per-prefix counter.
// Key format: seq:<prefix>
type SequenceAllocator struct {
	client redis.Scripter
}

// NewSequenceAllocator creates a SequenceAllocator backed by client.
func NewSequenceAllocator(client redis.Scripter) *SequenceAllocator {
	return &SequenceAllocator{client: client}
}

// Next returns prefix followed by the next counter value. Concurrent callers
// always receive distinct ids.
func (a *SequenceAllocator) Next(ctx context.Context, prefix string, existing []string) (string, error) {
	floor := domain.MaxSequence(prefix, existing)
	n, err := nextSeq.Run(ctx, a.client, []string{a.key(prefix)}, floor).Int()
	if err != nil {
		return "", fmt.Errorf("sequence %s: %w", prefix, err)
	}
	return domain.FormatSequentialID(prefix, n), nil
}

func (a *SequenceAllocator) key(prefix string) string {
	return "seq:" + prefix
}
