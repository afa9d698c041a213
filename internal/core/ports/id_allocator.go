package ports

import "context"

// IDAllocator hands out the next sequential id for a prefix. existing holds
// the ids currently stored so implementations can seed from them.
type IDAllocator interface {
	Next(ctx context.Context, prefix string, existing []string) (string, error)
}
