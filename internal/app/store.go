// Package app assembles the storage backends selected by configuration.
package app

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/influencer-summit/summit-api/internal/core/ports"
	"github.com/influencer-summit/summit-api/internal/core/service"
	"github.com/influencer-summit/summit-api/internal/infrastructure/db/memory"
	mongodb "github.com/influencer-summit/summit-api/internal/infrastructure/db/mongo"
	redisdb "github.com/influencer-summit/summit-api/internal/infrastructure/db/redis"
	"github.com/influencer-summit/summit-api/internal/infrastructure/http/handlers"
	"github.com/influencer-summit/summit-api/internal/pkg/config"
)

// Store bundles the repositories, the id allocator and the readiness checks
// for the backends in use.
type Store struct {
	Registrations ports.RegistrationRepository
	Badges        ports.BadgeRepository
	IDs           ports.IDAllocator
	Checks        map[string]handlers.Check

	closers []func(context.Context) error
}

// OpenStore connects to the configured backends. Mongo indexes are created
// before returning so uniqueness holds from the first write.
func OpenStore(ctx context.Context, cfg *config.Config, log zerolog.Logger) (*Store, error) {
	s := &Store{Checks: map[string]handlers.Check{}}

	switch cfg.Store.Driver {
	case config.StoreMemory:
		s.Registrations = memory.NewRegistrationRepository()
		s.Badges = memory.NewBadgeRepository()
		log.Warn().Msg("using in-memory store, data is lost on restart")
	default:
		client, db, err := mongodb.Connect(ctx, mongodb.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
		if err != nil {
			return nil, err
		}
		s.closers = append(s.closers, client.Disconnect)

		regs := mongodb.NewRegistrationRepository(db)
		badges := mongodb.NewBadgeRepository(db)
		if err := regs.EnsureIndexes(ctx); err != nil {
			_ = s.Close(ctx)
			return nil, fmt.Errorf("registration indexes: %w", err)
		}
		if err := badges.EnsureIndexes(ctx); err != nil {
			_ = s.Close(ctx)
			return nil, fmt.Errorf("badge indexes: %w", err)
		}
		s.Registrations, s.Badges = regs, badges
		s.Checks["mongodb"] = handlers.MongoCheck(db)
		log.Info().Str("database", cfg.Mongo.Database).Msg("connected to MongoDB")
	}

	switch cfg.Store.Allocator {
	case config.AllocatorScan:
		s.IDs = service.ScanAllocator{}
	default:
		rdb, err := redisdb.Connect(ctx, redisdb.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			_ = s.Close(ctx)
			return nil, err
		}
		s.closers = append(s.closers, func(context.Context) error { return rdb.Close() })
		s.IDs = redisdb.NewSequenceAllocator(rdb)
		s.Checks["redis"] = handlers.RedisCheck(rdb)
		log.Info().Str("addr", cfg.Redis.Addr).Msg("connected to Redis")
	}

	return s, nil
}

// Close releases backend connections in reverse order of opening.
func (s *Store) Close(ctx context.Context) error {
	var first error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](ctx); err != nil && first == nil {
			first = err
		}
	}
	s.closers = nil
	return first
}
