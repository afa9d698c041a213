package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Store drivers.
const (
	StoreMongo  = "mongo"
	StoreMemory = "memory"
)

// Id allocators.
const (
	AllocatorRedis = "redis"
	AllocatorScan  = "scan"
)

type Config struct {
	Port            string        `env:"PORT,             default=8080"`
	Env             string        `env:"ENV,              default=development"`
	LogLevel        string        `env:"LOG_LEVEL,        default=info"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT, default=10s"`

	Admin AdminConfig
	Store StoreConfig
	Mongo MongoConfig
	Redis RedisConfig
}

// AdminConfig holds the pre-shared admin credential. Set either the key or
// a bcrypt hash of it; the hash wins when both are present.
type AdminConfig struct {
	APIKey     string `env:"ADMIN_API_KEY"`
	APIKeyHash string `env:"ADMIN_API_KEY_HASH"`
}

type StoreConfig struct {
	Driver    string `env:"STORE_DRIVER, default=mongo"`
	Allocator string `env:"ID_ALLOCATOR, default=redis"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=influencer_summit"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR, default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	cfg, err := LoadFrom(context.Background(), envconfig.OsLookuper())
	if err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return cfg
}

// LoadFrom resolves configuration from l and validates it.
func LoadFrom(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{Target: &cfg, Lookuper: l}); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// IsProduction reports whether ENV is production.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func (c *Config) validate() error {
	switch c.Store.Driver {
	case StoreMongo, StoreMemory:
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.Store.Driver)
	}
	switch c.Store.Allocator {
	case AllocatorRedis, AllocatorScan:
	default:
		return fmt.Errorf("unknown ID_ALLOCATOR %q", c.Store.Allocator)
	}
	if c.Admin.APIKey == "" && c.Admin.APIKeyHash == "" {
		return fmt.Errorf("ADMIN_API_KEY or ADMIN_API_KEY_HASH must be set")
	}
	return nil
}
