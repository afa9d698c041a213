package config

import (
	"context"
	"testing"
	"time"

	"github.com/sethvargo/go-envconfig"
)

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := LoadFrom(context.Background(), envconfig.MapLookuper(map[string]string{
		"ADMIN_API_KEY": "k",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != "8080" || cfg.Store.Driver != StoreMongo || cfg.Store.Allocator != AllocatorRedis {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.Mongo.Database != "influencer_summit" || cfg.Redis.Addr != "localhost:6379" {
		t.Fatalf("unexpected backend defaults: %+v %+v", cfg.Mongo, cfg.Redis)
	}
	if cfg.ShutdownTimeout != 10*time.Second {
		t.Fatalf("unexpected shutdown timeout %s", cfg.ShutdownTimeout)
	}
}

func TestLoadFrom_Overrides(t *testing.T) {
	cfg, err := LoadFrom(context.Background(), envconfig.MapLookuper(map[string]string{
		"PORT":               "9000",
		"ADMIN_API_KEY_HASH": "$2a$10$abc",
		"STORE_DRIVER":       "memory",
		"ID_ALLOCATOR":       "scan",
		"REDIS_DB":           "3",
	}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "9000" || cfg.Store.Driver != StoreMemory || cfg.Store.Allocator != AllocatorScan || cfg.Redis.DB != 3 {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
}

func TestLoadFrom_RequiresAdminKey(t *testing.T) {
	if _, err := LoadFrom(context.Background(), envconfig.MapLookuper(nil)); err == nil {
		t.Fatal("expected error without an admin credential")
	}
}

func TestLoadFrom_RejectsUnknownDriver(t *testing.T) {
	_, err := LoadFrom(context.Background(), envconfig.MapLookuper(map[string]string{
		"ADMIN_API_KEY": "k",
		"STORE_DRIVER":  "firestore",
	}))
	if err == nil {
		t.Fatal("expected error for unknown driver")
	}
}
