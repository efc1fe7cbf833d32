// Package db opens the persistent store selected by configuration.
package db

import (
	"log"

	"github.com/eztechpal/eztech-portal/internal/config"
	"github.com/eztechpal/eztech-portal/internal/store"
)

// NewStore opens the configured backend. Startup fails hard when the medium
// is unreachable: running with an unusable store would silently lose data.
func NewStore(cfg *config.Config) store.Store {
	s, err := Open(cfg)
	if err != nil {
		log.Fatalf("failed to open store (%s): %v", cfg.StoreDriver, err)
	}
	return s
}

// Open is the fallible variant used where the caller handles the error.
func Open(cfg *config.Config) (store.Store, error) {
	switch cfg.StoreDriver {
	case "memory":
		return store.NewMemory(), nil
	case "redis":
		return store.NewRedis(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	case "postgres":
		return store.NewPostgres(cfg.DBUrl)
	default:
		return store.NewSQLite(cfg.SQLitePath)
	}
}
