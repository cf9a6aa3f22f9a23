package main

import (
	"context"
	"fmt"

	"pawbuddy-client/internal/adapters/storage/file"
	"pawbuddy-client/internal/adapters/storage/memory"
	"pawbuddy-client/internal/adapters/storage/postgres"
	"pawbuddy-client/internal/adapters/storage/redis"
	"pawbuddy-client/internal/platform/config"
	"pawbuddy-client/internal/ports/prefs"
)

// openPrefs abre el backend de sesión configurado. closeFn libera la
// conexión (si la hay).
func openPrefs(ctx context.Context, cfg *config.Config) (prefs.Store, func(), error) {
	noop := func() {}

	switch cfg.SessionBackend {
	case config.SessionBackendMemory:
		return memory.NewPrefsStore(), noop, nil

	case config.SessionBackendFile:
		return file.NewPrefsStore(cfg.SessionFile), noop, nil

	case config.SessionBackendRedis:
		rdb, err := redis.Open(ctx, cfg.RedisURL)
		if err != nil {
			return nil, noop, err
		}
		return redis.NewPrefsStore(rdb), func() { _ = rdb.Close() }, nil

	case config.SessionBackendPostgres:
		db, err := postgres.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, noop, err
		}
		store := postgres.NewPrefsStore(db)
		if err := store.EnsureSchema(ctx); err != nil {
			_ = db.Close()
			return nil, noop, err
		}
		return store, func() { _ = db.Close() }, nil

	default:
		return nil, noop, fmt.Errorf("%w: unknown session backend %q", config.ErrInvalidConfig, cfg.SessionBackend)
	}
}
