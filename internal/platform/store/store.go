package store

import (
	"context"
	"fmt"

	"qrforge/internal/platform/config"
	"qrforge/internal/platform/database"
)

// Store is a string key-value store. Calls are independent; there is no
// transaction spanning two calls.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
	Clear(ctx context.Context) error
	Ping(ctx context.Context) error
}

// Open builds the store selected by cfg.Driver. The returned close func
// releases the underlying connection.
func Open(cfg config.StorageConfig) (Store, func() error, error) {
	switch cfg.Driver {
	case "", "sqlite":
		db, err := database.Open(cfg.SQLite)
		if err != nil {
			return nil, nil, err
		}
		if err := database.Migrate(db, "up"); err != nil {
			db.Close()
			return nil, nil, err
		}
		return NewSQLiteStore(db), db.Close, nil
	case "redis":
		s, err := NewRedisStore(cfg.Redis)
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil
	case "memory":
		return NewMemoryStore(), func() error { return nil }, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}

var (
	_ Store = (*SQLiteStore)(nil)
	_ Store = (*RedisStore)(nil)
	_ Store = (*MemoryStore)(nil)
)
