package app

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/watchlist-backend/internal/adapter/locker"
	"github.com/heartmarshall/watchlist-backend/internal/config"
)

type subjectLocker interface {
	Lock(ctx context.Context, key string) (locker.Unlock, error)
}

// newLocker returns the configured per-subject lock and a function that
// releases its resources.
func newLocker(ctx context.Context, cfg config.LocksConfig, logger *slog.Logger) (subjectLocker, func(), error) {
	if cfg.Driver != config.LockRedis {
		return locker.NewMemory(), func() {}, nil
	}

	client, err := locker.NewRedisClient(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	return locker.NewRedis(client, cfg, logger), func() { _ = client.Close() }, nil
}
