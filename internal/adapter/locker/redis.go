package locker

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/heartmarshall/watchlist-backend/internal/config"
)

// releaseScript deletes the key only while it still holds our token, so an
// expired lock taken over by another holder is never released by us.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// Redis is a lock shared by every process using the same Redis. Locks
// expire after TTL so a crashed holder cannot block a key forever.
type Redis struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
	retry  time.Duration
	log    *slog.Logger
}

// NewRedisClient connects to Redis and pings it.
func NewRedisClient(ctx context.Context, cfg config.LocksConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.RedisAddr,
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		MaxRetries:   3,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis %s: %w", cfg.RedisAddr, err)
	}
	return client, nil
}

func NewRedis(client *redis.Client, cfg config.LocksConfig, logger *slog.Logger) *Redis {
	return &Redis{
		client: client,
		prefix: cfg.KeyPrefix,
		ttl:    cfg.TTL,
		retry:  cfg.RetryInterval,
		log:    logger.With("adapter", "redis_locker"),
	}
}

// Lock polls SET NX until it wins the key or ctx is done.
func (r *Redis) Lock(ctx context.Context, key string) (Unlock, error) {
	k := r.prefix + key
	token := uuid.NewString()

	ticker := time.NewTicker(r.retry)
	defer ticker.Stop()

	for {
		ok, err := r.client.SetNX(ctx, k, token, r.ttl).Result()
		if err != nil {
			if ctx.Err() != nil {
				return nil, fmt.Errorf("lock %s: %w: %w", key, ErrLockTimeout, ctx.Err())
			}
			return nil, fmt.Errorf("lock %s: %w", key, err)
		}
		if ok {
			break
		}

		select {
		case <-ticker.C:
		case <-ctx.Done():
			return nil, fmt.Errorf("lock %s: %w: %w", key, ErrLockTimeout, ctx.Err())
		}
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			// The caller's context may already be done.
			ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			defer cancel()
			if err := releaseScript.Run(ctx, r.client, []string{k}, token).Err(); err != nil {
				r.log.Warn("release lock", slog.String("key", key), slog.String("error", err.Error()))
			}
		})
	}, nil
}
