package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/mapa-clientes/internal/domain/client"
)

const generationKey = "mapa:clientes:gen"

// RedisLookupCache caches single-client lookups. Every key embeds the
// current cache generation; bumping it after an import makes older
// entries unreachable, and they expire on their own.
type RedisLookupCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedis parses a redis:// URL and checks the connection.
func NewRedis(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, eris.Wrap(err, "cache: parse redis url")
	}
	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, eris.Wrap(err, "cache: ping redis")
	}
	return rdb, nil
}

func NewRedisLookupCache(rdb *redis.Client, ttl time.Duration) *RedisLookupCache {
	return &RedisLookupCache{rdb: rdb, ttl: ttl}
}

// Get misses on any redis error; the cache is never a reason to fail a lookup.
func (c *RedisLookupCache) Get(ctx context.Context, gen domain.Generation, key domain.Key) (*domain.Record, bool) {
	cacheKey, err := c.key(ctx, gen, key)
	if err != nil {
		return nil, false
	}

	raw, err := c.rdb.Get(ctx, cacheKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			zap.L().Debug("lookup cache get failed", zap.Error(err))
		}
		return nil, false
	}

	var rec domain.Record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, false
	}
	return &rec, true
}

func (c *RedisLookupCache) Set(ctx context.Context, gen domain.Generation, rec domain.Record) {
	cacheKey, err := c.key(ctx, gen, rec.Key())
	if err != nil {
		return
	}
	raw, err := json.Marshal(rec)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, cacheKey, raw, c.ttl).Err(); err != nil {
		zap.L().Debug("lookup cache set failed", zap.Error(err))
	}
}

// Invalidate bumps the generation counter.
func (c *RedisLookupCache) Invalidate(ctx context.Context) error {
	if err := c.rdb.Incr(ctx, generationKey).Err(); err != nil {
		return eris.Wrap(err, "cache: bump generation")
	}
	return nil
}

func (c *RedisLookupCache) key(ctx context.Context, gen domain.Generation, key domain.Key) (string, error) {
	n, err := c.rdb.Get(ctx, generationKey).Int64()
	if err != nil && err != redis.Nil {
		return "", err
	}
	return lookupKey(n, gen, key), nil
}

func lookupKey(n int64, gen domain.Generation, key domain.Key) string {
	return fmt.Sprintf("mapa:clientes:%d:%s:%s:%s", n, gen, key.CD, key.Code)
}
