package engine

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"
)

// Two-tier cache: L1 in-process (sync.Map), L2 Redis (optional).
// L1 absorbs hot repeated lookups; L2 survives restarts and is shared
// across instances. Without REDIS_URL the cache runs L1-only.

type cacheEntry struct {
	data      []byte
	expiresAt time.Time
}

type tieredCache struct {
	l1         sync.Map
	l1Count    atomic.Int64
	maxEntries int
	redis      *redis.Client
	ttl        time.Duration
}

var cache *tieredCache
var cacheOnce sync.Once

// InitCache sets up the tiered cache. redisURL may be empty (L1-only).
func InitCache(redisURL string, ttl time.Duration, maxEntries int, cleanupInterval time.Duration) {
	cacheOnce.Do(func() {
		if ttl <= 0 {
			ttl = time.Hour
		}
		if maxEntries <= 0 {
			maxEntries = 1000
		}
		if cleanupInterval <= 0 {
			cleanupInterval = 5 * time.Minute
		}
		cache = &tieredCache{maxEntries: maxEntries, ttl: ttl}

		if redisURL != "" {
			opt, err := redis.ParseURL(redisURL)
			if err != nil {
				slog.Warn("invalid redis url, running L1-only", slog.Any("error", err))
			} else {
				client := redis.NewClient(opt)
				ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
				defer cancel()
				if err := client.Ping(ctx).Err(); err != nil {
					slog.Warn("redis unreachable, running L1-only", slog.Any("error", err))
					client.Close()
				} else {
					cache.redis = client
					slog.Info("redis cache connected")
				}
			}
		}

		go cache.cleanupLoop(cleanupInterval)
	})
}

// CacheKey builds a namespaced sha256 key from parts.
func CacheKey(parts ...string) string {
	h := sha256.New()
	for _, p := range parts {
		h.Write([]byte(p))
		h.Write([]byte{0})
	}
	return "js:" + hex.EncodeToString(h.Sum(nil))[:32]
}

func (c *tieredCache) get(ctx context.Context, key string) ([]byte, bool) {
	if v, ok := c.l1.Load(key); ok {
		entry := v.(cacheEntry)
		if time.Now().Before(entry.expiresAt) {
			IncrCacheHits()
			return entry.data, true
		}
		c.l1.Delete(key)
		c.l1Count.Add(-1)
	}

	if c.redis != nil {
		data, err := c.redis.Get(ctx, key).Bytes()
		if err == nil {
			// promote to L1
			c.l1.Store(key, cacheEntry{data: data, expiresAt: time.Now().Add(c.ttl)})
			c.l1Count.Add(1)
			c.evictIfNeeded()
			IncrCacheHits()
			return data, true
		}
	}

	IncrCacheMisses()
	return nil, false
}

func (c *tieredCache) set(ctx context.Context, key string, data []byte) {
	c.l1.Store(key, cacheEntry{data: data, expiresAt: time.Now().Add(c.ttl)})
	c.l1Count.Add(1)
	c.evictIfNeeded()

	if c.redis != nil {
		if err := c.redis.Set(ctx, key, data, c.ttl).Err(); err != nil {
			slog.Debug("redis set failed", slog.Any("error", err))
		}
	}
}

// evictIfNeeded drops expired entries first, then arbitrary entries until
// under the cap. sync.Map has no ordering, so eviction is approximate.
func (c *tieredCache) evictIfNeeded() {
	if int(c.l1Count.Load()) <= c.maxEntries {
		return
	}
	now := time.Now()
	c.l1.Range(func(k, v any) bool {
		if now.After(v.(cacheEntry).expiresAt) {
			c.l1.Delete(k)
			c.l1Count.Add(-1)
		}
		return true
	})
	c.l1.Range(func(k, v any) bool {
		if int(c.l1Count.Load()) <= c.maxEntries {
			return false
		}
		c.l1.Delete(k)
		c.l1Count.Add(-1)
		return true
	})
}

func (c *tieredCache) cleanupLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for range ticker.C {
		now := time.Now()
		removed := 0
		c.l1.Range(func(k, v any) bool {
			if now.After(v.(cacheEntry).expiresAt) {
				c.l1.Delete(k)
				c.l1Count.Add(-1)
				removed++
			}
			return true
		})
		if removed > 0 {
			slog.Debug("cache cleanup", slog.Int("removed", removed))
		}
	}
}

// CacheGetJSON fetches and decodes a cached value. Returns false on miss
// or decode failure.
func CacheGetJSON[T any](ctx context.Context, key string) (T, bool) {
	var zero T
	if cache == nil {
		return zero, false
	}
	data, ok := cache.get(ctx, key)
	if !ok {
		return zero, false
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		slog.Debug("cache decode failed", slog.String("key", key), slog.Any("error", err))
		return zero, false
	}
	return v, true
}

// CacheSetJSON encodes and stores a value. Encode failures are logged
// and dropped; caching is best-effort.
func CacheSetJSON[T any](ctx context.Context, key string, v T) {
	if cache == nil {
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		slog.Debug("cache encode failed", slog.String("key", key), slog.Any("error", err))
		return
	}
	cache.set(ctx, key, data)
}

// CacheStats reports current cache occupancy and backend availability.
type CacheStats struct {
	L1Entries  int64 `json:"l1Entries"`
	MaxEntries int   `json:"maxEntries"`
	RedisUp    bool  `json:"redisUp"`
}

func GetCacheStats() CacheStats {
	if cache == nil {
		return CacheStats{}
	}
	return CacheStats{
		L1Entries:  cache.l1Count.Load(),
		MaxEntries: cache.maxEntries,
		RedisUp:    cache.redis != nil,
	}
}
