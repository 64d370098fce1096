package engine

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"
)

func newTestCache(maxEntries int, ttl time.Duration) *tieredCache {
	return &tieredCache{maxEntries: maxEntries, ttl: ttl}
}

func TestCacheKeyDeterministic(t *testing.T) {
	a := CacheKey("fetch-jobs", "react", "københavn")
	b := CacheKey("fetch-jobs", "react", "københavn")
	if a != b {
		t.Errorf("same parts produced different keys: %q vs %q", a, b)
	}
	if !strings.HasPrefix(a, "js:") {
		t.Errorf("key %q missing namespace prefix", a)
	}
}

func TestCacheKeyPartBoundaries(t *testing.T) {
	// "ab"+"c" must not collide with "a"+"bc"
	if CacheKey("ab", "c") == CacheKey("a", "bc") {
		t.Error("keys collide across part boundaries")
	}
}

func TestCacheGetSetRoundtrip(t *testing.T) {
	old := cache
	cache = newTestCache(10, time.Minute)
	defer func() { cache = old }()

	ctx := context.Background()
	type payload struct {
		Keyword string `json:"keyword"`
		Count   int    `json:"count"`
	}

	key := CacheKey("test", "roundtrip")
	if _, ok := CacheGetJSON[payload](ctx, key); ok {
		t.Fatal("expected miss on empty cache")
	}

	CacheSetJSON(ctx, key, payload{Keyword: "react", Count: 7})
	got, ok := CacheGetJSON[payload](ctx, key)
	if !ok {
		t.Fatal("expected hit after set")
	}
	if got.Keyword != "react" || got.Count != 7 {
		t.Errorf("got %+v", got)
	}
}

func TestCacheExpiry(t *testing.T) {
	old := cache
	cache = newTestCache(10, 10*time.Millisecond)
	defer func() { cache = old }()

	ctx := context.Background()
	key := CacheKey("test", "expiry")
	CacheSetJSON(ctx, key, "value")

	if _, ok := CacheGetJSON[string](ctx, key); !ok {
		t.Fatal("expected hit before expiry")
	}
	time.Sleep(20 * time.Millisecond)
	if _, ok := CacheGetJSON[string](ctx, key); ok {
		t.Error("expected miss after expiry")
	}
}

func TestCacheEviction(t *testing.T) {
	old := cache
	cache = newTestCache(5, time.Minute)
	defer func() { cache = old }()

	ctx := context.Background()
	for i := 0; i < 20; i++ {
		CacheSetJSON(ctx, CacheKey("test", "evict", fmt.Sprint(i)), i)
	}
	if n := cache.l1Count.Load(); n > 5 {
		t.Errorf("l1 entries = %d, want <= 5", n)
	}
}

func TestCacheNilSafe(t *testing.T) {
	old := cache
	cache = nil
	defer func() { cache = old }()

	ctx := context.Background()
	CacheSetJSON(ctx, "k", "v")
	if _, ok := CacheGetJSON[string](ctx, "k"); ok {
		t.Error("nil cache should always miss")
	}
}
