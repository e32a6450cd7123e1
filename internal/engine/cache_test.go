package engine

import (
	"context"
	"testing"
	"time"
)

func TestCacheKeyDeterministic(t *testing.T) {
	a := CacheKey("transcript", "dQw4w9WgXcQ", "en")
	b := CacheKey("transcript", "dQw4w9WgXcQ", "en")
	c := CacheKey("transcript", "dQw4w9WgXcQ", "ko")

	if a != b {
		t.Error("same parts must produce the same key")
	}
	if a == c {
		t.Error("different parts must produce different keys")
	}
}

func TestCacheGetSetRoundTrip(t *testing.T) {
	ctx := context.Background()
	c := NewCache("", time.Minute, 10, time.Minute)

	key := CacheKey("test", "roundtrip")
	if _, ok := c.Get(ctx, key); ok {
		t.Fatal("unexpected hit on empty cache")
	}

	c.Set(ctx, key, []byte("payload"))
	data, ok := c.Get(ctx, key)
	if !ok || string(data) != "payload" {
		t.Fatalf("Get = (%q, %v), want payload hit", data, ok)
	}
}

func TestCacheNilSafe(t *testing.T) {
	ctx := context.Background()
	var c *Cache

	c.Set(ctx, "k", []byte("v")) // must not panic
	if _, ok := c.Get(ctx, "k"); ok {
		t.Error("nil cache must always miss")
	}
}

func TestCacheJSONHelpers(t *testing.T) {
	ctx := context.Background()
	c := NewCache("", time.Minute, 10, time.Minute)

	type payload struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}

	key := CacheKey("test", "json")
	if _, ok := CacheLoadJSON[payload](ctx, c, key); ok {
		t.Fatal("unexpected hit before store")
	}

	CacheStoreJSON(ctx, c, key, payload{Name: "x", Count: 3})
	got, ok := CacheLoadJSON[payload](ctx, c, key)
	if !ok || got.Name != "x" || got.Count != 3 {
		t.Fatalf("CacheLoadJSON = (%+v, %v)", got, ok)
	}
}
