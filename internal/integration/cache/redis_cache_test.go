package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

func newTestCache(t *testing.T) (*redisListCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return &redisListCache{client: client, ttl: time.Minute}, mr
}

func TestRedisListCacheRoundTrip(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()
	familyID := uuid.New()

	if _, ok := c.Get(ctx, "categories", familyID, "type=expense"); ok {
		t.Fatal("expected a miss on an empty cache")
	}

	c.Set(ctx, "categories", familyID, "type=expense", []byte(`["a"]`))

	payload, ok := c.Get(ctx, "categories", familyID, "type=expense")
	if !ok {
		t.Fatal("expected a hit after Set")
	}
	if string(payload) != `["a"]` {
		t.Errorf("payload = %q, want %q", payload, `["a"]`)
	}
}

func TestRedisListCacheKeysAreScoped(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()
	familyID := uuid.New()

	c.Set(ctx, "categories", familyID, "type=expense", []byte("expense"))

	if _, ok := c.Get(ctx, "categories", familyID, "type=income"); ok {
		t.Error("filter key should partition entries")
	}
	if _, ok := c.Get(ctx, "tags", familyID, "type=expense"); ok {
		t.Error("kind should partition entries")
	}
	if _, ok := c.Get(ctx, "categories", uuid.New(), "type=expense"); ok {
		t.Error("family id should partition entries")
	}
}

func TestRedisListCacheInvalidateOrphansTheGroup(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()
	familyID := uuid.New()
	otherFamily := uuid.New()

	c.Set(ctx, "categories", familyID, "all", []byte("one"))
	c.Set(ctx, "categories", familyID, "type=expense", []byte("two"))
	c.Set(ctx, "categories", otherFamily, "all", []byte("three"))

	c.Invalidate(ctx, "categories", familyID)

	if _, ok := c.Get(ctx, "categories", familyID, "all"); ok {
		t.Error("invalidation should drop every filter of the family's kind")
	}
	if _, ok := c.Get(ctx, "categories", familyID, "type=expense"); ok {
		t.Error("invalidation should drop every filter of the family's kind")
	}
	if _, ok := c.Get(ctx, "categories", otherFamily, "all"); !ok {
		t.Error("invalidation must not touch other families")
	}
}

func TestRedisListCacheDegradesToMissWhenRedisIsDown(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()
	familyID := uuid.New()

	c.Set(ctx, "categories", familyID, "all", []byte("one"))
	mr.Close()

	if _, ok := c.Get(ctx, "categories", familyID, "all"); ok {
		t.Error("a dead backend should read as a miss")
	}
	// Writes and invalidations must not panic either.
	c.Set(ctx, "categories", familyID, "all", []byte("two"))
	c.Invalidate(ctx, "categories", familyID)
}
