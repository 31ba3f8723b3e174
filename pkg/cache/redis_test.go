package cache

import (
	"context"
	"os"
	"testing"
	"time"
)

// Set VENNSETS_TEST_REDIS=host:port to run against a live server.
func redisAddr(t *testing.T) string {
	t.Helper()
	addr := os.Getenv("VENNSETS_TEST_REDIS")
	if addr == "" {
		t.Skip("VENNSETS_TEST_REDIS not set")
	}
	return addr
}

func TestRedisCache(t *testing.T) {
	ctx := context.Background()
	c, err := NewRedisCache(ctx, RedisOptions{Addr: redisAddr(t)})
	if err != nil {
		t.Fatalf("NewRedisCache: %v", err)
	}
	defer c.Close()

	key := NewScopedKeyer(nil, "vennsets-test:").RenderKey(RenderKeyOpts{Operation: t.Name()})
	defer c.Delete(ctx, key)

	if _, hit, err := c.Get(ctx, key); err != nil || hit {
		t.Fatalf("Get before Set = (%v, %v)", hit, err)
	}
	if err := c.Set(ctx, key, []byte("v"), time.Minute); err != nil {
		t.Fatalf("Set: %v", err)
	}
	data, hit, err := c.Get(ctx, key)
	if err != nil || !hit || string(data) != "v" {
		t.Fatalf("Get = (%q, %v, %v)", data, hit, err)
	}
}

func TestRedisCacheUnreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := NewRedisCache(ctx, RedisOptions{Addr: "127.0.0.1:1"}); err == nil {
		t.Fatal("expected connection error")
	}
}
