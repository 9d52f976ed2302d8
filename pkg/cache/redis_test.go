package cache

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/wheelhouse/wheelhouse/pkg/config"
)

// newTestConfig returns a config pointing at the given Redis URL.
func newTestConfig(url string) *config.Config {
	return &config.Config{
		RedisURL: url,
	}
}

func TestNewRedisClient_InvalidURL(t *testing.T) {
	_, err := NewRedisClient(newTestConfig("not-a-valid-url"))
	if err == nil {
		t.Fatal("expected error for invalid URL, got nil")
	}
}

func TestNewRedisClient_UnreachableHost(t *testing.T) {
	_, err := NewRedisClient(newTestConfig("redis://localhost:19999"))
	if err == nil {
		t.Fatal("expected error when Redis is unreachable, got nil")
	}
}

// Integration tests — skipped unless REDIS_URL is set.
func TestRedisIntegration(t *testing.T) {
	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		t.Skip("REDIS_URL not set; skipping integration tests")
	}

	t.Run("Ping_Success", func(t *testing.T) {
		rc, err := NewRedisClient(newTestConfig(redisURL))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer rc.Close() //nolint:errcheck

		if err := rc.Ping(context.Background()); err != nil {
			t.Fatalf("Ping failed: %v", err)
		}
	})

	t.Run("WheelSetCache_RoundTrip", func(t *testing.T) {
		rc, err := NewRedisClient(newTestConfig(redisURL))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer rc.Close() //nolint:errcheck

		ctx := context.Background()
		c := NewWheelSetCache(rc)
		cached := &CachedWheelSet{
			ID:      uuid.New(),
			UserID:  uuid.New(),
			Name:    "Lunch",
			Version: 3,
			Items: []CachedWheelItem{
				{ID: uuid.New(), Name: "Pizza", Order: 0},
			},
		}

		if err := c.Set(ctx, cached); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
		got, err := c.Get(ctx, cached.UserID, cached.ID)
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if got.Name != "Lunch" || got.Version != 3 || len(got.Items) != 1 {
			t.Fatalf("round trip mangled the entry: %+v", got)
		}

		if err := c.Delete(ctx, cached.UserID, cached.ID); err != nil {
			t.Fatalf("Delete failed: %v", err)
		}
		if _, err := c.Get(ctx, cached.UserID, cached.ID); !errors.Is(err, redis.Nil) {
			t.Fatalf("expected redis.Nil after delete, got %v", err)
		}
	})

	t.Run("WheelSetCache_KeysAreUserScoped", func(t *testing.T) {
		rc, err := NewRedisClient(newTestConfig(redisURL))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		defer rc.Close() //nolint:errcheck

		ctx := context.Background()
		c := NewWheelSetCache(rc)
		cached := &CachedWheelSet{ID: uuid.New(), UserID: uuid.New(), Name: "Private"}
		if err := c.Set(ctx, cached); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
		defer c.Delete(ctx, cached.UserID, cached.ID) //nolint:errcheck

		if _, err := c.Get(ctx, uuid.New(), cached.ID); !errors.Is(err, redis.Nil) {
			t.Fatalf("expected miss for another user, got %v", err)
		}
	})
}
