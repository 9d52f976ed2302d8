package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	// WheelSetCacheTTL is the time-to-live for cached wheel sets.
	WheelSetCacheTTL = time.Hour

	wheelSetKeyPrefix = "wheelset"
)

// CachedWheelSet is the denormalized read model stored in Redis. The whole
// aggregate (set plus ordered items) is stored as one JSON value because
// readers always want the items together with the set.
type CachedWheelSet struct {
	ID        uuid.UUID         `json:"id"`
	UserID    uuid.UUID         `json:"user_id"`
	Name      string            `json:"name"`
	Version   int64             `json:"version"`
	Items     []CachedWheelItem `json:"items"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

// CachedWheelItem mirrors one wheel item inside the cached aggregate.
type CachedWheelItem struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	Color       *string   `json:"color"`
	Order       int       `json:"order"`
}

// WheelSetCache provides read/write operations for wheel-set cache entries.
// Keys are scoped by userID to prevent cross-tenant data leakage.
// Key format: "wheelset:{userID}:{setID}"
type WheelSetCache struct {
	client *RedisClient
}

// NewWheelSetCache creates a WheelSetCache backed by the given RedisClient.
func NewWheelSetCache(r *RedisClient) *WheelSetCache {
	return &WheelSetCache{client: r}
}

// Get retrieves a cached wheel set by user + set ID.
// Returns redis.Nil error when the key does not exist or has expired.
func (c *WheelSetCache) Get(ctx context.Context, userID, setID uuid.UUID) (*CachedWheelSet, error) {
	data, err := c.client.Client().Get(ctx, c.key(userID, setID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, redis.Nil
		}
		return nil, fmt.Errorf("cache get: %w", err)
	}

	var set CachedWheelSet
	if err := json.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("cache decode: %w", err)
	}
	return &set, nil
}

// Set writes a cached wheel set with a 1-hour TTL.
func (c *WheelSetCache) Set(ctx context.Context, set *CachedWheelSet) error {
	data, err := json.Marshal(set)
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}
	if err := c.client.Client().Set(ctx, c.key(set.UserID, set.ID), data, WheelSetCacheTTL).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Delete removes a cached wheel set. Missing keys are not an error.
func (c *WheelSetCache) Delete(ctx context.Context, userID, setID uuid.UUID) error {
	if err := c.client.Client().Del(ctx, c.key(userID, setID)).Err(); err != nil {
		return fmt.Errorf("cache delete: %w", err)
	}
	return nil
}

// key builds the Redis key: "wheelset:{userID}:{setID}"
func (c *WheelSetCache) key(userID, setID uuid.UUID) string {
	return fmt.Sprintf("%s:%s:%s", wheelSetKeyPrefix, userID, setID)
}
