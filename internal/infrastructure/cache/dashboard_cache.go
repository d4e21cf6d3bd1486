package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ErrCacheMiss is returned when no cached value exists for a key.
var ErrCacheMiss = errors.New("cache miss")

// DashboardCache caches computed per-user views such as dashboards and
// score breakdowns. Values are JSON-encoded and expire after a TTL so
// that freshly recorded entries become visible within a bounded window.
type DashboardCache interface {
	Get(ctx context.Context, userID uuid.UUID, view string, dest interface{}) error
	Set(ctx context.Context, userID uuid.UUID, view string, value interface{}) error
	Invalidate(ctx context.Context, userID uuid.UUID, views ...string) error
}

// RedisDashboardCache implements DashboardCache on Redis.
type RedisDashboardCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisDashboardCache creates a Redis-backed dashboard cache.
func NewRedisDashboardCache(client *redis.Client, ttl time.Duration) *RedisDashboardCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &RedisDashboardCache{client: client, ttl: ttl}
}

func (c *RedisDashboardCache) key(userID uuid.UUID, view string) string {
	return fmt.Sprintf("dashboard:%s:%s", userID.String(), view)
}

// Get loads a cached view into dest. Returns ErrCacheMiss when absent.
func (c *RedisDashboardCache) Get(ctx context.Context, userID uuid.UUID, view string, dest interface{}) error {
	data, err := c.client.Get(ctx, c.key(userID, view)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrCacheMiss
		}
		return fmt.Errorf("cache get: %w", err)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("cache decode: %w", err)
	}
	return nil
}

// Set stores a view with the configured TTL.
func (c *RedisDashboardCache) Set(ctx context.Context, userID uuid.UUID, view string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}
	if err := c.client.Set(ctx, c.key(userID, view), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Invalidate removes cached views for a user. With no views given it is a no-op.
func (c *RedisDashboardCache) Invalidate(ctx context.Context, userID uuid.UUID, views ...string) error {
	if len(views) == 0 {
		return nil
	}
	keys := make([]string, len(views))
	for i, v := range views {
		keys[i] = c.key(userID, v)
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("cache invalidate: %w", err)
	}
	return nil
}

// InMemoryDashboardCache is a process-local DashboardCache used in tests
// and when Redis is not configured.
type InMemoryDashboardCache struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	ttl     time.Duration
}

type memoryEntry struct {
	data      []byte
	expiresAt time.Time
}

// NewInMemoryDashboardCache creates an in-memory dashboard cache.
func NewInMemoryDashboardCache(ttl time.Duration) *InMemoryDashboardCache {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	return &InMemoryDashboardCache{
		entries: make(map[string]memoryEntry),
		ttl:     ttl,
	}
}

func (c *InMemoryDashboardCache) key(userID uuid.UUID, view string) string {
	return userID.String() + ":" + view
}

func (c *InMemoryDashboardCache) Get(_ context.Context, userID uuid.UUID, view string, dest interface{}) error {
	c.mu.RLock()
	entry, ok := c.entries[c.key(userID, view)]
	c.mu.RUnlock()

	if !ok || time.Now().After(entry.expiresAt) {
		return ErrCacheMiss
	}
	return json.Unmarshal(entry.data, dest)
}

func (c *InMemoryDashboardCache) Set(_ context.Context, userID uuid.UUID, view string, value interface{}) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.entries[c.key(userID, view)] = memoryEntry{data: data, expiresAt: time.Now().Add(c.ttl)}
	c.mu.Unlock()
	return nil
}

func (c *InMemoryDashboardCache) Invalidate(_ context.Context, userID uuid.UUID, views ...string) error {
	c.mu.Lock()
	for _, v := range views {
		delete(c.entries, c.key(userID, v))
	}
	c.mu.Unlock()
	return nil
}
