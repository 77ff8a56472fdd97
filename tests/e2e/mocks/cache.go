package mocks

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// InMemoryCache stores JSON like the Redis cache does and reports misses with redis.Nil.
type InMemoryCache struct {
	mu   sync.Mutex
	data map[string]cacheEntry
	gets int
	sets int
}

type cacheEntry struct {
	raw    []byte
	expiry time.Time
}

func NewInMemoryCache() *InMemoryCache {
	return &InMemoryCache{data: make(map[string]cacheEntry)}
}

func (c *InMemoryCache) Get(_ context.Context, key string, dest any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gets++

	entry, ok := c.data[key]
	if !ok || time.Now().After(entry.expiry) {
		return redis.Nil
	}
	return json.Unmarshal(entry.raw, dest)
}

func (c *InMemoryCache) Set(_ context.Context, key string, value any, exp time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.sets++
	c.data[key] = cacheEntry{raw: raw, expiry: time.Now().Add(exp)}
	return nil
}

func (c *InMemoryCache) Close() error {
	return nil
}

// Has reports whether key holds a live entry.
func (c *InMemoryCache) Has(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.data[key]
	return ok && time.Now().Before(entry.expiry)
}

// Calls returns how many Get and Set calls were made.
func (c *InMemoryCache) Calls() (gets, sets int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.gets, c.sets
}
