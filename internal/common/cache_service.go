package common

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// CacheService implements CacheInterface with an in-process store.
// Used in development and tests; production wires the Redis variant.
type CacheService struct {
	store *gocache.Cache
}

var _ CacheInterface = (*CacheService)(nil)

// NewCacheService creates an in-memory cache with the given default TTL and
// cleanup interval, both in seconds
func NewCacheService(defaultTTLSeconds, cleanupSeconds int) *CacheService {
	return &CacheService{
		store: gocache.New(
			time.Duration(defaultTTLSeconds)*time.Second,
			time.Duration(cleanupSeconds)*time.Second,
		),
	}
}

// Set stores a value with the given TTL
func (c *CacheService) Set(key string, value interface{}, duration time.Duration) {
	c.store.Set(key, value, duration)
}

// Get retrieves a value by key
func (c *CacheService) Get(key string) (interface{}, bool) {
	return c.store.Get(key)
}

// Delete removes a value by key
func (c *CacheService) Delete(key string) {
	c.store.Delete(key)
}

// GetOrSet retrieves a value, loading and storing it on a miss
func (c *CacheService) GetOrSet(key string, duration time.Duration, loader func() (any, error)) (interface{}, error) {
	if val, found := c.store.Get(key); found {
		return val, nil
	}

	val, err := loader()
	if err != nil {
		return nil, err
	}

	c.store.Set(key, val, duration)
	return val, nil
}

// Close is a no-op for the in-memory store
func (c *CacheService) Close() error { return nil }
