package mem

import (
	"sync"
	"time"
)

// WeatherCache is a small TTL cache for weather snapshots, keyed by rounded
// coordinates. It keeps repeated lookups for the same map area from hammering
// the upstream provider.
type WeatherCache interface {
	Get(key string) (interface{}, bool)
	Set(key string, value interface{}, ttl time.Duration)
}

type weatherEntry struct {
	value     interface{}
	expiresAt time.Time
}

type weatherCache struct {
	mu   sync.RWMutex
	data map[string]weatherEntry
}

func NewWeatherCache() WeatherCache {
	return &weatherCache{
		data: make(map[string]weatherEntry),
	}
}

func (c *weatherCache) Get(key string) (interface{}, bool) {
	c.mu.RLock()
	e, ok := c.data[key]
	c.mu.RUnlock()

	if !ok {
		return nil, false
	}
	if time.Now().After(e.expiresAt) {
		c.mu.Lock()
		delete(c.data, key)
		c.mu.Unlock()
		return nil, false
	}
	return e.value, true
}

func (c *weatherCache) Set(key string, value interface{}, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = weatherEntry{
		value:     value,
		expiresAt: time.Now().Add(ttl),
	}
}
