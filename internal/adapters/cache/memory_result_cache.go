package cache

import (
	"context"
	"sync"
	"time"
	"trip-optimizer-service/internal/domain"
)

// DefaultTTL bounds how long a cached optimization result may be served.
const DefaultTTL = 5 * time.Minute

type entry struct {
	result   *domain.OptimizationResult
	storedAt time.Time
}

// MemoryResultCache is an in-process TTL cache for optimization results.
// Entries are immutable once stored and replaced atomically by Put. Stale
// entries are expired lazily on read; staleness is bounded by the TTL
// regardless of sweep cadence. Safe for concurrent use.
type MemoryResultCache struct {
	mu  sync.RWMutex
	m   map[string]entry
	ttl time.Duration

	// now is swappable for TTL tests.
	now func() time.Time
}

func NewMemoryResultCache(ttl time.Duration) *MemoryResultCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &MemoryResultCache{
		m:   make(map[string]entry),
		ttl: ttl,
		now: time.Now,
	}
}

func (c *MemoryResultCache) Get(_ context.Context, key string) (*domain.OptimizationResult, bool, error) {
	c.mu.RLock()
	e, ok := c.m[key]
	c.mu.RUnlock()

	if !ok {
		return nil, false, nil
	}
	if c.now().Sub(e.storedAt) >= c.ttl {
		// Stale entries stay until overwritten or swept; the miss alone
		// bounds staleness.
		return nil, false, nil
	}
	return e.result, true, nil
}

func (c *MemoryResultCache) Put(_ context.Context, key string, result *domain.OptimizationResult) error {
	c.mu.Lock()
	c.m[key] = entry{result: result, storedAt: c.now()}
	c.mu.Unlock()
	return nil
}

func (c *MemoryResultCache) Clear(_ context.Context) error {
	c.mu.Lock()
	c.m = make(map[string]entry)
	c.mu.Unlock()
	return nil
}

// Sweep removes expired entries and returns how many were evicted.
func (c *MemoryResultCache) Sweep() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	evicted := 0
	now := c.now()
	for k, e := range c.m {
		if now.Sub(e.storedAt) >= c.ttl {
			delete(c.m, k)
			evicted++
		}
	}
	return evicted
}
