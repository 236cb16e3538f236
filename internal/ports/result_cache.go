package ports

import (
	"context"
	"trip-optimizer-service/internal/domain"
)

// Time-bounded memoization of optimization results keyed by the derived
// geo cache key.
type ResultCache interface {
	// Get returns the cached result for key, or ok=false on a miss or when
	// the entry has outlived the cache TTL. Stale entries are expired
	// lazily, never eagerly.
	Get(ctx context.Context, key string) (*domain.OptimizationResult, bool, error)

	// Put stores the result for key, overwriting any previous entry
	// atomically (last-writer-wins).
	Put(ctx context.Context, key string, result *domain.OptimizationResult) error

	// Clear evicts all entries.
	Clear(ctx context.Context) error
}
