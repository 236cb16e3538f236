package services

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"
	"trip-optimizer-service/internal/domain"
	"trip-optimizer-service/internal/ports"

	"golang.org/x/sync/singleflight"
)

// Optimizer is the top-level entry point: cache lookup, build, policy,
// cache store. It exclusively owns cache entries and the last-result pointer
// used by the downstream mode selection and comparison calls.
//
// Concurrent misses for the same key are coalesced into a single in-flight
// build.
type Optimizer struct {
	cache   ports.ResultCache
	archive ports.ResultArchive
	builder *PackageBuilder
	policy  WeatherPolicyEngine
	group   singleflight.Group

	mu   sync.RWMutex
	last *domain.OptimizationResult
}

// NewOptimizer wires the orchestrator. archive may be nil.
func NewOptimizer(cache ports.ResultCache, builder *PackageBuilder, archive ports.ResultArchive) *Optimizer {
	return &Optimizer{
		cache:   cache,
		archive: archive,
		builder: builder,
	}
}

// Optimize returns the optimization result for one trip, idempotent per
// cache key within the cache TTL. Validation failures are reported before
// any provider call; failed builds are never cached.
func (o *Optimizer) Optimize(
	ctx context.Context,
	origin, destination domain.Coordinate,
	prefs domain.PreferenceSet,
) (*domain.OptimizationResult, error) {
	key, err := DeriveCacheKey(origin, destination, prefs)
	if err != nil {
		return nil, fmt.Errorf("optimize: %w", err)
	}

	if cached, ok, err := o.cache.Get(ctx, key); err != nil {
		// A degraded cache must not fail the request; treat as a miss.
		log.Printf("result cache read failed key=%q err=%v", key, err)
	} else if ok {
		o.setLast(cached)
		return cached, nil
	}

	v, err, _ := o.group.Do(key, func() (any, error) {
		return o.buildAndStore(ctx, key, origin, destination)
	})
	if err != nil {
		return nil, fmt.Errorf("optimize: %w", err)
	}

	result := v.(*domain.OptimizationResult)
	o.setLast(result)
	return result, nil
}

func (o *Optimizer) buildAndStore(
	ctx context.Context,
	key string,
	origin, destination domain.Coordinate,
) (*domain.OptimizationResult, error) {
	set, insights, err := o.builder.Build(ctx, origin, destination)
	if err != nil {
		return nil, err
	}

	recommended, disabled := o.policy.Apply(&set, insights)
	result := &domain.OptimizationResult{
		Packages:      set,
		Recommended:   recommended,
		DisabledModes: disabled,
		Weather:       insights,
		GeneratedAt:   time.Now().UTC(),
	}

	if err := o.cache.Put(ctx, key, result); err != nil {
		log.Printf("result cache write failed key=%q err=%v", key, err)
	}
	if o.archive != nil {
		if err := o.archive.Save(ctx, key, result); err != nil {
			log.Printf("result archive write failed key=%q err=%v", key, err)
		}
	}

	return result, nil
}

func (o *Optimizer) setLast(r *domain.OptimizationResult) {
	o.mu.Lock()
	o.last = r
	o.mu.Unlock()
}

// LastResult returns the most recent optimization result, if any.
func (o *Optimizer) LastResult() (*domain.OptimizationResult, bool) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.last, o.last != nil
}

// SelectMode returns the requested package from the last result, or
// domain.ErrModeDisabled when the mode is disabled.
func (o *Optimizer) SelectMode(mode domain.TravelMode) (domain.ModePackage, error) {
	last, ok := o.LastResult()
	if !ok {
		return nil, domain.ErrNoResult
	}

	if off, reason := last.Packages.Disabled(mode); off {
		return nil, fmt.Errorf("%w: %s: %s", domain.ErrModeDisabled, mode, reason)
	}

	switch mode {
	case domain.ModeEfficiency:
		return last.Packages.Efficiency, nil
	case domain.ModeScenic:
		return last.Packages.Scenic, nil
	case domain.ModeFoodie:
		return last.Packages.Foodie, nil
	}
	return nil, fmt.Errorf("select mode: unknown mode %q", mode)
}

// AvailableModes lists the enabled modes of the last result.
func (o *Optimizer) AvailableModes() ([]domain.TravelMode, error) {
	last, ok := o.LastResult()
	if !ok {
		return nil, domain.ErrNoResult
	}
	return last.AvailableModes(), nil
}

// ClearCache evicts every cached result.
func (o *Optimizer) ClearCache(ctx context.Context) error {
	if err := o.cache.Clear(ctx); err != nil {
		return fmt.Errorf("clear cache: %w", err)
	}
	return nil
}
