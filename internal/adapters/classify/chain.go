package classify

import (
	"context"
	"errors"
	"log"
	"trip-optimizer-service/internal/domain"
	"trip-optimizer-service/internal/ports"
)

// Chain tries classifiers in order, falling through on any failure. With a
// HeuristicClassifier as the final tier it never returns an error, so remote
// failures are never surfaced to callers.
type Chain struct {
	tiers []ports.Classifier
}

// NewChain builds a classifier chain; tiers are tried front to back.
func NewChain(tiers ...ports.Classifier) *Chain {
	return &Chain{tiers: tiers}
}

func (c *Chain) Classify(ctx context.Context, placeID, name string, types []string) (domain.LocationClassification, error) {
	var lastErr error
	for _, tier := range c.tiers {
		out, err := tier.Classify(ctx, placeID, name, types)
		if err == nil {
			return out, nil
		}
		lastErr = err
		log.Printf("classifier tier failed place_id=%q err=%v", placeID, err)
	}
	if lastErr == nil {
		lastErr = errors.New("classify: no classifiers configured")
	}
	return domain.LocationClassification{}, lastErr
}
