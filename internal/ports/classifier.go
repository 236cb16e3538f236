package ports

import (
	"context"
	"trip-optimizer-service/internal/domain"
)

// Contract for labeling a point of interest as indoor or outdoor.
//
// Classifiers are arranged in an ordered chain: each is tried in sequence
// and a failure falls through to the next. The final tier is a pure local
// heuristic that never fails.
type Classifier interface {
	Classify(ctx context.Context, placeID, name string, types []string) (domain.LocationClassification, error)
}
