package ports

import (
	"context"
	"trip-optimizer-service/internal/domain"
)

// PlaceCandidate is a point of interest returned by a places search.
type PlaceCandidate struct {
	PlaceID  string
	Name     string
	Rating   float64
	Types    []string
	Location domain.Coordinate
}

// Contract for searching points of interest near a route corridor.
type PlacesProvider interface {
	// SearchNear returns candidates of the given category with at least
	// minRating along the corridor.
	SearchNear(ctx context.Context, corridor []domain.Coordinate, category string, minRating float64) ([]PlaceCandidate, error)
}
