package ports

import (
	"context"
	"trip-optimizer-service/internal/domain"
)

// A computed route between two coordinates.
type Route struct {
	Geometry        []domain.Coordinate
	DurationSeconds int
	DistanceMeters  int
}

// RouteOptions tune a single route computation.
type RouteOptions struct {
	// DetourTolerance is the acceptable duration increase over the direct
	// route, as a fraction (0.3 = up to 30% longer). Zero requests the
	// direct route.
	DetourTolerance float64
}

// Contract for computing routes via an external routing service.
type RouteProvider interface {
	// Route returns a route from origin to destination. Implementations
	// return an error wrapping domain.ErrRouteUnavailable when no path
	// exists.
	Route(ctx context.Context, origin, destination domain.Coordinate, opts RouteOptions) (Route, error)
}
