package ports

import (
	"context"
	"trip-optimizer-service/internal/domain"
)

// Contract for retrieving weather and hazard conditions around a point.
type WeatherProvider interface {
	// Hazards returns condition scores and the hazards within radiusKM of
	// center (great-circle distance). Callers must tolerate partial or
	// empty hazard sets.
	Hazards(ctx context.Context, center domain.Coordinate, radiusKM float64) (domain.WeatherInsights, error)
}
