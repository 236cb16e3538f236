package ports

import (
	"context"
	"trip-optimizer-service/internal/domain"
)

// Persistent record of completed optimizations for offline analysis.
// Writes are best-effort: an archive failure never fails the request.
type ResultArchive interface {
	Save(ctx context.Context, key string, result *domain.OptimizationResult) error
}
