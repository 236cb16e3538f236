package archive

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"trip-optimizer-service/internal/domain"
	"trip-optimizer-service/internal/platform/obs"
)

// PGResultArchive appends completed optimization results to Postgres for
// offline analysis. Rows are append-only; a cache key may appear many times
// as results are rebuilt across TTL windows.
type PGResultArchive struct {
	DB *sql.DB
}

func NewPGResultArchive(db *sql.DB) *PGResultArchive {
	return &PGResultArchive{DB: db}
}

func (a *PGResultArchive) Save(
	ctx context.Context,
	key string,
	result *domain.OptimizationResult,
) (err error) {
	defer obs.Time(ctx, "archive.Save")(&err)

	if a.DB == nil {
		return errors.New("result archive: db is nil")
	}
	if key == "" {
		return errors.New("result archive: key must not be empty")
	}
	if result == nil {
		return errors.New("result archive: result is nil")
	}

	payload, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("result archive: marshal result: %w", err)
	}

	q := `
	INSERT INTO optimization_archive (cache_key, recommended, weather_overall, result, generated_at)
    VALUES ($1, $2, $3, $4, $5);
	`

	if _, err := a.DB.ExecContext(
		ctx, q,
		key,
		string(result.Recommended),
		result.Weather.Scores.Overall,
		payload,
		result.GeneratedAt,
	); err != nil {
		return fmt.Errorf("result archive: insert key=%q: %w", key, err)
	}

	return nil
}
