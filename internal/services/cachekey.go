package services

import (
	"fmt"
	"math"
	"strconv"
	"trip-optimizer-service/internal/domain"
)

// Coordinates are rounded to 4 decimal places (~11 m) before keying, so two
// requests whose endpoints differ by less than that precision intentionally
// share a cache entry.
const cacheKeyPrecision = 4

// DeriveCacheKey produces the deterministic cache key for one optimization
// request. Pure; fails only on malformed coordinates.
func DeriveCacheKey(origin, destination domain.Coordinate, prefs domain.PreferenceSet) (string, error) {
	if err := origin.Validate(); err != nil {
		return "", fmt.Errorf("derive cache key: origin: %w", err)
	}
	if err := destination.Validate(); err != nil {
		return "", fmt.Errorf("derive cache key: destination: %w", err)
	}

	key := formatCoordinate(origin) + "|" + formatCoordinate(destination)
	if canonical := prefs.Canonical(); canonical != "" {
		key += "|" + canonical
	}
	return key, nil
}

func formatCoordinate(c domain.Coordinate) string {
	return roundDegrees(c.Lat) + "," + roundDegrees(c.Lng)
}

func roundDegrees(v float64) string {
	shift := math.Pow10(cacheKeyPrecision)
	r := math.Round(v*shift) / shift
	if r == 0 {
		// Normalize negative zero so -0.00004 and 0.00004 share a key.
		r = 0
	}
	return strconv.FormatFloat(r, 'f', cacheKeyPrecision, 64)
}
