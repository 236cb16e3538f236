package domain

import "errors"

// Error taxonomy for the optimization core.
//
// Validation errors fail fast before any provider call. A failed build is
// never cached, so retries re-attempt the full build.
var (
	// ErrInvalidCoordinate marks malformed request coordinates.
	ErrInvalidCoordinate = errors.New("invalid coordinate")

	// ErrRouteUnavailable is returned by route providers when no path exists.
	ErrRouteUnavailable = errors.New("route unavailable")

	// ErrBuildFailed marks a failed mandatory sub-build (the efficiency
	// baseline). Scenic and foodie failures degrade instead.
	ErrBuildFailed = errors.New("package build failed")

	// ErrModeDisabled is returned when a caller selects a weather-disabled mode.
	ErrModeDisabled = errors.New("mode disabled")

	// ErrNoResult is returned when mode selection runs before any optimization.
	ErrNoResult = errors.New("no optimization result available")
)
