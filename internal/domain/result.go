package domain

import "time"

// DisabledMode pairs a disabled package with its human-readable reason.
type DisabledMode struct {
	Mode   TravelMode `json:"mode"`
	Reason string     `json:"reason"`
}

// OptimizationResult is the completed output for one trip: all three
// packages, the weather-driven recommendation, and the disable set.
//
// Invariants: Recommended never refers to a disabled package; DisabledModes
// is exactly the set of packages with Disabled=true; efficiency is never
// disabled.
type OptimizationResult struct {
	Packages      PackageSet      `json:"packages"`
	Recommended   TravelMode      `json:"recommended"`
	DisabledModes []DisabledMode  `json:"disabled_modes"`
	Weather       WeatherInsights `json:"weather_insights"`
	GeneratedAt   time.Time       `json:"generated_at"`
}

// AvailableModes lists the modes whose packages are present and enabled.
// Order is fixed: efficiency, scenic, foodie.
func (r *OptimizationResult) AvailableModes() []TravelMode {
	modes := make([]TravelMode, 0, 3)
	for _, m := range []TravelMode{ModeEfficiency, ModeScenic, ModeFoodie} {
		if disabled, _ := r.Packages.Disabled(m); !disabled {
			modes = append(modes, m)
		}
	}
	return modes
}
