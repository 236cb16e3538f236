package domain

// Fixed weights for the composite weather score. These are product-wide
// constants, never tuned per request.
const (
	WeightPrecipitation = 0.4
	WeightVisibility    = 0.3
	WeightTemperature   = 0.2
	WeightWind          = 0.1
)

// WeatherScores are normalized condition scores in [0,1], where 1 is ideal.
type WeatherScores struct {
	Overall       float64 `json:"overall"`
	Precipitation float64 `json:"precipitation"`
	Visibility    float64 `json:"visibility"`
	Temperature   float64 `json:"temperature"`
	Wind          float64 `json:"wind"`
}

// CompositeOverall computes the weighted overall score from the component
// scores (precipitation 0.4, visibility 0.3, temperature 0.2, wind 0.1).
func CompositeOverall(s WeatherScores) float64 {
	return s.Precipitation*WeightPrecipitation +
		s.Visibility*WeightVisibility +
		s.Temperature*WeightTemperature +
		s.Wind*WeightWind
}

// WeatherAlert is a single hazard reported for the trip corridor.
type WeatherAlert struct {
	Kind       string     `json:"kind"`
	Severity   string     `json:"severity,omitempty"`
	Message    string     `json:"message,omitempty"`
	Location   Coordinate `json:"location"`
	DistanceKM float64    `json:"distance_km"`
}

// WeatherInsights is the per-build weather context shared by all packages.
// Callers must tolerate an empty alert set.
type WeatherInsights struct {
	Scores WeatherScores  `json:"scores"`
	Alerts []WeatherAlert `json:"alerts,omitempty"`
}
