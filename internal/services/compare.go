package services

import "trip-optimizer-service/internal/domain"

// ScenicHighlight summarizes the scenic package for display.
type ScenicHighlight struct {
	Score               float64 `json:"scenic_score"`
	DurationIncreasePct float64 `json:"duration_increase_pct"`
}

// FoodHighlight summarizes the foodie package for display.
type FoodHighlight struct {
	Name   string  `json:"name"`
	Rating float64 `json:"rating"`
}

// Comparison is a stateless display view over a completed result.
type Comparison struct {
	FastestSeconds     int               `json:"fastest_seconds"`
	MostScenic         *ScenicHighlight  `json:"most_scenic,omitempty"`
	BestFood           *FoodHighlight    `json:"best_food,omitempty"`
	WeatherRecommended domain.TravelMode `json:"weather_recommended"`
	WeatherScore       float64           `json:"weather_score"`
}

// Compare derives human-facing comparison metrics from a completed result.
// Disabled packages are omitted from the highlights. Pure; no side effects.
func Compare(r *domain.OptimizationResult) Comparison {
	c := Comparison{
		FastestSeconds:     r.Packages.Efficiency.Metrics.DurationSeconds,
		WeatherRecommended: r.Recommended,
		WeatherScore:       r.Weather.Scores.Overall,
	}

	if s := r.Packages.Scenic; s != nil && !s.Status.Disabled {
		c.MostScenic = &ScenicHighlight{
			Score:               s.ScenicScore,
			DurationIncreasePct: s.DurationIncreasePct,
		}
	}
	if f := r.Packages.Foodie; f != nil && !f.Status.Disabled {
		c.BestFood = &FoodHighlight{
			Name:   f.Restaurant.Name,
			Rating: f.Restaurant.Rating,
		}
	}
	return c
}
