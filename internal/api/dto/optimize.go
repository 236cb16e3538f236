package dto

import "trip-optimizer-service/internal/domain"

type OptimizeRequest struct {
	Origin      domain.Coordinate    `json:"origin"`
	Destination domain.Coordinate    `json:"destination"`
	Preferences domain.PreferenceSet `json:"preferences,omitempty"`
}

type ModesResponse struct {
	Modes []domain.TravelMode `json:"modes"`
}

// ModeResponse is the selected package for one mode; exactly one of the
// variant fields is set, matching the mode discriminator.
type ModeResponse struct {
	Mode       domain.TravelMode         `json:"mode"`
	Efficiency *domain.EfficiencyPackage `json:"efficiency,omitempty"`
	Scenic     *domain.ScenicPackage     `json:"scenic,omitempty"`
	Foodie     *domain.FoodiePackage     `json:"foodie,omitempty"`
}
