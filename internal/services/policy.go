package services

import (
	"trip-optimizer-service/internal/domain"
)

// Weather score thresholds. These are the same constants used by the
// product-wide proceed/delay/cancel policy, reused here for consistency.
const (
	ScoreProceed = 0.6
	ScoreDelay   = 0.4
	ScoreCancel  = 0.2
)

// PolicyTier classifies an overall weather score. Tiers are not
// time-evolving; the tier is re-derived on every build.
type PolicyTier string

const (
	TierFavorable PolicyTier = "favorable"
	TierMarginal  PolicyTier = "marginal"
	TierAdverse   PolicyTier = "adverse"
)

// TierFor maps an overall score in [0,1] to its policy tier. The lower bound
// of each tier is inclusive: exactly 0.6 is favorable.
func TierFor(overall float64) PolicyTier {
	switch {
	case overall >= ScoreProceed:
		return TierFavorable
	case overall >= ScoreDelay:
		return TierMarginal
	default:
		return TierAdverse
	}
}

const (
	reasonScenicMarginal = "poor visibility/high precipitation reduces scenic value"
	reasonScenicAdverse  = "severe weather conditions make the scenic route unsafe"
)

// WeatherPolicyEngine converts weather insights into per-mode disable
// decisions and a single recommendation.
//
// Foodie is never weather-disabled (an indoor fallback is always assumed)
// and efficiency is never disabled (guaranteed baseline).
type WeatherPolicyEngine struct{}

// Apply annotates the set in place and returns the recommended mode plus
// the exact set of disabled packages. The recommendation never refers to a
// disabled package.
func (WeatherPolicyEngine) Apply(set *domain.PackageSet, insights domain.WeatherInsights) (domain.TravelMode, []domain.DisabledMode) {
	tier := TierFor(insights.Scores.Overall)

	if set.Scenic != nil && !set.Scenic.Status.Disabled {
		switch tier {
		case TierMarginal:
			set.Scenic.Status = domain.PackageStatus{Disabled: true, Reason: reasonScenicMarginal}
		case TierAdverse:
			reason := reasonScenicMarginal
			if insights.Scores.Overall < ScoreCancel {
				reason = reasonScenicAdverse
			}
			set.Scenic.Status = domain.PackageStatus{Disabled: true, Reason: reason}
		}
	}

	recommended := domain.ModeEfficiency
	if tier == TierFavorable && set.Scenic != nil && !set.Scenic.Status.Disabled {
		recommended = domain.ModeScenic
	}

	var disabled []domain.DisabledMode
	for _, m := range []domain.TravelMode{domain.ModeScenic, domain.ModeFoodie} {
		if off, reason := set.Disabled(m); off {
			disabled = append(disabled, domain.DisabledMode{Mode: m, Reason: reason})
		}
	}

	return recommended, disabled
}
