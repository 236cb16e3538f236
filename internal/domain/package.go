package domain

// TravelMode discriminates the three package variants.
type TravelMode string

const (
	ModeEfficiency TravelMode = "efficiency"
	ModeScenic     TravelMode = "scenic"
	ModeFoodie     TravelMode = "foodie"
)

// Valid reports whether m is one of the three known modes.
func (m TravelMode) Valid() bool {
	switch m {
	case ModeEfficiency, ModeScenic, ModeFoodie:
		return true
	}
	return false
}

// ModePackage is the closed set of package variants. Each variant carries
// its own required fields; the discriminator is the Mode method.
type ModePackage interface {
	Mode() TravelMode
}

func (*EfficiencyPackage) Mode() TravelMode { return ModeEfficiency }
func (*ScenicPackage) Mode() TravelMode     { return ModeScenic }
func (*FoodiePackage) Mode() TravelMode     { return ModeFoodie }

// RouteMetrics are the travel metrics common to every package variant.
type RouteMetrics struct {
	DurationSeconds int `json:"duration_seconds"`
	DistanceMeters  int `json:"distance_meters"`
}

// PackageStatus records whether a package is usable and, when it is not, why.
type PackageStatus struct {
	Disabled bool   `json:"disabled"`
	Reason   string `json:"reason,omitempty"`
}

// EfficiencyPackage is the direct origin->destination route. It is the
// guaranteed baseline: it is never disabled and a build cannot succeed
// without it.
type EfficiencyPackage struct {
	Metrics  RouteMetrics `json:"metrics"`
	Geometry []Coordinate `json:"geometry,omitempty"`
}

// ScenicPackage is a detour-tolerant alternate route scored for scenery.
type ScenicPackage struct {
	Metrics RouteMetrics  `json:"metrics"`
	Status  PackageStatus `json:"status"`

	// ScenicScore is in [0,100].
	ScenicScore float64 `json:"scenic_score"`
	// DurationIncreasePct is relative to the efficiency package duration.
	DurationIncreasePct float64      `json:"duration_increase_pct"`
	Geometry            []Coordinate `json:"geometry,omitempty"`
}

// Restaurant is the selected stop for a foodie package.
type Restaurant struct {
	Name string `json:"name"`
	// Rating is in [0,5].
	Rating float64 `json:"rating"`
}

// FoodiePackage is the efficiency route plus the best restaurant stop
// within the detour budget.
type FoodiePackage struct {
	Metrics    RouteMetrics  `json:"metrics"`
	Status     PackageStatus `json:"status"`
	Restaurant Restaurant    `json:"selected_restaurant"`
}

// PackageSet holds the three competing packages for one trip. After a
// successful build all three are present; scenic and foodie may be disabled,
// efficiency never is.
type PackageSet struct {
	Efficiency *EfficiencyPackage `json:"efficiency"`
	Scenic     *ScenicPackage     `json:"scenic"`
	Foodie     *FoodiePackage     `json:"foodie"`
}

// Disabled returns the disable status for the given mode. Efficiency carries
// no status field and always reports enabled.
func (s *PackageSet) Disabled(mode TravelMode) (bool, string) {
	switch mode {
	case ModeScenic:
		if s.Scenic != nil {
			return s.Scenic.Status.Disabled, s.Scenic.Status.Reason
		}
	case ModeFoodie:
		if s.Foodie != nil {
			return s.Foodie.Status.Disabled, s.Foodie.Status.Reason
		}
	}
	return false, ""
}
