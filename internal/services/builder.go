package services

import (
	"context"
	"fmt"
	"math"
	"sync"
	"trip-optimizer-service/internal/domain"
	"trip-optimizer-service/internal/platform/obs"
	"trip-optimizer-service/internal/ports"

	"golang.org/x/sync/errgroup"
)

const (
	// Acceptable duration increase for the scenic alternate route.
	scenicDetourTolerance = 0.3
	// Minimum rating for foodie restaurant candidates.
	minRestaurantRating = 4.0
	// Maximum off-corridor distance for a restaurant stop.
	maxRestaurantDetourKM = 2.0
	// Assumed detour travel speed when estimating the foodie stop cost.
	detourSpeedKMH = 40.0
	// Classification calls per build are capped; candidates beyond the cap
	// keep their unclassified status.
	maxClassifications = 5
)

// PackageBuilder produces the three mode packages by composing the routing,
// weather, and places providers. A build either yields all three packages or
// fails as a whole; scenic and foodie sub-failures degrade that package to
// disabled-with-reason while efficiency remains mandatory.
type PackageBuilder struct {
	Routes     ports.RouteProvider
	Weather    ports.WeatherProvider
	Places     ports.PlacesProvider
	Classifier ports.Classifier
}

// Build computes the package set and the shared weather insights for one
// trip. Exactly one weather call is made per build.
func (b *PackageBuilder) Build(
	ctx context.Context,
	origin, destination domain.Coordinate,
) (_ domain.PackageSet, _ domain.WeatherInsights, err error) {
	defer obs.Time(ctx, "builder.Build")(&err)

	var (
		direct   ports.Route
		insights domain.WeatherInsights
	)

	// The direct route and the weather call are both mandatory; fetch them
	// concurrently and fail the whole build if either fails.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		r, err := b.Routes.Route(gctx, origin, destination, ports.RouteOptions{})
		if err != nil {
			return fmt.Errorf("%w: efficiency route: %v", domain.ErrBuildFailed, err)
		}
		direct = r
		return nil
	})
	g.Go(func() error {
		center := domain.Midpoint(origin, destination)
		radius := weatherRadiusKM(origin, destination)
		w, err := b.Weather.Hazards(gctx, center, radius)
		if err != nil {
			return fmt.Errorf("%w: weather insights: %v", domain.ErrBuildFailed, err)
		}
		insights = w
		return nil
	})
	if err := g.Wait(); err != nil {
		return domain.PackageSet{}, domain.WeatherInsights{}, err
	}

	set := domain.PackageSet{
		Efficiency: &domain.EfficiencyPackage{
			Metrics: domain.RouteMetrics{
				DurationSeconds: direct.DurationSeconds,
				DistanceMeters:  direct.DistanceMeters,
			},
			Geometry: direct.Geometry,
		},
	}

	// Scenic and foodie are optional: they run concurrently and degrade to
	// disabled packages on failure, so the efficiency baseline is always
	// deliverable.
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		set.Scenic = b.buildScenic(ctx, origin, destination, direct)
	}()
	go func() {
		defer wg.Done()
		set.Foodie = b.buildFoodie(ctx, direct, insights)
	}()
	wg.Wait()

	return set, insights, nil
}

// weatherRadiusKM covers the trip corridor from its midpoint with a margin.
func weatherRadiusKM(origin, destination domain.Coordinate) float64 {
	r := domain.HaversineKM(origin, destination)/2 + 5
	if r < 10 {
		r = 10
	}
	return r
}

func (b *PackageBuilder) buildScenic(
	ctx context.Context,
	origin, destination domain.Coordinate,
	direct ports.Route,
) *domain.ScenicPackage {
	alt, err := b.Routes.Route(ctx, origin, destination, ports.RouteOptions{
		DetourTolerance: scenicDetourTolerance,
	})
	if err != nil {
		return &domain.ScenicPackage{
			Metrics: domain.RouteMetrics{
				DurationSeconds: direct.DurationSeconds,
				DistanceMeters:  direct.DistanceMeters,
			},
			Status: domain.PackageStatus{
				Disabled: true,
				Reason:   fmt.Sprintf("scenic route unavailable: %v", err),
			},
		}
	}

	increasePct := 0.0
	if direct.DurationSeconds > 0 {
		increasePct = float64(alt.DurationSeconds-direct.DurationSeconds) /
			float64(direct.DurationSeconds) * 100
	}

	return &domain.ScenicPackage{
		Metrics: domain.RouteMetrics{
			DurationSeconds: alt.DurationSeconds,
			DistanceMeters:  alt.DistanceMeters,
		},
		ScenicScore:         b.scoreScenic(ctx, alt.Geometry),
		DurationIncreasePct: increasePct,
		Geometry:            alt.Geometry,
	}
}

// scoreScenic rates a route in [0,100] from the density of outdoor points of
// interest along it. A places or classification failure leaves the base
// score; it never fails the scenic build.
func (b *PackageBuilder) scoreScenic(ctx context.Context, corridor []domain.Coordinate) float64 {
	const baseScore = 40.0

	candidates, err := b.Places.SearchNear(ctx, corridor, "attraction", 0)
	if err != nil || len(candidates) == 0 {
		return baseScore
	}

	outdoor := 0
	for i, c := range candidates {
		if i >= maxClassifications {
			break
		}
		cls, err := b.Classifier.Classify(ctx, c.PlaceID, c.Name, c.Types)
		if err != nil {
			continue
		}
		if cls.IsOutdoor && cls.Confidence >= domain.ConfidenceNameKeyword {
			outdoor++
		}
	}

	return math.Min(baseScore+12*float64(outdoor), 100)
}

func (b *PackageBuilder) buildFoodie(
	ctx context.Context,
	direct ports.Route,
	insights domain.WeatherInsights,
) *domain.FoodiePackage {
	disabled := func(reason string) *domain.FoodiePackage {
		return &domain.FoodiePackage{
			Metrics: domain.RouteMetrics{
				DurationSeconds: direct.DurationSeconds,
				DistanceMeters:  direct.DistanceMeters,
			},
			Status: domain.PackageStatus{Disabled: true, Reason: reason},
		}
	}

	candidates, err := b.Places.SearchNear(ctx, direct.Geometry, "restaurant", minRestaurantRating)
	if err != nil {
		return disabled(fmt.Sprintf("restaurant search failed: %v", err))
	}

	best, detourKM, ok := b.selectRestaurant(ctx, candidates, direct.Geometry, insights)
	if !ok {
		return disabled("no suitable restaurant within the detour budget")
	}

	extraSeconds := int(detourKM * 2 / detourSpeedKMH * 3600)
	extraMeters := int(detourKM * 2 * 1000)

	return &domain.FoodiePackage{
		Metrics: domain.RouteMetrics{
			DurationSeconds: direct.DurationSeconds + extraSeconds,
			DistanceMeters:  direct.DistanceMeters + extraMeters,
		},
		Restaurant: domain.Restaurant{Name: best.Name, Rating: best.Rating},
	}
}

// selectRestaurant picks the highest-rated candidate within the detour
// budget, tie-breaking by name for determinism. In non-favorable weather,
// candidates classified as outdoor are skipped when an indoor option exists;
// the classifier runs only for that disambiguation.
func (b *PackageBuilder) selectRestaurant(
	ctx context.Context,
	candidates []ports.PlaceCandidate,
	corridor []domain.Coordinate,
	insights domain.WeatherInsights,
) (ports.PlaceCandidate, float64, bool) {
	type reachable struct {
		candidate ports.PlaceCandidate
		detourKM  float64
	}

	within := make([]reachable, 0, len(candidates))
	for _, c := range candidates {
		d := distanceToCorridorKM(c.Location, corridor)
		if d <= maxRestaurantDetourKM {
			within = append(within, reachable{candidate: c, detourKM: d})
		}
	}
	if len(within) == 0 {
		return ports.PlaceCandidate{}, 0, false
	}

	preferIndoor := TierFor(insights.Scores.Overall) != TierFavorable
	if preferIndoor {
		indoor := make([]reachable, 0, len(within))
		for i, r := range within {
			if i >= maxClassifications {
				break
			}
			cls, err := b.Classifier.Classify(ctx, r.candidate.PlaceID, r.candidate.Name, r.candidate.Types)
			if err != nil || !cls.IsOutdoor {
				indoor = append(indoor, r)
			}
		}
		if len(indoor) > 0 {
			within = indoor
		}
	}

	best := within[0]
	for _, r := range within[1:] {
		if r.candidate.Rating > best.candidate.Rating ||
			(r.candidate.Rating == best.candidate.Rating && r.candidate.Name < best.candidate.Name) {
			best = r
		}
	}
	return best.candidate, best.detourKM, true
}

func distanceToCorridorKM(p domain.Coordinate, corridor []domain.Coordinate) float64 {
	if len(corridor) == 0 {
		return 0
	}
	min := math.MaxFloat64
	for _, c := range corridor {
		if d := domain.HaversineKM(p, c); d < min {
			min = d
		}
	}
	return min
}
