package routing

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"time"
	"trip-optimizer-service/internal/domain"
	"trip-optimizer-service/internal/platform/obs"
	"trip-optimizer-service/internal/ports"
)

// OSRMRouteProvider implements RouteProvider against an OSRM instance.
//
// It requests route alternatives and selects among them by detour tolerance,
// retrying transient failures with backoff. The provider is safe for
// concurrent use.
type OSRMRouteProvider struct {
	session *http.Client
	baseURL string
	profile string
}

func NewOSRMRouteProvider(baseURL string) *OSRMRouteProvider {
	if baseURL == "" {
		baseURL = "https://router.project-osrm.org"
	}
	return &OSRMRouteProvider{
		session: &http.Client{Timeout: 15 * time.Second},
		baseURL: baseURL,
		profile: "driving",
	}
}

type osrmResponse struct {
	Code   string `json:"code"`
	Routes []struct {
		Distance float64 `json:"distance"`
		Duration float64 `json:"duration"`
		Geometry struct {
			Coordinates [][]float64 `json:"coordinates"`
		} `json:"geometry"`
	} `json:"routes"`
}

// Route fetches a route from origin to destination. With a non-zero detour
// tolerance the longest alternative still within tolerance of the fastest
// route is chosen; otherwise the fastest route is returned.
func (o *OSRMRouteProvider) Route(
	ctx context.Context,
	origin, destination domain.Coordinate,
	opts ports.RouteOptions,
) (_ ports.Route, err error) {
	defer obs.Time(ctx, "osrm.Route")(&err)

	endpoint := fmt.Sprintf(
		"%s/route/v1/%s/%.6f,%.6f;%.6f,%.6f?overview=full&geometries=geojson&alternatives=true",
		o.baseURL, o.profile,
		origin.Lng, origin.Lat,
		destination.Lng, destination.Lat,
	)

	resp, err := o.doWithRetry(ctx, func() (*http.Request, error) {
		return http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	})
	if err != nil {
		return ports.Route{}, fmt.Errorf("osrm route request: %w", err)
	}
	defer resp.Body.Close()

	var decoded osrmResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return ports.Route{}, fmt.Errorf("decode osrm response: %w", err)
	}

	if decoded.Code != "Ok" || len(decoded.Routes) == 0 {
		return ports.Route{}, fmt.Errorf(
			"%w: osrm code=%q routes=%d",
			domain.ErrRouteUnavailable, decoded.Code, len(decoded.Routes),
		)
	}

	fastest := 0
	for i, r := range decoded.Routes {
		if r.Duration < decoded.Routes[fastest].Duration {
			fastest = i
		}
	}

	chosen := fastest
	if opts.DetourTolerance > 0 {
		budget := decoded.Routes[fastest].Duration * (1 + opts.DetourTolerance)
		for i, r := range decoded.Routes {
			if r.Duration <= budget && r.Duration > decoded.Routes[chosen].Duration {
				chosen = i
			}
		}
	}

	route := decoded.Routes[chosen]
	geometry := make([]domain.Coordinate, 0, len(route.Geometry.Coordinates))
	for _, pair := range route.Geometry.Coordinates {
		if len(pair) != 2 {
			return ports.Route{}, fmt.Errorf("invalid geometry pair in osrm response")
		}
		geometry = append(geometry, domain.Coordinate{Lng: pair[0], Lat: pair[1]})
	}

	// OSRM returns float metrics; round for domain consistency.
	return ports.Route{
		Geometry:        geometry,
		DurationSeconds: int(math.Round(route.Duration)),
		DistanceMeters:  int(math.Round(route.Distance)),
	}, nil
}
