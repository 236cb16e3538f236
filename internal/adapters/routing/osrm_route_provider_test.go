package routing

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"trip-optimizer-service/internal/domain"
	"trip-optimizer-service/internal/ports"
)

var (
	osrmOrigin      = domain.Coordinate{Lat: 32.0853, Lng: 34.7818}
	osrmDestination = domain.Coordinate{Lat: 31.7683, Lng: 35.2137}
)

const osrmAlternativesBody = `{
	"code": "Ok",
	"routes": [
		{
			"duration": 4320,
			"distance": 70000,
			"geometry": {"coordinates": [[34.7818, 32.0853], [35.0, 31.9], [35.2137, 31.7683]]}
		},
		{
			"duration": 3600,
			"distance": 60000,
			"geometry": {"coordinates": [[34.7818, 32.0853], [35.2137, 31.7683]]}
		},
		{
			"duration": 5400,
			"distance": 80000,
			"geometry": {"coordinates": [[34.7818, 32.0853], [34.9, 32.1], [35.2137, 31.7683]]}
		}
	]
}`

func osrmServer(t *testing.T, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("alternatives") != "true" {
			t.Errorf("alternatives param missing in %q", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestRoutePicksFastestByDefault(t *testing.T) {
	srv := osrmServer(t, osrmAlternativesBody)
	provider := NewOSRMRouteProvider(srv.URL)

	route, err := provider.Route(context.Background(), osrmOrigin, osrmDestination, ports.RouteOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if route.DurationSeconds != 3600 || route.DistanceMeters != 60000 {
		t.Fatalf("route = %d s / %d m, want fastest 3600/60000", route.DurationSeconds, route.DistanceMeters)
	}
	if len(route.Geometry) != 2 {
		t.Fatalf("geometry points = %d, want 2", len(route.Geometry))
	}
	// Pairs arrive as [lng, lat].
	if route.Geometry[0].Lat != 32.0853 || route.Geometry[0].Lng != 34.7818 {
		t.Fatalf("first point = %+v, want origin", route.Geometry[0])
	}
}

func TestRouteDetourTolerancePicksLongerAlternative(t *testing.T) {
	srv := osrmServer(t, osrmAlternativesBody)
	provider := NewOSRMRouteProvider(srv.URL)

	route, err := provider.Route(context.Background(), osrmOrigin, osrmDestination, ports.RouteOptions{
		DetourTolerance: 0.3,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Budget is 3600 * 1.3 = 4680: the 4320s alternative fits, 5400s does not.
	if route.DurationSeconds != 4320 {
		t.Fatalf("duration = %d, want 4320", route.DurationSeconds)
	}
}

func TestRouteNoRoutesIsUnavailable(t *testing.T) {
	srv := osrmServer(t, `{"code": "NoRoute", "routes": []}`)
	provider := NewOSRMRouteProvider(srv.URL)

	_, err := provider.Route(context.Background(), osrmOrigin, osrmDestination, ports.RouteOptions{})
	if !errors.Is(err, domain.ErrRouteUnavailable) {
		t.Fatalf("err = %v, want ErrRouteUnavailable", err)
	}
}

func TestRouteRetriesTransientFailures(t *testing.T) {
	var attempts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if attempts.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(osrmAlternativesBody))
	}))
	defer srv.Close()
	provider := NewOSRMRouteProvider(srv.URL)

	route, err := provider.Route(context.Background(), osrmOrigin, osrmDestination, ports.RouteOptions{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if route.DurationSeconds != 3600 {
		t.Fatalf("duration = %d, want 3600", route.DurationSeconds)
	}
	if got := attempts.Load(); got != 3 {
		t.Fatalf("attempts = %d, want 3", got)
	}
}

func TestRouteDoesNotRetryClientErrors(t *testing.T) {
	var attempts atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts.Add(1)
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()
	provider := NewOSRMRouteProvider(srv.URL)

	if _, err := provider.Route(context.Background(), osrmOrigin, osrmDestination, ports.RouteOptions{}); err == nil {
		t.Fatal("expected error")
	}
	if got := attempts.Load(); got != 1 {
		t.Fatalf("attempts = %d, want 1", got)
	}
}
