package weather

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
	"trip-optimizer-service/internal/domain"
)

func meteoServer(t *testing.T, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("latitude") == "" || q.Get("longitude") == "" {
			t.Errorf("coordinates missing in %q", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func currentBody(temp, precip, visibility, wind float64, code int) string {
	return fmt.Sprintf(
		`{"current": {"temperature_2m": %v, "precipitation": %v, "visibility": %v, "wind_speed_10m": %v, "weather_code": %d}}`,
		temp, precip, visibility, wind, code,
	)
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestHazardsScoreNormalization(t *testing.T) {
	// 20C peak temperature, no precipitation, full visibility, light wind.
	srv := meteoServer(t, currentBody(20, 0, 10000, 15, 0))
	provider := NewOpenMeteoProvider(srv.URL)

	insights, err := provider.Hazards(context.Background(), domain.Coordinate{Lat: 32, Lng: 35}, 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s := insights.Scores
	if s.Precipitation != 1 || s.Visibility != 1 || s.Temperature != 1 {
		t.Fatalf("scores = %+v, want perfect precipitation/visibility/temperature", s)
	}
	if !almostEqual(s.Wind, 0.75) {
		t.Fatalf("wind = %v, want 0.75", s.Wind)
	}
	// 0.4*1 + 0.3*1 + 0.2*1 + 0.1*0.75
	if !almostEqual(s.Overall, 0.975) {
		t.Fatalf("overall = %v, want 0.975", s.Overall)
	}
	if len(insights.Alerts) != 0 {
		t.Fatalf("alerts = %v, want none for clear sky", insights.Alerts)
	}
}

func TestHazardsScoresClampToUnitRange(t *testing.T) {
	// Extreme inputs must not escape [0,1].
	srv := meteoServer(t, currentBody(-30, 25, 40000, 120, 0))
	provider := NewOpenMeteoProvider(srv.URL)

	insights, err := provider.Hazards(context.Background(), domain.Coordinate{Lat: 32, Lng: 35}, 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	s := insights.Scores
	for name, v := range map[string]float64{
		"precipitation": s.Precipitation,
		"visibility":    s.Visibility,
		"temperature":   s.Temperature,
		"wind":          s.Wind,
		"overall":       s.Overall,
	} {
		if v < 0 || v > 1 {
			t.Errorf("%s = %v, out of [0,1]", name, v)
		}
	}
	if s.Precipitation != 0 || s.Temperature != 0 || s.Wind != 0 {
		t.Fatalf("scores = %+v, want floors at 0", s)
	}
	if s.Visibility != 1 {
		t.Fatalf("visibility = %v, want ceiling at 1", s.Visibility)
	}
}

func TestHazardsAlertsForSevereCodes(t *testing.T) {
	cases := []struct {
		code         int
		wantKind     string
		wantSeverity string
	}{
		{95, "thunderstorm", "high"},
		{99, "thunderstorm", "high"},
		{71, "snow", "medium"},
		{86, "snow", "medium"},
		{61, "rain", "low"},
		{81, "rain", "low"},
		{45, "fog", "medium"},
	}

	for _, tc := range cases {
		srv := meteoServer(t, currentBody(10, 5, 2000, 30, tc.code))
		provider := NewOpenMeteoProvider(srv.URL)

		insights, err := provider.Hazards(context.Background(), domain.Coordinate{Lat: 32, Lng: 35}, 30)
		if err != nil {
			t.Fatalf("code %d: unexpected error: %v", tc.code, err)
		}
		if len(insights.Alerts) != 1 {
			t.Fatalf("code %d: alerts = %v, want exactly one", tc.code, insights.Alerts)
		}
		a := insights.Alerts[0]
		if a.Kind != tc.wantKind || a.Severity != tc.wantSeverity {
			t.Errorf("code %d: alert = %s/%s, want %s/%s", tc.code, a.Kind, a.Severity, tc.wantKind, tc.wantSeverity)
		}
		srv.Close()
	}
}

func TestHazardsUpstreamErrorSurfaces(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()
	provider := NewOpenMeteoProvider(srv.URL)

	if _, err := provider.Hazards(context.Background(), domain.Coordinate{Lat: 32, Lng: 35}, 30); err == nil {
		t.Fatal("expected error")
	}
}

func TestFilterWithinRadius(t *testing.T) {
	center := domain.Coordinate{Lat: 32.0, Lng: 35.0}
	near := domain.Coordinate{Lat: 32.05, Lng: 35.0}  // about 5.6 km
	far := domain.Coordinate{Lat: 33.0, Lng: 35.0}    // about 111 km

	alerts := []domain.WeatherAlert{
		{Kind: "rain", Location: near},
		{Kind: "snow", Location: far},
	}

	got := FilterWithinRadius(alerts, center, 30)
	if len(got) != 1 || got[0].Kind != "rain" {
		t.Fatalf("filtered = %v, want only the nearby alert", got)
	}
	if got[0].DistanceKM <= 0 || got[0].DistanceKM > 30 {
		t.Fatalf("distance = %v, want within radius", got[0].DistanceKM)
	}
}
