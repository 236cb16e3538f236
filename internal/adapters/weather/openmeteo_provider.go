package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"time"
	"trip-optimizer-service/internal/domain"
	"trip-optimizer-service/internal/platform/obs"
)

// OpenMeteoProvider fetches current conditions from the Open-Meteo API and
// normalizes them into [0,1] condition scores. Hazard alerts are derived
// from severe weather codes and filtered to the requested radius by
// great-circle distance.
type OpenMeteoProvider struct {
	session *http.Client
	baseURL string
}

func NewOpenMeteoProvider(baseURL string) *OpenMeteoProvider {
	if baseURL == "" {
		baseURL = "https://api.open-meteo.com"
	}
	return &OpenMeteoProvider{
		session: &http.Client{Timeout: 10 * time.Second},
		baseURL: baseURL,
	}
}

type openMeteoResponse struct {
	Current struct {
		Temperature   float64 `json:"temperature_2m"`
		Precipitation float64 `json:"precipitation"`
		Visibility    float64 `json:"visibility"`
		WindSpeed     float64 `json:"wind_speed_10m"`
		WeatherCode   int     `json:"weather_code"`
	} `json:"current"`
}

func (p *OpenMeteoProvider) Hazards(
	ctx context.Context,
	center domain.Coordinate,
	radiusKM float64,
) (_ domain.WeatherInsights, err error) {
	defer obs.Time(ctx, "openmeteo.Hazards")(&err)

	endpoint := fmt.Sprintf(
		"%s/v1/forecast?latitude=%.4f&longitude=%.4f&current=temperature_2m,precipitation,visibility,wind_speed_10m,weather_code",
		p.baseURL, center.Lat, center.Lng,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return domain.WeatherInsights{}, fmt.Errorf("weather request: %w", err)
	}

	resp, err := p.session.Do(req)
	if err != nil {
		return domain.WeatherInsights{}, fmt.Errorf("weather request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.WeatherInsights{}, fmt.Errorf("weather request: unexpected status %d", resp.StatusCode)
	}

	var decoded openMeteoResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return domain.WeatherInsights{}, fmt.Errorf("decode weather response: %w", err)
	}

	scores := domain.WeatherScores{
		Precipitation: clamp01(1 - decoded.Current.Precipitation/10),
		Visibility:    clamp01(decoded.Current.Visibility / 10000),
		Temperature:   temperatureScore(decoded.Current.Temperature),
		Wind:          clamp01(1 - decoded.Current.WindSpeed/60),
	}
	scores.Overall = domain.CompositeOverall(scores)

	alerts := alertsForCode(decoded.Current.WeatherCode, center)
	return domain.WeatherInsights{
		Scores: scores,
		Alerts: FilterWithinRadius(alerts, center, radiusKM),
	}, nil
}

// FilterWithinRadius drops alerts farther than radiusKM from center,
// measured along the great circle.
func FilterWithinRadius(alerts []domain.WeatherAlert, center domain.Coordinate, radiusKM float64) []domain.WeatherAlert {
	out := make([]domain.WeatherAlert, 0, len(alerts))
	for _, a := range alerts {
		d := domain.HaversineKM(a.Location, center)
		if d > radiusKM {
			continue
		}
		a.DistanceKM = d
		out = append(out, a)
	}
	return out
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// temperatureScore peaks at 20C and falls off linearly over 20 degrees.
func temperatureScore(celsius float64) float64 {
	return clamp01(1 - math.Abs(celsius-20)/20)
}

// WMO weather interpretation codes.
func alertsForCode(code int, at domain.Coordinate) []domain.WeatherAlert {
	switch {
	case code >= 95:
		return []domain.WeatherAlert{{
			Kind: "thunderstorm", Severity: "high",
			Message: "thunderstorm activity in the trip corridor", Location: at,
		}}
	case code >= 71 && code <= 77 || code == 85 || code == 86:
		return []domain.WeatherAlert{{
			Kind: "snow", Severity: "medium",
			Message: "snowfall in the trip corridor", Location: at,
		}}
	case code >= 61 && code <= 67 || code >= 80 && code <= 82:
		return []domain.WeatherAlert{{
			Kind: "rain", Severity: "low",
			Message: "rain in the trip corridor", Location: at,
		}}
	case code == 45 || code == 48:
		return []domain.WeatherAlert{{
			Kind: "fog", Severity: "medium",
			Message: "reduced visibility due to fog", Location: at,
		}}
	}
	return nil
}
