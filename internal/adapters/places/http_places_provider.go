package places

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
	"trip-optimizer-service/internal/domain"
	"trip-optimizer-service/internal/platform/obs"
	"trip-optimizer-service/internal/ports"
)

// HTTPPlacesProvider implements PlacesProvider against a nearby-search API.
// The search is centered on the corridor midpoint with a radius covering the
// corridor; rating filtering happens client-side.
type HTTPPlacesProvider struct {
	session *http.Client
	baseURL string
	apiKey  string
}

func NewHTTPPlacesProvider(baseURL, apiKey string) (*HTTPPlacesProvider, error) {
	if baseURL == "" {
		return nil, errors.New("places provider: base URL is empty")
	}
	if apiKey == "" {
		return nil, errors.New("places provider: api key is empty")
	}
	return &HTTPPlacesProvider{
		session: &http.Client{Timeout: 10 * time.Second},
		baseURL: baseURL,
		apiKey:  apiKey,
	}, nil
}

type searchResponse struct {
	Results []struct {
		PlaceID  string   `json:"place_id"`
		Name     string   `json:"name"`
		Rating   float64  `json:"rating"`
		Types    []string `json:"types"`
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

func (p *HTTPPlacesProvider) SearchNear(
	ctx context.Context,
	corridor []domain.Coordinate,
	category string,
	minRating float64,
) (_ []ports.PlaceCandidate, err error) {
	defer obs.Time(ctx, "places.SearchNear")(&err)

	if len(corridor) == 0 {
		return nil, errors.New("places search: corridor is empty")
	}

	center := domain.Midpoint(corridor[0], corridor[len(corridor)-1])
	radiusM := int(domain.HaversineKM(corridor[0], corridor[len(corridor)-1])/2*1000) + 2000

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/nearbysearch/json", nil)
	if err != nil {
		return nil, fmt.Errorf("places search: create request: %w", err)
	}

	q := req.URL.Query()
	q.Set("location", fmt.Sprintf("%.6f,%.6f", center.Lat, center.Lng))
	q.Set("radius", fmt.Sprintf("%d", radiusM))
	q.Set("type", category)
	q.Set("key", p.apiKey)
	req.URL.RawQuery = q.Encode()

	resp, err := p.session.Do(req)
	if err != nil {
		return nil, fmt.Errorf("places search: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("places search: unexpected status %d", resp.StatusCode)
	}

	var decoded searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("places search: decode response: %w", err)
	}

	out := make([]ports.PlaceCandidate, 0, len(decoded.Results))
	for _, r := range decoded.Results {
		if r.Rating < minRating {
			continue
		}
		out = append(out, ports.PlaceCandidate{
			PlaceID: r.PlaceID,
			Name:    r.Name,
			Rating:  r.Rating,
			Types:   r.Types,
			Location: domain.Coordinate{
				Lat: r.Geometry.Location.Lat,
				Lng: r.Geometry.Location.Lng,
			},
		})
	}
	return out, nil
}
