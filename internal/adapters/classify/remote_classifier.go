package classify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
	"trip-optimizer-service/internal/domain"
)

// RemoteClassifier calls an external classification endpoint. Any failure
// (network error, non-2xx, malformed body) is returned as an error so the
// chain can fall through to the local heuristic; the short client timeout
// keeps a slow endpoint from stalling a build.
type RemoteClassifier struct {
	session  *http.Client
	endpoint string
}

func NewRemoteClassifier(endpoint string) (*RemoteClassifier, error) {
	if endpoint == "" {
		return nil, errors.New("remote classifier: endpoint is empty")
	}
	return &RemoteClassifier{
		session:  &http.Client{Timeout: 8 * time.Second},
		endpoint: endpoint,
	}, nil
}

type classifyRequest struct {
	PlaceID string   `json:"placeId"`
	Name    string   `json:"name"`
	Types   []string `json:"types"`
}

type classifyResponse struct {
	IsOutdoor  *bool    `json:"isOutdoor"`
	Confidence *float64 `json:"confidence"`
	Types      []string `json:"types"`
}

func (r *RemoteClassifier) Classify(ctx context.Context, placeID, name string, types []string) (domain.LocationClassification, error) {
	payload, err := json.Marshal(classifyRequest{PlaceID: placeID, Name: name, Types: types})
	if err != nil {
		return domain.LocationClassification{}, fmt.Errorf("remote classify: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, bytes.NewReader(payload))
	if err != nil {
		return domain.LocationClassification{}, fmt.Errorf("remote classify: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := r.session.Do(req)
	if err != nil {
		return domain.LocationClassification{}, fmt.Errorf("remote classify: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return domain.LocationClassification{}, fmt.Errorf("remote classify: unexpected status %d", resp.StatusCode)
	}

	var decoded classifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return domain.LocationClassification{}, fmt.Errorf("remote classify: decode response: %w", err)
	}
	if decoded.IsOutdoor == nil || decoded.Confidence == nil {
		return domain.LocationClassification{}, errors.New("remote classify: response missing required fields")
	}

	out := domain.LocationClassification{
		IsOutdoor:  *decoded.IsOutdoor,
		Confidence: *decoded.Confidence,
		Types:      decoded.Types,
	}
	if len(out.Types) == 0 {
		out.Types = types
	}
	return out, nil
}
