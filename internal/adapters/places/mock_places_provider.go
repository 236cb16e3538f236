package places

import (
	"context"
	"sync"
	"trip-optimizer-service/internal/domain"
	"trip-optimizer-service/internal/ports"
)

// MockPlacesProvider serves canned candidates by category and counts calls.
// Safe for concurrent use.
type MockPlacesProvider struct {
	mu         sync.Mutex
	byCategory map[string][]ports.PlaceCandidate
	err        error
	calls      int
}

func NewMockPlacesProvider(byCategory map[string][]ports.PlaceCandidate, err error) *MockPlacesProvider {
	return &MockPlacesProvider{byCategory: byCategory, err: err}
}

func (p *MockPlacesProvider) SearchNear(_ context.Context, _ []domain.Coordinate, category string, minRating float64) ([]ports.PlaceCandidate, error) {
	p.mu.Lock()
	p.calls++
	p.mu.Unlock()

	if p.err != nil {
		return nil, p.err
	}

	out := make([]ports.PlaceCandidate, 0)
	for _, c := range p.byCategory[category] {
		if c.Rating >= minRating {
			out = append(out, c)
		}
	}
	return out, nil
}

func (p *MockPlacesProvider) Calls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}
