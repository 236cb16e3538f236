package weather

import (
	"context"
	"sync"
	"trip-optimizer-service/internal/domain"
)

// MockWeatherProvider serves canned insights and counts calls. Safe for
// concurrent use.
type MockWeatherProvider struct {
	mu       sync.Mutex
	insights domain.WeatherInsights
	err      error
	calls    int
}

func NewMockWeatherProvider(insights domain.WeatherInsights, err error) *MockWeatherProvider {
	return &MockWeatherProvider{insights: insights, err: err}
}

func (p *MockWeatherProvider) Hazards(_ context.Context, _ domain.Coordinate, _ float64) (domain.WeatherInsights, error) {
	p.mu.Lock()
	p.calls++
	p.mu.Unlock()

	if p.err != nil {
		return domain.WeatherInsights{}, p.err
	}
	return p.insights, nil
}

func (p *MockWeatherProvider) Calls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}
