package routing

import (
	"context"
	"sync"
	"trip-optimizer-service/internal/domain"
	"trip-optimizer-service/internal/ports"
)

// MockRoute pairs requested options with a canned result.
type MockRoute struct {
	Direct    ports.Route
	Alternate ports.Route
	Err       error
	// AlternateErr fails only detour-tolerant requests.
	AlternateErr error
}

// MockRouteProvider serves canned routes and counts calls. Safe for
// concurrent use.
type MockRouteProvider struct {
	mu     sync.Mutex
	routes MockRoute
	calls  int
}

func NewMockRouteProvider(routes MockRoute) *MockRouteProvider {
	return &MockRouteProvider{routes: routes}
}

func (p *MockRouteProvider) Route(_ context.Context, _, _ domain.Coordinate, opts ports.RouteOptions) (ports.Route, error) {
	p.mu.Lock()
	p.calls++
	p.mu.Unlock()

	if p.routes.Err != nil {
		return ports.Route{}, p.routes.Err
	}
	if opts.DetourTolerance > 0 {
		if p.routes.AlternateErr != nil {
			return ports.Route{}, p.routes.AlternateErr
		}
		return p.routes.Alternate, nil
	}
	return p.routes.Direct, nil
}

// Calls reports how many route requests were made.
func (p *MockRouteProvider) Calls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}
