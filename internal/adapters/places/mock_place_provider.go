package places

import (
	"context"
	"fmt"
	"sync"
	"trip-planner-service/internal/domain"
)

// MockPlaceProvider serves canned results and counts calls.
type MockPlaceProvider struct {
	mu     sync.Mutex
	places map[string][]domain.Landmark
	cities []domain.City
	calls  int
}

func NewMockPlaceProvider(places map[string][]domain.Landmark, cities []domain.City) *MockPlaceProvider {
	return &MockPlaceProvider{places: places, cities: cities}
}

func (p *MockPlaceProvider) SearchPlaces(ctx context.Context, query string) ([]domain.Landmark, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls++

	r, ok := p.places[query]
	if !ok {
		return nil, fmt.Errorf("missing places for %q", query)
	}
	return r, nil
}

func (p *MockPlaceProvider) RecommendCities(ctx context.Context, keywords []string) ([]domain.City, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls++
	return p.cities, nil
}

func (p *MockPlaceProvider) Calls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}
