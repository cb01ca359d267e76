package ports

import (
	"context"
	"trip-planner-service/internal/domain"
)

// Contract for the external places/recommendation service.
type PlaceProvider interface {
	// Search landmarks matching a free-text query (city or place name).
	SearchPlaces(ctx context.Context, query string) ([]domain.Landmark, error)
	// Recommend destination cities for the given keywords.
	RecommendCities(ctx context.Context, keywords []string) ([]domain.City, error)
}
