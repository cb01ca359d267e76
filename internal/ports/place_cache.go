package ports

import (
	"context"
	"trip-planner-service/internal/domain"
)

// Read-through cache for place search results keyed by query.
type PlaceCache interface {
	// Return cached results; ok is false on a miss.
	Get(ctx context.Context, query string) (_ []domain.Landmark, ok bool, err error)
	Put(ctx context.Context, query string, places []domain.Landmark) error
}
