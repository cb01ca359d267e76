package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/ports"
)

// NormalizeQuery collapses whitespace and case so cache keys stay consistent.
func NormalizeQuery(q string) string {
	return strings.ToLower(strings.Join(strings.Fields(q), " "))
}

// SearchLandmarks resolves a place query through the cache, falling back to
// the provider on a miss. Cache failures are logged and never fail the search.
func SearchLandmarks(
	ctx context.Context,
	provider ports.PlaceProvider,
	cache ports.PlaceCache,
	query string,
) ([]domain.Landmark, error) {
	norm := NormalizeQuery(query)
	if norm == "" {
		return nil, errors.New("search landmarks: query must be non-empty")
	}

	// Check cache before issuing external API calls.
	if cache != nil {
		hit, ok, err := cache.Get(ctx, norm)
		if err != nil {
			log.Printf("place cache read failed: query=%q err=%v", norm, err)
		} else if ok {
			return hit, nil
		}
	}

	places, err := provider.SearchPlaces(ctx, strings.TrimSpace(query))
	if err != nil {
		return nil, fmt.Errorf("search landmarks %q: %w", norm, err)
	}

	if cache != nil {
		if err := cache.Put(ctx, norm, places); err != nil {
			log.Printf("place cache write failed: query=%q err=%v", norm, err)
		}
	}

	return places, nil
}
