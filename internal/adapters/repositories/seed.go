package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"trip-planner-service/internal/domain"
)

// PlanSeeder writes a plan under a fixed id, so re-running a seed replaces
// rows instead of duplicating them.
type PlanSeeder interface {
	UpsertPlan(ctx context.Context, id, userID string, plan domain.TripPlan) (domain.SavedPlan, error)
}

type PlanSeed struct {
	ID     string          `json:"id"`
	UserID string          `json:"user_id"`
	Plan   domain.TripPlan `json:"plan"`
}

// Populate the plan store with demo plans from a JSON file.
// Seeding is idempotent: each entry is upserted on its id.
func SeedFromJSON(ctx context.Context, store PlanSeeder, jsonPath string) (int, error) {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return 0, fmt.Errorf("seed plans: read %q: %w", jsonPath, err)
	}

	var data []PlanSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return 0, fmt.Errorf("seed plans: parse json: %w", err)
	}

	seen := make(map[string]struct{}, len(data))
	for i, item := range data {
		if strings.TrimSpace(item.ID) == "" {
			return 0, fmt.Errorf("seed plans: item at index %d: id cannot be empty", i+1)
		}
		if _, ok := seen[item.ID]; ok {
			return 0, fmt.Errorf("seed plans: item at index %d: duplicate id %q", i+1, item.ID)
		}
		seen[item.ID] = struct{}{}

		if strings.TrimSpace(item.UserID) == "" {
			return 0, fmt.Errorf("seed plans: item at index %d: user_id cannot be empty", i+1)
		}
	}

	for i, item := range data {
		if _, err := store.UpsertPlan(ctx, item.ID, item.UserID, item.Plan); err != nil {
			return i, fmt.Errorf("seed plans: upsert index %d: %w", i+1, err)
		}
	}

	return len(data), nil
}
