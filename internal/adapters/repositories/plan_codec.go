package repositories

import (
	"encoding/json"
	"fmt"
	"time"
	"trip-planner-service/internal/domain"

	"github.com/google/uuid"
)

func newPlanRecord(userID string, plan domain.TripPlan, now time.Time) (domain.SavedPlan, []byte, error) {
	return planRecord(uuid.NewString(), userID, plan, now)
}

// planRecord builds a record under a caller-chosen id, as used by seeding.
func planRecord(id, userID string, plan domain.TripPlan, now time.Time) (domain.SavedPlan, []byte, error) {
	payload, err := json.Marshal(plan)
	if err != nil {
		return domain.SavedPlan{}, nil, fmt.Errorf("encode plan: %w", err)
	}

	saved := domain.SavedPlan{
		ID:        id,
		UserID:    userID,
		CreatedAt: now.UTC(),
		Plan:      plan,
	}
	return saved, payload, nil
}

func decodePlan(id, userID string, createdAt time.Time, payload []byte) (domain.SavedPlan, error) {
	var plan domain.TripPlan
	if err := json.Unmarshal(payload, &plan); err != nil {
		return domain.SavedPlan{}, fmt.Errorf("decode plan id=%s: %w", id, err)
	}

	return domain.SavedPlan{
		ID:        id,
		UserID:    userID,
		CreatedAt: createdAt.UTC(),
		Plan:      plan,
	}, nil
}
