package ports

import (
	"context"
	"errors"
	"trip-planner-service/internal/domain"
)

var ErrPlanNotFound = errors.New("plan not found")

// Port: persistence boundary for finalized trip plans.
type PlanStore interface {
	// Persist a finalized plan for userID and return the stored record.
	SavePlan(ctx context.Context, userID string, plan domain.TripPlan) (domain.SavedPlan, error)
	// List a user's plans, newest first.
	ListPlans(ctx context.Context, userID string) ([]domain.SavedPlan, error)
	// Fetch a single plan; returns ErrPlanNotFound when absent.
	GetPlan(ctx context.Context, id string) (domain.SavedPlan, error)
}
