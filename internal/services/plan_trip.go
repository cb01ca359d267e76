package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"trip-planner-service/internal/domain"
	"trip-planner-service/internal/platform/obs"
	"trip-planner-service/internal/ports"
)

var (
	ErrMissingDates  = errors.New("trip dates are not set")
	ErrMissingUserID = errors.New("user id must be non-empty")
)

type ScheduleResult struct {
	Itinerary   domain.Itinerary
	Unscheduled []string
}

// ScheduleDraft is the routing step: it schedules the draft's landmarks over
// its date range and stores the result as the draft's itinerary.
//
// Landmarks that could not be placed are reported, not treated as failures.
func ScheduleDraft(ctx context.Context, draft *domain.TripDraft) (_ ScheduleResult, err error) {
	defer obs.Time(ctx, "trip.ScheduleDraft")(&err)

	if draft == nil {
		return ScheduleResult{}, errors.New("schedule draft: draft must be non-nil")
	}

	in, ok := draft.ScheduleInput()
	if !ok {
		return ScheduleResult{}, fmt.Errorf("schedule draft: %w", ErrMissingDates)
	}

	// Schedule on landmark keys so equal display names stay distinct.
	byKey := Schedule(in.Selected, in.Start, in.End, in.Points)
	it := in.Display(byKey)
	draft.SetItinerary(it)

	missing := make([]string, 0)
	for _, key := range byKey.Unscheduled(in.Selected) {
		missing = append(missing, in.DisplayName(key))
	}
	if len(missing) > 0 {
		log.Printf("req_id=%s op=trip.ScheduleDraft unscheduled=%q", obs.RequestID(ctx), missing)
	}

	return ScheduleResult{Itinerary: it, Unscheduled: missing}, nil
}

// FinalizeDraft hands the draft to the plan store and resets it.
// The draft is left untouched when saving fails so the user can retry.
func FinalizeDraft(
	ctx context.Context,
	draft *domain.TripDraft,
	store ports.PlanStore,
	userID string,
) (_ domain.SavedPlan, err error) {
	defer obs.Time(ctx, "trip.FinalizeDraft")(&err)

	if draft == nil {
		return domain.SavedPlan{}, errors.New("finalize draft: draft must be non-nil")
	}

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return domain.SavedPlan{}, fmt.Errorf("finalize draft: %w", ErrMissingUserID)
	}

	saved, err := store.SavePlan(ctx, userID, draft.Snapshot())
	if err != nil {
		return domain.SavedPlan{}, fmt.Errorf("finalize draft: save plan: %w", err)
	}

	draft.Reset()
	return saved, nil
}
