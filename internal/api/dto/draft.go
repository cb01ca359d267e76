package dto

import (
	"time"
	"trip-planner-service/internal/domain"
)

type CreateDraftResponse struct {
	SessionID string `json:"session_id"`
}

type DraftResponse struct {
	SessionID      string          `json:"session_id"`
	Plan           domain.TripPlan `json:"plan"`
	ItineraryStale bool            `json:"itinerary_stale"`
}

type SetNameRequest struct {
	Name string `json:"name"`
}

type SetDatesRequest struct {
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
}

type SetCityRequest struct {
	City *string `json:"city"`
}

type SetPeopleRequest struct {
	People []string `json:"people"`
}

type SetFlightRequest struct {
	Flight *domain.Flight `json:"flight"`
}

type SetRouteRequest struct {
	Route *domain.RouteChoice `json:"route"`
}

type SetLodgingRequest struct {
	Lodging map[int]domain.Lodging `json:"lodging"`
}

type KeywordRequest struct {
	Keyword string `json:"keyword"`
}

type ScheduleResponse struct {
	Itinerary   domain.Itinerary `json:"routes"`
	Unscheduled []string         `json:"unscheduled"`
}

type FinalizeRequest struct {
	UserID string `json:"user_id"`
}
