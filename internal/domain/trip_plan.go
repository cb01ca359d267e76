package domain

import "time"

// TripPlan is an immutable snapshot of a TripDraft.
// It is the record handed to persistence and presentation collaborators.
type TripPlan struct {
	TripName  string          `json:"trip_name"`
	StartDate *time.Time      `json:"start_date"`
	EndDate   *time.Time      `json:"end_date"`
	City      *string         `json:"city"`
	Landmarks []Landmark      `json:"landmarks"`
	People    []string        `json:"people"`
	Keywords  []string        `json:"keywords"`
	Flight    *Flight         `json:"flight"`
	Route     *RouteChoice    `json:"route"`
	Lodging   map[int]Lodging `json:"lodging"`
	Itinerary Itinerary       `json:"routes"`
}

// SavedPlan is a finalized TripPlan as stored by a PlanStore.
type SavedPlan struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	Plan      TripPlan  `json:"plan"`
}
