package domain

import "time"

// Landmark is a place the user picked from the recommendation service.
type Landmark struct {
	ID       string      `json:"place_id"`
	Name     string      `json:"name"`
	Address  string      `json:"address"`
	Rating   float64     `json:"rating"`
	Location Coordinates `json:"location"`
	Photo    *string     `json:"photo"`
}

// Key identifies the landmark within a draft.
// Records without a place id fall back to their name.
func (l Landmark) Key() string {
	if l.ID != "" {
		return l.ID
	}
	return l.Name
}

// Lodging chosen for one night of the trip.
type Lodging struct {
	Name        string       `json:"name"`
	Image       string       `json:"image"`
	Description string       `json:"desc"`
	Rating      float64      `json:"rating"`
	Address     string       `json:"address,omitempty"`
	Location    *Coordinates `json:"location,omitempty"`
	PlaceID     string       `json:"place_id,omitempty"`
}

type Flight struct {
	Departure string     `json:"departure"`
	Arrival   string     `json:"arrival"`
	Date      *time.Time `json:"date"`
}

// RouteChoice records how the traveller moves between the trip's endpoints.
type RouteChoice struct {
	Start          string `json:"start"`
	End            string `json:"end"`
	Transportation string `json:"transportation"`
}

// City as returned by the recommendation service.
type City struct {
	ID      string `json:"id"`
	NameKo  string `json:"name_ko"`
	Country string `json:"country"`
}
