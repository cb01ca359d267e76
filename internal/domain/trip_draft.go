package domain

import (
	"sync"
	"time"
)

// TripDraft accumulates a single in-progress trip across planning steps.
//
// Every mutator replaces one field under the draft's lock, so callers driven
// by independent callbacks see last-write-wins semantics without torn state.
// The draft performs no validation: inverted date ranges or an empty landmark
// set are representable and must be rejected by callers if needed.
//
// The itinerary is never invalidated when landmarks change after scheduling;
// use ItineraryStale to detect that case.
type TripDraft struct {
	mu sync.RWMutex

	tripName  string
	startDate *time.Time
	endDate   *time.Time
	city      *string
	landmarks []Landmark
	people    []string
	keywords  []string
	flight    *Flight
	route     *RouteChoice
	lodging   map[int]Lodging
	itinerary Itinerary
}

func NewTripDraft() *TripDraft {
	d := &TripDraft{}
	d.clear()
	return d
}

// clear must be called with mu held (or before the draft is shared).
func (d *TripDraft) clear() {
	d.tripName = ""
	d.startDate = nil
	d.endDate = nil
	d.city = nil
	d.landmarks = []Landmark{}
	d.people = []string{}
	d.keywords = []string{}
	d.flight = nil
	d.route = nil
	d.lodging = map[int]Lodging{}
	d.itinerary = Itinerary{}
}

// Reset returns every field to the state of a freshly constructed draft.
func (d *TripDraft) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.clear()
}

func (d *TripDraft) SetTripName(name string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.tripName = name
}

func (d *TripDraft) SetDateRange(start, end *time.Time) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.startDate = copyTime(start)
	d.endDate = copyTime(end)
}

// SetCity overwrites the city. Previously selected landmarks are kept even
// when the city changes.
func (d *TripDraft) SetCity(city *string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if city == nil {
		d.city = nil
		return
	}
	c := *city
	d.city = &c
}

// AddLandmark appends l unless a landmark with the same key is present.
func (d *TripDraft) AddLandmark(l Landmark) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, existing := range d.landmarks {
		if existing.Key() == l.Key() {
			return
		}
	}
	next := make([]Landmark, len(d.landmarks), len(d.landmarks)+1)
	copy(next, d.landmarks)
	d.landmarks = append(next, copyLandmark(l))
}

func (d *TripDraft) RemoveLandmark(key string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	next := make([]Landmark, 0, len(d.landmarks))
	for _, l := range d.landmarks {
		if l.Key() != key {
			next = append(next, l)
		}
	}
	d.landmarks = next
}

func (d *TripDraft) AddKeyword(tag string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	for _, k := range d.keywords {
		if k == tag {
			return
		}
	}
	next := make([]string, len(d.keywords), len(d.keywords)+1)
	copy(next, d.keywords)
	d.keywords = append(next, tag)
}

func (d *TripDraft) RemoveKeyword(tag string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	next := make([]string, 0, len(d.keywords))
	for _, k := range d.keywords {
		if k != tag {
			next = append(next, k)
		}
	}
	d.keywords = next
}

func (d *TripDraft) ClearKeywords() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.keywords = []string{}
}

func (d *TripDraft) SetPeople(people []string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.people = copyStrings(people)
}

func (d *TripDraft) SetFlight(f *Flight) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.flight = copyFlight(f)
}

func (d *TripDraft) SetRoute(r *RouteChoice) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if r == nil {
		d.route = nil
		return
	}
	rc := *r
	d.route = &rc
}

// SetLodging replaces the whole per-day lodging map.
func (d *TripDraft) SetLodging(lodging map[int]Lodging) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.lodging = copyLodging(lodging)
}

// SetDayLodging sets the lodging for a single day, leaving other days untouched.
func (d *TripDraft) SetDayLodging(day int, l Lodging) {
	d.mu.Lock()
	defer d.mu.Unlock()

	next := copyLodging(d.lodging)
	next[day] = copyLodgingValue(l)
	d.lodging = next
}

// SetItinerary stores a scheduler result, replacing any previous one.
func (d *TripDraft) SetItinerary(it Itinerary) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.itinerary = it.Clone()
}

func (d *TripDraft) Itinerary() Itinerary {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.itinerary.Clone()
}

func (d *TripDraft) Landmarks() []Landmark {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return copyLandmarks(d.landmarks)
}

func (d *TripDraft) Keywords() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return copyStrings(d.keywords)
}

// ItineraryStale reports whether a stored itinerary no longer covers exactly
// the draft's landmarks. Names are compared as a multiset, so two landmarks
// sharing a display name need two itinerary entries. An unscheduled draft is
// never stale.
func (d *TripDraft) ItineraryStale() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if len(d.itinerary) == 0 {
		return false
	}

	counts := make(map[string]int, len(d.landmarks))
	for _, l := range d.landmarks {
		counts[l.Name]++
	}
	for _, n := range d.itinerary.Names() {
		counts[n]--
	}

	for _, c := range counts {
		if c != 0 {
			return true
		}
	}
	return false
}

// ScheduleInput is what the routing step hands to the scheduler.
// Selected and Points are keyed by Landmark.Key so landmarks sharing a
// display name are scheduled independently; Display maps results back.
type ScheduleInput struct {
	Selected []string
	Points   []Point
	Start    time.Time
	End      time.Time

	names map[string]string
}

// ScheduleInput collects the landmark keys, their coordinates and the date
// range. ok is false while either date is unset.
func (d *TripDraft) ScheduleInput() (in ScheduleInput, ok bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.startDate == nil || d.endDate == nil {
		return ScheduleInput{}, false
	}

	in = ScheduleInput{
		Selected: make([]string, 0, len(d.landmarks)),
		Points:   make([]Point, 0, len(d.landmarks)),
		Start:    *d.startDate,
		End:      *d.endDate,
		names:    make(map[string]string, len(d.landmarks)),
	}
	for _, l := range d.landmarks {
		key := l.Key()
		in.Selected = append(in.Selected, key)
		in.Points = append(in.Points, Point{Name: key, Coordinates: l.Location})
		in.names[key] = l.Name
	}
	return in, true
}

// DisplayName returns the landmark name for a scheduling key.
func (in ScheduleInput) DisplayName(key string) string {
	if n, ok := in.names[key]; ok {
		return n
	}
	return key
}

// Display rewrites a key-based itinerary into landmark names.
func (in ScheduleInput) Display(it Itinerary) Itinerary {
	out := it.Clone()
	for i := range out {
		for j, key := range out[i].PointNames {
			out[i].PointNames[j] = in.DisplayName(key)
		}
	}
	return out
}

// Snapshot copies every field into an independent TripPlan value.
func (d *TripDraft) Snapshot() TripPlan {
	d.mu.RLock()
	defer d.mu.RUnlock()

	var city *string
	if d.city != nil {
		c := *d.city
		city = &c
	}
	var route *RouteChoice
	if d.route != nil {
		r := *d.route
		route = &r
	}
	return TripPlan{
		TripName:  d.tripName,
		StartDate: copyTime(d.startDate),
		EndDate:   copyTime(d.endDate),
		City:      city,
		Landmarks: copyLandmarks(d.landmarks),
		People:    copyStrings(d.people),
		Keywords:  copyStrings(d.keywords),
		Flight:    copyFlight(d.flight),
		Route:     route,
		Lodging:   copyLodging(d.lodging),
		Itinerary: d.itinerary.Clone(),
	}
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}

func copyStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func copyFlight(f *Flight) *Flight {
	if f == nil {
		return nil
	}
	v := *f
	v.Date = copyTime(f.Date)
	return &v
}

func copyLodging(in map[int]Lodging) map[int]Lodging {
	out := make(map[int]Lodging, len(in))
	for day, l := range in {
		out[day] = copyLodgingValue(l)
	}
	return out
}

func copyLodgingValue(l Lodging) Lodging {
	if l.Location != nil {
		loc := *l.Location
		l.Location = &loc
	}
	return l
}

func copyLandmark(l Landmark) Landmark {
	if l.Photo != nil {
		p := *l.Photo
		l.Photo = &p
	}
	return l
}

func copyLandmarks(in []Landmark) []Landmark {
	out := make([]Landmark, len(in))
	for i, l := range in {
		out[i] = copyLandmark(l)
	}
	return out
}
