package domain

import (
	"reflect"
	"sync"
	"testing"
	"time"
)

func TestTripDraftAddLandmarkDeduplicates(t *testing.T) {
	d := NewTripDraft()

	tower := Landmark{ID: "p1", Name: "Tokyo Tower", Location: Coordinates{Lat: 35.6586, Lon: 139.7454}}
	d.AddLandmark(tower)
	d.AddLandmark(tower)

	if got := len(d.Landmarks()); got != 1 {
		t.Fatalf("landmarks = %d, want 1", got)
	}

	// Same place id, different display name: still the same landmark.
	d.AddLandmark(Landmark{ID: "p1", Name: "Tokyo Tower (renamed)"})
	if got := len(d.Landmarks()); got != 1 {
		t.Fatalf("landmarks after same-id add = %d, want 1", got)
	}
}

func TestTripDraftLandmarkKeyFallsBackToName(t *testing.T) {
	d := NewTripDraft()

	d.AddLandmark(Landmark{Name: "Harajuku"})
	d.AddLandmark(Landmark{Name: "Harajuku"})
	d.AddLandmark(Landmark{Name: "Asakusa"})

	if got := len(d.Landmarks()); got != 2 {
		t.Fatalf("landmarks = %d, want 2", got)
	}

	d.RemoveLandmark("Harajuku")
	d.RemoveLandmark("missing")

	lms := d.Landmarks()
	if len(lms) != 1 || lms[0].Name != "Asakusa" {
		t.Fatalf("landmarks after remove = %+v, want [Asakusa]", lms)
	}
}

func TestTripDraftKeywords(t *testing.T) {
	d := NewTripDraft()

	d.AddKeyword("shopping")
	d.AddKeyword("downtown")
	d.AddKeyword("shopping")
	if got := d.Keywords(); !reflect.DeepEqual(got, []string{"shopping", "downtown"}) {
		t.Fatalf("keywords = %v", got)
	}

	d.RemoveKeyword("shopping")
	d.RemoveKeyword("nature")
	if got := d.Keywords(); !reflect.DeepEqual(got, []string{"downtown"}) {
		t.Fatalf("keywords after remove = %v", got)
	}

	d.ClearKeywords()
	if got := d.Keywords(); len(got) != 0 {
		t.Fatalf("keywords after clear = %v", got)
	}
}

func TestTripDraftLodgingBulkAndPerDay(t *testing.T) {
	d := NewTripDraft()

	d.SetLodging(map[int]Lodging{1: {Name: "Hotel A"}, 2: {Name: "Hotel B"}})
	d.SetDayLodging(3, Lodging{Name: "Hotel C"})
	d.SetDayLodging(1, Lodging{Name: "Hotel A2"})

	lodging := d.Snapshot().Lodging
	want := map[int]Lodging{1: {Name: "Hotel A2"}, 2: {Name: "Hotel B"}, 3: {Name: "Hotel C"}}
	if !reflect.DeepEqual(lodging, want) {
		t.Fatalf("lodging = %+v, want %+v", lodging, want)
	}

	// Bulk replace drops days not in the new map.
	d.SetLodging(map[int]Lodging{2: {Name: "Hotel Z"}})
	if got := d.Snapshot().Lodging; len(got) != 1 || got[2].Name != "Hotel Z" {
		t.Fatalf("lodging after bulk replace = %+v", got)
	}
}

func TestTripDraftResetMatchesFreshDraft(t *testing.T) {
	d := NewTripDraft()

	start := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 2)
	city := "Tokyo"

	d.SetTripName("Spring in Tokyo")
	d.SetDateRange(&start, &end)
	d.SetCity(&city)
	d.AddLandmark(Landmark{ID: "p1", Name: "Tokyo Tower"})
	d.AddKeyword("shopping")
	d.SetPeople([]string{"2"})
	d.SetFlight(&Flight{Departure: "ICN", Arrival: "HND", Date: &start})
	d.SetRoute(&RouteChoice{Start: "HND", End: "Shinjuku", Transportation: "train"})
	d.SetDayLodging(1, Lodging{Name: "Hotel A"})
	d.SetItinerary(Itinerary{{Day: 1, PointNames: []string{"Tokyo Tower"}}})

	d.Reset()

	got := d.Snapshot()
	want := NewTripDraft().Snapshot()
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("reset draft = %+v, want %+v", got, want)
	}
}

func TestTripDraftSnapshotIsIndependent(t *testing.T) {
	d := NewTripDraft()
	start := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	d.SetDateRange(&start, &start)
	d.SetItinerary(Itinerary{{Day: 1, PointNames: []string{"A"}}})

	snap := d.Snapshot()
	*snap.StartDate = snap.StartDate.AddDate(1, 0, 0)
	snap.Itinerary[0].PointNames[0] = "mutated"

	again := d.Snapshot()
	if !again.StartDate.Equal(start) {
		t.Fatalf("start date leaked mutation: %v", again.StartDate)
	}
	if again.Itinerary[0].PointNames[0] != "A" {
		t.Fatalf("itinerary leaked mutation: %v", again.Itinerary)
	}
}

func TestTripDraftItineraryNotInvalidatedOnLandmarkChange(t *testing.T) {
	d := NewTripDraft()
	d.AddLandmark(Landmark{ID: "a", Name: "A"})
	d.SetItinerary(Itinerary{{Day: 1, PointNames: []string{"A"}}})

	if d.ItineraryStale() {
		t.Fatalf("fresh itinerary reported stale")
	}

	d.AddLandmark(Landmark{ID: "b", Name: "B"})

	if got := d.Itinerary(); len(got) != 1 || len(got[0].PointNames) != 1 {
		t.Fatalf("itinerary changed after AddLandmark: %+v", got)
	}
	if !d.ItineraryStale() {
		t.Fatalf("expected stale itinerary after adding a landmark")
	}
}

func TestTripDraftScheduleInput(t *testing.T) {
	d := NewTripDraft()
	d.AddLandmark(Landmark{ID: "a", Name: "A", Location: Coordinates{Lat: 1, Lon: 2}})

	if _, ok := d.ScheduleInput(); ok {
		t.Fatalf("expected ok=false without dates")
	}

	start := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 1)
	d.SetDateRange(&start, &end)

	in, ok := d.ScheduleInput()
	if !ok {
		t.Fatalf("expected ok=true with dates")
	}
	if !reflect.DeepEqual(in.Selected, []string{"a"}) {
		t.Fatalf("selected = %v, want landmark keys", in.Selected)
	}
	if len(in.Points) != 1 || in.Points[0].Name != "a" || in.Points[0].Lat != 1 || in.Points[0].Lon != 2 {
		t.Fatalf("points = %+v", in.Points)
	}
	if got := in.Display(Itinerary{{Day: 1, PointNames: []string{"a"}}}); got[0].PointNames[0] != "A" {
		t.Fatalf("display = %+v, want landmark name", got)
	}
	if !in.Start.Equal(start) || !in.End.Equal(end) {
		t.Fatalf("dates = %v..%v", in.Start, in.End)
	}
}

func TestTripDraftScheduleInputKeepsSharedNamesApart(t *testing.T) {
	d := NewTripDraft()
	d.AddLandmark(Landmark{ID: "p1", Name: "Starbucks", Location: Coordinates{Lat: 37.56, Lon: 126.97}})
	d.AddLandmark(Landmark{ID: "p2", Name: "Starbucks", Location: Coordinates{Lat: 35.17, Lon: 129.07}})
	start := time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)
	d.SetDateRange(&start, &start)

	in, _ := d.ScheduleInput()
	if !reflect.DeepEqual(in.Selected, []string{"p1", "p2"}) {
		t.Fatalf("selected = %v", in.Selected)
	}
	if in.DisplayName("p2") != "Starbucks" || in.DisplayName("unknown") != "unknown" {
		t.Fatalf("display names not mapped back")
	}
}

func TestTripDraftItineraryStaleCountsSharedNames(t *testing.T) {
	d := NewTripDraft()
	d.AddLandmark(Landmark{ID: "p1", Name: "Starbucks"})
	d.AddLandmark(Landmark{ID: "p2", Name: "Starbucks"})

	d.SetItinerary(Itinerary{{Day: 1, PointNames: []string{"Starbucks"}}})
	if !d.ItineraryStale() {
		t.Fatalf("itinerary with one of two same-named landmarks must be stale")
	}

	d.SetItinerary(Itinerary{{Day: 1, PointNames: []string{"Starbucks", "Starbucks"}}})
	if d.ItineraryStale() {
		t.Fatalf("itinerary covering both landmarks reported stale")
	}
}

func TestTripDraftSnapshotCopiesNestedPointers(t *testing.T) {
	d := NewTripDraft()
	photo := "a.jpg"
	d.AddLandmark(Landmark{ID: "a", Name: "A", Photo: &photo})
	d.SetDayLodging(1, Lodging{Name: "Hotel", Location: &Coordinates{Lat: 1, Lon: 2}})

	photo = "caller.jpg"
	snap := d.Snapshot()
	*snap.Landmarks[0].Photo = "b.jpg"
	snap.Lodging[1].Location.Lat = 99

	again := d.Snapshot()
	if *again.Landmarks[0].Photo != "a.jpg" {
		t.Fatalf("landmark photo leaked mutation: %q", *again.Landmarks[0].Photo)
	}
	if again.Lodging[1].Location.Lat != 1 {
		t.Fatalf("lodging location leaked mutation: %+v", again.Lodging[1].Location)
	}

	listed := d.Landmarks()
	*listed[0].Photo = "c.jpg"
	if *d.Landmarks()[0].Photo != "a.jpg" {
		t.Fatalf("Landmarks accessor shares photo pointer")
	}
}

func TestTripDraftConcurrentMutation(t *testing.T) {
	d := NewTripDraft()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			d.AddKeyword("tag")
			d.SetDayLodging(i%5, Lodging{Name: "Hotel"})
			_ = d.Snapshot()
		}(i)
	}
	wg.Wait()

	if got := d.Keywords(); len(got) != 1 {
		t.Fatalf("keywords = %v, want one tag", got)
	}
	if got := d.Snapshot().Lodging; len(got) != 5 {
		t.Fatalf("lodging days = %d, want 5", len(got))
	}
}
