package services

import (
	"errors"
	"math/rand/v2"
	"reflect"
	"slices"
	"testing"
	"time"
	"trip-planner-service/internal/domain"
)

var tripStart = time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)

func names(points []domain.Point) []string {
	out := make([]string, 0, len(points))
	for _, p := range points {
		out = append(out, p.Name)
	}
	return out
}

func TestDayCount(t *testing.T) {
	cases := []struct {
		name string
		end  time.Time
		want int
	}{
		{"same day", tripStart, 1},
		{"next day", tripStart.AddDate(0, 0, 1), 2},
		{"three nights", tripStart.AddDate(0, 0, 3), 4},
		{"partial day rounds up", tripStart.Add(36 * time.Hour), 3},
		{"inverted range", tripStart.AddDate(0, 0, -3), 1},
	}

	for _, tc := range cases {
		if got := DayCount(tripStart, tc.end); got != tc.want {
			t.Fatalf("%s: DayCount = %d, want %d", tc.name, got, tc.want)
		}
	}
}

func TestScheduleSameCoordinateSingleDay(t *testing.T) {
	points := []domain.Point{
		domain.NewPoint("A", 35.0, 139.0),
		domain.NewPoint("B", 35.0, 139.0),
		domain.NewPoint("C", 35.0, 139.0),
	}

	it := Schedule([]string{"A", "B", "C"}, tripStart, tripStart, points)

	if len(it) != 1 {
		t.Fatalf("expected 1 day, got %d", len(it))
	}
	if it[0].Day != 1 {
		t.Fatalf("day = %d, want 1", it[0].Day)
	}
	got := slices.Clone(it[0].PointNames)
	slices.Sort(got)
	if !reflect.DeepEqual(got, []string{"A", "B", "C"}) {
		t.Fatalf("day 1 = %v, want A, B, C", it[0].PointNames)
	}
}

func TestScheduleFarApartTwoDays(t *testing.T) {
	// ~1000km apart along the equator.
	points := []domain.Point{
		domain.NewPoint("A", 0, 0),
		domain.NewPoint("B", 0, 8.993),
	}

	it := Schedule([]string{"A", "B"}, tripStart, tripStart.AddDate(0, 0, 1), points)

	if len(it) != 2 {
		t.Fatalf("expected 2 days, got %d", len(it))
	}
	for i, d := range it {
		if d.Day != i+1 {
			t.Fatalf("day index %d = %d", i, d.Day)
		}
		if len(d.PointNames) != 1 {
			t.Fatalf("day %d has %d points, want 1", d.Day, len(d.PointNames))
		}
	}
}

func TestScheduleNoMatchingPoint(t *testing.T) {
	points := []domain.Point{domain.NewPoint("A", 1, 1)}

	if it := Schedule([]string{"X"}, tripStart, tripStart, points); len(it) != 0 {
		t.Fatalf("expected empty itinerary, got %+v", it)
	}
	if it := Schedule(nil, tripStart, tripStart, points); len(it) != 0 {
		t.Fatalf("expected empty itinerary for empty selection, got %+v", it)
	}
	if it := Schedule([]string{"A"}, tripStart, tripStart, nil); len(it) != 0 {
		t.Fatalf("expected empty itinerary without points, got %+v", it)
	}
}

func TestScheduleGreedyOrder(t *testing.T) {
	// A and C are close, B and D are close; the walk should pair them.
	points := []domain.Point{
		domain.NewPoint("A", 0, 0),
		domain.NewPoint("B", 0, 10),
		domain.NewPoint("C", 0, 1),
		domain.NewPoint("D", 0, 11),
	}

	it := Schedule([]string{"A", "B", "C", "D"}, tripStart, tripStart.AddDate(0, 0, 1), points)

	want := domain.Itinerary{
		{Day: 1, PointNames: []string{"A", "C"}},
		{Day: 2, PointNames: []string{"B", "D"}},
	}
	if !reflect.DeepEqual(it, want) {
		t.Fatalf("itinerary = %+v, want %+v", it, want)
	}
}

func TestScheduleTieBreaksOnInputOrder(t *testing.T) {
	points := []domain.Point{
		domain.NewPoint("start", 0, 0),
		domain.NewPoint("east", 0, 1),
		domain.NewPoint("west", 0, -1),
	}

	it := Schedule([]string{"start", "east", "west"}, tripStart, tripStart, points)

	want := []string{"start", "east", "west"}
	if !reflect.DeepEqual(it[0].PointNames, want) {
		t.Fatalf("order = %v, want %v", it[0].PointNames, want)
	}
}

func TestScheduleLastDayAbsorbsRemainder(t *testing.T) {
	points := make([]domain.Point, 0, 7)
	for i := 0; i < 7; i++ {
		points = append(points, domain.NewPoint(string(rune('A'+i)), 0, float64(i)))
	}

	// 7 points over 3 days: capacity 3, so 3/3/1.
	it := Schedule(names(points), tripStart, tripStart.AddDate(0, 0, 2), points)

	sizes := make([]int, 0, len(it))
	for _, d := range it {
		sizes = append(sizes, len(d.PointNames))
	}
	if !reflect.DeepEqual(sizes, []int{3, 3, 1}) {
		t.Fatalf("day sizes = %v, want [3 3 1]", sizes)
	}
}

func TestScheduleOmitsEmptyDays(t *testing.T) {
	points := []domain.Point{
		domain.NewPoint("A", 0, 0),
		domain.NewPoint("B", 0, 1),
		domain.NewPoint("C", 0, 2),
	}

	it := Schedule([]string{"A", "B", "C"}, tripStart, tripStart.AddDate(0, 0, 9), points)

	if len(it) != 3 {
		t.Fatalf("expected 3 non-empty days, got %d", len(it))
	}
	for i, d := range it {
		if d.Day != i+1 || len(d.PointNames) != 1 {
			t.Fatalf("day %d = %+v", i+1, d)
		}
	}
}

func TestScheduleCoversSelectionExactly(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))

	for trial := 0; trial < 50; trial++ {
		n := 1 + rng.IntN(20)
		points := make([]domain.Point, 0, n+3)
		for i := 0; i < n; i++ {
			points = append(points, domain.NewPoint(
				"p"+string(rune('a'+i)),
				35+rng.Float64(),
				139+rng.Float64(),
			))
		}
		// Unselected noise must be ignored.
		points = append(points,
			domain.NewPoint("noise1", 0, 0),
			domain.NewPoint("noise2", 10, 10),
		)
		selected := names(points[:n])
		end := tripStart.AddDate(0, 0, rng.IntN(6))

		it := Schedule(selected, tripStart, end, points)

		got := it.Names()
		slices.Sort(got)
		want := slices.Clone(selected)
		slices.Sort(want)
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("trial %d: scheduled %v, want %v", trial, got, want)
		}
		if len(it) > DayCount(tripStart, end) {
			t.Fatalf("trial %d: %d days exceeds trip length", trial, len(it))
		}
		for i, d := range it {
			if d.Day != i+1 {
				t.Fatalf("trial %d: non-contiguous day %d at index %d", trial, d.Day, i)
			}
		}
	}
}

func TestScheduleIsDeterministic(t *testing.T) {
	points := []domain.Point{
		domain.NewPoint("Tokyo Tower", 35.6586, 139.7454),
		domain.NewPoint("Harajuku", 35.6702, 139.7020),
		domain.NewPoint("Asakusa", 35.7148, 139.7967),
		domain.NewPoint("Shibuya Crossing", 35.6595, 139.7005),
		domain.NewPoint("Ueno Park", 35.7156, 139.7745),
		domain.NewPoint("Odaiba", 35.6272, 139.7768),
	}
	selected := names(points)
	end := tripStart.AddDate(0, 0, 2)

	first := Schedule(selected, tripStart, end, points)
	second := Schedule(selected, tripStart, end, points)

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("schedule not deterministic: %+v vs %+v", first, second)
	}
}

func TestScheduleSameDayKeepsEveryPointOnOneDay(t *testing.T) {
	points := []domain.Point{
		domain.NewPoint("A", 0, 0),
		domain.NewPoint("B", 5, 5),
		domain.NewPoint("C", -5, 20),
		domain.NewPoint("D", 40, -3),
	}

	it := Schedule(names(points), tripStart, tripStart, points)

	if len(it) < 1 || len(it) > len(points) {
		t.Fatalf("days = %d, want between 1 and %d", len(it), len(points))
	}
	if len(it) != 1 || len(it[0].PointNames) != 4 {
		t.Fatalf("itinerary = %+v, want all points on day 1", it)
	}
}

func TestScheduleDuplicatePointNamesPlacedOnce(t *testing.T) {
	points := []domain.Point{
		domain.NewPoint("A", 0, 0),
		domain.NewPoint("A", 0, 50),
		domain.NewPoint("B", 0, 1),
	}

	it := Schedule([]string{"A", "B"}, tripStart, tripStart, points)

	if got := it.Names(); !reflect.DeepEqual(got, []string{"A", "B"}) {
		t.Fatalf("names = %v, want [A B]", got)
	}
}

func pathKm(points []domain.Point) float64 {
	total := 0.0
	for i := 1; i < len(points); i++ {
		total += domain.HaversineKm(points[i-1].Coordinates, points[i].Coordinates)
	}
	return total
}

func TestScheduleBeatsRandomOrderOnAverage(t *testing.T) {
	rng := rand.New(rand.NewPCG(42, 1))

	var greedyTotal, randomTotal float64
	for trial := 0; trial < 200; trial++ {
		points := make([]domain.Point, 0, 12)
		byName := make(map[string]domain.Point, 12)
		for i := 0; i < 12; i++ {
			p := domain.NewPoint(string(rune('A'+i)), 35+rng.Float64(), 139+rng.Float64())
			points = append(points, p)
			byName[p.Name] = p
		}

		it := Schedule(names(points), tripStart, tripStart.AddDate(0, 0, 2), points)

		for _, d := range it {
			day := make([]domain.Point, 0, len(d.PointNames))
			for _, n := range d.PointNames {
				day = append(day, byName[n])
			}
			greedyTotal += pathKm(day)

			shuffled := slices.Clone(day)
			rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
			randomTotal += pathKm(shuffled)
		}
	}

	if greedyTotal > randomTotal {
		t.Fatalf("greedy path %.1fkm worse than random %.1fkm", greedyTotal, randomTotal)
	}
}

func TestScheduleStrictReportsMissing(t *testing.T) {
	points := []domain.Point{domain.NewPoint("A", 0, 0)}

	it, err := ScheduleStrict([]string{"A", "Ghost"}, tripStart, tripStart, points)
	if !errors.Is(err, ErrUnscheduledLandmarks) {
		t.Fatalf("err = %v, want ErrUnscheduledLandmarks", err)
	}
	if len(it) != 1 || it[0].PointNames[0] != "A" {
		t.Fatalf("itinerary = %+v, want A on day 1", it)
	}

	if _, err := ScheduleStrict([]string{"A"}, tripStart, tripStart, points); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
