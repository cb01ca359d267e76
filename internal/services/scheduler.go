package services

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
	"trip-planner-service/internal/domain"
)

// ErrUnscheduledLandmarks is returned by ScheduleStrict when a selected name
// has no matching point.
var ErrUnscheduledLandmarks = errors.New("selected landmarks without coordinates")

// DayCount returns the number of trip days between start and end, inclusive.
// Inverted or same-day ranges yield 1.
func DayCount(start, end time.Time) int {
	days := int(math.Ceil(end.Sub(start).Hours()/24)) + 1
	if days < 1 {
		return 1
	}
	return days
}

// Schedule assigns the selected points to trip days using a greedy
// nearest-neighbor walk.
//
// Each day is seeded with the first unused point and then grown by repeatedly
// appending the unused point closest (haversine) to the day's last point.
// A day rolls over once it holds ceil(points/days) entries; the last day
// absorbs whatever remains. Days left empty are omitted from the result.
//
// The algorithm is deterministic for a given input order. It does not attempt
// global optimization and never fails: names without a matching point are
// dropped and an empty selection yields an empty itinerary.
func Schedule(selected []string, start, end time.Time, points []domain.Point) domain.Itinerary {
	places := filterSelected(selected, points)
	if len(places) == 0 {
		return domain.Itinerary{}
	}

	days := DayCount(start, end)
	// Ceiling division: rollover threshold only, not a hard cap.
	capacity := (len(places) + days - 1) / days

	groups := make([][]domain.Point, days)
	used := make([]bool, len(places))
	placed := 0
	current := 0

	for placed < len(places) {
		if len(groups[current]) >= capacity {
			current++
			if current >= days {
				current = days - 1
			}
		}

		if len(groups[current]) == 0 {
			for i := range places {
				if !used[i] {
					groups[current] = append(groups[current], places[i])
					used[i] = true
					placed++
					break
				}
			}
			continue
		}

		last := groups[current][len(groups[current])-1]

		// Select the next stop by minimum distance (greedy step).
		// Strict comparison keeps the first-encountered point on ties.
		best := -1
		minDist := math.Inf(1)
		for i, p := range places {
			if used[i] {
				continue
			}
			d := domain.HaversineKm(last.Coordinates, p.Coordinates)
			if best == -1 || d < minDist {
				minDist = d
				best = i
			}
		}

		groups[current] = append(groups[current], places[best])
		used[best] = true
		placed++
	}

	out := make(domain.Itinerary, 0, days)
	for i, g := range groups {
		if len(g) == 0 {
			continue
		}
		names := make([]string, 0, len(g))
		for _, p := range g {
			names = append(names, p.Name)
		}
		out = append(out, domain.DayAssignment{Day: i + 1, PointNames: names})
	}

	return out
}

// ScheduleStrict runs Schedule and reports selected names that could not be
// placed. The itinerary is returned even when the error is non-nil.
func ScheduleStrict(selected []string, start, end time.Time, points []domain.Point) (domain.Itinerary, error) {
	it := Schedule(selected, start, end, points)

	if missing := it.Unscheduled(selected); len(missing) > 0 {
		return it, fmt.Errorf("schedule: %w: %s", ErrUnscheduledLandmarks, strings.Join(missing, ", "))
	}

	return it, nil
}

// filterSelected keeps points whose name is selected, in input order.
// A repeated name participates once.
func filterSelected(selected []string, points []domain.Point) []domain.Point {
	want := make(map[string]struct{}, len(selected))
	for _, n := range selected {
		want[n] = struct{}{}
	}

	seen := make(map[string]struct{}, len(points))
	out := make([]domain.Point, 0, len(points))
	for _, p := range points {
		if _, ok := want[p.Name]; !ok {
			continue
		}
		if _, ok := seen[p.Name]; ok {
			continue
		}
		seen[p.Name] = struct{}{}
		out = append(out, p)
	}
	return out
}
