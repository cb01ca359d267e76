package domain

// Represents the landmarks visited on one day of a trip.
// Day is 1-based; PointNames is in visiting order.
type DayAssignment struct {
	Day        int      `json:"day"`
	PointNames []string `json:"places"`
}

// Itinerary is the day-ordered output of a scheduling run.
// It is replaced wholesale on every run and never merged.
type Itinerary []DayAssignment

// Names returns every scheduled point name in day order.
func (it Itinerary) Names() []string {
	out := make([]string, 0, len(it))
	for _, d := range it {
		out = append(out, d.PointNames...)
	}
	return out
}

// Unscheduled returns the selected names that do not appear in the itinerary,
// preserving the order of selected. Duplicates in selected are reported once.
func (it Itinerary) Unscheduled(selected []string) []string {
	scheduled := make(map[string]struct{})
	for _, n := range it.Names() {
		scheduled[n] = struct{}{}
	}

	missing := make([]string, 0)
	seen := make(map[string]struct{}, len(selected))
	for _, n := range selected {
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}

		if _, ok := scheduled[n]; !ok {
			missing = append(missing, n)
		}
	}
	return missing
}

// Clone returns a deep copy so callers cannot mutate shared day slices.
func (it Itinerary) Clone() Itinerary {
	out := make(Itinerary, 0, len(it))
	for _, d := range it {
		names := make([]string, len(d.PointNames))
		copy(names, d.PointNames)
		out = append(out, DayAssignment{Day: d.Day, PointNames: names})
	}
	return out
}
