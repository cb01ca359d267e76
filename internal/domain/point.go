package domain

// Point is a named scheduling candidate.
// Names are expected to be unique within a single scheduling call.
type Point struct {
	Name string
	Coordinates
}

func NewPoint(name string, lat, lon float64) Point {
	return Point{Name: name, Coordinates: Coordinates{Lat: lat, Lon: lon}}
}
