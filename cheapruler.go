// Package cheapruler provides fast approximations to common geodesic
// measurements, such as distance, bearing and area, around a reference
// latitude.
package cheapruler

import (
	"fmt"
	"math"
)

// A collection of very fast approximations to common geodesic measurements.
// Useful for performance-sensitive code that measures things on a city scale.
//
// A Ruler is immutable once built and may be shared freely between goroutines.
type Ruler struct {
	kx float64
	ky float64
}

// Point is a [longitude, latitude] pair in degrees.
type Point [2]float64

// X returns the longitude.
func (p Point) X() float64 { return p[0] }

// Y returns the latitude.
func (p Point) Y() float64 { return p[1] }

// Line is an ordered sequence of points. Most line operations need at least two.
type Line []Point

// Ring is a polygon boundary. It is closed implicitly, the last point connects back to the first.
type Ring []Point

// Polygon is an outer ring followed by any number of holes.
type Polygon []Ring

// BBox is a bounding box in the form [west, south, east, north].
type BBox [4]float64

// New creates a ruler for measurements around the given latitude.
func New(lat float64, units Unit) (Ruler, error) {
	m, err := units.Multiplier()
	if err != nil {
		return Ruler{}, fmt.Errorf("new ruler: %w", err)
	}

	cos := math.Cos(lat * math.Pi / 180)
	cos2 := 2*cos*cos - 1
	cos3 := 2*cos*cos2 - cos
	cos4 := 2*cos*cos3 - cos2
	cos5 := 2*cos*cos4 - cos3

	// multipliers for converting longitude and latitude degrees into distance
	// (http://1.usa.gov/1Wb1bv7)
	return Ruler{
		kx: m * (111.41513*cos - 0.09455*cos3 + 0.00012*cos5),
		ky: m * (111.13209 - 0.56605*cos2 + 0.0012*cos4),
	}, nil
}

// MustNew is like New but panics on an invalid unit.
func MustNew(lat float64, units Unit) Ruler {
	r, err := New(lat, units)
	if err != nil {
		panic(err)
	}
	return r
}

// FromTile creates a ruler from tile coordinates (y and z). Convenient in tile-reduce scripts.
func FromTile(y, z float64, units Unit) (Ruler, error) {
	n := math.Pi * (1 - 2*(y+0.5)/math.Pow(2, z))
	lat := math.Atan(0.5*(math.Exp(n)-math.Exp(-n))) * 180 / math.Pi
	return New(lat, units)
}

// Kx is the distance covered by one degree of longitude.
func (r Ruler) Kx() float64 { return r.kx }

// Ky is the distance covered by one degree of latitude.
func (r Ruler) Ky() float64 { return r.ky }

// Distance returns the distance between two points in the units of the ruler.
func (r Ruler) Distance(a, b Point) float64 {
	dx := (a[0] - b[0]) * r.kx
	dy := (a[1] - b[1]) * r.ky
	return math.Sqrt(dx*dx + dy*dy)
}

// Bearing returns the bearing from a to b in degrees, clockwise from north, in (-180, 180].
func (r Ruler) Bearing(a, b Point) float64 {
	dx := (b[0] - a[0]) * r.kx
	dy := (b[1] - a[1]) * r.ky
	if dx == 0 && dy == 0 {
		return 0
	}
	bearing := math.Atan2(dx, dy) * 180 / math.Pi
	if bearing > 180 {
		bearing -= 360
	}
	return bearing
}

// Destination returns a new point given distance and bearing from the starting point.
// A negative distance walks backwards.
func (r Ruler) Destination(p Point, dist, bearing float64) Point {
	a := bearing * math.Pi / 180
	return r.Offset(p, math.Sin(a)*dist, math.Cos(a)*dist)
}

// Offset returns a new point given easting and northing offsets (in ruler units) from the starting point.
func (r Ruler) Offset(p Point, dx, dy float64) Point {
	return Point{p[0] + dx/r.kx, p[1] + dy/r.ky}
}
