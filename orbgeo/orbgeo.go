// Package orbgeo measures github.com/paulmach/orb geometries and GeoJSON
// features with a cheap ruler.
package orbgeo

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	cheapruler "github.com/apendleton/cheap-ruler"
)

// Measurement is the size of one feature of a collection.
type Measurement struct {
	ID     any     `json:"id,omitempty"`
	Type   string  `json:"type"`
	Length float64 `json:"length"`
	Area   float64 `json:"area"`
}

// Point converts an orb point.
func Point(p orb.Point) cheapruler.Point { return cheapruler.Point(p) }

// ToOrbPoint converts a point to orb.
func ToOrbPoint(p cheapruler.Point) orb.Point { return orb.Point(p) }

// Line copies an orb line string into a Line.
func Line(ls orb.LineString) cheapruler.Line {
	line := make(cheapruler.Line, len(ls))
	for i, p := range ls {
		line[i] = cheapruler.Point(p)
	}
	return line
}

// ToOrbLineString copies a Line into an orb line string.
func ToOrbLineString(line cheapruler.Line) orb.LineString {
	ls := make(orb.LineString, len(line))
	for i, p := range line {
		ls[i] = orb.Point(p)
	}
	return ls
}

// Ring copies an orb ring.
func Ring(r orb.Ring) cheapruler.Ring {
	return cheapruler.Ring(Line(orb.LineString(r)))
}

// Polygon copies an orb polygon, outer ring first.
func Polygon(p orb.Polygon) cheapruler.Polygon {
	poly := make(cheapruler.Polygon, len(p))
	for i, r := range p {
		poly[i] = Ring(r)
	}
	return poly
}

// BBox converts an orb bound to [west, south, east, north].
func BBox(b orb.Bound) cheapruler.BBox {
	return cheapruler.BBox{b.Min[0], b.Min[1], b.Max[0], b.Max[1]}
}

// ToOrbBound converts [west, south, east, north] to an orb bound.
func ToOrbBound(b cheapruler.BBox) orb.Bound {
	return orb.Bound{Min: orb.Point{b[0], b[1]}, Max: orb.Point{b[2], b[3]}}
}

// RulerFor creates a ruler at the latitude of the centre of g's bound.
func RulerFor(g orb.Geometry, units cheapruler.Unit) (cheapruler.Ruler, error) {
	return cheapruler.New(g.Bound().Center()[1], units)
}

// CollectionBound returns the bound of every geometry in fc.
// ok is false when the collection holds no geometry.
func CollectionBound(fc *geojson.FeatureCollection) (b orb.Bound, ok bool) {
	for _, f := range fc.Features {
		if f.Geometry == nil {
			continue
		}
		if !ok {
			b, ok = f.Geometry.Bound(), true
			continue
		}
		b = b.Union(f.Geometry.Bound())
	}
	return b, ok
}

// Length returns the length of linear geometries and the perimeter of areal ones.
// Points have no length.
func Length(r cheapruler.Ruler, g orb.Geometry) float64 {
	switch g := g.(type) {
	case orb.LineString:
		return r.LineDistance(Line(g))
	case orb.MultiLineString:
		total := 0.0
		for _, ls := range g {
			total += r.LineDistance(Line(ls))
		}
		return total
	case orb.Ring:
		return ringLength(r, g)
	case orb.Polygon:
		total := 0.0
		for _, ring := range g {
			total += ringLength(r, ring)
		}
		return total
	case orb.MultiPolygon:
		total := 0.0
		for _, p := range g {
			total += Length(r, p)
		}
		return total
	case orb.Collection:
		total := 0.0
		for _, c := range g {
			total += Length(r, c)
		}
		return total
	}
	return 0
}

// ringLength closes the ring if its last point does not repeat the first.
func ringLength(r cheapruler.Ruler, ring orb.Ring) float64 {
	if len(ring) < 2 {
		return 0
	}
	line := Line(orb.LineString(ring))
	if !ring.Closed() {
		line = append(line, line[0])
	}
	return r.LineDistance(line)
}

// Area returns the area of polygonal geometries. Everything else has zero area.
func Area(r cheapruler.Ruler, g orb.Geometry) float64 {
	switch g := g.(type) {
	case orb.Ring:
		return r.Area(cheapruler.Polygon{Ring(g)})
	case orb.Polygon:
		return r.Area(Polygon(g))
	case orb.MultiPolygon:
		total := 0.0
		for _, p := range g {
			total += r.Area(Polygon(p))
		}
		return total
	case orb.Collection:
		total := 0.0
		for _, c := range g {
			total += Area(r, c)
		}
		return total
	}
	return 0
}

// Measure returns the length and area of every feature in fc, in order.
func Measure(r cheapruler.Ruler, fc *geojson.FeatureCollection) []Measurement {
	out := make([]Measurement, 0, len(fc.Features))
	for _, f := range fc.Features {
		m := Measurement{ID: f.ID}
		if f.Geometry != nil {
			m.Type = f.Geometry.GeoJSONType()
			m.Length = Length(r, f.Geometry)
			m.Area = Area(r, f.Geometry)
		}
		out = append(out, m)
	}
	return out
}

// FirstLine returns the first LineString found in fc, looking inside
// MultiLineStrings as well.
func FirstLine(fc *geojson.FeatureCollection) (cheapruler.Line, bool) {
	for _, f := range fc.Features {
		switch g := f.Geometry.(type) {
		case orb.LineString:
			return Line(g), true
		case orb.MultiLineString:
			if len(g) > 0 {
				return Line(g[0]), true
			}
		}
	}
	return nil, false
}
