package orbgeo_test

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"gonum.org/v1/gonum/floats/scalar"

	cheapruler "github.com/apendleton/cheap-ruler"
	"github.com/apendleton/cheap-ruler/orbgeo"
)

const collection = `{
  "type": "FeatureCollection",
  "features": [
    {"type": "Feature", "id": "road", "properties": {},
     "geometry": {"type": "LineString", "coordinates": [[0, 0], [1, 0], [1, 1]]}},
    {"type": "Feature", "id": "park", "properties": {},
     "geometry": {"type": "Polygon", "coordinates": [[[0, 0], [1, 0], [1, 1], [0, 1], [0, 0]]]}},
    {"type": "Feature", "id": "stop", "properties": {},
     "geometry": {"type": "Point", "coordinates": [0.5, 0.5]}}
  ]
}`

var equator = cheapruler.MustNew(0, cheapruler.Kilometers)

func TestConversions(t *testing.T) {
	ls := orb.LineString{{1, 2}, {3, 4}}
	line := orbgeo.Line(ls)
	if len(line) != 2 || line[1] != (cheapruler.Point{3, 4}) {
		t.Fatalf("unexpected line %v", line)
	}
	back := orbgeo.ToOrbLineString(line)
	if !back.Equal(ls) {
		t.Errorf("expected %v, got %v", ls, back)
	}

	b := orb.Bound{Min: orb.Point{-1, -2}, Max: orb.Point{3, 4}}
	if got := orbgeo.BBox(b); got != (cheapruler.BBox{-1, -2, 3, 4}) {
		t.Errorf("unexpected bbox %v", got)
	}
	if got := orbgeo.ToOrbBound(orbgeo.BBox(b)); !got.Equal(b) {
		t.Errorf("expected %v, got %v", b, got)
	}

	if got := orbgeo.ToOrbPoint(orbgeo.Point(orb.Point{5, 6})); !got.Equal(orb.Point{5, 6}) {
		t.Errorf("unexpected point %v", got)
	}
}

func TestRulerFor(t *testing.T) {
	g := orb.LineString{{10, 40}, {11, 42}}
	r, err := orbgeo.RulerFor(g, cheapruler.Miles)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := cheapruler.MustNew(41, cheapruler.Miles); r != want {
		t.Errorf("expected %+v, got %+v", want, r)
	}
}

func TestLengthAndArea(t *testing.T) {
	square := orb.Polygon{{{0, 0}, {1, 0}, {1, 1}, {0, 1}}}
	perimeter := 2*equator.Kx() + 2*equator.Ky()

	if got := orbgeo.Length(equator, square); !scalar.EqualWithinAbs(got, perimeter, 1e-9) {
		t.Errorf("expected perimeter %v, got %v", perimeter, got)
	}
	if got := orbgeo.Area(equator, square); !scalar.EqualWithinAbs(got, equator.Kx()*equator.Ky(), 1e-9) {
		t.Errorf("expected area %v, got %v", equator.Kx()*equator.Ky(), got)
	}

	multi := orb.MultiPolygon{square, square}
	if got := orbgeo.Area(equator, multi); !scalar.EqualWithinAbs(got, 2*equator.Kx()*equator.Ky(), 1e-9) {
		t.Errorf("expected doubled area, got %v", got)
	}

	mls := orb.MultiLineString{{{0, 0}, {1, 0}}, {{0, 0}, {0, 1}}}
	if got := orbgeo.Length(equator, mls); !scalar.EqualWithinAbs(got, equator.Kx()+equator.Ky(), 1e-9) {
		t.Errorf("unexpected length %v", got)
	}

	if orbgeo.Length(equator, orb.Point{1, 1}) != 0 || orbgeo.Area(equator, orb.Point{1, 1}) != 0 {
		t.Error("expected points to have no size")
	}
}

func TestMeasure(t *testing.T) {
	fc, err := geojson.UnmarshalFeatureCollection([]byte(collection))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := orbgeo.Measure(equator, fc)
	if len(got) != 3 {
		t.Fatalf("expected 3 measurements, got %d", len(got))
	}
	if got[0].ID != "road" || got[0].Type != "LineString" || got[0].Area != 0 {
		t.Errorf("unexpected road %+v", got[0])
	}
	if !scalar.EqualWithinAbs(got[0].Length, equator.Kx()+equator.Ky(), 1e-9) {
		t.Errorf("unexpected road length %v", got[0].Length)
	}
	if got[1].Type != "Polygon" || !scalar.EqualWithinAbs(got[1].Area, equator.Kx()*equator.Ky(), 1e-9) {
		t.Errorf("unexpected park %+v", got[1])
	}
	if got[2].Type != "Point" || got[2].Length != 0 || got[2].Area != 0 {
		t.Errorf("unexpected stop %+v", got[2])
	}

	b, ok := orbgeo.CollectionBound(fc)
	if !ok || !b.Equal(orb.Bound{Min: orb.Point{0, 0}, Max: orb.Point{1, 1}}) {
		t.Errorf("unexpected bound %v", b)
	}

	line, ok := orbgeo.FirstLine(fc)
	if !ok || len(line) != 3 {
		t.Errorf("expected the road, got %v", line)
	}
}

func TestCollectionBound_Empty(t *testing.T) {
	if _, ok := orbgeo.CollectionBound(geojson.NewFeatureCollection()); ok {
		t.Error("expected no bound for an empty collection")
	}
}
