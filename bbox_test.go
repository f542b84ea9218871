package cheapruler_test

import (
	"testing"

	"gonum.org/v1/gonum/floats/scalar"

	cheapruler "github.com/apendleton/cheap-ruler"
)

func TestBufferPoint(t *testing.T) {
	r := cheapruler.MustNew(45, cheapruler.Meters)
	p := cheapruler.Point{2.35, 45.1}

	if got, want := r.BufferPoint(p, 0), (cheapruler.BBox{p[0], p[1], p[0], p[1]}); got != want {
		t.Errorf("expected %v, got %v", want, got)
	}

	box := r.BufferPoint(p, 500)
	sw := cheapruler.Point{box[0], box[1]}
	ne := cheapruler.Point{box[2], box[3]}
	if got := r.Distance(p, cheapruler.Point{box[2], p[1]}); !scalar.EqualWithinAbs(got, 500, 1e-6) {
		t.Errorf("expected 500 m to the east edge, got %v", got)
	}
	if got := r.Distance(p, cheapruler.Point{p[0], box[3]}); !scalar.EqualWithinAbs(got, 500, 1e-6) {
		t.Errorf("expected 500 m to the north edge, got %v", got)
	}
	if !r.InsideBBox(p, box) || !r.InsideBBox(sw, box) || !r.InsideBBox(ne, box) {
		t.Errorf("expected centre and corners inside %v", box)
	}
}

func TestBufferBBox(t *testing.T) {
	r := cheapruler.MustNew(45, cheapruler.Kilometers)
	bbox := cheapruler.BBox{2, 45, 3, 46}

	got := r.BufferBBox(bbox, 10)
	want := cheapruler.BBox{2 - 10/r.Kx(), 45 - 10/r.Ky(), 3 + 10/r.Kx(), 46 + 10/r.Ky()}
	if got != want {
		t.Errorf("expected %v, got %v", want, got)
	}
	if r.BufferBBox(bbox, 0) != bbox {
		t.Errorf("expected a zero buffer to keep the box")
	}
}

func TestInsideBBox(t *testing.T) {
	bbox := cheapruler.BBox{-1, -2, 3, 4}

	tests := []struct {
		name string
		p    cheapruler.Point
		want bool
	}{
		{"south west corner", cheapruler.Point{-1, -2}, true},
		{"north east corner", cheapruler.Point{3, 4}, true},
		{"centre", cheapruler.Point{1, 1}, true},
		{"west", cheapruler.Point{-1.5, 1}, false},
		{"east", cheapruler.Point{3.5, 1}, false},
		{"south", cheapruler.Point{1, -2.5}, false},
		{"north", cheapruler.Point{1, 4.5}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cheapruler.InsideBBox(tt.p, bbox); got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}
