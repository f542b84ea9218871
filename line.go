package cheapruler

import "math"

// PointOnLine describes the closest point on a line to some query point.
// Index is the start index of the segment holding Point and T is the
// position along that segment, from 0 to 1.
type PointOnLine struct {
	Point Point   `json:"point"`
	Index int     `json:"index"`
	T     float64 `json:"t"`
}

// LineDistance returns the total length of a line. Lines with fewer than two points have length 0.
func (r Ruler) LineDistance(line Line) float64 {
	total := 0.0
	for i := 0; i < len(line)-1; i++ {
		total += r.Distance(line[i], line[i+1])
	}
	return total
}

// Area returns the area of a polygon (an outer ring followed by holes).
//
// Rings after the first are subtracted regardless of their winding and the
// absolute value is taken over the combined sum.
func (r Ruler) Area(polygon Polygon) float64 {
	sum := 0.0

	for i, ring := range polygon {
		sign := 1.0
		if i > 0 {
			sign = -1
		}
		for j, k := 0, len(ring)-1; j < len(ring); k, j = j, j+1 {
			sum += (ring[j][0] - ring[k][0]) * (ring[j][1] + ring[k][1]) * sign
		}
	}

	return (math.Abs(sum) / 2) * r.kx * r.ky
}

// Along returns the point at a specified distance along the line.
// Distances past either end snap to the first or last point.
func (r Ruler) Along(line Line, dist float64) Point {
	mustBeLine(line, "along")

	if dist <= 0 {
		return line[0]
	}

	sum := 0.0
	for i := 0; i < len(line)-1; i++ {
		p0, p1 := line[i], line[i+1]
		d := r.Distance(p0, p1)
		sum += d
		if sum > dist {
			return interpolate(p0, p1, (dist-(sum-d))/d)
		}
	}

	return line[len(line)-1]
}

// PointOnLine returns the closest point on the line from the given point.
// When two segments are equally close the one with the lower index wins.
func (r Ruler) PointOnLine(line Line, p Point) PointOnLine {
	mustBeLine(line, "point on line")

	minDist := math.Inf(1)
	minT := math.Inf(1)
	var minX, minY float64
	var minI int

	for i := 0; i < len(line)-1; i++ {
		x := line[i][0]
		y := line[i][1]
		dx := (line[i+1][0] - x) * r.kx
		dy := (line[i+1][1] - y) * r.ky
		t := 0.0

		if dx != 0 || dy != 0 {
			t = ((p[0]-x)*r.kx*dx + (p[1]-y)*r.ky*dy) / (dx*dx + dy*dy)

			if t > 1 {
				x = line[i+1][0]
				y = line[i+1][1]
			} else if t > 0 {
				x += (dx / r.kx) * t
				y += (dy / r.ky) * t
			}
		}

		dx = (p[0] - x) * r.kx
		dy = (p[1] - y) * r.ky

		sqDist := dx*dx + dy*dy
		if sqDist < minDist {
			minDist = sqDist
			minX, minY = x, y
			minI = i
			minT = t
		}
	}

	return PointOnLine{
		Point: Point{minX, minY},
		Index: minI,
		T:     math.Max(0, math.Min(1, minT)),
	}
}

// LineSlice returns the part of the line between the start and stop points,
// or their closest points on the line. The result always runs in line order.
func (r Ruler) LineSlice(start, stop Point, line Line) Line {
	p1 := r.PointOnLine(line, start)
	p2 := r.PointOnLine(line, stop)

	if p1.Index > p2.Index || (p1.Index == p2.Index && p1.T > p2.T) {
		p1, p2 = p2, p1
	}

	slice := Line{p1.Point}

	left := p1.Index + 1
	right := p2.Index

	if line[left] != slice[0] && left <= right {
		slice = append(slice, line[left])
	}

	for i := left + 1; i <= right; i++ {
		slice = append(slice, line[i])
	}

	if line[right] != p2.Point {
		slice = append(slice, p2.Point)
	}

	return slice
}

// LineSliceAlong returns the part of the line between the start and stop
// distances along it. The result is nil when start and stop both lie past
// the end of the line. When stop comes before start the walk still ends at
// stop: the result is the point at stop, preceded by the point at start
// when both fall on the same segment.
func (r Ruler) LineSliceAlong(start, stop float64, line Line) Line {
	sum := 0.0
	var slice Line

	for i := 0; i < len(line)-1; i++ {
		p0, p1 := line[i], line[i+1]
		d := r.Distance(p0, p1)

		sum += d

		if sum > start && len(slice) == 0 {
			slice = append(slice, interpolate(p0, p1, (start-(sum-d))/d))
		}

		if sum >= stop {
			slice = append(slice, interpolate(p0, p1, (stop-(sum-d))/d))
			return slice
		}

		if sum > start {
			slice = append(slice, p1)
		}
	}

	return slice
}

func interpolate(a, b Point, t float64) Point {
	dx := b[0] - a[0]
	dy := b[1] - a[1]
	return Point{a[0] + dx*t, a[1] + dy*t}
}

func mustBeLine(line Line, op string) {
	if len(line) < 2 {
		panic("cheapruler: " + op + " needs a line of at least two points")
	}
}
