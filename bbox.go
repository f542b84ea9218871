package cheapruler

// BufferPoint returns a bounding box around p, buffered by the given distance in ruler units.
func (r Ruler) BufferPoint(p Point, buffer float64) BBox {
	v := buffer / r.ky
	h := buffer / r.kx
	return BBox{
		p[0] - h,
		p[1] - v,
		p[0] + h,
		p[1] + v,
	}
}

// BufferBBox returns the box grown on every side by the given distance.
func (r Ruler) BufferBBox(bbox BBox, buffer float64) BBox {
	v := buffer / r.ky
	h := buffer / r.kx
	return BBox{
		bbox[0] - h,
		bbox[1] - v,
		bbox[2] + h,
		bbox[3] + v,
	}
}

// InsideBBox reports whether p lies inside bbox. Edges count as inside.
func (r Ruler) InsideBBox(p Point, bbox BBox) bool {
	return InsideBBox(p, bbox)
}

// InsideBBox is the ruler-independent form of Ruler.InsideBBox.
func InsideBBox(p Point, bbox BBox) bool {
	return p[0] >= bbox[0] &&
		p[0] <= bbox[2] &&
		p[1] >= bbox[1] &&
		p[1] <= bbox[3]
}
