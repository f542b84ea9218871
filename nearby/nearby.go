// Package nearby answers radius and k-nearest queries over a set of points,
// measuring with a cheap ruler.
package nearby

import (
	"sort"
	"sync"

	"github.com/dhconnelly/rtreego"

	cheapruler "github.com/apendleton/cheap-ruler"
)

// Degenerate rectangles are rejected by rtreego, so points and zero
// radius searches are padded by this many degrees.
const pad = 1e-12

// Hit is a point returned by a query.
type Hit struct {
	ID       string           `json:"id"`
	Point    cheapruler.Point `json:"point"`
	Distance float64          `json:"distance"`
}

type entry struct {
	id    string
	point cheapruler.Point
}

// Bounds implements the rtreego.Spatial interface.
func (e *entry) Bounds() rtreego.Rect {
	p := e.point
	return boxRect(cheapruler.BBox{p[0], p[1], p[0], p[1]})
}

// Index holds identified points. It is safe for concurrent use.
type Index struct {
	ruler cheapruler.Ruler

	mu   sync.RWMutex
	tree *rtreego.Rtree
	byID map[string]*entry
}

// New returns an empty index that measures with r.
func New(r cheapruler.Ruler) *Index {
	return &Index{
		ruler: r,
		tree:  rtreego.NewTree(2, 25, 50),
		byID:  make(map[string]*entry),
	}
}

// Ruler returns the ruler the index measures with.
func (ix *Index) Ruler() cheapruler.Ruler { return ix.ruler }

// Len returns the number of points in the index.
func (ix *Index) Len() int {
	ix.mu.RLock()
	defer ix.mu.RUnlock()
	return len(ix.byID)
}

// Insert adds p under id, replacing any point already stored there.
func (ix *Index) Insert(id string, p cheapruler.Point) {
	ix.mu.Lock()
	defer ix.mu.Unlock()

	if old, ok := ix.byID[id]; ok {
		ix.tree.Delete(old)
	}
	e := &entry{id: id, point: p}
	ix.byID[id] = e
	ix.tree.Insert(e)
}

// Remove deletes id. It reports whether the id was present.
func (ix *Index) Remove(id string) bool {
	ix.mu.Lock()
	defer ix.mu.Unlock()

	e, ok := ix.byID[id]
	if !ok {
		return false
	}
	delete(ix.byID, id)
	return ix.tree.Delete(e)
}

// Within returns every point no further than radius from center,
// closest first. Ties are ordered by id.
func (ix *Index) Within(center cheapruler.Point, radius float64) []Hit {
	if radius < 0 {
		return nil
	}
	box := ix.ruler.BufferPoint(center, radius)

	ix.mu.RLock()
	found := ix.tree.SearchIntersect(boxRect(box))
	ix.mu.RUnlock()

	hits := make([]Hit, 0, len(found))
	for _, s := range found {
		e := s.(*entry)
		if !cheapruler.InsideBBox(e.point, box) {
			continue
		}
		d := ix.ruler.Distance(center, e.point)
		if d <= radius {
			hits = append(hits, Hit{ID: e.id, Point: e.point, Distance: d})
		}
	}
	sortHits(hits)
	return hits
}

// Nearest returns the k points closest to p, closest first.
//
// The tree ranks neighbours in degrees, which disagrees with the ruler away
// from the equator, so its answer only bounds the search radius.
func (ix *Index) Nearest(p cheapruler.Point, k int) []Hit {
	if k <= 0 {
		return nil
	}

	ix.mu.RLock()
	found := ix.tree.NearestNeighbors(k, rtreego.Point{p[0], p[1]})
	ix.mu.RUnlock()

	radius := 0.0
	for _, s := range found {
		if s == nil {
			continue
		}
		if d := ix.ruler.Distance(p, s.(*entry).point); d > radius {
			radius = d
		}
	}

	// widen slightly so the farthest candidate survives rounding at the box edge
	hits := ix.Within(p, radius*(1+1e-9))
	if len(hits) > k {
		hits = hits[:k]
	}
	return hits
}

func sortHits(hits []Hit) {
	sort.Slice(hits, func(i, j int) bool {
		if hits[i].Distance != hits[j].Distance {
			return hits[i].Distance < hits[j].Distance
		}
		return hits[i].ID < hits[j].ID
	})
}

func boxRect(b cheapruler.BBox) rtreego.Rect {
	w := b[2] - b[0]
	h := b[3] - b[1]
	if w < pad {
		w = pad
	}
	if h < pad {
		h = pad
	}
	r, err := rtreego.NewRect(rtreego.Point{b[0], b[1]}, []float64{w, h})
	if err != nil {
		panic(err) // both lengths are at least pad
	}
	return r
}
