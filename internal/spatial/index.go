package spatial

import (
	"github.com/dhconnelly/rtreego"

	"github.com/voidshard/worldgraph/internal/geom"
)

// rtreego refuses zero-size rects, so degenerate boxes get padded out
const minExtent = 1e-9

// entry wraps an id + bounding box for rtree storage
type entry struct {
	id   string
	rect rtreego.Rect
}

// Bounds implements rtreego.Spatial
func (e *entry) Bounds() rtreego.Rect {
	return e.rect
}

// Index is a bounding box index over named rings. It's rebuilt per
// validation pass & exists to cut the candidate set for expensive
// ring-vs-ring checks down from "everything in the layer".
type Index struct {
	tree *rtreego.Rtree
}

// NewIndex returns an empty Index.
func NewIndex() *Index {
	return &Index{tree: rtreego.NewTree(2, 25, 50)}
}

// Insert adds the ring's bounding box under the given id.
func (ix *Index) Insert(id string, ring []geom.Coord) {
	if len(ring) == 0 {
		return
	}
	min, max := geom.Bounds(ring)
	ix.tree.Insert(&entry{id: id, rect: rect(min, max)})
}

// Candidates returns the ids of every entry whose bounding box intersects
// the given ring's bounding box. A superset of the true overlaps.
func (ix *Index) Candidates(ring []geom.Coord) []string {
	if len(ring) == 0 {
		return nil
	}
	min, max := geom.Bounds(ring)

	seen := map[string]bool{}
	ids := []string{}
	for _, s := range ix.tree.SearchIntersect(rect(min, max)) {
		e := s.(*entry)
		if seen[e.id] {
			continue
		}
		seen[e.id] = true
		ids = append(ids, e.id)
	}
	return ids
}

func rect(min, max geom.Coord) rtreego.Rect {
	w := max.X - min.X
	h := max.Y - min.Y
	if w < minExtent {
		w = minExtent
	}
	if h < minExtent {
		h = minExtent
	}
	r, _ := rtreego.NewRect(rtreego.Point{min.X, min.Y}, []float64{w, h})
	return r
}
