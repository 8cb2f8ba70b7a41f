package worldgraph

import (
	"sort"

	"github.com/voidshard/worldgraph/internal/geom"
	"github.com/voidshard/worldgraph/internal/spatial"
)

// Hierarchy validates the structural rules tying layers & polygons
// together: layer orders form a contiguous sequence, a polygon's parent
// sits on a strictly higher-level (lower order) layer, and polygons
// sharing a layer never overlap. It holds no state of its own -- every
// check runs against the World it's handed.
type Hierarchy struct {
	cfg *Config
}

// NewHierarchy returns a Hierarchy using the given config.
func NewHierarchy(cfg *Config) *Hierarchy {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Hierarchy{cfg: cfg}
}

// ValidateLayerHierarchy checks layer order values are unique & form a
// contiguous 0-based sequence.
func (h *Hierarchy) ValidateLayerHierarchy(layers map[string]*Layer) error {
	orders := make([]int, 0, len(layers))
	for _, l := range layers {
		orders = append(orders, l.Order)
	}
	sort.Ints(orders)

	for i, o := range orders {
		if o != i {
			return hierarchyf("layer orders must be contiguous from 0, got %v", orders)
		}
	}
	return nil
}

// ValidatePolygonHierarchy checks the polygon's parent link: top-layer
// (order 0) polygons must be top-level ("0"); every other polygon must
// name an existing parent polygon on a strictly lower-order layer.
func (h *Hierarchy) ValidatePolygonHierarchy(p *Feature, w *World) error {
	layer, err := w.Layer(p.LayerID)
	if err != nil {
		return err
	}

	if p.ParentID == TopLevel || p.ParentID == "" {
		if layer.Order != 0 {
			return hierarchyf("polygon %s on layer order %d requires a parent", p.ID, layer.Order)
		}
		return nil
	}

	parent, err := w.Feature(p.ParentID)
	if err != nil {
		return err
	}
	if parent.Type != PolygonFeature {
		return hierarchyf("polygon %s parent %s is not a polygon", p.ID, parent.ID)
	}

	parentLayer, err := w.Layer(parent.LayerID)
	if err != nil {
		return err
	}
	if parentLayer.Order >= layer.Order {
		return hierarchyf("polygon %s (layer order %d) parent %s must sit on a lower-order layer, got %d",
			p.ID, layer.Order, parent.ID, parentLayer.Order)
	}
	return nil
}

// CalculateParentShape derives the shape of a parent polygon from its
// children. One child: the child's ring(s) verbatim. Several: the
// flattened union of every child's rings as a multipolygon -- a purely
// structural aggregation, no geometric merging happens.
func (h *Hierarchy) CalculateParentShape(parentID string, w *World) ([][]string, error) {
	parent, err := w.Feature(parentID)
	if err != nil {
		return nil, err
	}

	rings := [][]string{}
	for _, childID := range parent.ChildIDs {
		child, err := w.Feature(childID)
		if err != nil {
			return nil, err
		}
		for _, r := range child.Rings() {
			rings = append(rings, copyRing(r))
		}
	}
	return rings, nil
}

// ContainedInHigherLayer returns whether every vertex of the polygon's
// rings sits inside some polygon belonging to a strictly lower-order
// layer. Worlds with a single layer trivially pass.
func (h *Hierarchy) ContainedInHigherLayer(p *Feature, w *World) (bool, error) {
	layer, err := w.Layer(p.LayerID)
	if err != nil {
		return false, err
	}
	if layer.Order == 0 {
		return true, nil
	}

	// collect candidate container rings from every higher-level layer
	containers := [][]geom.Coord{}
	for _, other := range w.sortedLayers() {
		if other.Order >= layer.Order {
			continue
		}
		for _, f := range w.layerPolygons(other.ID) {
			for _, ring := range f.Rings() {
				coords, err := w.ring(ring)
				if err != nil {
					return false, err
				}
				containers = append(containers, coords)
			}
		}
	}

	for _, ring := range p.Rings() {
		coords, err := w.ring(ring)
		if err != nil {
			return false, err
		}
		for _, c := range coords {
			inside := false
			for _, container := range containers {
				// sitting on the container's border counts -- children
				// commonly share vertices with their parent's shape
				if geom.PointInPolygon(c, container) || geom.PointOnRing(c, container, 1e-9) {
					inside = true
					break
				}
			}
			if !inside {
				return false, nil
			}
		}
	}
	return true, nil
}

// solids resolves the feature's filled shape: the authored ring minus
// its holes, or (for multi-ring shapes -- sub-rings, derived parents)
// one solid per ring.
func (h *Hierarchy) solids(f *Feature, w *World) ([]geom.Solid, error) {
	rings := f.Rings()
	out := make([]geom.Solid, 0, len(rings))

	for i, ring := range rings {
		coords, err := w.ring(ring)
		if err != nil {
			return nil, err
		}
		s := geom.Solid{Outer: coords}
		// holes belong to the authored outer ring only
		if i == 0 && len(f.VertexIDs) > 0 {
			for _, hole := range f.Holes {
				hc, err := w.ring(hole)
				if err != nil {
					return nil, err
				}
				s.Holes = append(s.Holes, hc)
			}
		}
		out = append(out, s)
	}
	return out, nil
}

// CheckExclusivity verifies no other polygon on the same layer overlaps
// p. Only genuine interior overlap counts -- shared borders, shared
// vertices & rings filling another polygon's hole are all legal.
// Candidate polygons are prefiltered via a bounding box index before the
// expensive interior test. Ids in skip are bypassed -- the
// editor uses this for parent/child aggregation & hole carving, where
// "overlap" is the whole point.
func (h *Hierarchy) CheckExclusivity(p *Feature, w *World, skip ...string) error {
	skipped := map[string]bool{p.ID: true}
	for _, id := range skip {
		skipped[id] = true
	}

	own, err := h.solids(p, w)
	if err != nil {
		return err
	}
	if len(own) == 0 {
		return nil
	}

	// index every sibling solid's bbox before the expensive interior test
	siblings := map[string][]geom.Solid{}
	ix := spatial.NewIndex()
	for _, other := range w.layerPolygons(p.LayerID) {
		if skipped[other.ID] {
			continue
		}
		solids, err := h.solids(other, w)
		if err != nil {
			return err
		}
		for _, s := range solids {
			ix.Insert(other.ID, s.Outer)
		}
		siblings[other.ID] = solids
	}

	for _, s := range own {
		for _, id := range ix.Candidates(s.Outer) {
			for _, o := range siblings[id] {
				if geom.SolidsIntersect(s, o) {
					return hierarchyf("polygon %s overlaps %s on layer %s", p.ID, id, p.LayerID)
				}
			}
		}
	}
	return nil
}
