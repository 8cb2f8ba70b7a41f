package worldgraph

// FeatureType tags the three shape variants.
type FeatureType string

const (
	PointFeature   FeatureType = "point"
	LineFeature    FeatureType = "line"
	PolygonFeature FeatureType = "polygon"
)

// TopLevel is the parent id of polygons with no parent.
const TopLevel = "0"

// Feature is a map feature -- a settlement marker, a river, a kingdom.
// All variants share the same struct with a type tag; the polygon-only
// fields stay empty for points & lines. Features hold vertex *ids*, never
// coordinates, so shared vertices move together (see Editor.MoveVertex).
//
// A polygon's shape comes from exactly one source:
//   - VertexIDs: a directly authored outer ring
//   - SubRings: an authored multipolygon of disjoint rings (exclaves)
//   - DerivedRings: aggregated from its children (see CalculateParentShape);
//     a polygon with children never has authored geometry of its own
type Feature struct {
	ID         string      `json:"id"`
	Type       FeatureType `json:"type"`
	LayerID    string      `json:"layerId"`
	VertexIDs  []string    `json:"vertexIds,omitempty"`
	Properties []Property  `json:"properties,omitempty"`

	Holes        [][]string `json:"holes,omitempty"`
	ParentID     string     `json:"parentId,omitempty"`
	ChildIDs     []string   `json:"childIds,omitempty"`
	SubRings     [][]string `json:"subRings,omitempty"`
	DerivedRings [][]string `json:"derivedRings,omitempty"`
}

// NewPoint returns a point feature or a structural error.
func NewPoint(id, layerID string, props []Property, vertexID string) (*Feature, error) {
	if vertexID == "" {
		return nil, structuralf("point %s requires exactly one vertex", id)
	}
	return &Feature{
		ID:         id,
		Type:       PointFeature,
		LayerID:    layerID,
		VertexIDs:  []string{vertexID},
		Properties: copyProperties(props),
	}, nil
}

// NewLine returns a polyline feature or a structural error.
func NewLine(id, layerID string, props []Property, vertexIDs []string) (*Feature, error) {
	if len(vertexIDs) < 2 {
		return nil, structuralf("line %s requires at least 2 vertices, got %d", id, len(vertexIDs))
	}
	return &Feature{
		ID:         id,
		Type:       LineFeature,
		LayerID:    layerID,
		VertexIDs:  copyRing(vertexIDs),
		Properties: copyProperties(props),
	}, nil
}

// NewPolygon returns a polygon feature or a structural error.
// Shape must come from a ring of >=3 vertices, a multipolygon of >=2
// sub-rings, or (when childIDs is non-empty) the children themselves.
func NewPolygon(id, layerID string, props []Property, ring []string, holes [][]string,
	parentID string, childIDs []string, subRings [][]string) (*Feature, error) {

	f := &Feature{
		ID:         id,
		Type:       PolygonFeature,
		LayerID:    layerID,
		VertexIDs:  copyRing(ring),
		Properties: copyProperties(props),
		Holes:      copyRings(holes),
		ParentID:   parentID,
		ChildIDs:   copyRing(childIDs),
		SubRings:   copyRings(subRings),
	}
	if f.ParentID == "" {
		f.ParentID = TopLevel
	}
	return f, f.validate()
}

// validate enforces the constructor-time shape invariants.
func (f *Feature) validate() error {
	switch f.Type {
	case PointFeature:
		if len(f.VertexIDs) != 1 {
			return structuralf("point %s requires exactly one vertex, got %d", f.ID, len(f.VertexIDs))
		}
	case LineFeature:
		if len(f.VertexIDs) < 2 {
			return structuralf("line %s requires at least 2 vertices, got %d", f.ID, len(f.VertexIDs))
		}
	case PolygonFeature:
		return f.validatePolygon()
	default:
		return structuralf("unknown feature type %q", f.Type)
	}
	return nil
}

func (f *Feature) validatePolygon() error {
	if len(f.ChildIDs) > 0 {
		// shape is derived; authored geometry is forbidden
		if len(f.VertexIDs) > 0 || len(f.SubRings) > 0 {
			return structuralf("polygon %s has children, its shape must be derived not authored", f.ID)
		}
	} else {
		if len(f.VertexIDs) > 0 && len(f.VertexIDs) < 3 {
			return structuralf("polygon %s ring requires at least 3 vertices, got %d", f.ID, len(f.VertexIDs))
		}
		if len(f.SubRings) > 0 {
			if len(f.SubRings) < 2 {
				return structuralf("polygon %s multipolygon requires at least 2 sub-rings, got %d", f.ID, len(f.SubRings))
			}
			if len(f.VertexIDs) > 0 {
				return structuralf("polygon %s cannot have both an outer ring and sub-rings", f.ID)
			}
			for i, sub := range f.SubRings {
				if len(sub) < 3 {
					return structuralf("polygon %s sub-ring %d requires at least 3 vertices, got %d", f.ID, i, len(sub))
				}
			}
		}
		if len(f.VertexIDs) == 0 && len(f.SubRings) == 0 && len(f.DerivedRings) == 0 {
			return structuralf("polygon %s has neither vertices, sub-rings nor children", f.ID)
		}
	}

	for i, hole := range f.Holes {
		if len(hole) < 3 {
			return structuralf("polygon %s hole %d requires at least 3 vertices, got %d", f.ID, i, len(hole))
		}
	}
	return nil
}

// Rings returns the solid rings making up the feature's shape -- the
// outer ring, or the multipolygon sub-rings, or the derived rings.
// Holes are not included.
func (f *Feature) Rings() [][]string {
	if len(f.VertexIDs) >= 3 && f.Type == PolygonFeature {
		return [][]string{f.VertexIDs}
	}
	if len(f.SubRings) > 0 {
		return f.SubRings
	}
	return f.DerivedRings
}

// AllVertexRings returns every vertex-id list this feature references --
// shape rings, holes & (for points / lines) the bare vertex list.
func (f *Feature) AllVertexRings() [][]string {
	if f.Type != PolygonFeature {
		return [][]string{f.VertexIDs}
	}
	out := f.Rings()
	for _, h := range f.Holes {
		out = append(out, h)
	}
	return out
}

// ReferencesVertex returns whether any ring (including holes) uses the
// given vertex id.
func (f *Feature) ReferencesVertex(vertexID string) bool {
	for _, ring := range f.AllVertexRings() {
		for _, id := range ring {
			if id == vertexID {
				return true
			}
		}
	}
	return false
}

// PropertyAt returns the effective property at time t -- the active
// property with the latest activation TimePoint. Ties on identical
// TimePoints default to the last appended entry (see Config.TieBreak).
func (f *Feature) PropertyAt(t TimePoint) (Property, bool) {
	return f.propertyAt(t, TieBreakLastAppended)
}

// ExistsAt returns whether the feature has any active property at t.
func (f *Feature) ExistsAt(t TimePoint) bool {
	_, ok := f.PropertyAt(t)
	return ok
}

func (f *Feature) propertyAt(t TimePoint, tie TieBreak) (Property, bool) {
	best := -1
	for i, p := range f.Properties {
		if !p.ActiveAt(t) {
			continue
		}
		if best < 0 {
			best = i
			continue
		}
		c := f.Properties[best].TimePoint.Compare(p.TimePoint)
		if c < 0 || (c == 0 && tie == TieBreakLastAppended) {
			best = i
		}
	}
	if best < 0 {
		return Property{}, false
	}
	return f.Properties[best], true
}

// clone returns a deep copy of the feature.
func (f *Feature) clone() *Feature {
	c := *f
	c.VertexIDs = copyRing(f.VertexIDs)
	c.Properties = copyProperties(f.Properties)
	c.Holes = copyRings(f.Holes)
	c.ChildIDs = copyRing(f.ChildIDs)
	c.SubRings = copyRings(f.SubRings)
	c.DerivedRings = copyRings(f.DerivedRings)
	return &c
}

// WithProperties returns a copy with the given properties appended.
func (f *Feature) WithProperties(props ...Property) *Feature {
	c := f.clone()
	c.Properties = append(c.Properties, props...)
	return c
}

// WithLayer returns a copy on a different layer.
func (f *Feature) WithLayer(layerID string) *Feature {
	c := f.clone()
	c.LayerID = layerID
	return c
}

// WithVertexIDs returns a copy with a replacement vertex-id list,
// re-validated.
func (f *Feature) WithVertexIDs(ids []string) (*Feature, error) {
	c := f.clone()
	c.VertexIDs = copyRing(ids)
	return c, c.validate()
}

// WithHoles returns a copy with a replacement hole list, re-validated.
func (f *Feature) WithHoles(holes [][]string) (*Feature, error) {
	c := f.clone()
	c.Holes = copyRings(holes)
	return c, c.validate()
}

// WithParent returns a copy naming a different parent polygon.
func (f *Feature) WithParent(parentID string) *Feature {
	c := f.clone()
	c.ParentID = parentID
	return c
}

// WithChildIDs returns a copy with a replacement child set.
func (f *Feature) WithChildIDs(ids []string) *Feature {
	c := f.clone()
	c.ChildIDs = copyRing(ids)
	return c
}

// WithDerivedRings returns a copy whose derived shape is replaced.
func (f *Feature) WithDerivedRings(rings [][]string) *Feature {
	c := f.clone()
	c.DerivedRings = copyRings(rings)
	return c
}

// ReplaceVertex returns a copy with every occurrence of oldID (in all
// rings, holes & sub-rings) swapped for newID.
func (f *Feature) ReplaceVertex(oldID, newID string) *Feature {
	swap := func(ring []string) {
		for i, id := range ring {
			if id == oldID {
				ring[i] = newID
			}
		}
	}

	c := f.clone()
	swap(c.VertexIDs)
	for _, h := range c.Holes {
		swap(h)
	}
	for _, s := range c.SubRings {
		swap(s)
	}
	for _, d := range c.DerivedRings {
		swap(d)
	}
	return c
}

func copyRing(in []string) []string {
	if in == nil {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}

func copyRings(in [][]string) [][]string {
	if in == nil {
		return nil
	}
	out := make([][]string, len(in))
	for i, r := range in {
		out[i] = copyRing(r)
	}
	return out
}
