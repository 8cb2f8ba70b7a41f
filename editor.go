package worldgraph

import (
	"github.com/voidshard/worldgraph/internal/geom"
	"github.com/voidshard/worldgraph/internal/ident"
)

// id kinds handed to the generator
const (
	kindVertex  = "vertex"
	kindFeature = "feature"
)

// Coordinate is a raw planar position handed in by callers; the editor
// turns these into Vertex entries in the world's arena.
type Coordinate struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Geometry describes the shape part of an add / update command. The
// primary ring (and holes / sub-rings) may be given either as raw
// coordinates -- the editor mints new vertices for them -- or as ids of
// vertices that already exist (to share borders with other features).
type Geometry struct {
	Coords    []Coordinate `json:"coords,omitempty"`
	VertexIDs []string     `json:"vertexIds,omitempty"`

	Holes      [][]string     `json:"holes,omitempty"`
	HoleCoords [][]Coordinate `json:"holeCoords,omitempty"`

	SubRings      [][]string     `json:"subRings,omitempty"`
	SubRingCoords [][]Coordinate `json:"subRingCoords,omitempty"`

	ParentID string   `json:"parentId,omitempty"`
	ChildIDs []string `json:"childIds,omitempty"`
}

// Update describes an update command; nil / empty parts are untouched.
type Update struct {
	// Properties replaces the whole property list when non-nil.
	Properties []Property

	// AppendProperties appends without replacing -- the usual way to
	// record a change at a new TimePoint.
	AppendProperties []Property

	// Geometry replaces the feature's shape.
	Geometry *Geometry

	// LayerID moves the feature to another layer.
	LayerID *string
}

// Division describes a split command (see Editor.SplitPolygon).
type Division struct {
	Mode string `json:"mode"` // SplitBisect or SplitHole

	// bisect mode: the two vertex-id lists partitioning the ring
	PartA []string `json:"partA,omitempty"`
	PartB []string `json:"partB,omitempty"`

	// hole mode: the ring to carve, as ids or raw coords
	Ring       []string     `json:"ring,omitempty"`
	RingCoords []Coordinate `json:"ringCoords,omitempty"`
}

const (
	SplitBisect = "bisect"
	SplitHole   = "hole"
)

// EditResult is what every editing operation hands back: the replacement
// World plus which entities the operation touched.
type EditResult struct {
	World *World

	// Feature is the primary feature of the operation, if any.
	Feature *Feature

	// Vertex is the primary vertex of the operation, if any.
	Vertex *Vertex

	// Affected lists the id of every feature whose geometry or links
	// changed -- callers re-render / re-persist these.
	Affected []string
}

// Editor orchestrates all mutation of World snapshots. It holds no world
// state itself -- each operation reads the given World, validates via the
// Hierarchy service & returns a brand new World. Operations either
// complete or fail atomically; the input World is never written to.
type Editor struct {
	cfg  *Config
	hier *Hierarchy
	hist *History
}

// NewEditor returns an Editor with the given config (nil for defaults).
func NewEditor(cfg *Config) *Editor {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Editor{
		cfg:  cfg,
		hier: NewHierarchy(cfg),
		hist: NewHistory(cfg.HistoryDepth),
	}
}

// Hierarchy returns the validation service the editor uses.
func (e *Editor) Hierarchy() *Hierarchy {
	return e.hier
}

// History returns the editor's undo/redo history.
func (e *Editor) History() *History {
	return e.hist
}

// EffectiveProperty returns the feature's effective property at time t,
// breaking TimePoint ties per the editor's configured TieBreak.
func (e *Editor) EffectiveProperty(w *World, featureID string, t TimePoint) (Property, bool, error) {
	f, err := w.Feature(featureID)
	if err != nil {
		return Property{}, false, err
	}
	p, ok := f.propertyAt(t, e.cfg.TieBreak)
	return p, ok, nil
}

// Undo reverses the most recent operation against the given World.
func (e *Editor) Undo(w *World) (*World, error) {
	return e.hist.Undo(w)
}

// Redo re-applies the most recently undone operation.
func (e *Editor) Redo(w *World) (*World, error) {
	return e.hist.Redo(w)
}

// AddFeature creates a new feature on the given layer. Raw coordinates in
// the geometry become fresh vertices; polygons are validated against the
// layer hierarchy & same-layer exclusivity before insertion.
func (e *Editor) AddFeature(w *World, typ FeatureType, props []Property, g Geometry, layerID string) (*EditResult, error) {
	_, err := w.Layer(layerID)
	if err != nil {
		return nil, err
	}

	w2 := w.clone()

	primary, newVerts, err := e.resolveRing(w2, g.Coords, g.VertexIDs)
	if err != nil {
		return nil, err
	}
	holes, hv, err := e.resolveRings(w2, g.HoleCoords, g.Holes)
	if err != nil {
		return nil, err
	}
	newVerts = append(newVerts, hv...)
	subs, sv, err := e.resolveRings(w2, g.SubRingCoords, g.SubRings)
	if err != nil {
		return nil, err
	}
	newVerts = append(newVerts, sv...)

	fid := ident.New(kindFeature)
	var f *Feature
	switch typ {
	case PointFeature:
		if len(primary) != 1 {
			return nil, structuralf("point %s requires exactly one vertex, got %d", fid, len(primary))
		}
		f, err = NewPoint(fid, layerID, props, primary[0])
	case LineFeature:
		f, err = NewLine(fid, layerID, props, primary)
	case PolygonFeature:
		f, err = NewPolygon(fid, layerID, props, primary, holes, g.ParentID, g.ChildIDs, subs)
	default:
		err = structuralf("unknown feature type %q", typ)
	}
	if err != nil {
		return nil, err
	}

	affected := []string{fid}
	if f.Type == PolygonFeature {
		err = e.hier.ValidatePolygonHierarchy(f, w2)
		if err != nil {
			return nil, err
		}
		err = e.hier.CheckExclusivity(f, w2)
		if err != nil {
			return nil, err
		}
	}

	w2.Features[fid] = f
	if f.Type == PolygonFeature && f.ParentID != TopLevel {
		err = e.attachChild(w2, f.ParentID, fid)
		if err != nil {
			return nil, err
		}
		affected = append(affected, f.ParentID)
	}

	e.record(OpAdd, w, w2, affected, newVerts)
	return &EditResult{World: w2, Feature: f, Affected: affected}, nil
}

// UpdateFeature applies any combination of property, geometry & layer
// changes, producing a replacement feature. Polygon updates are
// re-validated against hierarchy & exclusivity.
func (e *Editor) UpdateFeature(w *World, id string, u Update) (*EditResult, error) {
	f, err := w.Feature(id)
	if err != nil {
		return nil, err
	}

	w2 := w.clone()
	next := f.clone()
	newVerts := []string{}
	affected := []string{id}

	if u.Properties != nil {
		next.Properties = copyProperties(u.Properties)
	}
	if len(u.AppendProperties) > 0 {
		next.Properties = append(next.Properties, u.AppendProperties...)
	}
	if u.LayerID != nil {
		_, err = w.Layer(*u.LayerID)
		if err != nil {
			return nil, err
		}
		next.LayerID = *u.LayerID
	}

	if u.Geometry != nil {
		g := u.Geometry
		if len(g.Coords) > 0 || len(g.VertexIDs) > 0 {
			next.VertexIDs, newVerts, err = e.resolveRing(w2, g.Coords, g.VertexIDs)
			if err != nil {
				return nil, err
			}
		}
		if len(g.Holes) > 0 || len(g.HoleCoords) > 0 {
			var hv []string
			next.Holes, hv, err = e.resolveRings(w2, g.HoleCoords, g.Holes)
			if err != nil {
				return nil, err
			}
			newVerts = append(newVerts, hv...)
		}
		if len(g.SubRings) > 0 || len(g.SubRingCoords) > 0 {
			var sv []string
			next.SubRings, next.VertexIDs = nil, nil
			next.SubRings, sv, err = e.resolveRings(w2, g.SubRingCoords, g.SubRings)
			if err != nil {
				return nil, err
			}
			newVerts = append(newVerts, sv...)
		}
		if g.ParentID != "" && g.ParentID != next.ParentID {
			err = e.reparent(w2, next, g.ParentID, &affected)
			if err != nil {
				return nil, err
			}
		}
	}

	err = next.validate()
	if err != nil {
		return nil, err
	}
	w2.Features[id] = next
	if next.Type == PolygonFeature {
		err = e.hier.ValidatePolygonHierarchy(next, w2)
		if err != nil {
			return nil, err
		}
		err = e.hier.CheckExclusivity(next, w2)
		if err != nil {
			return nil, err
		}
		// a layer move shifts the feature relative to its children too
		if u.LayerID != nil && next.LayerID != f.LayerID {
			for _, childID := range next.ChildIDs {
				child, err := w2.Feature(childID)
				if err != nil {
					return nil, err
				}
				err = e.hier.ValidatePolygonHierarchy(child, w2)
				if err != nil {
					return nil, err
				}
			}
		}
	}

	// a replaced shape may strand the old ring's vertices
	if u.Geometry != nil {
		newVerts = append(newVerts, e.sweepVertices(w2, f)...)
	}

	e.record(OpUpdate, w, w2, affected, newVerts)
	return &EditResult{World: w2, Feature: next, Affected: affected}, nil
}

// DeleteFeature removes the feature, detaches it from its parent & sweeps
// any vertex no other feature still references. Polygons with children
// must be reparented or deleted first.
func (e *Editor) DeleteFeature(w *World, id string) (*EditResult, error) {
	f, err := w.Feature(id)
	if err != nil {
		return nil, err
	}
	if f.Type == PolygonFeature && len(f.ChildIDs) > 0 {
		return nil, hierarchyf("polygon %s still has %d children", id, len(f.ChildIDs))
	}

	w2 := w.clone()
	delete(w2.Features, id)

	affected := []string{id}
	if f.Type == PolygonFeature && f.ParentID != TopLevel {
		err = e.detachChild(w2, f.ParentID, id)
		if err != nil {
			return nil, err
		}
		affected = append(affected, f.ParentID)
	}

	swept := e.sweepVertices(w2, f)

	e.record(OpDelete, w, w2, affected, swept)
	return &EditResult{World: w2, Feature: f, Affected: affected}, nil
}

// MoveVertex moves a vertex, dragging every feature that references it.
// If the move would make any referencing polygon overlap a same-layer
// sibling the target is projected onto the nearest edge of the first
// blocking ring instead; if even the projected position overlaps, the
// move is rejected & the World unchanged.
func (e *Editor) MoveVertex(w *World, vertexID string, x, y float64) (*EditResult, error) {
	v, err := w.Vertex(vertexID)
	if err != nil {
		return nil, err
	}

	target := geom.Pt(x, y)
	blocking, err := e.findBlockingRing(w, vertexID, target)
	if err != nil {
		return nil, err
	}
	if blocking != nil {
		target = nearestEdgeProjection(target, blocking)
		blocking, err = e.findBlockingRing(w, vertexID, target)
		if err != nil {
			return nil, err
		}
		if blocking != nil {
			return nil, hierarchyf("moving vertex %s to (%f,%f) overlaps a sibling polygon", vertexID, x, y)
		}
	}

	moved := v.WithCoordinates(target.X, target.Y)
	w2 := w.clone()
	w2.Vertices[vertexID] = &moved

	affected := []string{}
	for _, f := range w.featuresReferencing(vertexID) {
		affected = append(affected, f.ID)
	}

	e.record(OpMove, w, w2, nil, []string{vertexID})
	return &EditResult{World: w2, Vertex: &moved, Affected: affected}, nil
}

// ShareVertices merges two vertices into one. The vertex with the older
// generated id survives at its own position; every feature referencing
// the discarded id (holes included) is rewritten & the discarded vertex
// removed. Merging a vertex with itself is a no-op.
func (e *Editor) ShareVertices(w *World, aID, bID string) (*EditResult, error) {
	if aID == bID {
		v, err := w.Vertex(aID)
		if err != nil {
			return nil, err
		}
		return &EditResult{World: w, Vertex: v}, nil
	}

	a, err := w.Vertex(aID)
	if err != nil {
		return nil, err
	}
	b, err := w.Vertex(bID)
	if err != nil {
		return nil, err
	}

	keep, drop := a, b
	if ident.Older(b.ID, a.ID) {
		keep, drop = b, a
	}

	w2 := w.clone()
	affected := []string{}
	for _, f := range w.featuresReferencing(drop.ID) {
		w2.Features[f.ID] = f.ReplaceVertex(drop.ID, keep.ID)
		affected = append(affected, f.ID)
	}
	delete(w2.Vertices, drop.ID)

	e.record(OpShare, w, w2, affected, []string{drop.ID})
	return &EditResult{World: w2, Vertex: keep, Affected: affected}, nil
}

// UnlinkSharedVertex clones the vertex under a fresh id & rewrites only
// the named feature (and its holes) to use the clone, so the feature no
// longer moves with the others. A vertex not shared with any other
// feature is left alone.
func (e *Editor) UnlinkSharedVertex(w *World, vertexID, featureID string) (*EditResult, error) {
	v, err := w.Vertex(vertexID)
	if err != nil {
		return nil, err
	}
	f, err := w.Feature(featureID)
	if err != nil {
		return nil, err
	}
	if !f.ReferencesVertex(vertexID) {
		return nil, notFoundf("feature %s does not reference vertex %s", featureID, vertexID)
	}

	if len(w.featuresReferencing(vertexID)) < 2 {
		return &EditResult{World: w, Vertex: v, Feature: f}, nil
	}

	cloneID := ident.New(kindVertex)
	cloned := Vertex{ID: cloneID, X: v.X, Y: v.Y}

	w2 := w.clone()
	w2.Vertices[cloneID] = &cloned
	w2.Features[featureID] = f.ReplaceVertex(vertexID, cloneID)

	e.record(OpUnlink, w, w2, []string{featureID}, []string{cloneID})
	return &EditResult{World: w2, Vertex: &cloned, Feature: w2.Features[featureID], Affected: []string{featureID}}, nil
}

// SplitPolygon splits a childless polygon. Bisect mode replaces it with
// two polygons partitioning its vertex list; hole mode carves a new hole
// & materializes the hole's ring as an independent polygon (an enclave).
func (e *Editor) SplitPolygon(w *World, id string, d Division) (*EditResult, error) {
	f, err := w.Feature(id)
	if err != nil {
		return nil, err
	}
	if f.Type != PolygonFeature {
		return nil, structuralf("feature %s is not a polygon", id)
	}
	if len(f.ChildIDs) > 0 {
		return nil, hierarchyf("polygon %s still has children", id)
	}

	switch d.Mode {
	case SplitBisect:
		return e.bisect(w, f, d)
	case SplitHole:
		return e.carveHole(w, f, d)
	}
	return nil, unsupportedf("split mode %q", d.Mode)
}

func (e *Editor) bisect(w *World, f *Feature, d Division) (*EditResult, error) {
	if len(f.VertexIDs) < 3 {
		return nil, unsupportedf("cannot bisect polygon %s without an authored ring", f.ID)
	}
	if len(d.PartA) < 3 || len(d.PartB) < 3 {
		return nil, structuralf("both parts of a bisect require at least 3 vertices")
	}

	// both parts must draw only on the original ring & together cover it
	original := map[string]bool{}
	for _, id := range f.VertexIDs {
		original[id] = false
	}
	for _, part := range [][]string{d.PartA, d.PartB} {
		for _, id := range part {
			_, ok := original[id]
			if !ok {
				return nil, structuralf("vertex %s is not part of polygon %s", id, f.ID)
			}
			original[id] = true
		}
	}
	for id, used := range original {
		if !used {
			return nil, structuralf("vertex %s of polygon %s is missing from both parts", id, f.ID)
		}
	}

	w2 := w.clone()
	delete(w2.Features, f.ID)

	halves := make([]*Feature, 2)
	for i, part := range [][]string{d.PartA, d.PartB} {
		half, err := NewPolygon(ident.New(kindFeature), f.LayerID, f.Properties, part, nil, f.ParentID, nil, nil)
		if err != nil {
			return nil, err
		}
		halves[i] = half
		w2.Features[half.ID] = half
	}

	affected := []string{f.ID, halves[0].ID, halves[1].ID}
	if f.ParentID != TopLevel {
		err := e.detachChild(w2, f.ParentID, f.ID)
		if err != nil {
			return nil, err
		}
		for _, half := range halves {
			err = e.attachChild(w2, f.ParentID, half.ID)
			if err != nil {
				return nil, err
			}
		}
		affected = append(affected, f.ParentID)
	}

	for _, half := range halves {
		err := e.hier.CheckExclusivity(half, w2)
		if err != nil {
			return nil, err
		}
	}

	e.record(OpSplit, w, w2, affected, nil)
	return &EditResult{World: w2, Feature: halves[0], Affected: affected}, nil
}

func (e *Editor) carveHole(w *World, f *Feature, d Division) (*EditResult, error) {
	if len(f.VertexIDs) < 3 {
		return nil, unsupportedf("cannot carve a hole into polygon %s without an authored ring", f.ID)
	}

	w2 := w.clone()
	ring, newVerts, err := e.resolveRing(w2, d.RingCoords, d.Ring)
	if err != nil {
		return nil, err
	}
	if len(ring) < 3 {
		return nil, structuralf("hole requires at least 3 vertices, got %d", len(ring))
	}

	// the hole must sit inside the polygon being carved
	outer, err := w2.ring(f.VertexIDs)
	if err != nil {
		return nil, err
	}
	coords, err := w2.ring(ring)
	if err != nil {
		return nil, err
	}
	for _, c := range coords {
		if !geom.PointInPolygon(c, outer) {
			return nil, hierarchyf("hole vertex (%f,%f) lies outside polygon %s", c.X, c.Y, f.ID)
		}
	}

	carved, err := f.WithHoles(append(copyRings(f.Holes), ring))
	if err != nil {
		return nil, err
	}

	enclave, err := NewPolygon(ident.New(kindFeature), f.LayerID, f.Properties, ring, nil, f.ParentID, nil, nil)
	if err != nil {
		return nil, err
	}
	// the enclave sits inside its host, exclusivity is bypassed for it
	err = e.hier.CheckExclusivity(enclave, w2, f.ID)
	if err != nil {
		return nil, err
	}

	w2.Features[f.ID] = carved
	w2.Features[enclave.ID] = enclave

	affected := []string{f.ID, enclave.ID}
	if enclave.ParentID != TopLevel {
		err = e.attachChild(w2, enclave.ParentID, enclave.ID)
		if err != nil {
			return nil, err
		}
		affected = append(affected, enclave.ParentID)
	}

	e.record(OpSplit, w, w2, affected, newVerts)
	return &EditResult{World: w2, Feature: enclave, Affected: affected}, nil
}

// ChangePolygonParent moves the polygon under a new parent. The polygon
// must be childless; the new parent must exist on a strictly lower-order
// layer (or be "0" for top-layer polygons).
func (e *Editor) ChangePolygonParent(w *World, id, newParentID string) (*EditResult, error) {
	f, err := w.Feature(id)
	if err != nil {
		return nil, err
	}
	if f.Type != PolygonFeature {
		return nil, structuralf("feature %s is not a polygon", id)
	}
	if len(f.ChildIDs) > 0 {
		return nil, hierarchyf("polygon %s still has children", id)
	}

	w2 := w.clone()
	next := f.clone()
	affected := []string{id}
	err = e.reparent(w2, next, newParentID, &affected)
	if err != nil {
		return nil, err
	}
	w2.Features[id] = next

	e.record(OpReparent, w, w2, affected, nil)
	return &EditResult{World: w2, Feature: next, Affected: affected}, nil
}

// reparent rewires next's parent link within the (already cloned) world,
// validating the new parent first. next is a fresh local copy & safe to
// mutate; it is not yet published into w.
func (e *Editor) reparent(w *World, next *Feature, newParentID string, affected *[]string) error {
	oldParentID := next.ParentID
	next.ParentID = newParentID

	err := e.hier.ValidatePolygonHierarchy(next, w)
	if err != nil {
		return err
	}

	if oldParentID != TopLevel && oldParentID != "" {
		err = e.detachChild(w, oldParentID, next.ID)
		if err != nil {
			return err
		}
		*affected = append(*affected, oldParentID)
	}
	if newParentID != TopLevel {
		// publish before attaching so the derived shape sees the child
		w.Features[next.ID] = next
		err = e.attachChild(w, newParentID, next.ID)
		if err != nil {
			return err
		}
		*affected = append(*affected, newParentID)
	}
	return nil
}

// attachChild adds childID to the parent's child set & re-derives the
// parent's shape. A parent gaining its first child forfeits any authored
// geometry -- its shape is derived from here on.
func (e *Editor) attachChild(w *World, parentID, childID string) error {
	parent, err := w.Feature(parentID)
	if err != nil {
		return err
	}
	if parent.Type != PolygonFeature {
		return hierarchyf("parent %s is not a polygon", parentID)
	}

	for _, id := range parent.ChildIDs {
		if id == childID {
			return nil
		}
	}

	next := parent.WithChildIDs(append(copyRing(parent.ChildIDs), childID))
	next.VertexIDs = nil
	next.SubRings = nil
	w.Features[parentID] = next

	derived, err := e.hier.CalculateParentShape(parentID, w)
	if err != nil {
		return err
	}
	w.Features[parentID] = next.WithDerivedRings(derived)
	return nil
}

// detachChild removes childID from the parent's child set. A parent left
// with no children keeps its last derived shape, frozen.
func (e *Editor) detachChild(w *World, parentID, childID string) error {
	parent, ok := w.Features[parentID]
	if !ok {
		return nil
	}

	kept := []string{}
	for _, id := range parent.ChildIDs {
		if id != childID {
			kept = append(kept, id)
		}
	}
	next := parent.WithChildIDs(kept)

	// publish before deriving so the shape reflects the trimmed child set
	w.Features[parentID] = next
	if len(kept) > 0 {
		derived, err := e.hier.CalculateParentShape(parentID, w)
		if err != nil {
			return err
		}
		w.Features[parentID] = next.WithDerivedRings(derived)
	}
	return nil
}

// sweepVertices removes every vertex the deleted feature referenced that
// no remaining feature still uses, returning the swept ids.
func (e *Editor) sweepVertices(w *World, deleted *Feature) []string {
	swept := []string{}
	seen := map[string]bool{}
	for _, ring := range deleted.AllVertexRings() {
		for _, vid := range ring {
			if seen[vid] {
				continue
			}
			seen[vid] = true
			if len(w.featuresReferencing(vid)) == 0 {
				delete(w.Vertices, vid)
				swept = append(swept, vid)
			}
		}
	}
	return swept
}

// resolveRing turns a command's primary ring into vertex ids, minting
// vertices for raw coords. Returns the ring plus any newly created ids.
func (e *Editor) resolveRing(w *World, coords []Coordinate, ids []string) ([]string, []string, error) {
	if len(coords) > 0 && len(ids) > 0 {
		return nil, nil, structuralf("geometry cannot mix raw coords & vertex ids in one ring")
	}

	if len(ids) > 0 {
		for _, id := range ids {
			_, err := w.Vertex(id)
			if err != nil {
				return nil, nil, err
			}
		}
		return copyRing(ids), nil, nil
	}

	minted := make([]string, len(coords))
	for i, c := range coords {
		id := ident.New(kindVertex)
		w.Vertices[id] = &Vertex{ID: id, X: c.X, Y: c.Y}
		minted[i] = id
	}
	return minted, copyRing(minted), nil
}

func (e *Editor) resolveRings(w *World, coords [][]Coordinate, ids [][]string) ([][]string, []string, error) {
	if len(coords) > 0 && len(ids) > 0 {
		return nil, nil, structuralf("geometry cannot mix raw coords & vertex ids across rings")
	}

	out := [][]string{}
	minted := []string{}
	for _, ring := range ids {
		r, _, err := e.resolveRing(w, nil, ring)
		if err != nil {
			return nil, nil, err
		}
		out = append(out, r)
	}
	for _, ring := range coords {
		r, m, err := e.resolveRing(w, ring, nil)
		if err != nil {
			return nil, nil, err
		}
		out = append(out, r)
		minted = append(minted, m...)
	}
	if len(out) == 0 {
		return nil, nil, nil
	}
	return out, minted, nil
}

// findBlockingRing simulates the vertex at target & returns the outer
// ring of the first same-layer polygon any referencing polygon would
// then genuinely overlap (nil if the position is clean). Polygons that
// share the moved vertex are checked like any other -- their rings have
// also shifted in the simulation, and shared borders alone don't count
// as overlap.
func (e *Editor) findBlockingRing(w *World, vertexID string, target geom.Coord) ([]geom.Coord, error) {
	v, err := w.Vertex(vertexID)
	if err != nil {
		return nil, err
	}
	sim := w.clone()
	moved := v.WithCoordinates(target.X, target.Y)
	sim.Vertices[vertexID] = &moved

	for _, f := range sim.featuresReferencing(vertexID) {
		if f.Type != PolygonFeature {
			continue
		}
		own, err := e.hier.solids(f, sim)
		if err != nil {
			return nil, err
		}
		for _, other := range sim.layerPolygons(f.LayerID) {
			if other.ID == f.ID {
				continue
			}
			solids, err := e.hier.solids(other, sim)
			if err != nil {
				return nil, err
			}
			for _, s := range own {
				for _, o := range solids {
					if geom.SolidsIntersect(s, o) {
						return o.Outer, nil
					}
				}
			}
		}
	}
	return nil, nil
}

// nearestEdgeProjection slides the target onto the closest edge of the
// blocking ring.
func nearestEdgeProjection(target geom.Coord, ring []geom.Coord) geom.Coord {
	best := ring[0]
	bestDist := -1.0
	for i := range ring {
		a, b := ring[i], ring[(i+1)%len(ring)]
		p := geom.ProjectPointToSegment(target, a, b)
		d := geom.Distance(target, p)
		if bestDist < 0 || d < bestDist {
			best = p
			bestDist = d
		}
	}
	return best
}

// record captures before/after states of the touched entities & pushes a
// history entry.
func (e *Editor) record(kind OpKind, before, after *World, featureIDs, vertexIDs []string) {
	e.hist.Push(&Record{
		ID:     newRecordID(),
		Kind:   kind,
		Before: capture(before, featureIDs, vertexIDs),
		After:  capture(after, featureIDs, vertexIDs),
	})
}
