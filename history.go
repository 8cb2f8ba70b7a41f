package worldgraph

import (
	"github.com/google/uuid"
)

// OpKind names the operations the history knows how to replay.
type OpKind string

const (
	OpAdd      OpKind = "add-feature"
	OpUpdate   OpKind = "update-feature"
	OpDelete   OpKind = "delete-feature"
	OpMove     OpKind = "move-vertex"
	OpShare    OpKind = "share-vertices"
	OpUnlink   OpKind = "unlink-vertex"
	OpSplit    OpKind = "split-polygon"
	OpReparent OpKind = "change-parent"
)

// delta captures the state of the entities an operation touched on one
// side of it. A nil map value means "absent" -- applying the delta
// deletes that entry. Deleted features carry their full definition here,
// which is what makes undo-of-delete (& redo-of-add) faithful.
type delta struct {
	Features map[string]*Feature `json:"features"`
	Vertices map[string]*Vertex  `json:"vertices"`
}

// Record is one applied operation with enough captured state to replay
// it in either direction.
type Record struct {
	ID     string `json:"id"`
	Kind   OpKind `json:"kind"`
	Before *delta `json:"before"`
	After  *delta `json:"after"`
}

// History is a bounded undo/redo stack of operation records. Pushing a
// new record clears the redo stack; exceeding the depth limit drops the
// oldest record.
type History struct {
	limit int
	undo  []*Record
	redo  []*Record
}

// NewHistory returns a History retaining at most limit records.
func NewHistory(limit int) *History {
	if limit <= 0 {
		limit = 100
	}
	return &History{limit: limit, undo: []*Record{}, redo: []*Record{}}
}

// Push appends a freshly applied record.
func (h *History) Push(r *Record) {
	h.undo = append(h.undo, r)
	if len(h.undo) > h.limit {
		h.undo = h.undo[len(h.undo)-h.limit:]
	}
	h.redo = h.redo[:0]
}

// CanUndo returns whether there is anything to undo.
func (h *History) CanUndo() bool {
	return len(h.undo) > 0
}

// CanRedo returns whether there is anything to redo.
func (h *History) CanRedo() bool {
	return len(h.redo) > 0
}

// Depth returns the number of undoable records.
func (h *History) Depth() int {
	return len(h.undo)
}

// Undo reverses the most recent record against the given World,
// returning the restored snapshot.
func (h *History) Undo(w *World) (*World, error) {
	if !h.CanUndo() {
		return nil, unsupportedf("nothing to undo")
	}

	r := h.undo[len(h.undo)-1]
	restored, err := applyDelta(w, r, r.Before)
	if err != nil {
		return nil, err
	}

	h.undo = h.undo[:len(h.undo)-1]
	h.redo = append(h.redo, r)
	return restored, nil
}

// Redo re-applies the most recently undone record.
func (h *History) Redo(w *World) (*World, error) {
	if !h.CanRedo() {
		return nil, unsupportedf("nothing to redo")
	}

	r := h.redo[len(h.redo)-1]
	applied, err := applyDelta(w, r, r.After)
	if err != nil {
		return nil, err
	}

	h.redo = h.redo[:len(h.redo)-1]
	h.undo = append(h.undo, r)
	return applied, nil
}

// applyDelta writes one side of a record onto a fresh clone of w.
func applyDelta(w *World, r *Record, d *delta) (*World, error) {
	switch r.Kind {
	case OpAdd, OpUpdate, OpDelete, OpMove, OpShare, OpUnlink, OpSplit, OpReparent:
	default:
		// records can come off disk via snapshots; refuse ones this
		// build doesn't understand rather than corrupting the world
		return nil, unsupportedf("cannot replay record of kind %q", r.Kind)
	}
	if d == nil {
		return nil, unsupportedf("record %s has no state to replay", r.ID)
	}

	w2 := w.clone()
	for id, f := range d.Features {
		if f == nil {
			delete(w2.Features, id)
		} else {
			w2.Features[id] = f
		}
	}
	for id, v := range d.Vertices {
		if v == nil {
			delete(w2.Vertices, id)
		} else {
			w2.Vertices[id] = v
		}
	}
	return w2, nil
}

// capture snapshots the given entity ids in w (nil for absent entries).
func capture(w *World, featureIDs, vertexIDs []string) *delta {
	d := &delta{Features: map[string]*Feature{}, Vertices: map[string]*Vertex{}}
	for _, id := range featureIDs {
		d.Features[id] = w.Features[id] // nil if absent
	}
	for _, id := range vertexIDs {
		d.Vertices[id] = w.Vertices[id]
	}
	return d
}

func newRecordID() string {
	return uuid.NewString()
}
