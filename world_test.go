package worldgraph

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWorldJSONRoundTrip(t *testing.T) {
	e := NewEditor(nil)
	w := testWorld(t, 2)

	w, p1 := addSquare(t, e, w, "L0", 0, 0, 10, TopLevel, "empire")
	w, _ = addSquare(t, e, w, "L1", 1, 1, 2, p1.ID, "province")

	res, err := e.AddFeature(w, PointFeature,
		[]Property{{
			TimePoint:  Year(450),
			Name:       "battle of the ford",
			Attributes: map[string]interface{}{"casualties": "many"},
			End:        &TimePoint{Year: 450},
		}},
		Geometry{Coords: []Coordinate{{X: 5, Y: 5}}}, "L1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	w = res.World

	data, err := w.JSON()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	w2, err := WorldFromJSON(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(w2.Layers) != 2 || len(w2.Features) != 3 || len(w2.Vertices) != len(w.Vertices) {
		t.Errorf("expected %d layers %d features %d vertices, got %d %d %d",
			2, 3, len(w.Vertices), len(w2.Layers), len(w2.Features), len(w2.Vertices))
	}

	parent, err := w2.Feature(p1.ID)
	if err != nil {
		t.Fatalf("expected parent in loaded world: %v", err)
	}
	if len(parent.ChildIDs) != 1 || len(parent.DerivedRings) != 1 {
		t.Errorf("expected derived shape to survive, got %+v", parent)
	}

	battle, _ := w2.Feature(res.Feature.ID)
	prop := battle.Properties[0]
	if prop.TimePoint.Month != nil || prop.TimePoint.Day != nil {
		t.Error("expected unset month & day to stay unset")
	}
	if prop.End == nil || prop.End.Year != 450 {
		t.Errorf("expected end time preserved, got %+v", prop.End)
	}

	if err := w2.Validate(); err != nil {
		t.Errorf("expected loaded world valid: %v", err)
	}
}

func TestSaveLoadWorld(t *testing.T) {
	e := NewEditor(nil)
	w := testWorld(t, 1)
	w, p := addSquare(t, e, w, "L0", 0, 0, 2, TopLevel, "isle")

	fpath := filepath.Join(t.TempDir(), "world.json")
	if err := w.SaveJSON(fpath); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer os.Remove(fpath)

	w2, err := LoadWorld(fpath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := w2.Feature(p.ID); err != nil {
		t.Errorf("expected feature in loaded world: %v", err)
	}
}

func TestValidateCatchesDanglingReferences(t *testing.T) {
	e := NewEditor(nil)
	w := testWorld(t, 1)
	w, p := addSquare(t, e, w, "L0", 0, 0, 2, TopLevel, "isle")

	// snapshot with a vertex ripped out
	broken := w.clone()
	delete(broken.Vertices, p.VertexIDs[0])
	if err := broken.Validate(); !IsStructural(err) {
		t.Errorf("expected structural error, got %v", err)
	}

	// snapshot with the layer ripped out
	broken = w.clone()
	delete(broken.Layers, "L0")
	if err := broken.Validate(); err == nil {
		t.Error("expected error for missing layer")
	}
}

func TestValidateCatchesBadParent(t *testing.T) {
	e := NewEditor(nil)
	w := testWorld(t, 2)
	w, p := addSquare(t, e, w, "L0", 0, 0, 2, TopLevel, "orphan")

	// AddFeature refuses a phantom parent up front, so splice one in
	// by hand as if the snapshot came from elsewhere
	broken := w.clone()
	broken.Features[p.ID] = p.WithParent("feature-phantom")
	if err := broken.Validate(); !IsNotFound(err) {
		t.Errorf("expected not found error, got %v", err)
	}
}
