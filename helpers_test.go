package worldgraph

import (
	"fmt"
	"testing"
)

// testWorld returns a world with n layers L0..Ln-1 at orders 0..n-1.
func testWorld(t *testing.T, layers int) *World {
	t.Helper()
	w := NewWorld()
	for i := 0; i < layers; i++ {
		l, err := NewLayer(fmt.Sprintf("L%d", i), fmt.Sprintf("layer-%d", i), i, 1.0)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		w, err = w.WithLayer(l)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	return w
}

// squareCoords returns the 4 corners of an axis-aligned square.
func squareCoords(x, y, size float64) []Coordinate {
	return []Coordinate{
		{X: x, Y: y}, {X: x + size, Y: y}, {X: x + size, Y: y + size}, {X: x, Y: y + size},
	}
}

// addSquare adds a square polygon with a single property named name.
func addSquare(t *testing.T, e *Editor, w *World, layerID string, x, y, size float64, parentID, name string) (*World, *Feature) {
	t.Helper()
	res, err := e.AddFeature(w, PolygonFeature,
		[]Property{{TimePoint: Year(1), Name: name}},
		Geometry{Coords: squareCoords(x, y, size), ParentID: parentID},
		layerID)
	if err != nil {
		t.Fatalf("unexpected error adding %s: %v", name, err)
	}
	return res.World, res.Feature
}
