package worldgraph

import (
	"testing"

	"github.com/paulmach/orb"
)

func TestGeoJSONExport(t *testing.T) {
	e := NewEditor(nil)
	w := testWorld(t, 2)

	w, p1 := addSquare(t, e, w, "L0", 0, 0, 10, TopLevel, "empire")
	w, _ = addSquare(t, e, w, "L1", 1, 1, 2, p1.ID, "province")

	res, err := e.AddFeature(w, PointFeature,
		[]Property{{TimePoint: Year(1), Name: "capital", Attributes: map[string]interface{}{"population": 9000}}},
		Geometry{Coords: []Coordinate{{X: 2, Y: 2}}}, "L1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	w = res.World

	res, err = e.AddFeature(w, LineFeature,
		[]Property{{TimePoint: Year(1), Name: "old road"}},
		Geometry{Coords: []Coordinate{{X: 2, Y: 2}, {X: 8, Y: 8}}}, "L1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	w = res.World

	fc, err := w.GeoJSON(Year(100))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(fc.Features) != 4 {
		t.Fatalf("expected 4 features, got %d", len(fc.Features))
	}

	// layer order first: the empire (L0, derived multipolygon) leads
	first := fc.Features[0]
	if first.Properties["name"] != "empire" {
		t.Errorf("expected empire first, got %v", first.Properties["name"])
	}
	if _, ok := first.Geometry.(orb.Polygon); !ok {
		t.Errorf("expected single-child parent to export as Polygon, got %T", first.Geometry)
	}

	var capital, road bool
	for _, gf := range fc.Features {
		switch gf.Properties["name"] {
		case "capital":
			capital = true
			pt, ok := gf.Geometry.(orb.Point)
			if !ok || pt[0] != 2 || pt[1] != 2 {
				t.Errorf("expected Point(2,2), got %v", gf.Geometry)
			}
			if gf.Properties["population"] != 9000 {
				t.Errorf("expected attributes copied, got %v", gf.Properties)
			}
		case "old road":
			road = true
			ls, ok := gf.Geometry.(orb.LineString)
			if !ok || len(ls) != 2 {
				t.Errorf("expected 2-point LineString, got %v", gf.Geometry)
			}
		}
	}
	if !capital || !road {
		t.Error("expected capital & road in export")
	}
}

func TestGeoJSONTimeFiltering(t *testing.T) {
	e := NewEditor(nil)
	w := testWorld(t, 1)

	res, err := e.AddFeature(w, PointFeature,
		[]Property{{TimePoint: Year(100), Name: "watchtower", End: &TimePoint{Year: 200}}},
		Geometry{Coords: []Coordinate{{X: 1, Y: 1}}}, "L0")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	w = res.World

	for _, tc := range []struct {
		year int
		want int
	}{
		{50, 0},
		{150, 1},
		{250, 0},
	} {
		fc, err := w.GeoJSON(Year(tc.year))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(fc.Features) != tc.want {
			t.Errorf("year %d: expected %d features, got %d", tc.year, tc.want, len(fc.Features))
		}
	}
}

func TestGeoJSONPolygonWithHole(t *testing.T) {
	e := NewEditor(nil)
	w := testWorld(t, 1)

	w, p := addSquare(t, e, w, "L0", 0, 0, 4, TopLevel, "realm")
	res, err := e.SplitPolygon(w, p.ID, Division{Mode: SplitHole, RingCoords: squareCoords(1, 1, 1)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	fc, err := res.World.GeoJSON(Year(1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var host orb.Polygon
	for _, gf := range fc.Features {
		if gf.ID == p.ID {
			host, _ = gf.Geometry.(orb.Polygon)
		}
	}
	if len(host) != 2 {
		t.Fatalf("expected outer ring + hole, got %d rings", len(host))
	}
	for _, ring := range host {
		if ring[0] != ring[len(ring)-1] {
			t.Error("expected rings closed")
		}
	}
}

func TestGeoJSONMultiPolygonParent(t *testing.T) {
	e := NewEditor(nil)
	w := testWorld(t, 2)

	w, p1 := addSquare(t, e, w, "L0", 0, 0, 20, TopLevel, "empire")
	w, _ = addSquare(t, e, w, "L1", 1, 1, 2, p1.ID, "west")
	w, _ = addSquare(t, e, w, "L1", 10, 10, 2, p1.ID, "east")

	fc, err := w.GeoJSON(Year(1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, gf := range fc.Features {
		if gf.ID != p1.ID {
			continue
		}
		mp, ok := gf.Geometry.(orb.MultiPolygon)
		if !ok {
			t.Fatalf("expected MultiPolygon, got %T", gf.Geometry)
		}
		if len(mp) != 2 {
			t.Errorf("expected 2 polygons, got %d", len(mp))
		}
		return
	}
	t.Fatal("expected parent in export")
}

func TestGeoJSONBytes(t *testing.T) {
	e := NewEditor(nil)
	w := testWorld(t, 1)
	w, _ = addSquare(t, e, w, "L0", 0, 0, 2, TopLevel, "isle")

	data, err := w.GeoJSONBytes(Year(1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(data) == 0 {
		t.Error("expected non-empty output")
	}
}
