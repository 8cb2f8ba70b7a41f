package geom

import (
	"math"
	"testing"
)

const tolerance = 0.01

func approxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) < tol
}

func TestDistance(t *testing.T) {
	if !approxEqual(Distance(Pt(0, 0), Pt(3, 4)), 5.0, tolerance) {
		t.Errorf("expected distance 5.0, got %f", Distance(Pt(0, 0), Pt(3, 4)))
	}
}

func TestLinearDistanceKmAtEquator(t *testing.T) {
	// one degree of longitude at the equator is circumference / 360
	d := LinearDistanceKm(Pt(0, 0), Pt(1, 0), EquatorLengthKm)
	if !approxEqual(d, EquatorLengthKm/360.0, tolerance) {
		t.Errorf("expected %f, got %f", EquatorLengthKm/360.0, d)
	}
}

func TestLinearDistanceKmShrinksWithLatitude(t *testing.T) {
	atEquator := LinearDistanceKm(Pt(0, 0), Pt(1, 0), EquatorLengthKm)
	atSixty := LinearDistanceKm(Pt(0, 60), Pt(1, 60), EquatorLengthKm)
	if atSixty >= atEquator {
		t.Errorf("expected longitude distance to shrink with latitude, got %f >= %f", atSixty, atEquator)
	}
	// cos(60) == 0.5
	if !approxEqual(atSixty, atEquator/2, tolerance) {
		t.Errorf("expected %f, got %f", atEquator/2, atSixty)
	}
}

func TestGreatCircleDistanceKm(t *testing.T) {
	// quarter of the circumference pole to equator
	d := GreatCircleDistanceKm(0, 0, 0, 90, EarthRadiusKm)
	expect := 2 * math.Pi * EarthRadiusKm / 4
	if !approxEqual(d, expect, 1.0) {
		t.Errorf("expected %f, got %f", expect, d)
	}
	if GreatCircleDistanceKm(10, 20, 10, 20, EarthRadiusKm) != 0 {
		t.Error("expected zero distance to self")
	}
}

func TestPolygonAreaUnitSquare(t *testing.T) {
	ring := []Coord{Pt(0, 0), Pt(1, 0), Pt(1, 1), Pt(0, 1)}
	if !approxEqual(PolygonArea(ring), 1.0, tolerance) {
		t.Errorf("expected area 1.0, got %f", PolygonArea(ring))
	}
}

func TestPolygonAreaTriangle(t *testing.T) {
	ring := []Coord{Pt(0, 0), Pt(4, 0), Pt(0, 3)}
	if !approxEqual(PolygonArea(ring), 6.0, tolerance) {
		t.Errorf("expected area 6.0, got %f", PolygonArea(ring))
	}
}

func TestPolygonAreaDegenerate(t *testing.T) {
	if PolygonArea([]Coord{Pt(0, 0), Pt(1, 1)}) != 0 {
		t.Error("expected zero area for < 3 vertices")
	}
	if PolygonArea(nil) != 0 {
		t.Error("expected zero area for nil ring")
	}
}

func TestPolygonAreaKm2(t *testing.T) {
	// one square degree at the equator
	ring := []Coord{Pt(0, -0.5), Pt(1, -0.5), Pt(1, 0.5), Pt(0, 0.5)}
	degreeKm := EquatorLengthKm / 360.0
	got := PolygonAreaKm2(ring, EquatorLengthKm)
	if !approxEqual(got, degreeKm*degreeKm, 2.0) {
		t.Errorf("expected ~%f, got %f", degreeKm*degreeKm, got)
	}
}

func TestSegmentsIntersectCrossing(t *testing.T) {
	if !SegmentsIntersect(Pt(0, 0), Pt(1, 1), Pt(0, 1), Pt(1, 0)) {
		t.Error("expected diagonals of unit square to intersect")
	}
}

func TestSegmentsIntersectParallel(t *testing.T) {
	if SegmentsIntersect(Pt(0, 0), Pt(1, 0), Pt(0, 1), Pt(1, 1)) {
		t.Error("expected parallel segments not to intersect")
	}
	// collinear overlapping -- documented limitation, still false
	if SegmentsIntersect(Pt(0, 0), Pt(2, 0), Pt(1, 0), Pt(3, 0)) {
		t.Error("expected collinear segments not to intersect")
	}
}

func TestSegmentsIntersectSharedEndpoint(t *testing.T) {
	// touching at an endpoint isn't a crossing -- rings may share borders
	if SegmentsIntersect(Pt(0, 0), Pt(1, 1), Pt(1, 1), Pt(2, 0)) {
		t.Error("expected endpoint touch not to count as crossing")
	}
}

func TestSegmentsIntersectDisjoint(t *testing.T) {
	if SegmentsIntersect(Pt(0, 0), Pt(1, 0), Pt(5, 5), Pt(6, 6)) {
		t.Error("expected disjoint segments not to intersect")
	}
}

func TestPointInPolygonCentroid(t *testing.T) {
	ring := []Coord{Pt(0, 0), Pt(4, 0), Pt(4, 4), Pt(0, 4)}
	if !PointInPolygon(Centroid(ring), ring) {
		t.Error("expected centroid inside convex ring")
	}
}

func TestPointInPolygonOutsideBBox(t *testing.T) {
	ring := []Coord{Pt(0, 0), Pt(4, 0), Pt(4, 4), Pt(0, 4)}
	for _, p := range []Coord{Pt(-1, 2), Pt(5, 2), Pt(2, -1), Pt(2, 5)} {
		if PointInPolygon(p, ring) {
			t.Errorf("expected %v outside ring", p)
		}
	}
}

func TestPointInPolygonDegenerate(t *testing.T) {
	if PointInPolygon(Pt(0, 0), []Coord{Pt(0, 0), Pt(1, 1)}) {
		t.Error("expected no containment for < 3 vertices")
	}
}

func TestPointOnRing(t *testing.T) {
	ring := []Coord{Pt(0, 0), Pt(2, 0), Pt(2, 2), Pt(0, 2)}
	if !PointOnRing(Pt(1, 0), ring, 1e-9) {
		t.Error("expected edge midpoint on ring")
	}
	if !PointOnRing(Pt(2, 2), ring, 1e-9) {
		t.Error("expected corner on ring")
	}
	if PointOnRing(Pt(1, 1), ring, 1e-9) {
		t.Error("expected interior point off ring")
	}
}

func TestSolidsIntersectCrossing(t *testing.T) {
	a := Solid{Outer: []Coord{Pt(0, 0), Pt(2, 0), Pt(2, 2), Pt(0, 2)}}
	b := Solid{Outer: []Coord{Pt(1, 1), Pt(3, 1), Pt(3, 3), Pt(1, 3)}}
	if !SolidsIntersect(a, b) {
		t.Error("expected overlapping squares to intersect")
	}
}

func TestSolidsIntersectContained(t *testing.T) {
	a := Solid{Outer: []Coord{Pt(0, 0), Pt(4, 0), Pt(4, 4), Pt(0, 4)}}
	b := Solid{Outer: []Coord{Pt(1, 1), Pt(2, 1), Pt(2, 2), Pt(1, 2)}}
	if !SolidsIntersect(a, b) {
		t.Error("expected contained solid to intersect")
	}
	if !SolidsIntersect(b, a) {
		t.Error("expected containment to be symmetric")
	}
}

func TestSolidsIntersectIdentical(t *testing.T) {
	ring := []Coord{Pt(0, 0), Pt(2, 0), Pt(2, 2), Pt(0, 2)}
	a := Solid{Outer: ring}
	b := Solid{Outer: ring}
	if !SolidsIntersect(a, b) {
		t.Error("expected identical solids to intersect")
	}
}

func TestSolidsIntersectDisjoint(t *testing.T) {
	a := Solid{Outer: []Coord{Pt(0, 0), Pt(1, 0), Pt(1, 1), Pt(0, 1)}}
	b := Solid{Outer: []Coord{Pt(5, 5), Pt(6, 5), Pt(6, 6), Pt(5, 6)}}
	if SolidsIntersect(a, b) {
		t.Error("expected disjoint solids not to intersect")
	}
}

func TestSolidsIntersectSharedBorder(t *testing.T) {
	// two triangles partitioning a square along its diagonal
	a := Solid{Outer: []Coord{Pt(0, 0), Pt(2, 0), Pt(2, 2)}}
	b := Solid{Outer: []Coord{Pt(0, 0), Pt(2, 2), Pt(0, 2)}}
	if SolidsIntersect(a, b) {
		t.Error("expected solids sharing only a border not to intersect")
	}
}

func TestSolidsIntersectRingInsideHole(t *testing.T) {
	hole := []Coord{Pt(1, 1), Pt(3, 1), Pt(3, 3), Pt(1, 3)}
	host := Solid{
		Outer: []Coord{Pt(0, 0), Pt(4, 0), Pt(4, 4), Pt(0, 4)},
		Holes: [][]Coord{hole},
	}

	// the hole's own ring as a solid -- an enclave filling the hole
	if SolidsIntersect(host, Solid{Outer: hole}) {
		t.Error("expected solid filling the hole not to intersect the host")
	}

	// strictly inside the hole
	inside := Solid{Outer: []Coord{Pt(1.5, 1.5), Pt(2.5, 1.5), Pt(2.5, 2.5), Pt(1.5, 2.5)}}
	if SolidsIntersect(host, inside) {
		t.Error("expected solid inside the hole not to intersect the host")
	}

	// poking out of the hole into the host's interior
	poking := Solid{Outer: []Coord{Pt(2, 2), Pt(3.5, 2), Pt(3.5, 3.5), Pt(2, 3.5)}}
	if !SolidsIntersect(host, poking) {
		t.Error("expected solid poking out of the hole to intersect the host")
	}
}

func TestProjectPointToSegment(t *testing.T) {
	got := ProjectPointToSegment(Pt(1, 1), Pt(0, 0), Pt(2, 0))
	if !approxEqual(got.X, 1, tolerance) || !approxEqual(got.Y, 0, tolerance) {
		t.Errorf("expected (1,0), got %v", got)
	}

	// beyond the end of the segment -- clamped to the endpoint
	got = ProjectPointToSegment(Pt(5, 1), Pt(0, 0), Pt(2, 0))
	if !approxEqual(got.X, 2, tolerance) || !approxEqual(got.Y, 0, tolerance) {
		t.Errorf("expected (2,0), got %v", got)
	}

	// degenerate segment
	got = ProjectPointToSegment(Pt(5, 5), Pt(1, 1), Pt(1, 1))
	if !approxEqual(got.X, 1, tolerance) || !approxEqual(got.Y, 1, tolerance) {
		t.Errorf("expected (1,1), got %v", got)
	}
}

func TestBounds(t *testing.T) {
	min, max := Bounds([]Coord{Pt(3, 1), Pt(0, 2), Pt(-1, 5)})
	if min.X != -1 || min.Y != 1 || max.X != 3 || max.Y != 5 {
		t.Errorf("unexpected bounds min=%v max=%v", min, max)
	}
}
