package geom

import (
	"math"

	"github.com/golang/geo/s2"
)

const (
	// EarthRadiusKm mean radius, used when the caller doesn't supply one
	EarthRadiusKm = 6371.0

	// EquatorLengthKm circumference at the equator
	EquatorLengthKm = 40075.0
)

// Coord is a planar coordinate where X is longitude-like & Y latitude-like
// (both in degrees).
type Coord struct {
	X float64
	Y float64
}

// Pt is sugar for building a Coord inline.
func Pt(x, y float64) Coord {
	return Coord{X: x, Y: y}
}

// Distance returns the plain euclidean distance between two coords.
func Distance(a, b Coord) float64 {
	return math.Sqrt(math.Pow(a.X-b.X, 2) + math.Pow(a.Y-b.Y, 2))
}

// LinearDistanceKm approximates the distance in km between two coords
// (degrees) using an equirectangular projection -- the longitude delta is
// squashed by cos(average latitude) before taking the euclidean norm.
// Good enough for the short distances we measure on a map.
func LinearDistanceKm(a, b Coord, equatorLengthKm float64) float64 {
	degreeKm := equatorLengthKm / 360.0
	avgLat := (a.Y + b.Y) / 2.0 * math.Pi / 180.0
	dx := (b.X - a.X) * math.Cos(avgLat) * degreeKm
	dy := (b.Y - a.Y) * degreeKm
	return math.Sqrt(dx*dx + dy*dy)
}

// GreatCircleDistanceKm returns the great circle (haversine) distance in km
// between two lon/lat pairs given a sphere radius in km.
func GreatCircleDistanceKm(lon1, lat1, lon2, lat2, radiusKm float64) float64 {
	p := s2.LatLngFromDegrees(lat1, lon1)
	q := s2.LatLngFromDegrees(lat2, lon2)
	return p.Distance(q).Radians() * radiusKm
}

// PolygonArea returns the unsigned area of the ring via the shoelace
// formula. Rings of fewer than 3 vertices have no area.
func PolygonArea(ring []Coord) float64 {
	n := len(ring)
	if n < 3 {
		return 0
	}
	area := 0.0
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += ring[i].X * ring[j].Y
		area -= ring[j].X * ring[i].Y
	}
	return math.Abs(area / 2.0)
}

// PolygonAreaKm2 returns the approximate area of a ring (in degrees) in
// square km, correcting the longitude axis by cos(mean latitude).
func PolygonAreaKm2(ring []Coord, equatorLengthKm float64) float64 {
	if len(ring) < 3 {
		return 0
	}
	degreeKm := equatorLengthKm / 360.0
	lat := 0.0
	for _, c := range ring {
		lat += c.Y
	}
	lat = lat / float64(len(ring)) * math.Pi / 180.0
	return PolygonArea(ring) * degreeKm * degreeKm * math.Cos(lat)
}

// SegmentsIntersect returns whether segment p1-p2 crosses segment q1-q2.
// Parallel segments always return false, even if they're collinear and
// overlap (known limitation). Segments that merely touch at a shared
// endpoint do not count as crossing -- adjacent rings may share borders.
func SegmentsIntersect(p1, p2, q1, q2 Coord) bool {
	const eps = 1e-12

	denom := (p2.X-p1.X)*(q2.Y-q1.Y) - (p2.Y-p1.Y)*(q2.X-q1.X)
	if math.Abs(denom) < eps {
		return false
	}

	t := ((q1.X-p1.X)*(q2.Y-q1.Y) - (q1.Y-p1.Y)*(q2.X-q1.X)) / denom
	u := ((q1.X-p1.X)*(p2.Y-p1.Y) - (q1.Y-p1.Y)*(p2.X-p1.X)) / denom

	return t > eps && t < 1-eps && u > eps && u < 1-eps
}

// PointInPolygon returns whether the point sits inside the ring, decided by
// ray casting parity. Rings of fewer than 3 vertices contain nothing.
func PointInPolygon(p Coord, ring []Coord) bool {
	n := len(ring)
	if n < 3 {
		return false
	}

	inside := false
	j := n - 1
	for i := 0; i < n; i++ {
		a, b := ring[i], ring[j]
		if (a.Y > p.Y) != (b.Y > p.Y) {
			x := (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y) + a.X
			if p.X < x {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}

// boundaryEps is how close to a ring edge a point may sit and still
// count as "on" the boundary rather than inside or outside of it.
const boundaryEps = 1e-9

// PointOnRing returns whether p lies on (within eps of) any edge of the
// ring.
func PointOnRing(p Coord, ring []Coord, eps float64) bool {
	n := len(ring)
	if n < 2 {
		return false
	}
	for i := 0; i < n; i++ {
		q := ProjectPointToSegment(p, ring[i], ring[(i+1)%n])
		if Distance(p, q) <= eps {
			return true
		}
	}
	return false
}

// RingsCross returns whether any edge of ring a crosses any edge of
// ring b. Shared borders & touching endpoints don't count (see
// SegmentsIntersect).
func RingsCross(a, b []Coord) bool {
	for i := range a {
		a1, a2 := a[i], a[(i+1)%len(a)]
		for j := range b {
			if SegmentsIntersect(a1, a2, b[j], b[(j+1)%len(b)]) {
				return true
			}
		}
	}
	return false
}

// Solid is the filled interior of a polygon -- an outer ring minus any
// hole rings. Points on a ring (outer or hole) are boundary, not
// interior.
type Solid struct {
	Outer []Coord
	Holes [][]Coord
}

// rings returns the outer ring followed by the holes.
func (s Solid) rings() [][]Coord {
	out := [][]Coord{s.Outer}
	return append(out, s.Holes...)
}

// OnBoundary returns whether p sits on any of the solid's rings.
func (s Solid) OnBoundary(p Coord) bool {
	for _, r := range s.rings() {
		if PointOnRing(p, r, boundaryEps) {
			return true
		}
	}
	return false
}

// Contains returns whether p is strictly interior to the solid: inside
// the outer ring, outside every hole & not on any boundary.
func (s Solid) Contains(p Coord) bool {
	if s.OnBoundary(p) {
		return false
	}
	if !PointInPolygon(p, s.Outer) {
		return false
	}
	for _, h := range s.Holes {
		if PointInPolygon(p, h) {
			return false
		}
	}
	return true
}

// SolidsIntersect returns whether the interiors of two solids overlap.
// Touching boundaries -- shared borders, shared vertices, a ring sitting
// exactly inside another's hole -- do not count; only edge crossings or
// one interior genuinely reaching into the other do.
func SolidsIntersect(a, b Solid) bool {
	if len(a.Outer) < 3 || len(b.Outer) < 3 {
		return false
	}

	// an edge crossing any ring of the other always breaches an interior
	for _, ra := range a.rings() {
		for _, rb := range b.rings() {
			if RingsCross(ra, rb) {
				return true
			}
		}
	}

	// no crossings: a vertex strictly interior to the other solid means
	// containment (boundary vertices tell us nothing)
	for _, v := range a.Outer {
		if b.Contains(v) {
			return true
		}
	}
	for _, v := range b.Outer {
		if a.Contains(v) {
			return true
		}
	}

	// rings sharing their whole boundary (eg. identical rings) leave no
	// telling vertex; test an interior point instead
	ca := Centroid(a.Outer)
	if a.Contains(ca) && b.Contains(ca) {
		return true
	}
	cb := Centroid(b.Outer)
	if b.Contains(cb) && a.Contains(cb) {
		return true
	}
	return false
}

// ProjectPointToSegment returns the closest point to p that lies on the
// segment a-b (the scalar projection clamped to [0,1]).
func ProjectPointToSegment(p, a, b Coord) Coord {
	dx := b.X - a.X
	dy := b.Y - a.Y

	lenSq := dx*dx + dy*dy
	if lenSq == 0 { // degenerate segment
		return a
	}

	t := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}

	return Coord{X: a.X + t*dx, Y: a.Y + t*dy}
}

// Bounds returns the min / max corners of the ring's bounding box.
func Bounds(ring []Coord) (Coord, Coord) {
	if len(ring) == 0 {
		return Coord{}, Coord{}
	}
	min, max := ring[0], ring[0]
	for _, c := range ring[1:] {
		min.X = math.Min(min.X, c.X)
		min.Y = math.Min(min.Y, c.Y)
		max.X = math.Max(max.X, c.X)
		max.Y = math.Max(max.Y, c.Y)
	}
	return min, max
}

// Centroid returns the vertex average of the ring.
func Centroid(ring []Coord) Coord {
	if len(ring) == 0 {
		return Coord{}
	}
	var x, y float64
	for _, c := range ring {
		x += c.X
		y += c.Y
	}
	n := float64(len(ring))
	return Coord{X: x / n, Y: y / n}
}
