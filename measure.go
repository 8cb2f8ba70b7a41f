package worldgraph

import (
	"github.com/voidshard/worldgraph/internal/geom"
)

// Measurements here treat coordinates as (longitude, latitude) degrees
// scaled by the world's configured equator length / radius, so authors
// of larger or smaller worlds get sensible real-unit answers.

// DistanceKm returns the approximate surface distance between two
// coordinates, good enough for the short hops map editing deals in.
func (e *Editor) DistanceKm(a, b Coordinate) float64 {
	return geom.LinearDistanceKm(geom.Pt(a.X, a.Y), geom.Pt(b.X, b.Y), e.cfg.EquatorLengthKm)
}

// GreatCircleKm returns the great circle distance between two
// coordinates -- the accurate (& slower) answer for long hauls.
func (e *Editor) GreatCircleKm(a, b Coordinate) float64 {
	return geom.GreatCircleDistanceKm(a.X, a.Y, b.X, b.Y, e.cfg.EarthRadiusKm)
}

// FeatureLengthKm returns the total length of a line feature's path.
func (e *Editor) FeatureLengthKm(w *World, id string) (float64, error) {
	f, err := w.Feature(id)
	if err != nil {
		return 0, err
	}
	if f.Type != LineFeature {
		return 0, structuralf("feature %s is not a line", id)
	}

	coords, err := w.ring(f.VertexIDs)
	if err != nil {
		return 0, err
	}

	total := 0.0
	for i := 1; i < len(coords); i++ {
		total += geom.LinearDistanceKm(coords[i-1], coords[i], e.cfg.EquatorLengthKm)
	}
	return total, nil
}

// FeatureAreaKm2 returns the area of a polygon feature -- the sum of its
// rings, minus any holes.
func (e *Editor) FeatureAreaKm2(w *World, id string) (float64, error) {
	f, err := w.Feature(id)
	if err != nil {
		return 0, err
	}
	if f.Type != PolygonFeature {
		return 0, structuralf("feature %s is not a polygon", id)
	}

	total := 0.0
	for _, ring := range f.Rings() {
		coords, err := w.ring(ring)
		if err != nil {
			return 0, err
		}
		total += geom.PolygonAreaKm2(coords, e.cfg.EquatorLengthKm)
	}
	for _, hole := range f.Holes {
		coords, err := w.ring(hole)
		if err != nil {
			return 0, err
		}
		total -= geom.PolygonAreaKm2(coords, e.cfg.EquatorLengthKm)
	}
	return total, nil
}

// FeatureBounds returns the bounding box over every ring of the feature.
func (e *Editor) FeatureBounds(w *World, id string) (Coordinate, Coordinate, error) {
	f, err := w.Feature(id)
	if err != nil {
		return Coordinate{}, Coordinate{}, err
	}

	first := true
	var min, max geom.Coord
	for _, ring := range f.AllVertexRings() {
		coords, err := w.ring(ring)
		if err != nil {
			return Coordinate{}, Coordinate{}, err
		}
		if len(coords) == 0 {
			continue
		}
		lo, hi := geom.Bounds(coords)
		if first {
			min, max = lo, hi
			first = false
			continue
		}
		if lo.X < min.X {
			min.X = lo.X
		}
		if lo.Y < min.Y {
			min.Y = lo.Y
		}
		if hi.X > max.X {
			max.X = hi.X
		}
		if hi.Y > max.Y {
			max.Y = hi.Y
		}
	}
	if first {
		return Coordinate{}, Coordinate{}, structuralf("feature %s has no vertices", id)
	}
	return Coordinate{X: min.X, Y: min.Y}, Coordinate{X: max.X, Y: max.Y}, nil
}
