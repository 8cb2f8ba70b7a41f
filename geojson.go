package worldgraph

import (
	"encoding/json"
	"sort"

	"github.com/paulmach/orb"
	geo "github.com/paulmach/orb/geojson"
)

// GeoJSON renders the world as it stands at time t into a GeoJSON
// FeatureCollection -- the read-only shape the renderer & persistence
// collaborators consume. Features without an active property at t are
// omitted; each emitted feature carries its effective property's name,
// description & attributes plus its layer info. Output order is layer
// order, then feature id.
func (w *World) GeoJSON(t TimePoint) (*geo.FeatureCollection, error) {
	fc := geo.NewFeatureCollection()

	ordered := []*Feature{}
	for _, f := range w.Features {
		ordered = append(ordered, f)
	}
	sort.Slice(ordered, func(a, b int) bool {
		la, lb := w.Layers[ordered[a].LayerID], w.Layers[ordered[b].LayerID]
		if la != nil && lb != nil && la.Order != lb.Order {
			return la.Order < lb.Order
		}
		return ordered[a].ID < ordered[b].ID
	})

	for _, f := range ordered {
		prop, ok := f.PropertyAt(t)
		if !ok {
			continue
		}

		geometry, err := w.featureGeometry(f)
		if err != nil {
			return nil, err
		}

		gf := geo.NewFeature(geometry)
		gf.ID = f.ID
		gf.Properties["name"] = prop.Name
		if prop.Description != "" {
			gf.Properties["description"] = prop.Description
		}
		for k, v := range prop.Attributes {
			gf.Properties[k] = v
		}
		gf.Properties["layer"] = f.LayerID
		if layer, ok := w.Layers[f.LayerID]; ok {
			gf.Properties["layerOrder"] = layer.Order
		}
		fc.Append(gf)
	}
	return fc, nil
}

// GeoJSONBytes is sugar around GeoJSON for callers that just want bytes.
func (w *World) GeoJSONBytes(t TimePoint) ([]byte, error) {
	fc, err := w.GeoJSON(t)
	if err != nil {
		return nil, err
	}
	return json.Marshal(fc)
}

// featureGeometry maps a feature's vertex-id rings onto an orb geometry.
func (w *World) featureGeometry(f *Feature) (orb.Geometry, error) {
	switch f.Type {
	case PointFeature:
		v, err := w.Vertex(f.VertexIDs[0])
		if err != nil {
			return nil, err
		}
		return orb.Point{v.X, v.Y}, nil

	case LineFeature:
		ls := make(orb.LineString, 0, len(f.VertexIDs))
		for _, id := range f.VertexIDs {
			v, err := w.Vertex(id)
			if err != nil {
				return nil, err
			}
			ls = append(ls, orb.Point{v.X, v.Y})
		}
		return ls, nil

	case PolygonFeature:
		rings := f.Rings()
		if len(rings) == 1 {
			poly := orb.Polygon{}
			outer, err := w.orbRing(rings[0])
			if err != nil {
				return nil, err
			}
			poly = append(poly, outer)
			for _, hole := range f.Holes {
				r, err := w.orbRing(hole)
				if err != nil {
					return nil, err
				}
				poly = append(poly, r)
			}
			return poly, nil
		}

		// exclaves / derived shapes become a MultiPolygon; holes apply
		// to the authored outer ring only, so none here
		mp := orb.MultiPolygon{}
		for _, ring := range rings {
			r, err := w.orbRing(ring)
			if err != nil {
				return nil, err
			}
			mp = append(mp, orb.Polygon{r})
		}
		return mp, nil
	}
	return nil, structuralf("unknown feature type %q", f.Type)
}

// orbRing resolves a vertex-id ring into a closed orb.Ring.
func (w *World) orbRing(ids []string) (orb.Ring, error) {
	ring := make(orb.Ring, 0, len(ids)+1)
	for _, id := range ids {
		v, err := w.Vertex(id)
		if err != nil {
			return nil, err
		}
		ring = append(ring, orb.Point{v.X, v.Y})
	}
	if len(ring) > 0 && ring[0] != ring[len(ring)-1] {
		ring = append(ring, ring[0])
	}
	return ring, nil
}
