package worldgraph

import (
	"encoding/json"
	"io/ioutil"
	"sort"

	"github.com/voidshard/worldgraph/internal/geom"
)

// World is the full snapshot an Editor operates on -- layers, the vertex
// arena, features & free-form metadata. Worlds are treated as immutable:
// every editing operation clones the maps it touches & returns a new
// World, the input is never written to. Entries are shared between
// snapshots, which is safe because entities are only ever replaced
// wholesale (see the With* copies on Vertex / Feature / Layer).
type World struct {
	Layers   map[string]*Layer   `json:"layers"`
	Vertices map[string]*Vertex  `json:"vertices"`
	Features map[string]*Feature `json:"features"`
	Metadata map[string]string   `json:"metadata,omitempty"`
}

// NewWorld returns an empty World.
func NewWorld() *World {
	return &World{
		Layers:   map[string]*Layer{},
		Vertices: map[string]*Vertex{},
		Features: map[string]*Feature{},
		Metadata: map[string]string{},
	}
}

// JSON returns the world as json.
func (w *World) JSON() ([]byte, error) {
	return json.Marshal(w)
}

// SaveJSON writes a json file to the given path.
func (w *World) SaveJSON(fpath string) error {
	data, err := w.JSON()
	if err != nil {
		return err
	}
	return ioutil.WriteFile(fpath, data, 0644)
}

// WorldFromJSON parses a snapshot previously produced by JSON().
func WorldFromJSON(data []byte) (*World, error) {
	w := NewWorld()
	err := json.Unmarshal(data, w)
	if err != nil {
		return nil, err
	}
	if w.Layers == nil {
		w.Layers = map[string]*Layer{}
	}
	if w.Vertices == nil {
		w.Vertices = map[string]*Vertex{}
	}
	if w.Features == nil {
		w.Features = map[string]*Feature{}
	}
	return w, nil
}

// LoadWorld reads a json snapshot from disk.
func LoadWorld(fpath string) (*World, error) {
	data, err := ioutil.ReadFile(fpath)
	if err != nil {
		return nil, err
	}
	return WorldFromJSON(data)
}

// WithLayer returns a copy of the world with the layer inserted (or
// replaced), provided layer orders stay unique & contiguous.
func (w *World) WithLayer(l *Layer) (*World, error) {
	c := w.clone()
	c.Layers[l.ID] = l

	hier := &Hierarchy{cfg: DefaultConfig()}
	err := hier.ValidateLayerHierarchy(c.Layers)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// Layer returns the layer by id.
func (w *World) Layer(id string) (*Layer, error) {
	l, ok := w.Layers[id]
	if !ok {
		return nil, notFoundf("layer %s", id)
	}
	return l, nil
}

// Vertex returns the vertex by id.
func (w *World) Vertex(id string) (*Vertex, error) {
	v, ok := w.Vertices[id]
	if !ok {
		return nil, notFoundf("vertex %s", id)
	}
	return v, nil
}

// Feature returns the feature by id.
func (w *World) Feature(id string) (*Feature, error) {
	f, ok := w.Features[id]
	if !ok {
		return nil, notFoundf("feature %s", id)
	}
	return f, nil
}

// clone returns a World sharing all entries with w but owning its own
// maps -- the copy-on-write step at the start of every operation.
func (w *World) clone() *World {
	c := NewWorld()
	for k, v := range w.Layers {
		c.Layers[k] = v
	}
	for k, v := range w.Vertices {
		c.Vertices[k] = v
	}
	for k, v := range w.Features {
		c.Features[k] = v
	}
	for k, v := range w.Metadata {
		c.Metadata[k] = v
	}
	return c
}

// ring resolves a vertex-id ring to coordinates.
func (w *World) ring(ids []string) ([]geom.Coord, error) {
	out := make([]geom.Coord, len(ids))
	for i, id := range ids {
		v, err := w.Vertex(id)
		if err != nil {
			return nil, err
		}
		out[i] = v.Coord()
	}
	return out, nil
}

// layerPolygons returns all polygons on the given layer, ordered by id
// for determinism.
func (w *World) layerPolygons(layerID string) []*Feature {
	out := []*Feature{}
	for _, f := range w.Features {
		if f.Type == PolygonFeature && f.LayerID == layerID {
			out = append(out, f)
		}
	}
	sort.Slice(out, func(a, b int) bool { return out[a].ID < out[b].ID })
	return out
}

// featuresReferencing returns every feature (ordered by id) whose rings
// or holes use the given vertex.
func (w *World) featuresReferencing(vertexID string) []*Feature {
	out := []*Feature{}
	for _, f := range w.Features {
		if f.ReferencesVertex(vertexID) {
			out = append(out, f)
		}
	}
	sort.Slice(out, func(a, b int) bool { return out[a].ID < out[b].ID })
	return out
}

// sortedLayers returns the world's layers ordered by Order.
func (w *World) sortedLayers() []*Layer {
	out := make([]*Layer, 0, len(w.Layers))
	for _, l := range w.Layers {
		out = append(out, l)
	}
	sort.Slice(out, func(a, b int) bool { return out[a].Order < out[b].Order })
	return out
}

// Validate checks every world invariant -- all vertex & layer references
// resolve, layer orders are contiguous from 0, parents sit on
// higher-level layers, polygons with children have no authored shape.
// Editing operations maintain these by construction; Validate exists for
// callers loading snapshots from elsewhere.
func (w *World) Validate() error {
	hier := &Hierarchy{cfg: DefaultConfig()}
	err := hier.ValidateLayerHierarchy(w.Layers)
	if err != nil {
		return err
	}

	for _, f := range w.Features {
		_, err = w.Layer(f.LayerID)
		if err != nil {
			return hierarchyf("feature %s references unknown layer %s", f.ID, f.LayerID)
		}

		for _, ring := range f.AllVertexRings() {
			for _, vid := range ring {
				_, err = w.Vertex(vid)
				if err != nil {
					return structuralf("feature %s references unknown vertex %s", f.ID, vid)
				}
			}
		}

		if f.Type != PolygonFeature {
			continue
		}
		if len(f.ChildIDs) > 0 && len(f.VertexIDs) > 0 {
			return structuralf("polygon %s has children and an authored ring", f.ID)
		}
		err = hier.ValidatePolygonHierarchy(f, w)
		if err != nil {
			return err
		}
	}
	return nil
}
