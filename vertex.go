package worldgraph

import (
	"github.com/voidshard/worldgraph/internal/geom"
)

// Vertex is a shared, id-addressed point on the map. X is longitude-like,
// Y latitude-like (degrees). Vertices are immutable -- moving one means
// minting a replacement with the same id & rewriting the world's vertex
// arena, so every feature referencing the id moves together.
type Vertex struct {
	ID string  `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
}

// WithCoordinates returns a copy of the vertex at a new position.
// The id is retained; the receiver is unchanged.
func (v Vertex) WithCoordinates(x, y float64) Vertex {
	return Vertex{ID: v.ID, X: x, Y: y}
}

// Coord returns the vertex position as a geometry kernel coordinate.
func (v Vertex) Coord() geom.Coord {
	return geom.Coord{X: v.X, Y: v.Y}
}
