package worldgraph

// Layer is one level of the containment hierarchy -- empires sit on a
// lower-order layer than their provinces, provinces lower than cities.
// Order values across a world must be unique & contiguous from 0; lower
// order means higher in the hierarchy (considered first).
type Layer struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Order       int     `json:"order"`
	Visible     bool    `json:"visible"`
	Opacity     float64 `json:"opacity"`
	Description string  `json:"description,omitempty"`
}

// NewLayer returns a layer or a structural error.
func NewLayer(id, name string, order int, opacity float64) (*Layer, error) {
	if order < 0 {
		return nil, structuralf("layer %s order must be >= 0, got %d", id, order)
	}
	if opacity < 0 || opacity > 1 {
		return nil, structuralf("layer %s opacity must be within [0,1], got %f", id, opacity)
	}
	return &Layer{ID: id, Name: name, Order: order, Visible: true, Opacity: opacity}, nil
}

// WithOrder returns a copy of the layer at a different order.
func (l Layer) WithOrder(order int) Layer {
	c := l
	c.Order = order
	return c
}

// WithVisibility returns a copy with visibility & opacity replaced.
func (l Layer) WithVisibility(visible bool, opacity float64) Layer {
	c := l
	c.Visible = visible
	c.Opacity = opacity
	return c
}
