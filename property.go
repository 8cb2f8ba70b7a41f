package worldgraph

// Property is a time-scoped attribute bundle. It activates at TimePoint
// and (optionally) only exists between Start & End -- a city can be
// renamed at year 300 but also burn down entirely at year 450.
// Properties are value objects; once attached to a Feature they are
// never mutated, corrections append a new entry instead.
type Property struct {
	TimePoint   TimePoint              `json:"timePoint"`
	Name        string                 `json:"name"`
	Description string                 `json:"description,omitempty"`

	// Attributes is an open map -- population, ruler, culture, whatever
	// the author cares to track.
	Attributes map[string]interface{} `json:"attributes,omitempty"`

	// Optional existence window.
	Start *TimePoint `json:"startTime,omitempty"`
	End   *TimePoint `json:"endTime,omitempty"`
}

// ActiveAt returns whether the property applies at time t: t is not
// before the activation instant, Start (if any) is not after t, and t is
// not after End (if any).
func (p Property) ActiveAt(t TimePoint) bool {
	if t.Before(p.TimePoint) {
		return false
	}
	if p.Start != nil && t.Before(*p.Start) {
		return false
	}
	if p.End != nil && p.End.Before(t) {
		return false
	}
	return true
}

// copyProperties returns a defensive copy of a property list.
func copyProperties(in []Property) []Property {
	if in == nil {
		return nil
	}
	out := make([]Property, len(in))
	copy(out, in)
	return out
}
