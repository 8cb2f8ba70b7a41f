package worldgraph

import (
	"github.com/voidshard/worldgraph/internal/geom"
)

// TieBreak decides which of two active properties sharing an identical
// activation TimePoint wins an effective-property lookup.
type TieBreak int

const (
	// TieBreakLastAppended prefers the property appended later (default).
	TieBreakLastAppended TieBreak = iota

	// TieBreakFirstAppended prefers the property appended earlier.
	TieBreakFirstAppended
)

// Config holds engine settings. Most worlds are fine with the defaults;
// invented planets may want their own circumference.
type Config struct {
	// HistoryDepth caps how many operations the undo stack retains.
	HistoryDepth int

	// TieBreak for effective-property lookups (see TieBreak).
	TieBreak TieBreak

	// EquatorLengthKm scales degree distances & areas to km.
	EquatorLengthKm float64

	// EarthRadiusKm scales great circle distances to km.
	EarthRadiusKm float64
}

// DefaultConfig returns reasonable earth-like settings.
func DefaultConfig() *Config {
	return &Config{
		HistoryDepth:    100,
		TieBreak:        TieBreakLastAppended,
		EquatorLengthKm: geom.EquatorLengthKm,
		EarthRadiusKm:   geom.EarthRadiusKm,
	}
}
