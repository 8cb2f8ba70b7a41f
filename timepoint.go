package worldgraph

import (
	"fmt"
)

// TimePoint is an instant on the world's timeline. Month & day are
// optional -- "the year 450" is a perfectly good instant. A coarser
// TimePoint sorts before a more specific one sharing the same prefix,
// so (450) comes before (450, 3) which comes before (450, 3, 12).
//
// Month / day values outside 1..12 / 1..31 are a caller contract
// violation, not something we check at runtime.
type TimePoint struct {
	Year  int  `json:"year"`
	Month *int `json:"month,omitempty"`
	Day   *int `json:"day,omitempty"`
}

// Year returns a TimePoint with only a year set.
func Year(y int) TimePoint {
	return TimePoint{Year: y}
}

// YearMonth returns a TimePoint with year & month set.
func YearMonth(y, m int) TimePoint {
	return TimePoint{Year: y, Month: &m}
}

// YearMonthDay returns a fully specified TimePoint.
func YearMonthDay(y, m, d int) TimePoint {
	return TimePoint{Year: y, Month: &m, Day: &d}
}

// Compare returns -1, 0 or 1 as t sorts before, equal to or after o.
func (t TimePoint) Compare(o TimePoint) int {
	if t.Year != o.Year {
		if t.Year < o.Year {
			return -1
		}
		return 1
	}
	if c := compareOptional(t.Month, o.Month); c != 0 {
		return c
	}
	return compareOptional(t.Day, o.Day)
}

// Before returns whether t sorts strictly before o.
func (t TimePoint) Before(o TimePoint) bool {
	return t.Compare(o) < 0
}

// Equal returns whether t & o are structurally identical.
func (t TimePoint) Equal(o TimePoint) bool {
	return t.Compare(o) == 0
}

// String renders the TimePoint as "year", "year-month" or "year-month-day".
func (t TimePoint) String() string {
	if t.Month == nil {
		return fmt.Sprintf("%d", t.Year)
	}
	if t.Day == nil {
		return fmt.Sprintf("%d-%02d", t.Year, *t.Month)
	}
	return fmt.Sprintf("%d-%02d-%02d", t.Year, *t.Month, *t.Day)
}

// compareOptional orders optional month/day components -- absent sorts
// before any present value.
func compareOptional(a, b *int) int {
	if a == nil && b == nil {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	if *a < *b {
		return -1
	}
	if *a > *b {
		return 1
	}
	return 0
}
