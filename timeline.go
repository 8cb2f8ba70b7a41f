package worldgraph

import (
	"github.com/voidshard/worldgraph/internal/calendar"
)

// Timeline does day-level arithmetic on TimePoints against a (possibly
// invented) calendar. The engine core only ever orders TimePoints;
// authors wanting "300 days after the siege" need month lengths, which
// is what a Timeline carries.
type Timeline struct {
	cal *calendar.Calendar
}

// DefaultTimeline returns a Timeline on a standard 365 day calendar.
func DefaultTimeline() *Timeline {
	return &Timeline{cal: calendar.Default()}
}

// LoadTimeline reads a Timeline from a yaml calendar definition, eg.
//
//	name: threefold-year
//	days_per_month: [91, 91, 91]
func LoadTimeline(fpath string) (*Timeline, error) {
	cal, err := calendar.Load(fpath)
	if err != nil {
		return nil, err
	}
	return &Timeline{cal: cal}, nil
}

// CalendarName returns the name of the underlying calendar.
func (tl *Timeline) CalendarName() string {
	return tl.cal.Name
}

// DaysPerYear returns the length of one year in days.
func (tl *Timeline) DaysPerYear() int {
	return tl.cal.DaysPerYear()
}

// DaysBetween returns the signed number of days from a to b. TimePoints
// with unset month/day count as the first day of the year (or month).
func (tl *Timeline) DaysBetween(a, b TimePoint) int {
	return tl.cal.DaysBetween(
		a.Year, optional(a.Month), optional(a.Day),
		b.Year, optional(b.Month), optional(b.Day),
	)
}

// AddDays walks n days (negative allowed) from t, rolling over month &
// year boundaries. The result always has month & day set.
func (tl *Timeline) AddDays(t TimePoint, n int) TimePoint {
	y, m, d := tl.cal.AddDays(t.Year, optional(t.Month), optional(t.Day), n)
	return YearMonthDay(y, m, d)
}

func optional(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
