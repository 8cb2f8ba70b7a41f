package calendar

import (
	"io/ioutil"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Calendar describes how a world's year breaks into months & days.
// Authors of invented worlds rarely want the gregorian calendar, so the
// month table is entirely configurable -- the engine core only cares
// about ordering, but the day-arithmetic helpers here need real lengths.
//
// Dates are plain (year, month, day) ints where month/day of 0 mean
// "unset" and are treated as the first month / first day.
type Calendar struct {
	Name string `yaml:"name"`

	// DaysPerMonth, in month order. Leap cycles aren't modelled.
	DaysPerMonth []int `yaml:"days_per_month"`
}

// Default returns a 365 day, 12 month calendar.
func Default() *Calendar {
	return &Calendar{
		Name:         "standard",
		DaysPerMonth: []int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31},
	}
}

// Load reads a Calendar from a yaml file.
func Load(fpath string) (*Calendar, error) {
	data, err := ioutil.ReadFile(fpath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read calendar %s", fpath)
	}

	c := &Calendar{}
	err = yaml.Unmarshal(data, c)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse calendar %s", fpath)
	}
	return c, c.Validate()
}

// Validate checks the month table is usable.
func (c *Calendar) Validate() error {
	if len(c.DaysPerMonth) == 0 {
		return errors.New("calendar requires at least one month")
	}
	for i, days := range c.DaysPerMonth {
		if days < 1 {
			return errors.Errorf("month %d has invalid length %d", i+1, days)
		}
	}
	return nil
}

// Months returns the number of months in a year.
func (c *Calendar) Months() int {
	return len(c.DaysPerMonth)
}

// DaysPerYear returns the total days in one year.
func (c *Calendar) DaysPerYear() int {
	total := 0
	for _, d := range c.DaysPerMonth {
		total += d
	}
	return total
}

// DayOfYear returns the 1-based ordinal of (month, day) within the year.
// Unset month/day count as the first.
func (c *Calendar) DayOfYear(month, day int) int {
	if month < 1 {
		month = 1
	}
	if day < 1 {
		day = 1
	}

	total := 0
	for i := 0; i < month-1 && i < len(c.DaysPerMonth); i++ {
		total += c.DaysPerMonth[i]
	}
	return total + day
}

// DaysBetween returns the signed number of days from date a to date b.
func (c *Calendar) DaysBetween(aYear, aMonth, aDay, bYear, bMonth, bDay int) int {
	a := aYear*c.DaysPerYear() + c.DayOfYear(aMonth, aDay)
	b := bYear*c.DaysPerYear() + c.DayOfYear(bMonth, bDay)
	return b - a
}

// AddDays walks n days (negative allowed) from the given date, rolling
// over month & year boundaries, and returns the resulting date.
func (c *Calendar) AddDays(year, month, day, n int) (int, int, int) {
	if month < 1 {
		month = 1
	}
	if day < 1 {
		day = 1
	}

	// collapse to absolute day count, shift, then expand again
	abs := year*c.DaysPerYear() + c.DayOfYear(month, day) - 1 + n

	perYear := c.DaysPerYear()
	year = abs / perYear
	rem := abs % perYear
	if rem < 0 {
		year--
		rem += perYear
	}

	month = 1
	for rem >= c.DaysPerMonth[month-1] {
		rem -= c.DaysPerMonth[month-1]
		month++
	}
	return year, month, rem + 1
}
