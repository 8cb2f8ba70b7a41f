package ident

import (
	"strings"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/pkg/errors"
)

// Generated ids look like "{kind}-{ulid}" eg. "vertex-01H455VB4PEX5C5PKG2EXA5XT3".
// The ULID carries a millisecond timestamp so ids of a kind sort by
// creation time, which is how we decide which of two merged vertices
// is "older".

// New returns a fresh id for the given kind.
func New(kind string) string {
	return kind + "-" + ulid.Make().String()
}

// Kind returns the kind prefix of a generated id.
func Kind(id string) string {
	i := strings.LastIndex(id, "-")
	if i < 0 {
		return ""
	}
	return id[:i]
}

// Timestamp extracts the creation time embedded in a generated id.
func Timestamp(id string) (time.Time, error) {
	i := strings.LastIndex(id, "-")
	if i < 0 {
		return time.Time{}, errors.Errorf("id %q has no ulid component", id)
	}
	u, err := ulid.Parse(id[i+1:])
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "id %q has no ulid component", id)
	}
	return ulid.Time(u.Time()), nil
}

// Older returns whether id a was generated before id b.
// Ids minted in the same millisecond fall back to lexicographic order so
// the answer is at least stable.
func Older(a, b string) bool {
	ta, erra := Timestamp(a)
	tb, errb := Timestamp(b)
	if erra != nil || errb != nil || ta.Equal(tb) {
		return a < b
	}
	return ta.Before(tb)
}
