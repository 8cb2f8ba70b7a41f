package worldgraph

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrStructural implies an entity constructor invariant was broken
	// (wrong vertex count, degenerate ring, polygon with no shape source).
	// These abort the single operation & should never be swallowed.
	ErrStructural = fmt.Errorf("structural violation")

	// ErrHierarchy implies a cross-entity rule failed -- layer ordering,
	// parent/child layer ordering, same-layer exclusivity, or attempting
	// to delete / reparent a polygon that still has children.
	ErrHierarchy = fmt.Errorf("hierarchy violation")

	// ErrNotFound implies an unknown vertex / feature / layer id.
	ErrNotFound = fmt.Errorf("not found")

	// ErrUnsupported implies an operation (or an undo/redo replay) we
	// know about but cannot perform.
	ErrUnsupported = fmt.Errorf("unsupported operation")
)

// Every failed operation leaves the input World untouched; callers decide
// how to surface the message.

// IsStructural returns whether err is (or wraps) a structural violation.
func IsStructural(err error) bool {
	return errors.Is(err, ErrStructural)
}

// IsHierarchy returns whether err is (or wraps) a hierarchy violation.
func IsHierarchy(err error) bool {
	return errors.Is(err, ErrHierarchy)
}

// IsNotFound returns whether err is (or wraps) a missing-reference error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsUnsupported returns whether err is (or wraps) an unsupported operation.
func IsUnsupported(err error) bool {
	return errors.Is(err, ErrUnsupported)
}

func structuralf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrStructural, format, args...)
}

func hierarchyf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrHierarchy, format, args...)
}

func notFoundf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrNotFound, format, args...)
}

func unsupportedf(format string, args ...interface{}) error {
	return errors.Wrapf(ErrUnsupported, format, args...)
}
