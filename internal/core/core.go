// Package core holds the small shared vocabulary of the simulation:
// pixel/grid coordinate types, the range predicate used for attack checks,
// and the error taxonomy every other package reports against.
package core

import (
	"errors"
	"fmt"
	"math"
)

// Point is a position in pixel space.
type Point struct {
	X, Y float64
}

// Cell is a position in grid space.
type Cell struct {
	X, Y int
}

// Less orders points lexicographically (X first, then Y).
// Used as the deterministic tie-break for mob target selection.
func (p Point) Less(o Point) bool {
	if p.X != o.X {
		return p.X < o.X
	}
	return p.Y < o.Y
}

// Distance returns the Euclidean distance between two points.
func Distance(a, b Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// InRange reports whether b lies within maxDistance of a (inclusive).
func InRange(a, b Point, maxDistance float64) bool {
	return Distance(a, b) <= maxDistance
}

// ErrConfiguration marks a static content-authoring bug: an unknown block,
// item, or drop-category identifier. Never retried.
var ErrConfiguration = errors.New("configuration error")

// ErrInvariant marks an interaction the model does not support, such as
// placing an item that yields more than one drop payload. Never retried.
var ErrInvariant = errors.New("invariant violation")

// ConfigErrorf wraps ErrConfiguration with context.
func ConfigErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConfiguration, fmt.Sprintf(format, args...))
}

// InvariantErrorf wraps ErrInvariant with context.
func InvariantErrorf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvariant, fmt.Sprintf(format, args...))
}
