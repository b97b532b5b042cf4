package interval

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

// Sentinel errors reported by Set.Validate.
var (
	// ErrUnsorted indicates two intervals out of Start order.
	ErrUnsorted = errors.New("interval: set is not sorted")
	// ErrOverlap indicates two intervals sharing at least one point.
	ErrOverlap = errors.New("interval: set intervals overlap")
	// ErrEmptyInterval indicates an empty interval stored in a set.
	ErrEmptyInterval = errors.New("interval: set holds an empty interval")
)

// Interval is the closed range [Start, End].
type Interval[T constraints.Integer] struct {
	Start, End T
}

// New returns [a, b]. If a > b the interval is empty.
func New[T constraints.Integer](a, b T) Interval[T] {
	return Interval[T]{Start: a, End: b}
}

// Empty reports whether the interval holds no point.
func (iv Interval[T]) Empty() bool {
	return iv.Start > iv.End
}

// Len returns the number of integer points in the interval.
func (iv Interval[T]) Len() T {
	if iv.Empty() {
		return 0
	}
	return iv.End - iv.Start + 1
}

// Contains reports whether v lies in the interval.
func (iv Interval[T]) Contains(v T) bool {
	return iv.Start <= v && v <= iv.End
}

// Overlaps reports whether the two intervals share at least one point.
func (iv Interval[T]) Overlaps(o Interval[T]) bool {
	if iv.Empty() || o.Empty() {
		return false
	}
	return iv.Start <= o.End && o.Start <= iv.End
}

// String formats the interval as "[start, end]".
func (iv Interval[T]) String() string {
	return fmt.Sprintf("[%v, %v]", iv.Start, iv.End)
}
