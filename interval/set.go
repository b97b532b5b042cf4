package interval

import (
	"fmt"
	"strings"

	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// Set is an ordered collection of disjoint, non-empty closed intervals.
// The zero value is an empty set. Sets are values: every operation returns
// a new Set and leaves the receiver untouched.
type Set[T constraints.Integer] struct {
	ivs []Interval[T]
}

// NewSet normalizes ivs into a Set: empty intervals are dropped, the rest
// sorted by Start, and overlapping or adjacent intervals merged.
func NewSet[T constraints.Integer](ivs ...Interval[T]) Set[T] {
	kept := make([]Interval[T], 0, len(ivs))
	for _, iv := range ivs {
		if !iv.Empty() {
			kept = append(kept, iv)
		}
	}
	slices.SortFunc(kept, func(a, b Interval[T]) int {
		switch {
		case a.Start < b.Start:
			return -1
		case a.Start > b.Start:
			return 1
		default:
			return 0
		}
	})

	out := make([]Interval[T], 0, len(kept))
	for _, iv := range kept {
		if n := len(out); n > 0 {
			last := &out[n-1]
			// overlapping, or adjacent with no gap point between them
			if iv.Start <= last.End || iv.Start-last.End == 1 {
				if iv.End > last.End {
					last.End = iv.End
				}
				continue
			}
		}
		out = append(out, iv)
	}

	return Set[T]{ivs: out}
}

// Subtract returns s with every point of r removed. Each stored interval is
// compared against r:
//
//   - disjoint from r:            kept as is
//   - fully inside r:             dropped
//   - r strictly inside it:       split into the parts before and after r
//   - r covers its right portion: truncated to end at r.Start-1
//   - r covers its left portion:  truncated to start at r.End+1
//
// The output is built into a fresh slice, so the Set grows or shrinks
// without disturbing the iteration.
// Complexity: O(k).
func (s Set[T]) Subtract(r Interval[T]) Set[T] {
	if r.Empty() || len(s.ivs) == 0 {
		return s.clone()
	}
	out := make([]Interval[T], 0, len(s.ivs)+1)
	for _, iv := range s.ivs {
		switch {
		case !iv.Overlaps(r):
			out = append(out, iv)
		case r.Start <= iv.Start && iv.End <= r.End:
			// fully covered
		case iv.Start < r.Start && r.End < iv.End:
			out = append(out, New(iv.Start, r.Start-1), New(r.End+1, iv.End))
		case iv.Start < r.Start:
			out = append(out, New(iv.Start, r.Start-1))
		default:
			out = append(out, New(r.End+1, iv.End))
		}
	}

	return Set[T]{ivs: out}
}

// SubtractAll applies Subtract for every r in order.
func (s Set[T]) SubtractAll(rs ...Interval[T]) Set[T] {
	out := s.clone()
	for _, r := range rs {
		out = out.Subtract(r)
	}

	return out
}

// Intervals returns a copy of the stored intervals in ascending order.
func (s Set[T]) Intervals() []Interval[T] {
	return s.clone().ivs
}

// Count returns the number of stored intervals.
func (s Set[T]) Count() int {
	return len(s.ivs)
}

// Size returns the total number of integer points covered by the set.
func (s Set[T]) Size() T {
	var total T
	for _, iv := range s.ivs {
		total += iv.Len()
	}

	return total
}

// IsEmpty reports whether the set covers no point.
func (s Set[T]) IsEmpty() bool {
	return len(s.ivs) == 0
}

// First returns the lowest interval, or false for an empty set.
func (s Set[T]) First() (Interval[T], bool) {
	if len(s.ivs) == 0 {
		return Interval[T]{}, false
	}

	return s.ivs[0], true
}

// Contains reports whether v is covered by any interval of the set.
func (s Set[T]) Contains(v T) bool {
	i, _ := slices.BinarySearchFunc(s.ivs, v, func(iv Interval[T], target T) int {
		switch {
		case iv.End < target:
			return -1
		case iv.Start > target:
			return 1
		default:
			return 0
		}
	})

	return i < len(s.ivs) && s.ivs[i].Contains(v)
}

// Validate checks the set invariants: sorted, pairwise disjoint, no empty interval.
func (s Set[T]) Validate() error {
	for i, iv := range s.ivs {
		if iv.Empty() {
			return fmt.Errorf("%w: %v at %d", ErrEmptyInterval, iv, i)
		}
		if i == 0 {
			continue
		}
		prev := s.ivs[i-1]
		if prev.Start > iv.Start {
			return fmt.Errorf("%w: %v before %v", ErrUnsorted, prev, iv)
		}
		if prev.Overlaps(iv) {
			return fmt.Errorf("%w: %v and %v", ErrOverlap, prev, iv)
		}
	}

	return nil
}

// String formats the set as a space-separated list of intervals.
func (s Set[T]) String() string {
	parts := make([]string, len(s.ivs))
	for i, iv := range s.ivs {
		parts[i] = iv.String()
	}

	return "{" + strings.Join(parts, " ") + "}"
}

func (s Set[T]) clone() Set[T] {
	if s.ivs == nil {
		return Set[T]{}
	}
	out := make([]Interval[T], len(s.ivs))
	copy(out, s.ivs)

	return Set[T]{ivs: out}
}
