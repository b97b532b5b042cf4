// Package interval implements closed integer intervals and ordered sets of
// disjoint intervals with subtraction, the row algebra behind coverage scans.
//
// What:
//
//   - Interval[T] is a closed range [Start, End]; Start > End means empty.
//   - Set[T] is a sorted, pairwise-disjoint list with no empty intervals.
//   - Subtract removes one interval from a Set and returns a fresh Set; the
//     receiver is never mutated, so no cursor juggling is needed while the
//     list grows (split) or shrinks (fully covered).
//
// Invariants (checked by Validate):
//
//   - intervals are sorted by Start
//   - no two intervals overlap
//   - no interval is empty
//
// Complexity:
//
//   - NewSet:      O(k log k) for k input intervals.
//   - Subtract:    O(k).
//   - SubtractAll: O(k·m) for m removals.
package interval
