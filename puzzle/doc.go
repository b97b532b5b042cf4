// Package puzzle holds the thin plumbing shared by the daily solvers:
// a registry mapping day numbers to solve functions, a line reader, the
// Answer and Config types, and the conventional input file location.
//
// Solvers stay independent. Each one parses its own input and returns an
// Answer; the registry only looks them up, times them and logs the outcome.
//
// Errors:
//
//   - ErrInvalidDay:   day outside 1..25.
//   - ErrDuplicateDay: a day registered twice.
//   - ErrUnknownDay:   Run or Lookup for a day nobody registered.
package puzzle
