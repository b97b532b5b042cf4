package elevation

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/aoc22/gridgraph"
)

// Lowest and Highest are the elevation bounds, 'a' and 'z'.
const (
	Lowest  int = 0
	Highest int = 'z' - 'a'
)

// Sentinel errors. Every parse failure matches ErrMalformedInput via errors.Is.
var (
	// ErrMalformedInput is the root of all parse errors.
	ErrMalformedInput = errors.New("elevation: malformed input")
	// ErrMissingStart indicates no 'S' cell.
	ErrMissingStart = fmt.Errorf("%w: no start marker 'S'", ErrMalformedInput)
	// ErrMissingEnd indicates no 'E' cell.
	ErrMissingEnd = fmt.Errorf("%w: no end marker 'E'", ErrMalformedInput)
	// ErrDuplicateMarker indicates a second 'S' or 'E' cell.
	ErrDuplicateMarker = fmt.Errorf("%w: marker appears more than once", ErrMalformedInput)
	// ErrInvalidElevation indicates a byte other than 'a'..'z', 'S' or 'E'.
	ErrInvalidElevation = fmt.Errorf("%w: invalid elevation", ErrMalformedInput)

	// ErrOutOfBounds indicates a search endpoint outside the map.
	ErrOutOfBounds = errors.New("elevation: point outside map")
	// ErrUnreachable is reported by Solve when the end cannot be reached.
	ErrUnreachable = errors.New("elevation: shortest path not found")
)

// Map is a parsed heightmap with its start and end markers. The grid holds
// elevations 0..25 with the markers already rewritten to 'a' and 'z'.
type Map struct {
	grid  *gridgraph.GridGraph
	Start gridgraph.Point
	End   gridgraph.Point
}

// Grid exposes the underlying read-only grid.
func (m *Map) Grid() *gridgraph.GridGraph {
	return m.grid
}

// Width returns the number of columns.
func (m *Map) Width() int { return m.grid.Width }

// Height returns the number of rows.
func (m *Map) Height() int { return m.grid.Height }
