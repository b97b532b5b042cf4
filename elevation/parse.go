package elevation

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/aoc22/gridgraph"
	"github.com/katalvlaran/aoc22/puzzle"
)

// Parse reads a heightmap. Rows must be non-empty and of equal length and
// contain exactly one 'S' and one 'E'.
func Parse(r io.Reader) (*Map, error) {
	lines, err := puzzle.ReadLines(r)
	if err != nil {
		return nil, err
	}

	var (
		start, end         gridgraph.Point
		haveStart, haveEnd bool
	)
	values := make([][]int, len(lines))
	for y, line := range lines {
		row := make([]int, len(line))
		for x := 0; x < len(line); x++ {
			p := gridgraph.Point{X: x, Y: y}
			switch c := line[x]; {
			case c == 'S':
				if haveStart {
					return nil, fmt.Errorf("%w: second 'S' at %v", ErrDuplicateMarker, p)
				}
				start, haveStart = p, true
				row[x] = Lowest
			case c == 'E':
				if haveEnd {
					return nil, fmt.Errorf("%w: second 'E' at %v", ErrDuplicateMarker, p)
				}
				end, haveEnd = p, true
				row[x] = Highest
			case c >= 'a' && c <= 'z':
				row[x] = int(c - 'a')
			default:
				return nil, fmt.Errorf("%w: %q at %v", ErrInvalidElevation, c, p)
			}
		}
		values[y] = row
	}

	grid, err := gridgraph.NewGridGraph(values, gridgraph.GridOptions{Conn: gridgraph.Conn4})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedInput, err)
	}
	if !haveStart {
		return nil, ErrMissingStart
	}
	if !haveEnd {
		return nil, ErrMissingEnd
	}

	return &Map{grid: grid, Start: start, End: end}, nil
}

// ParseString is Parse over an in-memory string.
func ParseString(s string) (*Map, error) {
	return Parse(strings.NewReader(s))
}
