package cave

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/aoc22/gridgraph"
	"github.com/katalvlaran/aoc22/puzzle"
)

// ParsePaths reads one rock path per line, points written "x,y" and joined
// by "->". Blank lines are skipped.
func ParsePaths(r io.Reader) ([]Path, error) {
	lines, err := puzzle.ReadLines(r)
	if err != nil {
		return nil, err
	}

	var paths []Path
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		var path Path
		for _, field := range strings.Split(line, "->") {
			p, err := parsePoint(strings.TrimSpace(field))
			if err != nil {
				return nil, fmt.Errorf("%w: line %d", err, i+1)
			}
			if n := len(path); n > 0 && path[n-1].X != p.X && path[n-1].Y != p.Y {
				return nil, fmt.Errorf("%w: line %d: %v -> %v", ErrDiagonal, i+1, path[n-1], p)
			}
			path = append(path, p)
		}
		paths = append(paths, path)
	}
	if len(paths) == 0 {
		return nil, ErrNoPaths
	}

	return paths, nil
}

func parsePoint(s string) (gridgraph.Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return gridgraph.Point{}, fmt.Errorf("%w: point %q", ErrMalformedInput, s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return gridgraph.Point{}, fmt.Errorf("%w: point %q: %w", ErrMalformedInput, s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return gridgraph.Point{}, fmt.Errorf("%w: point %q: %w", ErrMalformedInput, s, err)
	}
	if y < 0 {
		return gridgraph.Point{}, fmt.Errorf("%w: point %q above the source", ErrMalformedInput, s)
	}

	return gridgraph.Point{X: x, Y: y}, nil
}

// Parse reads the scan and builds the cave without a floor.
func Parse(r io.Reader) (*Cave, error) {
	paths, err := ParsePaths(r)
	if err != nil {
		return nil, err
	}

	return New(paths), nil
}

// ParseString is Parse over an in-memory string.
func ParseString(s string) (*Cave, error) {
	return Parse(strings.NewReader(s))
}
