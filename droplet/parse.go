package droplet

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/aoc22/puzzle"
)

// Parse reads one cube per line as "x,y,z". Blank lines are skipped and
// repeated cubes are kept once.
func Parse(r io.Reader) ([]Cube, error) {
	lines, err := puzzle.ReadLines(r)
	if err != nil {
		return nil, err
	}

	seen := make(map[Cube]struct{}, len(lines))
	var cubes []Cube
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		parts := strings.Split(line, ",")
		if len(parts) != 3 {
			return nil, fmt.Errorf("%w: line %d: %q", ErrMalformedInput, i+1, line)
		}
		var v [3]int
		for j, p := range parts {
			if v[j], err = strconv.Atoi(strings.TrimSpace(p)); err != nil {
				return nil, fmt.Errorf("%w: line %d: %w", ErrMalformedInput, i+1, err)
			}
		}
		c := Cube{X: v[0], Y: v[1], Z: v[2]}
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		cubes = append(cubes, c)
	}

	return cubes, nil
}

// ParseString is Parse over an in-memory string.
func ParseString(s string) ([]Cube, error) {
	return Parse(strings.NewReader(s))
}
