package sensor

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/katalvlaran/aoc22/puzzle"
)

var reportRx = regexp.MustCompile(
	`^Sensor at x=(-?\d+), y=(-?\d+): closest beacon is at x=(-?\d+), y=(-?\d+)$`)

// Parse reads one sensor report per line. Blank lines are skipped; any other
// line not of the form
//
//	Sensor at x=<int>, y=<int>: closest beacon is at x=<int>, y=<int>
//
// fails the whole parse.
func Parse(r io.Reader) ([]Sensor, error) {
	lines, err := puzzle.ReadLines(r)
	if err != nil {
		return nil, err
	}

	var sensors []Sensor
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		m := reportRx.FindStringSubmatch(line)
		if m == nil {
			return nil, fmt.Errorf("%w: line %d: %q", ErrMalformedInput, i+1, line)
		}
		var v [4]int
		for j := range v {
			if v[j], err = strconv.Atoi(m[j+1]); err != nil {
				return nil, fmt.Errorf("%w: line %d: %w", ErrMalformedInput, i+1, err)
			}
		}
		sensors = append(sensors, NewSensor(Point{X: v[0], Y: v[1]}, Point{X: v[2], Y: v[3]}))
	}

	return sensors, nil
}

// ParseString is Parse over an in-memory string.
func ParseString(s string) ([]Sensor, error) {
	return Parse(strings.NewReader(s))
}
