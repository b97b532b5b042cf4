package sensor

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/katalvlaran/aoc22/interval"
)

// RemoveCovered subtracts every sensor's projection on row y from row, in
// sensor order, and returns the uncovered remainder.
func RemoveCovered(row interval.Interval[int], sensors []Sensor, y int) interval.Set[int] {
	uncovered := interval.NewSet(row)
	for _, s := range sensors {
		if proj, ok := s.RowProjection(y); ok {
			uncovered = uncovered.Subtract(proj)
		}
		if uncovered.IsEmpty() {
			break
		}
	}

	return uncovered
}

// Bounds returns the x range any sensor can cover on any row.
func Bounds(sensors []Sensor) (interval.Interval[int], error) {
	if len(sensors) == 0 {
		return interval.Interval[int]{}, ErrNoSensors
	}
	b := interval.New(sensors[0].Position.X-sensors[0].Range, sensors[0].Position.X+sensors[0].Range)
	for _, s := range sensors[1:] {
		b.Start = min(b.Start, s.Position.X-s.Range)
		b.End = max(b.End, s.Position.X+s.Range)
	}

	return b, nil
}

// Beacons returns the distinct closest beacons, sorted by row then column.
func Beacons(sensors []Sensor) []Point {
	seen := make(map[Point]struct{}, len(sensors))
	for _, s := range sensors {
		seen[s.Beacon] = struct{}{}
	}
	out := maps.Keys(seen)
	slices.SortFunc(out, func(a, b Point) int {
		if a.Y != b.Y {
			return a.Y - b.Y
		}
		return a.X - b.X
	})

	return out
}

// CoveredInRow counts the positions on row y where a beacon cannot be:
// covered positions within Bounds, minus known beacons sitting on that row.
func CoveredInRow(sensors []Sensor, y int) (int, error) {
	bounds, err := Bounds(sensors)
	if err != nil {
		return 0, err
	}
	covered := bounds.Len() - RemoveCovered(bounds, sensors, y).Size()
	for _, b := range Beacons(sensors) {
		if b.Y == y {
			covered--
		}
	}

	return covered, nil
}

// gapInRow returns the lowest uncovered x on row y within [0, areaSize].
func gapInRow(sensors []Sensor, areaSize, y int) (Point, bool) {
	first, ok := RemoveCovered(interval.New(0, areaSize), sensors, y).First()
	if !ok {
		return Point{}, false
	}

	return Point{X: first.Start, Y: y}, true
}

// FindGap scans rows 0..=areaSize in increasing order and returns the first
// uncovered position. False means the whole area is covered.
func FindGap(sensors []Sensor, areaSize int) (Point, bool) {
	for y := 0; y <= areaSize; y++ {
		if p, ok := gapInRow(sensors, areaSize, y); ok {
			return p, true
		}
	}

	return Point{}, false
}
