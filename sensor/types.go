package sensor

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/aoc22/interval"
)

// TuningMultiplier weighs X in the tuning frequency.
const TuningMultiplier = 4000000

// Sentinel errors.
var (
	// ErrMalformedInput indicates a line that is not a sensor report.
	ErrMalformedInput = errors.New("sensor: malformed input")
	// ErrNoSensors indicates an operation that needs at least one sensor.
	ErrNoSensors = errors.New("sensor: no sensors")
	// ErrNoGap is reported by Solve when the search area is fully covered.
	ErrNoGap = errors.New("sensor: no uncovered position in search area")
)

// Point is a position on the plane.
type Point struct {
	X, Y int
}

// String formats p as "x=X, y=Y".
func (p Point) String() string {
	return fmt.Sprintf("x=%d, y=%d", p.X, p.Y)
}

func absDiff[T constraints.Signed](a, b T) T {
	if a < b {
		return b - a
	}
	return a - b
}

// MDist returns the Manhattan distance between p and q.
func (p Point) MDist(q Point) int {
	return absDiff(p.X, q.X) + absDiff(p.Y, q.Y)
}

// TuningFrequency returns X*4000000 + Y.
func TuningFrequency(p Point) int {
	return p.X*TuningMultiplier + p.Y
}

// Sensor is a sensor position, its closest beacon, and the derived range.
// Build with NewSensor; the fields are not meant to change afterwards.
type Sensor struct {
	Position Point
	Beacon   Point
	Range    int
}

// NewSensor derives Range from the distance to the closest beacon.
func NewSensor(position, beacon Point) Sensor {
	return Sensor{
		Position: position,
		Beacon:   beacon,
		Range:    position.MDist(beacon),
	}
}

// Covers reports whether p lies within the sensor's range.
func (s Sensor) Covers(p Point) bool {
	return s.Position.MDist(p) <= s.Range
}

// RowProjection returns the interval of x positions covered on row y, or
// false when the row is out of reach. The half-width shrinks by one per row
// away from the sensor and reaches a single point at distance Range.
func (s Sensor) RowProjection(y int) (interval.Interval[int], bool) {
	half := s.Range - absDiff(s.Position.Y, y)
	if half < 0 {
		return interval.Interval[int]{}, false
	}

	return interval.New(s.Position.X-half, s.Position.X+half), true
}
