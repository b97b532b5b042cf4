package droplet

import (
	"errors"
	"fmt"
)

// ErrMalformedInput indicates a line that is not "x,y,z".
var ErrMalformedInput = errors.New("droplet: malformed input")

// Cube is one unit cube addressed by its minimum corner.
type Cube struct {
	X, Y, Z int
}

// String formats c as "x,y,z".
func (c Cube) String() string {
	return fmt.Sprintf("%d,%d,%d", c.X, c.Y, c.Z)
}

// faces are the six face-adjacent offsets.
var faces = [6]Cube{
	{X: 1}, {X: -1},
	{Y: 1}, {Y: -1},
	{Z: 1}, {Z: -1},
}

// Neighbors returns the six face-adjacent cubes.
func (c Cube) Neighbors() [6]Cube {
	var out [6]Cube
	for i, d := range faces {
		out[i] = Cube{X: c.X + d.X, Y: c.Y + d.Y, Z: c.Z + d.Z}
	}

	return out
}

// box is an inclusive axis-aligned bounding box.
type box struct {
	lo, hi Cube
}

func (b box) contains(c Cube) bool {
	return c.X >= b.lo.X && c.X <= b.hi.X &&
		c.Y >= b.lo.Y && c.Y <= b.hi.Y &&
		c.Z >= b.lo.Z && c.Z <= b.hi.Z
}
