package tower

import (
	"errors"
	"fmt"
)

// Sentinel errors for parsing and simulation.
var (
	// ErrMalformedInput indicates a byte other than '<', '>' or whitespace.
	ErrMalformedInput = errors.New("tower: malformed input")
	// ErrNoJets indicates an empty jet pattern.
	ErrNoJets = fmt.Errorf("%w: no jets", ErrMalformedInput)
	// ErrNegativeCount indicates a negative number of rocks.
	ErrNegativeCount = errors.New("tower: rock count cannot be negative")
)

// Rock counts asked by the two parts of the puzzle.
const (
	ShortRun int64 = 2022
	LongRun  int64 = 1000000000000
)

// Width is the chamber width in units.
const Width = 7

// Jet is one push of hot gas.
type Jet int8

const (
	// Left pushes the falling rock one unit left.
	Left Jet = -1
	// Right pushes the falling rock one unit right.
	Right Jet = 1
)

// String renders the jet as '<' or '>'.
func (j Jet) String() string {
	if j == Left {
		return "<"
	}
	return ">"
}

// shape is a rock as row masks, bottom row first, already shifted to its
// spawn column.
type shape []uint8

const (
	leftWall  uint8 = 1
	rightWall uint8 = 1 << (Width - 1)
)

// shapes lists the rocks in falling order:
//
//	####   .#.   ..#   #   ##
//	       ###   ..#   #   ##
//	       .#.   ###   #
//	                   #
var shapes = [...]shape{
	{0x3C},
	{0x08, 0x1C, 0x08},
	{0x1C, 0x10, 0x10},
	{0x04, 0x04, 0x04, 0x04},
	{0x0C, 0x0C},
}

// push returns s moved one unit in the jet's direction, or false when a
// wall is in the way.
func (s shape) push(j Jet) (shape, bool) {
	out := make(shape, len(s))
	for i, r := range s {
		switch {
		case j == Left && r&leftWall != 0, j == Right && r&rightWall != 0:
			return nil, false
		case j == Left:
			out[i] = r >> 1
		default:
			out[i] = r << 1
		}
	}

	return out, true
}
