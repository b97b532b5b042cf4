package cave

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/aoc22/gridgraph"
)

// Sentinel errors. Every parse failure matches ErrMalformedInput via errors.Is.
var (
	// ErrMalformedInput is the root of all parse errors.
	ErrMalformedInput = errors.New("cave: malformed input")
	// ErrNoPaths indicates a scan without any rock path.
	ErrNoPaths = fmt.Errorf("%w: no rock paths", ErrMalformedInput)
	// ErrDiagonal indicates a rock segment that is neither horizontal nor vertical.
	ErrDiagonal = fmt.Errorf("%w: diagonal rock segment", ErrMalformedInput)
)

// Source is where sand enters the cave.
var Source = gridgraph.Point{X: 500, Y: 0}

// Tile is the content of one cave cell.
type Tile uint8

const (
	// Air is empty space.
	Air Tile = iota
	// Rock is part of a scanned path or the floor.
	Rock
	// Sand is a grain at rest.
	Sand
)

// String renders the tile as '.', '#' or 'o'.
func (t Tile) String() string {
	switch t {
	case Rock:
		return "#"
	case Sand:
		return "o"
	default:
		return "."
	}
}

// Outcome is what happened to one dropped grain.
type Outcome int

const (
	// Rest means the grain settled and was added to the cave.
	Rest Outcome = iota
	// Abyss means the grain fell below every rock.
	Abyss
	// Blocked means the source was already covered; nothing was dropped.
	Blocked
)

// String names the outcome.
func (o Outcome) String() string {
	switch o {
	case Rest:
		return "rest"
	case Abyss:
		return "abyss"
	case Blocked:
		return "blocked"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// Path is a rock path: consecutive points joined by straight segments.
type Path []gridgraph.Point
