package droplet

import (
	"context"
	"io"

	"github.com/katalvlaran/aoc22/puzzle"
)

// Solve returns the total surface area (part 1) and the exterior surface
// area (part 2) of the scanned droplet.
func Solve(_ context.Context, r io.Reader, _ puzzle.Config) (puzzle.Answer, error) {
	cubes, err := Parse(r)
	if err != nil {
		return puzzle.Answer{}, err
	}

	return puzzle.Answer{
		Part1: int64(SurfaceArea(cubes)),
		Part2: int64(ExteriorSurfaceArea(cubes)),
	}, nil
}
