package cave

import (
	"context"
	"io"

	"github.com/katalvlaran/aoc22/puzzle"
)

// Solve counts resting grains before the first one falls into the abyss
// (part 1), then with the floor in place until the source is covered
// (part 2). Each part runs on its own copy of the parsed cave.
func Solve(_ context.Context, r io.Reader, _ puzzle.Config) (puzzle.Answer, error) {
	c, err := Parse(r)
	if err != nil {
		return puzzle.Answer{}, err
	}

	part1 := c.Clone().Fill()

	floored := c.Clone()
	floored.AddFloor()
	part2 := floored.Fill()

	return puzzle.Answer{Part1: int64(part1), Part2: int64(part2)}, nil
}
