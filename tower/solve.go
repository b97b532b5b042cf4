package tower

import (
	"context"
	"io"

	"github.com/katalvlaran/aoc22/puzzle"
)

// Solve returns the tower height after 2022 rocks (part 1) and after one
// trillion rocks (part 2).
func Solve(_ context.Context, r io.Reader, _ puzzle.Config) (puzzle.Answer, error) {
	jets, err := Parse(r)
	if err != nil {
		return puzzle.Answer{}, err
	}

	part1, err := HeightAfter(jets, ShortRun)
	if err != nil {
		return puzzle.Answer{}, err
	}
	part2, err := HeightAfter(jets, LongRun)
	if err != nil {
		return puzzle.Answer{}, err
	}

	return puzzle.Answer{Part1: part1, Part2: part2}, nil
}
