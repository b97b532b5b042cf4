package sensor

import (
	"context"
	"io"

	"github.com/katalvlaran/aoc22/puzzle"
)

// Solve computes both parts for a search area of side cfg.Area(): part 1
// counts excluded positions on row Area()/2, part 2 is the tuning frequency
// of the single uncovered position in 0..=Area() on both axes.
func Solve(ctx context.Context, r io.Reader, cfg puzzle.Config) (puzzle.Answer, error) {
	sensors, err := Parse(r)
	if err != nil {
		return puzzle.Answer{}, err
	}
	area := cfg.Area()

	part1, err := CoveredInRow(sensors, area/2)
	if err != nil {
		return puzzle.Answer{}, err
	}

	var (
		gap Point
		ok  bool
	)
	if cfg.Workers > 1 {
		gap, ok, err = FindGapParallel(ctx, sensors, area, cfg.Workers)
		if err != nil {
			return puzzle.Answer{}, err
		}
	} else {
		gap, ok = FindGap(sensors, area)
	}
	if !ok {
		return puzzle.Answer{}, ErrNoGap
	}

	return puzzle.Answer{Part1: int64(part1), Part2: int64(TuningFrequency(gap))}, nil
}
