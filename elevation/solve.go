package elevation

import (
	"context"
	"fmt"
	"io"

	"github.com/katalvlaran/aoc22/puzzle"
)

// Solve computes both parts: part 1 is the distance from S to E, part 2 the
// shortest distance to E from any lowest cell. With cfg.Workers > 1 part 2
// runs one search per lowest cell concurrently instead of a single
// multi-source search.
func Solve(ctx context.Context, r io.Reader, cfg puzzle.Config) (puzzle.Answer, error) {
	m, err := Parse(r)
	if err != nil {
		return puzzle.Answer{}, err
	}

	part1, ok, err := m.ShortestPath(m.Start, m.End)
	if err != nil {
		return puzzle.Answer{}, err
	}
	if !ok {
		return puzzle.Answer{}, fmt.Errorf("%w: from start %v", ErrUnreachable, m.Start)
	}

	var part2 int
	if cfg.Workers > 1 {
		part2, ok, err = m.ShortestFromEach(ctx, m.LowestPoints(), cfg.Workers)
	} else {
		part2, ok, err = m.ShortestFromLowest()
	}
	if err != nil {
		return puzzle.Answer{}, err
	}
	if !ok {
		return puzzle.Answer{}, fmt.Errorf("%w: from any lowest point", ErrUnreachable)
	}

	return puzzle.Answer{Part1: int64(part1), Part2: int64(part2)}, nil
}
