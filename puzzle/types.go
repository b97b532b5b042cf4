package puzzle

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// Sentinel errors for registry operations.
var (
	// ErrInvalidDay indicates a day number outside 1..25.
	ErrInvalidDay = errors.New("puzzle: day must be between 1 and 25")
	// ErrDuplicateDay indicates a second solver for an already registered day.
	ErrDuplicateDay = errors.New("puzzle: day already registered")
	// ErrUnknownDay indicates no solver is registered for the requested day.
	ErrUnknownDay = errors.New("puzzle: no solver registered for day")
)

// DefaultAreaSize is the search area side used by the sensor puzzle on real input.
const DefaultAreaSize = 4000000

// Answer carries both parts of a solved day.
type Answer struct {
	Day   int   `json:"day"`
	Part1 int64 `json:"part1"`
	Part2 int64 `json:"part2"`
}

// String formats the answer as two labelled lines.
func (a Answer) String() string {
	return fmt.Sprintf("day %d\npart 1: %d\npart 2: %d", a.Day, a.Part1, a.Part2)
}

// Config carries algorithm parameters from the caller into solvers.
// Solvers ignore the fields they do not need.
type Config struct {
	// AreaSize bounds coordinate searches (0..=AreaSize). Zero means DefaultAreaSize.
	AreaSize int
	// Workers caps concurrent searches. Zero or one keeps solvers sequential.
	Workers int
}

// DefaultConfig returns a Config for real puzzle input, solved sequentially.
func DefaultConfig() Config {
	return Config{
		AreaSize: DefaultAreaSize,
		Workers:  1,
	}
}

// Area returns AreaSize, falling back to DefaultAreaSize when unset.
func (c Config) Area() int {
	if c.AreaSize <= 0 {
		return DefaultAreaSize
	}
	return c.AreaSize
}

// SolveFunc parses r and computes both parts of one day.
type SolveFunc func(ctx context.Context, r io.Reader, cfg Config) (Answer, error)
