package puzzle_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc22/puzzle"
)

// lineCount is a trivial solver: part 1 counts lines, part 2 echoes AreaSize.
func lineCount(_ context.Context, r io.Reader, cfg puzzle.Config) (puzzle.Answer, error) {
	lines, err := puzzle.ReadLines(r)
	if err != nil {
		return puzzle.Answer{}, err
	}
	return puzzle.Answer{Part1: int64(len(lines)), Part2: int64(cfg.Area())}, nil
}

func TestRegistry_AddLookupDays(t *testing.T) {
	reg := puzzle.NewRegistry(nil)
	require.NoError(t, reg.Add(15, "beacons", lineCount))
	require.NoError(t, reg.Add(3, "rucksacks", lineCount))

	assert.ErrorIs(t, reg.Add(15, "again", lineCount), puzzle.ErrDuplicateDay)
	assert.ErrorIs(t, reg.Add(0, "zero", lineCount), puzzle.ErrInvalidDay)
	assert.ErrorIs(t, reg.Add(26, "late", lineCount), puzzle.ErrInvalidDay)

	assert.Equal(t, []int{3, 15}, reg.Days())
	assert.Equal(t, "beacons", reg.Name(15))
	assert.Equal(t, "", reg.Name(4))

	_, _, err := reg.Lookup(4)
	assert.ErrorIs(t, err, puzzle.ErrUnknownDay)
}

func TestRegistry_Run(t *testing.T) {
	var buf bytes.Buffer
	log := logrus.New()
	log.SetOutput(&buf)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	reg := puzzle.NewRegistry(log)
	require.NoError(t, reg.Add(1, "count", lineCount))

	ans, err := reg.Run(context.Background(), 1, strings.NewReader("a\nb\n\n"), puzzle.Config{AreaSize: 20})
	require.NoError(t, err)
	assert.Equal(t, puzzle.Answer{Day: 1, Part1: 2, Part2: 20}, ans)
	assert.Contains(t, buf.String(), "solved")
	assert.Contains(t, buf.String(), "day=1")

	_, err = reg.Run(context.Background(), 2, strings.NewReader(""), puzzle.DefaultConfig())
	assert.ErrorIs(t, err, puzzle.ErrUnknownDay)
}

func TestRegistry_RunWrapsSolverError(t *testing.T) {
	boom := errors.New("boom")
	reg := puzzle.NewRegistry(nil)
	require.NoError(t, reg.Add(7, "failing", func(context.Context, io.Reader, puzzle.Config) (puzzle.Answer, error) {
		return puzzle.Answer{}, boom
	}))

	_, err := reg.Run(context.Background(), 7, strings.NewReader(""), puzzle.DefaultConfig())
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "day 7 (failing)")
}

func TestConfig_Area(t *testing.T) {
	assert.Equal(t, puzzle.DefaultAreaSize, puzzle.Config{}.Area())
	assert.Equal(t, 20, puzzle.Config{AreaSize: 20}.Area())
	assert.Equal(t, puzzle.DefaultAreaSize, puzzle.DefaultConfig().Area())
}

func TestAnswer_String(t *testing.T) {
	assert.Equal(t, "day 12\npart 1: 31\npart 2: 29", puzzle.Answer{Day: 12, Part1: 31, Part2: 29}.String())
}
