package elevation_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc22/elevation"
	"github.com/katalvlaran/aoc22/gridgraph"
	"github.com/katalvlaran/aoc22/puzzle"
)

const example = `Sabqponm
abcryxxl
accszExk
acctuvwj
abdefghi
`

func mustParse(t *testing.T, s string) *elevation.Map {
	t.Helper()
	m, err := elevation.ParseString(s)
	require.NoError(t, err)

	return m
}

func TestParse_Example(t *testing.T) {
	m := mustParse(t, example)
	assert.Equal(t, 8, m.Width())
	assert.Equal(t, 5, m.Height())
	assert.Equal(t, gridgraph.Point{X: 0, Y: 0}, m.Start)
	assert.Equal(t, gridgraph.Point{X: 5, Y: 2}, m.End)
	assert.IsType(t, m.Elevation(m.Start), elevation.Highest)
	assert.Equal(t, elevation.Lowest, m.Elevation(m.Start))
	assert.Equal(t, elevation.Highest, m.Elevation(m.End))
	assert.Equal(t, int('q'-'a'), m.Elevation(gridgraph.Point{X: 3, Y: 0}))
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want error
	}{
		{"Empty", "", elevation.ErrMalformedInput},
		{"Ragged", "Sab\nabcE\n", elevation.ErrMalformedInput},
		{"NoStart", "aab\nabE\n", elevation.ErrMissingStart},
		{"NoEnd", "Sab\nabc\n", elevation.ErrMissingEnd},
		{"TwoStarts", "SaS\nabE\n", elevation.ErrDuplicateMarker},
		{"TwoEnds", "SaE\nabE\n", elevation.ErrDuplicateMarker},
		{"BadByte", "Sa1\nabE\n", elevation.ErrInvalidElevation},
		{"Uppercase", "SaB\nabE\n", elevation.ErrInvalidElevation},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := elevation.ParseString(tc.in)
			assert.ErrorIs(t, err, tc.want)
			assert.ErrorIs(t, err, elevation.ErrMalformedInput)
		})
	}
}

func TestShortestPath_Example(t *testing.T) {
	m := mustParse(t, example)
	d, ok, err := m.ShortestPath(m.Start, m.End)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 31, d)
}

func TestShortestPath_SameCell(t *testing.T) {
	m := mustParse(t, example)
	d, ok, err := m.ShortestPath(m.End, m.End)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 0, d)
}

func TestShortestPath_OutOfBounds(t *testing.T) {
	m := mustParse(t, example)
	_, _, err := m.ShortestPath(gridgraph.Point{X: -1, Y: 0}, m.End)
	assert.ErrorIs(t, err, elevation.ErrOutOfBounds)
	_, _, err = m.ShortestPath(m.Start, gridgraph.Point{X: 8, Y: 0})
	assert.ErrorIs(t, err, elevation.ErrOutOfBounds)
}

// TestShortestPath_WalledOff surrounds E with cliffs two levels above the plain.
func TestShortestPath_WalledOff(t *testing.T) {
	m := mustParse(t, "Saaaa\naczca\naczEa\naczca\naaaaa\n")
	_, ok, err := m.ShortestPath(m.Start, m.End)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = elevation.Solve(context.Background(), strings.NewReader("Saaaa\naczca\naczEa\naczca\naaaaa\n"), puzzle.DefaultConfig())
	assert.ErrorIs(t, err, elevation.ErrUnreachable)
}

// TestDistances_PathsAreLegal reconstructs the path to every reached cell and
// checks its length matches the recorded distance and each step obeys the
// climb rule.
func TestDistances_PathsAreLegal(t *testing.T) {
	m := mustParse(t, example)
	res, err := m.Distances(m.Start)
	require.NoError(t, err)

	g := m.Grid()
	for idx := 0; idx < g.Size(); idx++ {
		p := g.Point(idx)
		d, ok := res.Distance(p)
		if !ok {
			continue
		}
		path, err := res.PathTo(p)
		require.NoError(t, err)
		require.Len(t, path, d+1)
		assert.Equal(t, m.Start, path[0])
		for i := 1; i < len(path); i++ {
			dx, dy := path[i].X-path[i-1].X, path[i].Y-path[i-1].Y
			assert.Equal(t, 1, dx*dx+dy*dy, "non-orthogonal step %v->%v", path[i-1], path[i])
			assert.True(t, m.CanStep(path[i-1], path[i]), "illegal climb %v->%v", path[i-1], path[i])
		}
	}
	d, _ := res.Distance(m.End)
	assert.Equal(t, 31, d)
}

func TestLowestPoints(t *testing.T) {
	m := mustParse(t, example)
	lows := m.LowestPoints()
	assert.Len(t, lows, 6)
	assert.Contains(t, lows, m.Start)
	for _, p := range lows {
		assert.Equal(t, elevation.Lowest, m.Elevation(p))
	}
}

func TestShortestFromLowest_MatchesEach(t *testing.T) {
	m := mustParse(t, example)

	multi, ok, err := m.ShortestFromLowest()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 29, multi)

	for _, workers := range []int{0, 1, 4} {
		each, ok, err := m.ShortestFromEach(context.Background(), m.LowestPoints(), workers)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, multi, each, "workers=%d", workers)
	}
}

func TestShortestFromEach_Errors(t *testing.T) {
	m := mustParse(t, example)
	_, _, err := m.ShortestFromEach(context.Background(), []gridgraph.Point{{X: 99, Y: 0}}, 2)
	assert.ErrorIs(t, err, elevation.ErrOutOfBounds)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, _, err = m.ShortestFromEach(ctx, m.LowestPoints(), 2)
	assert.ErrorIs(t, err, context.Canceled)

	_, ok, err := m.ShortestFromEach(context.Background(), nil, 2)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSolve_Example(t *testing.T) {
	for _, workers := range []int{1, 3} {
		ans, err := elevation.Solve(context.Background(), strings.NewReader(example), puzzle.Config{Workers: workers})
		require.NoError(t, err)
		assert.Equal(t, int64(31), ans.Part1)
		assert.Equal(t, int64(29), ans.Part2)
	}
}

func TestDOT_LabelsDistances(t *testing.T) {
	m := mustParse(t, "SbE\n")
	res, err := m.Distances(m.Start)
	require.NoError(t, err)

	dot, err := m.DOT(res)
	require.NoError(t, err)
	assert.Contains(t, dot, `"S 0"`)
	assert.Contains(t, dot, `"b 1"`)
	assert.Contains(t, dot, `"E -"`)
	assert.Contains(t, dot, "c0_0->c1_0")

	plain, err := m.DOT(nil)
	require.NoError(t, err)
	assert.Contains(t, plain, `"E"`)
}
