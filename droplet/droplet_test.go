package droplet_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/brianvoe/gofakeit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc22/droplet"
	"github.com/katalvlaran/aoc22/puzzle"
)

const example = `2,2,2
1,2,2
3,2,2
2,1,2
2,3,2
2,2,1
2,2,3
2,2,4
2,2,6
1,2,5
3,2,5
2,1,5
2,3,5
`

func mustParse(t testing.TB, s string) []droplet.Cube {
	t.Helper()
	cubes, err := droplet.ParseString(s)
	require.NoError(t, err)

	return cubes
}

func TestParse(t *testing.T) {
	cubes := mustParse(t, example)
	require.Len(t, cubes, 13)
	assert.Equal(t, droplet.Cube{X: 2, Y: 2, Z: 2}, cubes[0])
	assert.Equal(t, "2,3,5", cubes[12].String())

	dup := mustParse(t, "1,1,1\n\n1,1,1\n2,1,1\n")
	assert.Len(t, dup, 2)

	for _, bad := range []string{"1,2\n", "1,2,3,4\n", "1,a,3\n", "1 2 3\n"} {
		_, err := droplet.ParseString(bad)
		assert.ErrorIs(t, err, droplet.ErrMalformedInput, "input %q", bad)
	}
}

func TestSurfaceArea(t *testing.T) {
	assert.Equal(t, 0, droplet.SurfaceArea(nil))
	assert.Equal(t, 6, droplet.SurfaceArea(mustParse(t, "1,1,1\n")))
	assert.Equal(t, 10, droplet.SurfaceArea(mustParse(t, "1,1,1\n2,1,1\n")))
	assert.Equal(t, 64, droplet.SurfaceArea(mustParse(t, example)))
}

func TestExteriorSurfaceArea(t *testing.T) {
	assert.Equal(t, 0, droplet.ExteriorSurfaceArea(nil))
	assert.Equal(t, 6, droplet.ExteriorSurfaceArea(mustParse(t, "-4,0,7\n")))
	assert.Equal(t, 58, droplet.ExteriorSurfaceArea(mustParse(t, example)))
}

// hollowCube is a 3x3x3 block with its center removed.
func hollowCube() []droplet.Cube {
	var cubes []droplet.Cube
	for x := 0; x < 3; x++ {
		for y := 0; y < 3; y++ {
			for z := 0; z < 3; z++ {
				if x == 1 && y == 1 && z == 1 {
					continue
				}
				cubes = append(cubes, droplet.Cube{X: x, Y: y, Z: z})
			}
		}
	}
	return cubes
}

func TestExteriorSurfaceArea_TrappedPocket(t *testing.T) {
	cubes := hollowCube()
	assert.Equal(t, 60, droplet.SurfaceArea(cubes))
	assert.Equal(t, 54, droplet.ExteriorSurfaceArea(cubes))
}

// TestSurfaces_RandomBoxes checks seeded solid boxes, where both areas
// equal 2(ab+bc+ca), and random clouds, where exterior never exceeds total.
func TestSurfaces_RandomBoxes(t *testing.T) {
	gofakeit.Seed(18)
	for round := 0; round < 30; round++ {
		a, b, c := gofakeit.Number(1, 5), gofakeit.Number(1, 5), gofakeit.Number(1, 5)
		var sb strings.Builder
		for x := 0; x < a; x++ {
			for y := 0; y < b; y++ {
				for z := 0; z < c; z++ {
					fmt.Fprintf(&sb, "%d,%d,%d\n", x, y, z)
				}
			}
		}
		cubes := mustParse(t, sb.String())
		want := 2 * (a*b + b*c + c*a)
		assert.Equal(t, want, droplet.SurfaceArea(cubes), "box %dx%dx%d", a, b, c)
		assert.Equal(t, want, droplet.ExteriorSurfaceArea(cubes), "box %dx%dx%d", a, b, c)

		var cloud []droplet.Cube
		for i := gofakeit.Number(1, 60); i > 0; i-- {
			cloud = append(cloud, droplet.Cube{
				X: gofakeit.Number(0, 5), Y: gofakeit.Number(0, 5), Z: gofakeit.Number(0, 5),
			})
		}
		assert.LessOrEqual(t, droplet.ExteriorSurfaceArea(cloud), droplet.SurfaceArea(cloud))
	}
}

func TestSolve_Example(t *testing.T) {
	ans, err := droplet.Solve(context.Background(), strings.NewReader(example), puzzle.DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, int64(64), ans.Part1)
	assert.Equal(t, int64(58), ans.Part2)

	_, err = droplet.Solve(context.Background(), strings.NewReader("x\n"), puzzle.DefaultConfig())
	assert.ErrorIs(t, err, droplet.ErrMalformedInput)
}
