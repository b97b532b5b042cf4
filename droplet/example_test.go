package droplet_test

import (
	"fmt"

	"github.com/katalvlaran/aoc22/droplet"
)

func ExampleExteriorSurfaceArea() {
	cubes := []droplet.Cube{{X: 1, Y: 1, Z: 1}, {X: 2, Y: 1, Z: 1}}
	fmt.Println(droplet.SurfaceArea(cubes), droplet.ExteriorSurfaceArea(cubes))
	// Output: 10 10
}
