package droplet_test

import (
	"testing"

	"github.com/katalvlaran/aoc22/droplet"
)

// BenchmarkExteriorSurfaceArea floods around a 20^3 hollow shell.
func BenchmarkExteriorSurfaceArea(b *testing.B) {
	const n = 20
	var cubes []droplet.Cube
	for x := 0; x < n; x++ {
		for y := 0; y < n; y++ {
			for z := 0; z < n; z++ {
				if x == 0 || y == 0 || z == 0 || x == n-1 || y == n-1 || z == n-1 {
					cubes = append(cubes, droplet.Cube{X: x, Y: y, Z: z})
				}
			}
		}
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = droplet.ExteriorSurfaceArea(cubes)
	}
}
