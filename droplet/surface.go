package droplet

func index(cubes []Cube) map[Cube]struct{} {
	set := make(map[Cube]struct{}, len(cubes))
	for _, c := range cubes {
		set[c] = struct{}{}
	}

	return set
}

// SurfaceArea returns the number of faces not shared by two cubes.
func SurfaceArea(cubes []Cube) int {
	lava := index(cubes)
	area := 0
	for c := range lava {
		for _, n := range c.Neighbors() {
			if _, ok := lava[n]; !ok {
				area++
			}
		}
	}

	return area
}

// bounds returns the bounding box of cubes grown by one on every side, so
// the outer shell is air that connects all around the droplet.
func bounds(cubes []Cube) box {
	b := box{lo: cubes[0], hi: cubes[0]}
	for _, c := range cubes[1:] {
		b.lo = Cube{X: min(b.lo.X, c.X), Y: min(b.lo.Y, c.Y), Z: min(b.lo.Z, c.Z)}
		b.hi = Cube{X: max(b.hi.X, c.X), Y: max(b.hi.Y, c.Y), Z: max(b.hi.Z, c.Z)}
	}
	b.lo = Cube{X: b.lo.X - 1, Y: b.lo.Y - 1, Z: b.lo.Z - 1}
	b.hi = Cube{X: b.hi.X + 1, Y: b.hi.Y + 1, Z: b.hi.Z + 1}

	return b
}

// ExteriorSurfaceArea returns the number of lava faces that outside air can
// touch. Air is flooded breadth-first from a corner of the grown bounding
// box; each lava neighbor met along the way is one exterior face.
func ExteriorSurfaceArea(cubes []Cube) int {
	if len(cubes) == 0 {
		return 0
	}
	lava := index(cubes)
	b := bounds(cubes)

	seen := map[Cube]struct{}{b.lo: {}}
	queue := []Cube{b.lo}
	area := 0
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, n := range cur.Neighbors() {
			if !b.contains(n) {
				continue
			}
			if _, ok := lava[n]; ok {
				area++
				continue
			}
			if _, ok := seen[n]; ok {
				continue
			}
			seen[n] = struct{}{}
			queue = append(queue, n)
		}
	}

	return area
}
