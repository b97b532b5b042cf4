package elevation_test

import (
	"fmt"

	"github.com/katalvlaran/aoc22/elevation"
)

// ExampleMap_ShortestPath solves the canonical heightmap both ways: from the
// marked start, and from the closest of all lowest cells.
func ExampleMap_ShortestPath() {
	m, err := elevation.ParseString(`Sabqponm
abcryxxl
accszExk
acctuvwj
abdefghi`)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	steps, ok, _ := m.ShortestPath(m.Start, m.End)
	fmt.Println("from S:", steps, ok)

	steps, ok, _ = m.ShortestFromLowest()
	fmt.Println("from any 'a':", steps, ok)
	// Output:
	// from S: 31 true
	// from any 'a': 29 true
}
