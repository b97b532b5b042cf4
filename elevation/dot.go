package elevation

import (
	"fmt"

	"github.com/katalvlaran/aoc22/bfs"
	"github.com/katalvlaran/aoc22/gridgraph"
)

// DOT renders the map as a Graphviz digraph with one edge per legal step.
// Each node shows its elevation letter and, when res is non-nil and the cell
// was reached, its distance. The start and end cells keep their markers.
func (m *Map) DOT(res *bfs.Result) (string, error) {
	return m.grid.ToDOT(gridgraph.DOTOptions{
		Label: func(p gridgraph.Point) string {
			letter := string(rune('a' + m.Elevation(p)))
			switch p {
			case m.Start:
				letter = "S"
			case m.End:
				letter = "E"
			}
			if res == nil {
				return letter
			}
			if d, ok := res.Distance(p); ok {
				return fmt.Sprintf("%s %d", letter, d)
			}
			return letter + " -"
		},
		Step: m.CanStep,
	})
}
