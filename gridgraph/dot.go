package gridgraph

import (
	"fmt"

	"github.com/awalterschulze/gographviz"
)

const dotGraphName = "grid"

// DOTOptions controls what ToDOT emits. Nil funcs fall back to defaults.
type DOTOptions struct {
	// Label returns the text shown inside the node for p. Defaults to the cell value.
	Label func(p Point) string
	// Step reports whether the directed edge from→to should be drawn. Defaults to every neighbor.
	Step func(from, to Point) bool
}

// nodeID formats the DOT identifier for cell p.
func nodeID(p Point) string {
	return fmt.Sprintf("c%d_%d", p.X, p.Y)
}

// ToDOT renders the GridGraph as a directed Graphviz graph. Each cell becomes a
// node pinned to its grid position; each allowed step between neighbors becomes
// an edge.
// Complexity: O(W×H×d) time, Memory: O(W×H×d).
func (gg *GridGraph) ToDOT(opts DOTOptions) (string, error) {
	label := opts.Label
	if label == nil {
		label = func(p Point) string { return fmt.Sprint(gg.Value(p)) }
	}
	step := opts.Step
	if step == nil {
		step = func(_, _ Point) bool { return true }
	}

	graph := gographviz.NewGraph()
	if err := graph.SetName(dotGraphName); err != nil {
		return "", err
	}
	if err := graph.SetDir(true); err != nil {
		return "", err
	}
	for attr, val := range map[string]string{"nodesep": "0.3", "ranksep": "0.3"} {
		if err := graph.AddAttr(dotGraphName, attr, val); err != nil {
			return "", fmt.Errorf("gridgraph: graph attribute %s: %w", attr, err)
		}
	}

	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			p := Point{X: x, Y: y}
			err := graph.AddNode(dotGraphName, nodeID(p), map[string]string{
				"label": fmt.Sprintf("%q", label(p)),
				"shape": "box",
				"pos":   fmt.Sprintf("\"%d,%d!\"", x, -y),
			})
			if err != nil {
				return "", fmt.Errorf("gridgraph: node %s: %w", p, err)
			}
		}
	}
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			from := Point{X: x, Y: y}
			for _, to := range gg.Neighbors(from) {
				if !step(from, to) {
					continue
				}
				if err := graph.AddEdge(nodeID(from), nodeID(to), true, nil); err != nil {
					return "", fmt.Errorf("gridgraph: edge %s->%s: %w", from, to, err)
				}
			}
		}
	}

	return graph.String(), nil
}
