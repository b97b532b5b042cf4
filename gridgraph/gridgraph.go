// Package gridgraph provides utilities to treat a 2D grid of integer cell values
// as a graph. It supports:
//
//   - Four- or eight-connectivity (Conn4 or Conn8)
//   - Bounds-checked neighbor enumeration
//   - Row-major index mapping for flat per-cell state
//   - Rendering to Graphviz DOT
package gridgraph

var (
	conn4Offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	conn8Offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// NewGridGraph constructs a GridGraph from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if grid has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(values [][]int, opts GridOptions) (*GridGraph, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	// Deep copy to prevent external mutation
	cells := make([][]int, h)
	for y := 0; y < h; y++ {
		cells[y] = make([]int, w)
		copy(cells[y], values[y])
	}
	offsets := conn4Offsets
	if opts.Conn == Conn8 {
		offsets = conn8Offsets
	}
	gg := &GridGraph{
		Width:           w,
		Height:          h,
		CellValues:      cells,
		Conn:            opts.Conn,
		neighborOffsets: offsets,
	}

	return gg, nil
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// Contains reports whether p lies within the grid boundaries.
func (gg *GridGraph) Contains(p Point) bool {
	return gg.InBounds(p.X, p.Y)
}

// Value returns the cell value at p. The caller guarantees p is in bounds.
func (gg *GridGraph) Value(p Point) int {
	return gg.CellValues[p.Y][p.X]
}

// NeighborOffsets returns the precomputed neighbor offsets slice.
// Should be used in all adjacency traversals to avoid branching.
// Complexity: O(1).
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.neighborOffsets
}

// Neighbors returns the in-bounds neighbors of p in offset order.
// Complexity: O(d).
func (gg *GridGraph) Neighbors(p Point) []Point {
	out := make([]Point, 0, len(gg.neighborOffsets))
	for _, d := range gg.neighborOffsets {
		q := p.Add(d[0], d[1])
		if gg.Contains(q) {
			out = append(out, q)
		}
	}

	return out
}

// Size returns the number of cells, W×H.
func (gg *GridGraph) Size() int {
	return gg.Width * gg.Height
}

// Index maps p to a row‑major index: y*Width + x.
// Complexity: O(1).
func (gg *GridGraph) Index(p Point) int {
	return p.Y*gg.Width + p.X
}

// Coordinate converts a row‑major index back to (x,y).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}

// Point converts a row-major index back to a Point.
func (gg *GridGraph) Point(idx int) Point {
	x, y := gg.Coordinate(idx)
	return Point{X: x, Y: y}
}

// CellsWhere returns every cell for which pred holds, in row-major order.
// Complexity: O(W×H).
func (gg *GridGraph) CellsWhere(pred func(p Point, v int) bool) []Point {
	var out []Point
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			p := Point{X: x, Y: y}
			if pred(p, gg.CellValues[y][x]) {
				out = append(out, p)
			}
		}
	}

	return out
}
