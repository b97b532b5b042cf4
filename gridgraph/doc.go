// Package gridgraph treats a rectangular 2D grid of integer cells as an
// implicit graph: every cell is a vertex and every pair of neighboring
// cells is a potential edge.
//
// What:
//
//   - GridGraph wraps a rectangular [][]int grid, deep-copied on construction.
//   - Neighbors are derived from Conn4 (N, E, S, W) or Conn8 (plus diagonals).
//   - The grid boundary is a hard wall: no wraparound, no out-of-bounds neighbor.
//   - ToDOT renders the grid, or any subset of its steps, as a Graphviz digraph.
//
// Why:
//
//   - Puzzle maps (elevation maps, caves, mazes) are grids first and graphs second.
//     Keeping the grid implicit avoids building O(W×H) vertex and edge objects.
//   - A GridGraph is immutable, so any number of searches may read it concurrently.
//
// Complexity:
//
//   - NewGridGraph: O(W×H) time and memory.
//   - Neighbors:    O(d), d = 4 or 8.
//   - CellsWhere:   O(W×H).
//   - ToDOT:        O(W×H×d).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
package gridgraph
