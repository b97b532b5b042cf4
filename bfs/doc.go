// Package bfs provides a layered breadth-first search over a gridgraph.GridGraph,
// returning unit-step shortest distances, parent links, and visit order.
//
// What
//
//   - Expand cells layer by layer from one or more source cells.
//   - Each layer (the frontier) holds every cell at the current distance.
//   - A cell's distance is written once, when it is first discovered, and never
//     overwritten. Several predecessors reaching the same cell in one layer
//     therefore produce a single visit.
//   - Returns a Result (a per-search distance map) containing:
//   - Distance: cell → distance (steps) from the nearest source
//   - PathTo:   reconstructed shortest path via parent links
//   - Order:    discovery sequence
//   - Supports functional hooks:
//   - OnVisit (when a cell is discovered; may abort with an error)
//   - OnLayer (once per frontier, before it is expanded)
//   - Allows filtering of individual steps via WithStepFilter. This is where
//     direction-dependent rules such as "climb at most one level" live.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//   - Stops early once a WithTarget cell has been reached.
//
// Why
//
//   - Every step has unit weight, so a plain layered BFS yields shortest paths
//     without a priority queue.
//   - Multi-source seeding answers "closest of many starts" in a single pass.
//
// Determinism
//
//	Frontiers are expanded in discovery order and neighbors in the grid's
//	offset order (N, E, S, W for Conn4), so Order is fully reproducible.
//
// Concurrency
//
//	A GridGraph is read-only. Any number of BFS calls may share one grid;
//	each call owns its Result.
//
// Complexity (N = W×H cells, d = neighbors per cell)
//
//   - Time:   O(N·d)
//   - Memory: O(N) for distances, parents and the two frontier buffers
//
// Usage
//
//	res, err := bfs.BFS(grid, []gridgraph.Point{start},
//	    bfs.WithStepFilter(func(from, to gridgraph.Point) bool {
//	        return grid.Value(to) <= grid.Value(from)+1
//	    }),
//	    bfs.WithTarget(end),
//	)
//	if err != nil {
//	    // ErrGridNil, ErrNoSources, ErrSourceOutOfBounds, ErrOptionViolation,
//	    // context errors, or a wrapped OnVisit error
//	}
//	if d, ok := res.Distance(end); ok { ... }
//
// Errors
//
//   - ErrGridNil            if the grid pointer is nil.
//   - ErrNoSources          if no source cell is given.
//   - ErrSourceOutOfBounds  if a source lies outside the grid.
//   - ErrOptionViolation    if invalid Option (e.g. negative MaxDepth).
//   - ErrUnreached          from PathTo when the cell was never reached.
//   - Wrapped user-supplied hook errors from OnVisit.
package bfs
