// Package elevation solves the hill-climbing puzzle: find the fewest steps
// across a heightmap from a start marker to an end marker, where each step
// goes to an orthogonal neighbor at most one level higher (any drop is fine).
//
// Input is one line per row, one byte per column. Letters 'a'..'z' are
// elevations 0..25; 'S' marks the start (elevation 'a') and 'E' the end
// (elevation 'z'). Exactly one of each is required.
//
// The search itself is bfs.BFS over the gridgraph.GridGraph built here, with
// the climb rule passed as a step filter. A Map is read-only after Parse, so
// many searches from different starts can share it, sequentially or through
// ShortestFromEach.
package elevation
