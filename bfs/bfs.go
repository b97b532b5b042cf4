// Package bfs provides breadth-first search over a gridgraph.GridGraph,
// returning unit-step shortest-path distances, parent links, and visit order.
//
// BFS expands whole layers in increasing distance from its sources,
// with optional hooks, depth limiting, step filtering and early exit.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/aoc22/gridgraph"
)

// walker encapsulates mutable BFS state.
type walker struct {
	grid     *gridgraph.GridGraph
	opts     BFSOptions
	ctx      context.Context
	frontier []int // row-major indices at the current depth
	next     []int // buffer for the following layer
	target   int
	done     bool
	res      *Result
}

// BFS runs breadth-first search on g from every cell in sources at once,
// applying any number of functional Options. Duplicate sources are visited once.
// Returns ErrGridNil, ErrNoSources or ErrSourceOutOfBounds for invalid input,
// ErrOptionViolation for bad options, the context error on cancellation,
// or any user-supplied hook error. On abort the partial Result is returned
// alongside the error.
func BFS(g *gridgraph.GridGraph, sources []gridgraph.Point, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// Validate sources
	if len(sources) == 0 {
		return nil, ErrNoSources
	}
	for _, s := range sources {
		if !g.Contains(s) {
			return nil, fmt.Errorf("%w: %v", ErrSourceOutOfBounds, s)
		}
	}

	// Prepare walker
	n := g.Size()
	w := &walker{
		grid:     g,
		opts:     o,
		ctx:      o.Ctx,
		frontier: make([]int, 0, len(sources)),
		next:     make([]int, 0, len(sources)),
		target:   unreached,
		res: &Result{
			grid:   g,
			depth:  make([]int, n),
			parent: make([]int, n),
			order:  make([]gridgraph.Point, 0, n),
		},
	}
	for i := range w.res.depth {
		w.res.depth[i] = unreached
		w.res.parent[i] = unreached
	}
	if o.hasTarget && g.Contains(o.target) {
		w.target = g.Index(o.target)
	}

	// Seed the first frontier (no parents)
	for _, s := range sources {
		i := g.Index(s)
		if w.res.depth[i] != unreached {
			continue
		}
		if err := w.discover(i, 0, unreached); err != nil {
			return w.res, err
		}
		if w.done {
			return w.res, nil
		}
	}

	// Main loop
	return w.res, w.loop()
}

// discover records i at depth d with its parent, appends it to the visit
// order and to the next frontier, and calls OnVisit.
func (w *walker) discover(i, d, parent int) error {
	w.res.depth[i] = d
	w.res.parent[i] = parent
	if d+1 > w.res.layers {
		w.res.layers = d + 1
	}
	p := w.grid.Point(i)
	w.res.order = append(w.res.order, p)
	if d == 0 {
		w.frontier = append(w.frontier, i)
	} else {
		w.next = append(w.next, i)
	}
	if err := w.opts.OnVisit(p, d); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %v: %w", p, err)
	}
	if i == w.target {
		w.done = true
	}

	return nil
}

// loop expands frontiers until empty, target reached, error, or cancellation.
func (w *walker) loop() error {
	for depth := 0; len(w.frontier) > 0; depth++ {
		// cancellation check (once per layer)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		w.opts.OnLayer(depth, len(w.frontier))
		if w.opts.MaxDepth > 0 && depth >= w.opts.MaxDepth {
			return nil
		}

		w.next = w.next[:0]
		if err := w.expand(depth); err != nil {
			return err
		}
		if w.done {
			return nil
		}
		// double-buffer swap: the old frontier becomes the next scratch buffer
		w.frontier, w.next = w.next, w.frontier
	}

	return nil
}

// expand discovers every unreached, allowed neighbor of the current frontier.
func (w *walker) expand(depth int) error {
	offsets := w.grid.NeighborOffsets()
	for _, u := range w.frontier {
		from := w.grid.Point(u)
		for _, d := range offsets {
			to := from.Add(d[0], d[1])
			if !w.grid.Contains(to) {
				continue
			}
			v := w.grid.Index(to)
			// first write wins
			if w.res.depth[v] != unreached {
				continue
			}
			if !w.opts.StepFilter(from, to) {
				continue
			}
			if err := w.discover(v, depth+1, u); err != nil {
				return err
			}
			if w.done {
				return nil
			}
		}
	}

	return nil
}
