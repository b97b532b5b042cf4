// Package bfs provides tunable options and error definitions
// for breadth‐first search over a gridgraph.GridGraph.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/aoc22/gridgraph"
)

// Sentinel errors for BFS execution.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("bfs: grid is nil")

	// ErrNoSources is returned when BFS is started without any source cell.
	ErrNoSources = errors.New("bfs: at least one source is required")

	// ErrSourceOutOfBounds is returned when a source lies outside the grid.
	ErrSourceOutOfBounds = errors.New("bfs: source out of bounds")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrUnreached is returned by PathTo for cells the search never reached.
	ErrUnreached = errors.New("bfs: cell not reached")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines. Checked once per layer.
	Ctx context.Context

	// StepFilter can forbid individual steps by returning false.
	// Called for each in-bounds step from → to whose target is still unreached.
	StepFilter func(from, to gridgraph.Point) bool

	// OnVisit is called when a cell is discovered, with its final distance.
	// If it returns an error, BFS aborts and propagates that error.
	OnVisit func(p gridgraph.Point, depth int) error

	// OnLayer is called once per frontier before it is expanded.
	OnLayer func(depth, size int)

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	target    gridgraph.Point
	hasTarget bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with sane defaults:
//   - Context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no filtering (every in-bounds step allowed)
//   - no-op hooks (OnVisit, OnLayer)
//   - no target.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:        context.Background(),
		StepFilter: func(_, _ gridgraph.Point) bool { return true },
		OnVisit:    func(gridgraph.Point, int) error { return nil },
		OnLayer:    func(int, int) {},
		MaxDepth:   0,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithStepFilter skips steps when fn returns false.
func WithStepFilter(fn func(from, to gridgraph.Point) bool) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.StepFilter = fn
		}
	}
}

// WithOnVisit registers a callback to run on discovery; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(p gridgraph.Point, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithOnLayer registers a callback that observes each frontier's depth and size.
func WithOnLayer(fn func(depth, size int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnLayer = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		default:
			o.MaxDepth = d
		}
	}
}

// WithTarget stops the search as soon as p has been reached.
// Its distance is final at that moment; other cells may remain unreached.
func WithTarget(p gridgraph.Point) Option {
	return func(o *BFSOptions) {
		o.target = p
		o.hasTarget = true
	}
}

// unreached marks a cell with no recorded distance.
const unreached = -1

// Result is the distance map of a single search. It is created fresh per
// BFS call and only mutated by that call.
type Result struct {
	grid   *gridgraph.GridGraph
	depth  []int
	parent []int
	order  []gridgraph.Point
	layers int
}

// Distance returns the recorded distance of p, or false when p was never
// reached or lies outside the grid.
func (r *Result) Distance(p gridgraph.Point) (int, bool) {
	if !r.grid.Contains(p) {
		return 0, false
	}
	d := r.depth[r.grid.Index(p)]
	if d == unreached {
		return 0, false
	}

	return d, true
}

// Reached reports whether p received a distance.
func (r *Result) Reached(p gridgraph.Point) bool {
	_, ok := r.Distance(p)
	return ok
}

// Layers returns the number of distance layers discovered (max distance + 1).
func (r *Result) Layers() int {
	return r.layers
}

// Order returns a copy of the discovery sequence.
func (r *Result) Order() []gridgraph.Point {
	out := make([]gridgraph.Point, len(r.order))
	copy(out, r.order)

	return out
}

// PathTo reconstructs a shortest path from the nearest source to dest,
// both ends included. Returns ErrUnreached if dest was not reached.
func (r *Result) PathTo(dest gridgraph.Point) ([]gridgraph.Point, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("%w: %v", ErrUnreached, dest)
	}
	// build reversed path
	var path []gridgraph.Point
	for at := r.grid.Index(dest); at != unreached; at = r.parent[at] {
		path = append(path, r.grid.Point(at))
	}
	// reverse to get source → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
