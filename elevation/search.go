package elevation

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/aoc22/bfs"
	"github.com/katalvlaran/aoc22/gridgraph"
)

// Elevation returns the height of p, 0..25. The caller guarantees bounds.
func (m *Map) Elevation(p gridgraph.Point) int {
	return m.grid.Value(p)
}

// CanStep reports whether a single step from → to is legal: to must be at
// most one level above from. Neighborhood is not checked here.
func (m *Map) CanStep(from, to gridgraph.Point) bool {
	return m.grid.Value(to) <= m.grid.Value(from)+1
}

// checkBounds returns ErrOutOfBounds for the first point outside the map.
func (m *Map) checkBounds(ps ...gridgraph.Point) error {
	for _, p := range ps {
		if !m.grid.Contains(p) {
			return fmt.Errorf("%w: %v", ErrOutOfBounds, p)
		}
	}
	return nil
}

// shortest runs one search from sources and reports the distance to end.
func (m *Map) shortest(ctx context.Context, sources []gridgraph.Point, end gridgraph.Point) (int, bool, error) {
	res, err := bfs.BFS(m.grid, sources,
		bfs.WithContext(ctx),
		bfs.WithStepFilter(m.CanStep),
		bfs.WithTarget(end),
	)
	if err != nil {
		return 0, false, err
	}
	d, ok := res.Distance(end)

	return d, ok, nil
}

// ShortestPath returns the fewest legal steps from start to end. An
// unreachable end is reported as ok == false with a nil error; only points
// outside the map are errors.
func (m *Map) ShortestPath(start, end gridgraph.Point) (steps int, ok bool, err error) {
	if err := m.checkBounds(start, end); err != nil {
		return 0, false, err
	}

	return m.shortest(context.Background(), []gridgraph.Point{start}, end)
}

// Distances returns the full distance map from start.
func (m *Map) Distances(start gridgraph.Point) (*bfs.Result, error) {
	if err := m.checkBounds(start); err != nil {
		return nil, err
	}

	return bfs.BFS(m.grid, []gridgraph.Point{start}, bfs.WithStepFilter(m.CanStep))
}

// LowestPoints returns every cell at elevation 'a', in row-major order.
func (m *Map) LowestPoints() []gridgraph.Point {
	return m.grid.CellsWhere(func(_ gridgraph.Point, v int) bool { return v == Lowest })
}

// ShortestFromLowest returns the fewest steps to End from whichever lowest
// cell is closest. A single multi-source search seeds every lowest cell at
// distance 0, which gives the same minimum as searching from each one.
func (m *Map) ShortestFromLowest() (int, bool, error) {
	return m.shortest(context.Background(), m.LowestPoints(), m.End)
}

// ShortestFromEach runs one independent search per start, at most workers
// at a time, and returns the minimum distance to End over the starts that
// reach it. The Map is shared read-only; each search owns its distance map.
func (m *Map) ShortestFromEach(ctx context.Context, starts []gridgraph.Point, workers int) (int, bool, error) {
	if err := m.checkBounds(starts...); err != nil {
		return 0, false, err
	}
	if workers < 1 {
		workers = 1
	}

	var (
		mu    sync.Mutex
		best  int
		found bool
	)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, s := range starts {
		s := s // per-iteration copy (go directive < 1.22)
		g.Go(func() error {
			d, ok, err := m.shortest(ctx, []gridgraph.Point{s}, m.End)
			if err != nil || !ok {
				return err
			}
			mu.Lock()
			if !found || d < best {
				best, found = d, true
			}
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, false, err
	}

	return best, found, nil
}
