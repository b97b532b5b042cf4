package sensor

import (
	"context"
	"runtime"

	"github.com/tevino/abool"
	"golang.org/x/sync/errgroup"
)

// chunksPerWorker keeps chunks small enough that an early gap lets most of
// the later work stop.
const chunksPerWorker = 8

// cancelCheckRows is how often a chunk polls its stop conditions.
const cancelCheckRows = 256

// FindGapParallel is FindGap with rows split into contiguous chunks scanned
// by up to workers goroutines (GOMAXPROCS when workers < 1). Each chunk has
// a found flag; a chunk stops early once any chunk before it has found a
// gap, so the lowest-row gap is always scanned to completion and returned.
func FindGapParallel(ctx context.Context, sensors []Sensor, areaSize, workers int) (Point, bool, error) {
	if areaSize < 0 {
		return Point{}, false, nil
	}
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}
	rows := areaSize + 1
	chunks := min(workers*chunksPerWorker, rows)
	size := (rows + chunks - 1) / chunks
	chunks = (rows + size - 1) / size

	found := make([]*abool.AtomicBool, chunks)
	gaps := make([]Point, chunks)
	for i := range found {
		found[i] = abool.New()
	}
	earlierFound := func(c int) bool {
		for i := 0; i < c; i++ {
			if found[i].IsSet() {
				return true
			}
		}
		return false
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for c := 0; c < chunks; c++ {
		c := c // per-iteration copy (go directive < 1.22)
		from, to := c*size, min((c+1)*size-1, areaSize)
		g.Go(func() error {
			for y := from; y <= to; y++ {
				if (y-from)%cancelCheckRows == 0 {
					if err := ctx.Err(); err != nil {
						return err
					}
					if earlierFound(c) {
						return nil
					}
				}
				if p, ok := gapInRow(sensors, areaSize, y); ok {
					gaps[c] = p
					found[c].Set()
					return nil
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Point{}, false, err
	}

	for c := range found {
		if found[c].IsSet() {
			return gaps[c], true, nil
		}
	}

	return Point{}, false, nil
}
