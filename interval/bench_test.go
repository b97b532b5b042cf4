package interval_test

import (
	"testing"

	"github.com/katalvlaran/aoc22/interval"
)

// BenchmarkSubtractAll removes 32 staggered intervals from one wide row,
// the shape of a single coverage row scan.
func BenchmarkSubtractAll(b *testing.B) {
	removals := make([]interval.Interval[int], 32)
	for i := range removals {
		c := i * 125000
		removals[i] = interval.New(c-60000, c+60000)
	}
	row := interval.NewSet(interval.New(0, 4000000))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = row.SubtractAll(removals...)
	}
}
