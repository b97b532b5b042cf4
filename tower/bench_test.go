package tower_test

import (
	"testing"

	"github.com/katalvlaran/aoc22/tower"
)

func BenchmarkHeightAfter_LongRun(b *testing.B) {
	jets := mustParse(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tower.HeightAfter(jets, tower.LongRun); err != nil {
			b.Fatal(err)
		}
	}
}
