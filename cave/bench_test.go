package cave_test

import (
	"fmt"
	"strings"
	"testing"
)

// BenchmarkFill_Floor pours a full floored pile over a comb of ledges.
func BenchmarkFill_Floor(b *testing.B) {
	var sb strings.Builder
	for i := 0; i < 20; i++ {
		fmt.Fprintf(&sb, "%d,%d -> %d,%d\n", 470+3*i, 20+i%7, 471+3*i, 20+i%7)
	}
	base := mustParse(b, sb.String())
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c := base.Clone()
		c.AddFloor()
		_ = c.Fill()
	}
}
