package elevation_test

import (
	"context"
	"strings"
	"testing"

	"github.com/katalvlaran/aoc22/elevation"
)

// bigMap tiles a slope so that the end sits at the far corner of a 160×41 map.
func bigMap(b *testing.B) *elevation.Map {
	b.Helper()
	var sb strings.Builder
	const w, h = 160, 41
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			switch {
			case x == 0 && y == 0:
				sb.WriteByte('S')
			case x == w-1 && y == h-1:
				sb.WriteByte('E')
			default:
				sb.WriteByte(byte('a' + (x*25)/(w-1)))
			}
		}
		sb.WriteByte('\n')
	}
	m, err := elevation.ParseString(sb.String())
	if err != nil {
		b.Fatal(err)
	}

	return m
}

func BenchmarkShortestFromLowest(b *testing.B) {
	m := bigMap(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = m.ShortestFromLowest()
	}
}

func BenchmarkShortestFromEach(b *testing.B) {
	m := bigMap(b)
	starts := m.LowestPoints()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = m.ShortestFromEach(context.Background(), starts, 4)
	}
}
