package puzzle_test

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc22/puzzle"
)

func TestReadLines(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []string
	}{
		{"Empty", "", nil},
		{"NoTrailingNewline", "a\nb", []string{"a", "b"}},
		{"CRLF", "a\r\nb\r\n", []string{"a", "b"}},
		{"TrailingBlanks", "a\n\nb\n\n  \n", []string{"a", "", "b"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := puzzle.ReadLines(strings.NewReader(tc.in))
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestInputPaths(t *testing.T) {
	assert.Equal(t, filepath.Join("inputs", "input12.txt"), puzzle.InputPath("inputs", 12))
	assert.Equal(t, filepath.Join("inputs", "example15.txt"), puzzle.ExamplePath("inputs", 15))
}
