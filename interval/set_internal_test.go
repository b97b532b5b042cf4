package interval

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate_Violations(t *testing.T) {
	cases := []struct {
		name string
		set  Set[int]
		want error
	}{
		{"Empty", Set[int]{ivs: []Interval[int]{{Start: 3, End: 1}}}, ErrEmptyInterval},
		{"Unsorted", Set[int]{ivs: []Interval[int]{{Start: 5, End: 6}, {Start: 0, End: 1}}}, ErrUnsorted},
		{"Overlap", Set[int]{ivs: []Interval[int]{{Start: 0, End: 5}, {Start: 5, End: 6}}}, ErrOverlap},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.ErrorIs(t, tc.set.Validate(), tc.want)
		})
	}
	assert.NoError(t, Set[int]{}.Validate())
}
