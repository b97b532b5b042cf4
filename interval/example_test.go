package interval_test

import (
	"fmt"

	"github.com/katalvlaran/aoc22/interval"
)

// ExampleSet_Subtract punches two holes into a row of width 21; the second
// removal splits the remaining interval in two.
func ExampleSet_Subtract() {
	row := interval.NewSet(interval.New(0, 20))

	row = row.Subtract(interval.New(-1, 5))
	fmt.Println(row)
	row = row.Subtract(interval.New(10, 12))
	fmt.Println(row, "uncovered:", row.Size())

	// Output:
	// {[6, 20]}
	// {[6, 9] [13, 20]} uncovered: 12
}
