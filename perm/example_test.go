package perm_test

import (
	"fmt"

	"github.com/katalvlaran/lazycomb/perm"
	"github.com/katalvlaran/lazycomb/source"
)

// ExampleNew prints the permutations of three numbers in lexicographic order.
func ExampleNew() {
	g, err := perm.New(source.Of(1, 2, 3))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("total:", g.EstimateRemaining())
	_ = g.ForEachRemaining(func(p []int) { fmt.Println(p) })
	// Output:
	// total: 6
	// [1 2 3]
	// [1 3 2]
	// [2 1 3]
	// [2 3 1]
	// [3 1 2]
	// [3 2 1]
}
