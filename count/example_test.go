package count_test

import (
	"fmt"

	"github.com/katalvlaran/lazycomb/count"
)

// ExampleBinomial shows exact and saturated coefficients side by side.
func ExampleBinomial() {
	fmt.Println(count.Binomial(5, 2))
	fmt.Println(count.Binomial(67, 33))
	fmt.Println(count.Binomial(68, 34))
	// Output:
	// 10
	// 14226520737620288370
	// unbounded
}

// ExampleCount_Sub demonstrates how a remaining-size estimate behaves once
// the total saturated.
func ExampleCount_Sub() {
	total := count.Factorial(30)
	produced := count.Exact(1_000_000)
	fmt.Println(total.Sub(produced), total.Sub(produced).Int64())
	// Output:
	// unbounded 9223372036854775807
}
