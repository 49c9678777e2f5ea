package combo

import (
	"math/big"

	"github.com/katalvlaran/lazycomb/count"
)

var (
	one = big.NewInt(1)
	two = big.NewInt(2)
)

// nextCombination advances idx to its lexicographic successor among the
// strictly increasing r-tuples over 0..n-1. The caller guarantees a
// successor exists.
func nextCombination(idx []int, n int) {
	r := len(idx)
	for j := r - 1; j >= 0; j-- {
		if idx[j] < n-r+j {
			idx[j]++
			for l := j + 1; l < r; l++ {
				idx[l] = idx[l-1] + 1
			}

			return
		}
	}
}

// unrank returns the index tuple at lexicographic rank m (0-based) among the
// C(n, r) r-combinations of 0..n-1. It requires 0 ≤ m < C(n, r).
//
// Position i takes the smallest value c such that m is below the number of
// tuples starting with the already chosen prefix followed by c. Those block
// sizes are C(a, k) with a = n-1-c and k = r-1-i. One binomial is computed up
// front; after that every step updates the block in O(1) big-int operations:
// C(a-1, k) = C(a, k)·(a-k)/a when c moves on, and C(a-1, k-1) = C(a, k)·k/a
// when the next position starts. A split therefore costs O(n) of them.
func unrank(m *big.Int, n, r int) []int {
	idx := make([]int, r)
	if r == 0 {
		return idx
	}
	rem := new(big.Int).Set(m)
	tmp := new(big.Int)
	block := count.BigBinomial(n-1, r-1)
	c := 0
	for i := 0; i < r; i++ {
		k := r - 1 - i
		for block.Sign() > 0 && rem.Cmp(block) >= 0 {
			rem.Sub(rem, block)
			a := n - 1 - c
			block.Mul(block, tmp.SetInt64(int64(a-k)))
			block.Quo(block, tmp.SetInt64(int64(a)))
			c++
		}
		idx[i] = c
		if k > 0 {
			a := n - 1 - c
			block.Mul(block, tmp.SetInt64(int64(k)))
			block.Quo(block, tmp.SetInt64(int64(a)))
		}
		c++
	}

	return idx
}
