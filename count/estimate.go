package count

import (
	"math/big"
	"math/bits"
)

// Factorial returns n!, or Unbounded once the product leaves uint64 (n > 20).
// Negative n yields 0; 0! is 1.
func Factorial(n int) Count {
	if n < 0 {
		return Count{}
	}
	f := Exact(1)
	for i := 2; i <= n && !f.unbounded; i++ {
		f = f.Mul(Exact(uint64(i)))
	}

	return f
}

// Binomial returns C(n, k). Out-of-range arguments (k < 0, k > n) yield 0.
//
// The multiplicative recurrence b_i = b_{i-1}·(n-k+i)/i keeps a 128-bit
// intermediate, so the division is always exact and overflow is reported
// only when the result itself does not fit: b_i is non-decreasing in i.
func Binomial(n, k int) Count {
	if n < 0 || k < 0 || k > n {
		return Count{}
	}
	if k > n-k {
		k = n - k
	}
	b := uint64(1)
	for i := 1; i <= k; i++ {
		hi, lo := bits.Mul64(b, uint64(n-k+i))
		if hi >= uint64(i) {
			return Unbounded
		}
		b, _ = bits.Div64(hi, lo, uint64(i))
	}

	return Exact(b)
}

// BinomialSum returns Σ C(n, k) for k in [lo, hi], clamped to [0, n].
// An empty range yields 0.
func BinomialSum(n, lo, hi int) Count {
	if lo < 0 {
		lo = 0
	}
	if hi > n {
		hi = n
	}
	var sum Count
	for k := lo; k <= hi; k++ {
		sum = sum.Add(Binomial(n, k))
		if sum.unbounded {
			return Unbounded
		}
	}

	return sum
}

// CombinationCountAllSizes returns Σ C(n, k) for k = 1..n-1, i.e. the
// number of non-empty proper subsets of an n-element set (2^n - 2 for n ≥ 1).
func CombinationCountAllSizes(n int) Count {
	return BinomialSum(n, 1, n-1)
}

// BigBinomial returns C(n, k) exactly. Out-of-range arguments yield 0.
func BigBinomial(n, k int) *big.Int {
	if n < 0 || k < 0 || k > n {
		return new(big.Int)
	}

	return new(big.Int).Binomial(int64(n), int64(k))
}
