// Package count provides overflow-safe cardinality math for combinatorial
// enumeration: factorials, binomial coefficients and their sums.
//
// Every function returns a Count, a tagged result that is either an exact
// uint64 value or Unbounded. Arithmetic overflow is never reported as an
// error; it saturates to Unbounded instead:
//
//	c := count.Binomial(64, 32)          // exact: 1832624140942590534
//	u := count.Factorial(25)             // Unbounded
//	fmt.Println(c, u, u.Sub(c))          // 1832624140942590534 unbounded unbounded
//
// Counts are reporting values. Generators use them to answer "how much is
// left?" for a consumer or scheduler and never to decide what to produce.
//
// Complexity:
//   - Factorial(n):          O(min(n, 21))
//   - Binomial(n, k):        O(min(k, n-k))
//   - BinomialSum(n, lo, hi): O((hi-lo+1) * n/2) worst case
package count
