// Package lazycomb is a small toolkit for enumerating combinations and
// permutations on demand, without ever materializing the whole space.
//
// What is lazycomb?
//
//	A generic, allocation-conscious library that brings together:
//		• Overflow-safe counting: n!, C(n,k) and sums that saturate to "unbounded"
//		• Combinations: every r-subset in lexicographic order, splittable at any rank
//		• All sizes: r = 1..n chained, split by whole sizes
//		• Permutations: every ordering in lexicographic order, sequential only
//		• Adapters: range-over-func, Collect, Stride, Partition
//
// Every generator is one lazy.Sequence: pull (HasNext/Next) and push
// (TryAdvance/ForEachRemaining) consumption on the same cursor, plus TrySplit
// for handing a disjoint block of the remaining values to another goroutine.
// A generator watches the length of its source and fails for good with
// lazy.ErrConcurrentModification if it changes mid-enumeration.
//
// Packages:
//
//	count/  - saturating Count type, Factorial, Binomial, BinomialSum
//	source/ - the Source[T] input contract, Slice, List, Indices, Runes
//	lazy/   - Sequence[T], State, Guard and adapters
//	combo/  - Generator (fixed r) and AllSizes (r = 1..n)
//	perm/   - Generator over all n! orderings
//
// Quick example:
//
//	g, _ := combo.New(source.Of("A", "B", "C"), 2)
//	for c, err := range lazy.All(g) {
//		...	// [A B] [A C] [B C]
//	}
//
// The combos command (cmd/combos) puts the same generators behind a CLI.
//
//	go get github.com/katalvlaran/lazycomb
package lazycomb
