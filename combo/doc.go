// Package combo enumerates combinations of a source.Source lazily, without
// materializing the combinatorial space.
//
// Two generators are provided, both implementing lazy.Sequence[[]T]:
//
//   - Generator: every r-element combination, in lexicographic order of the
//     strictly increasing index tuples. For n=3, r=2 the index tuples are
//     (0,1), (0,2), (1,2). TrySplit halves the remaining range exactly.
//
//   - AllSizes: every combination of every size r = 1..n, all r=1 values
//     first, then r=2, and so on up to the whole source. TrySplit is coarse:
//     it hands a suffix of the not-yet-started sizes to the new sibling and
//     never splits inside one r.
//
// Splitting:
//
//	gen, _ := combo.New(source.Of("A", "B", "C", "D", "E"), 2) // 10 tuples
//	sib, _ := gen.TrySplit()  // gen keeps tuples 0..4, sib gets 5..9
//
// Draining gen and then sib yields exactly what draining the unsplit
// generator would have. The halves share no mutable state and may run on
// different goroutines; the source itself must stay read-only.
//
// Concurrent modification:
//
// Each generator snapshots src.Len() at construction and compares it on
// every advance. A mismatch fails the generator permanently with
// lazy.ErrConcurrentModification. Siblings keep the parent's snapshot and
// detect the same change independently.
//
// Complexity:
//   - advance:  O(r) amortized (successor + element copy)
//   - TrySplit: O(n) big-integer operations (lexicographic unranking)
//   - memory:   O(r) per generator
package combo
