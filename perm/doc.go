// Package perm enumerates the n! orderings of a source.Source lazily.
//
// Generator produces permutations in lexicographic order of their index
// tuples, starting with the identity (0, 1, …, n-1) and ending with its
// reverse. For the source [1, 2, 3] the values are
//
//	[1 2 3] [1 3 2] [2 1 3] [2 3 1] [3 1 2] [3 2 1]
//
// An empty source yields exactly one empty permutation.
//
// Generator implements lazy.Sequence[[]T] but never splits: TrySplit always
// reports false, so parallel consumers receive the whole enumeration as a
// single partition.
//
// Like the combination generators, a Generator snapshots src.Len() and fails
// permanently with lazy.ErrConcurrentModification if the length changes.
package perm
