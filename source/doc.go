// Package source defines the input contract of the enumeration packages: an
// ordered, indexable collection that is read-only for the duration of an
// enumeration.
//
// Generators never copy, clone, resize or own a Source. They capture its
// length once at construction and compare it against Len() on every advance,
// so an external mutation is detected (not prevented).
//
// Provided implementations:
//
//	Slice[T]  - zero-cost view over a Go slice.
//	List[T]   - mutable, lock-guarded list for callers that need to change
//	            the collection between enumerations.
//	Indices   - the identity source 0..n-1; enumerating it yields raw index tuples.
//	Runes     - the code points of a string.
package source
