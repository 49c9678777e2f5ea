package source

// Source is an ordered, indexable collection of T.
//
// At must be O(1) or O(log n) and must be safe for concurrent readers, since
// the halves of a split generator read the same Source from different goroutines.
type Source[T any] interface {
	// Len returns the current number of elements.
	Len() int

	// At returns the element at position i, 0 ≤ i < Len().
	At(i int) T
}

// Slice adapts a Go slice to Source without copying.
type Slice[T any] []T

// Of builds a Slice from its arguments.
func Of[T any](elems ...T) Slice[T] { return Slice[T](elems) }

// Len returns len(s).
func (s Slice[T]) Len() int { return len(s) }

// At returns s[i].
func (s Slice[T]) At(i int) T { return s[i] }

// Runes returns the code points of str as a Slice. Invalid UTF-8 bytes become
// utf8.RuneError, as with a range loop over the string.
func Runes(str string) Slice[rune] { return Slice[rune]([]rune(str)) }

// indices is the identity source over 0..n-1.
type indices int

// Indices returns a Source whose element at i is i itself, so that generators
// over it produce bare index tuples.
func Indices(n int) Source[int] {
	if n < 0 {
		n = 0
	}

	return indices(n)
}

func (n indices) Len() int { return int(n) }

func (n indices) At(i int) int { return i }
