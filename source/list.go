package source

import (
	"errors"
	"fmt"
	"sync"
)

// ErrIndexOutOfRange is returned by List mutators given a position outside the list.
var ErrIndexOutOfRange = errors.New("source: index out of range")

// List is a mutable Source guarded by a sync.RWMutex.
//
// Reads (Len, At, Snapshot) take the read lock, so any number of generator
// halves may read concurrently. Mutators take the write lock. Mutating a List
// while a generator over it is active is allowed; the generator's next
// advance reports the change.
type List[T any] struct {
	mu    sync.RWMutex // guards elems
	elems []T
}

// NewList creates a List holding a copy of elems.
// Complexity: O(len(elems)).
func NewList[T any](elems ...T) *List[T] {
	cp := make([]T, len(elems))
	copy(cp, elems)

	return &List[T]{elems: cp}
}

// Len returns the number of elements.
func (l *List[T]) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return len(l.elems)
}

// At returns the element at position i. It panics on an out-of-range index,
// like a slice access.
func (l *List[T]) At(i int) T {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.elems[i]
}

// Append adds elems at the end of the list.
// Complexity: O(len(elems)) amortized.
func (l *List[T]) Append(elems ...T) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.elems = append(l.elems, elems...)
}

// RemoveAt deletes the element at position i, shifting later elements left.
//
// Errors:
//   - ErrIndexOutOfRange: i < 0 or i ≥ Len().
//
// Complexity: O(Len()-i).
func (l *List[T]) RemoveAt(i int) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if i < 0 || i >= len(l.elems) {
		return fmt.Errorf("RemoveAt(%d) on list of %d: %w", i, len(l.elems), ErrIndexOutOfRange)
	}
	copy(l.elems[i:], l.elems[i+1:])
	var zero T
	l.elems[len(l.elems)-1] = zero // release the reference
	l.elems = l.elems[:len(l.elems)-1]

	return nil
}

// Set replaces the element at position i. Set does not change Len, so
// generators over the list do not detect it.
//
// Errors:
//   - ErrIndexOutOfRange: i < 0 or i ≥ Len().
func (l *List[T]) Set(i int, v T) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if i < 0 || i >= len(l.elems) {
		return fmt.Errorf("Set(%d) on list of %d: %w", i, len(l.elems), ErrIndexOutOfRange)
	}
	l.elems[i] = v

	return nil
}

// Snapshot returns an independent copy of the current elements as a Slice.
// Complexity: O(Len()).
func (l *List[T]) Snapshot() Slice[T] {
	l.mu.RLock()
	defer l.mu.RUnlock()

	cp := make([]T, len(l.elems))
	copy(cp, l.elems)

	return Slice[T](cp)
}
