package lazy

import (
	"errors"
	"fmt"
	"iter"
	"slices"

	"github.com/katalvlaran/lazycomb/count"
)

// All returns a single-use iterator over the remaining values of s.
//
// Each value is yielded with a nil error. If s fails, a final (zero, err)
// pair is yielded and iteration stops. Breaking out of the loop leaves s
// positioned after the last value yielded.
//
//	for combo, err := range lazy.All(gen) {
//		if err != nil {
//			return err
//		}
//		use(combo)
//	}
func All[T any](s Sequence[T]) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for {
			v, err := s.Next()
			if errors.Is(err, ErrExhausted) {
				return
			}
			if err != nil {
				var zero T
				yield(zero, err)

				return
			}
			if !yield(v, nil) {
				return
			}
		}
	}
}

// Collect drains s into a slice. On failure it returns the values produced
// so far together with the error.
func Collect[T any](s Sequence[T]) ([]T, error) {
	var out []T
	if c, ok := s.EstimateRemaining().Value(); ok && c <= 1<<16 {
		out = make([]T, 0, c)
	}
	err := s.ForEachRemaining(func(v T) { out = append(out, v) })

	return out, err
}

// Partition divides s into at most k independent sequences by repeatedly
// splitting the partition with the largest estimate. Partitions are returned
// in encounter order: draining them one after another reproduces s.
//
// Partition never fails. If s cannot split, the result is []Sequence[T]{s}.
// k < 1 is treated as 1.
func Partition[T any](s Sequence[T], k int) []Sequence[T] {
	parts := []Sequence[T]{s}
	stuck := []bool{false}
	for len(parts) < k {
		i := largest(parts, stuck)
		if i < 0 {
			break
		}
		sib, ok := parts[i].TrySplit()
		if !ok {
			stuck[i] = true
			continue
		}
		// the sibling continues where parts[i] now stops
		parts = slices.Insert(parts, i+1, sib)
		stuck = slices.Insert(stuck, i+1, false)
	}

	return parts
}

// largest returns the index of the biggest splittable partition, or -1.
func largest[T any](parts []Sequence[T], stuck []bool) int {
	best := -1
	var bestSize count.Count
	for i, p := range parts {
		if stuck[i] {
			continue
		}
		if sz := p.EstimateRemaining(); best < 0 || sz.Cmp(bestSize) > 0 {
			best, bestSize = i, sz
		}
	}

	return best
}

// Stride adapts s into a sequence of every n-th value, starting with the first.
//
// Errors:
//   - ErrInvalidArgument: s is nil or n ≤ 0.
func Stride[T any](s Sequence[T], n int) (Sequence[T], error) {
	if s == nil {
		return nil, fmt.Errorf("stride over nil sequence: %w", ErrInvalidArgument)
	}
	if n <= 0 {
		return nil, fmt.Errorf("stride must be greater than 0, got %d: %w", n, ErrInvalidArgument)
	}

	return &stride[T]{src: s, n: n}, nil
}

type stride[T any] struct {
	src Sequence[T]
	n   int
}

func (s *stride[T]) HasNext() bool { return s.src.HasNext() }

func (s *stride[T]) Next() (T, error) {
	v, err := s.src.Next()
	if err != nil {
		return v, err
	}
	s.skip()

	return v, nil
}

// skip discards n-1 values. A failure while skipping is sticky in src and
// surfaces on the following call.
func (s *stride[T]) skip() {
	for i := 1; i < s.n; i++ {
		if ok, err := s.src.TryAdvance(func(T) {}); !ok || err != nil {
			return
		}
	}
}

func (s *stride[T]) TryAdvance(visit func(T)) (bool, error) {
	ok, err := s.src.TryAdvance(visit)
	if !ok || err != nil {
		return ok, err
	}
	s.skip()

	return true, nil
}

func (s *stride[T]) ForEachRemaining(visit func(T)) error {
	for {
		ok, err := s.TryAdvance(visit)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}
}

// EstimateRemaining rounds up: m remaining source values yield ⌈m/n⌉.
func (s *stride[T]) EstimateRemaining() count.Count {
	m, ok := s.src.EstimateRemaining().Value()
	if !ok {
		return count.Unbounded
	}
	q := m / uint64(s.n)
	if m%uint64(s.n) != 0 {
		q++
	}

	return count.Exact(q)
}

// TrySplit never splits: the stride phase depends on everything before it.
func (s *stride[T]) TrySplit() (Sequence[T], bool) { return nil, false }

func (s *stride[T]) State() State { return s.src.State() }
