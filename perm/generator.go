package perm

import (
	"errors"
	"fmt"
	"slices"

	"github.com/go-logr/logr"

	"github.com/katalvlaran/lazycomb/count"
	"github.com/katalvlaran/lazycomb/lazy"
	"github.com/katalvlaran/lazycomb/source"
)

// Generator enumerates all permutations of a source in lexicographic order
// of their index tuples. It implements lazy.Sequence[[]T].
type Generator[T any] struct {
	src      source.Source[T]
	n        int
	idx      []int  // next permutation to produce
	produced uint64 // permutations handed out so far
	guard    lazy.Guard
	log      logr.Logger
}

// New returns a Generator over the permutations of src.
//
// Errors:
//   - lazy.ErrInvalidArgument: src is nil.
func New[T any](src source.Source[T], opts ...Option) (*Generator[T], error) {
	if src == nil {
		return nil, fmt.Errorf("perm: nil source: %w", lazy.ErrInvalidArgument)
	}
	n := src.Len()
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}

	return &Generator[T]{
		src:   src,
		n:     n,
		idx:   idx,
		guard: lazy.NewGuard(n),
		log:   applyOptions(opts).log,
	}, nil
}

// HasNext implements lazy.Sequence.
func (g *Generator[T]) HasNext() bool {
	return g.guard.State() == lazy.Failed || !g.guard.Terminal()
}

// Next implements lazy.Sequence.
func (g *Generator[T]) Next() ([]T, error) { return g.advance() }

// TryAdvance implements lazy.Sequence.
func (g *Generator[T]) TryAdvance(visit func([]T)) (bool, error) {
	v, err := g.advance()
	if errors.Is(err, lazy.ErrExhausted) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	visit(v)

	return true, nil
}

// ForEachRemaining implements lazy.Sequence.
func (g *Generator[T]) ForEachRemaining(visit func([]T)) error {
	for {
		v, err := g.advance()
		if errors.Is(err, lazy.ErrExhausted) {
			return nil
		}
		if err != nil {
			return err
		}
		visit(v)
	}
}

// EstimateRemaining implements lazy.Sequence: n! minus the permutations
// already produced, Unbounded while n! does not fit in 64 bits.
func (g *Generator[T]) EstimateRemaining() count.Count {
	if g.guard.Terminal() {
		return count.Count{}
	}

	return count.Factorial(g.n).Sub(count.Exact(g.produced))
}

// TrySplit implements lazy.Sequence. Permutations are not split: the
// successor walk has no cheap way to hand off a contiguous block.
func (g *Generator[T]) TrySplit() (lazy.Sequence[[]T], bool) { return nil, false }

// State implements lazy.Sequence.
func (g *Generator[T]) State() lazy.State { return g.guard.State() }

func (g *Generator[T]) advance() ([]T, error) {
	wasFailed := g.guard.State() == lazy.Failed
	live := g.src.Len()
	if err := g.guard.Enter(live); err != nil {
		if !wasFailed && g.guard.State() == lazy.Failed {
			g.log.V(1).Info("source modified during enumeration", "snapshot", g.guard.Size(), "live", live)
		}

		return nil, err
	}

	out := make([]T, g.n)
	for i, j := range g.idx {
		out[i] = g.src.At(j)
	}
	g.produced++
	if !nextPermutation(g.idx) {
		g.guard.Exhaust()
	}

	return out, nil
}

// nextPermutation rearranges p into its lexicographic successor and reports
// false, leaving p untouched, when p is already the last (descending) one.
func nextPermutation(p []int) bool {
	i := len(p) - 2
	for i >= 0 && p[i] >= p[i+1] {
		i--
	}
	if i < 0 {
		return false
	}
	j := len(p) - 1
	for p[j] <= p[i] {
		j--
	}
	p[i], p[j] = p[j], p[i]
	slices.Reverse(p[i+1:])

	return true
}
