package combo

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/go-logr/logr"

	"github.com/katalvlaran/lazycomb/count"
	"github.com/katalvlaran/lazycomb/lazy"
	"github.com/katalvlaran/lazycomb/source"
)

// Generator enumerates the r-combinations of a source in lexicographic order
// of their index tuples. It implements lazy.Sequence[[]T].
//
// The remaining range is tracked as absolute lexicographic ranks [pos, end)
// in arbitrary precision, so splitting stays exact even when C(n, r) does
// not fit in 64 bits.
type Generator[T any] struct {
	src   source.Source[T]
	n, r  int
	idx   []int    // index tuple at rank pos; meaningful while pos < end
	pos   *big.Int // rank of the next tuple
	end   *big.Int // exclusive rank bound
	guard lazy.Guard
	log   logr.Logger
}

// New returns a Generator over the r-element combinations of src.
//
// r == 0 yields a single empty combination.
//
// Errors:
//   - lazy.ErrInvalidArgument: src is nil, r < 0 or r > src.Len().
func New[T any](src source.Source[T], r int, opts ...Option) (*Generator[T], error) {
	if src == nil {
		return nil, fmt.Errorf("combo: nil source: %w", lazy.ErrInvalidArgument)
	}
	n := src.Len()
	if r < 0 || r > n {
		return nil, fmt.Errorf("combo: r=%d outside [0, %d]: %w", r, n, lazy.ErrInvalidArgument)
	}

	return newGenerator(src, n, r, lazy.NewGuard(n), applyOptions(opts).log), nil
}

// newGenerator builds a Fresh generator over the whole range for a
// pre-validated (n, r) and the given snapshot guard.
func newGenerator[T any](src source.Source[T], n, r int, guard lazy.Guard, log logr.Logger) *Generator[T] {
	idx := make([]int, r)
	for i := range idx {
		idx[i] = i
	}

	return &Generator[T]{
		src:   src,
		n:     n,
		r:     r,
		idx:   idx,
		pos:   new(big.Int),
		end:   count.BigBinomial(n, r),
		guard: guard,
		log:   log,
	}
}

// R returns the size of every combination produced.
func (g *Generator[T]) R() int { return g.r }

// HasNext implements lazy.Sequence.
func (g *Generator[T]) HasNext() bool {
	switch g.guard.State() {
	case lazy.Failed:
		return true
	case lazy.Exhausted:
		return false
	}

	return g.pos.Cmp(g.end) < 0
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

// ForEachRemaining implements lazy.Sequence. The size snapshot is checked
// before every value, not once per call.
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

// EstimateRemaining implements lazy.Sequence. Terminal generators report 0.
func (g *Generator[T]) EstimateRemaining() count.Count {
	if g.guard.Terminal() {
		return count.Count{}
	}

	return count.FromBig(new(big.Int).Sub(g.end, g.pos))
}

// State implements lazy.Sequence.
func (g *Generator[T]) State() lazy.State { return g.guard.State() }

// TrySplit implements lazy.Sequence.
//
// With k ≥ 2 tuples remaining, g keeps the first ⌊k/2⌋ and the returned
// sibling covers the other ⌈k/2⌉, starting at the tuple right after g's
// last one. Terminal generators and generators with fewer than two tuples
// left do not split.
func (g *Generator[T]) TrySplit() (lazy.Sequence[[]T], bool) {
	if g.guard.Terminal() {
		return nil, false
	}
	rem := new(big.Int).Sub(g.end, g.pos)
	if rem.Cmp(two) < 0 {
		return nil, false
	}
	mid := rem.Rsh(rem, 1)
	mid.Add(mid, g.pos)

	sib := &Generator[T]{
		src:   g.src,
		n:     g.n,
		r:     g.r,
		idx:   unrank(mid, g.n, g.r),
		pos:   mid,
		end:   g.end,
		guard: g.guard.Fork(),
		log:   g.log,
	}
	g.end = new(big.Int).Set(mid)
	g.log.V(1).Info("split combinations", "n", g.n, "r", g.r,
		"from", g.pos.String(), "at", mid.String(), "to", sib.end.String())

	return sib, true
}

// advance produces the next combination as a fresh slice.
func (g *Generator[T]) advance() ([]T, error) {
	wasFailed := g.guard.State() == lazy.Failed
	live := g.src.Len()
	if err := g.guard.Enter(live); err != nil {
		if !wasFailed && g.guard.State() == lazy.Failed {
			g.log.V(1).Info("source modified during enumeration", "r", g.r, "snapshot", g.guard.Size(), "live", live)
		}

		return nil, err
	}
	if g.pos.Cmp(g.end) >= 0 {
		g.guard.Exhaust()

		return nil, lazy.ErrExhausted
	}

	out := make([]T, g.r)
	for i, j := range g.idx {
		out[i] = g.src.At(j)
	}
	g.pos.Add(g.pos, one)
	if g.pos.Cmp(g.end) < 0 {
		nextCombination(g.idx, g.n)
	} else {
		g.guard.Exhaust()
	}

	return out, nil
}
