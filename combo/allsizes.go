package combo

import (
	"errors"
	"fmt"

	"github.com/go-logr/logr"

	"github.com/katalvlaran/lazycomb/count"
	"github.com/katalvlaran/lazycomb/lazy"
	"github.com/katalvlaran/lazycomb/source"
)

// AllSizes enumerates every combination of every size r = 1..n: all of size
// 1 in lexicographic order, then all of size 2, and so on, ending with the
// whole source. It implements lazy.Sequence[[]T].
//
// Each size is produced by a Generator created when the previous size runs
// out. An AllSizes always covers a contiguous range of sizes; TrySplit only
// lowers its upper end.
type AllSizes[T any] struct {
	src   source.Source[T]
	n     int
	cur   *Generator[T] // size in progress; nil before the first advance
	next  int           // next size to start
	last  int           // last size covered, inclusive
	guard lazy.Guard
	log   logr.Logger
}

// NewAllSizes returns an AllSizes over src. An empty source yields nothing.
//
// Errors:
//   - lazy.ErrInvalidArgument: src is nil.
func NewAllSizes[T any](src source.Source[T], opts ...Option) (*AllSizes[T], error) {
	if src == nil {
		return nil, fmt.Errorf("combo: nil source: %w", lazy.ErrInvalidArgument)
	}
	n := src.Len()

	return &AllSizes[T]{
		src:   src,
		n:     n,
		next:  1,
		last:  n,
		guard: lazy.NewGuard(n),
		log:   applyOptions(opts).log,
	}, nil
}

// HasNext implements lazy.Sequence.
func (a *AllSizes[T]) HasNext() bool {
	switch a.guard.State() {
	case lazy.Failed:
		return true
	case lazy.Exhausted:
		return false
	}

	return a.more()
}

// more reports whether any value is left: C(n, r) ≥ 1 for every pending r.
func (a *AllSizes[T]) more() bool {
	return (a.cur != nil && a.cur.HasNext()) || a.next <= a.last
}

// Next implements lazy.Sequence.
func (a *AllSizes[T]) Next() ([]T, error) { return a.advance() }

// TryAdvance implements lazy.Sequence.
func (a *AllSizes[T]) TryAdvance(visit func([]T)) (bool, error) {
	v, err := a.advance()
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
func (a *AllSizes[T]) ForEachRemaining(visit func([]T)) error {
	for {
		v, err := a.advance()
		if errors.Is(err, lazy.ErrExhausted) {
			return nil
		}
		if err != nil {
			return err
		}
		visit(v)
	}
}

// EstimateRemaining implements lazy.Sequence: what is left of the current
// size plus Σ C(n, r) over the sizes not started yet.
func (a *AllSizes[T]) EstimateRemaining() count.Count {
	if a.guard.Terminal() {
		return count.Count{}
	}
	var inner count.Count
	if a.cur != nil {
		inner = a.cur.EstimateRemaining()
	}

	return inner.Add(pendingCount(a.n, a.next, a.last))
}

// pendingCount returns Σ C(n, r) for r in [lo, hi]. The full range 1..n is
// the all-sizes count for 1..n-1 plus the single whole-source combination.
func pendingCount(n, lo, hi int) count.Count {
	if n > 0 && lo == 1 && hi == n {
		return count.CombinationCountAllSizes(n).Add(count.Exact(1))
	}

	return count.BinomialSum(n, lo, hi)
}

// State implements lazy.Sequence.
func (a *AllSizes[T]) State() lazy.State { return a.guard.State() }

// TrySplit implements lazy.Sequence.
//
// The unit of work is one size: the size in progress (if it has values
// left) and every size not started yet. With at least two units, the later
// half of them, a contiguous suffix of sizes, moves to the returned sibling,
// which starts a fresh Generator at the first size of that suffix. A size is
// never divided between the two.
func (a *AllSizes[T]) TrySplit() (lazy.Sequence[[]T], bool) {
	if a.guard.Terminal() {
		return nil, false
	}
	inProgress := 0
	if a.cur != nil && a.cur.HasNext() {
		inProgress = 1
	}
	pending := a.last - a.next + 1
	units := inProgress + pending
	if units < 2 {
		return nil, false
	}
	from := a.next + (units+1)/2 - inProgress

	sib := &AllSizes[T]{
		src:   a.src,
		n:     a.n,
		next:  from,
		last:  a.last,
		guard: a.guard.Fork(),
		log:   a.log,
	}
	a.last = from - 1
	a.log.V(1).Info("split all-sizes combinations", "n", a.n,
		"kept", fmt.Sprintf("..%d", a.last), "handedOff", fmt.Sprintf("%d..%d", sib.next, sib.last))

	return sib, true
}

// advance produces the next combination, starting the next size as needed.
func (a *AllSizes[T]) advance() ([]T, error) {
	wasFailed := a.guard.State() == lazy.Failed
	live := a.src.Len()
	if err := a.guard.Enter(live); err != nil {
		if !wasFailed && a.guard.State() == lazy.Failed {
			a.log.V(1).Info("source modified during enumeration", "snapshot", a.guard.Size(), "live", live)
		}

		return nil, err
	}

	for {
		if a.cur != nil {
			v, err := a.cur.advance()
			if err == nil {
				if !a.more() {
					a.guard.Exhaust()
				}

				return v, nil
			}
			if !errors.Is(err, lazy.ErrExhausted) {
				return nil, a.guard.Fail(err)
			}
		}
		if a.next > a.last {
			a.cur = nil
			a.guard.Exhaust()

			return nil, lazy.ErrExhausted
		}
		a.cur = newGenerator(a.src, a.n, a.next, lazy.NewGuard(a.n), a.log)
		a.next++
	}
}
