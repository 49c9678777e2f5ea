package lazy

import "fmt"

// Guard tracks a Sequence's lifecycle and the source size it was built against.
//
// Generators call Enter at the start of every advance with the live source
// length. The zero value is not useful; use NewGuard.
type Guard struct {
	size  int
	state State
	err   error
}

// NewGuard returns a Fresh guard bound to a size snapshot.
func NewGuard(size int) Guard { return Guard{size: size} }

// Size returns the snapshot taken at construction.
func (g *Guard) Size() int { return g.size }

// State returns the current lifecycle state.
func (g *Guard) State() State { return g.state }

// Err returns the terminal failure, or nil.
func (g *Guard) Err() error { return g.err }

// Enter admits one advance.
//
// Behavior:
//   - Failed:    returns the same error as the first failure.
//   - Exhausted: returns ErrExhausted without looking at the source.
//   - live != Size(): moves to Failed and returns ErrConcurrentModification.
//   - otherwise moves Fresh to Active and returns nil.
func (g *Guard) Enter(live int) error {
	switch g.state {
	case Failed:
		return g.err
	case Exhausted:
		return ErrExhausted
	}
	if live != g.size {
		g.state = Failed
		g.err = fmt.Errorf("size changed from %d to %d: %w", g.size, live, ErrConcurrentModification)

		return g.err
	}
	g.state = Active

	return nil
}

// Exhaust moves the guard to Exhausted unless it already failed.
func (g *Guard) Exhaust() {
	if g.state != Failed {
		g.state = Exhausted
	}
}

// Terminal reports whether the guard is Exhausted or Failed.
func (g *Guard) Terminal() bool {
	return g.state == Exhausted || g.state == Failed
}

// Fork returns a Fresh guard for a split-off sibling. The sibling keeps the
// original snapshot, not the live size, so a modification that happened
// before the split is still detected by both halves.
func (g *Guard) Fork() Guard { return Guard{size: g.size} }

// Fail moves the guard to Failed with err unless it is already terminal,
// and returns the guard's terminal error. Wrappers use it to adopt a failure
// reported by an inner sequence.
func (g *Guard) Fail(err error) error {
	if !g.Terminal() {
		g.state = Failed
		g.err = err
	}
	if g.state == Exhausted {
		return ErrExhausted
	}

	return g.err
}
