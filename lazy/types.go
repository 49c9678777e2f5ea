package lazy

import (
	"errors"

	"github.com/katalvlaran/lazycomb/count"
)

// Sentinel errors shared by all generators.
var (
	// ErrInvalidArgument indicates a missing source or an out-of-range parameter.
	ErrInvalidArgument = errors.New("lazy: invalid argument")

	// ErrConcurrentModification indicates the source's length differs from the
	// snapshot taken at construction. It is terminal for the sequence.
	ErrConcurrentModification = errors.New("lazy: source modified during enumeration")

	// ErrExhausted is returned by Next once every value has been produced.
	ErrExhausted = errors.New("lazy: sequence exhausted")
)

// Sequence is a lazily produced, splittable sequence of T with both pull and
// push consumption on the same instance. Mixing the two protocols is allowed;
// they advance the same cursor.
type Sequence[T any] interface {
	// HasNext reports whether another call to Next can be made. It is false
	// only once the sequence is exhausted; a failed sequence keeps reporting
	// true so that Next surfaces the failure.
	HasNext() bool

	// Next returns the next value, ErrExhausted, or the terminal failure.
	Next() (T, error)

	// TryAdvance applies visit to the next value, if any, and reports whether
	// one existed. Exhaustion is (false, nil), not an error.
	TryAdvance(visit func(T)) (bool, error)

	// ForEachRemaining applies visit to every remaining value in order.
	ForEachRemaining(visit func(T)) error

	// EstimateRemaining returns the number of values left. It never fails.
	EstimateRemaining() count.Count

	// TrySplit moves a contiguous part of the remaining values into a new,
	// independent Sequence. It returns false when the sequence cannot or will
	// not split.
	TrySplit() (Sequence[T], bool)

	// State reports the current lifecycle state.
	State() State
}

// State is the lifecycle state of a Sequence.
type State int

const (
	// Fresh sequences have never been advanced.
	Fresh State = iota

	// Active sequences have been advanced at least once and may have values left.
	Active

	// Exhausted sequences produced every value. Terminal.
	Exhausted

	// Failed sequences detected a concurrent modification. Terminal.
	Failed
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case Fresh:
		return "fresh"
	case Active:
		return "active"
	case Exhausted:
		return "exhausted"
	case Failed:
		return "failed"
	}

	return "unknown"
}
