// Package lazy defines the capability set shared by every generator in this
// module: a lazily produced, splittable sequence that can be consumed either
// by pulling (HasNext/Next) or by pushing values into a visitor
// (TryAdvance/ForEachRemaining), and divided into independent halves with
// TrySplit for parallel consumption.
//
// # State machine
//
// Every Sequence moves through the same states:
//
//	Fresh ──advance──▶ Active ──space consumed──▶ Exhausted (terminal)
//	                     │
//	                     └──size mismatch──▶ Failed (terminal, sticky error)
//
// Guard implements this state machine together with the size-snapshot check
// that detects mutation of the backing source.Source.
//
// # Errors
//
//	ErrInvalidArgument        - bad construction parameters.
//	ErrConcurrentModification - the source's length changed mid-enumeration.
//	ErrExhausted              - Next called with nothing left.
//
// Use errors.Is to branch; returned errors carry context via %w.
//
// # Concurrency
//
// A single Sequence is not safe for concurrent use. Split first and hand each
// half to its own goroutine; halves share no mutable state.
//
// # Adapters
//
//	All       - range-over-func bridge (iter.Seq2[T, error]).
//	Collect   - drain into a slice.
//	Stride    - every n-th value.
//	Partition - split into up to k independent sequences.
package lazy
