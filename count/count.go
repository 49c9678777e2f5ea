package count

import (
	"math"
	"math/big"
	"math/bits"
	"strconv"
)

// Count is a cardinality that is either exact or Unbounded.
// The zero value is an exact 0.
type Count struct {
	v         uint64
	unbounded bool
}

// Unbounded is the saturated Count returned whenever a value does not fit in uint64.
var Unbounded = Count{unbounded: true}

// Exact wraps v as an exact Count.
func Exact(v uint64) Count { return Count{v: v} }

// Value returns the exact value and true, or 0 and false for Unbounded.
func (c Count) Value() (uint64, bool) {
	if c.unbounded {
		return 0, false
	}

	return c.v, true
}

// IsUnbounded reports whether c saturated.
func (c Count) IsUnbounded() bool { return c.unbounded }

// IsZero reports whether c is an exact 0.
func (c Count) IsZero() bool { return !c.unbounded && c.v == 0 }

// Int64 reports c as a signed size estimate, clamping anything above
// math.MaxInt64 (including Unbounded) to math.MaxInt64.
func (c Count) Int64() int64 {
	if c.unbounded || c.v > math.MaxInt64 {
		return math.MaxInt64
	}

	return int64(c.v)
}

// Add returns c+d, saturating to Unbounded on carry.
func (c Count) Add(d Count) Count {
	if c.unbounded || d.unbounded {
		return Unbounded
	}
	sum, carry := bits.Add64(c.v, d.v, 0)
	if carry != 0 {
		return Unbounded
	}

	return Exact(sum)
}

// Sub returns c-d floored at 0. Unbounded minus anything stays Unbounded;
// an exact value minus Unbounded is 0.
func (c Count) Sub(d Count) Count {
	switch {
	case c.unbounded:
		return Unbounded
	case d.unbounded, d.v >= c.v:
		return Count{}
	}

	return Exact(c.v - d.v)
}

// Mul returns c*d, saturating to Unbounded when the high word is non-zero.
// Zero times Unbounded is 0.
func (c Count) Mul(d Count) Count {
	if c.IsZero() || d.IsZero() {
		return Count{}
	}
	if c.unbounded || d.unbounded {
		return Unbounded
	}
	hi, lo := bits.Mul64(c.v, d.v)
	if hi != 0 {
		return Unbounded
	}

	return Exact(lo)
}

// Cmp compares c and d: -1, 0 or +1. Unbounded compares equal to itself
// and greater than every exact value.
func (c Count) Cmp(d Count) int {
	switch {
	case c.unbounded && d.unbounded:
		return 0
	case c.unbounded:
		return 1
	case d.unbounded:
		return -1
	case c.v < d.v:
		return -1
	case c.v > d.v:
		return 1
	}

	return 0
}

// String renders the exact value in base 10, or "unbounded".
func (c Count) String() string {
	if c.unbounded {
		return "unbounded"
	}

	return strconv.FormatUint(c.v, 10)
}

// FromBig converts an arbitrary-precision value into a Count.
// Negative or nil values map to 0, values wider than 64 bits to Unbounded.
func FromBig(b *big.Int) Count {
	if b == nil || b.Sign() <= 0 {
		return Count{}
	}
	if !b.IsUint64() {
		return Unbounded
	}

	return Exact(b.Uint64())
}
