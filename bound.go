package gstrategy

import (
	"math"
	"strconv"
)

type boundKind uint8

const (
	boundFinite boundKind = iota
	boundPosInf
	boundNegInf
	boundNaN
)

// Bound is a profit or loss limit that is either a finite value or unbounded
// in one direction. A NaN input gives an undefined Bound that is neither.
// The zero value is Finite(0).
type Bound struct {
	kind  boundKind
	value float64
}

var (
	// Unlimited is an unbounded maximum profit.
	Unlimited = Bound{kind: boundPosInf}
	// UnlimitedLoss is an unbounded maximum loss.
	UnlimitedLoss = Bound{kind: boundNegInf}
)

// Finite returns a bounded value. Infinite inputs become the matching unbounded
// Bound and NaN becomes an undefined one.
func Finite(v float64) Bound {
	switch {
	case math.IsNaN(v):
		return Bound{kind: boundNaN}
	case math.IsInf(v, 1):
		return Unlimited
	case math.IsInf(v, -1):
		return UnlimitedLoss
	}
	return Bound{value: v}
}

// Unbounded returns Unlimited for sign >= 0 and UnlimitedLoss otherwise.
func Unbounded(sign int) Bound {
	if sign < 0 {
		return UnlimitedLoss
	}
	return Unlimited
}

func (b Bound) IsBounded() bool {
	return b.kind == boundFinite
}

// IsNaN reports whether b came from a NaN computation.
func (b Bound) IsNaN() bool {
	return b.kind == boundNaN
}

// Value returns the finite value. ok is false when b is unbounded or NaN.
func (b Bound) Value() (v float64, ok bool) {
	if b.kind != boundFinite {
		return 0, false
	}
	return b.value, true
}

// Float64 converts b to a float64, unbounded values become +Inf or -Inf.
func (b Bound) Float64() float64 {
	switch b.kind {
	case boundPosInf:
		return math.Inf(1)
	case boundNegInf:
		return math.Inf(-1)
	case boundNaN:
		return math.NaN()
	default:
		return b.value
	}
}

// Sign returns 1 for Unlimited, -1 for UnlimitedLoss and 0 otherwise.
func (b Bound) Sign() int {
	switch b.kind {
	case boundPosInf:
		return 1
	case boundNegInf:
		return -1
	default:
		return 0
	}
}

// Neg flips the side of b: a maximum loss becomes the mirrored maximum profit.
func (b Bound) Neg() Bound {
	switch b.kind {
	case boundPosInf:
		return UnlimitedLoss
	case boundNegInf:
		return Unlimited
	case boundNaN:
		return b
	default:
		// 0 - v keeps Neg(0) at +0
		return Bound{value: 0 - b.value}
	}
}

func (b Bound) String() string {
	switch b.kind {
	case boundPosInf:
		return "+inf"
	case boundNegInf:
		return "-inf"
	case boundNaN:
		return "NaN"
	default:
		return strconv.FormatFloat(b.value, 'f', -1, 64)
	}
}

// MarshalJSON encodes finite values as numbers, unbounded ones as "+inf" or "-inf"
// and NaN as null.
func (b Bound) MarshalJSON() ([]byte, error) {
	switch b.kind {
	case boundNaN:
		return []byte("null"), nil
	case boundPosInf, boundNegInf:
		return []byte(strconv.Quote(b.String())), nil
	}
	return strconv.AppendFloat(nil, b.value, 'g', -1, 64), nil
}
