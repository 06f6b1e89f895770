// Package rational provides exact rational numbers for curves defined over Q.
//
// Numbers are immutable: every operation allocates its result, so a Number
// can be copied and shared freely.
package rational

import (
	"errors"
	"math/big"
)

// ErrDivisionByZero is returned when dividing by zero.
var ErrDivisionByZero = errors.New("rational: division by zero")

// Number is an exact rational. The zero value is 0.
type Number struct {
	r *big.Rat
}

// New returns num/den. It panics if den is zero, as big.Rat does.
func New(num, den int64) Number {
	return Number{r: big.NewRat(num, den)}
}

// FromInt returns n/1.
func FromInt(n int64) Number {
	return Number{r: new(big.Rat).SetInt64(n)}
}

// FromRat returns a Number holding a copy of r.
func FromRat(r *big.Rat) Number {
	return Number{r: new(big.Rat).Set(r)}
}

func (a Number) rat() *big.Rat {
	if a.r == nil {
		return new(big.Rat)
	}
	return a.r
}

// Rat returns a copy of a as a big.Rat.
func (a Number) Rat() *big.Rat {
	return new(big.Rat).Set(a.rat())
}

func (Number) Zero() Number { return FromInt(0) }

func (Number) One() Number { return FromInt(1) }

func (a Number) Add(b Number) Number {
	return Number{r: new(big.Rat).Add(a.rat(), b.rat())}
}

func (a Number) Sub(b Number) Number {
	return Number{r: new(big.Rat).Sub(a.rat(), b.rat())}
}

func (a Number) Mul(b Number) Number {
	return Number{r: new(big.Rat).Mul(a.rat(), b.rat())}
}

func (a Number) Neg() Number {
	return Number{r: new(big.Rat).Neg(a.rat())}
}

// Div returns a / b, or ErrDivisionByZero when b is zero.
func (a Number) Div(b Number) (Number, error) {
	if b.IsZero() {
		return Number{}, ErrDivisionByZero
	}
	return Number{r: new(big.Rat).Quo(a.rat(), b.rat())}, nil
}

func (a Number) Equal(b Number) bool {
	return a.rat().Cmp(b.rat()) == 0
}

func (a Number) IsZero() bool {
	return a.rat().Sign() == 0
}

// IsInt reports whether the denominator is 1.
func (a Number) IsInt() bool {
	return a.rat().IsInt()
}

// String formats a as "a/b", or "a" when the denominator is 1.
func (a Number) String() string {
	return a.rat().RatString()
}
