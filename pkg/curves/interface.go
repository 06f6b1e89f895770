package curves

import "fmt"

// Coordinate is the arithmetic a curve needs from its coordinate type.
// field.Element (curves over Z/pZ) and rational.Number (curves over Q)
// both satisfy it.
//
// Implementations are immutable values: every method returns a new value
// and leaves the receiver unchanged.
type Coordinate[E any] interface {
	fmt.Stringer

	// Add returns the sum of the receiver and the argument.
	Add(E) E

	// Sub returns the difference.
	Sub(E) E

	// Mul returns the product.
	Mul(E) E

	// Div returns the quotient, or an error when the divisor is zero.
	// It must be exact division in the coordinate's field.
	Div(E) (E, error)

	// Equal reports value equality.
	Equal(E) bool

	// IsZero reports whether the value is the additive identity.
	IsZero() bool

	// Zero returns the additive identity.
	Zero() E

	// One returns the multiplicative identity.
	One() E
}

// times returns n*e by double-and-add.
func times[E Coordinate[E]](e E, n uint) E {
	r := e.Zero()
	for d := e; n > 0; n >>= 1 {
		if n&1 == 1 {
			r = r.Add(d)
		}
		d = d.Add(d)
	}
	return r
}
