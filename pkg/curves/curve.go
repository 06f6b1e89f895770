package curves

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/smallyu/go-weierstrass/internal/crypto/polynomial"
)

// Curve is a short Weierstrass curve y^2 = x^3 + Ax + B with coordinates in E.
// A Curve is immutable once created and may be shared between goroutines.
type Curve[E Coordinate[E]] struct {
	name string
	a, b E

	// x^3 + Ax + B
	rhs *polynomial.Polynomial[E]
}

// NewCurve returns the curve y^2 = x^3 + ax + b. It fails with
// ErrSingularCurve when 4a^3 + 27b^2 = 0.
func NewCurve[E Coordinate[E]](name string, a, b E) (*Curve[E], error) {
	c := &Curve[E]{name: name, a: a, b: b}
	if c.Discriminant().IsZero() {
		return nil, errors.Wrapf(ErrSingularCurve, "%s: A = %s, B = %s", c, a, b)
	}

	rhs, err := polynomial.New(b, a, a.Zero(), a.One())
	if err != nil {
		return nil, err
	}
	c.rhs = rhs
	return c, nil
}

// MustCurve is like NewCurve but panics on error.
func MustCurve[E Coordinate[E]](name string, a, b E) *Curve[E] {
	c, err := NewCurve(name, a, b)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Curve[E]) Name() string { return c.name }

func (c *Curve[E]) A() E { return c.a }

func (c *Curve[E]) B() E { return c.b }

// Discriminant returns 4A^3 + 27B^2, which is zero exactly when the curve is
// singular.
func (c *Curve[E]) Discriminant() E {
	a3 := c.a.Mul(c.a).Mul(c.a)
	b2 := c.b.Mul(c.b)
	return times(a3, 4).Add(times(b2, 27))
}

// Equal reports whether c and o have the same coefficients. Names are not
// compared.
func (c *Curve[E]) Equal(o *Curve[E]) bool {
	if c == o {
		return true
	}
	if c == nil || o == nil {
		return false
	}
	return c.a.Equal(o.a) && c.b.Equal(o.b)
}

// Contains reports whether (x, y) satisfies the curve equation.
func (c *Curve[E]) Contains(x, y E) bool {
	return y.Mul(y).Equal(c.rhs.Evaluate(x))
}

// NewPoint validates a point given optional coordinates. Both nil gives the
// point at infinity; exactly one nil fails with ErrInvalidPoint; an off-curve
// pair fails with ErrNotOnCurve.
func (c *Curve[E]) NewPoint(x, y *E) (Point[E], error) {
	switch {
	case x == nil && y == nil:
		return c.Infinity(), nil
	case x == nil:
		return Point[E]{}, &PointError{Curve: c.String(), Reason: fmt.Sprintf("y = %s without x", *y), Err: ErrInvalidPoint}
	case y == nil:
		return Point[E]{}, &PointError{Curve: c.String(), Reason: fmt.Sprintf("x = %s without y", *x), Err: ErrInvalidPoint}
	}
	return c.Affine(*x, *y)
}

// Affine returns the point (x, y), or ErrNotOnCurve.
func (c *Curve[E]) Affine(x, y E) (Point[E], error) {
	if !c.Contains(x, y) {
		return Point[E]{}, &PointError{Curve: c.String(), Reason: fmt.Sprintf("(%s, %s)", x, y), Err: ErrNotOnCurve}
	}
	return Point[E]{curve: c, x: x, y: y, affine: true}, nil
}

// Infinity returns the point at infinity, the identity of the group law.
func (c *Curve[E]) Infinity() Point[E] {
	return Point[E]{curve: c}
}

func (c *Curve[E]) String() string {
	if c.name != "" {
		return c.name
	}
	return fmt.Sprintf("y^2 = x^3 + %sx + %s", c.a, c.b)
}
