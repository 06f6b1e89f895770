package curves

import (
	"fmt"

	"github.com/pkg/errors"
)

// Point is a point on a Curve: either the point at infinity or an affine
// pair (x, y) that satisfies the curve equation. Points are values; copying
// one yields an independent, equally valid point.
//
// The zero Point is the point at infinity and is compatible with every curve.
type Point[E Coordinate[E]] struct {
	curve  *Curve[E]
	x, y   E
	affine bool
}

// Curve returns the curve p lies on, or nil for the zero Point.
func (p Point[E]) Curve() *Curve[E] {
	return p.curve
}

// IsInfinity reports whether p is the identity.
func (p Point[E]) IsInfinity() bool {
	return !p.affine
}

// X returns the x coordinate; ok is false at infinity.
func (p Point[E]) X() (x E, ok bool) {
	return p.x, p.affine
}

// Y returns the y coordinate; ok is false at infinity.
func (p Point[E]) Y() (y E, ok bool) {
	return p.y, p.affine
}

// XY returns both coordinates; ok is false at infinity.
func (p Point[E]) XY() (x, y E, ok bool) {
	return p.x, p.y, p.affine
}

// Neg returns -p, the reflection of p over the x axis.
func (p Point[E]) Neg() Point[E] {
	if !p.affine {
		return p
	}
	return Point[E]{curve: p.curve, x: p.x, y: p.y.Zero().Sub(p.y), affine: true}
}

// Equal reports whether p and q are the same point on compatible curves.
func (p Point[E]) Equal(q Point[E]) bool {
	if _, err := p.commonCurve(q); err != nil {
		return false
	}
	if !p.affine || !q.affine {
		return p.affine == q.affine
	}
	return p.x.Equal(q.x) && p.y.Equal(q.y)
}

// Add returns p + q under the chord-and-tangent law.
//
// Add panics with an error wrapping ErrCurveMismatch if p and q lie on
// different curves, and with ErrInvariant if the result fails revalidation.
// Neither can happen for points built on the same curve over a prime field.
func (p Point[E]) Add(q Point[E]) Point[E] {
	r, err := p.add(q)
	if err != nil {
		panic(err)
	}
	return r
}

func (p Point[E]) add(q Point[E]) (Point[E], error) {
	c, err := p.commonCurve(q)
	if err != nil {
		return Point[E]{}, err
	}

	if !p.affine {
		return q, nil
	}
	if !q.affine {
		return p, nil
	}

	x1, y1, x2, y2 := p.x, p.y, q.x, q.y

	var num, den E
	switch {
	case x1.Equal(x2) && y1.Add(y2).IsZero():
		// vertical line: q = -p, or a tangent at y = 0
		return c.Infinity(), nil
	case x1.Equal(x2) && y1.Equal(y2):
		// tangent: m = (3x^2 + A) / 2y
		num = times(x1.Mul(x1), 3).Add(c.a)
		den = y1.Add(y1)
	default:
		// chord: m = (y2 - y1) / (x2 - x1)
		num = y2.Sub(y1)
		den = x2.Sub(x1)
	}

	m, err := num.Div(den)
	if err != nil {
		return Point[E]{}, errors.Wrapf(ErrInvariant, "%s + %s on %s: slope %s / %s: %v", p, q, c, num, den, err)
	}

	x3 := m.Mul(m).Sub(x1).Sub(x2)
	y3 := m.Mul(x1.Sub(x3)).Sub(y1)
	if !c.Contains(x3, y3) {
		return Point[E]{}, errors.Wrapf(ErrInvariant, "%s + %s = (%s, %s) is not on %s", p, q, x3, y3, c)
	}
	return Point[E]{curve: c, x: x3, y: y3, affine: true}, nil
}

func (p Point[E]) commonCurve(q Point[E]) (*Curve[E], error) {
	switch {
	case p.curve == nil:
		return q.curve, nil
	case q.curve == nil:
		return p.curve, nil
	case !p.curve.Equal(q.curve):
		return nil, errors.Wrapf(ErrCurveMismatch, "%s and %s", p.curve, q.curve)
	}
	return p.curve, nil
}

func (p Point[E]) String() string {
	if !p.affine {
		return "infinity"
	}
	return fmt.Sprintf("(%s, %s)", p.x, p.y)
}
