package polynomial

import "errors"

// ErrNoCoefficients is returned by New when called without coefficients.
var ErrNoCoefficients = errors.New("polynomial: no coefficients")

// Ring is the arithmetic Evaluate needs from a coefficient type.
type Ring[E any] interface {
	Add(E) E
	Mul(E) E
}

// Polynomial represents f(x) = a_0 + a_1*x + ... + a_t*x^t
// with coefficients in E.
type Polynomial[E Ring[E]] struct {
	Coefficients []E
}

// New returns the polynomial with the given coefficients, lowest degree first.
// The slice is copied.
func New[E Ring[E]](coeffs ...E) (*Polynomial[E], error) {
	if len(coeffs) == 0 {
		return nil, ErrNoCoefficients
	}
	c := make([]E, len(coeffs))
	copy(c, coeffs)
	return &Polynomial[E]{Coefficients: c}, nil
}

// Degree returns t.
func (p *Polynomial[E]) Degree() int {
	return len(p.Coefficients) - 1
}

// Evaluate calculates f(x)
func (p *Polynomial[E]) Evaluate(x E) E {
	// Horner's method
	// result = a_t
	// for i = t-1 down to 0:
	//   result = result * x + a_i
	degree := p.Degree()
	result := p.Coefficients[degree]
	for i := degree - 1; i >= 0; i-- {
		result = result.Mul(x).Add(p.Coefficients[i])
	}
	return result
}

// EvaluateMulti calculates f(x) for multiple x values
func (p *Polynomial[E]) EvaluateMulti(xs []E) []E {
	results := make([]E, len(xs))
	for i, x := range xs {
		results[i] = p.Evaluate(x)
	}
	return results
}
