package curves

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrNotOnCurve means both coordinates were given but y^2 != x^3 + Ax + B.
	ErrNotOnCurve = errors.New("point is not on the curve")

	// ErrInvalidPoint means exactly one coordinate was given.
	ErrInvalidPoint = errors.New("invalid point")

	// ErrSingularCurve means 4A^3 + 27B^2 = 0.
	ErrSingularCurve = errors.New("singular curve")

	// ErrCurveMismatch means two points on different curves were combined.
	// Add panics with an error wrapping it.
	ErrCurveMismatch = errors.New("points are on different curves")

	// ErrInvariant means point addition produced an invalid result. This is a
	// programming error (for example a composite modulus); Add panics with an
	// error wrapping it.
	ErrInvariant = errors.New("curve arithmetic invariant violated")
)

// PointError is returned when a point cannot be constructed.
type PointError struct {
	Curve  string
	Reason string
	Err    error
}

func (e *PointError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("curve %s: %s: %v", e.Curve, e.Reason, e.Err)
	}
	return fmt.Sprintf("curve %s: %v", e.Curve, e.Err)
}

func (e *PointError) Unwrap() error {
	return e.Err
}
