package field

import (
	"errors"
	"math/big"

	"github.com/holiman/uint256"
)

var (
	// ErrDivisionByZero is returned when inverting or dividing by the zero element.
	ErrDivisionByZero = errors.New("field: division by zero")

	// ErrZeroPower is returned for 0^n with n <= 0.
	ErrZeroPower = errors.New("field: zero raised to a non-positive power")
)

// Element is an element of Z/pZ where p is fixed by the type parameter M.
// Elements of different moduli are different types and cannot be combined.
//
// The zero value is the zero element. The stored value is always in [0, p).
type Element[M Modulus] struct {
	v uint256.Int
}

// New wraps raw as a field element, reducing it into [0, p).
// Negative values are reduced the Euclidean way, so New(-1) is p-1.
func New[M Modulus](raw int64) Element[M] {
	p := prime[M]()
	if raw >= 0 {
		return Element[M]{v: *new(uint256.Int).Mod(uint256.NewInt(uint64(raw)), &p)}
	}

	// -(raw+1)+1 keeps math.MinInt64 in range
	mag := uint256.NewInt(uint64(-(raw + 1)) + 1)
	r := new(uint256.Int).Mod(mag, &p)
	if r.IsZero() {
		return Element[M]{}
	}
	return Element[M]{v: *new(uint256.Int).Sub(&p, r)}
}

// FromUint64 returns x mod p.
func FromUint64[M Modulus](x uint64) Element[M] {
	return FromUint256[M](uint256.NewInt(x))
}

// FromUint256 returns x mod p.
func FromUint256[M Modulus](x *uint256.Int) Element[M] {
	p := prime[M]()
	return Element[M]{v: *new(uint256.Int).Mod(x, &p)}
}

// FromBig returns x mod p. Negative values are reduced the Euclidean way.
func FromBig[M Modulus](x *big.Int) Element[M] {
	p := prime[M]()
	r := new(big.Int).Mod(x, p.ToBig())
	v, _ := uint256.FromBig(r)
	return Element[M]{v: *v}
}

// Zero returns the additive identity.
func Zero[M Modulus]() Element[M] {
	return Element[M]{}
}

// One returns the multiplicative identity.
func One[M Modulus]() Element[M] {
	return FromUint64[M](1)
}

// Zero returns the additive identity of a's field.
func (Element[M]) Zero() Element[M] {
	return Zero[M]()
}

// One returns the multiplicative identity of a's field.
func (Element[M]) One() Element[M] {
	return One[M]()
}

// Modulus returns p.
func (Element[M]) Modulus() uint256.Int {
	return prime[M]()
}

// Add returns a + b mod p.
func (a Element[M]) Add(b Element[M]) Element[M] {
	p := prime[M]()
	var r Element[M]
	r.v.AddMod(&a.v, &b.v, &p)
	return r
}

// Sub returns a - b mod p.
func (a Element[M]) Sub(b Element[M]) Element[M] {
	var r Element[M]
	if !a.v.Lt(&b.v) {
		r.v.Sub(&a.v, &b.v)
		return r
	}
	// a < b < p, so a + (p - b) stays below p
	p := prime[M]()
	var t uint256.Int
	t.Sub(&p, &b.v)
	r.v.Add(&a.v, &t)
	return r
}

// Neg returns -a mod p.
func (a Element[M]) Neg() Element[M] {
	return Zero[M]().Sub(a)
}

// Mul returns a * b mod p. The full 512-bit product is reduced.
func (a Element[M]) Mul(b Element[M]) Element[M] {
	p := prime[M]()
	var r Element[M]
	r.v.MulMod(&a.v, &b.v, &p)
	return r
}

// Square returns a * a mod p.
func (a Element[M]) Square() Element[M] {
	return a.Mul(a)
}

// Exp returns a^e mod p by left-to-right square-and-multiply.
// The exponent is used as given; Exp(0) is 1 for every base.
func (a Element[M]) Exp(e *uint256.Int) Element[M] {
	r := One[M]()
	for i := e.BitLen() - 1; i >= 0; i-- {
		r = r.Square()
		if (e[i/64]>>(uint(i)%64))&1 == 1 {
			r = r.Mul(a)
		}
	}
	return r
}

// Pow returns a^n. For a != 0 the exponent is first reduced modulo p-1
// (Fermat), so negative exponents give powers of the inverse and any n that
// is a multiple of p-1 gives 1. For a == 0, positive n gives 0 and n <= 0
// returns ErrZeroPower.
func (a Element[M]) Pow(n int64) (Element[M], error) {
	if a.IsZero() {
		if n > 0 {
			return a, nil
		}
		return Element[M]{}, ErrZeroPower
	}

	p := prime[M]()
	order := new(uint256.Int).Sub(&p, uint256.NewInt(1))

	var mag *uint256.Int
	if n >= 0 {
		mag = uint256.NewInt(uint64(n))
	} else {
		mag = uint256.NewInt(uint64(-(n + 1)) + 1)
	}
	e := new(uint256.Int).Mod(mag, order)
	if n < 0 && !e.IsZero() {
		e.Sub(order, e)
	}
	return a.Exp(e), nil
}

// Inverse returns a^(p-2), the multiplicative inverse of a.
func (a Element[M]) Inverse() (Element[M], error) {
	if a.IsZero() {
		return Element[M]{}, ErrDivisionByZero
	}
	p := prime[M]()
	e := new(uint256.Int).Sub(&p, uint256.NewInt(2))
	return a.Exp(e), nil
}

// Div returns a * b^(p-2) mod p.
func (a Element[M]) Div(b Element[M]) (Element[M], error) {
	inv, err := b.Inverse()
	if err != nil {
		return Element[M]{}, err
	}
	return a.Mul(inv), nil
}

// Equal reports whether a and b are the same element.
func (a Element[M]) Equal(b Element[M]) bool {
	return a.v.Eq(&b.v)
}

// IsZero reports whether a is the additive identity.
func (a Element[M]) IsZero() bool {
	return a.v.IsZero()
}

// Value returns the canonical representative in [0, p).
func (a Element[M]) Value() uint256.Int {
	return a.v
}

// BigInt returns the canonical representative as a big.Int.
func (a Element[M]) BigInt() *big.Int {
	return a.v.ToBig()
}

// String returns the canonical representative in decimal.
func (a Element[M]) String() string {
	return a.v.Dec()
}
