package curves

import (
	"crypto/elliptic"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"

	"github.com/smallyu/go-weierstrass/pkg/field"
	"github.com/smallyu/go-weierstrass/pkg/rational"
)

type (
	Secp256k1Element = field.Element[field.Secp256k1]
	Secp256k1Curve   = Curve[Secp256k1Element]
	Secp256k1Point   = Point[Secp256k1Element]

	BN254Element = field.Element[field.BN254]
	BN254Curve   = Curve[BN254Element]
	BN254Point   = Point[BN254Element]

	P256Element = field.Element[field.P256]
	P256Curve   = Curve[P256Element]
	P256Point   = Point[P256Element]
)

// Secp256k1 returns y^2 = x^3 + 7 over the secp256k1 base field and its generator.
func Secp256k1() (*Secp256k1Curve, Secp256k1Point) {
	params := secp256k1.S256().Params()
	return preset[field.Secp256k1]("secp256k1", big.NewInt(0), params.B, params.Gx, params.Gy)
}

// BN254 returns y^2 = x^3 + 3 over the BN254 base field and the G1 generator.
func BN254() (*BN254Curve, BN254Point) {
	_, _, g1, _ := bn254.Generators()
	return preset[field.BN254]("bn254", big.NewInt(0), big.NewInt(3),
		g1.X.BigInt(new(big.Int)), g1.Y.BigInt(new(big.Int)))
}

// P256 returns NIST P-256 (A = -3) and its generator.
func P256() (*P256Curve, P256Point) {
	params := elliptic.P256().Params()
	return preset[field.P256]("p256", big.NewInt(-3), params.B, params.Gx, params.Gy)
}

func preset[M field.Modulus](name string, a, b, gx, gy *big.Int) (*Curve[field.Element[M]], Point[field.Element[M]]) {
	c := MustCurve(name, field.FromBig[M](a), field.FromBig[M](b))
	g, err := c.Affine(field.FromBig[M](gx), field.FromBig[M](gy))
	if err != nil {
		panic(err)
	}
	return c, g
}

// OverQ returns y^2 = x^3 + ax + b with exact rational coordinates.
func OverQ(name string, a, b int64) (*Curve[rational.Number], error) {
	return NewCurve(name, rational.FromInt(a), rational.FromInt(b))
}
