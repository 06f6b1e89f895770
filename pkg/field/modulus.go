package field

import (
	"crypto/elliptic"
	"errors"
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254/fp"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/holiman/uint256"
)

// ErrNotPrime is returned by ValidateModulus for a composite or too small modulus.
var ErrNotPrime = errors.New("field: modulus is not prime")

// Modulus fixes the prime p of a field. Implementations are zero-size struct
// types whose Prime method returns the same value on every call:
//
//	type F223 struct{}
//
//	func (F223) Prime() uint256.Int { return *uint256.NewInt(223) }
//
// p must be prime for Inverse, Div and Pow to be meaningful. This is a
// precondition of the type and is not rechecked per operation; use
// ValidateModulus once when defining a new modulus.
type Modulus interface {
	Prime() uint256.Int
}

func prime[M Modulus]() uint256.Int {
	var m M
	return m.Prime()
}

// ValidateModulus checks that the prime of M is actually prime.
func ValidateModulus[M Modulus]() error {
	p := prime[M]()
	if p.Lt(uint256.NewInt(2)) {
		return fmt.Errorf("%w: %s", ErrNotPrime, p.Dec())
	}
	if !p.ToBig().ProbablyPrime(20) {
		return fmt.Errorf("%w: %s", ErrNotPrime, p.Dec())
	}
	return nil
}

var (
	secp256k1P  = uint256.MustFromBig(secp256k1.S256().Params().P)
	bn254P      = uint256.MustFromBig(fp.Modulus())
	p256P       = uint256.MustFromBig(elliptic.P256().Params().P)
	curve25519P = uint256.MustFromHex("0x7fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffed")
)

// Secp256k1 is the base field of secp256k1, p = 2^256 - 2^32 - 977.
type Secp256k1 struct{}

func (Secp256k1) Prime() uint256.Int { return *secp256k1P }

// BN254 is the base field of the BN254 (alt_bn128) pairing curve.
type BN254 struct{}

func (BN254) Prime() uint256.Int { return *bn254P }

// P256 is the base field of NIST P-256, p = 2^256 - 2^224 + 2^192 + 2^96 - 1.
type P256 struct{}

func (P256) Prime() uint256.Int { return *p256P }

// Curve25519 is GF(2^255 - 19).
type Curve25519 struct{}

func (Curve25519) Prime() uint256.Int { return *curve25519P }
