package benchmark

import (
	"testing"

	"github.com/holiman/uint256"

	"github.com/smallyu/go-weierstrass/pkg/curves"
	"github.com/smallyu/go-weierstrass/pkg/field"
	"github.com/smallyu/go-weierstrass/pkg/rational"
)

var (
	benchA = field.FromUint256[field.Secp256k1](uint256.MustFromHex("0x3b6a27bcceb6a42d62a3a8d02a6f0d73653215771de243a63ac048a18b59da29"))
	benchB = field.FromUint256[field.Secp256k1](uint256.MustFromHex("0x4f6e8f2b3c7d1a5e9b0c2d4f6a8b1c3e5d7f9a0b2c4d6e8f1a3b5c7d9e0f1a2"))
)

func BenchmarkFieldMul(b *testing.B) {
	x, y := benchA, benchB
	for i := 0; i < b.N; i++ {
		x = x.Mul(y)
	}
	_ = x
}

func BenchmarkFieldAdd(b *testing.B) {
	x, y := benchA, benchB
	for i := 0; i < b.N; i++ {
		x = x.Add(y)
	}
	_ = x
}

func BenchmarkFieldInverse(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := benchA.Inverse(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkFieldPow(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, err := benchA.Pow(-1); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkPointAddSecp256k1(b *testing.B) {
	_, g := curves.Secp256k1()
	p := g.Add(g)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p = p.Add(g)
	}
}

func BenchmarkPointDoubleSecp256k1(b *testing.B) {
	_, g := curves.Secp256k1()
	p := g
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p = p.Add(p)
	}
}

func BenchmarkPointAddRational(b *testing.B) {
	c, err := curves.OverQ("y^2 = x^3 + 5x + 7", 5, 7)
	if err != nil {
		b.Fatal(err)
	}
	p, err := c.Affine(rational.FromInt(2), rational.FromInt(5))
	if err != nil {
		b.Fatal(err)
	}
	r, err := c.Affine(rational.FromInt(-1), rational.FromInt(-1))
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = p.Add(r)
	}
}
