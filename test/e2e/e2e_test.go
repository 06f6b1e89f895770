package e2e

import (
	"crypto/elliptic"
	"math/big"
	"testing"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smallyu/go-weierstrass/pkg/curves"
	"github.com/smallyu/go-weierstrass/pkg/field"
)

const walk = 24

// multiples returns G, 2G, ..., nG built by repeated addition.
func multiples[E curves.Coordinate[E]](g curves.Point[E], n int) []curves.Point[E] {
	out := make([]curves.Point[E], 0, n)
	acc := g
	for i := 0; i < n; i++ {
		out = append(out, acc)
		acc = acc.Add(g)
	}
	return out
}

func coords[M field.Modulus](t *testing.T, p curves.Point[field.Element[M]]) (string, string) {
	t.Helper()
	x, y, ok := p.XY()
	require.True(t, ok, "unexpected infinity")
	return x.String(), y.String()
}

func TestSecp256k1AgainstBtcec(t *testing.T) {
	_, g := curves.Secp256k1()
	ref := btcec.S256()

	for i, p := range multiples(g, walk) {
		k := big.NewInt(int64(i + 1))
		rx, ry := ref.ScalarBaseMult(k.Bytes())
		x, y := coords(t, p)
		assert.Equal(t, rx.String(), x, "x of %dG", i+1)
		assert.Equal(t, ry.String(), y, "y of %dG", i+1)
	}
}

func TestBN254AgainstGnark(t *testing.T) {
	_, g := curves.BN254()
	g1Jac, _, _, _ := bn254.Generators()

	var acc bn254.G1Jac
	acc.Set(&g1Jac)
	for i, p := range multiples(g, walk) {
		var aff bn254.G1Affine
		aff.FromJacobian(&acc)

		x, y := coords(t, p)
		assert.Equal(t, aff.X.BigInt(new(big.Int)).String(), x, "x of %dG", i+1)
		assert.Equal(t, aff.Y.BigInt(new(big.Int)).String(), y, "y of %dG", i+1)

		acc.AddAssign(&g1Jac)
	}
}

func TestP256AgainstStdlib(t *testing.T) {
	_, g := curves.P256()
	ref := elliptic.P256()

	for i, p := range multiples(g, walk) {
		k := big.NewInt(int64(i + 1))
		rx, ry := ref.ScalarBaseMult(k.Bytes())
		x, y := coords(t, p)
		assert.Equal(t, rx.String(), x, "x of %dG", i+1)
		assert.Equal(t, ry.String(), y, "y of %dG", i+1)
	}
}

// groupLaw checks identity, inverses, commutativity, associativity and
// closure over every pair and triple of pts.
func groupLaw[E curves.Coordinate[E]](t *testing.T, c *curves.Curve[E], pts []curves.Point[E]) {
	t.Helper()
	inf := c.Infinity()
	for _, a := range pts {
		require.True(t, a.Add(inf).Equal(a))
		require.True(t, inf.Add(a).Equal(a))
		require.True(t, a.Add(a.Neg()).IsInfinity())

		for _, b := range pts {
			ab := a.Add(b)
			require.True(t, ab.Equal(b.Add(a)))
			if x, y, ok := ab.XY(); ok {
				require.True(t, c.Contains(x, y))
			}
		}
	}
	for _, a := range pts[:6] {
		for _, b := range pts[:6] {
			for _, d := range pts[:6] {
				require.True(t, a.Add(b).Add(d).Equal(a.Add(b.Add(d))))
			}
		}
	}
}

func TestGroupLawOnPresets(t *testing.T) {
	t.Run("secp256k1", func(t *testing.T) {
		c, g := curves.Secp256k1()
		pts := multiples(g, 10)
		groupLaw(t, c, append(pts, pts[3].Neg(), c.Infinity()))
	})

	t.Run("bn254", func(t *testing.T) {
		c, g := curves.BN254()
		pts := multiples(g, 10)
		groupLaw(t, c, append(pts, pts[5].Neg(), c.Infinity()))
	})

	t.Run("p256", func(t *testing.T) {
		c, g := curves.P256()
		pts := multiples(g, 10)
		groupLaw(t, c, append(pts, pts[1].Neg(), c.Infinity()))
	})
}

func TestAdditionIsLinear(t *testing.T) {
	// iG + jG = (i+j)G
	_, g := curves.Secp256k1()
	ms := multiples(g, 2*walk)
	for i := 0; i < walk; i++ {
		for j := 0; j < walk; j++ {
			require.True(t, ms[i].Add(ms[j]).Equal(ms[i+j+1]), "%dG + %dG", i+1, j+1)
		}
	}
}
