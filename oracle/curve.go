package oracle

import (
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// Curve holds the secp256k1 domain parameters and exposes the group
// operations the oracle needs. A Curve is never mutated after construction and
// is safe for concurrent use.
type Curve struct {
	n *big.Int
	p *big.Int
	g *Point
}

var s256 = newS256()

func newS256() *Curve {
	params := secp256k1.S256().Params()

	g := new(secp256k1.JacobianPoint)
	g.X.SetByteSlice(params.Gx.Bytes())
	g.Y.SetByteSlice(params.Gy.Bytes())
	g.Z.SetInt(1)

	return &Curve{
		n: new(big.Int).Set(params.N),
		p: new(big.Int).Set(params.P),
		g: &Point{JacobianPoint: g},
	}
}

// S256 returns the secp256k1 curve context.
func S256() *Curve {
	return s256
}

// N returns a copy of the group order.
func (c *Curve) N() *big.Int {
	return new(big.Int).Set(c.n)
}

// P returns a copy of the field prime.
func (c *Curve) P() *big.Int {
	return new(big.Int).Set(c.p)
}

// G returns a copy of the generator point.
func (c *Curve) G() *Point {
	return c.g.Copy()
}

// ScalarBaseMult returns k*G. k is reduced modulo n.
func (c *Curve) ScalarBaseMult(k *big.Int) *Point {
	res := new(Point)
	res.BaseExp(c.modNScalar(k))
	return res
}

// ScalarMult returns k*pt. Every point on secp256k1 has order n, so k is
// reduced modulo n first.
func (c *Curve) ScalarMult(pt *Point, k *big.Int) *Point {
	res := new(Point)
	res.Scale(pt, c.modNScalar(k))
	return res
}

// Add returns a+b.
func (c *Curve) Add(a, b *Point) *Point {
	res := new(Point)
	res.Add(a, b)
	return res
}

// Negate returns (x, -y mod p). The y coordinate lives in the base field, so
// the reduction is by the field prime p and never by the group order n.
func (c *Curve) Negate(pt *Point) *Point {
	if pt.IsInfinity() {
		return pt.Copy()
	}

	yb := pt.Y.Bytes()
	y := new(big.Int).SetBytes(yb[:])
	y.Neg(y)
	y.Mod(y, c.p)

	var buf [32]byte
	y.FillBytes(buf[:])

	res := new(secp256k1.JacobianPoint)
	res.X.Set(&pt.X)
	res.Y.SetBytes(&buf)
	res.Z.SetInt(1)
	return &Point{JacobianPoint: res}
}

// Encode returns the compressed encoding of pt.
func (c *Curve) Encode(pt *Point) ([]byte, error) {
	return pt.Bytes()
}

// Decode parses a compressed point and checks that it lies on the curve.
func (c *Curve) Decode(b []byte) (*Point, error) {
	pt := new(Point)
	if err := pt.SetBytes(b); err != nil {
		return nil, err
	}
	return pt, nil
}

func (c *Curve) modNScalar(k *big.Int) *secp256k1.ModNScalar {
	var buf [32]byte
	new(big.Int).Mod(k, c.n).FillBytes(buf[:])

	s := new(secp256k1.ModNScalar)
	s.SetBytes(&buf)
	return s
}
