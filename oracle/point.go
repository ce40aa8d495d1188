package oracle

import (
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// PointLength is the size of a SEC1 compressed point encoding.
const PointLength = 33

// Point is the library's internal elliptic curve point representation
// and is a wrapper around `secp256k1.JacobianPoint` https://github.com/decred/dcrd/tree/master/dcrec/secp256k1.
//
// Every method leaves the point in affine form (Z = 1), so X and Y can be read
// directly. The point at infinity is represented with X = Y = 0.
type Point struct {
	*secp256k1.JacobianPoint
}

// SetBytes decodes a 33 byte compressed encoding into p. Uncompressed and
// hybrid encodings are rejected.
func (p *Point) SetBytes(bc []byte) error {
	if len(bc) != PointLength {
		str := fmt.Sprintf("malformed point: got %d bytes, want %d", len(bc),
			PointLength)
		return makeError(ErrInvalidPointEncoding, str)
	}

	pk, err := secp256k1.ParsePubKey(bc)
	if err != nil {
		str := fmt.Sprintf("malformed point: %v", err)
		return makeError(ErrInvalidPointEncoding, str)
	}

	p.JacobianPoint = new(secp256k1.JacobianPoint)
	pk.AsJacobian(p.JacobianPoint)
	return nil
}

// Bytes returns the 33 byte compressed encoding of p.
func (p *Point) Bytes() ([]byte, error) {
	if p.IsInfinity() {
		return nil, makeError(ErrPointAtInfinity,
			"point at infinity has no compressed encoding")
	}

	return secp256k1.NewPublicKey(&p.X, &p.Y).SerializeCompressed(), nil
}

// XY returns the affine coordinates of p.
func (p *Point) XY() (*secp256k1.FieldVal, *secp256k1.FieldVal, error) {
	if p.IsInfinity() {
		return nil, nil, makeError(ErrPointAtInfinity,
			"point at infinity does not have valid coordinates")
	}
	return &p.X, &p.Y, nil
}

// IsInfinity reports whether p is the point at infinity.
func (p *Point) IsInfinity() bool {
	return p.JacobianPoint == nil || (p.X.IsZero() && p.Y.IsZero())
}

// BaseExp sets p to k*G.
func (p *Point) BaseExp(k *secp256k1.ModNScalar) {
	p.newInnerIfNil()
	secp256k1.ScalarBaseMultNonConst(k, p.JacobianPoint)
	p.JacobianPoint.ToAffine()
}

// Scale sets p to k*point.
func (p *Point) Scale(point *Point, k *secp256k1.ModNScalar) {
	p.newInnerIfNil()
	secp256k1.ScalarMultNonConst(k, point.JacobianPoint, p.JacobianPoint)
	p.JacobianPoint.ToAffine()
}

// Add sets p to a+b.
func (p *Point) Add(a, b *Point) {
	p.newInnerIfNil()
	secp256k1.AddNonConst(a.JacobianPoint, b.JacobianPoint, p.JacobianPoint)
	p.JacobianPoint.ToAffine()
}

func (p *Point) Equal(other *Point) bool {
	if p.IsInfinity() || other.IsInfinity() {
		return p.IsInfinity() && other.IsInfinity()
	}
	return p.X.Equals(&other.X) && p.Y.Equals(&other.Y)
}

func (p *Point) Copy() *Point {
	p2 := new(secp256k1.JacobianPoint)
	if p.JacobianPoint != nil {
		p2.Set(p.JacobianPoint)
	}
	return &Point{
		JacobianPoint: p2,
	}
}

func (p *Point) newInnerIfNil() {
	if p.JacobianPoint == nil {
		p.JacobianPoint = new(secp256k1.JacobianPoint)
	}
}
