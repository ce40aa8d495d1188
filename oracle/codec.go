package oracle

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// ScalarLength is the size of an encoded big-endian scalar.
const ScalarLength = 32

// EncodeScalar encodes x as a 32 byte big-endian buffer, zero-padded on the
// left.
func EncodeScalar(x *big.Int) ([]byte, error) {
	if x.Sign() < 0 {
		return nil, makeError(ErrInvalidScalar, "scalar is negative")
	}
	if x.BitLen() > ScalarLength*8 {
		str := fmt.Sprintf("scalar needs %d bits, more than %d", x.BitLen(),
			ScalarLength*8)
		return nil, makeError(ErrScalarTooLarge, str)
	}

	b := make([]byte, ScalarLength)
	x.FillBytes(b)
	return b, nil
}

// DecodeScalar interprets b as an unsigned big-endian integer.
func DecodeScalar(b []byte) *big.Int {
	return new(big.Int).SetBytes(b)
}

// NumericMessage canonicalizes an outcome value into the 32 byte message the
// oracle signs.
//
// The value is written as 64 hex digits of its 64-bit two's complement form,
// so the high 24 bytes are always zero and the low 8 bytes hold the value
// big-endian. Negative values are therefore not sign extended: -1 becomes
// 24 zero bytes followed by eight 0xff bytes.
func NumericMessage(value int64) []byte {
	b := make([]byte, ScalarLength)
	binary.BigEndian.PutUint64(b[ScalarLength-8:], uint64(value))
	return b
}

// stripLeadingZeroByte removes a single leading zero byte from b.
func stripLeadingZeroByte(b []byte) ([]byte, error) {
	if len(b) == 0 {
		return nil, makeError(ErrEmptyInput, "cannot strip an empty buffer")
	}
	if b[0] == 0 {
		return b[1:], nil
	}
	return b, nil
}

// signedBytes returns the minimal big-endian two's complement encoding of a
// non-negative x: a zero sign byte is prepended when the high bit is set and
// zero encodes as a single zero byte.
func signedBytes(x *big.Int) []byte {
	b := x.Bytes()
	if len(b) == 0 || b[0]&0x80 != 0 {
		b = append([]byte{0}, b...)
	}
	return b
}

// coordinateHashBytes returns the bytes of a field element as they are fed to
// the challenge hash.
func coordinateHashBytes(f *secp256k1.FieldVal) ([]byte, error) {
	fb := f.Bytes()
	return stripLeadingZeroByte(signedBytes(new(big.Int).SetBytes(fb[:])))
}

// challenge computes e = SHA256(msg || rX) as a scalar, where rX is R's x
// coordinate with its sign byte stripped. Both the signer and the adaptor
// point computation must build this input identically.
func challenge(msg []byte, R *Point) (*big.Int, error) {
	rx, _, err := R.XY()
	if err != nil {
		return nil, err
	}

	rX, err := coordinateHashBytes(rx)
	if err != nil {
		return nil, err
	}

	h := sha256.New()
	h.Write(msg)
	h.Write(rX)
	return DecodeScalar(h.Sum(nil)), nil
}
