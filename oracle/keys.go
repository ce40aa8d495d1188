package oracle

import (
	"encoding/hex"
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// Keypair defines the oracle's long-term private scalar a and public key A = aG.
type Keypair struct {
	private []byte
	public  []byte
}

// DerivePublicKey computes priv*G and returns it compressed.
//
// priv must be a 32 byte big-endian scalar in [1, n-1].
func DerivePublicKey(priv []byte) ([]byte, error) {
	d, err := parsePrivateScalar(priv, "private key")
	if err != nil {
		return nil, err
	}

	pub := new(Point)
	pub.BaseExp(d)
	return pub.Bytes()
}

// GenerateKeypair generates a random private scalar and derives its public key.
func GenerateKeypair() (*Keypair, error) {
	priv, err := secp256k1.GeneratePrivateKey()
	if err != nil {
		return nil, fmt.Errorf("generate private key: %w", err)
	}

	return keypairFromBytes(priv.Serialize())
}

// KeypairFromHex decodes hex formatted (without "0x") string `s` into a Keypair.
func KeypairFromHex(s string) (*Keypair, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, makeError(ErrInvalidScalar,
			fmt.Sprintf("private key is not hex: %v", err))
	}
	return keypairFromBytes(b)
}

func keypairFromBytes(priv []byte) (*Keypair, error) {
	pub, err := DerivePublicKey(priv)
	if err != nil {
		return nil, err
	}

	return &Keypair{
		private: append([]byte(nil), priv...),
		public:  pub,
	}, nil
}

// Private returns a copy of the 32 byte private scalar.
func (kp *Keypair) Private() []byte {
	return append([]byte(nil), kp.private...)
}

// Public returns a copy of the 33 byte compressed public key.
func (kp *Keypair) Public() []byte {
	return append([]byte(nil), kp.public...)
}

// parsePrivateScalar strictly decodes a 32 byte scalar in [1, n-1]. name is
// used in error descriptions only; the scalar's value never is.
func parsePrivateScalar(b []byte, name string) (*secp256k1.ModNScalar, error) {
	if len(b) != ScalarLength {
		str := fmt.Sprintf("malformed %s: got %d bytes, want %d", name, len(b),
			ScalarLength)
		return nil, makeError(ErrInvalidScalar, str)
	}

	s := new(secp256k1.ModNScalar)
	if overflow := s.SetByteSlice(b); overflow {
		str := fmt.Sprintf("%s is not less than the group order", name)
		return nil, makeError(ErrInvalidScalar, str)
	}
	if s.IsZero() {
		return nil, makeError(ErrInvalidScalar, fmt.Sprintf("%s is zero", name))
	}
	return s, nil
}
