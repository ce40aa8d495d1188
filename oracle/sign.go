package oracle

import (
	"encoding/json"
	"fmt"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// ComputeSignature computes the oracle's signature scalar over msg,
// s = k - e*a mod n with e = SHA256(msg || rX) and R = kG.
//
// priv is the oracle's private scalar a and k the one-time nonce whose point R
// was announced for msg. The 32 byte result is the s half of the signature
// (R, s); R itself is not returned.
func ComputeSignature(priv, k, msg []byte) ([]byte, error) {
	a, err := parsePrivateScalar(priv, "private key")
	if err != nil {
		return nil, err
	}
	defer a.Zero()

	nonce, err := parsePrivateScalar(k, "nonce")
	if err != nil {
		return nil, err
	}
	defer nonce.Zero()

	R := new(Point)
	R.BaseExp(nonce)

	bigE, err := challenge(msg, R)
	if err != nil {
		return nil, err
	}
	e := S256().modNScalar(bigE)

	// s = k + (-(e*a))
	s := new(secp256k1.ModNScalar).Mul2(e, a).Negate().Add(nonce)
	sb := s.Bytes()

	log.Tracef("Computed signature scalar for %d byte message", len(msg))
	return sb[:], nil
}

// encodedAttestationSize is R (33 bytes) followed by s (32 bytes).
const encodedAttestationSize = PointLength + ScalarLength

// Attestation is the oracle's complete signature (R, s) over a message.
type Attestation struct {
	R []byte
	S []byte
}

// Attest signs msg like ComputeSignature and bundles the scalar with the
// nonce point R = kG.
func Attest(priv, k, msg []byte) (*Attestation, error) {
	s, err := ComputeSignature(priv, k, msg)
	if err != nil {
		return nil, err
	}

	R, err := DerivePublicKey(k)
	if err != nil {
		return nil, err
	}

	return &Attestation{
		R: R,
		S: s,
	}, nil
}

// Encode encodes Attestation into a 65 bytes buffer (R||s).
func (att *Attestation) Encode() ([]byte, error) {
	if len(att.R) != PointLength || len(att.S) != ScalarLength {
		return nil, makeError(ErrInvalidAttestation,
			"attestation R or s has the wrong length")
	}

	var b [encodedAttestationSize]byte
	copy(b[:PointLength], att.R)
	copy(b[PointLength:], att.S)
	return b[:], nil
}

// Decode parses a 65 bytes buffer `b` into the receiver Attestation. R must be
// a valid compressed point.
func (att *Attestation) Decode(b []byte) error {
	if len(b) != encodedAttestationSize {
		str := fmt.Sprintf("attestation encoding must be %d bytes, got %d",
			encodedAttestationSize, len(b))
		return makeError(ErrInvalidAttestation, str)
	}

	if _, err := S256().Decode(b[:PointLength]); err != nil {
		return err
	}

	att.R = append([]byte(nil), b[:PointLength]...)
	att.S = append([]byte(nil), b[PointLength:]...)
	return nil
}

// MarshalJSON serializes Attestation into JSON format based on the Encode method.
func (att *Attestation) MarshalJSON() ([]byte, error) {
	b, err := att.Encode()
	if err != nil {
		return nil, err
	}

	return json.Marshal(b)
}

// UnmarshalJSON deserializes JSON formatted bytes into Attestation.
func (att *Attestation) UnmarshalJSON(in []byte) error {
	var b []byte
	if err := json.Unmarshal(in, &b); err != nil {
		return err
	}

	return att.Decode(b)
}
