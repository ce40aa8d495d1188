package oracle

import (
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"

	"github.com/decred/dcrd/crypto/blake256"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// NonceFunc defines nonce generation algorithm. It returns the 32 raw bytes of
// a one-time signing scalar.
type NonceFunc = func() ([]byte, error)

// eventNonceTag separates event nonces from RFC6979 nonces the same key may
// produce for other signature schemes.
//
// It is equal to BLAKE-256([]byte("DLC-Oracle-Event-Nonce-v0")).
var eventNonceTag = blake256.Sum256([]byte("DLC-Oracle-Event-Nonce-v0"))

// GenerateNonce returns a fresh one-time signing scalar k. The companion point
// R = kG to publish is DerivePublicKey(k).
//
// By default 32 bytes are drawn from crypto/rand. The bytes are not reduced;
// a draw that is zero or not below the group order fails with ErrWeakNonce.
//
// A nonce must be generated once per attested message and kept unmodified
// until ComputeSignature for that message. Signing two messages with the
// same nonce reveals the private key.
func GenerateNonce(nonceFnOpt ...NonceFunc) ([]byte, error) {
	nonceFn := WithRandom(rand.Reader)
	if len(nonceFnOpt) > 0 {
		nonceFn = nonceFnOpt[0]
	}

	k, err := nonceFn()
	if err != nil {
		return nil, err
	}

	if _, err := parsePrivateScalar(k, "nonce"); err != nil {
		return nil, Error{Err: ErrWeakNonce, Description: err.Error()}
	}
	return k, nil
}

// WithRandom can be used to specify the entropy source nonces are drawn from.
func WithRandom(r io.Reader) NonceFunc {
	return func() ([]byte, error) {
		k := make([]byte, ScalarLength)
		if _, err := io.ReadFull(r, k); err != nil {
			return nil, fmt.Errorf("read nonce entropy: %w", err)
		}
		return k, nil
	}
}

// WithRFC6979 can be used to derive an event's nonce deterministically from
// the oracle's private key and an event identifier, so R points can be
// announced ahead of time without storing k.
//
// Each event ID must name exactly one message; the same ID always yields the
// same nonce.
func WithRFC6979(priv []byte, eventID []byte) NonceFunc {
	return func() ([]byte, error) {
		if _, err := parsePrivateScalar(priv, "private key"); err != nil {
			return nil, err
		}

		hash := sha256.Sum256(eventID)
		for iter := uint32(0); ; iter++ {
			k := secp256k1.NonceRFC6979(priv, hash[:], eventNonceTag[:], nil, iter)
			if k == nil || k.IsZero() {
				continue
			}

			kb := k.Bytes()
			return kb[:], nil
		}
	}
}
