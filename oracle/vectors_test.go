package oracle

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

// Fixed regression vectors. The private key and nonce are arbitrary; the
// remaining values were computed once and must never change.
const (
	testPrivHex  = "e9873d79c6d87dc0fb6a5778633389f4453213303da61f20bd67fc233aa33262"
	testNonceHex = "0b432b2677937381aef05bb02a66ecd012773062cf3fa2549e44f58ed2401710"
	testPubAHex  = "02588d202afcc1ee4ab5254c7847ec25b9a135bbda0f2bc69ee1a714749fd77dc9"
	testPubRHex  = "0325d1dff95105f5253c4022f628a996ad3a0d95fbf21d468a1b33f8c160d8f517"
)

type signatureVector struct {
	name     string
	nonceHex string
	pubRHex  string
	msg      []byte
	sigHex   string
	pointHex string
}

var signatureVectors = []signatureVector{{
	name:     "numeric outcome 42",
	nonceHex: testNonceHex,
	pubRHex:  testPubRHex,
	msg:      NumericMessage(42),
	sigHex:   "35904cf9e1d15b4e20864c4b4ce04296ba2beeaf09e2fd8b2dc81fce386137a6",
	pointHex: "0381d2ec9cb9274efc002ef08710d14d058121737cb2bd25fb3ce59df7d9583e4c",
}, {
	name:     "raw message",
	nonceHex: testNonceHex,
	pubRHex:  testPubRHex,
	msg:      []byte("hello"),
	sigHex:   "8846a5f4fa5b83bf01d36aa458d4b1d16b4f77e09e5f4da0b1d81fde01ecf399",
	pointHex: "039152675b5a124b61b52ce724152103dfe61596a5912411c331fb6d08a606b7fe",
}, {
	// R's x coordinate begins with a zero byte, which is not hashed.
	name:     "nonce point with leading zero x",
	nonceHex: "0000000000000000000000000000000000000000000000000000000000000099",
	pubRHex:  "0200e3ae1974566ca06cc516d47e0fb165a674a3dabcfca15e722f0e3450f45889",
	msg:      NumericMessage(7),
	sigHex:   "44fe9dcf6aa0845ceb63f46bca6e755f7da50924e16cb45eda8b2a357e21d11b",
	pointHex: "025b396209c0b728cdffa6823fb3c1f8466379182c0a75fe5d382eba887510f578",
}}

func mustDecodeHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}
