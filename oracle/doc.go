/*
Package oracle implements the signature math of a Discreet Log Contract oracle
over secp256k1.

An oracle holding private key a (public key A = aG) commits to a one-time
nonce k per event by announcing R = kG. When the outcome is known it publishes

	s = k - e*a mod n,  e = SHA256(m || rX)

where m is the outcome message and rX is R's x coordinate with any leading
zero sign byte stripped. Before s exists, anyone can compute the matching
public point

	S = R - e*A = sG

with ComputeSignaturePublicKey and lock settlement transactions to it.

Every function is a pure function of its arguments apart from GenerateNonce,
which consumes entropy, and is safe for concurrent use.

Typical flow:

	k, _ := oracle.GenerateNonce()
	R, _ := oracle.DerivePublicKey(k) // announce R
	m := oracle.NumericMessage(42)
	S, _ := oracle.ComputeSignaturePublicKey(A, R, m) // counterparties
	s, _ := oracle.ComputeSignature(a, k, m)          // oracle, once
*/
package oracle
