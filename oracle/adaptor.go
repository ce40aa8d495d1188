package oracle

// ComputeSignaturePublicKey computes the adaptor point S = R - e*A, the public
// key of the signature scalar the oracle will publish for msg, where
// e = SHA256(msg || rX).
//
// Only public data is involved, so a counterparty can build settlement
// transactions keyed to S before the oracle signs. Once the oracle publishes
// s = ComputeSignature(a, k, msg), s*G equals S.
func ComputeSignaturePublicKey(oraclePubA, oraclePubR, msg []byte) ([]byte, error) {
	curve := S256()

	A, err := curve.Decode(oraclePubA)
	if err != nil {
		return nil, err
	}
	R, err := curve.Decode(oraclePubR)
	if err != nil {
		return nil, err
	}

	e, err := challenge(msg, R)
	if err != nil {
		return nil, err
	}

	// S = R + (-(e*A))
	eA := curve.ScalarMult(A, e)
	S := curve.Add(curve.Negate(eA), R)

	sig, err := curve.Encode(S)
	if err != nil {
		return nil, err
	}

	log.Debugf("Computed signature point %x for nonce point %x (%d byte message)",
		sig, oraclePubR, len(msg))
	return sig, nil
}
