package oracle

// ErrorKind identifies a kind of error. It has full support for errors.Is and
// errors.As, so the caller can directly check against an error kind when
// determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific Error.
const (
	// ErrInvalidPointEncoding is returned when a byte buffer that should hold
	// a compressed secp256k1 point is the wrong length, has an unknown format
	// byte or does not decode to a point on the curve.
	ErrInvalidPointEncoding = ErrorKind("ErrInvalidPointEncoding")

	// ErrInvalidScalar is returned when a private scalar is not 32 bytes, is
	// zero, or is not less than the group order.
	ErrInvalidScalar = ErrorKind("ErrInvalidScalar")

	// ErrScalarTooLarge is returned when an integer does not fit in a 32 byte
	// big-endian buffer.
	ErrScalarTooLarge = ErrorKind("ErrScalarTooLarge")

	// ErrEmptyInput is returned when a codec helper is given a zero-length
	// buffer.
	ErrEmptyInput = ErrorKind("ErrEmptyInput")

	// ErrWeakNonce is returned when freshly drawn nonce bytes are zero or not
	// less than the group order.
	ErrWeakNonce = ErrorKind("ErrWeakNonce")

	// ErrPointAtInfinity is returned when a computation yields the point at
	// infinity, which has no compressed encoding.
	ErrPointAtInfinity = ErrorKind("ErrPointAtInfinity")

	// ErrInvalidAttestation is returned when an encoded attestation has the
	// wrong length.
	ErrInvalidAttestation = ErrorKind("ErrInvalidAttestation")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an error related to oracle key, nonce and signature
// handling. It has full support for errors.Is and errors.As, so the caller
// can ascertain the specific reason for the error by checking the underlying
// error.
type Error struct {
	Err         error
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error.
func (e Error) Unwrap() error {
	return e.Err
}

// makeError creates an Error given a set of arguments.
func makeError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}
