package oracle

import (
	"errors"
	"testing"
)

// TestErrorKindStringer tests the stringized output for the ErrorKind type.
func TestErrorKindStringer(t *testing.T) {
	tests := []struct {
		in   ErrorKind
		want string
	}{
		{ErrInvalidPointEncoding, "ErrInvalidPointEncoding"},
		{ErrInvalidScalar, "ErrInvalidScalar"},
		{ErrScalarTooLarge, "ErrScalarTooLarge"},
		{ErrEmptyInput, "ErrEmptyInput"},
		{ErrWeakNonce, "ErrWeakNonce"},
		{ErrPointAtInfinity, "ErrPointAtInfinity"},
		{ErrInvalidAttestation, "ErrInvalidAttestation"},
	}

	for i, test := range tests {
		result := test.in.Error()
		if result != test.want {
			t.Errorf("#%d: got: %s want: %s", i, result, test.want)
			continue
		}
	}
}

// TestError tests the error output for the Error type.
func TestError(t *testing.T) {
	tests := []struct {
		in   Error
		want string
	}{{
		Error{Description: "some error"},
		"some error",
	}, {
		makeError(ErrInvalidScalar, "nonce is zero"),
		"nonce is zero",
	}}

	for i, test := range tests {
		result := test.in.Error()
		if result != test.want {
			t.Errorf("#%d: got: %s want: %s", i, result, test.want)
			continue
		}
	}
}

// TestErrorKindIsAs ensures both ErrorKind and Error can be identified as being
// a specific error kind via errors.Is and unwrapped via errors.As.
func TestErrorKindIsAs(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		target    error
		wantMatch bool
		wantAs    ErrorKind
	}{{
		name:      "ErrInvalidScalar == ErrInvalidScalar",
		err:       ErrInvalidScalar,
		target:    ErrInvalidScalar,
		wantMatch: true,
		wantAs:    ErrInvalidScalar,
	}, {
		name:      "Error.ErrInvalidScalar == ErrInvalidScalar",
		err:       makeError(ErrInvalidScalar, ""),
		target:    ErrInvalidScalar,
		wantMatch: true,
		wantAs:    ErrInvalidScalar,
	}, {
		name:      "Error.ErrInvalidScalar == Error.ErrInvalidScalar",
		err:       makeError(ErrInvalidScalar, ""),
		target:    makeError(ErrInvalidScalar, ""),
		wantMatch: true,
		wantAs:    ErrInvalidScalar,
	}, {
		name:      "ErrInvalidPointEncoding != ErrInvalidScalar",
		err:       ErrInvalidPointEncoding,
		target:    ErrInvalidScalar,
		wantMatch: false,
		wantAs:    ErrInvalidPointEncoding,
	}, {
		name:      "Error.ErrInvalidPointEncoding != ErrInvalidScalar",
		err:       makeError(ErrInvalidPointEncoding, ""),
		target:    ErrInvalidScalar,
		wantMatch: false,
		wantAs:    ErrInvalidPointEncoding,
	}, {
		name:      "Error wrapping Error.ErrWeakNonce == ErrWeakNonce",
		err:       Error{Err: ErrWeakNonce, Description: makeError(ErrInvalidScalar, "nonce is zero").Error()},
		target:    ErrWeakNonce,
		wantMatch: true,
		wantAs:    ErrWeakNonce,
	}}

	for _, test := range tests {
		// Ensure the error matches or not depending on the expected result.
		result := errors.Is(test.err, test.target)
		if result != test.wantMatch {
			t.Errorf("%s: incorrect error identification -- got %v, want %v",
				test.name, result, test.wantMatch)
			continue
		}

		// Ensure the underlying error kind can be unwrapped and is the
		// expected kind.
		var kind ErrorKind
		if !errors.As(test.err, &kind) {
			t.Errorf("%s: unable to unwrap to error kind", test.name)
			continue
		}
		if kind != test.wantAs {
			t.Errorf("%s: unexpected unwrapped error kind -- got %v, want %v",
				test.name, kind, test.wantAs)
			continue
		}
	}
}
