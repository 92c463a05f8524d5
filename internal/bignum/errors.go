package bignum

import "errors"

// Sentinel errors returned by operations that cannot produce a result.
// All of them signal an absent result; none of them leave partial state behind.
var (
	// ErrDivisionByZero is returned when a divisor or modulus has a zero magnitude.
	ErrDivisionByZero = errors.New("bignum: division by zero")
	// ErrNotMersenne is returned when a modulus handed to the Mersenne fast path
	// is not of the form 2^k - c with a small c.
	ErrNotMersenne = errors.New("bignum: modulus is not of the form 2^k - c")
	// ErrNegativeExponent is returned by the exponentiation functions when the
	// exponent is strictly negative.
	ErrNegativeExponent = errors.New("bignum: negative exponent")
	// ErrResourceExhausted is returned when a result would exceed MaxMagnitudeBytes.
	ErrResourceExhausted = errors.New("bignum: result exceeds maximum magnitude size")
	// ErrReleased is returned when a released Number is used or released again.
	ErrReleased = errors.New("bignum: number already released")
	// ErrNilNumber is returned when a nil *Number is passed as an operand.
	ErrNilNumber = errors.New("bignum: nil number")
	// ErrInvalidLength is returned by New when the requested length is out of range.
	ErrInvalidLength = errors.New("bignum: invalid magnitude length")
	// ErrReductionDiverged is returned when the Mersenne fold exceeds its pass budget.
	ErrReductionDiverged = errors.New("bignum: mersenne reduction exceeded pass budget")
)

// IsResourceError reports whether err belongs to the resource exhaustion class
// rather than the domain class (undefined operation for the given operands).
func IsResourceError(err error) bool {
	return errors.Is(err, ErrResourceExhausted)
}
