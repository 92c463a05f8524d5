// Package bignum implements arbitrary-precision signed integers stored as
// sign-magnitude byte buffers, together with the arithmetic needed for modular
// cryptography: addition, subtraction, schoolbook multiplication, Euclidean
// long division, generic and Mersenne-form modular reduction, and
// square-and-multiply exponentiation.
//
// A Number exposes three readable fields: its little-endian magnitude bytes,
// the magnitude length, and a sign flag. Numbers are immutable once built;
// every operation allocates a fresh result and never touches its operands.
// Failures are reported through sentinel errors and a nil result, so callers
// branch on them with errors.Is instead of treating them as fatal.
//
// Result widths follow a fixed rule. Add and Subtract produce
// max(len a, len b) bytes plus one when the magnitude addition carries out.
// Multiply produces len a + len b bytes. Every other operation trims its
// result to the minimal width, never below one byte.
//
// Division is Euclidean: the remainder always lies in [0, |b|) and the
// quotient is chosen so that q*b + r == a.
package bignum
