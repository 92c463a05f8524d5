package bignum

import (
	"math/big"
	"slices"
	"testing"
)

// mustNumber builds a Number from little-endian bytes, failing the test on error.
func mustNumber(tb testing.TB, data []byte, negative bool) *Number {
	tb.Helper()
	if len(data) == 0 {
		data = []byte{0}
	}
	n, err := New(data, len(data), negative)
	if err != nil {
		tb.Fatalf("New(%x, %d, %v) failed: %v", data, len(data), negative, err)
	}
	return n
}

// fromBig converts a big.Int into a minimal-width Number.
func fromBig(tb testing.TB, x *big.Int) *Number {
	tb.Helper()
	le := x.Bytes()
	slices.Reverse(le)
	return mustNumber(tb, le, x.Sign() < 0)
}

// fromHex parses a signed hexadecimal literal such as "-1f".
func fromHex(tb testing.TB, s string) *Number {
	tb.Helper()
	x, ok := new(big.Int).SetString(s, 16)
	if !ok {
		tb.Fatalf("invalid hex literal %q", s)
	}
	return fromBig(tb, x)
}

// toBig converts a Number into a big.Int, honoring the sign flag.
func toBig(n *Number) *big.Int {
	be := n.Bytes()
	slices.Reverse(be)
	x := new(big.Int).SetBytes(be)
	if n.Negative() {
		x.Neg(x)
	}
	return x
}

// euclidBig returns the Euclidean quotient and remainder computed with math/big.
func euclidBig(a, b *big.Int) (*big.Int, *big.Int) {
	q, r := new(big.Int), new(big.Int)
	q.DivMod(a, b, r)
	return q, r
}
