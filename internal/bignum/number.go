package bignum

// MaxMagnitudeBytes bounds the width of any magnitude the package produces.
// Operations whose result would exceed it fail with ErrResourceExhausted.
const MaxMagnitudeBytes = 1 << 27

// Number is an arbitrary-precision signed integer in sign-magnitude form.
//
// The magnitude is stored little-endian: byte 0 is least significant. A
// caller-built Number may carry a sign flag on a zero magnitude; it compares
// equal to zero and reports Sign() == 0, but its flag round-trips verbatim.
// Numbers produced by operations never carry a negative zero.
//
// A Number is immutable until Release is called. Concurrent reads are safe;
// Release must not race with any other use of the same Number.
type Number struct {
	mag      []byte
	neg      bool
	released bool
}

// New allocates a Number whose magnitude is a copy of data[:length].
//
// Parameters:
//   - data: little-endian magnitude bytes; only the first length bytes are used.
//   - length: magnitude width in bytes, at least 1 and at most len(data).
//   - negative: the sign flag, stored as given.
//
// Returns:
//   - *Number: the new number.
//   - error: ErrInvalidLength when length is out of range, or
//     ErrResourceExhausted when length exceeds MaxMagnitudeBytes.
func New(data []byte, length int, negative bool) (*Number, error) {
	if length < 1 || length > len(data) {
		return nil, ErrInvalidLength
	}
	if length > MaxMagnitudeBytes {
		return nil, ErrResourceExhausted
	}
	mag := make([]byte, length)
	copy(mag, data[:length])
	return &Number{mag: mag, neg: negative}, nil
}

// FromInt64 builds a minimal-width Number from a machine integer.
func FromInt64(v int64) *Number {
	neg := v < 0
	u := uint64(v)
	if neg {
		u = -u
	}
	n, _ := fromNat(natFromWord(u), 1, neg)
	return n
}

// FromUint64 builds a minimal-width non-negative Number.
func FromUint64(v uint64) *Number {
	n, _ := fromNat(natFromWord(v), 1, false)
	return n
}

// fromNat encodes x in at least width bytes. A zero magnitude is always
// returned non-negative.
func fromNat(x nat, width int, neg bool) (*Number, error) {
	if bl := x.byteLen(); bl > width {
		width = bl
	}
	if width < 1 {
		width = 1
	}
	if width > MaxMagnitudeBytes {
		return nil, ErrResourceExhausted
	}
	mag := make([]byte, width)
	x.fillBytes(mag)
	return &Number{mag: mag, neg: neg && len(x) > 0}, nil
}

func (n *Number) nat() nat {
	return natFromBytes(n.mag)
}

// Bytes returns a copy of the magnitude in little-endian order.
func (n *Number) Bytes() []byte {
	out := make([]byte, len(n.mag))
	copy(out, n.mag)
	return out
}

// Len returns the magnitude width in bytes.
func (n *Number) Len() int { return len(n.mag) }

// Negative returns the raw sign flag.
func (n *Number) Negative() bool { return n.neg }

// Released reports whether Release has been called.
func (n *Number) Released() bool { return n.released }

// IsZero reports whether the magnitude is zero, regardless of the sign flag.
func (n *Number) IsZero() bool {
	for _, b := range n.mag {
		if b != 0 {
			return false
		}
	}
	return true
}

// Sign returns -1, 0 or +1. A negative zero reports 0.
func (n *Number) Sign() int {
	switch {
	case n.IsZero():
		return 0
	case n.neg:
		return -1
	default:
		return 1
	}
}

// BitLen returns the bit length of the absolute value.
func (n *Number) BitLen() int {
	return n.nat().bitLen()
}

// Clone returns an independent copy with the same width and sign flag.
func (n *Number) Clone() (*Number, error) {
	if err := live(n); err != nil {
		return nil, err
	}
	return New(n.mag, len(n.mag), n.neg)
}

// Neg returns -n with the same width. The negation of zero is a non-negative zero.
func (n *Number) Neg() (*Number, error) {
	if err := live(n); err != nil {
		return nil, err
	}
	out, err := New(n.mag, len(n.mag), !n.neg)
	if err != nil {
		return nil, err
	}
	if out.IsZero() {
		out.neg = false
	}
	return out, nil
}

// Release zeroes the magnitude and marks the Number unusable. Releasing a
// Number twice returns ErrReleased.
func (n *Number) Release() error {
	if n == nil {
		return ErrNilNumber
	}
	if n.released {
		return ErrReleased
	}
	clear(n.mag)
	n.mag = nil
	n.neg = false
	n.released = true
	return nil
}

// live validates that every operand is non-nil and not released.
func live(ns ...*Number) error {
	for _, n := range ns {
		if n == nil {
			return ErrNilNumber
		}
		if n.released {
			return ErrReleased
		}
	}
	return nil
}

// CompareMagnitude compares |a| and |b| and returns -1, 0 or +1.
// Leading zero bytes and sign flags are ignored.
func CompareMagnitude(a, b *Number) int {
	return cmp(a.nat(), b.nat())
}

// Compare compares a and b as signed integers. Zero compares equal to zero
// whatever its sign flag.
func Compare(a, b *Number) int {
	sa, sb := a.Sign(), b.Sign()
	switch {
	case sa < sb:
		return -1
	case sa > sb:
		return 1
	case sa == 0:
		return 0
	}
	c := CompareMagnitude(a, b)
	if sa < 0 {
		return -c
	}
	return c
}
