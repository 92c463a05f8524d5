package bignum

import "math/bits"

// Power returns base^exp by left-to-right square-and-multiply. 0^0 is 1.
// The result is negative exactly when base is negative and exp is odd.
//
// Power fails with ErrNegativeExponent for exp < 0 and with
// ErrResourceExhausted when the result would exceed MaxMagnitudeBytes; the
// size check runs before any multiplication.
func Power(base, exp *Number) (*Number, error) {
	if err := live(base, exp); err != nil {
		return nil, err
	}
	if exp.Sign() < 0 {
		return nil, ErrNegativeExponent
	}
	e := exp.nat()
	b := base.nat()
	neg := base.neg && e.bit(0) == 1
	switch {
	case len(e) == 0:
		return fromNat(nat{1}, 1, false)
	case len(b) == 0:
		return fromNat(nil, 1, false)
	case b.isOne():
		return fromNat(b, 1, neg)
	}
	if !powerFits(b.bitLen(), e) {
		return nil, ErrResourceExhausted
	}

	z := nat{1}
	for i := e.bitLen() - 1; i >= 0; i-- {
		z = mul(z, z)
		if e.bit(uint(i)) == 1 {
			z = mul(z, b)
		}
	}
	return fromNat(z, 1, neg)
}

// powerFits reports whether a base of baseBits bits (at least 2) raised to e
// stays within MaxMagnitudeBytes.
func powerFits(baseBits int, e nat) bool {
	if len(e) > 1 {
		return false
	}
	hi, lo := bits.Mul64(uint64(baseBits), e[0])
	return hi == 0 && lo <= MaxMagnitudeBytes*8
}

// PowerMod returns base^exp mod |m| in [0, |m|), reducing by long division
// after every squaring and multiplication.
func PowerMod(base, exp, m *Number) (*Number, error) {
	if err := live(base, exp, m); err != nil {
		return nil, err
	}
	g, err := NewGeneric(m)
	if err != nil {
		return nil, err
	}
	return PowerModWith(base, exp, g)
}

// PowerModMersenne computes the same value as PowerMod using the Mersenne
// fold. It fails with ErrNotMersenne when m does not qualify.
func PowerModMersenne(base, exp, m *Number) (*Number, error) {
	if err := live(base, exp, m); err != nil {
		return nil, err
	}
	mm, err := MersenneOf(m)
	if err != nil {
		return nil, err
	}
	return PowerModWith(base, exp, mm)
}

// PowerModWith returns base^exp reduced by mod. A negative base is first
// mapped to its residue, so the result always lies in [0, n).
func PowerModWith(base, exp *Number, mod Modulus) (*Number, error) {
	if err := live(base, exp); err != nil {
		return nil, err
	}
	if exp.Sign() < 0 {
		return nil, ErrNegativeExponent
	}
	z, err := expMod(base.nat(), base.neg, exp.nat(), mod)
	if err != nil {
		return nil, err
	}
	return fromNat(z, 1, false)
}

func expMod(b nat, neg bool, e nat, mod Modulus) (nat, error) {
	if mod.value().isOne() {
		return nil, nil
	}
	b, err := residue(mod, b, neg)
	if err != nil {
		return nil, err
	}
	z := nat{1}
	for i := e.bitLen() - 1; i >= 0; i-- {
		if z, err = mod.reduce(mul(z, z)); err != nil {
			return nil, err
		}
		if e.bit(uint(i)) == 1 {
			if z, err = mod.reduce(mul(z, b)); err != nil {
				return nil, err
			}
		}
	}
	return z, nil
}
