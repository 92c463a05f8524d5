package bignum

// signedAdd adds two sign-magnitude values and returns the magnitude and sign
// of the result.
func signedAdd(x nat, xneg bool, y nat, yneg bool) (nat, bool) {
	if xneg == yneg {
		return add(x, y), xneg
	}
	switch cmp(x, y) {
	case 1:
		return sub(x, y), xneg
	case -1:
		return sub(y, x), yneg
	default:
		return nil, false
	}
}

// Add returns a + b. The result width is max(a.Len(), b.Len()), plus one byte
// when the magnitude addition carries out of that width.
func Add(a, b *Number) (*Number, error) {
	if err := live(a, b); err != nil {
		return nil, err
	}
	z, neg := signedAdd(a.nat(), a.neg, b.nat(), b.neg)
	return fromNat(z, max(a.Len(), b.Len()), neg)
}

// Subtract returns a - b, computed as a + (-b). The width rule is the one of Add.
func Subtract(a, b *Number) (*Number, error) {
	if err := live(a, b); err != nil {
		return nil, err
	}
	z, neg := signedAdd(a.nat(), a.neg, b.nat(), !b.neg)
	return fromNat(z, max(a.Len(), b.Len()), neg)
}

// Multiply returns a * b in exactly a.Len() + b.Len() bytes.
func Multiply(a, b *Number) (*Number, error) {
	if err := live(a, b); err != nil {
		return nil, err
	}
	if a.Len()+b.Len() > MaxMagnitudeBytes {
		return nil, ErrResourceExhausted
	}
	z := mul(a.nat(), b.nat())
	return fromNat(z, a.Len()+b.Len(), a.neg != b.neg)
}

// euclid divides |a| by the non-zero magnitude bm and adjusts the magnitude
// quotient and remainder to the Euclidean convention for a's sign.
// The returned quotient magnitude must still be given the sign a.neg != b.neg.
func euclid(am nat, aneg bool, bm nat) (q, r nat) {
	q, r = divmod(am, bm)
	if aneg && len(r) != 0 {
		q = add(q, nat{1})
		r = sub(bm, r)
	}
	return q, r
}

// Divide returns the Euclidean quotient and remainder of a / b: the remainder
// satisfies 0 <= r < |b| and q*b + r == a. Both results are minimal width.
func Divide(a, b *Number) (q, r *Number, err error) {
	if err := live(a, b); err != nil {
		return nil, nil, err
	}
	bm := b.nat()
	if len(bm) == 0 {
		return nil, nil, ErrDivisionByZero
	}
	qm, rm := euclid(a.nat(), a.neg, bm)
	if q, err = fromNat(qm, 1, a.neg != b.neg); err != nil {
		return nil, nil, err
	}
	if r, err = fromNat(rm, 1, false); err != nil {
		return nil, nil, err
	}
	return q, r, nil
}

// Modulo returns the Euclidean remainder of a / b, in [0, |b|).
func Modulo(a, b *Number) (*Number, error) {
	if err := live(a, b); err != nil {
		return nil, err
	}
	bm := b.nat()
	if len(bm) == 0 {
		return nil, ErrDivisionByZero
	}
	_, rm := euclid(a.nat(), a.neg, bm)
	return fromNat(rm, 1, false)
}
