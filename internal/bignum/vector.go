package bignum

import "math/bits"

// Word is a single 64-bit limb of a magnitude.
type Word = uint64

const wordBits = 64

// The vector helpers below operate on len(z) limbs. x and y must be at least
// as long as z.

// addVV computes z = x + y and returns the carry.
func addVV(z, x, y []Word) (c Word) {
	for i := range z {
		z[i], c = bits.Add64(x[i], y[i], c)
	}
	return c
}

// subVV computes z = x - y and returns the borrow.
func subVV(z, x, y []Word) (c Word) {
	for i := range z {
		z[i], c = bits.Sub64(x[i], y[i], c)
	}
	return c
}

// addVW computes z = x + y for a single word y and returns the carry.
func addVW(z, x []Word, y Word) (c Word) {
	c = y
	for i := range z {
		z[i], c = bits.Add64(x[i], c, 0)
	}
	return c
}

// subVW computes z = x - y for a single word y and returns the borrow.
func subVW(z, x []Word, y Word) (c Word) {
	c = y
	for i := range z {
		z[i], c = bits.Sub64(x[i], c, 0)
	}
	return c
}

// shlVU computes z = x << s for 0 <= s < 64 and returns the bits shifted out.
func shlVU(z, x []Word, s uint) (c Word) {
	if s == 0 {
		copy(z, x)
		return 0
	}
	if len(z) == 0 {
		return 0
	}
	sc := wordBits - s
	w1 := x[len(z)-1]
	c = w1 >> sc
	for i := len(z) - 1; i > 0; i-- {
		w := w1
		w1 = x[i-1]
		z[i] = w<<s | w1>>sc
	}
	z[0] = w1 << s
	return c
}

// shrVU computes z = x >> s for 0 <= s < 64 and returns the bits shifted out.
func shrVU(z, x []Word, s uint) (c Word) {
	if s == 0 {
		copy(z, x)
		return 0
	}
	if len(z) == 0 {
		return 0
	}
	sc := wordBits - s
	w1 := x[0]
	c = w1 << sc
	for i := 0; i < len(z)-1; i++ {
		w := w1
		w1 = x[i+1]
		z[i] = w>>s | w1<<sc
	}
	z[len(z)-1] = w1 >> s
	return c
}

// mulAddVWW computes z = x*y + r and returns the carry.
func mulAddVWW(z, x []Word, y, r Word) (c Word) {
	c = r
	for i := range z {
		hi, lo := bits.Mul64(x[i], y)
		var cc Word
		z[i], cc = bits.Add64(lo, c, 0)
		c = hi + cc
	}
	return c
}

// addMulVVW computes z += x*y and returns the carry.
func addMulVVW(z, x []Word, y Word) (c Word) {
	for i := range z {
		hi, lo := bits.Mul64(x[i], y)
		var cc Word
		lo, cc = bits.Add64(lo, z[i], 0)
		hi += cc
		z[i], cc = bits.Add64(lo, c, 0)
		c = hi + cc
	}
	return c
}
