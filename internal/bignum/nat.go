package bignum

import "math/bits"

// nat is an unsigned magnitude in little-endian limb order. A normalized nat
// has no leading zero limbs; zero is the empty nat.
type nat []Word

func (z nat) norm() nat {
	i := len(z)
	for i > 0 && z[i-1] == 0 {
		i--
	}
	return z[:i]
}

// natFromBytes decodes a little-endian magnitude.
func natFromBytes(b []byte) nat {
	z := make(nat, (len(b)+7)/8)
	for i, v := range b {
		z[i/8] |= Word(v) << (8 * uint(i%8))
	}
	return z.norm()
}

func natFromWord(w Word) nat {
	if w == 0 {
		return nil
	}
	return nat{w}
}

// fillBytes writes x into buf in little-endian order, zero-padding the tail.
// buf must hold at least x.byteLen() bytes.
func (x nat) fillBytes(buf []byte) {
	for i := range buf {
		w := i / 8
		if w >= len(x) {
			buf[i] = 0
			continue
		}
		buf[i] = byte(x[w] >> (8 * uint(i%8)))
	}
}

func (x nat) bitLen() int {
	if len(x) == 0 {
		return 0
	}
	return (len(x)-1)*wordBits + bits.Len64(x[len(x)-1])
}

func (x nat) byteLen() int {
	return (x.bitLen() + 7) / 8
}

func (x nat) isOne() bool {
	return len(x) == 1 && x[0] == 1
}

// bit returns the value of the i'th bit of x.
func (x nat) bit(i uint) uint {
	w := i / wordBits
	if w >= uint(len(x)) {
		return 0
	}
	return uint(x[w]>>(i%wordBits)) & 1
}

func (x nat) clone() nat {
	if len(x) == 0 {
		return nil
	}
	z := make(nat, len(x))
	copy(z, x)
	return z
}

// cmp compares two normalized nats.
func cmp(x, y nat) int {
	if len(x) != len(y) {
		if len(x) < len(y) {
			return -1
		}
		return 1
	}
	for i := len(x) - 1; i >= 0; i-- {
		switch {
		case x[i] < y[i]:
			return -1
		case x[i] > y[i]:
			return 1
		}
	}
	return 0
}

func add(x, y nat) nat {
	m, n := len(x), len(y)
	if m < n {
		return add(y, x)
	}
	if n == 0 {
		return x.clone()
	}
	z := make(nat, m+1)
	c := addVV(z[:n], x, y)
	if m > n {
		c = addVW(z[n:m], x[n:], c)
	}
	z[m] = c
	return z.norm()
}

// sub returns x - y. The caller guarantees x >= y.
func sub(x, y nat) nat {
	m, n := len(x), len(y)
	if m < n {
		panic("bignum: nat underflow")
	}
	if n == 0 {
		return x.clone()
	}
	z := make(nat, m)
	c := subVV(z[:n], x, y)
	if m > n {
		c = subVW(z[n:], x[n:], c)
	}
	if c != 0 {
		panic("bignum: nat underflow")
	}
	return z.norm()
}

// mulTo computes x*y into z, which must have room for len(x)+len(y) limbs and
// must not alias x or y. The normalized product is returned.
func mulTo(z, x, y nat) nat {
	m, n := len(x), len(y)
	z = z[:m+n]
	clear(z)
	if m == 0 || n == 0 {
		return z[:0]
	}
	for j, d := range y {
		if d != 0 {
			z[m+j] = addMulVVW(z[j:j+m], x, d)
		}
	}
	return z.norm()
}

func mul(x, y nat) nat {
	if len(x) == 0 || len(y) == 0 {
		return nil
	}
	return mulTo(make(nat, len(x)+len(y)), x, y)
}

// shl returns x << s.
func shl(x nat, s uint) nat {
	if len(x) == 0 {
		return nil
	}
	words := int(s / wordBits)
	z := make(nat, len(x)+words+1)
	z[len(x)+words] = shlVU(z[words:len(x)+words], x, s%wordBits)
	return z.norm()
}

// shr returns x >> s.
func shr(x nat, s uint) nat {
	words := s / wordBits
	if words >= uint(len(x)) {
		return nil
	}
	z := make(nat, len(x)-int(words))
	shrVU(z, x[words:], s%wordBits)
	return z.norm()
}

// lowBits returns x mod 2^k.
func lowBits(x nat, k uint) nat {
	words := int((k + wordBits - 1) / wordBits)
	if x.bitLen() <= int(k) {
		return x.clone()
	}
	z := make(nat, words)
	copy(z, x)
	if r := k % wordBits; r != 0 {
		z[words-1] &= 1<<r - 1
	}
	return z.norm()
}
