package bignum

import (
	"math"
	"math/bits"
)

// divmod returns q = u / v and r = u mod v for a normalized, non-zero v.
func divmod(u, v nat) (q, r nat) {
	if len(v) == 0 {
		panic("bignum: division by zero")
	}
	if cmp(u, v) < 0 {
		return nil, u.clone()
	}
	if len(v) == 1 {
		q, rw := divW(u, v[0])
		return q, natFromWord(rw)
	}
	return divLarge(u, v)
}

// divW divides x by a single word.
func divW(x nat, y Word) (q nat, r Word) {
	q = make(nat, len(x))
	for i := len(x) - 1; i >= 0; i-- {
		q[i], r = bits.Div64(r, x[i], y)
	}
	return q.norm(), r
}

// divLarge implements Knuth's Algorithm D (TAOCP vol. 2, 4.3.1) for
// len(v) >= 2 and u >= v.
func divLarge(u, v nat) (q, r nat) {
	n := len(v)
	m := len(u) - n

	// D1: normalize so the top limb of the divisor has its high bit set.
	s := uint(bits.LeadingZeros64(v[n-1]))
	vn := make(nat, n)
	shlVU(vn, v, s)
	un := make(nat, len(u)+1)
	un[len(u)] = shlVU(un[:len(u)], u, s)

	q = make(nat, m+1)
	qhatv := make(nat, n+1)
	vtop, vsec := vn[n-1], vn[n-2]

	for j := m; j >= 0; j-- {
		// D3: estimate the quotient digit.
		qhat := Word(math.MaxUint64)
		if ujn := un[j+n]; ujn != vtop {
			var rhat Word
			qhat, rhat = bits.Div64(ujn, un[j+n-1], vtop)
			x1, x2 := bits.Mul64(qhat, vsec)
			ujn2 := un[j+n-2]
			for greaterThan(x1, x2, rhat, ujn2) {
				qhat--
				prev := rhat
				rhat += vtop
				if rhat < prev {
					break
				}
				x1, x2 = bits.Mul64(qhat, vsec)
			}
		}

		// D4: multiply and subtract.
		qhatv[n] = mulAddVWW(qhatv[:n], vn, qhat, 0)
		if c := subVV(un[j:j+n+1], un[j:j+n+1], qhatv); c != 0 {
			// D6: add back.
			c := addVV(un[j:j+n], un[j:j+n], vn)
			un[j+n] += c
			qhat--
		}
		q[j] = qhat
	}

	// D8: unnormalize the remainder.
	r = make(nat, n)
	shrVU(r, un[:n], s)
	return q.norm(), r.norm()
}

// greaterThan reports whether the two-word value x1:x2 exceeds y1:y2.
func greaterThan(x1, x2, y1, y2 Word) bool {
	return x1 > y1 || x1 == y1 && x2 > y2
}
