package bignum

// Mersenne is a modulus of the form n = 2^k - c where c is small: 1 <= c and
// bitlen(c) <= k/2. Reduction folds x into (x mod 2^k) + c*(x >> k) until
// the value fits in k bits, then subtracts n at most once.
type Mersenne struct {
	k uint
	c nat
	n nat
}

// NewMersenne returns the Mersenne modulus 2^k - c.
func NewMersenne(k uint, c uint64) (*Mersenne, error) {
	return newMersenne(k, natFromWord(c))
}

func newMersenne(k uint, c nat) (*Mersenne, error) {
	if k < 2 || len(c) == 0 || uint(c.bitLen()) > k/2 {
		return nil, ErrNotMersenne
	}
	if int(k/8) >= MaxMagnitudeBytes {
		return nil, ErrResourceExhausted
	}
	return &Mersenne{k: k, c: c, n: sub(shl(nat{1}, k), c)}, nil
}

// MersenneOf detects whether |n| has the form 2^k - c with a small c and
// returns the corresponding Modulus. It returns ErrDivisionByZero for a zero
// magnitude and ErrNotMersenne when the form does not hold.
func MersenneOf(n *Number) (*Mersenne, error) {
	if err := live(n); err != nil {
		return nil, err
	}
	m := n.nat()
	if len(m) == 0 {
		return nil, ErrDivisionByZero
	}
	k := uint(m.bitLen())
	return newMersenne(k, sub(shl(nat{1}, k), m))
}

// K returns the exponent k.
func (m *Mersenne) K() uint { return m.k }

// C returns the offset c as a minimal-width Number.
func (m *Mersenne) C() *Number {
	out, _ := fromNat(m.c, 1, false)
	return out
}

func (m *Mersenne) N() *Number {
	out, _ := fromNat(m.n, 1, false)
	return out
}

func (m *Mersenne) Reduce(a *Number) (*Number, error) {
	return reduceSigned(m, a)
}

func (m *Mersenne) value() nat { return m.n }

// passBudget bounds the number of folds for an input of the given bit length.
// Each fold scales the value by at most 2^-(k - bitlen(c)) plus 2^k, so the
// value drops below 3*2^k after ceil((bits-k)/shrink) passes and below 2^k
// within three more.
func (m *Mersenne) passBudget(bitLen int) int {
	excess := bitLen - int(m.k)
	if excess <= 0 {
		return 0
	}
	shrink := int(m.k) - m.c.bitLen()
	return (excess+shrink-1)/shrink + 3
}

func (m *Mersenne) reduce(x nat) (nat, error) {
	budget := m.passBudget(x.bitLen())
	for pass := 0; x.bitLen() > int(m.k); pass++ {
		if pass >= budget {
			return nil, ErrReductionDiverged
		}
		x = add(lowBits(x, m.k), mul(shr(x, m.k), m.c))
	}
	// x < 2^k = n + c < 2n
	if cmp(x, m.n) >= 0 {
		x = sub(x, m.n)
	}
	if cmp(x, m.n) >= 0 {
		return nil, ErrReductionDiverged
	}
	return x, nil
}

// ModuloMersenne returns a mod n using the Mersenne fold. It agrees with
// Modulo(a, n) whenever n qualifies, and fails with ErrNotMersenne otherwise.
func ModuloMersenne(a, n *Number) (*Number, error) {
	if err := live(a, n); err != nil {
		return nil, err
	}
	m, err := MersenneOf(n)
	if err != nil {
		return nil, err
	}
	return m.Reduce(a)
}
