package bignum

// Modulus is a reduction strategy for a fixed modulus n. The generic strategy
// uses long division; the Mersenne strategy folds high bits into low bits.
// Both produce the same residues.
type Modulus interface {
	// N returns the modulus as a minimal-width non-negative Number.
	N() *Number
	// Reduce returns the Euclidean remainder of a modulo n.
	Reduce(a *Number) (*Number, error)

	value() nat
	reduce(x nat) (nat, error)
}

// Generic reduces by long division.
type Generic struct {
	n nat
}

// NewGeneric returns a division-based Modulus for |n|.
func NewGeneric(n *Number) (*Generic, error) {
	if err := live(n); err != nil {
		return nil, err
	}
	m := n.nat()
	if len(m) == 0 {
		return nil, ErrDivisionByZero
	}
	return &Generic{n: m}, nil
}

func (g *Generic) N() *Number {
	out, _ := fromNat(g.n, 1, false)
	return out
}

func (g *Generic) Reduce(a *Number) (*Number, error) {
	return reduceSigned(g, a)
}

func (g *Generic) value() nat { return g.n }

func (g *Generic) reduce(x nat) (nat, error) {
	if cmp(x, g.n) < 0 {
		return x, nil
	}
	_, r := divmod(x, g.n)
	return r, nil
}

// reduceSigned applies m to a's magnitude and maps negative inputs to the
// Euclidean residue.
func reduceSigned(m Modulus, a *Number) (*Number, error) {
	if err := live(a); err != nil {
		return nil, err
	}
	r, err := residue(m, a.nat(), a.neg)
	if err != nil {
		return nil, err
	}
	return fromNat(r, 1, false)
}

func residue(m Modulus, x nat, neg bool) (nat, error) {
	r, err := m.reduce(x)
	if err != nil {
		return nil, err
	}
	if neg && len(r) != 0 {
		r = sub(m.value(), r)
	}
	return r, nil
}
