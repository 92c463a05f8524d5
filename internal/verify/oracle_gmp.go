//go:build gmp

// The GMP oracle needs libgmp and is compiled only with -tags=gmp.

package verify

import (
	"math/big"

	"github.com/ncw/gmp"
)

func init() {
	RegisterOracle("gmp", func() Oracle { return GMPOracle{} })
}

// GMPOracle is backed by libgmp through github.com/ncw/gmp.
type GMPOracle struct{}

func (GMPOracle) Name() string { return "gmp" }

func toGMP(x *big.Int) *gmp.Int {
	z := new(gmp.Int).SetBytes(new(big.Int).Abs(x).Bytes())
	if x.Sign() < 0 {
		z.Neg(z)
	}
	return z
}

func fromGMP(z *gmp.Int) *big.Int {
	x := new(big.Int).SetBytes(z.Bytes())
	if z.Sign() < 0 {
		x.Neg(x)
	}
	return x
}

func (GMPOracle) Add(a, b *big.Int) *big.Int {
	return fromGMP(new(gmp.Int).Add(toGMP(a), toGMP(b)))
}

func (GMPOracle) Mul(a, b *big.Int) *big.Int {
	return fromGMP(new(gmp.Int).Mul(toGMP(a), toGMP(b)))
}

func (GMPOracle) DivMod(a, b *big.Int) (*big.Int, *big.Int) {
	m := new(gmp.Int)
	q, r := new(gmp.Int).DivMod(toGMP(a), toGMP(b), m)
	return fromGMP(q), fromGMP(r)
}

func (GMPOracle) Exp(base, exp, m *big.Int) *big.Int {
	if m == nil {
		return fromGMP(new(gmp.Int).Exp(toGMP(base), toGMP(exp), nil))
	}
	mod := toGMP(new(big.Int).Abs(m))
	r := new(gmp.Int).Exp(toGMP(base), toGMP(exp), mod)
	if r.Sign() < 0 {
		r.Add(r, mod)
	}
	return fromGMP(r)
}
