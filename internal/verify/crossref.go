package verify

import (
	"math/big"
	"math/rand"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/holiman/uint256"

	"github.com/agbru/chonky/internal/bignum"
)

// secp256k1P is 2^256 - 0x1000003D1, the secp256k1 field prime.
var secp256k1P = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 256), big.NewInt(0x1000003D1))

// two256 is 2^256, the modulus of uint256 arithmetic.
var two256 = new(big.Int).Lsh(big.NewInt(1), 256)

// CrossChecks returns checks that compare the engine with fixed-width
// 256-bit implementations: the secp256k1 field of btcec and holiman/uint256.
func CrossChecks() []Check {
	return []Check{
		NewCheck("secp256k1-field", checkSecp256k1Field),
		NewCheck("uint256-agreement", checkUint256),
	}
}

// unsigned256 draws a value in [0, bound) with at most min(bits, 256) bits.
func unsigned256(rng *rand.Rand, bits int, bound *big.Int) *big.Int {
	x := new(big.Int).Abs(randomInt(rng, min(bits, 256)))
	return x.Mod(x, bound)
}

func fieldVal(x *big.Int) *btcec.FieldVal {
	var f btcec.FieldVal
	f.SetByteSlice(x.Bytes())
	return &f
}

func fieldBig(f *btcec.FieldVal) *big.Int {
	return new(big.Int).SetBytes(f.Normalize().Bytes()[:])
}

// checkSecp256k1Field reduces sums and products through the Mersenne path
// and compares them with btcec field arithmetic.
func checkSecp256k1Field(rng *rand.Rand, bits int) error {
	x, y := unsigned256(rng, bits, secp256k1P), unsigned256(rng, bits, secp256k1P)
	ns, err := numbers(rng, x, y, secp256k1P)
	if err != nil {
		return err
	}
	a, b, p := ns[0], ns[1], ns[2]

	prod, err := bignum.Multiply(a, b)
	if err != nil {
		return err
	}
	got, err := bignum.ModuloMersenne(prod, p)
	if err != nil {
		return err
	}
	if want := fieldBig(fieldVal(x).Mul(fieldVal(y))); toBig(got).Cmp(want) != 0 {
		return violated("field multiply = %x, btcec says %x", toBig(got), want)
	}

	sum, err := bignum.Add(a, b)
	if err != nil {
		return err
	}
	if got, err = bignum.ModuloMersenne(sum, p); err != nil {
		return err
	}
	if want := fieldBig(fieldVal(x).Add(fieldVal(y))); toBig(got).Cmp(want) != 0 {
		return violated("field add = %x, btcec says %x", toBig(got), want)
	}
	return nil
}

// checkUint256 compares unsigned division, modular multiplication and
// exponentiation modulo 2^256 with holiman/uint256.
func checkUint256(rng *rand.Rand, bits int) error {
	x, y := unsigned256(rng, bits, two256), unsigned256(rng, bits, two256)
	if y.Sign() == 0 {
		y.SetInt64(1)
	}
	z := unsigned256(rng, bits, two256)
	if z.Sign() == 0 {
		z.SetInt64(3)
	}
	e := big.NewInt(int64(rng.Intn(1 << 16)))
	ns, err := numbers(rng, x, y, z, e, two256)
	if err != nil {
		return err
	}
	a, b, c, en, m := ns[0], ns[1], ns[2], ns[3], ns[4]
	ux, _ := uint256.FromBig(x)
	uy, _ := uint256.FromBig(y)
	uz, _ := uint256.FromBig(z)
	ue, _ := uint256.FromBig(e)

	q, r, err := bignum.Divide(a, b)
	if err != nil {
		return err
	}
	wq, wr := new(uint256.Int).Div(ux, uy), new(uint256.Int).Mod(ux, uy)
	if toBig(q).Cmp(wq.ToBig()) != 0 || toBig(r).Cmp(wr.ToBig()) != 0 {
		return violated("divide = (%x, %x), uint256 says (%x, %x)", toBig(q), toBig(r), wq.ToBig(), wr.ToBig())
	}

	prod, err := bignum.Multiply(a, b)
	if err != nil {
		return err
	}
	mm, err := bignum.Modulo(prod, c)
	if err != nil {
		return err
	}
	if want := new(uint256.Int).MulMod(ux, uy, uz); toBig(mm).Cmp(want.ToBig()) != 0 {
		return violated("mulmod = %x, uint256 says %x", toBig(mm), want.ToBig())
	}
	wrapped, err := bignum.Modulo(prod, m)
	if err != nil {
		return err
	}
	if want := new(uint256.Int).Mul(ux, uy); toBig(wrapped).Cmp(want.ToBig()) != 0 {
		return violated("multiply mod 2^256 = %x, uint256 says %x", toBig(wrapped), want.ToBig())
	}

	pm, err := bignum.PowerMod(a, en, m)
	if err != nil {
		return err
	}
	if want := new(uint256.Int).Exp(ux, ue); toBig(pm).Cmp(want.ToBig()) != 0 {
		return violated("power_mod 2^256 = %x, uint256 says %x", toBig(pm), want.ToBig())
	}
	return nil
}
