package verify

import (
	"math/big"
	"math/rand"
	"slices"

	"github.com/agbru/chonky/internal/bignum"
)

// randomInt returns a signed value of at most bits bits. Roughly one sample
// in sixteen is zero and the bit length is uniform, so small and boundary
// values show up alongside full-width ones.
func randomInt(rng *rand.Rand, bits int) *big.Int {
	if rng.Intn(16) == 0 {
		return new(big.Int)
	}
	n := 1 + rng.Intn(bits)
	buf := make([]byte, (n+7)/8)
	rng.Read(buf)
	x := new(big.Int).SetBytes(buf)
	x.Rsh(x, uint(len(buf)*8-n))
	x.SetBit(x, n-1, 1)
	if rng.Intn(2) == 0 {
		x.Neg(x)
	}
	return x
}

// randomNonZero is randomInt with zero replaced by one.
func randomNonZero(rng *rand.Rand, bits int) *big.Int {
	x := randomInt(rng, bits)
	if x.Sign() == 0 {
		x.SetInt64(1)
	}
	return x
}

// littleEndian returns |x| little-endian, padded with pad zero bytes and
// never shorter than one byte.
func littleEndian(x *big.Int, pad int) []byte {
	b := new(big.Int).Abs(x).Bytes()
	slices.Reverse(b)
	if len(b) == 0 {
		b = []byte{0}
	}
	return append(b, make([]byte, pad)...)
}

func toNumber(x *big.Int, pad int) (*bignum.Number, error) {
	mag := littleEndian(x, pad)
	return bignum.New(mag, len(mag), x.Sign() < 0)
}

func toBig(n *bignum.Number) *big.Int {
	be := n.Bytes()
	slices.Reverse(be)
	x := new(big.Int).SetBytes(be)
	if n.Negative() {
		x.Neg(x)
	}
	return x
}

// numbers converts xs with random padding of up to three bytes each.
func numbers(rng *rand.Rand, xs ...*big.Int) ([]*bignum.Number, error) {
	out := make([]*bignum.Number, len(xs))
	for i, x := range xs {
		n, err := toNumber(x, rng.Intn(4))
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	return out, nil
}

// curve25519P is 2^255 - 19.
var curve25519P = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 255), big.NewInt(19))
