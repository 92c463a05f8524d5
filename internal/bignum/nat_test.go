package bignum

import (
	"math/big"
	"testing"
)

func natBig(x nat) *big.Int {
	n, _ := fromNat(x, 1, false)
	return toBig(n)
}

func bigNat(tb testing.TB, x *big.Int) nat {
	tb.Helper()
	return fromBig(tb, x).nat()
}

func pow2Big(k uint) *big.Int {
	return new(big.Int).Lsh(big.NewInt(1), k)
}

// TestLowBits covers inputs whose limb count equals ceil(k/64) while bits at
// or above k are set, where the top limb must still be masked.
func TestLowBits(t *testing.T) {
	t.Parallel()
	ones := ^Word(0)
	tests := []struct {
		name string
		x    nat
		k    uint
		want *big.Int
	}{
		{"k=3 one limb above k", nat{15}, 3, big.NewInt(7)},
		{"k=3 below k", nat{5}, 3, big.NewInt(5)},
		{"k=3 exactly 2^k", nat{8}, 3, big.NewInt(0)},
		{"k=64 two limbs", nat{ones, 1}, 64, new(big.Int).SetUint64(uint64(ones))},
		{"k=64 one limb", nat{ones}, 64, new(big.Int).SetUint64(uint64(ones))},
		{"k=65 two limbs above k", nat{1, 0xff}, 65, new(big.Int).Add(pow2Big(64), big.NewInt(1))},
		{"k=255 four limbs all ones", nat{ones, ones, ones, ones}, 255, new(big.Int).Sub(pow2Big(255), big.NewInt(1))},
		{"k=255 2^255+5", nat{5, 0, 0, 1 << 63}, 255, big.NewInt(5)},
		{"k=255 wider input", nat{5, 0, 0, 1 << 63, 9}, 255, big.NewInt(5)},
		{"zero", nil, 255, big.NewInt(0)},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := natBig(lowBits(tt.x, tt.k)); got.Cmp(tt.want) != 0 {
				t.Errorf("lowBits(%x, %d) = %x, want %x", tt.x, tt.k, got, tt.want)
			}
		})
	}
}

func TestLowBitsDoesNotAlias(t *testing.T) {
	t.Parallel()
	x := nat{15}
	z := lowBits(x, 3)
	if x[0] != 15 || z[0] != 7 {
		t.Errorf("lowBits modified its input: x = %x, z = %x", x, z)
	}
}

// TestMersenneReduceTopLimb reduces inputs in [2^k, 2^(64*ceil(k/64))),
// which share their limb count with n.
func TestMersenneReduceTopLimb(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		k    uint
		c    uint64
		x    *big.Int
	}{
		{"n=7 x=15", 3, 1, big.NewInt(15)},
		{"n=3 x=15", 2, 1, big.NewInt(15)},
		{"n=3 x=2^64-1", 2, 1, new(big.Int).SetUint64(^uint64(0))},
		{"n=2^255-19 x=2^255+5", 255, 19, new(big.Int).Add(pow2Big(255), big.NewInt(5))},
		{"n=2^255-19 x=2^256-1", 255, 19, new(big.Int).Sub(pow2Big(256), big.NewInt(1))},
		{"n=2^255-19 x=2^255", 255, 19, pow2Big(255)},
		{"n=2^127-1 x=2^128-1", 127, 1, new(big.Int).Sub(pow2Big(128), big.NewInt(1))},
		{"n=2^130-5 x=2^192-1", 130, 5, new(big.Int).Sub(pow2Big(192), big.NewInt(1))},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			m, err := NewMersenne(tt.k, tt.c)
			if err != nil {
				t.Fatalf("NewMersenne(%d, %d) error = %v", tt.k, tt.c, err)
			}
			got, err := m.reduce(bigNat(t, tt.x))
			if err != nil {
				t.Fatalf("reduce(%x) error = %v", tt.x, err)
			}
			want := new(big.Int).Mod(tt.x, toBig(m.N()))
			if natBig(got).Cmp(want) != 0 {
				t.Errorf("reduce(%x) = %x, want %x", tt.x, natBig(got), want)
			}
		})
	}
}
