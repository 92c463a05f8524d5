package bignum

import (
	"errors"
	"math/big"
	"testing"
)

func TestPower(t *testing.T) {
	t.Parallel()
	tests := []struct {
		base, exp int64
		want      string
	}{
		{0, 0, "1"},
		{-5, 0, "1"},
		{0, 7, "0"},
		{1, 1 << 40, "1"},
		{-1, 1 << 40, "1"},
		{-1, 1<<40 + 1, "-1"},
		{2, 64, "10000000000000000"},
		{-3, 3, "-1b"},
		{-3, 4, "51"},
		{255, 17, "ef856134040c669755c7c022b6a77810ff"},
	}
	for _, tt := range tests {
		got, err := Power(FromInt64(tt.base), FromInt64(tt.exp))
		if err != nil {
			t.Fatalf("Power(%d, %d) error = %v", tt.base, tt.exp, err)
		}
		want, _ := new(big.Int).SetString(tt.want, 16)
		if toBig(got).Cmp(want) != 0 {
			t.Errorf("Power(%d, %d) = %x, want %s", tt.base, tt.exp, toBig(got), tt.want)
		}
		if got.IsZero() && got.Negative() {
			t.Errorf("Power(%d, %d) produced a negative zero", tt.base, tt.exp)
		}
	}
}

func TestPowerErrors(t *testing.T) {
	t.Parallel()
	if _, err := Power(FromInt64(2), FromInt64(-1)); !errors.Is(err, ErrNegativeExponent) {
		t.Errorf("negative exponent error = %v", err)
	}
	if _, err := PowerMod(FromInt64(2), FromInt64(-1), FromInt64(7)); !errors.Is(err, ErrNegativeExponent) {
		t.Errorf("PowerMod negative exponent error = %v", err)
	}
	if _, err := Power(FromInt64(2), FromUint64(1<<40)); !errors.Is(err, ErrResourceExhausted) {
		t.Errorf("oversized power error = %v, want ErrResourceExhausted", err)
	}
	huge := mustNumber(t, []byte{0, 0, 0, 0, 0, 0, 0, 0, 1}, false)
	if _, err := Power(FromInt64(3), huge); !errors.Is(err, ErrResourceExhausted) {
		t.Errorf("multi-limb exponent error = %v, want ErrResourceExhausted", err)
	}
	if r, err := Power(FromInt64(-1), huge); err != nil || toBig(r).Int64() != 1 {
		t.Errorf("(-1)^2^64 = %v, %v; want 1", r, err)
	}
	negZero := mustNumber(t, []byte{0}, true)
	if r, err := Power(FromInt64(9), negZero); err != nil || toBig(r).Int64() != 1 {
		t.Errorf("9^-0 = %v, %v; want 1", r, err)
	}
}

func TestPowerMod(t *testing.T) {
	t.Parallel()
	tests := []struct {
		base, exp, mod int64
		want           int64
	}{
		{4, 13, 497, 445},
		{-4, 13, 497, 52},
		{4, 13, -497, 445},
		{5, 0, 7, 1},
		{5, 0, 1, 0},
		{5, 3, -1, 0},
		{0, 0, 13, 1},
		{-7, 1, 7, 0},
		{10, 1, 7, 3},
	}
	for _, tt := range tests {
		got, err := PowerMod(FromInt64(tt.base), FromInt64(tt.exp), FromInt64(tt.mod))
		if err != nil {
			t.Fatalf("PowerMod(%d, %d, %d) error = %v", tt.base, tt.exp, tt.mod, err)
		}
		if toBig(got).Int64() != tt.want || got.Negative() {
			t.Errorf("PowerMod(%d, %d, %d) = %s, want %d", tt.base, tt.exp, tt.mod, toBig(got), tt.want)
		}
	}
}

func TestPowerModMersenneSample(t *testing.T) {
	t.Parallel()
	base := fromHex(t, "F2B9F3D7464C523FA37B5CE8DAFF2272BF29E5731C0FC57CB4A6E484085C1FA3F6955D6F9B7BD01278D4B8CFE59F97DF180FAE2E9F651BBDA3A2A3E0F677284E")
	exp := fromHex(t, "ff")
	mod := fromHex(t, "7fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffed")
	const want = "5885a56190337bdbd340edd6b5a9843b20aefb75c13b9b86429adc2462300a8a"

	fast, err := PowerModMersenne(base, exp, mod)
	if err != nil {
		t.Fatalf("PowerModMersenne() error = %v", err)
	}
	slow, err := PowerMod(base, exp, mod)
	if err != nil {
		t.Fatalf("PowerMod() error = %v", err)
	}
	w, _ := new(big.Int).SetString(want, 16)
	if toBig(fast).Cmp(w) != 0 {
		t.Errorf("PowerModMersenne() = %x, want %s", toBig(fast), want)
	}
	if Compare(fast, slow) != 0 {
		t.Errorf("PowerModMersenne() = %x, PowerMod() = %x", toBig(fast), toBig(slow))
	}
	if fast.Len() != 32 {
		t.Errorf("result width = %d, want 32", fast.Len())
	}
}

func TestPowerModWithGeneric(t *testing.T) {
	t.Parallel()
	g, err := NewGeneric(FromInt64(-1000))
	if err != nil {
		t.Fatal(err)
	}
	if toBig(g.N()).Int64() != 1000 {
		t.Errorf("N() = %s, want 1000", toBig(g.N()))
	}
	got, err := PowerModWith(FromInt64(-3), FromInt64(3), g)
	if err != nil {
		t.Fatal(err)
	}
	if toBig(got).Int64() != 973 {
		t.Errorf("(-3)^3 mod 1000 = %s, want 973", toBig(got))
	}
	r, err := g.Reduce(FromInt64(-2001))
	if err != nil || toBig(r).Int64() != 999 {
		t.Errorf("Reduce(-2001) = %v, %v; want 999", r, err)
	}
}
