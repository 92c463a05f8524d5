package verify

import (
	"bytes"
	"errors"
	"fmt"
	"math/big"
	"math/rand"

	"github.com/agbru/chonky/internal/bignum"
	"github.com/agbru/chonky/internal/handle"
)

// ErrPropertyViolated marks a check failure caused by a wrong result, as
// opposed to an engine error.
var ErrPropertyViolated = errors.New("property violated")

// Check is one randomized property. Run evaluates a single sample drawn from
// rng with operands of at most bits bits.
type Check interface {
	Name() string
	Run(rng *rand.Rand, bits int) error
}

type checkFunc struct {
	name string
	run  func(rng *rand.Rand, bits int) error
}

func (c checkFunc) Name() string                       { return c.name }
func (c checkFunc) Run(rng *rand.Rand, bits int) error { return c.run(rng, bits) }

// NewCheck wraps a function as a Check.
func NewCheck(name string, run func(rng *rand.Rand, bits int) error) Check {
	return checkFunc{name: name, run: run}
}

func violated(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrPropertyViolated}, args...)...)
}

// DefaultChecks returns every built-in property, with oracle agreement
// measured against o, followed by CrossChecks.
func DefaultChecks(o Oracle) []Check {
	checks := []Check{
		NewCheck("round-trip", checkRoundTrip),
		NewCheck("add-commutative", checkCommutative("add", bignum.Add)),
		NewCheck("multiply-commutative", checkCommutative("multiply", bignum.Multiply)),
		NewCheck("additive-inverse", checkAdditiveInverse),
		NewCheck("division-identity", checkDivisionIdentity),
		NewCheck("mersenne-equivalence", checkMersenneEquivalence),
		NewCheck("mersenne-range", checkMersenneRange),
		NewCheck("modexp-equivalence", checkModexpEquivalence),
		NewCheck("power-square", checkPowerSquare),
		NewCheck("zero-boundary", checkZeroBoundary),
		NewCheck("scenario-42-7", checkScenario),
		NewCheck("handle-balance", checkHandleBalance),
		NewCheck("oracle-"+o.Name(), checkOracle(o)),
	}
	return append(checks, CrossChecks()...)
}

func checkRoundTrip(rng *rand.Rand, bits int) error {
	mag := littleEndian(randomInt(rng, bits), rng.Intn(4))
	neg := rng.Intn(2) == 0
	n, err := bignum.New(mag, len(mag), neg)
	if err != nil {
		return err
	}
	if !bytes.Equal(n.Bytes(), mag) || n.Len() != len(mag) || n.Negative() != neg {
		return violated("allocated %x/%d/%v, read back %x/%d/%v", mag, len(mag), neg, n.Bytes(), n.Len(), n.Negative())
	}
	return n.Release()
}

func checkCommutative(name string, op func(a, b *bignum.Number) (*bignum.Number, error)) func(*rand.Rand, int) error {
	return func(rng *rand.Rand, bits int) error {
		ns, err := numbers(rng, randomInt(rng, bits), randomInt(rng, bits))
		if err != nil {
			return err
		}
		x, err := op(ns[0], ns[1])
		if err != nil {
			return err
		}
		y, err := op(ns[1], ns[0])
		if err != nil {
			return err
		}
		if bignum.Compare(x, y) != 0 || x.Len() != y.Len() {
			return violated("%s(a, b) = %v, %s(b, a) = %v", name, toBig(x), name, toBig(y))
		}
		return nil
	}
}

func checkAdditiveInverse(rng *rand.Rand, bits int) error {
	ns, err := numbers(rng, randomInt(rng, bits))
	if err != nil {
		return err
	}
	neg, err := ns[0].Neg()
	if err != nil {
		return err
	}
	sum, err := bignum.Add(ns[0], neg)
	if err != nil {
		return err
	}
	if !sum.IsZero() || sum.Negative() {
		return violated("a + (-a) = %v (negative flag %v) for a = %v", toBig(sum), sum.Negative(), toBig(ns[0]))
	}
	return nil
}

func checkDivisionIdentity(rng *rand.Rand, bits int) error {
	ns, err := numbers(rng, randomInt(rng, bits), randomNonZero(rng, 1+rng.Intn(bits)))
	if err != nil {
		return err
	}
	a, b := ns[0], ns[1]
	q, r, err := bignum.Divide(a, b)
	if err != nil {
		return err
	}
	prod, err := bignum.Multiply(q, b)
	if err != nil {
		return err
	}
	sum, err := bignum.Add(prod, r)
	if err != nil {
		return err
	}
	if bignum.Compare(sum, a) != 0 {
		return violated("q*b + r = %v, want %v", toBig(sum), toBig(a))
	}
	if r.Sign() < 0 || bignum.CompareMagnitude(r, b) >= 0 {
		return violated("remainder %v outside [0, |%v|)", toBig(r), toBig(b))
	}
	return nil
}

func mersenneSample(rng *rand.Rand, bits int) (a, n *bignum.Number, err error) {
	ns, err := numbers(rng, randomInt(rng, bits), curve25519P)
	if err != nil {
		return nil, nil, err
	}
	return ns[0], ns[1], nil
}

func checkMersenneEquivalence(rng *rand.Rand, bits int) error {
	a, n, err := mersenneSample(rng, bits)
	if err != nil {
		return err
	}
	fast, err := bignum.ModuloMersenne(a, n)
	if err != nil {
		return err
	}
	slow, err := bignum.Modulo(a, n)
	if err != nil {
		return err
	}
	if bignum.Compare(fast, slow) != 0 {
		return violated("modulo_mersenne = %v, modulo = %v for a = %v", toBig(fast), toBig(slow), toBig(a))
	}
	return nil
}

func checkMersenneRange(rng *rand.Rand, bits int) error {
	a, n, err := mersenneSample(rng, bits)
	if err != nil {
		return err
	}
	r, err := bignum.ModuloMersenne(a, n)
	if err != nil {
		return err
	}
	if r.Sign() < 0 || bignum.Compare(r, n) >= 0 {
		return violated("modulo_mersenne = %v outside [0, 2^255-19)", toBig(r))
	}
	return nil
}

// smallExponent keeps unreduced powers of bits-bit operands around 32k bits.
func smallExponent(rng *rand.Rand, bits int) int64 {
	return int64(rng.Intn(min(64, max(2, 32768/bits))))
}

func checkModexpEquivalence(rng *rand.Rand, bits int) error {
	ns, err := numbers(rng, randomInt(rng, bits), big.NewInt(smallExponent(rng, bits)), randomNonZero(rng, bits))
	if err != nil {
		return err
	}
	a, e, m := ns[0], ns[1], ns[2]
	got, err := bignum.PowerMod(a, e, m)
	if err != nil {
		return err
	}
	p, err := bignum.Power(a, e)
	if err != nil {
		return err
	}
	want, err := bignum.Modulo(p, m)
	if err != nil {
		return err
	}
	if bignum.Compare(got, want) != 0 {
		return violated("power_mod = %v, modulo(power) = %v", toBig(got), toBig(want))
	}
	return nil
}

func checkPowerSquare(rng *rand.Rand, bits int) error {
	ns, err := numbers(rng, randomInt(rng, bits), big.NewInt(2))
	if err != nil {
		return err
	}
	sq, err := bignum.Power(ns[0], ns[1])
	if err != nil {
		return err
	}
	prod, err := bignum.Multiply(ns[0], ns[0])
	if err != nil {
		return err
	}
	if bignum.Compare(sq, prod) != 0 {
		return violated("power(a, 2) = %v, a*a = %v", toBig(sq), toBig(prod))
	}
	return nil
}

func checkZeroBoundary(rng *rand.Rand, bits int) error {
	ns, err := numbers(rng, randomInt(rng, bits), randomNonZero(rng, bits), new(big.Int))
	if err != nil {
		return err
	}
	a, b, zero := ns[0], ns[1], ns[2]

	sum, err := bignum.Add(a, zero)
	if err != nil {
		return err
	}
	if bignum.Compare(sum, a) != 0 {
		return violated("a + 0 = %v, want %v", toBig(sum), toBig(a))
	}
	prod, err := bignum.Multiply(a, zero)
	if err != nil {
		return err
	}
	if !prod.IsZero() || prod.Negative() {
		return violated("a * 0 = %v", toBig(prod))
	}
	rem, err := bignum.Modulo(zero, b)
	if err != nil {
		return err
	}
	if !rem.IsZero() {
		return violated("0 mod b = %v", toBig(rem))
	}
	if q, r, err := bignum.Divide(a, zero); !errors.Is(err, bignum.ErrDivisionByZero) || q != nil || r != nil {
		return violated("divide(a, 0) returned a result (err = %v)", err)
	}
	if r, err := bignum.Modulo(a, zero); !errors.Is(err, bignum.ErrDivisionByZero) || r != nil {
		return violated("modulo(a, 0) returned a result (err = %v)", err)
	}
	return nil
}

func checkScenario(*rand.Rand, int) error {
	a, b := bignum.FromInt64(42), bignum.FromInt64(7)
	q, r, err := bignum.Divide(a, b)
	if err != nil {
		return err
	}
	results := []struct {
		name string
		fn   func(a, b *bignum.Number) (*bignum.Number, error)
		want int64
	}{
		{"add", bignum.Add, 49},
		{"subtract", bignum.Subtract, 35},
		{"multiply", bignum.Multiply, 294},
		{"modulo", bignum.Modulo, 0},
	}
	for _, tt := range results {
		got, err := tt.fn(a, b)
		if err != nil {
			return err
		}
		if toBig(got).Int64() != tt.want {
			return violated("%s(42, 7) = %v, want %d", tt.name, toBig(got), tt.want)
		}
	}
	if toBig(q).Int64() != 6 || !r.IsZero() {
		return violated("divide(42, 7) = (%v, %v), want (6, 0)", toBig(q), toBig(r))
	}
	return nil
}

// checkHandleBalance drives every entry point through a handle table and
// requires that releasing all handles leaves the table empty.
func checkHandleBalance(rng *rand.Rand, bits int) error {
	tbl := handle.NewTable()
	alloc := func(x *big.Int) handle.Handle {
		mag := littleEndian(x, rng.Intn(4))
		return tbl.Allocate(mag, len(mag), x.Sign() < 0)
	}
	a := alloc(randomInt(rng, bits))
	b := alloc(randomNonZero(rng, bits))
	e := alloc(big.NewInt(smallExponent(rng, bits)))
	p := alloc(curve25519P)
	owned := []handle.Handle{a, b, e, p}
	for _, h := range owned {
		if h == handle.Absent {
			return tbl.Err()
		}
	}

	for _, op := range handle.Ops() {
		args := []handle.Handle{a, b}
		switch op {
		case handle.OpPower:
			args = []handle.Handle{a, e}
		case handle.OpModuloMersenne:
			args = []handle.Handle{a, p}
		case handle.OpPowerMod:
			args = []handle.Handle{a, e, b}
		case handle.OpPowerModMersenne:
			args = []handle.Handle{a, e, p}
		}
		hs := tbl.Invoke(op, args...)
		if hs == nil {
			return fmt.Errorf("%s: %w", op, tbl.Err())
		}
		if len(hs) != op.Results() {
			return violated("%s returned %d handles, want %d", op, len(hs), op.Results())
		}
		owned = append(owned, hs...)
	}
	for _, h := range owned {
		if err := tbl.Release(h); err != nil {
			return err
		}
	}
	if tbl.Live() != 0 {
		return violated("%d handles still live after releasing all", tbl.Live())
	}
	if err := tbl.Release(a); !errors.Is(err, handle.ErrUnknownHandle) {
		return violated("double release returned %v", err)
	}
	return nil
}

func checkOracle(o Oracle) func(*rand.Rand, int) error {
	return func(rng *rand.Rand, bits int) error {
		x, y := randomInt(rng, bits), randomNonZero(rng, bits)
		ex := new(big.Int).Abs(randomInt(rng, bits))
		ns, err := numbers(rng, x, y, ex, curve25519P)
		if err != nil {
			return err
		}
		a, b, e, p := ns[0], ns[1], ns[2], ns[3]

		sum, err := bignum.Add(a, b)
		if err != nil {
			return err
		}
		if want := o.Add(x, y); toBig(sum).Cmp(want) != 0 {
			return violated("add = %v, %s says %v", toBig(sum), o.Name(), want)
		}
		prod, err := bignum.Multiply(a, b)
		if err != nil {
			return err
		}
		if want := o.Mul(x, y); toBig(prod).Cmp(want) != 0 {
			return violated("multiply = %v, %s says %v", toBig(prod), o.Name(), want)
		}
		q, r, err := bignum.Divide(a, b)
		if err != nil {
			return err
		}
		if wq, wr := o.DivMod(x, y); toBig(q).Cmp(wq) != 0 || toBig(r).Cmp(wr) != 0 {
			return violated("divide = (%v, %v), %s says (%v, %v)", toBig(q), toBig(r), o.Name(), wq, wr)
		}
		pm, err := bignum.PowerModMersenne(a, e, p)
		if err != nil {
			return err
		}
		if want := o.Exp(x, ex, curve25519P); toBig(pm).Cmp(want) != 0 {
			return violated("power_mod_mersenne = %v, %s says %v", toBig(pm), o.Name(), want)
		}
		return nil
	}
}
