package handle

import (
	"fmt"
	"time"

	"github.com/agbru/chonky/internal/bignum"
)

type engineFunc func(args []*bignum.Number) ([]*bignum.Number, error)

// call resolves the operands, runs fn and registers its results. Nothing is
// registered unless every result was produced.
func (t *Table) call(op Op, args []Handle, fn engineFunc) []Handle {
	start := time.Now()
	ns := make([]*bignum.Number, len(args))
	for i, h := range args {
		n, err := t.lookup(h)
		if err != nil {
			t.fail(op.String(), start, fmt.Errorf("operand %d: %w", i, err))
			return nil
		}
		ns[i] = n
	}
	results, err := fn(ns)
	if err != nil {
		t.fail(op.String(), start, err)
		return nil
	}
	out := make([]Handle, len(results))
	width := 0
	for i, n := range results {
		out[i] = t.register(n)
		width = max(width, n.Len())
	}
	t.succeed(op.String(), start, width)
	return out
}

func binary(fn func(a, b *bignum.Number) (*bignum.Number, error)) engineFunc {
	return func(args []*bignum.Number) ([]*bignum.Number, error) {
		n, err := fn(args[0], args[1])
		if err != nil {
			return nil, err
		}
		return []*bignum.Number{n}, nil
	}
}

func ternary(fn func(a, b, c *bignum.Number) (*bignum.Number, error)) engineFunc {
	return func(args []*bignum.Number) ([]*bignum.Number, error) {
		n, err := fn(args[0], args[1], args[2])
		if err != nil {
			return nil, err
		}
		return []*bignum.Number{n}, nil
	}
}

func divide(args []*bignum.Number) ([]*bignum.Number, error) {
	q, r, err := bignum.Divide(args[0], args[1])
	if err != nil {
		return nil, err
	}
	return []*bignum.Number{q, r}, nil
}

func engineFor(op Op) engineFunc {
	switch op {
	case OpAdd:
		return binary(bignum.Add)
	case OpSubtract:
		return binary(bignum.Subtract)
	case OpMultiply:
		return binary(bignum.Multiply)
	case OpDivide:
		return divide
	case OpModulo:
		return binary(bignum.Modulo)
	case OpModuloMersenne:
		return binary(bignum.ModuloMersenne)
	case OpPower:
		return binary(bignum.Power)
	case OpPowerMod:
		return ternary(bignum.PowerMod)
	case OpPowerModMersenne:
		return ternary(bignum.PowerModMersenne)
	}
	return nil
}

func (t *Table) single(op Op, args ...Handle) Handle {
	if hs := t.call(op, args, engineFor(op)); hs != nil {
		return hs[0]
	}
	return Absent
}

// Add returns a+b.
func (t *Table) Add(a, b Handle) Handle { return t.single(OpAdd, a, b) }

// Subtract returns a-b.
func (t *Table) Subtract(a, b Handle) Handle { return t.single(OpSubtract, a, b) }

// Multiply returns a*b.
func (t *Table) Multiply(a, b Handle) Handle { return t.single(OpMultiply, a, b) }

// Divide returns the Euclidean quotient and remainder of a/b. Both are
// Absent when b is zero.
func (t *Table) Divide(a, b Handle) (q, r Handle) {
	hs := t.call(OpDivide, []Handle{a, b}, divide)
	if hs == nil {
		return Absent, Absent
	}
	return hs[0], hs[1]
}

// Modulo returns a mod b in [0, |b|).
func (t *Table) Modulo(a, b Handle) Handle { return t.single(OpModulo, a, b) }

// ModuloMersenne returns a mod n through the shift-and-add fold. It is
// Absent when n is not of the form 2^k - c.
func (t *Table) ModuloMersenne(a, n Handle) Handle { return t.single(OpModuloMersenne, a, n) }

// Power returns base^exp.
func (t *Table) Power(base, exp Handle) Handle { return t.single(OpPower, base, exp) }

// PowerMod returns base^exp mod m.
func (t *Table) PowerMod(base, exp, m Handle) Handle { return t.single(OpPowerMod, base, exp, m) }

// PowerModMersenne returns base^exp mod m using the Mersenne fold.
func (t *Table) PowerModMersenne(base, exp, m Handle) Handle {
	return t.single(OpPowerModMersenne, base, exp, m)
}

// Invoke dispatches op on args and returns its result handles, or nil when
// the result is absent. Err reports the cause.
func (t *Table) Invoke(op Op, args ...Handle) []Handle {
	fn := engineFor(op)
	if fn == nil {
		t.fail(op.String(), time.Now(), ErrUnknownOp)
		return nil
	}
	if len(args) != op.Arity() {
		t.fail(op.String(), time.Now(), fmt.Errorf("%w: got %d, want %d", ErrArity, len(args), op.Arity()))
		return nil
	}
	return t.call(op, args, fn)
}
