package handle

import (
	"fmt"
	"strings"
)

// Op identifies one engine entry point.
type Op int

// Entry points, in the order they are listed to users.
const (
	OpAdd Op = iota + 1
	OpSubtract
	OpMultiply
	OpDivide
	OpModulo
	OpModuloMersenne
	OpPower
	OpPowerMod
	OpPowerModMersenne
)

var opNames = map[Op]string{
	OpAdd:              "add",
	OpSubtract:         "subtract",
	OpMultiply:         "multiply",
	OpDivide:           "divide",
	OpModulo:           "modulo",
	OpModuloMersenne:   "modulo_mersenne",
	OpPower:            "power",
	OpPowerMod:         "power_mod",
	OpPowerModMersenne: "power_mod_mersenne",
}

// Ops returns every entry point in declaration order.
func Ops() []Op {
	ops := make([]Op, 0, len(opNames))
	for op := OpAdd; op <= OpPowerModMersenne; op++ {
		ops = append(ops, op)
	}
	return ops
}

// OpNames returns the names accepted by ParseOp.
func OpNames() []string {
	names := make([]string, 0, len(opNames))
	for _, op := range Ops() {
		names = append(names, op.String())
	}
	return names
}

// ParseOp resolves an operation name. Matching ignores case and accepts
// dashes in place of underscores.
func ParseOp(name string) (Op, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	for op, n := range opNames {
		if n == key {
			return op, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownOp, name)
}

func (o Op) String() string {
	if n, ok := opNames[o]; ok {
		return n
	}
	return fmt.Sprintf("Op(%d)", int(o))
}

// Arity is the number of operand handles the entry point takes.
func (o Op) Arity() int {
	switch o {
	case OpPowerMod, OpPowerModMersenne:
		return 3
	case 0:
		return 0
	}
	if _, ok := opNames[o]; !ok {
		return 0
	}
	return 2
}

// Results is the number of handles a successful call returns.
func (o Op) Results() int {
	if o == OpDivide {
		return 2
	}
	return 1
}
