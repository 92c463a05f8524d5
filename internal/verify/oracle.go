package verify

import (
	"fmt"
	"math/big"
	"sort"
	"sync"
)

// Oracle is an independent reference implementation the engine is compared
// against. Every method returns fresh values and leaves its arguments intact.
type Oracle interface {
	// Name identifies the oracle in reports.
	Name() string
	Add(a, b *big.Int) *big.Int
	Mul(a, b *big.Int) *big.Int
	// DivMod returns the Euclidean quotient and remainder. b is never zero.
	DivMod(a, b *big.Int) (q, r *big.Int)
	// Exp returns base^exp, or base^exp mod |m| in [0, |m|) when m is non-nil.
	Exp(base, exp, m *big.Int) *big.Int
}

var (
	oraclesMu sync.RWMutex
	oracles   = map[string]func() Oracle{
		"big": func() Oracle { return BigOracle{} },
	}
)

// RegisterOracle makes an oracle available under name. Build-tagged files
// call it from init.
func RegisterOracle(name string, factory func() Oracle) {
	oraclesMu.Lock()
	defer oraclesMu.Unlock()
	oracles[name] = factory
}

// NewOracle returns the oracle registered under name.
func NewOracle(name string) (Oracle, error) {
	oraclesMu.RLock()
	defer oraclesMu.RUnlock()
	factory, ok := oracles[name]
	if !ok {
		return nil, fmt.Errorf("unknown oracle %q", name)
	}
	return factory(), nil
}

// OracleNames lists the registered oracles in sorted order.
func OracleNames() []string {
	oraclesMu.RLock()
	defer oraclesMu.RUnlock()
	names := make([]string, 0, len(oracles))
	for name := range oracles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// BigOracle is backed by math/big.
type BigOracle struct{}

func (BigOracle) Name() string { return "math/big" }

func (BigOracle) Add(a, b *big.Int) *big.Int { return new(big.Int).Add(a, b) }

func (BigOracle) Mul(a, b *big.Int) *big.Int { return new(big.Int).Mul(a, b) }

func (BigOracle) DivMod(a, b *big.Int) (*big.Int, *big.Int) {
	return new(big.Int).DivMod(a, b, new(big.Int))
}

func (BigOracle) Exp(base, exp, m *big.Int) *big.Int {
	if m == nil {
		return new(big.Int).Exp(base, exp, nil)
	}
	r := new(big.Int).Exp(base, exp, new(big.Int).Abs(m))
	if r.Sign() < 0 {
		r.Add(r, new(big.Int).Abs(m))
	}
	return r
}
