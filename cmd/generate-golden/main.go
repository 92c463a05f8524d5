// Command generate-golden writes the golden vectors replayed by the bignum
// tests. Every expected value is computed with math/big, independently of
// the engine under test.
package main

import (
	"encoding/hex"
	"encoding/json"
	"flag"
	"fmt"
	"math/big"
	"math/rand"
	"os"
	"path/filepath"
	"strings"

	"github.com/minio/sha256-simd"
)

const defaultSeed = 20261019

type goldenCase struct {
	Name string   `json:"name"`
	Op   string   `json:"op"`
	A    string   `json:"a"`
	B    string   `json:"b"`
	M    string   `json:"m,omitempty"`
	Want []string `json:"want"`
}

type goldenFile struct {
	Seed   int64        `json:"seed"`
	Digest string       `json:"digest"`
	Cases  []goldenCase `json:"cases"`
}

// digest hashes one "name|op|a|b|m|want,want" line per case, so that hand
// edits to the vectors are detected by the tests that replay them.
func digest(cases []goldenCase) string {
	h := sha256.New()
	for _, c := range cases {
		fmt.Fprintf(h, "%s\n", strings.Join([]string{c.Name, c.Op, c.A, c.B, c.M, strings.Join(c.Want, ",")}, "|"))
	}
	return hex.EncodeToString(h.Sum(nil))
}

// mersenneModuli are the pseudo-Mersenne moduli 2^k - c covered by the vectors.
var mersenneModuli = []struct {
	k int
	c *big.Int
}{
	{61, big.NewInt(1)},
	{89, big.NewInt(1)},
	{127, big.NewInt(1)},
	{255, big.NewInt(19)},
	{256, big.NewInt(0x1000003D1)},
	{521, big.NewInt(1)},
	{192, new(big.Int).Add(new(big.Int).Lsh(big.NewInt(1), 64), big.NewInt(1))},
}

// generator draws signed random operands from a seeded source.
type generator struct {
	rng *rand.Rand
}

func (g *generator) pick(choices ...int) int {
	return choices[g.rng.Intn(len(choices))]
}

func (g *generator) bits(n int) *big.Int {
	if n <= 0 {
		return new(big.Int)
	}
	buf := make([]byte, (n+7)/8)
	g.rng.Read(buf)
	if extra := len(buf)*8 - n; extra > 0 {
		buf[0] &= 0xff >> extra
	}
	return new(big.Int).SetBytes(buf)
}

func (g *generator) signed(n int) *big.Int {
	v := g.bits(n)
	if g.rng.Float64() < 0.4 {
		v.Neg(v)
	}
	return v
}

// signedHex formats x as lowercase hexadecimal with a leading "-" when negative.
func signedHex(x *big.Int) string {
	return x.Text(16)
}

// euclid returns the quotient and remainder with 0 <= r < |b|.
func euclid(a, b *big.Int) (*big.Int, *big.Int) {
	q, r := new(big.Int), new(big.Int)
	q.DivMod(a, b, r)
	return q, r
}

func hexAll(xs ...*big.Int) []string {
	out := make([]string, len(xs))
	for i, x := range xs {
		out[i] = signedHex(x)
	}
	return out
}

// generate builds the full vector set for seed.
func generate(seed int64) goldenFile {
	g := &generator{rng: rand.New(rand.NewSource(seed))}
	var cases []goldenCase
	add := func(name, op string, a, b, m *big.Int, want ...*big.Int) {
		c := goldenCase{Name: name, Op: op, A: signedHex(a), B: signedHex(b), Want: hexAll(want...)}
		if m != nil {
			c.M = signedHex(m)
		}
		cases = append(cases, c)
	}

	for i := 0; i < 12; i++ {
		a := g.signed(g.pick(8, 64, 65, 128, 256, 512, 1000))
		b := g.signed(g.pick(8, 64, 130, 512))
		add(fmt.Sprintf("add/%d", i), "add", a, b, nil, new(big.Int).Add(a, b))
		add(fmt.Sprintf("subtract/%d", i), "subtract", a, b, nil, new(big.Int).Sub(a, b))
		add(fmt.Sprintf("multiply/%d", i), "multiply", a, b, nil, new(big.Int).Mul(a, b))
		if b.Sign() != 0 {
			q, r := euclid(a, b)
			add(fmt.Sprintf("divide/%d", i), "divide", a, b, nil, q, r)
			add(fmt.Sprintf("modulo/%d", i), "modulo", a, b, nil, r)
		}
	}

	for _, mm := range mersenneModuli {
		k := mm.k
		n := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), uint(k)), mm.c)
		for j := 0; j < 3; j++ {
			a := g.signed(g.pick(k-3, k, 2*k, 3*k+7))
			_, r := euclid(a, n)
			add(fmt.Sprintf("modulo_mersenne/%d/%d", k, j), "modulo_mersenne", a, n, nil, r)

			base := g.signed(g.pick(k/2, k, 2*k))
			e := g.bits(g.pick(8, 64, 200))
			want := new(big.Int).Exp(base, e, n)
			add(fmt.Sprintf("power_mod_mersenne/%d/%d", k, j), "power_mod_mersenne", base, e, n, want)
			add(fmt.Sprintf("power_mod/%d/%d", k, j), "power_mod", base, e, n, want)
		}
	}

	for i := 0; i < 6; i++ {
		base := g.signed(g.pick(3, 64, 200))
		e := big.NewInt(int64(g.rng.Intn(40)))
		add(fmt.Sprintf("power/%d", i), "power", base, e, nil, new(big.Int).Exp(base, e, nil))

		m := g.signed(g.pick(17, 100, 300))
		if m.Sign() == 0 {
			m.SetInt64(7)
		}
		base = g.signed(300)
		e = g.bits(100)
		want := new(big.Int).Exp(base, e, new(big.Int).Abs(m))
		add(fmt.Sprintf("power_mod/generic/%d", i), "power_mod", base, e, m, want)
	}

	return goldenFile{Seed: seed, Digest: digest(cases), Cases: cases}
}

func run(out string, seed int64) error {
	data, err := json.MarshalIndent(generate(seed), "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(out), 0755); err != nil {
		return err
	}
	return os.WriteFile(out, append(data, '\n'), 0644)
}

func main() {
	out := flag.String("out", filepath.Join("internal", "bignum", "testdata", "golden.json"), "Destination file.")
	seed := flag.Int64("seed", defaultSeed, "Random seed.")
	flag.Parse()

	if err := run(*out, *seed); err != nil {
		fmt.Fprintf(os.Stderr, "generate-golden: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("wrote %s\n", *out)
}
