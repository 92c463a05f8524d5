package bignum_test

import (
	"fmt"
	"math/big"
	"slices"

	"github.com/agbru/chonky/internal/bignum"
)

func hex(n *bignum.Number) string {
	be := n.Bytes()
	slices.Reverse(be)
	x := new(big.Int).SetBytes(be)
	if n.Negative() {
		x.Neg(x)
	}
	return fmt.Sprintf("%x", x)
}

// ExampleNew shows how a magnitude buffer and sign flag form a Number.
func ExampleNew() {
	n, err := bignum.New([]byte{0x00, 0x00, 0xf0, 0x10, 0x00, 0x00, 0x00, 0x00}, 8, true)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(hex(n), n.Len(), n.Sign())
	// Output:
	// -10f00000 8 -1
}

// ExampleDivide demonstrates the Euclidean convention for negative operands.
func ExampleDivide() {
	q, r, err := bignum.Divide(bignum.FromInt64(-7), bignum.FromInt64(2))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(hex(q), hex(r))
	// Output:
	// -4 1
}

// ExamplePowerModMersenne raises a value modulo 2^255 - 19 with the fold.
func ExamplePowerModMersenne() {
	m, _ := bignum.NewMersenne(255, 19)
	r, err := bignum.PowerModMersenne(bignum.FromInt64(2), bignum.FromInt64(255), m.N())
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(hex(r))
	// Output:
	// 13
}

// ExampleModuloMersenne shows the rejection of a modulus without the
// 2^k - c shape.
func ExampleModuloMersenne() {
	_, err := bignum.ModuloMersenne(bignum.FromInt64(100), bignum.FromInt64(600))
	fmt.Println(err)
	// Output:
	// bignum: modulus is not of the form 2^k - c
}
