package cli

import (
	"encoding/hex"
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrInvalidOperand is returned by ParseOperand for malformed input.
var ErrInvalidOperand = errors.New("invalid operand")

// ParseOperand parses a signed hexadecimal operand such as "-0x10f0_0000".
// The optional sign comes first, then an optional 0x prefix; underscores
// separate digit groups. The returned magnitude is little-endian and keeps
// the width implied by the digits, so "0x00ff" yields two bytes.
func ParseOperand(s string) (mag []byte, negative bool, err error) {
	digits := strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(digits, "-"):
		negative, digits = true, digits[1:]
	case strings.HasPrefix(digits, "+"):
		digits = digits[1:]
	}
	if strings.HasPrefix(digits, "0x") || strings.HasPrefix(digits, "0X") {
		digits = digits[2:]
	}
	digits = strings.ReplaceAll(digits, "_", "")
	if digits == "" {
		return nil, false, fmt.Errorf("%w %q: no digits", ErrInvalidOperand, s)
	}
	if len(digits)%2 == 1 {
		digits = "0" + digits
	}
	mag, err = hex.DecodeString(digits)
	if err != nil {
		return nil, false, fmt.Errorf("%w %q: %v", ErrInvalidOperand, s, err)
	}
	slices.Reverse(mag)
	return mag, negative, nil
}

// FormatMagnitude renders a little-endian magnitude as minimal lowercase
// hexadecimal, prefixed with "-" when negative and nonzero.
func FormatMagnitude(mag []byte, negative bool) string {
	be := slices.Clone(mag)
	slices.Reverse(be)
	s := strings.TrimLeft(hex.EncodeToString(be), "0")
	if s == "" {
		return "0"
	}
	if negative {
		return "-" + s
	}
	return s
}
