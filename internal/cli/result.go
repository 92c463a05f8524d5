package cli

import (
	"fmt"
	"io"
	"math/bits"
	"strconv"
	"strings"
	"time"

	"github.com/agbru/chonky/internal/format"
	"github.com/agbru/chonky/internal/ui"
)

// Value is one result handle read back from the engine.
type Value struct {
	// Label names the value, "result" or "quotient"/"remainder" for divide.
	Label     string
	Magnitude []byte
	Negative  bool
}

// Hex returns the value in the form accepted by ParseOperand.
func (v Value) Hex() string {
	return FormatMagnitude(v.Magnitude, v.Negative)
}

// BitLen returns the bit length of the absolute value.
func (v Value) BitLen() int {
	for i := len(v.Magnitude) - 1; i >= 0; i-- {
		if b := v.Magnitude[i]; b != 0 {
			return i*8 + bits.Len8(b)
		}
	}
	return 0
}

// Result is an evaluated operation ready for display.
type Result struct {
	Op       string
	Values   []Value
	Duration time.Duration
}

// DisplayResult prints each value of res. Values longer than
// TruncationLimit hex digits are shortened. With details, widths and
// timing are listed as well.
func DisplayResult(res Result, details bool, out io.Writer) {
	styles := ui.CurrentStyles().LabelWidth(12)
	fmt.Fprintln(out, styles.Heading.Render("--- "+res.Op+" ---"))
	truncated := false
	for _, v := range res.Values {
		s := v.Hex()
		if len(s) > TruncationLimit {
			s = s[:DisplayEdges] + "..." + s[len(s)-DisplayEdges:]
			truncated = true
		}
		fmt.Fprintf(out, "%s %s%s%s\n", styles.Label.Render(v.Label), ui.ColorGreen(), s, ui.ColorReset())
	}
	if truncated {
		fmt.Fprintf(out, "(Tip: use the %s-q%s or %s-o%s option to get the full value)\n",
			ui.ColorYellow(), ui.ColorReset(), ui.ColorYellow(), ui.ColorReset())
	}
	if !details {
		return
	}

	fmt.Fprintf(out, "\n%s\n", styles.Heading.Render("--- Detailed result analysis ---"))
	duration := format.FormatExecutionDuration(res.Duration)
	if res.Duration == 0 {
		duration = "< 1µs"
	}
	fmt.Fprintf(out, "%s %s%s%s\n", styles.Label.Render("time"), ui.ColorGreen(), duration, ui.ColorReset())
	for _, v := range res.Values {
		fmt.Fprintf(out, "%s %s%s%s bytes, %s%s%s bits, sign %s\n",
			styles.Label.Render(v.Label),
			ui.ColorCyan(), format.FormatNumberString(strconv.Itoa(len(v.Magnitude))), ui.ColorReset(),
			ui.ColorCyan(), format.FormatNumberString(strconv.Itoa(v.BitLen())), ui.ColorReset(),
			signName(v))
	}
}

func signName(v Value) string {
	if strings.HasPrefix(v.Hex(), "-") {
		return "negative"
	}
	return "non-negative"
}
