// Package label formats and measures axis tick labels.
//
// Formatters divide values by a unit scale before formatting them. The
// formatters that need to see all major ticks of a layout pass first
// implement AdaptTicks.
package label

import (
	"math"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
)

// DefaultDigits is the number of decimals used before AdaptTicks was called.
const DefaultDigits = 6

// Number formats plain decimal numbers without trailing zeros.
type Number struct {
	// Digits is the maximum number of decimals.
	Digits int
	// ExpThreshold switches to 1.5E3 style labels once |v| reaches it
	// or falls below its inverse. Values <= 1 disable the switch.
	ExpThreshold float64
}

// NewNumber returns a Number formatter with DefaultDigits decimals.
func NewNumber() *Number {
	return &Number{Digits: DefaultDigits, ExpThreshold: 1e9}
}

// Format returns value/unitScale as decimal text.
func (n *Number) Format(value, unitScale float64) string {
	v := scaled(value, unitScale)
	switch {
	case math.IsNaN(v) || math.IsInf(v, 0):
		return strconv.FormatFloat(v, 'g', -1, 64)
	case math.Abs(v) < 0.5*math.Pow10(-n.Digits):
		return "0"
	}
	if t := n.ExpThreshold; t > 1 {
		if a := math.Abs(v); a >= t || a < 1/t {
			return Exponential(v, 1)
		}
	}
	return humanize.FtoaWithDigits(v, n.Digits)
}

// AdaptTicks sets Digits to the precision the smallest tick spacing
// needs.
func (n *Number) AdaptTicks(ticks []float64, unitScale float64) {
	d := minSpacing(ticks) / math.Abs(unitScale)
	if !(d > 0) || math.IsInf(d, 0) {
		n.Digits = DefaultDigits
		return
	}
	n.Digits = Precision(d)
}

// Precision returns the number of decimals needed to tell apart values
// that are div apart.
func Precision(div float64) int {
	p := int(-math.Floor(math.Log10(div) + 1e-9))
	if p < 0 {
		p = 0
	}
	// 0.25 needs two decimals, not one.
	for ; p < 15; p++ {
		s := div * math.Pow10(p)
		if math.Abs(s-math.Round(s)) <= 1e-9*s {
			break
		}
	}
	return p
}

// SI formats values with SI prefixes, e.g. 1.5 k or 20 µ.
type SI struct {
	Unit   string
	Digits int
}

// Format returns value/unitScale with an SI prefix.
func (s SI) Format(value, unitScale float64) string {
	return humanize.SIWithDigits(scaled(value, unitScale), s.Digits, s.Unit)
}

// Exponential formats v in the 1.0E3 style with the given number of
// mantissa decimals.
func Exponential(v float64, decimals int) string {
	s := strconv.FormatFloat(v, 'E', decimals, 64)
	mant, exp, ok := strings.Cut(s, "E")
	if !ok {
		return s
	}
	e, err := strconv.Atoi(exp)
	if err != nil {
		return s
	}
	return mant + "E" + strconv.Itoa(e)
}

func scaled(value, unitScale float64) float64 {
	if unitScale == 0 || unitScale == 1 {
		return value
	}
	return value / unitScale
}

func minSpacing(ticks []float64) float64 {
	min := math.Inf(1)
	for i := 1; i < len(ticks); i++ {
		if d := math.Abs(ticks[i] - ticks[i-1]); d > 0 && d < min {
			min = d
		}
	}
	return min
}
