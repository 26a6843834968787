package axis

import (
	"fmt"
	"math"
)

// ----------------------------------------------------------------------------
// Interval

// Interval represents a (potentially degenerate) real interval.
// Both edges of the interval may be NaN indicating this edge is not
// determined yet.
type Interval struct {
	Min, Max float64
}

// UnsetInterval returns the empty interval [NaN:NaN].
func UnsetInterval() Interval {
	return Interval{math.NaN(), math.NaN()}
}

// Update expands i to include x. Non-finite values are ignored.
func (i *Interval) Update(x ...float64) {
	for _, v := range x {
		if !finite(v) {
			continue
		}
		// The negated comparisons also catch a NaN edge.
		if !(i.Min < v) {
			i.Min = v
		}
		if !(i.Max > v) {
			i.Max = v
		}
	}
}

// IsSet reports whether both edges of i are determined.
func (i Interval) IsSet() bool {
	return !math.IsNaN(i.Min) && !math.IsNaN(i.Max)
}

// Len returns the width of i. It is NaN for an unset interval.
func (i Interval) Len() float64 { return i.Max - i.Min }

// Contains reports whether x lies in the closed interval i.
func (i Interval) Contains(x float64) bool {
	return x >= i.Min && x <= i.Max
}

func (i Interval) Equal(j Interval) bool {
	if math.IsNaN(i.Min) != math.IsNaN(j.Min) || math.IsNaN(i.Max) != math.IsNaN(j.Max) {
		return false
	}
	return (math.IsNaN(i.Min) || i.Min == j.Min) && (math.IsNaN(i.Max) || i.Max == j.Max)
}

func (i Interval) String() string {
	return fmt.Sprintf("[%g:%g]", i.Min, i.Max)
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
