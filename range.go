package axis

import (
	"fmt"
	"math"
)

const (
	// DefaultLogMinValue replaces non-positive lower bounds on log axes.
	DefaultLogMinValue = 1e-6
	// MaxTickCount caps the number of major ticks an auto range aims for.
	MaxTickCount = 20
	// DefaultRangeLength is the effective range of the degenerate range [0:0].
	DefaultRangeLength = 2
	// FallbackTickUnit is used when the raw tick unit is 0 or NaN.
	FallbackTickUnit = 1e-3
	// TickMarkGap is the pixel gap between labels assumed by the strict
	// tick unit refinement.
	TickMarkGap = 6
	// NextTickUnitFactor inflates the raw tick unit between refinement
	// rounds.
	NextTickUnitFactor = 1.01

	maxRefineIterations = 64
)

// ----------------------------------------------------------------------------
// Range

// Range is the outcome of a range computation. It is a value; a new Range
// supersedes the old one instead of modifying it.
type Range struct {
	Lower, Upper float64
	Length       float64 // axis length in pixels
	Scale        float64 // pixels per data unit, negative on vertical axes
	TickUnit     float64
}

func (r Range) String() string {
	return fmt.Sprintf("Range=[%g:%g] Length=%g Scale=%g TickUnit=%g",
		r.Lower, r.Upper, r.Length, r.Scale, r.TickUnit)
}

// Interval returns [r.Lower:r.Upper].
func (r Range) Interval() Interval { return Interval{r.Lower, r.Upper} }

// CalculateScale returns the pixels per data unit needed to fit
// [lower:upper] into length pixels. Vertical axes get a negative scale as
// pixel coordinates grow downwards. A zero scale is replaced by -1.
func CalculateScale(length, lower, upper float64, vertical bool) float64 {
	diff := upper - lower
	var scale float64
	switch {
	case vertical && diff == 0:
		scale = -length
	case vertical:
		scale = -(length / diff)
	case diff == 0:
		scale = length
	default:
		scale = length / diff
	}
	if scale == 0 || math.IsNaN(scale) {
		return -1
	}
	return scale
}

// effectiveRange is max-min unless that is zero, in which case |min| or
// DefaultRangeLength for min == 0 is used to scale padding.
func effectiveRange(min, max float64) float64 {
	r := max - min
	if r == 0 {
		if min == 0 {
			return DefaultRangeLength
		}
		return math.Abs(min)
	}
	return r
}

// clampBoundToZero sticks a padded bound to zero if padding pushed it
// across zero.
func clampBoundToZero(padded, bound float64) float64 {
	if padded < 0 && bound >= 0 || padded > 0 && bound <= 0 {
		return 0
	}
	return padded
}

// numTickMarks returns how many labels of labelSize fit into length,
// clamped to [2, MaxTickCount].
func numTickMarks(length, labelSize float64) int {
	if !(length > 0) {
		return 2
	}
	if !(labelSize > 0) {
		return MaxTickCount
	}
	n := math.Floor(length / labelSize)
	switch {
	case n > MaxTickCount:
		return MaxTickCount
	case n < 2:
		return 2
	}
	return int(n)
}

// ----------------------------------------------------------------------------
// Range computation

// ComputeRange turns the data range [dataMin:dataMax] into an axis range
// for an axis of length pixels whose labels take roughly labelSize pixels.
//
// Non-finite data bounds are replaced by the previous valid range of the
// engine (or [0:1]) and logged. The only errors are configuration errors
// of the tick unit supplier.
func (e *Engine) ComputeRange(dataMin, dataMax, length, labelSize float64) (Range, error) {
	if !finite(dataMin) || !finite(dataMax) {
		fb := e.fallbackInterval()
		e.logger.Warn("axis: non-finite data bounds, using fallback range",
			"min", dataMin, "max", dataMax, "fallback", fb.String())
		dataMin, dataMax = fb.Min, fb.Max
	}
	if dataMin > dataMax {
		dataMin, dataMax = dataMax, dataMin
	}
	if isLog(e.transform) {
		return e.logRange(dataMin, dataMax, length)
	}

	min, max := dataMin, dataMax
	if e.state.ForceZeroInRange {
		if min > 0 {
			min = 0
		}
		if max < 0 {
			max = 0
		}
	}
	padding := effectiveRange(min, max) * e.state.AutoRangePadding
	paddedMin := clampBoundToZero(min-padding, min)
	paddedMax := clampBoundToZero(max+padding, max)
	return e.linearRange(paddedMin, paddedMax, length, labelSize, e.state.AutoRangeRounding)
}

// ManualRange returns the range for the current bounds of the engine.
// The bounds are kept but the tick unit is recomputed for length.
func (e *Engine) ManualRange(length, labelSize float64) (Range, error) {
	lower, upper := e.state.LowerBound, e.state.UpperBound
	vertical := e.state.Side.IsVertical()
	if isLog(e.transform) {
		return Range{lower, upper, length, CalculateScale(length, lower, upper, vertical), e.state.TickUnit}, nil
	}
	unit, err := e.tickUnitFor(lower, upper, length, labelSize)
	if err != nil {
		return Range{}, err
	}
	return Range{lower, upper, length, CalculateScale(length, lower, upper, vertical), unit}, nil
}

// PreferredTickUnit returns the tick unit for the current bounds on an
// axis of length pixels, estimating the label size from the font size.
func (e *Engine) PreferredTickUnit(length float64) (float64, error) {
	return e.tickUnitFor(e.state.LowerBound, e.state.UpperBound, length, e.labelSizeEstimate())
}

func (e *Engine) tickUnitFor(lower, upper, length, labelSize float64) (float64, error) {
	raw := (upper - lower) / float64(numTickMarks(length, labelSize))
	if raw == 0 || math.IsNaN(raw) {
		raw = FallbackTickUnit
	}
	return checkedTickUnit(e.units, math.Abs(raw))
}

func (e *Engine) linearRange(min, max, length, labelSize float64, round bool) (Range, error) {
	if max-min == 0 {
		pad := e.state.AutoRangePadding
		if !(pad > 0) {
			pad = DefaultAutoRangePadding
		}
		half := effectiveRange(min, max) * pad / 2
		min, max = min-half, max+half
	}

	n := numTickMarks(length, labelSize)
	raw := (max - min) / float64(n)
	if raw == 0 || math.IsNaN(raw) {
		raw = FallbackTickUnit
	}

	var (
		unit         float64
		lower, upper = min, max
		err          error
	)
	if e.opts.Strict {
		unit, lower, upper, err = e.refineTickUnit(min, max, length, n, raw, round)
	} else {
		unit, err = checkedTickUnit(e.units, raw)
		if round {
			lower, upper = roundOut(min, max, unit)
		}
	}
	if err != nil {
		return Range{}, err
	}

	scale := CalculateScale(length, lower, upper, e.state.Side.IsVertical())
	return Range{lower, upper, length, scale, unit}, nil
}

// refineTickUnit grows the tick unit until the measured labels fit into
// length and there are at most MaxTickCount of them. It stops as soon as
// the supplier no longer returns a larger unit.
func (e *Engine) refineTickUnit(min, max, length float64, n int, raw float64, round bool) (unit, lower, upper float64, err error) {
	lower, upper = min, max
	for iter := 0; iter < maxRefineIterations; iter++ {
		u, err := checkedTickUnit(e.units, raw)
		if err != nil {
			return 0, 0, 0, err
		}
		if u <= unit {
			break
		}
		unit = u

		var first float64
		if round {
			lower, upper = roundOut(min, max, u)
			first = lower
		} else {
			first = math.Ceil(min/u) * u
		}

		count, maxGap, halfPrev := 0, 0.0, 0.0
		for major := first; major <= upper && count <= MaxTickCount; major = first + float64(count)*u {
			size := e.measureAlong(major)
			if count > 0 {
				maxGap = math.Max(maxGap, halfPrev+TickMarkGap+size/2)
			}
			halfPrev = size / 2
			count++
		}
		reqLength := float64(count-1) * maxGap
		raw = u * NextTickUnitFactor

		// With two ticks left a larger unit cannot shorten reqLength.
		if count <= 2 || !(n > 2 && (reqLength > length || count > MaxTickCount)) {
			break
		}
	}
	return unit, lower, upper, nil
}

// roundOut widens [min:max] to multiples of unit. Bounds are never -0.
func roundOut(min, max, unit float64) (lower, upper float64) {
	lower = math.Floor(min/unit) * unit
	upper = math.Ceil(max/unit) * unit
	if upper == 0 {
		upper = 0 // drops the sign of -0
	}
	if lower == 0 {
		lower = 0
	}
	return lower, upper
}

func (e *Engine) logRange(dataMin, dataMax, length float64) (Range, error) {
	min, max := dataMin, dataMax
	floor, clamp := 0.0, false
	switch e.transform.Kind() {
	case Logarithmic:
		floor, clamp = DefaultLogMinValue, min <= 0
	case LogarithmicTime:
		floor, clamp = 0, min < 0
	}
	if clamp {
		min = floor
		e.state.LowerBound = floor
		e.logger.Warn("axis: log axis cannot show non-positive values, clamping lower bound",
			"min", dataMin, "lower", floor)
	}
	if max <= min {
		max = e.transform.Backward(e.transform.Forward(min) + 1)
	}

	shift := math.Log1p(e.state.AutoRangePadding) / math.Log(logBase(e.transform))
	paddedMin, paddedMax := min, max
	if !clamp {
		paddedMin = e.transform.Backward(e.transform.Forward(min) - shift)
		if e.transform.Kind() == LogarithmicTime && min >= 0 && paddedMin < 0 {
			paddedMin = 0
		}
	}
	paddedMax = e.transform.Backward(e.transform.Forward(max) + shift)

	if e.state.AutoRangeRounding {
		if !clamp {
			paddedMin = e.transform.RoundedMin(paddedMin)
		}
		paddedMax = e.transform.RoundedMax(paddedMax)
	}
	scale := CalculateScale(length, paddedMin, paddedMax, e.state.Side.IsVertical())
	return Range{paddedMin, paddedMax, length, scale, e.state.TickUnit}, nil
}

// fallbackInterval is the last valid range of the engine or a default.
func (e *Engine) fallbackInterval() Interval {
	lo, hi := e.state.LowerBound, e.state.UpperBound
	if finite(lo) && finite(hi) && lo < hi && (!isLog(e.transform) || lo > 0) {
		return Interval{lo, hi}
	}
	if isLog(e.transform) {
		return Interval{1, logBase(e.transform)}
	}
	return Interval{0, 1}
}
