package axis

import (
	"math"
)

// maxGeneratedTicks bounds the tick slices for ranges with a tick unit
// that is far too small for them.
const maxGeneratedTicks = 10000

// tickTolerance is the fraction of a tick unit by which a tick may exceed
// the upper bound and still be kept, absorbing floating point drift.
const tickTolerance = 1e-9

// MajorTicks returns the major tick values of r.
//
// Linear ticks start at the first multiple of r.TickUnit >= r.Lower and
// step by r.TickUnit. Logarithmic ticks sit at every integer power of the
// transform inside the range. A degenerate range yields [r.Lower].
func MajorTicks(r Range, t Transform) []float64 {
	if isLog(t) {
		if r.Lower >= r.Upper {
			return []float64{r.Lower}
		}
		var ticks []float64
		for exp := ceilSnap(t.Forward(r.Lower)); len(ticks) < maxGeneratedTicks; exp++ {
			v := t.Backward(exp)
			if math.IsNaN(v) || v > r.Upper*(1+tickTolerance) {
				break
			}
			ticks = append(ticks, math.Max(r.Lower, math.Min(v, r.Upper)))
		}
		return ticks
	}

	if r.Lower == r.Upper || !(r.TickUnit > 0) {
		return []float64{r.Lower}
	}
	first := firstMajorTick(r.Lower, r.TickUnit)
	return stepTicks(first, r.Lower, r.Upper, r.TickUnit, nil)
}

// MinorTicks returns the ticks that subdivide each major interval into
// count steps, restricted to [lower:upper]. On log axes the decades are
// subdivided linearly in the untransformed domain.
func MinorTicks(lower, upper, tickUnit float64, count int, t Transform) []float64 {
	if count <= 0 || !(lower < upper) {
		return nil
	}
	inRange := func(v float64) bool { return v >= lower && v <= upper }
	var ticks []float64

	if isLog(t) {
		exp := floorSnap(t.Forward(lower))
		if math.IsInf(exp, 0) || math.IsNaN(exp) {
			return nil
		}
		for major := t.Backward(exp); major < upper && len(ticks) < maxGeneratedTicks; major = t.Backward(exp) {
			exp++
			next := t.Backward(exp)
			unit := (next - major) / float64(count)
			for k := 1; k < count; k++ {
				if v := major + float64(k)*unit; inRange(v) {
					ticks = append(ticks, v)
				}
			}
		}
		return ticks
	}

	if !(tickUnit > 0) {
		return nil
	}
	if (upper-lower)/tickUnit*float64(count) > maxGeneratedTicks {
		return nil
	}
	unit := tickUnit / float64(count)
	first := firstMajorTick(lower, tickUnit) - tickUnit
	for i := 0; ; i++ {
		major := first + float64(i)*tickUnit
		if major >= upper {
			break
		}
		for k := 1; k < count; k++ {
			if v := snapZero(major+float64(k)*unit, unit); inRange(v) {
				ticks = append(ticks, v)
			}
		}
	}
	return ticks
}

func firstMajorTick(lower, unit float64) float64 {
	return math.Ceil(lower/unit-tickTolerance) * unit
}

// stepTicks appends first, first+unit, ... <= upper to ticks. Values are
// computed by multiplication, not accumulation, to avoid drift. Ticks
// within tolerance outside [lower:upper] are snapped onto the bound.
func stepTicks(first, lower, upper, unit float64, ticks []float64) []float64 {
	limit := upper + unit*tickTolerance
	for i := 0; len(ticks) < maxGeneratedTicks; i++ {
		v := first + float64(i)*unit
		if v > limit {
			break
		}
		v = math.Max(lower, math.Min(v, upper))
		ticks = append(ticks, snapZero(v, unit))
	}
	return ticks
}

// snapZero maps values that are zero up to rounding noise to exactly 0.
func snapZero(v, unit float64) float64 {
	if math.Abs(v) < unit*tickTolerance {
		return 0
	}
	return v
}
