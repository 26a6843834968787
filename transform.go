// Axis Transformations
//
// A transformation maps raw data values to the linearised coordinate in
// which ticks are spaced and pixels are interpolated.
package axis

import (
	"math"
)

// TransformKind tags the variants of Transform.
type TransformKind int

const (
	Linear TransformKind = iota
	Logarithmic
	LogarithmicTime
)

// String returns the name of k.
func (k TransformKind) String() string {
	switch k {
	case Linear:
		return "linear"
	case Logarithmic:
		return "log"
	case LogarithmicTime:
		return "logtime"
	}
	return "unknown"
}

// A Transform maps data values to the linearised axis domain.
// Forward and Backward are inverses on the valid domain of the transform.
// Outside of it they return NaN or -Inf but never panic; callers clamp
// first.
type Transform interface {
	Kind() TransformKind
	Forward(value float64) float64
	Backward(t float64) float64

	// RoundedMin and RoundedMax snap a bound outwards to the next
	// decade of the transform. The linear transform returns its input.
	RoundedMin(min float64) float64
	RoundedMax(max float64) float64
}

// snapTolerance absorbs the rounding error of math.Log near exact decades.
const snapTolerance = 1e-9

func floorSnap(x float64) float64 { return math.Floor(x + snapTolerance) }
func ceilSnap(x float64) float64  { return math.Ceil(x - snapTolerance) }

// ----------------------------------------------------------------------------
// Linear

// LinearTransform does not transform at all.
type LinearTransform struct{}

func (LinearTransform) Kind() TransformKind            { return Linear }
func (LinearTransform) Forward(v float64) float64      { return v }
func (LinearTransform) Backward(t float64) float64     { return t }
func (LinearTransform) RoundedMin(min float64) float64 { return min }
func (LinearTransform) RoundedMax(max float64) float64 { return max }

// ----------------------------------------------------------------------------
// Logarithmic

// DefaultLogBase is the base of logarithmic axes unless configured.
const DefaultLogBase = 10

// LogTransform implements forward = log_b(v), backward = b^t for v > 0.
type LogTransform struct {
	base   float64
	lnBase float64
}

// NewLogTransform returns a logarithmic transform to base which must
// be greater than 1.
func NewLogTransform(base float64) (LogTransform, error) {
	if !(base > 1) || math.IsInf(base, 1) {
		return LogTransform{}, configError("logBase", base, ErrInvalidLogBase)
	}
	return LogTransform{base: base, lnBase: math.Log(base)}, nil
}

// Base returns the base of the logarithm.
func (l LogTransform) Base() float64 { return l.base }

func (LogTransform) Kind() TransformKind { return Logarithmic }

func (l LogTransform) Forward(v float64) float64 {
	if v <= 0 {
		return math.Inf(-1)
	}
	if l.base == 10 {
		return math.Log10(v)
	}
	return math.Log(v) / l.lnBase
}

func (l LogTransform) Backward(t float64) float64 {
	if l.base == 10 && t == math.Trunc(t) && math.Abs(t) < 300 {
		return math.Pow10(int(t))
	}
	return math.Pow(l.base, t)
}

func (l LogTransform) RoundedMin(min float64) float64 {
	if !(min > 0) {
		return min
	}
	return l.Backward(floorSnap(l.Forward(min)))
}

func (l LogTransform) RoundedMax(max float64) float64 {
	if !(max > 0) {
		return max
	}
	return l.Backward(ceilSnap(l.Forward(max)))
}

// ----------------------------------------------------------------------------
// Logarithmic time

// LogTimeTransform compresses elapsed time (seconds since an epoch) with
// forward = log_b(1+v) and backward = b^t - 1. It is defined for v > -1,
// so the epoch itself maps to 0.
type LogTimeTransform struct {
	log LogTransform
}

// NewLogTimeTransform returns a log-time transform to base (> 1).
func NewLogTimeTransform(base float64) (LogTimeTransform, error) {
	l, err := NewLogTransform(base)
	if err != nil {
		return LogTimeTransform{}, err
	}
	return LogTimeTransform{log: l}, nil
}

// Base returns the base of the logarithm.
func (l LogTimeTransform) Base() float64 { return l.log.base }

func (LogTimeTransform) Kind() TransformKind { return LogarithmicTime }

func (l LogTimeTransform) Forward(v float64) float64 {
	return l.log.Forward(1 + v)
}

func (l LogTimeTransform) Backward(t float64) float64 {
	return l.log.Backward(t) - 1
}

func (l LogTimeTransform) RoundedMin(min float64) float64 {
	if !(min > -1) {
		return min
	}
	return l.Backward(floorSnap(l.Forward(min)))
}

func (l LogTimeTransform) RoundedMax(max float64) float64 {
	if !(max > -1) {
		return max
	}
	return l.Backward(ceilSnap(l.Forward(max)))
}

// logBase returns the base of t or DefaultLogBase for linear transforms.
func logBase(t Transform) float64 {
	switch tt := t.(type) {
	case LogTransform:
		return tt.base
	case LogTimeTransform:
		return tt.log.base
	}
	return DefaultLogBase
}

// isLog reports whether t spaces major ticks per decade.
func isLog(t Transform) bool {
	return t.Kind() != Linear
}
