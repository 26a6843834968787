package axis

import (
	"errors"
	"fmt"
	"math"
	"testing"
)

func mustLog(base float64) LogTransform {
	t, err := NewLogTransform(base)
	if err != nil {
		panic(err)
	}
	return t
}

func mustLogTime(base float64) LogTimeTransform {
	t, err := NewLogTimeTransform(base)
	if err != nil {
		panic(err)
	}
	return t
}

var transformTests = []struct {
	trans   Transform
	x, want float64
}{
	{LinearTransform{}, 7, 7},
	{LinearTransform{}, -3.5, -3.5},

	{mustLog(10), 1, 0},
	{mustLog(10), 1000, 3},
	{mustLog(10), 0.01, -2},
	{mustLog(2), 8, 3},
	{mustLog(math.E), math.E, 1},

	{mustLogTime(10), 0, 0},
	{mustLogTime(10), 9, 1},
	{mustLogTime(10), 99, 2},
}

func equal64(a, b float64) bool {
	ai, af := math.Modf(a)
	bi, bf := math.Modf(b)
	if af == 0 && bf == 0 {
		return ai == bi
	}
	return math.Abs(a-b) < 1e-9*math.Max(1, math.Abs(b))
}

func TestTransform(t *testing.T) {
	for i, tc := range transformTests {
		t.Run(fmt.Sprintf("%s/%d", tc.trans.Kind(), i), func(t *testing.T) {
			if got := tc.trans.Forward(tc.x); !equal64(got, tc.want) {
				t.Errorf("Forward(%g) = %g, want %g", tc.x, got, tc.want)
			}
			if got := tc.trans.Backward(tc.want); !equal64(got, tc.x) {
				t.Errorf("Backward(%g) = %g, want %g", tc.want, got, tc.x)
			}
		})
	}
}

func TestLogTransformDomain(t *testing.T) {
	l := mustLog(10)
	if got := l.Forward(0); !math.IsInf(got, -1) {
		t.Errorf("Forward(0) = %g, want -Inf", got)
	}
	if got := l.Forward(-5); !math.IsInf(got, -1) {
		t.Errorf("Forward(-5) = %g, want -Inf", got)
	}
	for e := -6; e <= 6; e++ {
		v := math.Pow10(e)
		if got := l.Backward(l.Forward(v)); !equal64(got, v) {
			t.Errorf("Backward(Forward(%g)) = %g", v, got)
		}
	}
}

var roundedTests = []struct {
	trans    Transform
	min, max float64
	lo, hi   float64
}{
	{LinearTransform{}, 3.3, 7.7, 3.3, 7.7},
	{mustLog(10), 2, 300, 1, 1000},
	{mustLog(10), 10, 100, 10, 100},
	{mustLog(10), 0.05, 0.5, 0.01, 1},
	{mustLog(2), 3, 9, 2, 16},
	{mustLogTime(10), 5, 50, 0, 99},
}

func TestRoundedBounds(t *testing.T) {
	for i, tc := range roundedTests {
		t.Run(fmt.Sprintf("%s/%d", tc.trans.Kind(), i), func(t *testing.T) {
			if got := tc.trans.RoundedMin(tc.min); !equal64(got, tc.lo) {
				t.Errorf("RoundedMin(%g) = %g, want %g", tc.min, got, tc.lo)
			}
			if got := tc.trans.RoundedMax(tc.max); !equal64(got, tc.hi) {
				t.Errorf("RoundedMax(%g) = %g, want %g", tc.max, got, tc.hi)
			}
		})
	}
}

func TestInvalidLogBase(t *testing.T) {
	for _, base := range []float64{1, 0.5, 0, -10, math.NaN(), math.Inf(1)} {
		if _, err := NewLogTransform(base); !errors.Is(err, ErrInvalidLogBase) {
			t.Errorf("NewLogTransform(%g) error = %v, want ErrInvalidLogBase", base, err)
		}
	}
}
