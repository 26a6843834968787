package axis

import (
	"math"
	"strconv"
	"testing"
)

var nan = math.NaN()

var intervalUpdateTests = []struct {
	old  Interval
	x    float64
	want Interval
}{
	{Interval{3, 6}, 4, Interval{3, 6}},
	{Interval{3, 6}, 2, Interval{2, 6}},
	{Interval{3, 6}, 7, Interval{3, 7}},
	{Interval{nan, nan}, nan, Interval{nan, nan}},
	{Interval{nan, nan}, 5, Interval{5, 5}},
	{Interval{5, 5}, nan, Interval{5, 5}},
	{Interval{5, 5}, math.Inf(1), Interval{5, 5}},
	{Interval{nan, nan}, math.Inf(-1), Interval{nan, nan}},
}

func TestIntervalUpdate(t *testing.T) {
	for i, tc := range intervalUpdateTests {
		t.Run(strconv.Itoa(i), func(t *testing.T) {
			got := tc.old
			got.Update(tc.x)
			if !got.Equal(tc.want) {
				t.Errorf("%v update %v = %v, want %v",
					tc.old, tc.x, got, tc.want)
			}
		})
	}
}

func TestRangeTracker(t *testing.T) {
	tr := NewRangeTracker(Interval{-1, 1})
	if !tr.Empty() {
		t.Fatal("new tracker not empty")
	}
	if got := tr.Interval(); !got.Equal(Interval{-1, 1}) {
		t.Errorf("empty tracker interval = %v, want fallback [-1:1]", got)
	}

	tr.Add(3, 7.5, nan, -2, math.Inf(1))
	if got := tr.Interval(); !got.Equal(Interval{-2, 7.5}) {
		t.Errorf("interval = %v, want [-2:7.5]", got)
	}

	tr.Reset()
	tr.Add(nan)
	if !tr.Empty() {
		t.Error("tracker with only NaN samples is not empty")
	}
	if tr.Min() != -1 || tr.Max() != 1 {
		t.Errorf("Min, Max = %g, %g, want fallback -1, 1", tr.Min(), tr.Max())
	}
}

type ranger struct{ xmin, xmax, ymin, ymax float64 }

func (r ranger) DataRange() (xmin, xmax, ymin, ymax float64) {
	return r.xmin, r.xmax, r.ymin, r.ymax
}

func TestRangeTrackerLearn(t *testing.T) {
	rs := []ranger{{0, 1, 10, 20}, {-3, 0.5, 15, 40}}

	x := NewRangeTracker(Interval{})
	x.Learn(false, rs[0], rs[1])
	if got := x.Interval(); !got.Equal(Interval{-3, 1}) {
		t.Errorf("x interval = %v, want [-3:1]", got)
	}

	y := NewRangeTracker(Interval{})
	y.Learn(true, rs[0], rs[1])
	if got := y.Interval(); !got.Equal(Interval{10, 40}) {
		t.Errorf("y interval = %v, want [10:40]", got)
	}
}
