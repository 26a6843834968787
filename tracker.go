package axis

import (
	"gonum.org/v1/plot"
)

// A RangeTracker folds a stream of samples into their running minimum
// and maximum.
//
// RangeTracker does no locking. Producers running on a different
// goroutine than the layout pass must serialise calls to Add and the
// range queries themselves, e.g. with a mutex guarding the owning Engine.
type RangeTracker struct {
	data Interval

	// Fallback is reported by Min and Max while no sample has been seen.
	// Engines keep it at the current manual bounds of the axis.
	Fallback Interval
}

// NewRangeTracker returns an empty tracker with fallback range fallback.
func NewRangeTracker(fallback Interval) *RangeTracker {
	return &RangeTracker{data: UnsetInterval(), Fallback: fallback}
}

// Add folds values into the running bounds. NaN and ±Inf are skipped.
func (t *RangeTracker) Add(values ...float64) {
	t.data.Update(values...)
}

// Learn folds the x (or y if useY is set) range reported by each ranger
// into the running bounds.
func (t *RangeTracker) Learn(useY bool, rangers ...plot.DataRanger) {
	for _, r := range rangers {
		xmin, xmax, ymin, ymax := r.DataRange()
		if useY {
			t.data.Update(ymin, ymax)
		} else {
			t.data.Update(xmin, xmax)
		}
	}
}

// Reset clears the tracker to its empty state.
func (t *RangeTracker) Reset() {
	t.data = UnsetInterval()
}

// Empty reports whether no finite sample has been added since the last
// Reset.
func (t *RangeTracker) Empty() bool {
	return !t.data.IsSet()
}

// Min returns the smallest sample seen, or Fallback.Min if empty.
func (t *RangeTracker) Min() float64 {
	if t.Empty() {
		return t.Fallback.Min
	}
	return t.data.Min
}

// Max returns the largest sample seen, or Fallback.Max if empty.
func (t *RangeTracker) Max() float64 {
	if t.Empty() {
		return t.Fallback.Max
	}
	return t.data.Max
}

// Interval returns [Min:Max].
func (t *RangeTracker) Interval() Interval {
	return Interval{t.Min(), t.Max()}
}
