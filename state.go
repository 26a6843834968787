package axis

import (
	"fmt"
)

// State is the long-lived state of one axis. Exactly one Engine owns a
// State; range computations read it and SetRange writes accepted ranges
// back.
type State struct {
	// LowerBound and UpperBound are the target bounds.
	LowerBound, UpperBound float64
	TickUnit               float64
	Scale                  float64

	// CurrentLowerBound is the displayed lower bound. It lags LowerBound
	// while an animation layer interpolates towards a new range.
	CurrentLowerBound float64

	Side     Side
	Inverted bool
	LogAxis  bool
	TimeAxis bool

	AutoRanging       bool
	AutoRangePadding  float64
	AutoRangeRounding bool
	ForceZeroInRange  bool

	MinorTickCount int
	OverlapPolicy  OverlapPolicy
	TickLabelGap   float64
}

func newState(o Options) State {
	return State{
		LowerBound:        o.LowerBound,
		UpperBound:        o.UpperBound,
		TickUnit:          o.TickUnit,
		CurrentLowerBound: o.LowerBound,
		Side:              o.Side,
		Inverted:          o.Inverted,
		LogAxis:           o.LogAxis,
		TimeAxis:          o.TimeAxis,
		AutoRanging:       o.AutoRanging || o.LowerBound >= o.UpperBound,
		AutoRangePadding:  o.AutoRangePadding,
		AutoRangeRounding: o.AutoRangeRounding,
		ForceZeroInRange:  o.ForceZeroInRange,
		MinorTickCount:    o.MinorTickCount,
		OverlapPolicy:     o.OverlapPolicy,
		TickLabelGap:      o.TickLabelGap,
	}
}

func (s State) String() string {
	return fmt.Sprintf("Range=[%.4g:%.4g] Current=%.4g TickUnit=%g Scale=%g %s auto=%t log=%t",
		s.LowerBound, s.UpperBound, s.CurrentLowerBound, s.TickUnit, s.Scale, s.Side, s.AutoRanging, s.LogAxis)
}
