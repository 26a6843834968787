package axis

import (
	"gonum.org/v1/plot"
)

// DefaultTickerLength is the axis length in points assumed by a Ticker
// without an explicit Length.
const DefaultTickerLength = 400

// Ticker adapts an Engine to gonum's plot.Ticker. Major ticks are labeled
// with the engine's formatter, minor ticks carry no label.
type Ticker struct {
	Engine *Engine
	// Length is the axis length in points used to pick the tick unit.
	Length float64
}

// Ticks returns the major and minor ticks of [min:max].
func (t Ticker) Ticks(min, max float64) []plot.Tick {
	e := t.Engine
	length := t.Length
	if !(length > 0) {
		length = DefaultTickerLength
	}
	if min > max {
		min, max = max, min
	}
	unit, err := e.tickUnitFor(min, max, length, e.labelSizeEstimate())
	if err != nil {
		e.logger.Error("axis: ticker", "err", err)
		return nil
	}
	r := Range{Lower: min, Upper: max, Length: length, TickUnit: unit}

	values := e.MajorTicks(r)
	if a, ok := e.formatter.(TickAdapter); ok {
		a.AdaptTicks(values, e.opts.UnitScaling)
	}
	ticks := make([]plot.Tick, 0, len(values))
	for _, v := range values {
		ticks = append(ticks, plot.Tick{Value: v, Label: e.TickLabel(v)})
	}
	for _, v := range MinorTicks(min, max, unit, e.state.MinorTickCount, e.transform) {
		ticks = append(ticks, plot.Tick{Value: v})
	}
	return ticks
}

// Normalizer adapts a Transform to gonum's plot.Normalizer.
type Normalizer struct {
	Transform Transform
}

// Normalize returns the fractional position of x in [min:max] measured in
// the transformed domain.
func (n Normalizer) Normalize(min, max, x float64) float64 {
	if min == max {
		return 0.5
	}
	tmin, tmax := n.Transform.Forward(min), n.Transform.Forward(max)
	return (n.Transform.Forward(x) - tmin) / (tmax - tmin)
}

var (
	_ plot.Ticker     = Ticker{}
	_ plot.Normalizer = Normalizer{}
)
