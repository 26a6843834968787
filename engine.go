package axis

import (
	"log/slog"
	"math"

	"github.com/vdobler/axis/label"
)

// Engine computes ranges, ticks, coordinate mappings and label layout
// for one axis.
//
// An Engine is not safe for concurrent use. Data producers on other
// goroutines must serialise Add with the layout pass.
type Engine struct {
	opts  Options
	state State

	logBase   float64
	transform Transform
	units     TickUnitSupplier
	custom    bool // units installed by SetTickUnitSupplier

	measurer  Measurer
	formatter Formatter
	customFmt bool // formatter installed by SetFormatter
	logger    *slog.Logger

	tracker *RangeTracker
	cache   Snapshot
	ticks   *tickCache
}

// NewEngine returns an engine configured by opts.
func NewEngine(opts Options) (*Engine, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	ticks, err := newTickCache(opts.TickCacheSize)
	if err != nil {
		return nil, err
	}
	e := &Engine{
		opts:     opts,
		state:    newState(opts),
		logBase:  opts.LogBase,
		units:    DefaultTickUnits,
		measurer: EstimateMeasurer{FontSize: opts.TickLabelFontSize},
		logger:   slog.Default(),
		ticks:    ticks,
	}
	if e.state.TimeAxis {
		e.units = TimeTickUnits
	}
	if err := e.updateTransform(); err != nil {
		return nil, err
	}
	e.tracker = NewRangeTracker(Interval{e.state.LowerBound, e.state.UpperBound})
	e.state.Scale = CalculateScale(1, e.state.LowerBound, e.state.UpperBound, e.state.Side.IsVertical())
	e.cache = DeriveCache(e.state, e.transform, Geometry{})
	return e, nil
}

// updateTransform selects the transform matching the log and time flags.
func (e *Engine) updateTransform() error {
	switch {
	case !e.state.LogAxis:
		e.transform = LinearTransform{}
	case e.state.TimeAxis:
		t, err := NewLogTimeTransform(e.logBase)
		if err != nil {
			return err
		}
		e.transform = t
	default:
		t, err := NewLogTransform(e.logBase)
		if err != nil {
			return err
		}
		e.transform = t
		if e.state.LowerBound <= 0 {
			e.state.LowerBound = DefaultLogMinValue
			e.state.CurrentLowerBound = DefaultLogMinValue
		}
	}
	if !e.customFmt {
		e.formatter = defaultFormatter(e.state)
	}
	e.ticks.purge()
	return nil
}

// defaultFormatter labels time axes with clock times, log axes per
// decade and everything else as plain decimals.
func defaultFormatter(s State) Formatter {
	switch {
	case s.TimeAxis:
		return label.NewTime()
	case s.LogAxis:
		return label.NewLog()
	}
	return label.NewNumber()
}

// ----------------------------------------------------------------------------
// Configuration

// State returns a copy of the axis state.
func (e *Engine) State() State { return e.state }

// Options returns the options e was created with.
func (e *Engine) Options() Options { return e.opts }

// Transform returns the current transform.
func (e *Engine) Transform() Transform { return e.transform }

// Tracker returns the data range tracker of e.
func (e *Engine) Tracker() *RangeTracker { return e.tracker }

// SetLogger replaces the logger; nil restores slog.Default().
func (e *Engine) SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.Default()
	}
	e.logger = l
}

// SetMeasurer replaces the label measurement service.
func (e *Engine) SetMeasurer(m Measurer) {
	if m == nil {
		m = EstimateMeasurer{FontSize: e.opts.TickLabelFontSize}
	}
	e.measurer = m
}

// SetFormatter replaces the label formatter and drops cached tick marks.
// A nil formatter restores the default for the axis type.
func (e *Engine) SetFormatter(f Formatter) {
	e.customFmt = f != nil
	if f == nil {
		f = defaultFormatter(e.state)
	}
	e.formatter = f
	e.ticks.purge()
}

// SetTickUnitSupplier installs s after checking that it yields positive,
// nondecreasing units. A broken supplier is rejected here instead of at
// the next layout pass.
func (e *Engine) SetTickUnitSupplier(s TickUnitSupplier) error {
	if err := validateSupplier(s); err != nil {
		return err
	}
	e.units, e.custom = s, true
	return nil
}

// SetLogAxis switches between the linear and the logarithmic transform.
// Log-time axes get no minor ticks.
func (e *Engine) SetLogAxis(log bool) error {
	e.state.LogAxis = log
	if err := e.updateTransform(); err != nil {
		return err
	}
	e.resetMinorCount()
	return nil
}

// SetTimeAxis marks the axis values as seconds since an epoch. Unless a
// custom supplier was installed, tick units follow TimeTickUnits.
func (e *Engine) SetTimeAxis(time bool) error {
	e.state.TimeAxis = time
	if !e.custom {
		e.units = DefaultTickUnits
		if time {
			e.units = TimeTickUnits
		}
	}
	if err := e.updateTransform(); err != nil {
		return err
	}
	e.resetMinorCount()
	return nil
}

func (e *Engine) resetMinorCount() {
	if e.state.TimeAxis {
		e.state.MinorTickCount = 0
	} else {
		e.state.MinorTickCount = e.opts.MinorTickCount
	}
}

// SetLogBase sets the base of log transforms; base must exceed 1.
func (e *Engine) SetLogBase(base float64) error {
	if !(base > 1) || math.IsInf(base, 1) {
		return configError("logBase", base, ErrInvalidLogBase)
	}
	e.logBase = base
	return e.updateTransform()
}

// SetBounds fixes the manual range. On log axes both bounds must be
// positive, on log-time axes both must exceed -1.
func (e *Engine) SetBounds(lower, upper float64) error {
	if !finite(lower) || !finite(upper) {
		return configError("bounds", Interval{lower, upper}, ErrInvalidOption)
	}
	switch e.transform.Kind() {
	case Logarithmic:
		if lower <= 0 || upper <= 0 {
			return configError("bounds", Interval{lower, upper}, ErrNonPositiveLogBound)
		}
	case LogarithmicTime:
		if lower <= -1 || upper <= -1 {
			return configError("bounds", Interval{lower, upper}, ErrNonPositiveLogBound)
		}
	}
	e.state.LowerBound, e.state.UpperBound = lower, upper
	e.state.CurrentLowerBound = lower
	e.tracker.Fallback = Interval{lower, upper}
	return nil
}

// SetAutoRanging turns auto-ranging on or off.
func (e *Engine) SetAutoRanging(auto bool) { e.state.AutoRanging = auto }

// SetAutoRangeRounding turns snapping of auto-ranged bounds on or off.
func (e *Engine) SetAutoRangeRounding(round bool) { e.state.AutoRangeRounding = round }

// SetForceZeroInRange makes auto-ranging always include zero.
func (e *Engine) SetForceZeroInRange(force bool) { e.state.ForceZeroInRange = force }

// SetAutoRangePadding sets the padding fraction, which must be >= 0.
func (e *Engine) SetAutoRangePadding(p float64) error {
	if !(p >= 0) || math.IsInf(p, 1) {
		return configError("autoRangePadding", p, ErrInvalidOption)
	}
	e.state.AutoRangePadding = p
	return nil
}

// SetSide moves the axis; vertical and horizontal sides differ in scale
// sign.
func (e *Engine) SetSide(s Side) error {
	if s < Bottom || s > CenterVer {
		return configError("side", int(s), ErrInvalidOption)
	}
	e.state.Side = s
	return nil
}

// SetInverted reflects the axis display.
func (e *Engine) SetInverted(inverted bool) { e.state.Inverted = inverted }

// SetMinorTickCount sets the number of minor steps per major interval.
func (e *Engine) SetMinorTickCount(n int) error {
	if n < 0 {
		return configError("minorTickCount", n, ErrInvalidOption)
	}
	e.state.MinorTickCount = n
	return nil
}

// SetOverlapPolicy selects the label overlap policy.
func (e *Engine) SetOverlapPolicy(p OverlapPolicy) error {
	if p < 0 || p >= numOverlapPolicies {
		return configError("overlapPolicy", int(p), ErrInvalidOption)
	}
	e.state.OverlapPolicy = p
	return nil
}

// ----------------------------------------------------------------------------
// Data and ranges

// Add folds data values into the auto-range tracker.
func (e *Engine) Add(values ...float64) { e.tracker.Add(values...) }

// SetRange accepts r as the new range of the axis. Without an animation
// layer the displayed lower bound jumps to r.Lower at once.
func (e *Engine) SetRange(r Range) {
	e.state.LowerBound, e.state.UpperBound = r.Lower, r.Upper
	e.state.Scale = r.Scale
	e.state.CurrentLowerBound = r.Lower
	if isLog(e.transform) {
		return
	}
	e.state.TickUnit = r.TickUnit
}

// SetCurrentLowerBound moves the displayed lower bound, e.g. while an
// animation interpolates between two ranges. Call RefreshCache afterwards.
func (e *Engine) SetCurrentLowerBound(v float64) { e.state.CurrentLowerBound = v }

// LowerBounds returns the displayed and the target lower bound.
func (e *Engine) LowerBounds() (current, target float64) {
	return e.state.CurrentLowerBound, e.state.LowerBound
}

// MajorTicks returns the major tick values of r on this axis.
func (e *Engine) MajorTicks(r Range) []float64 { return MajorTicks(r, e.transform) }

// MinorTicks returns the minor tick values for the current state.
func (e *Engine) MinorTicks() []float64 {
	s := e.state
	return MinorTicks(s.LowerBound, s.UpperBound, s.TickUnit, s.MinorTickCount, e.transform)
}

// ----------------------------------------------------------------------------
// Coordinates

// RefreshCache derives a new coordinate snapshot. It must be called after
// bounds, scale or widget size changed.
func (e *Engine) RefreshCache(width, height float64) {
	e.cache = DeriveCache(e.state, e.transform, Geometry{Width: width, Height: height})
}

// Snapshot returns the current coordinate snapshot.
func (e *Engine) Snapshot() Snapshot { return e.cache }

// ToDisplay returns the pixel position of value.
func (e *Engine) ToDisplay(value float64) float64 { return e.cache.ToDisplay(value) }

// ToValue returns the value at pixel position px.
func (e *Engine) ToValue(px float64) float64 { return e.cache.ToValue(px) }

// ZeroPosition returns the display position of zero or NaN.
func (e *Engine) ZeroPosition() float64 { return e.cache.ZeroPosition() }

// IsValueOnAxis reports whether value is finite and within the bounds.
func (e *Engine) IsValueOnAxis(value float64) bool {
	return finite(value) && value >= e.state.LowerBound && value <= e.state.UpperBound
}

// ----------------------------------------------------------------------------
// Labels

// TickLabel formats value as a tick label.
func (e *Engine) TickLabel(value float64) string {
	return e.formatter.Format(value, e.opts.UnitScaling)
}

// labelSizeEstimate guesses the label size along the axis before any
// label is measured: roughly two lines of text.
func (e *Engine) labelSizeEstimate() float64 {
	return 2 * e.opts.TickLabelFontSize
}

// measureAlong returns the label extent of value along the axis.
func (e *Engine) measureAlong(value float64) float64 {
	w, h := e.measurer.Measure(e.TickLabel(value))
	if e.state.Side.IsVertical() {
		return h
	}
	return w
}
