package axis

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"gopkg.in/yaml.v3"
)

// ----------------------------------------------------------------------------
// Side

// Side is the placement of an axis relative to its plot area.
type Side int

const (
	Bottom Side = iota
	Left
	Top
	Right
	CenterHor
	CenterVer
)

var sideNames = []string{"bottom", "left", "top", "right", "center-hor", "center-ver"}

// String returns the name of s.
func (s Side) String() string {
	if s < 0 || int(s) >= len(sideNames) {
		return fmt.Sprintf("Side(%d)", int(s))
	}
	return sideNames[s]
}

// IsVertical reports whether s runs along the y direction.
func (s Side) IsVertical() bool {
	return s == Left || s == Right || s == CenterVer
}

// IsHorizontal reports whether s runs along the x direction.
func (s Side) IsHorizontal() bool { return !s.IsVertical() }

func (s Side) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s *Side) UnmarshalText(text []byte) error {
	name := strings.ToLower(strings.TrimSpace(string(text)))
	for i, n := range sideNames {
		if n == name {
			*s = Side(i)
			return nil
		}
	}
	return configError("side", string(text), ErrInvalidOption)
}

// ----------------------------------------------------------------------------
// Options

// Default configuration values.
const (
	DefaultAutoRangePadding  = 0.1
	DefaultMinorTickCount    = 10
	DefaultTickLabelGap      = 3.0
	DefaultTickLabelFontSize = 10.0
	DefaultTickCacheSize     = 256
)

// Options configures an Engine.
type Options struct {
	// Side determines orientation; vertical sides flip the pixel direction.
	Side Side `yaml:"side"`
	// Inverted reflects the display about the axis extent.
	Inverted bool `yaml:"inverted"`

	// LowerBound, UpperBound and TickUnit are the manual range. An axis
	// with LowerBound >= UpperBound (including 0/0) auto-ranges.
	LowerBound float64 `yaml:"lowerBound"`
	UpperBound float64 `yaml:"upperBound"`
	TickUnit   float64 `yaml:"tickUnit"`

	AutoRanging bool `yaml:"autoRanging"`
	// AutoRangePadding is the fraction of the data range added on each side.
	AutoRangePadding float64 `yaml:"autoRangePadding"`
	// AutoRangeRounding snaps auto-ranged bounds outwards to tick units
	// (or decades on log axes).
	AutoRangeRounding bool `yaml:"autoRangeRounding"`
	ForceZeroInRange  bool `yaml:"forceZeroInRange"`

	LogAxis  bool    `yaml:"logAxis"`
	LogBase  float64 `yaml:"logBase"`
	TimeAxis bool    `yaml:"timeAxis"`

	MinorTickCount int `yaml:"minorTickCount"`

	OverlapPolicy OverlapPolicy `yaml:"overlapPolicy"`
	// TickLabelGap is the minimum space in pixels between two labels.
	TickLabelGap float64 `yaml:"tickLabelGap"`
	// TickLabelFontSize estimates the label size before labels are measured.
	TickLabelFontSize float64 `yaml:"tickLabelFontSize"`
	TickLabelRotation float64 `yaml:"tickLabelRotation"`
	// UnitScaling divides values before they are formatted.
	UnitScaling float64 `yaml:"unitScaling"`

	// Strict enables the label-measuring tick unit refinement.
	Strict bool `yaml:"strict"`

	// TickCacheSize caps each of the two tick mark caches.
	TickCacheSize int `yaml:"tickCacheSize"`
}

// DefaultOptions returns an auto-ranging linear bottom axis.
func DefaultOptions() Options {
	return Options{
		Side:              Bottom,
		TickUnit:          5,
		AutoRanging:       true,
		AutoRangePadding:  DefaultAutoRangePadding,
		AutoRangeRounding: true,
		LogBase:           DefaultLogBase,
		MinorTickCount:    DefaultMinorTickCount,
		OverlapPolicy:     SkipAlt,
		TickLabelGap:      DefaultTickLabelGap,
		TickLabelFontSize: DefaultTickLabelFontSize,
		UnitScaling:       1,
		TickCacheSize:     DefaultTickCacheSize,
	}
}

// Validate reports the first invalid setting of o.
func (o Options) Validate() error {
	switch {
	case o.Side < Bottom || o.Side > CenterVer:
		return configError("side", int(o.Side), ErrInvalidOption)
	case o.OverlapPolicy < 0 || o.OverlapPolicy >= numOverlapPolicies:
		return configError("overlapPolicy", int(o.OverlapPolicy), ErrInvalidOption)
	case !(o.LogBase > 1) || math.IsInf(o.LogBase, 1):
		return configError("logBase", o.LogBase, ErrInvalidLogBase)
	case !(o.AutoRangePadding >= 0) || math.IsInf(o.AutoRangePadding, 1):
		return configError("autoRangePadding", o.AutoRangePadding, ErrInvalidOption)
	case o.MinorTickCount < 0:
		return configError("minorTickCount", o.MinorTickCount, ErrInvalidOption)
	case !(o.TickLabelGap >= 0):
		return configError("tickLabelGap", o.TickLabelGap, ErrInvalidOption)
	case !(o.TickLabelFontSize > 0):
		return configError("tickLabelFontSize", o.TickLabelFontSize, ErrInvalidOption)
	case !(o.UnitScaling != 0) || !finite(o.UnitScaling):
		return configError("unitScaling", o.UnitScaling, ErrInvalidOption)
	case o.TickCacheSize <= 0:
		return configError("tickCacheSize", o.TickCacheSize, ErrInvalidOption)
	case !finite(o.LowerBound) || !finite(o.UpperBound):
		return configError("bounds", Interval{o.LowerBound, o.UpperBound}, ErrInvalidOption)
	case o.LogAxis && !o.AutoRanging && o.LowerBound < o.UpperBound && o.LowerBound <= 0:
		return configError("lowerBound", o.LowerBound, ErrNonPositiveLogBound)
	}
	return nil
}

// LoadOptions reads YAML from r on top of DefaultOptions and validates
// the result. Unknown keys are rejected.
func LoadOptions(r io.Reader) (Options, error) {
	opts := DefaultOptions()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&opts); err != nil && !errors.Is(err, io.EOF) {
		return Options{}, fmt.Errorf("axis: decoding options: %w", err)
	}
	if err := opts.Validate(); err != nil {
		return Options{}, err
	}
	return opts, nil
}
