package axis

import (
	"math"
)

// Geometry is the pixel size of the axis widget.
type Geometry struct {
	Width, Height float64
}

// Snapshot holds the quantities derived from the axis state and geometry
// that make ToDisplay and ToValue O(1). A Snapshot is never updated; a
// change of bounds, scale or size derives a new one.
type Snapshot struct {
	kind      TransformKind
	transform Transform

	vertical bool
	inverted bool
	width    float64
	height   float64
	extent   float64 // height on vertical axes, width otherwise

	// linear
	scale        float64
	currentLower float64
	currentUpper float64
	offset       float64 // display position of currentLower

	// logarithmic
	lowerLog    float64
	upperLog    float64
	logLength   float64
	logPixelPer float64
}

// DeriveCache computes the snapshot for state st drawn with transform t
// into geometry g.
func DeriveCache(st State, t Transform, g Geometry) Snapshot {
	s := Snapshot{
		kind:         t.Kind(),
		transform:    t,
		vertical:     st.Side.IsVertical(),
		inverted:     st.Inverted,
		width:        g.Width,
		height:       g.Height,
		scale:        st.Scale,
		currentLower: st.CurrentLowerBound,
		currentUpper: st.UpperBound,
	}
	if s.vertical {
		s.extent = g.Height
		s.offset = g.Height
	} else {
		s.extent = g.Width
	}
	if s.scale == 0 || math.IsNaN(s.scale) {
		s.scale = -1
	}

	if s.kind != Linear {
		s.lowerLog = t.Forward(st.LowerBound)
		s.upperLog = t.Forward(st.UpperBound)
		s.logLength = s.upperLog - s.lowerLog
		if s.logLength == 0 || !finite(s.logLength) {
			s.logLength = 1
		}
		s.logPixelPer = s.extent / s.logLength
		if s.logPixelPer == 0 {
			s.logPixelPer = 1
		}
	}
	return s
}

// ToDisplay returns the pixel position of value along the axis. Values
// outside the range are extrapolated.
func (s *Snapshot) ToDisplay(value float64) float64 {
	if s.inverted {
		return s.extent - s.toDisplay(value)
	}
	return s.toDisplay(value)
}

func (s *Snapshot) toDisplay(value float64) float64 {
	if s.kind != Linear {
		d := (s.transform.Forward(value) - s.lowerLog) * s.logPixelPer
		if s.vertical {
			return s.height - d
		}
		return d
	}
	return s.offset + (value-s.currentLower)*s.scale
}

// ToValue returns the data value at pixel position px. It inverts
// ToDisplay up to floating point rounding.
func (s *Snapshot) ToValue(px float64) float64 {
	if s.inverted {
		return s.toValue(s.extent - px)
	}
	return s.toValue(px)
}

func (s *Snapshot) toValue(px float64) float64 {
	if s.kind != Linear {
		d := px
		if s.vertical {
			d = s.height - px
		}
		return s.transform.Backward(s.lowerLog + d/s.logPixelPer)
	}
	return s.currentLower + (px-s.offset)/s.scale
}

// ZeroPosition returns the display position of 0, or NaN if zero lies
// outside the linear range. Log axes return the position of the lower
// bound.
func (s *Snapshot) ZeroPosition() float64 {
	if s.kind != Linear {
		return s.ToDisplay(s.currentLower)
	}
	if 0 < s.currentLower || 0 > s.currentUpper {
		return math.NaN()
	}
	return s.ToDisplay(0)
}

// Extent returns the axis length in pixels the snapshot was derived for.
func (s *Snapshot) Extent() float64 { return s.extent }
