package axis

import (
	"math"
)

// Layout is the result of one layout pass: the range in effect and the
// tick marks ready for drawing.
type Layout struct {
	Range      Range
	Side       Side
	Major      []*TickMark
	Minor      []*TickMark
	Resolution Resolution
	Snapshot   Snapshot
}

// VisibleLabels returns the major tick marks whose label is shown.
func (l *Layout) VisibleLabels() []*TickMark {
	var vis []*TickMark
	for _, t := range l.Major {
		if t.Visible {
			vis = append(vis, t)
		}
	}
	return vis
}

// Layout runs a full layout pass for an axis widget of the given size:
// it computes the range (from the tracked data when auto-ranging), accepts
// it, refreshes the coordinate snapshot and builds tick marks with the
// overlap policy applied.
func (e *Engine) Layout(width, height float64) (*Layout, error) {
	vertical := e.state.Side.IsVertical()
	length := width
	if vertical {
		length = height
	}

	var (
		r   Range
		err error
	)
	if e.state.AutoRanging {
		r, err = e.ComputeRange(e.tracker.Min(), e.tracker.Max(), length, e.labelSizeEstimate())
	} else {
		r, err = e.ManualRange(length, e.labelSizeEstimate())
	}
	if err != nil {
		return nil, err
	}
	e.SetRange(r)
	e.RefreshCache(width, height)

	values := e.MajorTicks(r)
	if a, ok := e.formatter.(TickAdapter); ok {
		a.AdaptTicks(values, e.opts.UnitScaling)
	}

	f := e.ticks.frame()
	rot := e.opts.TickLabelRotation
	major := make([]*TickMark, 0, len(values))
	boxes := make([]LabelBox, 0, len(values))
	for _, v := range values {
		text := e.TickLabel(v)
		t := f.tickMark(v, e.ToDisplay(v), text)
		t.Rotation = rot
		t.Width, t.Height = rotatedExtent(e.measurer, text, rot)
		t.Visible = text != "" && e.IsValueOnAxis(v)
		major = append(major, t)

		along, across := t.Width, t.Height
		if vertical {
			along, across = t.Height, t.Width
		}
		boxes = append(boxes, LabelBox{Position: t.Position, Size: along, Thickness: across, Visible: t.Visible})
	}

	res := ResolveOverlap(boxes, OverlapConfig{
		Policy:   e.state.OverlapPolicy,
		Length:   length,
		Gap:      e.state.TickLabelGap,
		Vertical: vertical,
	})
	for i, t := range major {
		t.Visible = res.Visible(i)
		t.Shift = res.Shift(i)
	}

	var minor []*TickMark
	for _, v := range e.MinorTicks() {
		t := f.tickMark(v, e.ToDisplay(v), "")
		t.Visible = true
		minor = append(minor, t)
	}

	e.logger.Debug("axis: layout",
		"range", r.String(),
		"majors", len(major),
		"minors", len(minor),
		"visible", res.VisibleCount(),
		"overlap", res.Overlap,
		"policy", e.state.OverlapPolicy.String())

	return &Layout{
		Range:      r,
		Side:       e.state.Side,
		Major:      major,
		Minor:      minor,
		Resolution: res,
		Snapshot:   e.cache,
	}, nil
}

// rotatedExtent measures text and returns the bounding box of the label
// rotated by deg degrees.
func rotatedExtent(m Measurer, text string, deg float64) (width, height float64) {
	w, h := m.Measure(text)
	if deg == 0 {
		return w, h
	}
	sin, cos := math.Sincos(deg * math.Pi / 180)
	sin, cos = math.Abs(sin), math.Abs(cos)
	return w*cos + h*sin, w*sin + h*cos
}
