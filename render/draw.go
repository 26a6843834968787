package render

import (
	"math"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/vdobler/axis"
)

// geometry places one side of the axis on a canvas.
type geometry struct {
	c        draw.Canvas
	vertical bool
	base     vg.Length // x of a vertical, y of a horizontal axis line
	dir      vg.Length // +1 if ticks point towards growing x or y
}

func newGeometry(c draw.Canvas, side axis.Side) geometry {
	g := geometry{c: c, vertical: side.IsVertical(), dir: -1}
	switch side {
	case axis.Bottom:
		g.base = c.Max.Y
	case axis.Top:
		g.base, g.dir = c.Min.Y, 1
	case axis.Left:
		g.base = c.Max.X
	case axis.Right:
		g.base, g.dir = c.Min.X, 1
	case axis.CenterHor:
		g.base = (c.Min.Y + c.Max.Y) / 2
	case axis.CenterVer:
		g.base = (c.Min.X + c.Max.X) / 2
	}
	return g
}

// point returns the canvas point pos pixels along the axis and off points
// away from the axis line. Vertical positions count from the top.
func (g geometry) point(pos float64, off vg.Length) vg.Point {
	if g.vertical {
		return vg.Point{X: g.base + g.dir*off, Y: g.c.Max.Y - vg.Length(pos)}
	}
	return vg.Point{X: g.c.Min.X + vg.Length(pos), Y: g.base + g.dir*off}
}

// labelStyle aligns sty so that text grows away from the axis line.
func (g geometry) labelStyle(sty draw.TextStyle, rotation float64) draw.TextStyle {
	sty.Rotation = rotation * math.Pi / 180
	switch {
	case g.vertical && g.dir < 0:
		sty.XAlign, sty.YAlign = draw.XRight, draw.YCenter
	case g.vertical:
		sty.XAlign, sty.YAlign = draw.XLeft, draw.YCenter
	case g.dir < 0:
		sty.XAlign, sty.YAlign = draw.XCenter, draw.YTop
	default:
		sty.XAlign, sty.YAlign = draw.XCenter, draw.YBottom
	}
	return sty
}

// Draw draws the axis line, tick marks and visible labels of l onto c.
// The canvas size must match the size l was computed for.
func Draw(c draw.Canvas, l *axis.Layout, sty Style) {
	g := newGeometry(c, l.Side)

	if sty.Line.Width > 0 {
		c.StrokeLines(sty.Line, []vg.Point{g.point(0, 0), g.point(l.Snapshot.Extent(), 0)})
	}

	for _, t := range l.Minor {
		if !t.Visible || sty.MinorTick.Length == 0 {
			continue
		}
		c.StrokeLines(sty.MinorTick.LineStyle,
			[]vg.Point{g.point(t.Position, 0), g.point(t.Position, sty.MinorTick.Length)})
	}

	text := sty.Label
	if l.Resolution.Condensed {
		text = sty.Condensed
	}
	for _, t := range l.Major {
		if sty.MajorTick.Length > 0 {
			c.StrokeLines(sty.MajorTick.LineStyle,
				[]vg.Point{g.point(t.Position, 0), g.point(t.Position, sty.MajorTick.Length)})
		}
		if !t.Visible || t.Label == "" {
			continue
		}
		off := sty.MajorTick.Length + sty.LabelGap + vg.Length(t.Shift)
		c.FillText(g.labelStyle(text, t.Rotation), g.point(t.Position, off), t.Label)
	}
}

// DrawTitle centres title along the axis, beyond the labels of l.
func DrawTitle(c draw.Canvas, l *axis.Layout, title string, sty Style) {
	if title == "" {
		return
	}
	g := newGeometry(c, l.Side)
	thick := 0.0
	for _, t := range l.VisibleLabels() {
		w := t.Height + t.Shift
		if g.vertical {
			w = t.Width + t.Shift
		}
		thick = math.Max(thick, w)
	}
	off := sty.MajorTick.Length + sty.LabelGap + vg.Length(thick) + sty.TitleHeight/2
	ts := sty.Title
	ts.XAlign, ts.YAlign = draw.XCenter, draw.YCenter
	if g.vertical {
		ts.Rotation = math.Pi / 2
	}
	c.FillText(ts, g.point(l.Snapshot.Extent()/2, off), title)
}

// DrawGrid draws grid lines across plot, a canvas that shares the axis
// extent of l, at every major and minor tick.
func DrawGrid(plot draw.Canvas, l *axis.Layout, sty Style) {
	line := func(ls draw.LineStyle, pos float64) {
		if ls.Width == 0 || ls.Color == nil {
			return
		}
		if l.Side.IsVertical() {
			y := plot.Max.Y - vg.Length(pos)
			plot.StrokeLine2(ls, plot.Min.X, y, plot.Max.X, y)
			return
		}
		x := plot.Min.X + vg.Length(pos)
		plot.StrokeLine2(ls, x, plot.Min.Y, x, plot.Max.Y)
	}
	for _, t := range l.Minor {
		line(sty.Grid.Minor, t.Position)
	}
	for _, t := range l.Major {
		line(sty.Grid.Major, t.Position)
	}
}
