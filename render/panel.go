package render

import (
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/vdobler/axis"
	"github.com/vdobler/axis/data"
)

// ----------------------------------------------------------------------------
// Panel

// A Panel is the plot area spanned by a horizontal and a vertical axis.
// The canvas must have the size the two layouts were computed for.
type Panel struct {
	Canvas draw.Canvas
	X, Y   *axis.Layout
}

// MapXY maps the data coordinate (x,y) to a canvas point. ok is false if
// the point lies outside the range of either axis.
func (p *Panel) MapXY(x, y float64) (pt vg.Point, ok bool) {
	px := p.X.Snapshot.ToDisplay(x)
	py := p.Y.Snapshot.ToDisplay(y)
	pt = vg.Point{
		X: p.Canvas.Min.X + vg.Length(px),
		Y: p.Canvas.Max.Y - vg.Length(py),
	}
	return pt, p.X.Range.Interval().Contains(x) && p.Y.Range.Interval().Contains(y)
}

// ----------------------------------------------------------------------------
// ErrorBars

// ErrorBars draws data points with their x and y error bars.
type ErrorBars struct {
	Data data.XYErrorer

	Glyph draw.GlyphStyle
	Line  draw.LineStyle
	// Cap is the width of the bar ends; 0 draws none.
	Cap vg.Length
}

// NewErrorBars returns error bars styled for the i-th data series.
func NewErrorBars(d data.XYErrorer, i int) ErrorBars {
	col := plotutil.Color(i)
	return ErrorBars{
		Data:  d,
		Glyph: draw.GlyphStyle{Color: col, Radius: vg.Length(2.5), Shape: plotutil.Shape(i)},
		Line:  draw.LineStyle{Color: col, Width: vg.Length(1)},
		Cap:   vg.Length(5),
	}
}

// Draw draws all points of e.Data inside the panel. Bars are clipped to
// the canvas.
func (e ErrorBars) Draw(p *Panel) {
	c := p.Canvas
	for i := 0; i < e.Data.Len(); i++ {
		x, y := e.Data.XY(i)
		center, ok := p.MapXY(x, y)
		if !ok {
			continue
		}

		if neg, pos := e.Data.YError(i); neg != 0 || pos != 0 {
			lo, _ := p.MapXY(x, y-neg) // Clipping done below.
			hi, _ := p.MapXY(x, y+pos)
			c.StrokeLines(e.Line, c.ClipLinesXY([]vg.Point{lo, hi})...)
			e.caps(c, lo, hi, false)
		}
		if neg, pos := e.Data.XError(i); neg != 0 || pos != 0 {
			lo, _ := p.MapXY(x-neg, y)
			hi, _ := p.MapXY(x+pos, y)
			c.StrokeLines(e.Line, c.ClipLinesXY([]vg.Point{lo, hi})...)
			e.caps(c, lo, hi, true)
		}
		c.DrawGlyph(e.Glyph, center)
	}
}

func (e ErrorBars) caps(c draw.Canvas, lo, hi vg.Point, horizontal bool) {
	if e.Cap == 0 {
		return
	}
	h := e.Cap / 2
	for _, pt := range []vg.Point{lo, hi} {
		if !c.Contains(pt) {
			continue
		}
		if horizontal {
			c.StrokeLine2(e.Line, pt.X, pt.Y-h, pt.X, pt.Y+h)
		} else {
			c.StrokeLine2(e.Line, pt.X-h, pt.Y, pt.X+h, pt.Y)
		}
	}
}
