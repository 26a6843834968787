// Package render draws axis layouts onto gonum/plot canvases.
package render

import (
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/vdobler/axis/label"
)

// A Style controls how an axis is drawn.
type Style struct {
	Line draw.LineStyle

	MajorTick struct {
		draw.LineStyle
		Length vg.Length
	}
	MinorTick struct {
		draw.LineStyle
		Length vg.Length
	}

	// Label is used for tick labels, Condensed replaces it when the
	// layout asks for a narrower font.
	Label     draw.TextStyle
	Condensed draw.TextStyle
	// LabelGap separates the tick end from its label.
	LabelGap vg.Length

	Title       draw.TextStyle
	TitleHeight vg.Length

	Grid struct {
		Major draw.LineStyle
		Minor draw.LineStyle
	}
}

// DefaultStyle returns a Style for tick labels of fontSize. Titles are a
// bit bigger.
func DefaultStyle(fontSize vg.Length) Style {
	scale := func(x vg.Length, f float64) vg.Length {
		return vg.Length(math.Round(f * float64(x)))
	}
	handler := plot.DefaultTextHandler

	var s Style
	s.Line = draw.LineStyle{Color: color.Black, Width: vg.Length(1)}

	s.MajorTick.Color = color.Gray16{0x1111}
	s.MajorTick.Width = vg.Length(1)
	s.MajorTick.Length = vg.Length(5)

	s.MinorTick.Color = color.Gray16{0x1111}
	s.MinorTick.Width = vg.Length(0.5)
	s.MinorTick.Length = vg.Length(2.5)

	s.Label = draw.TextStyle{
		Color:   color.Black,
		Font:    font.From(label.DefaultFont, fontSize),
		Handler: handler,
	}
	s.Condensed = s.Label
	s.Condensed.Font = font.From(label.DefaultFont, scale(fontSize, 0.8))
	s.LabelGap = scale(fontSize, 0.3)

	s.Title = draw.TextStyle{
		Color:   color.Black,
		Font:    font.From(label.DefaultFont, scale(fontSize, 1.2)),
		Handler: handler,
		XAlign:  draw.XCenter,
	}
	s.TitleHeight = scale(fontSize, 2)

	s.Grid.Major = draw.LineStyle{Color: color.Gray16{0xdddd}, Width: vg.Length(1)}
	s.Grid.Minor = draw.LineStyle{Color: color.Gray16{0xeeee}, Width: vg.Length(0.5)}
	return s
}
