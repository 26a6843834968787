package label

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
)

// DefaultFont is the typeface used to measure and draw tick labels.
var DefaultFont = font.Font{Typeface: "Liberation", Variant: "Sans"}

// TextMeasurer measures labels with real font metrics. One pixel is
// taken to be one point.
type TextMeasurer struct {
	Style text.Style
}

// NewTextMeasurer returns a measurer for DefaultFont at size points.
func NewTextMeasurer(size float64) TextMeasurer {
	return TextMeasurer{Style: text.Style{
		Font:    font.From(DefaultFont, vg.Length(size)),
		Handler: plot.DefaultTextHandler,
	}}
}

// Measure returns the width and height of text.
func (m TextMeasurer) Measure(txt string) (width, height float64) {
	if txt == "" {
		return 0, 0
	}
	return float64(m.Style.Width(txt)), float64(m.Style.Height(txt))
}
