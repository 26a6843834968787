package axis

import (
	"unicode/utf8"
)

// A Measurer reports the pixel extent of a rendered label.
type Measurer interface {
	Measure(text string) (width, height float64)
}

// A Formatter renders a tick value as label text. Values are divided by
// unitScale before formatting.
type Formatter interface {
	Format(value, unitScale float64) string
}

// A TickAdapter is a Formatter that adapts its precision to the full set
// of major tick values before the labels of a layout pass are formatted.
type TickAdapter interface {
	AdaptTicks(ticks []float64, unitScale float64)
}

// EstimateMeasurer approximates label extents from the font size
// without font metrics: every rune is 0.6 em wide, a line is 1 em high.
type EstimateMeasurer struct {
	FontSize float64
}

func (m EstimateMeasurer) Measure(text string) (width, height float64) {
	if text == "" {
		return 0, 0
	}
	return 0.6 * m.FontSize * float64(utf8.RuneCountInString(text)), m.FontSize
}
