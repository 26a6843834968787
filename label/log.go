package label

import (
	"math"

	"github.com/dustin/go-humanize"
)

// SmallLogRange is the largest span in decades that Log labels as plain
// decimals; wider ranges get exponential labels.
const SmallLogRange = 4

// Log formats ticks of logarithmic axes.
type Log struct {
	span float64
}

// NewLog returns a Log formatter that labels plain decimals until
// AdaptTicks sees a wide range.
func NewLog() *Log { return &Log{} }

// AdaptTicks measures the span of the ticks as |log10 min| + |log10 max|.
func (l *Log) AdaptTicks(ticks []float64, unitScale float64) {
	l.span = 0
	if len(ticks) == 0 {
		return
	}
	lo, hi := scaled(ticks[0], unitScale), scaled(ticks[len(ticks)-1], unitScale)
	if lo > 0 && hi > 0 {
		l.span = math.Abs(math.Log10(lo)) + math.Abs(math.Log10(hi))
	}
}

// Format returns value/unitScale as 0.###### up to SmallLogRange
// decades and as 1.0E3 beyond.
func (l *Log) Format(value, unitScale float64) string {
	v := scaled(value, unitScale)
	if l.span > SmallLogRange {
		return Exponential(v, 1)
	}
	return humanize.FtoaWithDigits(v, 6)
}
