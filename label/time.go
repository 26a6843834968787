package label

import (
	"math"
	"time"
)

// Time formats axis values as seconds since Epoch.
type Time struct {
	Epoch    time.Time
	Location *time.Location

	layout string
}

// NewTime returns a Time formatter for seconds since the Unix epoch in
// UTC.
func NewTime() *Time {
	return &Time{Epoch: time.Unix(0, 0), Location: time.UTC}
}

// AdaptTicks chooses the layout from the tick spacing.
func (t *Time) AdaptTicks(ticks []float64, unitScale float64) {
	t.layout = TimeLayout(minSpacing(ticks) / math.Abs(unitScale))
}

// Format returns the point in time value/unitScale seconds after Epoch.
func (t *Time) Format(value, unitScale float64) string {
	v := scaled(value, unitScale)
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ""
	}
	ts := t.Epoch.Add(time.Duration(math.Round(v * float64(time.Second))))
	if t.Location != nil {
		ts = ts.In(t.Location)
	}
	layout := t.layout
	if layout == "" {
		layout = time.DateTime
	}
	return ts.Format(layout)
}

// TimeLayout returns a layout that resolves ticks spacing seconds apart.
func TimeLayout(spacing float64) string {
	switch {
	case !(spacing > 0) || math.IsInf(spacing, 0):
		return time.DateTime
	case spacing < 1:
		return "15:04:05.000"
	case spacing < 60:
		return time.TimeOnly
	case spacing < 24*3600:
		return "15:04"
	case spacing < 30*24*3600:
		return "Jan 02"
	}
	return "2006-01"
}
