package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/recorder"

	"github.com/vdobler/axis"
)

func layout(t *testing.T, side axis.Side, policy axis.OverlapPolicy, w, h float64, data ...float64) *axis.Layout {
	t.Helper()
	opts := axis.DefaultOptions()
	opts.Side = side
	opts.OverlapPolicy = policy
	e, err := axis.NewEngine(opts)
	require.NoError(t, err)
	e.Add(data...)
	l, err := e.Layout(w, h)
	require.NoError(t, err)
	return l
}

// labels returns the strings filled onto rec in drawing order.
func labels(rec *recorder.Canvas) []string {
	var s []string
	for _, a := range rec.Actions {
		if fs, ok := a.(*recorder.FillString); ok {
			s = append(s, fs.String)
		}
	}
	return s
}

func TestDrawVisibleLabels(t *testing.T) {
	for _, side := range []axis.Side{axis.Bottom, axis.Top, axis.Left, axis.Right, axis.CenterHor, axis.CenterVer} {
		t.Run(side.String(), func(t *testing.T) {
			w, h := 400.0, 40.0
			if side.IsVertical() {
				w, h = h, w
			}
			l := layout(t, side, axis.SkipAlt, w, h, 0, 100)

			rec := &recorder.Canvas{}
			Draw(draw.NewCanvas(rec, vg.Length(w), vg.Length(h)), l, DefaultStyle(10))

			var want []string
			for _, m := range l.VisibleLabels() {
				want = append(want, m.Label)
			}
			assert.Equal(t, want, labels(rec))
		})
	}
}

func TestDrawSkipsHiddenLabels(t *testing.T) {
	l := layout(t, axis.Bottom, axis.SkipAlt, 60, 40, 0, 1e6)
	require.True(t, l.Resolution.Overlap)

	rec := &recorder.Canvas{}
	Draw(draw.NewCanvas(rec, 60, 40), l, DefaultStyle(10))
	assert.Len(t, labels(rec), len(l.VisibleLabels()))
	assert.Less(t, len(labels(rec)), len(l.Major))
}

func TestDrawTitleAndGrid(t *testing.T) {
	l := layout(t, axis.Left, axis.SkipAlt, 40, 300, 0, 100)
	sty := DefaultStyle(10)

	rec := &recorder.Canvas{}
	c := draw.NewCanvas(rec, 40, 300)
	DrawTitle(c, l, "Voltage", sty)
	assert.Equal(t, []string{"Voltage"}, labels(rec))

	rec = &recorder.Canvas{}
	DrawGrid(draw.NewCanvas(rec, 300, 300), l, sty)
	strokes := 0
	for _, a := range rec.Actions {
		if _, ok := a.(*recorder.Stroke); ok {
			strokes++
		}
	}
	assert.Equal(t, len(l.Major)+len(l.Minor), strokes)
}

func TestGeometry(t *testing.T) {
	c := draw.NewCanvas(&recorder.Canvas{}, 100, 50)

	g := newGeometry(c, axis.Bottom)
	assert.Equal(t, vg.Point{X: 25, Y: 45}, g.point(25, 5))

	g = newGeometry(c, axis.Left)
	assert.Equal(t, vg.Point{X: 95, Y: 40}, g.point(10, 5))

	g = newGeometry(c, axis.Right)
	assert.Equal(t, vg.Point{X: 5, Y: 40}, g.point(10, 5))
}
