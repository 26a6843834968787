package data

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
)

var (
	_ plotter.XYer     = Points{}
	_ plotter.XErrorer = Points{}
	_ plotter.YErrorer = Points{}
	_ plot.DataRanger  = Points{}
)

func TestXYErrorRange(t *testing.T) {
	d := Points{
		{X: 1, Y: 5, YNeg: 1, YPos: 2},
		{X: 2, Y: -1, XNeg: 0.5, YNeg: 3},
		{X: 4, Y: 2, XPos: 1},
		{X: math.NaN(), Y: math.Inf(1)},
	}
	xmin, xmax, ymin, ymax := d.DataRange()
	assert.Equal(t, 1.0, xmin)
	assert.Equal(t, 5.0, xmax)
	assert.Equal(t, -4.0, ymin)
	assert.Equal(t, 7.0, ymax)
}

func TestXYErrorRangeEmpty(t *testing.T) {
	xmin, xmax, _, _ := XYErrorRange(Points{})
	assert.True(t, math.IsInf(xmin, 1))
	assert.True(t, math.IsInf(xmax, -1))
}

func TestFromXY(t *testing.T) {
	d := FromXY([]float64{1, 2}, []float64{3, 4}, []float64{0.5, 1})
	require.Len(t, d, 2)
	neg, pos := d.YError(1)
	assert.Equal(t, 1.0, neg)
	assert.Equal(t, 1.0, pos)

	d = FromXY([]float64{1}, []float64{3}, nil)
	neg, pos = d.YError(0)
	assert.Zero(t, neg)
	assert.Zero(t, pos)
}
