// Package data contains data sets with error bars that report their range
// including the errors.
package data

import "math"

// XYErrorer wraps the Len, XY, XError and YError methods. Errors are
// asymmetric and given as non-negative distances below and above the
// value.
type XYErrorer interface {
	// Len returns the number of points.
	Len() int

	// XY returns the coordinates of point i.
	XY(int) (x, y float64)

	// XError returns the negative and positive x error of point i.
	XError(int) (neg, pos float64)

	// YError returns the negative and positive y error of point i.
	YError(int) (neg, pos float64)
}

// XYErrorRange returns the minimum and maximum x and y values with the
// error bars included. Non-finite values are skipped. An empty data set
// yields +Inf, -Inf.
func XYErrorRange(d XYErrorer) (xmin, xmax, ymin, ymax float64) {
	xmin, xmax = math.Inf(1), math.Inf(-1)
	ymin, ymax = math.Inf(1), math.Inf(-1)
	for i := 0; i < d.Len(); i++ {
		x, y := d.XY(i)
		xn, xp := d.XError(i)
		yn, yp := d.YError(i)
		xmin, xmax = update(xmin, xmax, x-math.Abs(xn), x+math.Abs(xp))
		ymin, ymax = update(ymin, ymax, y-math.Abs(yn), y+math.Abs(yp))
	}
	return xmin, xmax, ymin, ymax
}

func update(min, max, lo, hi float64) (float64, float64) {
	if !math.IsNaN(lo) && !math.IsInf(lo, 0) {
		min, max = math.Min(min, lo), math.Max(max, lo)
	}
	if !math.IsNaN(hi) && !math.IsInf(hi, 0) {
		min, max = math.Min(min, hi), math.Max(max, hi)
	}
	return min, max
}

// Point is a single measurement with error bars.
type Point struct {
	X, Y       float64
	XNeg, XPos float64
	YNeg, YPos float64
}

// Points implements XYErrorer as well as gonum's plotter.XYer,
// plotter.XErrorer, plotter.YErrorer and plot.DataRanger.
type Points []Point

func (d Points) Len() int                        { return len(d) }
func (d Points) XY(i int) (x, y float64)         { return d[i].X, d[i].Y }
func (d Points) XError(i int) (neg, pos float64) { return d[i].XNeg, d[i].XPos }
func (d Points) YError(i int) (neg, pos float64) { return d[i].YNeg, d[i].YPos }

// DataRange returns the range of d including the error bars.
func (d Points) DataRange() (xmin, xmax, ymin, ymax float64) { return XYErrorRange(d) }

// FromXY builds points with symmetric y errors. xs, ys and yerr must
// have the same length; a nil yerr means no errors.
func FromXY(xs, ys, yerr []float64) Points {
	d := make(Points, len(xs))
	for i := range d {
		d[i].X, d[i].Y = xs[i], ys[i]
		if yerr != nil {
			d[i].YNeg, d[i].YPos = yerr[i], yerr[i]
		}
	}
	return d
}
