package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/vdobler/axis"
	"github.com/vdobler/axis/data"
	"github.com/vdobler/axis/render"
)

// Room for the x and y axis of a natively drawn plot.
const (
	xAxisHeight = 40
	yAxisWidth  = 60
)

func newPlotCmd(s *settings) *cobra.Command {
	var (
		xs, ys, yerr  []float64
		out           string
		width, height float64
		native        bool
	)
	cmd := &cobra.Command{
		Use:   "plot",
		Short: "Draw a scatter plot with error bars whose y axis is computed by axis",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(xs) != len(ys) || (yerr != nil && len(yerr) != len(ys)) {
				return fmt.Errorf("--x, --y and --yerr need the same number of values")
			}
			points := data.FromXY(xs, ys, yerr)

			e, err := s.engine(cmd)
			if err != nil {
				return err
			}
			if err := e.SetSide(axis.Left); err != nil {
				return err
			}
			e.Tracker().Learn(true, points)
			if native {
				return drawNative(s, cmd, e, points, width, height, out)
			}
			l, err := e.Layout(width, height)
			if err != nil {
				return err
			}

			p := plot.New()
			scatter, err := plotter.NewScatter(points)
			if err != nil {
				return err
			}
			bars, err := plotter.NewYErrorBars(points)
			if err != nil {
				return err
			}
			p.Add(scatter, bars, plotter.NewGrid())

			p.Y.Min, p.Y.Max = l.Range.Lower, l.Range.Upper
			p.Y.Tick.Marker = axis.Ticker{Engine: e, Length: height}
			p.Y.Scale = axis.Normalizer{Transform: e.Transform()}
			return p.Save(vg.Length(width), vg.Length(height), out)
		},
	}
	f := cmd.Flags()
	f.Float64SliceVar(&xs, "x", nil, "X values")
	f.Float64SliceVar(&ys, "y", nil, "Y values")
	f.Float64SliceVar(&yerr, "yerr", nil, "Symmetric y errors")
	f.StringVarP(&out, "out", "o", "plot.png", "Output file; the extension selects the format")
	f.Float64Var(&width, "width", 400, "Plot width in points")
	f.Float64Var(&height, "height", 300, "Plot height in points")
	f.BoolVar(&native, "native", false, "Draw both axes and the points with the render package instead of gonum's plot (PNG only)")
	return cmd
}

// drawNative lays out both axes with axis engines and draws them next to
// a panel holding the points.
func drawNative(s *settings, cmd *cobra.Command, ye *axis.Engine, points data.Points, width, height float64, out string) error {
	pw, ph := width-yAxisWidth, height-xAxisHeight
	if pw <= 0 || ph <= 0 {
		return fmt.Errorf("canvas %gx%g too small", width, height)
	}

	xopts := axis.DefaultOptions()
	xopts.TickLabelFontSize = ye.Options().TickLabelFontSize
	xe, err := axis.NewEngine(xopts)
	if err != nil {
		return err
	}
	xe.SetLogger(s.logger(cmd.ErrOrStderr()))
	xe.Tracker().Learn(false, points)

	xl, err := xe.Layout(pw, xAxisHeight)
	if err != nil {
		return err
	}
	yl, err := ye.Layout(yAxisWidth, ph)
	if err != nil {
		return err
	}

	img := vgimg.New(vg.Length(width), vg.Length(height))
	c := draw.New(img)
	xc := draw.Crop(c, yAxisWidth, 0, 0, -vg.Length(ph))
	yc := draw.Crop(c, 0, -vg.Length(pw), xAxisHeight, 0)
	pc := draw.Crop(c, yAxisWidth, 0, xAxisHeight, 0)

	sty := render.DefaultStyle(vg.Length(xopts.TickLabelFontSize))
	render.DrawGrid(pc, xl, sty)
	render.DrawGrid(pc, yl, sty)
	render.Draw(xc, xl, sty)
	render.Draw(yc, yl, sty)
	panel := &render.Panel{Canvas: pc, X: xl, Y: yl}
	render.NewErrorBars(points, 0).Draw(panel)
	return savePNG(img, out)
}
