package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/vdobler/axis/render"
)

func newRenderCmd(s *settings) *cobra.Command {
	var (
		out           string
		title         string
		width, height float64
	)
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Draw an axis into a PNG file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := s.engine(cmd)
			if err != nil {
				return err
			}
			l, err := e.Layout(width, height)
			if err != nil {
				return err
			}

			img := vgimg.New(vg.Length(width), vg.Length(height))
			c := draw.New(img)
			sty := render.DefaultStyle(vg.Length(e.Options().TickLabelFontSize))
			render.Draw(c, l, sty)
			render.DrawTitle(c, l, title, sty)
			return savePNG(img, out)
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "axis.png", "Output PNG file")
	cmd.Flags().StringVar(&title, "title", "", "Axis title")
	cmd.Flags().Float64Var(&width, "width", 400, "Canvas width in points")
	cmd.Flags().Float64Var(&height, "height", 60, "Canvas height in points")
	return cmd
}

// savePNG writes img to the file out.
func savePNG(img *vgimg.Canvas, out string) error {
	f, err := os.Create(out)
	if err != nil {
		return err
	}
	if _, err := (vgimg.PngCanvas{Canvas: img}).WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", out, err)
	}
	return f.Close()
}
