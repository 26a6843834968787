package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newTicksCmd(s *settings) *cobra.Command {
	var length float64
	cmd := &cobra.Command{
		Use:   "ticks",
		Short: "Print the range and tick marks of an axis",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := s.engine(cmd)
			if err != nil {
				return err
			}
			w, h := length, 2*e.Options().TickLabelFontSize
			if e.State().Side.IsVertical() {
				w, h = h, length
			}
			l, err := e.Layout(w, h)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, l.Range)
			if l.Resolution.Overlap {
				fmt.Fprintf(out, "overlap: policy=%s stride=%d condensed=%t\n",
					e.State().OverlapPolicy, l.Resolution.Stride, l.Resolution.Condensed)
			}
			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "value\tposition\tlabel\tvisible\tshift")
			for _, t := range l.Major {
				fmt.Fprintf(tw, "%g\t%.1f\t%s\t%t\t%.1f\n", t.Value, t.Position, t.Label, t.Visible, t.Shift)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().Float64Var(&length, "length", 400, "Axis length in pixels")
	return cmd
}
