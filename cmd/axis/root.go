package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/vdobler/axis"
	"github.com/vdobler/axis/label"
)

// settings are the flags shared by all subcommands.
type settings struct {
	config    string
	data      []float64
	side      string
	policy    string
	log       bool
	time      bool
	strict    bool
	fontSize  float64
	rotation  float64
	metrics   bool
	verbose   bool
	lower     float64
	upper     float64
	minorTick int
}

func newRootCmd() *cobra.Command {
	s := &settings{}
	root := &cobra.Command{
		Use:          "axis",
		Short:        "Compute chart axis ranges, ticks and label layouts",
		SilenceUsage: true,
	}
	pf := root.PersistentFlags()
	pf.StringVar(&s.config, "config", "", "YAML file with axis options")
	pf.Float64SliceVar(&s.data, "data", nil, "Data values to auto-range over")
	pf.StringVar(&s.side, "side", "", "Axis side: bottom, left, top, right, center-hor, center-ver")
	pf.StringVar(&s.policy, "policy", "", "Overlap policy: skip-alt, do-nothing, shift-alt, forced-shift-alt, narrow-font")
	pf.BoolVar(&s.log, "log", false, "Logarithmic axis")
	pf.BoolVar(&s.time, "time", false, "Values are seconds since the Unix epoch")
	pf.BoolVar(&s.strict, "strict", false, "Refine the tick unit by measuring labels")
	pf.Float64Var(&s.fontSize, "font-size", 0, "Tick label font size in points")
	pf.Float64Var(&s.rotation, "rotation", 0, "Tick label rotation in degrees")
	pf.BoolVar(&s.metrics, "font-metrics", true, "Measure labels with real font metrics")
	pf.BoolVar(&s.verbose, "verbose", false, "Log range and layout decisions to stderr")
	pf.Float64Var(&s.lower, "lower", 0, "Manual lower bound (with --upper)")
	pf.Float64Var(&s.upper, "upper", 0, "Manual upper bound (with --lower)")
	pf.IntVar(&s.minorTick, "minor", -1, "Minor ticks per major interval")

	root.AddCommand(newTicksCmd(s), newRenderCmd(s), newPlotCmd(s))
	return root
}

// options merges the config file and the flags on top of the defaults.
func (s *settings) options(cmd *cobra.Command) (axis.Options, error) {
	opts := axis.DefaultOptions()
	if s.config != "" {
		f, err := os.Open(s.config)
		if err != nil {
			return opts, err
		}
		defer f.Close()
		if opts, err = axis.LoadOptions(f); err != nil {
			return opts, fmt.Errorf("%s: %w", s.config, err)
		}
	}

	flags := cmd.Flags()
	if flags.Changed("side") {
		if err := opts.Side.UnmarshalText([]byte(s.side)); err != nil {
			return opts, err
		}
	}
	if flags.Changed("policy") {
		if err := opts.OverlapPolicy.UnmarshalText([]byte(s.policy)); err != nil {
			return opts, err
		}
	}
	if flags.Changed("log") {
		opts.LogAxis = s.log
	}
	if flags.Changed("time") {
		opts.TimeAxis = s.time
	}
	if flags.Changed("strict") {
		opts.Strict = s.strict
	}
	if flags.Changed("font-size") {
		opts.TickLabelFontSize = s.fontSize
	}
	if flags.Changed("rotation") {
		opts.TickLabelRotation = s.rotation
	}
	if flags.Changed("minor") {
		opts.MinorTickCount = s.minorTick
	}
	if flags.Changed("lower") || flags.Changed("upper") {
		opts.LowerBound, opts.UpperBound = s.lower, s.upper
		opts.AutoRanging = false
	}
	return opts, opts.Validate()
}

// engine builds an engine for the settings and feeds it the data values.
func (s *settings) engine(cmd *cobra.Command) (*axis.Engine, error) {
	opts, err := s.options(cmd)
	if err != nil {
		return nil, err
	}
	e, err := axis.NewEngine(opts)
	if err != nil {
		return nil, err
	}
	e.SetLogger(s.logger(cmd.ErrOrStderr()))
	if s.metrics {
		e.SetMeasurer(label.NewTextMeasurer(opts.TickLabelFontSize))
	}
	e.Add(s.data...)
	return e, nil
}

func (s *settings) logger(w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if s.verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
