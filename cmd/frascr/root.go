package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/frascr/frascr"
	"github.com/frascr/frascr/config"
	"github.com/frascr/frascr/writer"
)

// renderFlags mirrors the command-line switches of a render. Only flags
// the user set are applied over the configuration files.
type renderFlags struct {
	files   []string
	verbose int
	logFile string
	workers int
	watch   bool

	algorithm, output       string
	bottom, left            float64
	realHeight, realWidth   float64
	pixelHeight, pixelWidth int
	offsetRe, offsetIm      float64
	escape                  uint32
	depth, compression      int
	supersample             int
	legend                  bool
}

func newRootCmd() *cobra.Command {
	f := &renderFlags{}
	cmd := &cobra.Command{
		Use:   "frascr [flags] output...",
		Short: "Render escape-time fractals through a colorimetric palette",
		Long: `frascr samples a rectangle of the complex plane with an escape-time
algorithm and writes the iteration counts through an output writer.

Settings come from configuration files (-f, JSON, TOML or YAML; later
files override earlier ones) and from flags, which override files.
Positional arguments name the output files ("-" for standard output).`,
		Version:       frascr.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			if f.watch {
				return watch(ctx, cmd, f, args)
			}
			return renderOnce(ctx, cmd, f, args)
		},
	}
	cmd.SetContext(context.Background())

	fl := cmd.Flags()
	fl.StringArrayVarP(&f.files, "file", "f", nil, "configuration file; repeat to layer")
	fl.CountVarP(&f.verbose, "verbose", "v", "increase logging (repeat for more)")
	fl.StringVar(&f.logFile, "log-file", "", "write logs to this file instead of stderr")
	fl.IntVar(&f.workers, "workers", 0, "goroutines for sampling and colouring (0: all CPUs)")
	fl.BoolVar(&f.watch, "watch", false, "re-render whenever a configuration file changes")

	fl.StringVarP(&f.algorithm, "algorithm", "a", "", "escape-time algorithm")
	fl.StringVarP(&f.output, "output", "o", "", "output writer")
	fl.Float64VarP(&f.bottom, "bottom", "b", 0, "imaginary part of the lower-left corner")
	fl.Float64VarP(&f.left, "left", "l", 0, "real part of the lower-left corner")
	fl.Float64VarP(&f.realHeight, "realheight", "I", 0, "height of the region")
	fl.Float64VarP(&f.realWidth, "realwidth", "J", 0, "width of the region")
	fl.IntVarP(&f.pixelHeight, "pixelheight", "i", 0, "image height in pixels")
	fl.IntVarP(&f.pixelWidth, "pixelwidth", "j", 0, "image width in pixels")
	fl.Float64VarP(&f.offsetRe, "offsetre", "x", 0, "real part of the Julia offset")
	fl.Float64VarP(&f.offsetIm, "offsetim", "y", 0, "imaginary part of the Julia offset")
	fl.Uint32VarP(&f.escape, "escape", "e", 0, "iteration limit")
	fl.IntVar(&f.depth, "depth", 0, "channel depth, 8 or 16")
	fl.IntVar(&f.compression, "compression", 0, "0 for none, anything else for best")
	fl.IntVar(&f.supersample, "supersample", 0, "sample at this multiple of the image size")
	fl.BoolVar(&f.legend, "legend", false, "draw a palette legend on colour output")

	cmd.AddCommand(
		newPaletteCmd(),
		newIlluminantsCmd(),
		newAlgorithmsCmd(),
		newWritersCmd(),
	)
	return cmd
}

// options layers the configuration files, then the flags the user set,
// then the positional output files.
func (f *renderFlags) options(cmd *cobra.Command, args []string) (*config.Options, error) {
	o, err := config.Layer(f.files...)
	if err != nil {
		return nil, err
	}
	changed := cmd.Flags().Changed
	for _, s := range []struct {
		name  string
		apply func()
	}{
		{"verbose", func() { o.Debug.Verbose = f.verbose }},
		{"log-file", func() { o.Debug.Output = f.logFile }},
		{"algorithm", func() { o.Core.Algorithm = f.algorithm }},
		{"output", func() { o.Core.Output = f.output }},
		{"bottom", func() { o.Canvas.Bottom = f.bottom }},
		{"left", func() { o.Canvas.Left = f.left }},
		{"realheight", func() { o.Canvas.RealHeight = f.realHeight }},
		{"realwidth", func() { o.Canvas.RealWidth = f.realWidth }},
		{"pixelheight", func() { o.Canvas.PixelHeight = f.pixelHeight }},
		{"pixelwidth", func() { o.Canvas.PixelWidth = f.pixelWidth }},
		{"offsetre", func() { o.Canvas.OffsetRe = f.offsetRe }},
		{"offsetim", func() { o.Canvas.OffsetIm = f.offsetIm }},
		{"escape", func() { o.Canvas.Escape = f.escape }},
		{"depth", func() { o.Visualization.ChannelDepth = f.depth }},
		{"compression", func() { o.Visualization.Compression = f.compression }},
		{"supersample", func() { o.Visualization.Supersample = f.supersample }},
		{"legend", func() { o.Visualization.Legend = f.legend }},
	} {
		if changed(s.name) {
			s.apply()
		}
	}
	if len(args) > 0 {
		o.Core.File = args
	}
	if len(o.Core.File) == 0 {
		return nil, errTooFew
	}
	return o, nil
}

func renderOnce(ctx context.Context, cmd *cobra.Command, f *renderFlags, args []string) error {
	o, err := f.options(cmd, args)
	if err != nil {
		return err
	}
	closeLog, err := setupLogging(o.Debug.Verbose, o.Debug.Output, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer func() {
		_ = closeLog()
	}()
	return render(ctx, o, f.workers)
}

func render(ctx context.Context, o *config.Options, workers int) error {
	job, err := o.Job(workers)
	if err != nil {
		return err
	}
	defer job.Vis.Wheel.Destroy()
	return writer.Render(ctx, job)
}
