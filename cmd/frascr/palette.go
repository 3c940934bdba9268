package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/frascr/frascr"
	"github.com/frascr/frascr/config"
)

type paletteFlags struct {
	files     []string
	space     string
	mode      string
	reference string
	swatches  []string
	steps     int
}

func newPaletteCmd() *cobra.Command {
	f := &paletteFlags{}
	cmd := &cobra.Command{
		Use:   "palette",
		Short: "Preview a palette in the terminal",
		Long: `palette samples the palette at evenly spaced intensities, converts each
sample to sRGB and prints it as a coloured block, followed by the hex
values of both ends.

The palette comes from the colorization section of -f files, or from
--space, --mode and repeated --swatch a,b,c flags.`,
		Example: `  frascr palette -f run.toml
  frascr palette --space lch --mode linear --swatch 20,60,270 --swatch 90,30,80`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := f.colorization()
			if err != nil {
				return err
			}
			return preview(cmd.OutOrStdout(), c, f.steps)
		},
	}
	fl := cmd.Flags()
	fl.StringArrayVarP(&f.files, "file", "f", nil, "configuration file; repeat to layer")
	fl.StringVar(&f.space, "space", "lch", "colour space of the swatches")
	fl.StringVar(&f.mode, "mode", "linear", "sample or linear")
	fl.StringVar(&f.reference, "reference", config.DefaultReference, "reference illuminant")
	fl.StringArrayVar(&f.swatches, "swatch", nil, "swatch axes as a,b,c; repeat for each swatch")
	fl.IntVar(&f.steps, "steps", 48, "number of samples to show")
	return cmd
}

func (f *paletteFlags) colorization() (*config.Colorization, error) {
	if len(f.files) > 0 {
		o, err := config.Layer(f.files...)
		if err != nil {
			return nil, err
		}
		if o.Monochrome() {
			return nil, fmt.Errorf("%w: no colorization section", config.ErrColorSpace)
		}
		return o.Visualization.Colorization, nil
	}

	c := &config.Colorization{
		Space:     f.space,
		Reference: f.reference,
		Algorithm: config.Generation{Type: f.mode, N: len(f.swatches)},
	}
	for _, s := range f.swatches {
		sw, err := parseAxes(s)
		if err != nil {
			return nil, err
		}
		c.Swatches = append(c.Swatches, sw)
	}
	return c, nil
}

func parseAxes(s string) (config.Swatch, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return config.Swatch{}, fmt.Errorf("%w: swatch %q needs three comma-separated values", config.ErrConfig, s)
	}
	var v [3]float64
	for i, p := range parts {
		x, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return config.Swatch{}, fmt.Errorf("%w: swatch %q: %w", config.ErrConfig, s, err)
		}
		v[i] = x
	}
	return config.Swatch{A: v[0], B: v[1], C: v[2]}, nil
}

// hexColors samples the palette at steps evenly spaced intensities.
func hexColors(c *config.Colorization, steps int) ([]string, error) {
	if steps < 2 {
		steps = 2
	}
	ref, err := c.ReferenceValues()
	if err != nil {
		return nil, err
	}
	w, err := c.Wheel()
	if err != nil {
		return nil, err
	}
	defer w.Destroy()

	out := make([]string, steps)
	for k := range out {
		q, err := w.At(float64(k) / float64(steps-1))
		if err != nil {
			return nil, err
		}
		rgb, err := frascr.ToRGBA8(q, 0xffff, ref)
		if err != nil {
			return nil, err
		}
		out[k] = colorful.Color{
			R: float64(rgb.R) / 255,
			G: float64(rgb.G) / 255,
			B: float64(rgb.B) / 255,
		}.Hex()
	}
	return out, nil
}

func preview(w io.Writer, c *config.Colorization, steps int) error {
	hex, err := hexColors(c, steps)
	if err != nil {
		return err
	}
	out := termenv.NewOutput(w)
	var b strings.Builder
	for _, h := range hex {
		b.WriteString(out.String(" ").Background(out.Color(h)).String())
	}
	fmt.Fprintln(w, b.String())
	fmt.Fprintf(w, "%s … %s  (%d samples, %s)\n", hex[0], hex[len(hex)-1], len(hex), c.Space)
	return nil
}
