package writer

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/frascr/frascr"
	"github.com/frascr/frascr/algorithm"
	"github.com/frascr/frascr/field"
)

// Stdout is the output name that writes to standard output.
const Stdout = "-"

// Job is one render: compute a field and write it to every output.
type Job struct {
	Algorithm algorithm.Algorithm
	Canvas    field.Canvas
	Vis       Visualization
	Writer    Writer
	Outputs   []string

	// Workers bounds the goroutines used for sampling and colouring.
	Workers int
}

type supersampler interface {
	Supersampled() bool
}

// Render executes the job. Image writers with Vis.Supersample > 1 sample
// the canvas at that multiple of its pixel size and scale back down.
func Render(ctx context.Context, job Job) error {
	if job.Writer == nil {
		return fmt.Errorf("%w: nil writer", ErrUnknownWriter)
	}
	if len(job.Outputs) == 0 {
		return ErrNoOutputs
	}

	vis := job.Vis
	vis.Canvas = job.Canvas
	if vis.Workers <= 0 {
		vis.Workers = job.Workers
	}
	if vis.Algorithm == "" && job.Algorithm != nil {
		vis.Algorithm = job.Algorithm.Name()
	}

	canvas := job.Canvas
	if s, ok := job.Writer.(supersampler); ok && s.Supersampled() && vis.Supersample > 1 {
		canvas.PixelWidth *= vis.Supersample
		canvas.PixelHeight *= vis.Supersample
	} else {
		vis.Supersample = 1
	}

	log := frascr.Logger()
	start := time.Now()
	f, err := algorithm.Execute(ctx, job.Algorithm, canvas, job.Workers)
	if err != nil {
		return err
	}
	log.Debug("field computed", "width", f.Width, "height", f.Height, "elapsed", time.Since(start))

	for _, out := range job.Outputs {
		if err := writeOutput(ctx, job.Writer, f, vis, out); err != nil {
			return fmt.Errorf("writer: %s: %w", out, err)
		}
		log.Info("output written", "writer", job.Writer.Name(), "path", out)
	}
	log.Info("render complete", "outputs", len(job.Outputs), "elapsed", time.Since(start))
	return nil
}

func writeOutput(ctx context.Context, wr Writer, f *field.Field, vis Visualization, path string) error {
	if path == Stdout {
		return wr.Write(ctx, f, vis, os.Stdout)
	}
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := wr.Write(ctx, f, vis, file); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}

// WriteTo is a convenience for writing a single field to w with the
// named writer.
func WriteTo(ctx context.Context, name string, f *field.Field, vis Visualization, w io.Writer) error {
	wr, err := Lookup(name)
	if err != nil {
		return err
	}
	return wr.Write(ctx, f, vis, w)
}
