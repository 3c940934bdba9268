package writer

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/frascr/frascr/field"
)

// textWriter dumps every sample as "re im n", one per line, column by
// column. It ignores the visualization.
type textWriter struct{}

func (textWriter) Name() string { return "minimalout" }

func (textWriter) Write(ctx context.Context, f *field.Field, _ Visualization, w io.Writer) error {
	bw := bufio.NewWriter(w)
	for i := 0; i < f.Width; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		for _, d := range f.Column(i) {
			if _, err := fmt.Fprintf(bw, "%f %f %d\n", d.Re, d.Im, d.N); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}
