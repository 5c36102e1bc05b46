package cli

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"

	"circles/pkg/approx"
)

// Progress rewrites a single percentage line in place. The percentage is
// padded to a fixed width so a carriage return is enough to overwrite it.
type Progress struct {
	out *termenv.Output
}

func NewProgress(w io.Writer, opts ...termenv.OutputOption) *Progress {
	return &Progress{out: termenv.NewOutput(w, opts...)}
}

func (p *Progress) Progress(percent int) {
	fmt.Fprintf(p.out, "\r%s", p.out.String(fmt.Sprintf("%3d%%", percent)).Bold())
}

// Done ends the progress line and prints the kept count.
func (p *Progress) Done(stats approx.Stats) {
	fmt.Fprintln(p.out)
	fmt.Fprintf(p.out, "kept %d of %d iterations\n", stats.Kept, stats.Iterations)
}
