package approx

import (
	"context"

	"github.com/charmbracelet/log"

	"circles/pkg/paint"
)

const DefaultIterations = 100

// Reporter receives the completion percentage. It is called only when the
// value grows, so the stream is monotonic and free of repeats.
type Reporter interface {
	Progress(percent int)
}

type ReporterFunc func(percent int)

func (f ReporterFunc) Progress(percent int) { f(percent) }

type Options struct {
	Iterations int
	Palette    paint.Palette
	Reporter   Reporter
	Logger     *log.Logger
}

type Stats struct {
	Kept       int `json:"kept"`
	Iterations int `json:"iterations"`
}

// Run hill-climbs a black canvas toward target: each iteration draws one
// random circle and keeps it only if it strictly lowers the error under it.
// The returned canvas has the same size as target; target is never written.
// If ctx is cancelled the run stops and only ctx's error is returned.
func Run(ctx context.Context, rng paint.Rand, target *paint.Grid, opts Options) (*paint.Grid, Stats, error) {
	canvas := paint.NewGrid(target.Width, target.Height)
	stats := Stats{Iterations: max(opts.Iterations, 0)}
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	var last int
	for i := range stats.Iterations {
		if err := ctx.Err(); err != nil {
			logger.Debug("Interrupted", "iteration", i, "kept", stats.Kept)
			return nil, stats, err
		}
		if !target.Empty() {
			candidate := paint.RandomCircle(rng, target.Width, target.Height, opts.Palette)
			if paint.Improves(target, canvas, candidate) {
				paint.Apply(canvas, candidate)
				stats.Kept++
				logger.Debug("Kept shape", "iteration", i, "shape", candidate)
			}
		}

		if percent := i*100/stats.Iterations + 1; percent > last {
			last = percent
			if opts.Reporter != nil {
				opts.Reporter.Progress(percent)
			}
		}
	}
	return canvas, stats, nil
}
