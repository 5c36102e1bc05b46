package cli

import (
	"cmp"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/charmbracelet/log"

	"circles/pkg/approx"
	"circles/pkg/imageio"
	"circles/pkg/paint"
	"circles/pkg/palette"
	"circles/pkg/utils"
	"circles/pkg/walker"
)

// Report is the record written to STATS_FILE for each approximated image.
type Report struct {
	Input   string `json:"input"`
	Output  string `json:"output"`
	Seed    uint64 `json:"seed"`
	Palette int    `json:"palette,omitempty"`
	approx.Stats
	Initial approx.Summary `json:"initial"`
	Final   approx.Summary `json:"final"`
}

// Run approximates config.Input into config.Output. A directory input is
// processed file by file into the output directory. Every returned error is
// an *Error; no output is left behind unless every image completed, and
// cancelling ctx stops the search with an error.
func Run(ctx context.Context, config Config, stdout io.Writer) error {
	info, err := os.Stat(config.Input)
	if err != nil {
		return IOError(fmt.Errorf("error reading input: %w", err))
	}
	if info.IsDir() {
		return runBatch(ctx, config, stdout)
	}

	if _, err := imageio.FormatOf(config.Output); err != nil {
		return IOError(err)
	}
	target, err := imageio.Load(config.Input)
	if err != nil {
		return IOError(err)
	}

	progress := NewProgress(stdout)
	canvas, report, err := approximate(ctx, target, config, progress)
	if err != nil {
		fmt.Fprintln(stdout)
		return IOError(err)
	}
	progress.Done(report.Stats)
	report.Input, report.Output = config.Input, config.Output

	if err := imageio.Save(config.Output, canvas); err != nil {
		return IOError(err)
	}
	if config.StatsFile != "" {
		if err := utils.WriteFile(config.StatsFile, report); err != nil {
			return IOError(err)
		}
	}
	return nil
}

func approximate(ctx context.Context, target *paint.Grid, config Config, reporter approx.Reporter) (*paint.Grid, Report, error) {
	report := Report{Seed: config.Seed}
	options := approx.Options{
		Iterations: config.Iterations,
		Reporter:   reporter,
	}
	if config.Palette {
		p, err := palette.Extract(target, palette.DefaultSize)
		if err != nil {
			return nil, report, fmt.Errorf("error extracting palette: %w", err)
		}
		log.Debug("Extracted palette", "colors", p.Colors())
		options.Palette = p
		report.Palette = p.Len()
	}

	log.Debug("Starting", "width", target.Width, "height", target.Height, "iterations", config.Iterations, "seed", config.Seed)
	report.Initial = approx.Summarize(target, paint.NewGrid(target.Width, target.Height))
	canvas, stats, err := approx.Run(ctx, config.Rand(), target, options)
	report.Stats = stats
	if err != nil {
		return nil, report, fmt.Errorf("interrupted after %d of %d iterations: %w", stats.Kept, stats.Iterations, err)
	}
	report.Final = approx.Summarize(target, canvas)
	log.Info("Finished",
		"kept", stats.Kept,
		"iterations", stats.Iterations,
		"mean", fmt.Sprintf("%.2f -> %.2f", report.Initial.Mean, report.Final.Mean),
	)
	return canvas, report, nil
}

// batch is the per-file argument of a directory run. Output paths are
// claimed before writing so two inputs never share one output.
type batch struct {
	Config
	claimed *sync.Map
}

func runBatch(ctx context.Context, config Config, stdout io.Writer) error {
	output := filepath.Clean(config.Output)
	insideOutput := func(path string) bool {
		return strings.HasPrefix(path, output+string(filepath.Separator))
	}

	results := make(chan Report)
	done := make(chan error, 1)
	go func() {
		done <- walker.WalkDir(ctx, config.Input, results, walker.Config[Report, batch]{
			Max:       config.MaxFiles,
			Semaphore: make(chan struct{}, max(config.Workers, 1)),
			Skipper:   walker.Skippers(utils.NotImage, insideOutput),
			Do:        approximateFile,
			Args:      batch{Config: config, claimed: new(sync.Map)},
		})
	}()

	var reports []Report
	for report := range results {
		reports = append(reports, report)
	}
	if err := <-done; err != nil {
		for _, r := range reports {
			if err := os.Remove(r.Output); err != nil {
				log.Warn("Error removing output", "path", r.Output, "err", err)
			}
		}
		return IOError(err)
	}

	slices.SortFunc(reports, func(a, b Report) int { return cmp.Compare(a.Input, b.Input) })
	if config.StatsFile != "" {
		if err := utils.WriteFile(config.StatsFile, reports); err != nil {
			return IOError(err)
		}
	}
	var kept, iterations int
	for _, r := range reports {
		kept += r.Kept
		iterations += r.Iterations
	}
	fmt.Fprintf(stdout, "approximated %d images, kept %d of %d iterations\n", len(reports), kept, iterations)
	return nil
}

// outputFor maps an input under root to its output under dest. Inputs that
// cannot be re-encoded in their own format keep their name and gain ".png".
func outputFor(path, root, dest string) (string, error) {
	output, err := utils.SwapRoot(path, root, dest)
	if err != nil {
		return "", err
	}
	if _, err := imageio.FormatOf(output); err != nil {
		output += ".png"
	}
	return output, nil
}

func approximateFile(args walker.Args[batch]) (Report, error) {
	output, err := outputFor(args.Path, args.Root, args.Args.Output)
	if err != nil {
		return Report{}, err
	}
	if owner, taken := args.Args.claimed.LoadOrStore(output, args.Path); taken {
		return Report{}, fmt.Errorf("output %s is already written for %s", output, owner)
	}

	target, err := imageio.Load(args.Path)
	if err != nil {
		return Report{}, err
	}
	canvas, report, err := approximate(args.Context, target, args.Args.Config, nil)
	if err != nil {
		return report, err
	}
	report.Input, report.Output = args.Path, output
	if err := imageio.Save(output, canvas); err != nil {
		os.Remove(output)
		return report, err
	}
	return report, nil
}
