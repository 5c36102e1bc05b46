package approx

import (
	"gonum.org/v1/gonum/stat"

	"circles/pkg/paint"
)

// Summary describes the per-pixel distance between a canvas and its target.
type Summary struct {
	Total  int     `json:"total"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"stddev"`
}

// Summarize measures canvas against target over the whole image using the
// same per-pixel distance the search optimizes.
func Summarize(target, canvas *paint.Grid) Summary {
	if target.Empty() || !target.SameSize(canvas) {
		return Summary{}
	}
	distances := make([]float64, len(canvas.Pix))
	var total int
	for i, p := range canvas.Pix {
		d := p.Distance(target.Pix[i])
		total += d
		distances[i] = float64(d)
	}
	mean, std := stat.MeanStdDev(distances, nil)
	if len(distances) < 2 {
		std = 0
	}
	return Summary{Total: total, Mean: mean, StdDev: std}
}
