package palette

import (
	"cmp"
	"errors"
	"image"
	"math"
	"slices"

	"github.com/cenkalti/dominantcolor"
	"github.com/charmbracelet/log"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/clusters"
	"github.com/muesli/kmeans"

	"circles/pkg/paint"
)

// DefaultSize is the number of colors extracted when the palette is enabled.
const DefaultSize = 16

// maxSamples bounds the kmeans dataset on large images.
const maxSamples = 12000

var ErrNoColors = errors.New("no colors could be extracted")

// Extract builds a palette of up to k colors from img, ordered from the most
// to the least dominant. Dominant-color extraction ignores transparent pixels,
// so it is retried on an opaque copy before falling back to kmeans. Only the
// kmeans path draws from the unseeded global source.
func Extract(img image.Image, k int) (paint.Palette, error) {
	if k <= 0 || img.Bounds().Empty() {
		return paint.NoPalette, ErrNoColors
	}

	colors := dominant(img, k)
	if len(colors) == 0 {
		log.Debug("Retrying dominant colors without alpha")
		colors = dominant(paint.FromImage(img), k)
	}
	if len(colors) == 0 {
		log.Warn("Dominant color extraction returned nothing, falling back to kmeans")
		colors = clustered(img, k)
	}
	if len(colors) == 0 {
		return paint.NoPalette, ErrNoColors
	}
	return paint.NewPalette(unique(colors)...)
}

func dominant(img image.Image, k int) []paint.Color {
	found := dominantcolor.FindWeight(img, k)
	slices.SortStableFunc(found, func(a, b dominantcolor.Color) int {
		return cmp.Compare(b.Weight, a.Weight)
	})
	out := make([]paint.Color, 0, len(found))
	for _, c := range found {
		col, _ := colorful.MakeColor(c.RGBA)
		out = append(out, fromColorful(col))
	}
	return out
}

func clustered(img image.Image, k int) []paint.Color {
	b := img.Bounds()
	area := b.Dx() * b.Dy()
	step := 1
	if area > maxSamples {
		step = int(math.Sqrt(float64(area)/float64(maxSamples))) + 1
	}

	dataset := make(clusters.Observations, 0, min(area, maxSamples))
	for y := b.Min.Y; y < b.Max.Y; y += step {
		for x := b.Min.X; x < b.Max.X; x += step {
			c := paint.Model.Convert(img.At(x, y)).(paint.Color)
			dataset = append(dataset, clusters.Coordinates{
				float64(c.R) / 255,
				float64(c.G) / 255,
				float64(c.B) / 255,
			})
		}
	}

	k = min(k, len(dataset))
	km := kmeans.New()
	cc, err := km.Partition(dataset, k)
	if err != nil {
		log.Warn("Kmeans partition failed", "err", err)
		return nil
	}
	slices.SortStableFunc(cc, func(a, b clusters.Cluster) int {
		return cmp.Compare(len(b.Observations), len(a.Observations))
	})

	out := make([]paint.Color, 0, len(cc))
	for _, c := range cc {
		if len(c.Center) < 3 || len(c.Observations) == 0 {
			continue
		}
		out = append(out, fromColorful(colorful.Color{R: c.Center[0], G: c.Center[1], B: c.Center[2]}))
	}
	return out
}

func fromColorful(c colorful.Color) paint.Color {
	r, g, b := c.Clamped().RGB255()
	return paint.Color{R: r, G: g, B: b}
}

func unique(colors []paint.Color) []paint.Color {
	seen := make(map[paint.Color]struct{}, len(colors))
	out := colors[:0]
	for _, c := range colors {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}
