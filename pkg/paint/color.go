package paint

import (
	"errors"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Rand is the random source threaded through every sampling call.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
}

// Color is an opaque 8-bit RGB triple.
type Color struct {
	R, G, B uint8
}

func Black() Color { return Color{} }

// RGBA implements color.Color. Colors are always fully opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}.RGBA()
}

func (c Color) String() string {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.Hex()
}

// Distance returns the Euclidean RGB distance to other, truncated to an integer.
// Scores sum these per-pixel values, they never sum squares.
func (c Color) Distance(other Color) int {
	dr := absDiff(c.R, other.R)
	dg := absDiff(c.G, other.G)
	db := absDiff(c.B, other.B)
	return int(math.Sqrt(float64(dr*dr + dg*dg + db*db)))
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}

// Model converts any color to Color, discarding alpha without premultiplying.
var Model = color.ModelFunc(convert)

func convert(c color.Color) color.Color {
	if c, ok := c.(Color); ok {
		return c
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: n.R, G: n.G, B: n.B}
}

var ErrEmptyPalette = errors.New("palette must contain at least one color")

// Palette is either no palette (the zero value) or a non-empty list of colors.
type Palette struct {
	colors []Color
}

// NoPalette draws colors uniformly over the whole RGB cube.
var NoPalette = Palette{}

func NewPalette(colors ...Color) (Palette, error) {
	if len(colors) == 0 {
		return NoPalette, ErrEmptyPalette
	}
	return Palette{colors: append([]Color(nil), colors...)}, nil
}

func (p Palette) Enabled() bool { return len(p.colors) > 0 }

func (p Palette) Len() int { return len(p.colors) }

// Colors returns a copy of the palette entries.
func (p Palette) Colors() []Color { return append([]Color(nil), p.colors...) }

// RandomColor picks a uniformly random palette entry, or when the palette is
// disabled draws each channel independently from [0,255].
func RandomColor(rng Rand, palette Palette) Color {
	if palette.Enabled() {
		return palette.colors[rng.IntN(len(palette.colors))]
	}
	return Color{
		R: uint8(rng.IntN(256)),
		G: uint8(rng.IntN(256)),
		B: uint8(rng.IntN(256)),
	}
}
