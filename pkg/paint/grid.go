package paint

import (
	"image"
	"image/color"
	"iter"
)

// Grid is a width x height raster of Colors addressed by (x, y).
// It implements image.Image so it can be handed to any encoder.
type Grid struct {
	Width, Height int
	Pix           []Color
}

// NewGrid returns an all-black grid.
func NewGrid(width, height int) *Grid {
	return &Grid{
		Width:  width,
		Height: height,
		Pix:    make([]Color, width*height),
	}
}

// FromImage copies m into a new grid anchored at (0, 0).
func FromImage(m image.Image) *Grid {
	b := m.Bounds()
	g := NewGrid(b.Dx(), b.Dy())
	for y := range g.Height {
		for x := range g.Width {
			g.Pix[g.offset(x, y)] = Model.Convert(m.At(b.Min.X+x, b.Min.Y+y)).(Color)
		}
	}
	return g
}

func (g *Grid) offset(x, y int) int { return y*g.Width + x }

func (g *Grid) Pixel(x, y int) Color { return g.Pix[g.offset(x, y)] }

func (g *Grid) SetPixel(x, y int, c Color) { g.Pix[g.offset(x, y)] = c }

func (g *Grid) Empty() bool { return g.Width <= 0 || g.Height <= 0 }

// SameSize reports whether g and other have identical dimensions.
func (g *Grid) SameSize(other *Grid) bool {
	return g.Width == other.Width && g.Height == other.Height
}

func (g *Grid) Clone() *Grid {
	return &Grid{Width: g.Width, Height: g.Height, Pix: append([]Color(nil), g.Pix...)}
}

func (g *Grid) ColorModel() color.Model { return Model }

func (g *Grid) Bounds() image.Rectangle { return image.Rect(0, 0, g.Width, g.Height) }

func (g *Grid) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}.In(g.Bounds())) {
		return Black()
	}
	return g.Pixel(x, y)
}

// Points iterates over every (x, y) of r clipped to the grid.
func (g *Grid) Points(r image.Rectangle) iter.Seq2[int, int] {
	r = r.Intersect(g.Bounds())
	return func(yield func(int, int) bool) {
		for y := r.Min.Y; y < r.Max.Y; y++ {
			for x := r.Min.X; x < r.Max.X; x++ {
				if !yield(x, y) {
					return
				}
			}
		}
	}
}
