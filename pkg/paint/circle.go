package paint

import (
	"fmt"
	"image"
)

// Circle is a filled disc of a single color. The center may lie off the canvas.
type Circle struct {
	X, Y   int
	Radius int
	Color  Color
}

// RandomCircle places a circle with its center inside width x height and a
// radius in [0, width/4).
func RandomCircle(rng Rand, width, height int, palette Palette) Circle {
	c := RandomColor(rng, palette)
	circle := Circle{
		X:     rng.IntN(width),
		Y:     rng.IntN(height),
		Color: c,
	}
	if limit := width / 4; limit > 0 {
		circle.Radius = rng.IntN(limit)
	}
	return circle
}

// Contains reports whether (x, y) lies within the circle, boundary included.
func (c Circle) Contains(x, y int) bool {
	dx := c.X - x
	dy := c.Y - y
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// Bounds is the unclamped box [X-R, X+R) x [Y-R, Y+R).
func (c Circle) Bounds() image.Rectangle {
	return image.Rect(c.X-c.Radius, c.Y-c.Radius, c.X+c.Radius, c.Y+c.Radius)
}

func (c Circle) String() string {
	return fmt.Sprintf("circle(%d,%d r=%d %s)", c.X, c.Y, c.Radius, c.Color)
}
