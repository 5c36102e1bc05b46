package paint

// Score sums, over the circle's bounding box clipped to the canvas, each
// canvas pixel's distance to the target (original) and the distance the pixel
// would have with the circle painted (modified). It only reads its inputs.
func Score(target, canvas *Grid, c Circle) (original, modified int) {
	for x, y := range canvas.Points(c.Bounds()) {
		want := target.Pixel(x, y)
		current := canvas.Pixel(x, y)
		updated := current
		if c.Contains(x, y) {
			updated = c.Color
		}
		original += current.Distance(want)
		modified += updated.Distance(want)
	}
	return original, modified
}

// Improves reports whether painting c would strictly lower the canvas error
// over the circle's bounding box. Ties and off-canvas circles are rejected.
func Improves(target, canvas *Grid, c Circle) bool {
	original, modified := Score(target, canvas, c)
	return modified < original
}

// Apply paints c onto canvas in place. Callers accept c with Improves first.
func Apply(canvas *Grid, c Circle) {
	for x, y := range canvas.Points(c.Bounds()) {
		if c.Contains(x, y) {
			canvas.SetPixel(x, y, c.Color)
		}
	}
}
