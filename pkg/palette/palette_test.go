package palette

import (
	"errors"
	"image"
	"slices"
	"testing"

	"github.com/lucasb-eyer/go-colorful"

	"circles/pkg/paint"
)

func halves() *paint.Grid {
	g := paint.NewGrid(20, 20)
	for y := range 20 {
		for x := range 20 {
			c := paint.Color{R: 250, G: 10, B: 10}
			if x >= 10 {
				c = paint.Color{R: 10, G: 10, B: 250}
			}
			g.SetPixel(x, y, c)
		}
	}
	return g
}

func TestExtract(t *testing.T) {
	p, err := Extract(halves(), DefaultSize)
	if err != nil {
		t.Fatal(err)
	}
	if !p.Enabled() || p.Len() > DefaultSize {
		t.Fatalf("palette has %d colors", p.Len())
	}
}

func TestExtract_Deterministic(t *testing.T) {
	a, err := Extract(halves(), DefaultSize)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Extract(halves(), DefaultSize)
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(a.Colors(), b.Colors()) {
		t.Fatalf("palettes differ: %v vs %v", a.Colors(), b.Colors())
	}
}

func TestExtract_Transparent(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2] = 40, 180, 60
	}
	if found := dominant(img, DefaultSize); len(found) != 0 {
		t.Fatalf("transparent pixels should be ignored, got %v", found)
	}

	var runs [2][]paint.Color
	for i := range runs {
		p, err := Extract(img, DefaultSize)
		if err != nil {
			t.Fatal(err)
		}
		runs[i] = p.Colors()
	}
	if !slices.Equal(runs[0], runs[1]) || len(runs[0]) == 0 {
		t.Fatalf("palettes = %v and %v", runs[0], runs[1])
	}
	if c := runs[0][0]; c.Distance(paint.Color{R: 40, G: 180, B: 60}) > 2 {
		t.Fatalf("dominant color = %v", c)
	}
}

func TestExtract_NoColors(t *testing.T) {
	if _, err := Extract(paint.NewGrid(0, 0), DefaultSize); !errors.Is(err, ErrNoColors) {
		t.Fatalf("empty image err = %v", err)
	}
	if _, err := Extract(halves(), 0); !errors.Is(err, ErrNoColors) {
		t.Fatalf("k=0 err = %v", err)
	}
}

func TestClustered(t *testing.T) {
	colors := clustered(halves(), 2)
	if len(colors) == 0 || len(colors) > 2 {
		t.Fatalf("clustered = %v", colors)
	}
	for _, c := range colors {
		if c.G > 20 {
			t.Fatalf("cluster center %v is far from both input colors", c)
		}
	}
}

func TestClustered_Subsamples(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 200, 100))
	if colors := clustered(img, 3); len(colors) == 0 {
		t.Fatal("expected at least one cluster for a black image")
	}
}

func TestFromColorful_Clamps(t *testing.T) {
	got := fromColorful(colorful.Color{R: 1.4, G: -0.2, B: 0.5})
	if got.R != 255 || got.G != 0 || got.B != 128 {
		t.Fatalf("fromColorful = %+v", got)
	}
}

func TestUnique(t *testing.T) {
	a, b := paint.Color{R: 1}, paint.Color{G: 1}
	got := unique([]paint.Color{a, b, a, a, b})
	if !slices.Equal(got, []paint.Color{a, b}) {
		t.Fatalf("unique = %v", got)
	}
}
