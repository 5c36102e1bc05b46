package utils

import (
	"os"
	"path/filepath"
	"testing"
)

func TestIsImage(t *testing.T) {
	for _, path := range []string{"a.png", "b.JPG", "c.jpeg", "d.gif", "e.webp", "f.bmp", "g.tif", "h.TIFF"} {
		if !IsImage(path) {
			t.Errorf("IsImage(%q) = false", path)
		}
	}
	for _, path := range []string{"a.txt", "b", "c.png.bak", ".env"} {
		if !NotImage(path) {
			t.Errorf("NotImage(%q) = false", path)
		}
	}
}

func TestSwapRoot(t *testing.T) {
	got, err := SwapRoot(filepath.Join("in", "a", "b.png"), "in", "out")
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join("out", "a", "b.png"); got != want {
		t.Fatalf("SwapRoot = %q, want %q", got, want)
	}
}

type report struct {
	Kept  int    `json:"kept"`
	Input string `json:"input"`
}

func TestWriteFile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "stats.json")
	want := report{Kept: 3, Input: "in.png"}
	if err := WriteFile(name, want); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(name)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	got, err := Decode[report](f)
	if err != nil {
		t.Fatal(err)
	}
	if got != want {
		t.Fatalf("Decode = %+v, want %+v", got, want)
	}
}
