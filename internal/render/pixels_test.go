package render

import (
	"image/color"
	"slices"
	"testing"
)

func TestCoveragePixels(t *testing.T) {
	tint := color.RGBA{R: 255, G: 128, B: 0, A: 255}
	got := CoveragePixels(nil, []float32{0, 1, 2, -1}, tint)
	want := []byte{
		0, 0, 0, 0,
		255, 128, 0, 255,
		255, 128, 0, 255,
		0, 0, 0, 0,
	}
	if !slices.Equal(got, want) {
		t.Fatalf("pixels = %v, want %v", got, want)
	}
}

func TestCoveragePixelsPremultiplied(t *testing.T) {
	tint := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	got := CoveragePixels(nil, []float32{0.5}, tint)
	a := got[3]
	if got[0] > a || got[1] > a || got[2] > a {
		t.Fatalf("channel above alpha: %v", got)
	}
}

func TestCoveragePixelsReusesBuffer(t *testing.T) {
	buf := make([]byte, 0, 64)
	got := CoveragePixels(buf, []float32{1, 1}, color.White)
	if len(got) != 8 || &got[0] != &buf[:1][0] {
		t.Fatal("buffer not reused")
	}
}
