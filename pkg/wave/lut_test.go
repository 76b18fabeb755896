package wave

import (
	"math"
	"testing"
)

func TestFastSinMatchesTableResolution(t *testing.T) {
	const tol = 2 * 2 * math.Pi / sinSize
	for i := 0; i < 1000; i++ {
		x := float32(i) * 0.0123
		got := float64(FastSin(x))
		want := math.Sin(float64(x))
		if math.Abs(got-want) > tol {
			t.Fatalf("FastSin(%v)=%v, want %v within %v", x, got, want, tol)
		}
	}
}

func TestFastCosQuarterShift(t *testing.T) {
	const tol = 2 * 2 * math.Pi / sinSize
	for _, x := range []float32{0, 0.5, 1, math.Pi, 4, 10} {
		got := float64(FastCos(x))
		want := math.Cos(float64(x))
		if math.Abs(got-want) > tol {
			t.Fatalf("FastCos(%v)=%v, want %v", x, got, want)
		}
	}
}

func TestFastSinNegativePhaseWraps(t *testing.T) {
	const tol = 2 * 2 * math.Pi / sinSize
	for _, x := range []float32{-0.3, -1, -math.Pi / 2, -7.5, -100} {
		got := float64(FastSin(x))
		want := math.Sin(float64(x))
		if math.Abs(got-want) > tol {
			t.Fatalf("FastSin(%v)=%v, want %v", x, got, want)
		}
	}
}

func TestNoiseTableRangeAndDeterminism(t *testing.T) {
	noise := NoiseTable()
	if len(noise) != noiseSize {
		t.Fatalf("noise table length %d, want %d", len(noise), noiseSize)
	}
	for i, v := range noise {
		if v < 0.4 || v > 1 {
			t.Fatalf("noise[%d]=%v outside [0.4, 1]", i, v)
		}
		n := math.Abs(math.Sin(float64(i)*12.9898+float64(i))) * 43758.5453
		want := float32(0.4 + (n-math.Floor(n))*0.6)
		if v != want {
			t.Fatalf("noise[%d]=%v, want %v", i, v, want)
		}
	}
}

func TestFastNoiseWrapsModulo256(t *testing.T) {
	for _, i := range []int{0, 5, 255} {
		if FastNoise(i) != FastNoise(i+256) {
			t.Fatalf("FastNoise(%d) != FastNoise(%d)", i, i+256)
		}
		if FastNoise(i) != FastNoise(i-256) {
			t.Fatalf("FastNoise(%d) != FastNoise(%d)", i, i-256)
		}
	}
	if FastNoise(-1) != FastNoise(255) {
		t.Fatal("FastNoise(-1) should alias the last lattice value")
	}
}

func TestSinTableEndpoints(t *testing.T) {
	if lut[0] != 0 {
		t.Fatalf("lut[0]=%v, want 0", lut[0])
	}
	if lut[sinSize/4] != 1 {
		t.Fatalf("lut[quarter]=%v, want 1", lut[sinSize/4])
	}
}
