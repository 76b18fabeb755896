package wave

import "math"

// Lookup table layout: one sine period followed by the noise lattice.
const (
	sinSize     = 4096
	sinMask     = sinSize - 1
	noiseSize   = 256
	noiseMask   = noiseSize - 1
	noiseOffset = sinSize
	lutSize     = sinSize + noiseSize

	pi     = float32(math.Pi)
	halfPi = float32(math.Pi / 2)
	invPi  = float32(1 / math.Pi)

	// sinScale maps a phase in radians to a table index.
	sinScale = float32(sinSize / (2 * math.Pi))
)

// lut is filled once at init and only read afterwards.
var lut [lutSize]float32

func init() {
	for i := 0; i < sinSize; i++ {
		lut[i] = float32(math.Sin(float64(i) / sinSize * 2 * math.Pi))
	}
	for i := 0; i < noiseSize; i++ {
		n := math.Abs(math.Sin(float64(i)*12.9898+float64(i))) * 43758.5453
		lut[noiseOffset+i] = float32(0.4 + (n-math.Floor(n))*0.6)
	}
}

// sinIndex converts a phase to a wrapped sine index. Flooring before the mask
// keeps negative phases on the same period as their positive counterparts.
func sinIndex(x float32) int {
	f := x * sinScale
	i := int(f)
	if f < 0 && float32(i) != f {
		i--
	}
	return i & sinMask
}

// FastSin approximates sin(x) with a resolution of 2π/4096.
func FastSin(x float32) float32 {
	return lut[sinIndex(x)]
}

// FastCos approximates cos(x) by shifting the sine lookup a quarter period.
func FastCos(x float32) float32 {
	return lut[sinIndex(x+halfPi)]
}

// FastNoise returns the lattice value at i mod 256, always within [0.4, 1.0].
func FastNoise(i int) float32 {
	return lut[noiseOffset+(i&noiseMask)]
}

// NoiseTable returns a copy of the 256 noise lattice values.
func NoiseTable() []float32 {
	out := make([]float32, noiseSize)
	copy(out, lut[noiseOffset:])
	return out
}
