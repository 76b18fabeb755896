package render

import "image/color"

// fillCoverageRGBA converts ripple coverage values in [0, 1] into tinted RGBA
// pixels in buf, using the coverage as alpha. Values outside the range are
// clamped; buf must hold 4 bytes per coverage sample.
func fillCoverageRGBA(buf []byte, coverage []float32, tint color.Color) {
	r, g, b, _ := tint.RGBA()
	for i, c := range coverage {
		if !(c > 0) {
			c = 0
		} else if c > 1 {
			c = 1
		}
		a := uint32(c * 255)
		base := i * 4
		// Premultiplied alpha, as ebiten expects.
		buf[base+0] = uint8((r >> 8) * a / 255)
		buf[base+1] = uint8((g >> 8) * a / 255)
		buf[base+2] = uint8((b >> 8) * a / 255)
		buf[base+3] = uint8(a)
	}
}

// CoveragePixels returns buf resized and filled with the coverage strip.
func CoveragePixels(buf []byte, coverage []float32, tint color.Color) []byte {
	n := len(coverage) * 4
	if cap(buf) < n {
		buf = make([]byte, n)
	}
	buf = buf[:n]
	fillCoverageRGBA(buf, coverage, tint)
	return buf
}
