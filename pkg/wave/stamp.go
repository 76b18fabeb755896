package wave

// buildStamp samples a smoothstep falloff across [-radius, radius] at the
// given step. Sample i sits at offset i*step - radius; the curve is 1 at the
// centre and reaches 0 at the radius with zero slope on both ends.
func buildStamp(dst []float32, radius, step float32) []float32 {
	n := 0
	if span := radius * 2 / step; span >= 0 {
		n = int(span) + 1
	}
	if n < 0 {
		n = 0
	}
	if cap(dst) >= n {
		dst = dst[:n]
	} else {
		dst = make([]float32, n)
	}
	for i := range dst {
		offset := float32(i)*step - radius
		if offset < 0 {
			offset = -offset
		}
		t := 1 - offset/radius
		if t > 0 {
			dst[i] = t * t * (3 - t - t)
		} else {
			dst[i] = 0
		}
	}
	return dst
}
