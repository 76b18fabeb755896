package wave

// Field stores the per-frame accumulation buffers. All three slices always
// share the same length.
type Field struct {
	disp    []float32
	fall    []float32
	heights []float32
}

// maxPoints bounds the sample count; wider surfaces are treated as invalid.
const maxPoints = 1 << 22

// numPointsFor returns floor(width/step) + 2, or 0 for widths that cannot
// produce a valid sample count.
func numPointsFor(width, step float32) int {
	span := width / step
	if !(span >= 0) || span > maxPoints-2 {
		return 0
	}
	return int(span) + 2
}

// resize reallocates the buffers for n samples.
func (f *Field) resize(n int) {
	f.disp = make([]float32, n)
	f.fall = make([]float32, n)
	f.heights = make([]float32, n)
}

// clear zeroes the displacement and coverage buffers.
func (f *Field) clear() {
	clear(f.disp)
	clear(f.fall)
}
