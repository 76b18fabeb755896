package render

// Point is a vertex of the rendered line in surface units.
type Point struct {
	X, Y float32
}

// AppendPolyline appends the line through the height samples to dst. The
// first vertex is (0, heights[0]), sample j sits at j*step, and the path
// closes at (width, centerY) so the line meets the right edge at rest.
func AppendPolyline(dst []Point, heights []float32, step, width, centerY float32) []Point {
	if len(heights) == 0 {
		return dst
	}
	dst = append(dst, Point{X: 0, Y: heights[0]})
	for j := 1; j < len(heights); j++ {
		dst = append(dst, Point{X: float32(j) * step, Y: heights[j]})
	}
	return append(dst, Point{X: width, Y: centerY})
}

// ColumnRows maps the height field onto a character grid. Column c samples
// the field at the centre of the cell, c*cellW + cellW/2, and the result is
// the row containing that height, or -1 when it falls outside [0, rows).
func ColumnRows(dst []int, heights []float32, step float32, cols, rows int, cellW, cellH float32) []int {
	dst = dst[:0]
	for c := 0; c < cols; c++ {
		row := -1
		x := (float32(c) + 0.5) * cellW
		j := int(x/step + 0.5)
		if j >= 0 && j < len(heights) {
			y := heights[j] / cellH
			if y >= 0 && y < float32(rows) {
				row = int(y)
			}
		}
		dst = append(dst, row)
	}
	return dst
}

// SampleAt returns the sample index nearest to surface x, clamped to n.
func SampleAt(x, step float32, n int) int {
	if n == 0 {
		return -1
	}
	j := int(x/step + 0.5)
	if j < 0 {
		return 0
	}
	if j >= n {
		return n - 1
	}
	return j
}
