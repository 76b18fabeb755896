package render

import (
	"slices"
	"testing"
)

func TestAppendPolyline(t *testing.T) {
	heights := []float32{10, 12, 8}
	got := AppendPolyline(nil, heights, 3, 7, 9)
	want := []Point{{0, 10}, {3, 12}, {6, 8}, {7, 9}}
	if !slices.Equal(got, want) {
		t.Fatalf("polyline = %v, want %v", got, want)
	}
}

func TestAppendPolylineEmpty(t *testing.T) {
	if got := AppendPolyline(nil, nil, 3, 100, 50); len(got) != 0 {
		t.Fatalf("empty field produced %v", got)
	}
}

func TestAppendPolylineReusesBuffer(t *testing.T) {
	buf := make([]Point, 0, 16)
	got := AppendPolyline(buf[:0], []float32{1, 2}, 3, 6, 1)
	if &got[0] != &buf[:1][0] {
		t.Fatal("buffer not reused")
	}
}

func TestColumnRows(t *testing.T) {
	// Samples every 3 units; cells 8 wide and 16 tall.
	heights := make([]float32, 12)
	for j := range heights {
		heights[j] = 20
	}
	heights[1] = -5 // above the grid
	heights[4] = 40
	got := ColumnRows(nil, heights, 3, 5, 3, 8, 16)
	// Columns sample x = 4, 12, 20, 28, 36 -> j = 1, 4, 7, 9, 12.
	want := []int{-1, 2, 1, 1, -1}
	if !slices.Equal(got, want) {
		t.Fatalf("rows = %v, want %v", got, want)
	}
}

func TestSampleAt(t *testing.T) {
	cases := []struct {
		x    float32
		n    int
		want int
	}{
		{0, 0, -1},
		{0, 10, 0},
		{-20, 10, 0},
		{4, 10, 1},
		{5, 10, 2},
		{1000, 10, 9},
	}
	for _, tc := range cases {
		if got := SampleAt(tc.x, 3, tc.n); got != tc.want {
			t.Fatalf("SampleAt(%v, n=%d) = %d, want %d", tc.x, tc.n, got, tc.want)
		}
	}
}
