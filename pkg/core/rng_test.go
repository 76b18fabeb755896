package core

import "testing"

func TestRNGDeterministic(t *testing.T) {
	a, b := NewRNG(42), NewRNG(42)
	for i := 0; i < 16; i++ {
		if x, y := a.Float32(), b.Float32(); x != y {
			t.Fatalf("draw %d: %v != %v", i, x, y)
		}
	}
}

func TestRNGRange(t *testing.T) {
	r := NewRNG(3)
	for i := 0; i < 500; i++ {
		v := r.Range(0.5, 0.9)
		if v < 0.5 || v > 0.9 {
			t.Fatalf("Range returned %v", v)
		}
	}
}
