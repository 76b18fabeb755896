package wave

import "testing"

func TestStampShape(t *testing.T) {
	stamp := buildStamp(nil, 420, Step)
	if len(stamp) != 281 {
		t.Fatalf("stamp length %d, want 281", len(stamp))
	}
	if stamp[140] != 1 {
		t.Fatalf("centre sample %v, want 1", stamp[140])
	}
	if stamp[0] != 0 || stamp[280] != 0 {
		t.Fatalf("edge samples %v/%v, want 0", stamp[0], stamp[280])
	}
	for i := 1; i <= 140; i++ {
		if stamp[i] < stamp[i-1] {
			t.Fatalf("stamp not rising toward the centre at %d: %v < %v", i, stamp[i], stamp[i-1])
		}
	}
}

func TestStampSymmetry(t *testing.T) {
	for _, radius := range []float32{3, 30, 100.5, 150, 420, 999} {
		stamp := buildStamp(nil, radius, Step)
		n := len(stamp)
		for i := 0; i < n; i++ {
			if stamp[i] != stamp[n-1-i] {
				t.Fatalf("radius %v: stamp[%d]=%v != stamp[%d]=%v", radius, i, stamp[i], n-1-i, stamp[n-1-i])
			}
		}
	}
}

func TestStampOutOfContractRadius(t *testing.T) {
	if got := buildStamp(nil, -10, Step); len(got) != 0 {
		t.Fatalf("negative radius stamp length %d, want 0", len(got))
	}
	zero := buildStamp(nil, 0, Step)
	if len(zero) != 1 || zero[0] != 0 {
		t.Fatalf("zero radius stamp %v, want [0]", zero)
	}
}

func TestStampReusesBuffer(t *testing.T) {
	buf := buildStamp(nil, 420, Step)
	smaller := buildStamp(buf, 30, Step)
	if &smaller[0] != &buf[0] {
		t.Fatal("shrinking stamp should reuse the existing buffer")
	}
	if len(smaller) != 21 {
		t.Fatalf("stamp length %d, want 21", len(smaller))
	}
}

func TestStampUnevenRadius(t *testing.T) {
	// 2r/3 is not an integer: the last sample stops short of the far edge.
	stamp := buildStamp(nil, 100, Step)
	if len(stamp) != 67 {
		t.Fatalf("stamp length %d, want 67", len(stamp))
	}
	if stamp[0] != 0 {
		t.Fatalf("near edge %v, want 0", stamp[0])
	}
	if last := stamp[len(stamp)-1]; !(last > 0) {
		t.Fatalf("far sample %v, want above 0", last)
	}
}
