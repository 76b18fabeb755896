package sonify

import (
	"math"
	"testing"
)

func TestLevel(t *testing.T) {
	if Level(nil, 200) != 0 {
		t.Fatal("empty field should be silent")
	}
	if Level([]float32{5, -5}, 0) != 0 {
		t.Fatal("zero centre should be silent")
	}
	got := Level([]float32{2, -2, 2, -2}, 200)
	if math.Abs(got-0.1) > 1e-9 {
		t.Fatalf("level %v, want 0.1", got)
	}
	if Level([]float32{500}, 200) != 1 {
		t.Fatal("large displacement should clamp to 1")
	}
}

func TestVoiceSilentByDefault(t *testing.T) {
	v := NewVoice(SampleRate)
	buf := make([][2]float64, 512)
	n, ok := v.Stream(buf)
	if n != len(buf) || !ok {
		t.Fatalf("stream returned %d, %v", n, ok)
	}
	for i, s := range buf {
		if s[0] != 0 || s[1] != 0 {
			t.Fatalf("sample %d = %v, want silence", i, s)
		}
	}
	if v.Err() != nil {
		t.Fatal(v.Err())
	}
}

func TestVoiceGlidesTowardLevel(t *testing.T) {
	v := NewVoice(SampleRate)
	v.SetLevel(2)
	buf := make([][2]float64, 44100)
	v.Stream(buf)
	var peak float64
	for _, s := range buf {
		if s[0] != s[1] {
			t.Fatal("channels differ")
		}
		peak = max(peak, math.Abs(s[0]))
	}
	if peak == 0 || peak > maxGain {
		t.Fatalf("peak %v outside (0, %v]", peak, maxGain)
	}
}

func TestPlayerNilSafe(t *testing.T) {
	var p *Player
	p.Update([]float32{1}, 1)
	p.Close()
}
