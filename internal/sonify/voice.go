// Package sonify renders ripple activity as a soft tone.
package sonify

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const (
	// SampleRate is the output rate used by Player.
	SampleRate = beep.SampleRate(44100)

	toneFreq = 110.0
	maxGain  = 0.2
	// glide is the per-sample fraction of the gap closed toward the target gain.
	glide = 0.0005
)

// Level summarises ripple activity as the RMS displacement relative to the
// resting height, clamped to [0, 1].
func Level(disp []float32, centerY float32) float64 {
	if len(disp) == 0 || !(centerY > 0) {
		return 0
	}
	var sum float64
	for _, d := range disp {
		sum += float64(d) * float64(d)
	}
	rms := math.Sqrt(sum/float64(len(disp))) / float64(centerY)
	// Displacements rarely exceed a tenth of the half-height.
	rms *= 10
	if rms > 1 {
		return 1
	}
	return rms
}

// Voice is an endless sine streamer whose gain glides toward the last level
// passed to SetLevel.
type Voice struct {
	mu     sync.Mutex
	target float64

	sr    beep.SampleRate
	gain  float64
	phase float64
}

// NewVoice returns a silent voice for the given sample rate.
func NewVoice(sr beep.SampleRate) *Voice {
	return &Voice{sr: sr}
}

// SetLevel sets the target loudness in [0, 1].
func (v *Voice) SetLevel(level float64) {
	if level < 0 {
		level = 0
	} else if level > 1 {
		level = 1
	}
	v.mu.Lock()
	v.target = level * maxGain
	v.mu.Unlock()
}

// Stream implements beep.Streamer.
func (v *Voice) Stream(samples [][2]float64) (n int, ok bool) {
	v.mu.Lock()
	target := v.target
	v.mu.Unlock()

	step := 2 * math.Pi * toneFreq / float64(v.sr)
	for i := range samples {
		v.gain += (target - v.gain) * glide
		s := v.gain * math.Sin(v.phase)
		samples[i][0] = s
		samples[i][1] = s
		v.phase += step
		if v.phase >= 2*math.Pi {
			v.phase -= 2 * math.Pi
		}
	}
	return len(samples), true
}

// Err implements beep.Streamer.
func (v *Voice) Err() error { return nil }

// Player owns the speaker and the voice it plays.
type Player struct {
	voice *Voice
	ctrl  *beep.Ctrl
}

// NewPlayer initialises the speaker and starts the voice.
func NewPlayer() (*Player, error) {
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/10)); err != nil {
		return nil, err
	}
	v := NewVoice(SampleRate)
	ctrl := &beep.Ctrl{Streamer: v}
	speaker.Play(ctrl)
	return &Player{voice: v, ctrl: ctrl}, nil
}

// Update feeds the current displacement field to the voice.
func (p *Player) Update(disp []float32, centerY float32) {
	if p == nil {
		return
	}
	p.voice.SetLevel(Level(disp, centerY))
}

// Close silences the voice and releases the speaker.
func (p *Player) Close() {
	if p == nil {
		return
	}
	speaker.Lock()
	p.ctrl.Paused = true
	speaker.Unlock()
	speaker.Close()
}
