// Package motion turns pointer movement into ripples and drives the frame
// phase from the smoothed pointer speed.
package motion

import "math"

// Config holds the pointer-to-ripple tunables.
type Config struct {
	// Interactive disables ripple creation when false (reduced motion).
	Interactive bool
	// MinMove is the distance a pointer must travel before a new ripple.
	MinMove float64
	// VelocityThreshold is the speed at which the phase advances fastest.
	VelocityThreshold float64
	// VelocityDecay multiplies the smoothed speed once per frame.
	VelocityDecay      float64
	BasePhaseIncrement float64
	MaxPhaseIncrement  float64
}

// DefaultConfig returns the interactive pointer settings.
func DefaultConfig() Config {
	return Config{
		Interactive:        true,
		MinMove:            3,
		VelocityThreshold:  2,
		VelocityDecay:      0.95,
		BasePhaseIncrement: 0.02,
		MaxPhaseIncrement:  0.09,
	}
}

// velocitySmoothing weights a new speed sample against the running average.
const velocitySmoothing = 0.2

// Ripple is a pointer sample that should be registered with the engine.
type Ripple struct {
	X, Y      float64
	Time      float64
	Intensity float64
}

// Tracker follows a single pointer. It is not safe for concurrent use.
type Tracker struct {
	cfg Config

	over        bool
	initialized bool

	lastX, lastY, lastT float64
	velocity            float64
	phase               float64
}

// NewTracker returns a tracker using cfg.
func NewTracker(cfg Config) *Tracker {
	return &Tracker{cfg: cfg}
}

// Config returns the tracker settings.
func (t *Tracker) Config() Config { return t.cfg }

// Enter marks the pointer as over the surface at (x, y). fresh reports the
// first entry since the last Leave, when callers pick new wave params.
func (t *Tracker) Enter(x, y, now float64) (fresh bool) {
	fresh = !t.initialized
	t.initialized = true
	t.over = true
	t.lastX, t.lastY, t.lastT = x, y, now
	return fresh
}

// Leave marks the pointer as gone; the next Enter is fresh again.
func (t *Tracker) Leave() {
	t.over = false
	t.initialized = false
}

// Over reports whether the pointer is currently over the surface.
func (t *Tracker) Over() bool { return t.over }

// Move records a pointer sample and returns the ripple it produces, if any.
// Samples closer than MinMove to the previous accepted one are dropped.
func (t *Tracker) Move(x, y, now float64) (Ripple, bool) {
	if !t.over || !t.cfg.Interactive {
		return Ripple{}, false
	}
	dx := x - t.lastX
	dy := y - t.lastY
	dSq := dx*dx + dy*dy
	if dSq < t.cfg.MinMove*t.cfg.MinMove {
		return Ripple{}, false
	}
	if dt := now - t.lastT; dt > 0 {
		v := math.Sqrt(dSq) / dt
		t.velocity = v*velocitySmoothing + t.velocity*(1-velocitySmoothing)
	}
	t.lastX, t.lastY, t.lastT = x, y, now
	return Ripple{X: x, Y: y, Time: now, Intensity: t.velocity}, true
}

// Velocity reports the smoothed pointer speed.
func (t *Tracker) Velocity() float64 { return t.velocity }

// Phase returns the phase for the current frame.
func (t *Tracker) Phase() float64 { return t.phase }

// Advance decays the pointer speed and moves the phase forward. Faster
// pointers advance the phase further, up to MaxPhaseIncrement per frame.
func (t *Tracker) Advance() {
	t.velocity *= t.cfg.VelocityDecay
	spd := 0.0
	if t.cfg.VelocityThreshold > 0 {
		spd = math.Min(t.velocity/t.cfg.VelocityThreshold, 1)
	}
	t.phase += t.cfg.BasePhaseIncrement + (t.cfg.MaxPhaseIncrement-t.cfg.BasePhaseIncrement)*spd
}
