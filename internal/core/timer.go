package core

import "time"

// Clock reports elapsed frame time in milliseconds, the unit the wave engine
// uses for ripple ages.
type Clock struct {
	start time.Time
	now   func() time.Time
}

// NewClock starts a clock at the current wall time.
func NewClock() *Clock {
	return NewClockFunc(time.Now)
}

// NewClockFunc starts a clock driven by now, which tests can replace.
func NewClockFunc(now func() time.Time) *Clock {
	return &Clock{start: now(), now: now}
}

// Millis returns the milliseconds elapsed since the clock started.
func (c *Clock) Millis() float64 {
	return float64(c.now().Sub(c.start)) / float64(time.Millisecond)
}

// FixedStep paces a frame loop at a steady frames-per-second rate.
type FixedStep struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
	now         func() time.Time
}

// NewFixedStep constructs a FixedStep controller targeting the given FPS.
func NewFixedStep(fps int) *FixedStep {
	fs := &FixedStep{now: time.Now}
	fs.SetFPS(fps)
	fs.accumulator = fs.step
	return fs
}

// SetFPS changes the frame rate. Non-positive values fall back to 60.
func (f *FixedStep) SetFPS(fps int) {
	if fps <= 0 {
		fps = 60
	}
	f.step = time.Second / time.Duration(fps)
}

// Interval returns the duration of one frame.
func (f *FixedStep) Interval() time.Duration { return f.step }

// ShouldStep reports whether a frame is due. Each call consumes at most one
// frame so a stalled loop does not burst.
func (f *FixedStep) ShouldStep() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
	}
	f.accumulator += now.Sub(f.last)
	f.last = now
	if f.accumulator >= f.step {
		f.accumulator -= f.step
		if f.accumulator > f.step {
			f.accumulator = f.step
		}
		return true
	}
	return false
}
