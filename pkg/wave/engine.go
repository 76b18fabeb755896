// Package wave computes the height field of a wavy line disturbed by transient
// ripples. It produces numbers only; input capture, drawing and frame
// scheduling belong to the caller.
//
// An Engine is not safe for concurrent use. Configure, Resize, AddSource and
// Compute must be serialised by the caller.
package wave

// Step is the horizontal spacing between samples.
const Step float32 = 3

// Engine evaluates the height field once per frame.
type Engine struct {
	cfg   Config
	life  lifetime
	waves WaveParams

	stamp   []float32
	sources Registry
	field   Field

	width, height float32
	centerY       float32
	invCenterY    float32
	numPoints     int
}

// New returns an engine with default parameters, an empty stamp and empty
// field buffers. Call Configure and Resize before the first Compute.
func New() *Engine {
	e := &Engine{waves: DefaultWaveParams()}
	e.setConfig(DefaultConfig())
	return e
}

func (e *Engine) setConfig(cfg Config) {
	e.cfg = cfg
	e.life = lifetime{
		invNormalizer: 1 / cfg.LifetimeNormalizer,
		minLinger:     cfg.MinLinger,
		lingerRange:   cfg.MaxLinger - cfg.MinLinger,
	}
}

// Configure applies cfg and rebuilds the influence stamp.
func (e *Engine) Configure(cfg Config) {
	e.setConfig(cfg)
	e.stamp = buildStamp(e.stamp, cfg.InfluenceRadius, Step)
}

// Config returns the active configuration.
func (e *Engine) Config() Config { return e.cfg }

// SetWaveParams updates the per-ripple oscillation; it takes effect on the
// next Compute.
func (e *Engine) SetWaveParams(freq, speed, amp float32) {
	e.waves = WaveParams{Freq: freq, Speed: speed, Amp: amp}
}

// WaveParams returns the active per-ripple oscillation.
func (e *Engine) WaveParams() WaveParams { return e.waves }

// Resize recomputes the sample count for a surface of the given size and
// reallocates the field buffers. Views returned by earlier Compute calls must
// not be used afterwards.
func (e *Engine) Resize(width, height float32) {
	e.width = width
	e.height = height
	e.centerY = height * 0.5
	e.invCenterY = 2 / height
	e.numPoints = numPointsFor(width, Step)
	e.field.resize(e.numPoints)
}

// AddSource registers a ripple. time must share the unit and epoch of the now
// values later passed to Compute.
func (e *Engine) AddSource(x, y, time, intensity float32) {
	e.sources.Add(x, y, time, intensity)
}

// Compute evaluates the field for a frame and returns the heights. The slice
// is owned by the engine and stays valid until the next Compute or Resize;
// copy it to keep it longer.
func (e *Engine) Compute(now, phase float32) []float32 {
	f := &e.field
	f.clear()

	disp, fall := f.disp, f.fall
	last := len(disp) - 1
	stamp := e.stamp
	radius := e.cfg.InfluenceRadius
	cy := e.centerY
	damp := e.cfg.DampFactor
	freq, speed, amp := e.waves.Freq, e.waves.Speed, e.waves.Amp
	drift := phase * speed

	reg := &e.sources
	for i := 0; i < reg.count; {
		src := &reg.items[i]
		str, alive := e.life.strength(src, now)
		if !alive {
			reg.removeAt(i)
			continue
		}
		src.Strength = str

		distY := src.Y - cy
		if distY < 0 {
			distY = -distY
		}
		advAmp := (1 - distY*e.invCenterY) * cy * damp

		si := int((src.X - radius) / Step)
		if si < 0 {
			si = 0
		}
		ei := int((src.X + radius) / Step)
		if ei > last {
			ei = last
		}

		for j := si; j <= ei; j++ {
			x := float32(j) * Step
			sti := int((x - src.X + radius) / Step)
			if sti < 0 || sti >= len(stamp) {
				continue
			}
			fo := stamp[sti] * str

			wph := x*freq + drift
			ni := floorInt(wph * invPi)
			a1 := FastNoise(ni)
			a2 := FastNoise(ni + 1)
			fp := (wph - float32(ni)*pi) * invPi
			sf := (1 - FastCos(fp*pi)) * 0.5
			noise := a1 + (a2-a1)*sf

			disp[j] += FastSin(wph) * advAmp * fo * amp * noise
			if fo > fall[j] {
				fall[j] = fo
			}
		}
		i++
	}

	gfreq, gamp := e.cfg.GlobalFreq, e.cfg.GlobalAmp
	heights := f.heights
	for j := range heights {
		x := float32(j) * Step
		base := FastSin(x*gfreq+phase) * gamp
		heights[j] = cy + base*(1-fall[j]) + disp[j]
	}
	return heights
}

// floorInt rounds toward negative infinity.
func floorInt(v float32) int {
	i := int(v)
	if v < 0 && float32(i) != v {
		i--
	}
	return i
}

// NumPoints reports the number of samples produced per frame.
func (e *Engine) NumPoints() int { return e.numPoints }

// Step reports the horizontal distance between samples.
func (e *Engine) Step() float32 { return Step }

// CenterY reports the resting height of the line.
func (e *Engine) CenterY() float32 { return e.centerY }

// Size reports the surface dimensions from the last Resize.
func (e *Engine) Size() (width, height float32) { return e.width, e.height }

// Displacement exposes the ripple displacement from the last Compute.
func (e *Engine) Displacement() []float32 { return e.field.disp }

// Coverage exposes the strongest ripple falloff per sample from the last
// Compute.
func (e *Engine) Coverage() []float32 { return e.field.fall }

// Stamp exposes the influence falloff curve.
func (e *Engine) Stamp() []float32 { return e.stamp }

// Sources exposes the live ripples in registry order.
func (e *Engine) Sources() []Source { return e.sources.Active() }

// Len reports the number of live ripples.
func (e *Engine) Len() int { return e.sources.Len() }

// ClearSources drops every ripple.
func (e *Engine) ClearSources() { e.sources.Reset() }
