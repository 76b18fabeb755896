package wave

import "waveline/pkg/core"

// Parameters reports the engine's tunables and live state for display.
func (e *Engine) Parameters() core.ParameterSnapshot {
	c := e.cfg
	p := e.waves
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Field",
			Params: []core.Parameter{
				core.IntParam("num_points", "Samples", e.numPoints),
				core.IntParam("sources", "Ripples", e.sources.Len()),
				core.IntParam("stamp", "Stamp width", len(e.stamp)),
			},
		},
		{
			Name: "Background",
			Params: []core.Parameter{
				core.FloatParam("global_freq", "Global frequency", c.GlobalFreq),
				core.FloatParam("global_amp", "Global amplitude", c.GlobalAmp),
			},
		},
		{
			Name: "Ripples",
			Params: []core.Parameter{
				core.FloatParam("influence_radius", "Influence radius", c.InfluenceRadius),
				core.FloatParam("damp_factor", "Damp factor", c.DampFactor),
				core.FloatParam("lifetime_normalizer", "Lifetime normalizer", c.LifetimeNormalizer),
				core.FloatParam("min_linger", "Min linger", c.MinLinger),
				core.FloatParam("max_linger", "Max linger", c.MaxLinger),
			},
		},
		{
			Name: "Oscillation",
			Params: []core.Parameter{
				core.FloatParam("wave_freq", "Wave frequency", p.Freq),
				core.FloatParam("wave_speed", "Wave speed", p.Speed),
				core.FloatParam("wave_amp", "Wave amplitude", p.Amp),
			},
		},
	}}
}

// ParameterControls lists the tunables the HUD may adjust.
func (e *Engine) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "global_freq", Label: "Global freq", Step: 0.005, Min: 0, HasMin: true},
		{Key: "global_amp", Label: "Global amp", Step: 0.5, Min: 0, HasMin: true},
		{Key: "influence_radius", Label: "Radius", Step: 15, Min: 15, HasMin: true, Max: 1200, HasMax: true},
		{Key: "damp_factor", Label: "Damp", Step: 0.005, Min: 0, HasMin: true},
		{Key: "min_linger", Label: "Min linger", Step: 100, Min: 0, HasMin: true},
		{Key: "max_linger", Label: "Max linger", Step: 100, Min: 0, HasMin: true},
		{Key: "wave_freq", Label: "Wave freq", Step: 0.005, Min: 0, HasMin: true},
		{Key: "wave_speed", Label: "Wave speed", Step: 0.05, Min: 0, HasMin: true},
		{Key: "wave_amp", Label: "Wave amp", Step: 0.05, Min: 0, HasMin: true},
	}
}

// SetFloatParameter updates a tunable by key. Config changes rebuild the
// stamp immediately.
func (e *Engine) SetFloatParameter(key string, value float64) bool {
	c := e.cfg
	p := e.waves
	if !setTunable(&c, &p, key, float32(value)) {
		return false
	}
	if c.MaxLinger < c.MinLinger {
		return false
	}
	if c != e.cfg {
		e.Configure(c)
	}
	e.waves = p
	return true
}
