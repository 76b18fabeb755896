package wave

import (
	"strconv"

	"waveline/pkg/core"
)

// Config holds the background oscillation and ripple lifetime tunables.
type Config struct {
	GlobalFreq float32
	GlobalAmp  float32

	InfluenceRadius float32
	DampFactor      float32

	// LifetimeNormalizer is the intensity at which a ripple lingers for the
	// full MaxLinger.
	LifetimeNormalizer float32
	MinLinger          float32
	MaxLinger          float32
}

// DefaultConfig returns the engine configuration in effect before the first
// Configure call.
func DefaultConfig() Config {
	return Config{
		GlobalFreq:         0.02,
		GlobalAmp:          5,
		InfluenceRadius:    420,
		DampFactor:         0.069,
		LifetimeNormalizer: 1,
		MinLinger:          600,
		MaxLinger:          2200,
	}
}

// WaveParams controls the per-ripple oscillation.
type WaveParams struct {
	Freq  float32
	Speed float32
	Amp   float32
}

// DefaultWaveParams returns the oscillation used until SetWaveParams is called.
func DefaultWaveParams() WaveParams {
	return WaveParams{Freq: 0.04, Speed: 0.7, Amp: 0.2}
}

// RandomWaveParams draws a fresh oscillation in the ranges the interactive
// background uses each time the pointer re-enters.
func RandomWaveParams(rng *core.RNG) WaveParams {
	return WaveParams{
		Freq:  rng.Range(0.02, 0.07),
		Speed: rng.Range(0.5, 0.9),
		Amp:   rng.Range(0.1, 0.3),
	}
}

// FromMap populates the config and wave params from a string map (flag-style
// key/value pairs). Values that fail to parse keep their defaults.
func FromMap(cfg map[string]string) (Config, WaveParams) {
	c := DefaultConfig()
	p := DefaultWaveParams()
	if cfg == nil {
		return c, p
	}
	for key, v := range cfg {
		ApplyOverride(&c, &p, key, v)
	}
	if c.MaxLinger < c.MinLinger {
		c.MaxLinger = c.MinLinger
	}
	return c, p
}

// ApplyOverride sets a single tunable by key. It reports false for unknown
// keys and unparsable or out-of-range values.
func ApplyOverride(c *Config, p *WaveParams, key, value string) bool {
	parsed, err := strconv.ParseFloat(value, 32)
	if err != nil {
		return false
	}
	return setTunable(c, p, key, float32(parsed))
}

func setTunable(c *Config, p *WaveParams, key string, v float32) bool {
	if v != v {
		return false
	}
	switch key {
	case "global_freq":
		c.GlobalFreq = v
	case "global_amp":
		c.GlobalAmp = v
	case "influence_radius":
		if v <= 0 {
			return false
		}
		c.InfluenceRadius = v
	case "damp_factor":
		c.DampFactor = v
	case "lifetime_normalizer":
		if v <= 0 {
			return false
		}
		c.LifetimeNormalizer = v
	case "min_linger":
		if v < 0 {
			return false
		}
		c.MinLinger = v
	case "max_linger":
		if v < 0 {
			return false
		}
		c.MaxLinger = v
	case "wave_freq":
		p.Freq = v
	case "wave_speed":
		p.Speed = v
	case "wave_amp":
		p.Amp = v
	default:
		return false
	}
	return true
}
