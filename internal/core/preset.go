package core

import (
	"sort"

	"waveline/internal/motion"
	"waveline/pkg/wave"
)

// Preset bundles engine and pointer settings under a name.
type Preset struct {
	Name      string
	Wave      wave.Config
	Motion    motion.Config
	LineWidth float32
}

var presets = map[string]Preset{}

// Register adds a preset under its name.
func Register(p Preset) {
	if p.Name == "" {
		return
	}
	presets[p.Name] = p
}

// Lookup returns the preset registered under name.
func Lookup(name string) (Preset, bool) {
	p, ok := presets[name]
	return p, ok
}

// Presets returns the registered preset names in sorted order.
func Presets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func init() {
	Register(Preset{
		Name: "default",
		Wave: wave.Config{
			GlobalFreq:         0.02,
			GlobalAmp:          5,
			InfluenceRadius:    420,
			DampFactor:         0.069,
			LifetimeNormalizer: 1.5,
			MinLinger:          600,
			MaxLinger:          2200,
		},
		Motion:    motion.DefaultConfig(),
		LineWidth: 1.5,
	})

	calm := motion.DefaultConfig()
	calm.Interactive = false
	calm.BasePhaseIncrement = 0.008
	calm.MaxPhaseIncrement = 0.008
	Register(Preset{
		Name: "reduced-motion",
		Wave: wave.Config{
			GlobalFreq:         0.015,
			GlobalAmp:          3,
			InfluenceRadius:    300,
			DampFactor:         0.04,
			LifetimeNormalizer: 1.5,
			MinLinger:          400,
			MaxLinger:          1200,
		},
		Motion:    calm,
		LineWidth: 1,
	})
}
