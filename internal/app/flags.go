package app

import "flag"

// Config represents the command-line parameters for the GUI.
type Config struct {
	Preset string
	Width  int
	Height int
	TPS    int
	Seed   int64
	HUD    bool
	Audio  bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Preset: "default", Width: 900, Height: 400, TPS: 60, Seed: 42, HUD: true}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Preset, "preset", c.Preset, "wave preset to run")
	fs.IntVar(&c.Width, "width", c.Width, "initial window width")
	fs.IntVar(&c.Height, "height", c.Height, "initial window height")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for wave parameter randomisation")
	fs.BoolVar(&c.HUD, "hud", c.HUD, "show the parameter panel")
	fs.BoolVar(&c.Audio, "audio", c.Audio, "play a tone that follows ripple activity")
}
