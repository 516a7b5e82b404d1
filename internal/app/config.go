package app

import (
	"flag"
	"strconv"
)

// Config represents the command-line parameters for the viewer.
type Config struct {
	Sim     string
	Scale   int
	TPS     int
	Seed    int64
	Width   int
	Height  int
	Density float64
	Rule    string
	HUD     int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sim:     "life",
		Scale:   3,
		TPS:     30,
		Seed:    42,
		Width:   256,
		Height:  256,
		Density: 0.3,
		HUD:     180,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset")
	fs.IntVar(&c.Width, "w", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "grid height in cells")
	fs.Float64Var(&c.Density, "density", c.Density, "fraction of live cells on reset")
	fs.StringVar(&c.Rule, "rule", c.Rule, "rule override in B/S notation, e.g. B3/S23")
	fs.IntVar(&c.HUD, "hud", c.HUD, "HUD panel width in pixels, 0 disables")
}

// SimConfig converts the flag values into a registry configuration map.
func (c *Config) SimConfig() map[string]string {
	cfg := map[string]string{
		"w":       strconv.Itoa(c.Width),
		"h":       strconv.Itoa(c.Height),
		"density": strconv.FormatFloat(c.Density, 'f', -1, 64),
	}
	if c.Rule != "" {
		cfg["rule"] = c.Rule
	}
	return cfg
}
