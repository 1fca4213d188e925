package app

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"liquid-sim/internal/render"
)

// KVList collects repeatable key=value flags.
type KVList []string

func (l *KVList) String() string {
	return strings.Join(*l, ",")
}

// Set appends one key=value pair.
func (l *KVList) Set(value string) error {
	if !strings.Contains(value, "=") {
		return fmt.Errorf("override %q is not in key=value form", value)
	}
	*l = append(*l, value)
	return nil
}

// Config represents the command-line parameters shared by the entrypoints.
type Config struct {
	Sim    string
	Width  int
	Height int
	Scale  int
	TPS    int
	Seed   int64
	Mode   string
	Panel  int

	Overrides KVList
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Sim: "liquid", Scale: 2, TPS: 60, Mode: string(render.ModePressure), Panel: 240}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run")
	fs.IntVar(&c.Width, "w", c.Width, "grid width (0 keeps the sim default)")
	fs.IntVar(&c.Height, "h", c.Height, "grid height (0 keeps the sim default)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for simulation reset (0 keeps the sim default)")
	fs.StringVar(&c.Mode, "mode", c.Mode, "render mode: pressure, flow or hue")
	fs.IntVar(&c.Panel, "panel", c.Panel, "HUD panel width in pixels (0 hides it)")
	fs.Var(&c.Overrides, "set", "sim parameter override in key=value form (repeatable)")
}

// SimConfig merges the size, seed and -set overrides into a factory map.
// Later -set entries win over earlier ones and over -w/-h/-seed.
func (c *Config) SimConfig() map[string]string {
	cfg := map[string]string{}
	if c.Width > 0 {
		cfg["w"] = strconv.Itoa(c.Width)
	}
	if c.Height > 0 {
		cfg["h"] = strconv.Itoa(c.Height)
	}
	if c.Seed != 0 {
		cfg["seed"] = strconv.FormatInt(c.Seed, 10)
	}
	for _, kv := range c.Overrides {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 {
			continue
		}
		cfg[strings.TrimSpace(parts[0])] = strings.TrimSpace(parts[1])
	}
	return cfg
}

// RenderMode validates the configured mode.
func (c *Config) RenderMode() (render.Mode, error) {
	return render.ParseMode(c.Mode)
}
