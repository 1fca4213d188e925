package liquid

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// ErrInvalidParam reports a non-finite or out-of-range tunable.
var ErrInvalidParam = errors.New("invalid liquid parameter")

// Params holds the kernel constants and seed profile of the liquid sim.
type Params struct {
	// Gain scales the pressure-gradient force added to flow each tick.
	Gain float64
	// Friction is the diffusion coefficient applied to the flow field.
	Friction float64
	// DiagonalFactor scales the diagonal direction vectors. Zero keeps the
	// diagonals visited but without contribution.
	DiagonalFactor float64
	GravityX       float64
	GravityY       float64

	// Seed profile: base + |radius - distance to center|, with the center
	// cell forced to Hotspot.
	SeedBase   float64
	SeedRadius float64
	Hotspot    float64
	// SeedNoise adds uniform noise in [-SeedNoise, SeedNoise) to the seeded
	// pressure before the hotspot override. Zero draws no random numbers.
	SeedNoise float64
}

// Config controls the liquid simulation dimensions and constants.
type Config struct {
	Width  int
	Height int

	Seed int64

	Params Params
}

// DefaultConfig returns the reference configuration.
func DefaultConfig() Config {
	return Config{
		Width:  500,
		Height: 500,
		Seed:   1,
		Params: Params{
			Gain:           0.4,
			Friction:       0.0001,
			DiagonalFactor: 0,
			SeedBase:       100,
			SeedRadius:     128,
			Hotspot:        24.5,
		},
	}
}

// Validate checks dimensions and constants.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, c.Width, c.Height)
	}
	p := c.Params
	named := []struct {
		name string
		v    float64
	}{
		{"gain", p.Gain},
		{"friction", p.Friction},
		{"diagonal", p.DiagonalFactor},
		{"gravity_x", p.GravityX},
		{"gravity_y", p.GravityY},
		{"seed_base", p.SeedBase},
		{"seed_radius", p.SeedRadius},
		{"hotspot", p.Hotspot},
		{"seed_noise", p.SeedNoise},
	}
	for _, n := range named {
		if math.IsNaN(n.v) || math.IsInf(n.v, 0) {
			return fmt.Errorf("%w: %s=%v", ErrInvalidParam, n.name, n.v)
		}
	}
	if p.DiagonalFactor < 0 {
		return fmt.Errorf("%w: diagonal=%v must not be negative", ErrInvalidParam, p.DiagonalFactor)
	}
	if p.SeedNoise < 0 {
		return fmt.Errorf("%w: seed_noise=%v must not be negative", ErrInvalidParam, p.SeedNoise)
	}
	return nil
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unparseable values keep their defaults.
func FromMap(cfg map[string]string) Config {
	return ApplyMap(DefaultConfig(), cfg)
}

// ApplyMap overlays the key/value pairs in cfg on top of base.
func ApplyMap(base Config, cfg map[string]string) Config {
	c := base
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	floats := map[string]*float64{
		"gain":        &c.Params.Gain,
		"friction":    &c.Params.Friction,
		"diagonal":    &c.Params.DiagonalFactor,
		"gravity_x":   &c.Params.GravityX,
		"gravity_y":   &c.Params.GravityY,
		"seed_base":   &c.Params.SeedBase,
		"seed_radius": &c.Params.SeedRadius,
		"hotspot":     &c.Params.Hotspot,
		"seed_noise":  &c.Params.SeedNoise,
	}
	for key, dst := range floats {
		v, ok := cfg[key]
		if !ok {
			continue
		}
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			*dst = parsed
		}
	}
	if c.Params.DiagonalFactor < 0 {
		c.Params.DiagonalFactor = 0
	}
	if c.Params.SeedNoise < 0 {
		c.Params.SeedNoise = 0
	}
	return c
}
