package liquid

import (
	"math"
	"strconv"

	"liquid-sim/internal/core"
)

// Parameters reports the current configuration for HUD and CLI display.
func (l *Liquid) Parameters() core.ParameterSnapshot {
	p := l.cfg.Params
	groups := []core.ParameterGroup{
		{
			Name: "Lattice",
			Params: []core.Parameter{
				intParam("w", "Width", l.cfg.Width),
				intParam("h", "Height", l.cfg.Height),
				int64Param("seed", "Seed", l.cfg.Seed),
			},
		},
		{
			Name:    "Kernel",
			Summary: "flow, pressure and diffusion constants",
			Params: []core.Parameter{
				floatParam("gain", "Gain", p.Gain),
				floatParam("friction", "Friction", p.Friction),
				floatParam("diagonal", "Diagonal factor", p.DiagonalFactor),
				floatParam("gravity_x", "Gravity X", p.GravityX),
				floatParam("gravity_y", "Gravity Y", p.GravityY),
			},
		},
		{
			Name: "Seed",
			Params: []core.Parameter{
				floatParam("seed_base", "Base pressure", p.SeedBase),
				floatParam("seed_radius", "Ring radius", p.SeedRadius),
				floatParam("hotspot", "Hotspot pressure", p.Hotspot),
				floatParam("seed_noise", "Seed noise", p.SeedNoise),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the kernel constants adjustable while running.
func (l *Liquid) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "gain", Label: "Gain", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, HasMin: true, Max: 2, HasMax: true},
		{Key: "friction", Label: "Friction", Type: core.ParamTypeFloat, Step: 0.0001, Min: 0, HasMin: true, Max: 0.125, HasMax: true},
		{Key: "diagonal", Label: "Diagonal", Type: core.ParamTypeFloat, Step: 0.1, Min: 0, HasMin: true, Max: 1, HasMax: true},
		{Key: "gravity_x", Label: "Gravity X", Type: core.ParamTypeFloat, Step: 0.01},
		{Key: "gravity_y", Label: "Gravity Y", Type: core.ParamTypeFloat, Step: 0.01},
	}
}

// SetFloatParameter updates a kernel constant and rebuilds the kernel. Values
// outside the control bounds are clamped. Unknown keys and non-finite values
// report false.
func (l *Liquid) SetFloatParameter(key string, value float64) bool {
	var ctrl core.ParameterControl
	found := false
	for _, c := range l.ParameterControls() {
		if c.Key == key {
			ctrl, found = c, true
			break
		}
	}
	if !found || math.IsNaN(value) || math.IsInf(value, 0) {
		return false
	}
	value = ctrl.Clamp(value)
	switch key {
	case "gain":
		l.cfg.Params.Gain = value
	case "friction":
		l.cfg.Params.Friction = value
	case "diagonal":
		l.cfg.Params.DiagonalFactor = value
	case "gravity_x":
		l.cfg.Params.GravityX = value
	case "gravity_y":
		l.cfg.Params.GravityY = value
	}
	l.kernel = NewKernel(l.cfg.Params)
	return true
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}
