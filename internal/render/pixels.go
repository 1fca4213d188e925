package render

import (
	"fmt"
	"image"
	"math"

	"liquid-sim/internal/core"

	"github.com/crazy3lf/colorconv"
)

// Mode selects how pressure and flow are mapped to color.
type Mode string

const (
	// ModePressure paints pressure into the blue channel on a dark base.
	ModePressure Mode = "pressure"
	// ModeFlow paints flow X/Y into red/green around 128 and pressure into blue.
	ModeFlow Mode = "flow"
	// ModeHue paints flow direction as hue and flow magnitude as value.
	ModeHue Mode = "hue"
)

// Modes lists the supported color modes.
var Modes = []Mode{ModePressure, ModeFlow, ModeHue}

// ParseMode validates a mode name.
func ParseMode(s string) (Mode, error) {
	for _, m := range Modes {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown render mode %q", s)
}

// Next cycles to the following mode.
func (m Mode) Next() Mode {
	for i, candidate := range Modes {
		if candidate == m {
			return Modes[(i+1)%len(Modes)]
		}
	}
	return ModePressure
}

const baseShade = 0x11

// HueFlowScale is the flow magnitude rendered at full brightness in ModeHue.
const HueFlowScale = 64

// ToU8 clamps f to [0, 255] and truncates it to a byte. NaN maps to 0.
func ToU8(f float32) uint8 {
	switch {
	case f != f, f < 0:
		return 0x00
	case f > 255:
		return 0xFF
	default:
		return uint8(f)
	}
}

// FillRGBA converts pressure and flow cells into RGBA pixels in buf. buf must
// hold 4 bytes per cell.
func FillRGBA(buf []byte, pressure []float32, flow []core.Vec2, mode Mode) {
	for i, p := range pressure {
		var f core.Vec2
		if i < len(flow) {
			f = flow[i]
		}
		r, g, b := CellColor(p, f, mode)
		base := i * 4
		buf[base+0] = r
		buf[base+1] = g
		buf[base+2] = b
		buf[base+3] = 0xFF
	}
}

// Image renders src into a new RGBA image of the given size.
func Image(src core.FieldSource, size core.Size, mode Mode) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size.W, size.H))
	FillRGBA(img.Pix, src.Scalars(), src.Vectors(), mode)
	return img
}

// CellColor maps one cell to its RGB color in the given mode.
func CellColor(p float32, f core.Vec2, mode Mode) (uint8, uint8, uint8) {
	switch mode {
	case ModeFlow:
		return ToU8(128 + f.X), ToU8(128 + f.Y), ToU8(p)
	case ModeHue:
		return hueColor(f)
	default:
		return baseShade, baseShade, ToU8(p)
	}
}

func hueColor(f core.Vec2) (uint8, uint8, uint8) {
	mag := float64(f.Length())
	if mag == 0 || math.IsNaN(mag) {
		return 0, 0, 0
	}
	hue := math.Atan2(float64(f.Y), float64(f.X)) * 180 / math.Pi
	if hue < 0 {
		hue += 360
	}
	if hue >= 360 {
		hue = 0
	}
	value := math.Min(mag/HueFlowScale, 1)
	r, g, b, err := colorconv.HSVToRGB(hue, 1, value)
	if err != nil {
		return 0, 0, 0
	}
	return r, g, b
}
