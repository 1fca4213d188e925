package ui

import (
	"fmt"
	"math"
	"strconv"

	"liquid-sim/internal/core"
)

const defaultFloatStep = 0.05

// adjustTarget returns the value a +/- press would move the control to, and
// whether that press changes anything.
func adjustTarget(ctrl core.ParameterControl, current float64, direction int) (float64, bool) {
	if direction == 0 {
		return current, false
	}
	step := ctrl.Step
	if step <= 0 {
		step = defaultFloatStep
	}
	target := ctrl.Clamp(current + float64(direction)*step)
	if math.Abs(target-current) < 1e-12 {
		return current, false
	}
	return target, true
}

func formatFloat(ctrl core.ParameterControl, value float64) string {
	step := ctrl.Step
	if step <= 0 {
		step = defaultFloatStep
	}
	var precision int
	switch {
	case step < 0.001:
		precision = 4
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	default:
		precision = 1
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}

// diagnosticsLines formats the tick counter and pressure drift for the panel.
func diagnosticsLines(tick int, total, initial float64) []string {
	lines := []string{
		fmt.Sprintf("tick      %d", tick),
		fmt.Sprintf("pressure  %.1f", total),
	}
	if initial != 0 {
		lines = append(lines, fmt.Sprintf("drift     %+.3f%%", (total-initial)/initial*100))
	}
	return lines
}
