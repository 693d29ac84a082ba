package ui

import (
	"math"

	"mapgen/internal/core"
)

// adjustedValue moves value one step in direction, clamped to the control's
// bounds. It reports false when value already sits on the bound.
func adjustedValue(ctrl core.ParameterControl, value, direction int) (int, bool) {
	step := int(math.Round(ctrl.Step))
	if step <= 0 {
		step = 1
	}
	target := value + direction*step
	if ctrl.HasMin {
		lo := int(math.Round(ctrl.Min))
		if target < lo {
			if value <= lo {
				return value, false
			}
			target = lo
		}
	}
	if ctrl.HasMax {
		hi := int(math.Round(ctrl.Max))
		if target > hi {
			if value >= hi {
				return value, false
			}
			target = hi
		}
	}
	return target, true
}
