package engine

import "math"

// jitterAndClamp adds bounded uniform noise when jitter is enabled, then
// enforces the physical range. This is the only stage that clamps; every
// upstream stage may exceed [Min, Max].
func (e *Engine) jitterAndClamp(p TypeProfile, value float64) float64 {
	if e.jitter {
		value += e.uniform(-p.Jitter, p.Jitter)
	}
	return math.Max(p.Min, math.Min(p.Max, value))
}
