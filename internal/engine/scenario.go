package engine

import "AgriPulse/internal/domain/models"

// BeginRound re-rolls the fleet-wide scenario for the next generation
// round: a uniform draw walked against the cumulative weights in
// declaration order, selecting the first entry whose running sum reaches
// the draw. If rounding leaves the draw unmatched (weights summing just
// under 1), the last entry wins. One weather applies to the whole fleet
// until the next round.
func (e *Engine) BeginRound() models.Scenario {
	draw := e.rng.Float64()
	selected := e.weights[len(e.weights)-1].Name

	cumulative := 0.0
	for _, w := range e.weights {
		cumulative += w.Weight
		if draw <= cumulative {
			selected = w.Name
			break
		}
	}

	e.scenario = selected
	return selected
}
