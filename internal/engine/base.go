package engine

import "AgriPulse/internal/domain/models"

// baseValue draws a raw value conditioned on the active scenario and the
// sensor type. Values may legitimately leave [Min, Max] here; the range is
// enforced only in the final clamp stage.
func (e *Engine) baseValue(sensorType string, p TypeProfile) float64 {
	switch e.scenario {
	case models.ScenarioDrought:
		switch sensorType {
		case TypeSoilMoisture:
			return e.uniform(p.Min, p.Min+10)
		case TypeAirTemperature:
			return e.uniform(p.Max-5, p.Max)
		}
	case models.ScenarioRainy:
		switch sensorType {
		case TypeSoilMoisture:
			return e.uniform(p.Max-10, p.Max)
		case TypeAirTemperature:
			return e.uniform(p.Min, p.Min+5)
		case TypeRainfall:
			return e.uniform(5, p.Max)
		}
	case models.ScenarioExtremeTemp:
		switch sensorType {
		case TypeAirTemperature:
			return e.uniform(p.Max-2, p.Max+5)
		case TypeSoilMoisture:
			return e.uniform(p.Min, p.Min+15)
		}
	}

	// Normal scenario, and every type a special case does not name:
	// gaussian centered in the range with ~99.7% of mass inside it.
	mean := (p.Min + p.Max) / 2
	std := (p.Max - p.Min) / 6
	return e.rng.NormFloat64()*std + mean
}
