package engine

import "AgriPulse/internal/domain/models"

// classify maps a finished value to its severity tier.
//
// Soil moisture keeps its bespoke tier map with literal thresholds,
// independent of the profile's critical bounds (optimal 40-70, warning
// 25-40 and 70-85, critical outside 25-85). The generic formula below is
// not monotonically sound for non-positive critical bounds; both behaviors
// are kept as-is pending a product decision.
func (e *Engine) classify(sensorType string, p TypeProfile, value float64) models.Status {
	if sensorType == TypeSoilMoisture {
		switch {
		case value < 25 || value > 85:
			return models.StatusCritical
		case value < 40 || value > 70:
			return models.StatusWarning
		default:
			return models.StatusNormal
		}
	}

	switch {
	case value < p.CriticalMin || value > p.CriticalMax:
		return models.StatusCritical
	case value < p.CriticalMin*1.2 || value > p.CriticalMax*0.8:
		return models.StatusWarning
	default:
		return models.StatusNormal
	}
}
