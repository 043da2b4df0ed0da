package engine

import "AgriPulse/internal/domain/models"

// qualityScore draws a base quality in [95,100), subtracts the scenario
// penalty, clamps to [50,100] and truncates to an integer.
func (e *Engine) qualityScore() int {
	score := e.uniform(95, 100)

	switch e.scenario {
	case models.ScenarioExtremeTemp:
		score -= e.uniform(5, 15)
	case models.ScenarioDrought:
		score -= e.uniform(2, 8)
	}

	if score > 100 {
		score = 100
	}
	if score < 50 {
		score = 50
	}
	return int(score)
}

// batteryLevel reports exactly 100 on the first reading for a sensor and
// seeds the stored level there; every later reading decays the stored
// float by a small uniform step, flooring at 10. The reported value is the
// truncated integer; the float persists so decay accumulates.
func (e *Engine) batteryLevel(st *sensorState) int {
	if !st.batterySeeded {
		st.battery = 100
		st.batterySeeded = true
		return 100
	}

	st.battery -= e.uniform(0.05, 0.15)
	if st.battery < 10 {
		st.battery = 10
	}
	return int(st.battery)
}

// signalStrength synthesizes an RSSI in dBm: a uniform draw in [-80,-40)
// minus a weather penalty, clamped to [-120,-30].
func (e *Engine) signalStrength() int {
	rssi := e.uniform(-80, -40)

	switch e.scenario {
	case models.ScenarioRainy:
		rssi -= e.uniform(5, 15)
	case models.ScenarioExtremeTemp:
		rssi -= e.uniform(2, 8)
	}

	if rssi < -120 {
		rssi = -120
	}
	if rssi > -30 {
		rssi = -30
	}
	return int(rssi)
}
