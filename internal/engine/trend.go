package engine

// applyTrend nudges the value using the sensor's directional momentum so
// consecutive readings drift coherently. When the latest delta agrees with
// the stored direction the trend is reinforced; when it contradicts it, the
// direction is re-rolled for the next call and the value passes through
// untouched. The first reading for a sensor only initializes a direction.
func (e *Engine) applyTrend(sensorID string, value float64) float64 {
	st := e.state.get(sensorID)

	if st.trend == 0 {
		st.trend = e.pickDirection()
	}

	if st.hasLast {
		delta := value - st.lastValue
		if (delta > 0 && st.trend > 0) || (delta < 0 && st.trend < 0) {
			value += float64(st.trend) * e.uniform(0.1, 0.3)
		} else {
			st.trend = e.pickDirection()
		}
	}

	return value
}

func (e *Engine) pickDirection() int {
	if e.rng.Intn(2) == 0 {
		return -1
	}
	return 1
}
