package engine

import (
	"math"
	"time"
)

// TimeEffects holds the diurnal and daylight shaping constants. Seasonal
// temperature offsets are fixed by calendar month.
type TimeEffects struct {
	TempMinHour  int     // coldest hour of the day
	TempMaxHour  int     // warmest hour of the day
	TempSwing    float64 // daily temperature swing amplitude, °C
	SunriseHour  int
	SunsetHour   int
	MaxIntensity float64 // peak light intensity, lux
}

// DefaultTimeEffects returns the built-in shaping constants.
func DefaultTimeEffects() TimeEffects {
	return TimeEffects{
		TempMinHour:  6,
		TempMaxHour:  14,
		TempSwing:    8,
		SunriseHour:  6,
		SunsetHour:   18,
		MaxIntensity: 80000,
	}
}

// shapeTemporal applies hour-of-day and month-of-year modulation. Only air
// temperature and light intensity are shaped; every other type passes
// through unchanged.
func (e *Engine) shapeTemporal(sensorType string, value float64, now time.Time) float64 {
	hour := now.Hour()

	switch sensorType {
	case TypeAirTemperature:
		value += e.diurnalTempDelta(hour)
		value += seasonalOffset(now.Month())

	case TypeLightIntensity:
		if e.effects.SunriseHour <= hour && hour <= e.effects.SunsetHour {
			curve := e.daylightCurve(hour)
			if curve > value {
				value = curve
			}
		} else {
			// Night: near darkness overrides the base entirely.
			value = e.uniform(0, 100)
		}
	}

	return value
}

// diurnalTempDelta is the additive daily temperature cycle: a half-sine
// rise from the coldest to the warmest hour, peaking exactly at
// TempMaxHour, and a half-cosine fall through the night.
func (e *Engine) diurnalTempDelta(hour int) float64 {
	te := e.effects
	half := te.TempSwing / 2

	if te.TempMinHour <= hour && hour <= te.TempMaxHour {
		progress := float64(hour-te.TempMinHour) / float64(te.TempMaxHour-te.TempMinHour)
		return math.Sin(progress*math.Pi/2) * half
	}

	var progress float64
	if hour < te.TempMinHour {
		progress = float64(hour) / float64(te.TempMinHour)
	} else {
		progress = float64(hour-te.TempMaxHour) / float64(24-te.TempMaxHour)
	}
	return -math.Cos(progress*math.Pi) * half
}

// daylightCurve is the sine-shaped intensity between sunrise and sunset,
// peaking at the window midpoint.
func (e *Engine) daylightCurve(hour int) float64 {
	sunrise := float64(e.effects.SunriseHour)
	sunset := float64(e.effects.SunsetHour)
	mid := (sunrise + sunset) / 2

	var progress float64
	if float64(hour) <= mid {
		progress = (float64(hour) - sunrise) / (mid - sunrise)
	} else {
		progress = 1 - (float64(hour)-mid)/(sunset-mid)
	}
	return math.Sin(progress*math.Pi/2) * e.effects.MaxIntensity
}

// seasonalOffset is the additive temperature modifier by calendar month:
// spring 0, summer +8, autumn +2, winter -5.
func seasonalOffset(m time.Month) float64 {
	switch m {
	case time.March, time.April, time.May:
		return 0
	case time.June, time.July, time.August:
		return 8
	case time.September, time.October, time.November:
		return 2
	default: // December, January, February
		return -5
	}
}
