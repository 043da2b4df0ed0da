package engine

import "AgriPulse/internal/domain/models"

// Sensor type keys understood by the default profile table.
const (
	TypeSoilMoisture   = "soil_moisture"
	TypeSoilPH         = "soil_ph"
	TypeAirTemperature = "air_temperature"
	TypeAirHumidity    = "air_humidity"
	TypeLightIntensity = "light_intensity"
	TypeRainfall       = "rainfall"
	TypeWindSpeed      = "wind_speed"
)

// TypeProfile is the static range, threshold and unit definition for one
// sensor type. Immutable for the process lifetime. Critical bounds may lie
// inside or outside [Min, Max] depending on the type; the classifier uses
// them as-is.
type TypeProfile struct {
	Min         float64
	Max         float64
	CriticalMin float64
	CriticalMax float64
	Unit        string
	Jitter      float64 // max noise magnitude, applied before clamping
}

// ScenarioWeight is one entry of the scenario distribution. Selection walks
// entries in declaration order, so the slice order is part of the contract.
type ScenarioWeight struct {
	Name   models.Scenario
	Weight float64
}

// DefaultProfiles returns the built-in profile table for the seven
// supported field sensor types.
func DefaultProfiles() map[string]TypeProfile {
	return map[string]TypeProfile{
		TypeSoilMoisture:   {Min: 15, Max: 85, CriticalMin: 25, CriticalMax: 85, Unit: "%", Jitter: 5},
		TypeSoilPH:         {Min: 5.0, Max: 8.0, CriticalMin: 5.5, CriticalMax: 7.5, Unit: "pH", Jitter: 0.3},
		TypeAirTemperature: {Min: 5, Max: 35, CriticalMin: 2, CriticalMax: 40, Unit: "°C", Jitter: 3},
		TypeAirHumidity:    {Min: 30, Max: 90, CriticalMin: 20, CriticalMax: 95, Unit: "%", Jitter: 8},
		TypeLightIntensity: {Min: 1000, Max: 80000, CriticalMin: 500, CriticalMax: 90000, Unit: "lux", Jitter: 5000},
		TypeRainfall:       {Min: 0, Max: 25, CriticalMin: 0, CriticalMax: 50, Unit: "mm", Jitter: 2},
		TypeWindSpeed:      {Min: 0, Max: 80, CriticalMin: 3.6, CriticalMax: 36, Unit: "km/h", Jitter: 3},
	}
}

// DefaultWeights returns the built-in scenario distribution.
func DefaultWeights() []ScenarioWeight {
	return []ScenarioWeight{
		{Name: models.ScenarioNormal, Weight: 0.75},
		{Name: models.ScenarioDrought, Weight: 0.10},
		{Name: models.ScenarioRainy, Weight: 0.10},
		{Name: models.ScenarioExtremeTemp, Weight: 0.05},
	}
}
