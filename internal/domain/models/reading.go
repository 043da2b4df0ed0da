package models

import "time"

// Status is the severity tier derived from a finished value.
type Status string

const (
	StatusNormal   Status = "normal"
	StatusWarning  Status = "warning"
	StatusCritical Status = "critical"
)

// Reading is one synthesized measurement for a sensor. Ownership passes to
// the sink when generation finishes; the engine keeps no reference to it.
type Reading struct {
	SensorID       string    `json:"sensor_id"`
	Value          float64   `json:"value"` // rounded to 3 decimals
	Unit           string    `json:"unit"`
	QualityScore   int       `json:"quality_score"`   // 50..100
	BatteryLevel   int       `json:"battery_level"`   // 10..100
	SignalStrength int       `json:"signal_strength"` // RSSI dBm, -120..-30
	RecordedAt     time.Time `json:"recorded_at"`
	Status         Status    `json:"status"`
}

// LatestReading pairs a reading with the sensor it came from, for the
// read API.
type LatestReading struct {
	Sensor  Sensor  `json:"sensor"`
	Reading Reading `json:"reading"`
}
