package models

// Sensor is one active device descriptor returned by the registry.
type Sensor struct {
	ID       string `json:"id" yaml:"id"`
	Type     string `json:"type_name" yaml:"type"`
	Name     string `json:"sensor_name" yaml:"name"`
	Location string `json:"location" yaml:"location"`
}
