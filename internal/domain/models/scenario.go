package models

import "time"

// Scenario is a named macro-weather state that biases value generation for
// one round across the whole fleet.
type Scenario string

const (
	ScenarioNormal      Scenario = "normal"
	ScenarioDrought     Scenario = "drought"
	ScenarioRainy       Scenario = "rainy"
	ScenarioExtremeTemp Scenario = "extreme_temp"
)

// Description returns a human-readable summary of the scenario.
func (s Scenario) Description() string {
	switch s {
	case ScenarioNormal:
		return "normal weather conditions"
	case ScenarioDrought:
		return "drought period - low moisture, high temperature"
	case ScenarioRainy:
		return "rainy period - high moisture, low temperature"
	case ScenarioExtremeTemp:
		return "extreme heat - values near critical bounds"
	default:
		return "unknown scenario"
	}
}

// ScenarioInfo describes the active scenario for the read API.
type ScenarioInfo struct {
	Scenario    Scenario `json:"scenario"`
	Weight      float64  `json:"weight"`
	Description string   `json:"description"`
}

// StatusSummary is the periodic status report emitted by the generator.
type StatusSummary struct {
	Scenario      Scenario         `json:"scenario"`
	Description   string           `json:"description"`
	Sensors       int              `json:"sensors"`  // distinct sensors seen since start
	Readings      int64            `json:"readings"` // readings generated since start
	StoredRecords int64            `json:"stored_records,omitempty"`
	ByStatus      map[Status]int64 `json:"by_status"`
	GeneratedAt   time.Time        `json:"generated_at"`
}
