package engine

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"AgriPulse/internal/domain/models"
)

// Engine synthesizes plausible time-series readings for field sensors.
// A single instance owns all mutable generation state; it is designed for a
// single-threaded periodic driver and performs no I/O.
type Engine struct {
	profiles map[string]TypeProfile
	weights  []ScenarioWeight
	effects  TimeEffects
	jitter   bool
	rng      *rand.Rand
	now      func() time.Time

	scenario models.Scenario
	state    *stateTable
	readings int64
	byStatus map[models.Status]int64
}

// Option configures an Engine.
type Option func(*Engine)

// WithSeed fixes the random source, making the whole pipeline
// deterministic for tests.
func WithSeed(seed int64) Option {
	return func(e *Engine) {
		e.rng = rand.New(rand.NewSource(seed))
	}
}

// WithClock injects the wall clock used by the temporal shaper.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		e.now = now
	}
}

// WithJitter enables or disables the bounded-noise stage.
func WithJitter(enabled bool) Option {
	return func(e *Engine) {
		e.jitter = enabled
	}
}

// WithProfiles replaces the default sensor type profile table.
func WithProfiles(profiles map[string]TypeProfile) Option {
	return func(e *Engine) {
		if len(profiles) > 0 {
			e.profiles = profiles
		}
	}
}

// WithWeights replaces the default scenario distribution. Order matters:
// selection walks the slice front to back.
func WithWeights(weights []ScenarioWeight) Option {
	return func(e *Engine) {
		if len(weights) > 0 {
			e.weights = weights
		}
	}
}

// WithTimeEffects replaces the default diurnal/seasonal shaping constants.
func WithTimeEffects(effects TimeEffects) Option {
	return func(e *Engine) {
		e.effects = effects
	}
}

// New creates an engine with the default profile table, scenario weights
// and time effects.
func New(opts ...Option) *Engine {
	e := &Engine{
		profiles: DefaultProfiles(),
		weights:  DefaultWeights(),
		effects:  DefaultTimeEffects(),
		jitter:   true,
		rng:      rand.New(rand.NewSource(time.Now().UnixNano())),
		now:      time.Now,
		scenario: models.ScenarioNormal,
		state:    newStateTable(),
		byStatus: make(map[models.Status]int64),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// CurrentScenario returns the scenario chosen at the most recent round.
func (e *Engine) CurrentScenario() models.Scenario {
	return e.scenario
}

// ScenarioInfo returns the active scenario with its configured weight.
func (e *Engine) ScenarioInfo() models.ScenarioInfo {
	info := models.ScenarioInfo{
		Scenario:    e.scenario,
		Description: e.scenario.Description(),
	}
	for _, w := range e.weights {
		if w.Name == e.scenario {
			info.Weight = w.Weight
			break
		}
	}
	return info
}

// Generate produces one reading for the sensor under the scenario chosen at
// the last BeginRound. Unknown sensor types are a configuration error.
func (e *Engine) Generate(s models.Sensor) (*models.Reading, error) {
	profile, ok := e.profiles[s.Type]
	if !ok {
		return nil, fmt.Errorf("unknown sensor type %q for sensor %s", s.Type, s.ID)
	}

	now := e.now()
	value := e.baseValue(s.Type, profile)
	value = e.shapeTemporal(s.Type, value, now)
	value = e.applyTrend(s.ID, value)
	value = e.jitterAndClamp(profile, value)

	st := e.state.get(s.ID)
	battery := e.batteryLevel(st)
	st.lastValue = value
	st.hasLast = true

	status := e.classify(s.Type, profile, value)
	e.readings++
	e.byStatus[status]++

	return &models.Reading{
		SensorID:       s.ID,
		Value:          round3(value),
		Unit:           profile.Unit,
		QualityScore:   e.qualityScore(),
		BatteryLevel:   battery,
		SignalStrength: e.signalStrength(),
		RecordedAt:     now,
		Status:         status,
	}, nil
}

// ReportStatus summarizes generation since construction.
func (e *Engine) ReportStatus() models.StatusSummary {
	by := make(map[models.Status]int64, len(e.byStatus))
	for k, v := range e.byStatus {
		by[k] = v
	}
	return models.StatusSummary{
		Scenario:    e.scenario,
		Description: e.scenario.Description(),
		Sensors:     e.state.size(),
		Readings:    e.readings,
		ByStatus:    by,
		GeneratedAt: e.now(),
	}
}

// uniform draws from [lo, hi).
func (e *Engine) uniform(lo, hi float64) float64 {
	return lo + e.rng.Float64()*(hi-lo)
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
