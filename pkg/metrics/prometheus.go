package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"AgriPulse/internal/domain/models"
)

// Recorder implements the domain Metrics interface using Prometheus.
type Recorder struct {
	readingsTotal *prometheus.CounterVec
	errorsTotal   *prometheus.CounterVec
	lastValue     *prometheus.GaugeVec
	batteryLevel  *prometheus.GaugeVec
	scenarioTotal *prometheus.CounterVec
	latency       *prometheus.HistogramVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		readingsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "agripulse_readings_total",
				Help: "Total number of readings generated",
			},
			[]string{"type", "status"},
		),
		errorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "agripulse_errors_total",
				Help: "Total number of errors encountered",
			},
			[]string{"type"},
		),
		lastValue: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "agripulse_last_value",
				Help: "Last generated value per sensor",
			},
			[]string{"sensor_id", "type"},
		),
		batteryLevel: promauto.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "agripulse_battery_level",
				Help: "Simulated battery level per sensor",
			},
			[]string{"sensor_id"},
		),
		scenarioTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "agripulse_scenario_rounds_total",
				Help: "Generation rounds per selected scenario",
			},
			[]string{"scenario"},
		),
		latency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "agripulse_operation_duration_seconds",
				Help:    "Duration of operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}
}

// RecordReading counts one generated reading by type and severity tier.
func (r *Recorder) RecordReading(sensorType string, status models.Status) {
	r.readingsTotal.WithLabelValues(sensorType, string(status)).Inc()
}

// RecordError records an error occurrence.
func (r *Recorder) RecordError(kind string) {
	r.errorsTotal.WithLabelValues(kind).Inc()
}

// RecordValue stores the last generated value for a sensor.
func (r *Recorder) RecordValue(sensorID, sensorType string, value float64) {
	r.lastValue.WithLabelValues(sensorID, sensorType).Set(value)
}

// RecordBattery stores the simulated battery level for a sensor.
func (r *Recorder) RecordBattery(sensorID string, level int) {
	r.batteryLevel.WithLabelValues(sensorID).Set(float64(level))
}

// RecordScenario counts a generation round under the selected scenario.
func (r *Recorder) RecordScenario(scenario models.Scenario) {
	r.scenarioTotal.WithLabelValues(string(scenario)).Inc()
}

// RecordLatency records operation latency in seconds.
func (r *Recorder) RecordLatency(op string, seconds float64) {
	r.latency.WithLabelValues(op).Observe(seconds)
}
