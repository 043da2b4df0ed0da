package repository

import (
	"context"
	"time"

	"AgriPulse/internal/domain/models"
)

// Registry returns the sensors currently active, in stable order.
type Registry interface {
	ActiveSensors(ctx context.Context) ([]models.Sensor, error)
}

// Publisher pushes finished readings to a message backend.
type Publisher interface {
	Publish(ctx context.Context, r *models.Reading) error
	PublishBatch(ctx context.Context, readings []*models.Reading) error
	Close() error
}

// Storage persists finished readings and serves the inspection queries.
type Storage interface {
	Store(ctx context.Context, r *models.Reading) error
	StoreBatch(ctx context.Context, readings []*models.Reading) error
	Recent(ctx context.Context, limit int) ([]*models.Reading, error)
	History(ctx context.Context, sensorID string, from, to time.Time, limit int) ([]*models.Reading, error)
	Count(ctx context.Context) (int64, error)
	Health(ctx context.Context) error
	Close() error
}

// LatestStore keeps the most recent reading per sensor for the read API.
type LatestStore interface {
	SetLatest(ctx context.Context, s models.Sensor, r *models.Reading) error
	Latest(ctx context.Context) ([]models.LatestReading, error)
	Close() error
}

// Metrics records generation telemetry.
type Metrics interface {
	RecordReading(sensorType string, status models.Status)
	RecordError(kind string)
	RecordValue(sensorID, sensorType string, value float64)
	RecordBattery(sensorID string, level int)
	RecordScenario(scenario models.Scenario)
	RecordLatency(op string, seconds float64)
}
