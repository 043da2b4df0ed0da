package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"AgriPulse/internal/domain/models"
	"AgriPulse/internal/domain/repository"
	pkgkafka "AgriPulse/pkg/kafka"
)

// ClickHouseReadingStore implements Storage for ClickHouse.
type ClickHouseReadingStore struct {
	db    *sql.DB
	table string
}

// NewClickHouseReadingStore creates ClickHouse reading storage.
func NewClickHouseReadingStore(db *sql.DB, table string) repository.Storage {
	return &ClickHouseReadingStore{db: db, table: table}
}

const readingColumns = "sensor_id, value, unit, quality_score, battery_level, signal_strength, recorded_at, status"

func (s *ClickHouseReadingStore) Store(ctx context.Context, r *models.Reading) error {
	q := fmt.Sprintf("INSERT INTO %s (%s) VALUES (?, ?, ?, ?, ?, ?, ?, ?)", s.table, readingColumns)
	_, err := s.db.ExecContext(ctx, q,
		r.SensorID,
		r.Value,
		r.Unit,
		r.QualityScore,
		r.BatteryLevel,
		r.SignalStrength,
		r.RecordedAt,
		string(r.Status),
	)
	return err
}

func (s *ClickHouseReadingStore) StoreBatch(ctx context.Context, readings []*models.Reading) error {
	if len(readings) == 0 {
		return nil
	}
	// Multi-row VALUES insert to reduce round-trips. A full fleet round is
	// small, so one chunk is the common case.
	const chunkSize = 1000
	for start := 0; start < len(readings); start += chunkSize {
		end := start + chunkSize
		if end > len(readings) {
			end = len(readings)
		}

		values := make([]string, 0, end-start)
		args := make([]interface{}, 0, (end-start)*8)
		for _, r := range readings[start:end] {
			if r == nil || r.SensorID == "" {
				continue
			}
			values = append(values, "(?, ?, ?, ?, ?, ?, ?, ?)")
			args = append(args,
				r.SensorID,
				r.Value,
				r.Unit,
				r.QualityScore,
				r.BatteryLevel,
				r.SignalStrength,
				r.RecordedAt,
				string(r.Status),
			)
		}
		if len(values) == 0 {
			continue
		}
		q := fmt.Sprintf("INSERT INTO %s (%s) VALUES %s", s.table, readingColumns, strings.Join(values, ","))
		if _, err := s.db.ExecContext(ctx, q, args...); err != nil {
			return err
		}
	}
	return nil
}

func (s *ClickHouseReadingStore) Recent(ctx context.Context, limit int) ([]*models.Reading, error) {
	q := fmt.Sprintf("SELECT %s FROM %s ORDER BY recorded_at DESC LIMIT ?", readingColumns, s.table)
	rows, err := s.db.QueryContext(ctx, q, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanReadings(rows)
}

func (s *ClickHouseReadingStore) History(ctx context.Context, sensorID string, from, to time.Time, limit int) ([]*models.Reading, error) {
	q := fmt.Sprintf("SELECT %s FROM %s WHERE sensor_id = ? AND recorded_at >= ? AND recorded_at <= ? ORDER BY recorded_at DESC LIMIT ?", readingColumns, s.table)
	rows, err := s.db.QueryContext(ctx, q, sensorID, from, to, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanReadings(rows)
}

func (s *ClickHouseReadingStore) Count(ctx context.Context) (int64, error) {
	q := fmt.Sprintf("SELECT count() FROM %s", s.table)
	var n int64
	if err := s.db.QueryRowContext(ctx, q).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (s *ClickHouseReadingStore) Health(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *ClickHouseReadingStore) Close() error {
	return nil // Connection managed by pkg client
}

func scanReadings(rows *sql.Rows) ([]*models.Reading, error) {
	var readings []*models.Reading
	for rows.Next() {
		var r models.Reading
		var status string
		if err := rows.Scan(
			&r.SensorID,
			&r.Value,
			&r.Unit,
			&r.QualityScore,
			&r.BatteryLevel,
			&r.SignalStrength,
			&r.RecordedAt,
			&status,
		); err != nil {
			return nil, err
		}
		r.Status = models.Status(status)
		readings = append(readings, &r)
	}
	return readings, rows.Err()
}

// KafkaReadingPublisher implements Publisher for Kafka. Messages are keyed
// by sensor id so one sensor's readings stay ordered within a partition.
type KafkaReadingPublisher struct {
	producer *pkgkafka.Producer
	topic    string
}

// NewKafkaReadingPublisher creates a Kafka reading publisher.
func NewKafkaReadingPublisher(producer *pkgkafka.Producer, topic string) repository.Publisher {
	return &KafkaReadingPublisher{producer: producer, topic: topic}
}

func (p *KafkaReadingPublisher) Publish(ctx context.Context, r *models.Reading) error {
	return p.producer.Publish(ctx, p.topic, []byte(r.SensorID), r)
}

func (p *KafkaReadingPublisher) PublishBatch(ctx context.Context, readings []*models.Reading) error {
	if len(readings) == 0 {
		return nil
	}
	msgs := make([]pkgkafka.Message, len(readings))
	for i, r := range readings {
		msgs[i] = pkgkafka.Message{
			Key:   []byte(r.SensorID),
			Value: r,
		}
	}
	return p.producer.PublishBatch(ctx, p.topic, msgs)
}

func (p *KafkaReadingPublisher) Close() error {
	if p.producer != nil {
		return p.producer.Close()
	}
	return nil
}
