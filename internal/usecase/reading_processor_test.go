package usecase

import (
	"context"
	"testing"
	"time"

	"AgriPulse/internal/domain/models"
)

type fakePublisher struct {
	published []*models.Reading
}

func (f *fakePublisher) Publish(ctx context.Context, r *models.Reading) error {
	f.published = append(f.published, r)
	return nil
}

func (f *fakePublisher) PublishBatch(ctx context.Context, rs []*models.Reading) error {
	f.published = append(f.published, rs...)
	return nil
}

func (f *fakePublisher) Close() error { return nil }

func sampleReading() *models.Reading {
	return &models.Reading{
		SensorID:       "sm-1",
		Value:          42.5,
		Unit:           "%",
		QualityScore:   98,
		BatteryLevel:   100,
		SignalStrength: -60,
		RecordedAt:     time.Now().UTC(),
		Status:         models.StatusNormal,
	}
}

func TestProcessRoutesToKafkaBackend(t *testing.T) {
	pub := &fakePublisher{}
	store := &fakeStorage{}
	p := NewReadingProcessor(pub, store, &fakeMetrics{}, "kafka")

	if err := p.Process(context.Background(), sampleReading()); err != nil {
		t.Fatalf("Process: %v", err)
	}
	if len(pub.published) != 1 {
		t.Errorf("published %d readings, want 1", len(pub.published))
	}
	if len(store.stored) != 0 {
		t.Errorf("stored %d readings, want 0", len(store.stored))
	}
}

func TestProcessRoutesToClickHouseBackend(t *testing.T) {
	pub := &fakePublisher{}
	store := &fakeStorage{}
	p := NewReadingProcessor(pub, store, &fakeMetrics{}, "clickhouse")

	if err := p.Process(context.Background(), sampleReading()); err != nil {
		t.Fatalf("Process: %v", err)
	}
	if len(store.stored) != 1 {
		t.Errorf("stored %d readings, want 1", len(store.stored))
	}
	if len(pub.published) != 0 {
		t.Errorf("published %d readings, want 0", len(pub.published))
	}
}

func TestProcessRejectsUnknownBackend(t *testing.T) {
	m := &fakeMetrics{}
	p := NewReadingProcessor(&fakePublisher{}, &fakeStorage{}, m, "mysql")

	if err := p.Process(context.Background(), sampleReading()); err == nil {
		t.Fatal("Process should fail for an unknown backend")
	}
	if m.errors["process"] != 1 {
		t.Errorf("process errors = %d, want 1", m.errors["process"])
	}
}

func TestProcessNilReading(t *testing.T) {
	p := NewReadingProcessor(&fakePublisher{}, &fakeStorage{}, &fakeMetrics{}, "clickhouse")
	if err := p.Process(context.Background(), nil); err == nil {
		t.Fatal("Process should fail for a nil reading")
	}
}

func TestProcessBatchRoutes(t *testing.T) {
	pub := &fakePublisher{}
	p := NewReadingProcessor(pub, &fakeStorage{}, &fakeMetrics{}, "kafka")

	batch := []*models.Reading{sampleReading(), sampleReading(), sampleReading()}
	if err := p.ProcessBatch(context.Background(), batch); err != nil {
		t.Fatalf("ProcessBatch: %v", err)
	}
	if len(pub.published) != 3 {
		t.Errorf("published %d readings, want 3", len(pub.published))
	}
}
