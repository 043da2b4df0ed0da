package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"AgriPulse/internal/domain/models"
	"AgriPulse/internal/engine"
	applogger "AgriPulse/pkg/logger"
)

type fakeRegistry struct {
	sensors []models.Sensor
	err     error
}

func (f *fakeRegistry) ActiveSensors(ctx context.Context) ([]models.Sensor, error) {
	return f.sensors, f.err
}

type fakeStorage struct {
	stored  []*models.Reading
	failIDs map[string]bool
	count   int64
}

func (f *fakeStorage) Store(ctx context.Context, r *models.Reading) error {
	if f.failIDs[r.SensorID] {
		return errors.New("insert failed")
	}
	f.stored = append(f.stored, r)
	return nil
}

func (f *fakeStorage) StoreBatch(ctx context.Context, rs []*models.Reading) error {
	for _, r := range rs {
		if err := f.Store(ctx, r); err != nil {
			return err
		}
	}
	return nil
}

func (f *fakeStorage) Recent(ctx context.Context, limit int) ([]*models.Reading, error) {
	return f.stored, nil
}

func (f *fakeStorage) History(ctx context.Context, sensorID string, from, to time.Time, limit int) ([]*models.Reading, error) {
	return nil, nil
}

func (f *fakeStorage) Count(ctx context.Context) (int64, error) { return f.count, nil }
func (f *fakeStorage) Health(ctx context.Context) error         { return nil }
func (f *fakeStorage) Close() error                             { return nil }

type fakeMetrics struct {
	readings  int
	errors    map[string]int
	scenarios int
}

func (f *fakeMetrics) RecordReading(sensorType string, status models.Status) { f.readings++ }
func (f *fakeMetrics) RecordError(kind string) {
	if f.errors == nil {
		f.errors = make(map[string]int)
	}
	f.errors[kind]++
}
func (f *fakeMetrics) RecordValue(sensorID, sensorType string, value float64) {}
func (f *fakeMetrics) RecordBattery(sensorID string, level int)               {}
func (f *fakeMetrics) RecordScenario(scenario models.Scenario)                { f.scenarios++ }
func (f *fakeMetrics) RecordLatency(op string, seconds float64)               {}

func testLogger(t *testing.T) *applogger.Logger {
	t.Helper()
	l, err := applogger.New(&applogger.Config{Level: "error", Format: "console", Output: "stdout"})
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	return l
}

func testFleet() []models.Sensor {
	return []models.Sensor{
		{ID: "sm-1", Type: "soil_moisture", Name: "Field A moisture", Location: "field-a"},
		{ID: "at-1", Type: "air_temperature", Name: "Field A temp", Location: "field-a"},
		{ID: "rf-1", Type: "rainfall", Name: "Field B rain", Location: "field-b"},
	}
}

func newGenerator(reg *fakeRegistry, store *fakeStorage, m *fakeMetrics, t *testing.T) *ReadingGenerator {
	eng := engine.New(engine.WithSeed(42), engine.WithJitter(false))
	proc := NewReadingProcessor(nil, store, m, "clickhouse")
	return NewReadingGenerator(reg, eng, proc, nil, m, testLogger(t))
}

func TestRunRoundStoresOneReadingPerSensor(t *testing.T) {
	reg := &fakeRegistry{sensors: testFleet()}
	store := &fakeStorage{}
	m := &fakeMetrics{}
	g := newGenerator(reg, store, m, t)

	if err := g.RunRound(context.Background()); err != nil {
		t.Fatalf("RunRound: %v", err)
	}

	if len(store.stored) != 3 {
		t.Fatalf("stored %d readings, want 3", len(store.stored))
	}
	seen := map[string]bool{}
	for _, r := range store.stored {
		seen[r.SensorID] = true
	}
	for _, s := range testFleet() {
		if !seen[s.ID] {
			t.Errorf("no reading stored for sensor %s", s.ID)
		}
	}
	if m.readings != 3 {
		t.Errorf("metrics recorded %d readings, want 3", m.readings)
	}
	if m.scenarios != 1 {
		t.Errorf("metrics recorded %d scenario rounds, want 1", m.scenarios)
	}
}

func TestRunRoundSkipsFailedSinkAndContinues(t *testing.T) {
	reg := &fakeRegistry{sensors: testFleet()}
	store := &fakeStorage{failIDs: map[string]bool{"at-1": true}}
	m := &fakeMetrics{}
	g := newGenerator(reg, store, m, t)

	if err := g.RunRound(context.Background()); err != nil {
		t.Fatalf("RunRound should not fail on a sink error: %v", err)
	}

	if len(store.stored) != 2 {
		t.Fatalf("stored %d readings, want 2", len(store.stored))
	}
	if m.errors["process"] != 1 {
		t.Errorf("process errors = %d, want 1", m.errors["process"])
	}
}

func TestRunRoundFailsFastOnUnknownType(t *testing.T) {
	reg := &fakeRegistry{sensors: []models.Sensor{
		{ID: "x-1", Type: "barometric_pressure", Name: "unknown"},
	}}
	store := &fakeStorage{}
	m := &fakeMetrics{}
	g := newGenerator(reg, store, m, t)

	if err := g.RunRound(context.Background()); err == nil {
		t.Fatal("RunRound should fail for an unknown sensor type")
	}
	if len(store.stored) != 0 {
		t.Errorf("stored %d readings, want 0", len(store.stored))
	}
	if m.errors["generate"] != 1 {
		t.Errorf("generate errors = %d, want 1", m.errors["generate"])
	}
}

func TestRunRoundRegistryError(t *testing.T) {
	reg := &fakeRegistry{err: errors.New("boom")}
	g := newGenerator(reg, &fakeStorage{}, &fakeMetrics{}, t)

	if err := g.RunRound(context.Background()); err == nil {
		t.Fatal("RunRound should propagate registry errors")
	}
}

func TestRunRoundEmptyFleetIsNoop(t *testing.T) {
	reg := &fakeRegistry{}
	store := &fakeStorage{}
	g := newGenerator(reg, store, &fakeMetrics{}, t)

	if err := g.RunRound(context.Background()); err != nil {
		t.Fatalf("RunRound: %v", err)
	}
	if len(store.stored) != 0 {
		t.Errorf("stored %d readings, want 0", len(store.stored))
	}
}

func TestReportStatusIncludesStoredCount(t *testing.T) {
	reg := &fakeRegistry{sensors: testFleet()}
	store := &fakeStorage{count: 0}
	m := &fakeMetrics{}
	g := newGenerator(reg, store, m, t)

	if err := g.RunRound(context.Background()); err != nil {
		t.Fatalf("RunRound: %v", err)
	}
	store.count = int64(len(store.stored))

	sum := g.ReportStatus(context.Background())
	if sum.Readings != 3 {
		t.Errorf("Readings = %d, want 3", sum.Readings)
	}
	if sum.Sensors != 3 {
		t.Errorf("Sensors = %d, want 3", sum.Sensors)
	}
	if sum.StoredRecords != 3 {
		t.Errorf("StoredRecords = %d, want 3", sum.StoredRecords)
	}
	var total int64
	for _, n := range sum.ByStatus {
		total += n
	}
	if total != 3 {
		t.Errorf("ByStatus totals %d, want 3", total)
	}
}
