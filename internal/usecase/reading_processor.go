package usecase

import (
	"context"
	"fmt"
	"time"

	"AgriPulse/internal/domain/models"
	drepo "AgriPulse/internal/domain/repository"
)

// ReadingProcessor routes finished readings to the configured backend.
type ReadingProcessor struct {
	pub     drepo.Publisher
	store   drepo.Storage
	metrics drepo.Metrics
	backend string
}

// NewReadingProcessor creates a new ReadingProcessor instance.
func NewReadingProcessor(
	pub drepo.Publisher,
	store drepo.Storage,
	metrics drepo.Metrics,
	backend string,
) *ReadingProcessor {
	return &ReadingProcessor{
		pub:     pub,
		store:   store,
		metrics: metrics,
		backend: backend,
	}
}

// Process routes a single reading to the configured backend.
func (p *ReadingProcessor) Process(ctx context.Context, r *models.Reading) error {
	if r == nil {
		return fmt.Errorf("reading is nil")
	}

	start := time.Now()
	var err error

	switch p.backend {
	case "kafka":
		err = p.pub.Publish(ctx, r)
	case "clickhouse":
		err = p.store.Store(ctx, r)
	default:
		err = fmt.Errorf("unknown backend: %s", p.backend)
	}

	if err != nil {
		p.metrics.RecordError("process")
		return fmt.Errorf("process reading: %w", err)
	}

	p.metrics.RecordLatency("process", time.Since(start).Seconds())
	return nil
}

// ProcessBatch routes a full round of readings in one call.
func (p *ReadingProcessor) ProcessBatch(ctx context.Context, readings []*models.Reading) error {
	if len(readings) == 0 {
		return nil
	}

	start := time.Now()
	var err error

	switch p.backend {
	case "kafka":
		err = p.pub.PublishBatch(ctx, readings)
	case "clickhouse":
		err = p.store.StoreBatch(ctx, readings)
	default:
		err = fmt.Errorf("unknown backend: %s", p.backend)
	}

	if err != nil {
		p.metrics.RecordError("process_batch")
		return fmt.Errorf("process batch: %w", err)
	}

	p.metrics.RecordLatency("process_batch", time.Since(start).Seconds())
	return nil
}

// Storage returns the underlying store, nil when backend is kafka only.
func (p *ReadingProcessor) Storage() drepo.Storage {
	return p.store
}

// Close closes underlying resources if available.
func (p *ReadingProcessor) Close() {
	if p.pub != nil {
		_ = p.pub.Close()
	}
	if p.store != nil {
		_ = p.store.Close()
	}
}
