package usecase

import (
	"context"
	"encoding/json"
	"time"

	"AgriPulse/internal/domain/models"
	domrepo "AgriPulse/internal/domain/repository"
	pkgkafka "AgriPulse/pkg/kafka"
)

// KafkaReadingsHandler consumes reading messages and writes them to storage.
type KafkaReadingsHandler struct {
	topic   string
	storage domrepo.Storage
	metrics domrepo.Metrics
}

func NewKafkaReadingsHandler(topic string, storage domrepo.Storage, metrics domrepo.Metrics) *KafkaReadingsHandler {
	return &KafkaReadingsHandler{topic: topic, storage: storage, metrics: metrics}
}

func (h *KafkaReadingsHandler) Topic() string { return h.topic }

func (h *KafkaReadingsHandler) Handle(ctx context.Context, b []byte) error {
	var r models.Reading
	if err := json.Unmarshal(b, &r); err != nil {
		h.metrics.RecordError("consumer_unmarshal")
		return err
	}

	// E2E latency from generation time to ingest (approx)
	h.metrics.RecordLatency("ingest_e2e", time.Since(r.RecordedAt).Seconds())

	start := time.Now()
	err := h.storage.Store(ctx, &r)
	h.metrics.RecordLatency("ch_insert", time.Since(start).Seconds())
	if err != nil {
		h.metrics.RecordError("consumer_store")
		return err
	}
	return nil
}

var _ pkgkafka.MessageHandler = (*KafkaReadingsHandler)(nil)
