package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"AgriPulse/internal/domain/models"
	drepo "AgriPulse/internal/domain/repository"
	"AgriPulse/internal/engine"
	applogger "AgriPulse/pkg/logger"
)

// ReadingGenerator drives full fleet rounds: pick a scenario, synthesize one
// reading per active sensor, hand each to the processor. The mutex serializes
// rounds against status reports; the engine itself is not safe for
// concurrent use.
type ReadingGenerator struct {
	mu        sync.Mutex
	registry  drepo.Registry
	eng       *engine.Engine
	processor *ReadingProcessor
	latest    drepo.LatestStore
	metrics   drepo.Metrics
	logger    *applogger.Logger
}

// NewReadingGenerator creates a new ReadingGenerator instance.
func NewReadingGenerator(
	registry drepo.Registry,
	eng *engine.Engine,
	processor *ReadingProcessor,
	latest drepo.LatestStore,
	metrics drepo.Metrics,
	logger *applogger.Logger,
) *ReadingGenerator {
	return &ReadingGenerator{
		registry:  registry,
		eng:       eng,
		processor: processor,
		latest:    latest,
		metrics:   metrics,
		logger:    logger,
	}
}

// RunRound runs one full generation round. A sink failure for one sensor is
// logged and skipped so the rest of the fleet still reports; an engine
// failure aborts the round because it means misconfiguration.
func (g *ReadingGenerator) RunRound(ctx context.Context) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	start := time.Now()

	sensors, err := g.registry.ActiveSensors(ctx)
	if err != nil {
		g.metrics.RecordError("registry")
		return fmt.Errorf("load active sensors: %w", err)
	}
	if len(sensors) == 0 {
		g.logger.Warn("no active sensors, skipping round")
		return nil
	}

	scenario := g.eng.BeginRound()
	g.metrics.RecordScenario(scenario)

	stored := 0
	for _, s := range sensors {
		r, err := g.eng.Generate(s)
		if err != nil {
			g.metrics.RecordError("generate")
			return fmt.Errorf("generate reading for sensor %s: %w", s.ID, err)
		}

		if err := g.processor.Process(ctx, r); err != nil {
			g.logger.Error("failed to deliver reading",
				applogger.String("sensor_id", s.ID),
				applogger.Error(err))
			continue
		}
		stored++

		g.metrics.RecordReading(s.Type, r.Status)
		g.metrics.RecordValue(s.ID, s.Type, r.Value)
		g.metrics.RecordBattery(s.ID, r.BatteryLevel)

		// Latest cache is best-effort; the durable path already succeeded.
		if g.latest != nil {
			if err := g.latest.SetLatest(ctx, s, r); err != nil {
				g.logger.Warn("failed to update latest cache",
					applogger.String("sensor_id", s.ID),
					applogger.Error(err))
			}
		}
	}

	g.metrics.RecordLatency("round", time.Since(start).Seconds())
	g.logger.Info("generation round complete",
		applogger.String("scenario", string(scenario)),
		applogger.Int("sensors", len(sensors)),
		applogger.Int("delivered", stored),
		applogger.Duration("took", time.Since(start)))

	return nil
}

// ReportStatus returns cumulative generation counters plus the stored record
// count when a storage backend is attached.
func (g *ReadingGenerator) ReportStatus(ctx context.Context) models.StatusSummary {
	g.mu.Lock()
	summary := g.eng.ReportStatus()
	g.mu.Unlock()

	if store := g.processor.Storage(); store != nil {
		if n, err := store.Count(ctx); err != nil {
			g.logger.Warn("failed to count stored records", applogger.Error(err))
		} else {
			summary.StoredRecords = n
		}
	}
	return summary
}

// ScenarioInfo exposes the engine's active scenario for the read API.
func (g *ReadingGenerator) ScenarioInfo() models.ScenarioInfo {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.eng.ScenarioInfo()
}
