package di

import (
	"context"
	"fmt"
	"time"

	"AgriPulse/internal/domain/models"
	"AgriPulse/internal/domain/repository"
	"AgriPulse/internal/engine"
	"AgriPulse/internal/handler/api"
	internalrepo "AgriPulse/internal/repository"
	"AgriPulse/internal/usecase"
	"AgriPulse/pkg/cache"
	pkgch "AgriPulse/pkg/clickhouse"
	"AgriPulse/pkg/config"
	xhttp "AgriPulse/pkg/http"
	pkgkafka "AgriPulse/pkg/kafka"
	applogger "AgriPulse/pkg/logger"
	"AgriPulse/pkg/metrics"
	"AgriPulse/pkg/server"
)

// ProvideLogger creates the application logger.
func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	return applogger.New(&applogger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() repository.Metrics {
	return metrics.New()
}

// ProvideClickHouseClient creates a ClickHouse client and initializes the
// schema. Readings land in ClickHouse on both backends: directly when the
// backend is clickhouse, through the consumer when it is kafka.
func ProvideClickHouseClient(cfg *config.Config) (*pkgch.Client, error) {
	client, err := pkgch.NewClient(
		pkgch.WithHost(cfg.ClickHouse.Host),
		pkgch.WithPort(cfg.ClickHouse.Port),
		pkgch.WithDatabase(cfg.ClickHouse.Database),
		pkgch.WithCredentials(cfg.ClickHouse.User, cfg.ClickHouse.Password),
		pkgch.WithMaxConnections(10, 5),
		pkgch.WithTimeouts(cfg.ClickHouse.DialTimeout, cfg.ClickHouse.ReadTimeout, cfg.ClickHouse.WriteTimeout),
	)
	if err != nil {
		return nil, fmt.Errorf("clickhouse client: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db := cfg.ClickHouse.Database
	if err := client.InitSchema(ctx, []string{
		fmt.Sprintf("CREATE DATABASE IF NOT EXISTS %s", db),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s.sensor_readings (
			sensor_id String,
			value Float64,
			unit String,
			quality_score UInt8,
			battery_level UInt8,
			signal_strength Int16,
			recorded_at DateTime,
			status LowCardinality(String)
		) ENGINE=MergeTree ORDER BY (sensor_id, recorded_at)`, db),
	}); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("clickhouse schema: %w", err)
	}

	return client, nil
}

// ProvideKafkaProducer creates a Kafka producer when the backend is kafka.
func ProvideKafkaProducer(cfg *config.Config) (*pkgkafka.Producer, error) {
	if cfg.Backend.Type != "kafka" {
		return nil, nil
	}

	producer, err := pkgkafka.NewProducer(
		pkgkafka.WithBrokers(cfg.Kafka.Brokers),
		pkgkafka.WithCompression(cfg.Kafka.Compression),
		pkgkafka.WithRequiredAcks(cfg.Kafka.RequiredAcks),
		pkgkafka.WithBatchSize(cfg.Kafka.Producer.BatchSize),
		pkgkafka.WithBatchTimeout(cfg.Kafka.Producer.Linger),
		pkgkafka.WithTimeouts(cfg.Kafka.Producer.WriteTimeout, cfg.Kafka.Producer.ReadTimeout),
		pkgkafka.WithMaxAttempts(cfg.Kafka.Producer.MaxAttempts),
		pkgkafka.WithHashByKey(true),
	)
	if err != nil {
		return nil, fmt.Errorf("kafka producer: %w", err)
	}
	return producer, nil
}

// ProvideKafkaConsumer creates a Kafka consumer when the backend is kafka.
// The consumer ingests published readings back into ClickHouse.
func ProvideKafkaConsumer(cfg *config.Config) (*pkgkafka.Consumer, error) {
	if cfg.Backend.Type != "kafka" {
		return nil, nil
	}

	consumer, err := pkgkafka.NewConsumer(
		pkgkafka.WithConsumerBrokers(cfg.Kafka.Brokers),
		pkgkafka.WithConsumerGroupID(cfg.Kafka.Consumer.GroupID),
		pkgkafka.WithConsumerWorkers(cfg.Kafka.Consumer.Workers),
		pkgkafka.WithConsumerBufferSize(cfg.Kafka.Consumer.BufferSize),
		pkgkafka.WithConsumerRetry(cfg.Kafka.Consumer.RetryMax, cfg.Kafka.Consumer.BackoffMin, cfg.Kafka.Consumer.BackoffMax),
		pkgkafka.WithConsumerFetch(cfg.Kafka.Consumer.MinBytes, cfg.Kafka.Consumer.MaxBytes),
	)
	if err != nil {
		return nil, fmt.Errorf("kafka consumer: %w", err)
	}
	return consumer, nil
}

// ProvideReadingStorage creates the ClickHouse reading store, nil when no
// ClickHouse client is configured.
func ProvideReadingStorage(chClient *pkgch.Client, cfg *config.Config) repository.Storage {
	if chClient == nil {
		return nil
	}
	return internalrepo.NewClickHouseReadingStore(chClient.DB(), cfg.ClickHouse.Database+".sensor_readings")
}

// ProvideReadingPublisher creates the Kafka reading publisher, nil when the
// backend is not kafka.
func ProvideReadingPublisher(producer *pkgkafka.Producer, cfg *config.Config) repository.Publisher {
	if producer == nil {
		return nil
	}
	return internalrepo.NewKafkaReadingPublisher(producer, cfg.Kafka.Topic)
}

// ProvideSensorRegistry creates the sensor registry from the configured
// source.
func ProvideSensorRegistry(chClient *pkgch.Client, cfg *config.Config) (repository.Registry, error) {
	switch cfg.Registry.Source {
	case "clickhouse":
		if chClient == nil {
			return nil, fmt.Errorf("registry source is clickhouse but no client configured")
		}
		return internalrepo.NewClickHouseSensorRegistry(chClient.DB(), cfg.ClickHouse.Database+"."+cfg.Registry.Table), nil
	default:
		sensors := make([]models.Sensor, len(cfg.Registry.Sensors))
		for i, s := range cfg.Registry.Sensors {
			sensors[i] = models.Sensor{ID: s.ID, Type: s.Type, Name: s.Name, Location: s.Location}
		}
		return internalrepo.NewStaticRegistry(sensors), nil
	}
}

// ProvideLatestStore creates the Redis latest-reading store, nil when Redis
// is disabled.
func ProvideLatestStore(cfg *config.Config) (repository.LatestStore, error) {
	if !cfg.Redis.Enabled {
		return nil, nil
	}

	redis, err := cache.NewRedis(
		cache.WithAddr(fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port)),
		cache.WithPassword(cfg.Redis.Password),
		cache.WithDB(cfg.Redis.DB),
	)
	if err != nil {
		return nil, fmt.Errorf("redis: %w", err)
	}
	return internalrepo.NewRedisLatestStore(redis, ""), nil
}

// ProvideEngine creates the synthesis engine from generator configuration.
func ProvideEngine(cfg *config.Config) *engine.Engine {
	opts := []engine.Option{
		engine.WithJitter(cfg.JitterEnabled()),
	}
	if cfg.Generator.Seed != 0 {
		opts = append(opts, engine.WithSeed(cfg.Generator.Seed))
	}

	if len(cfg.Generator.Profiles) > 0 {
		profiles := engine.DefaultProfiles()
		for name, p := range cfg.Generator.Profiles {
			profiles[name] = engine.TypeProfile{
				Min:         p.Min,
				Max:         p.Max,
				CriticalMin: p.CriticalMin,
				CriticalMax: p.CriticalMax,
				Unit:        p.Unit,
				Jitter:      p.Jitter,
			}
		}
		opts = append(opts, engine.WithProfiles(profiles))
	}

	if len(cfg.Generator.Scenarios) > 0 {
		weights := make([]engine.ScenarioWeight, len(cfg.Generator.Scenarios))
		for i, w := range cfg.Generator.Scenarios {
			weights[i] = engine.ScenarioWeight{Name: models.Scenario(w.Name), Weight: w.Weight}
		}
		opts = append(opts, engine.WithWeights(weights))
	}

	te := cfg.Generator.TimeEffects
	opts = append(opts, engine.WithTimeEffects(engine.TimeEffects{
		TempMinHour:  te.TempMinHour,
		TempMaxHour:  te.TempMaxHour,
		TempSwing:    te.TempSwing,
		SunriseHour:  te.SunriseHour,
		SunsetHour:   te.SunsetHour,
		MaxIntensity: te.MaxIntensity,
	}))

	return engine.New(opts...)
}

// ProvideReadingProcessor creates the reading processor use case.
func ProvideReadingProcessor(
	pub repository.Publisher,
	store repository.Storage,
	m repository.Metrics,
	cfg *config.Config,
) *usecase.ReadingProcessor {
	return usecase.NewReadingProcessor(pub, store, m, cfg.Backend.Type)
}

// ProvideReadingGenerator creates the round-driving use case.
func ProvideReadingGenerator(
	registry repository.Registry,
	eng *engine.Engine,
	processor *usecase.ReadingProcessor,
	latest repository.LatestStore,
	m repository.Metrics,
	logger *applogger.Logger,
) *usecase.ReadingGenerator {
	return usecase.NewReadingGenerator(registry, eng, processor, latest, m, logger)
}

// ProvideKafkaReadingsHandler registers the ingest handler for the readings
// topic.
func ProvideKafkaReadingsHandler(store repository.Storage, m repository.Metrics, cfg *config.Config) *usecase.KafkaReadingsHandler {
	return usecase.NewKafkaReadingsHandler(cfg.Kafka.Topic, store, m)
}

// ProvideReadingsHandler creates the Echo read API handler.
func ProvideReadingsHandler(
	logger *applogger.Logger,
	gen *usecase.ReadingGenerator,
	latest repository.LatestStore,
	store repository.Storage,
) xhttp.Handler {
	return api.NewReadingsEchoHandler(logger, gen, latest, store)
}

// ProvideApp creates the application server.
func ProvideApp(
	cfg *config.Config,
	logger *applogger.Logger,
	gen *usecase.ReadingGenerator,
	processor *usecase.ReadingProcessor,
	consumer *pkgkafka.Consumer,
	kh *usecase.KafkaReadingsHandler,
	chClient *pkgch.Client,
	handler xhttp.Handler,
) *server.App {
	var mh pkgkafka.MessageHandler
	if consumer != nil && kh != nil {
		mh = kh
	}
	app := server.New(cfg, logger, gen, processor, consumer, mh, chClient)
	app.SetHTTPHandler(handler)
	return app
}
