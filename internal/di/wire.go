//go:build wireinject
// +build wireinject

package di

import (
	"AgriPulse/pkg/config"
	"AgriPulse/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		ProvideLogger,
		ProvideMetrics,

		// Infrastructure clients
		ProvideClickHouseClient,
		ProvideKafkaProducer,
		ProvideKafkaConsumer,

		// Repositories
		ProvideReadingStorage,
		ProvideReadingPublisher,
		ProvideSensorRegistry,
		ProvideLatestStore,

		// Use cases
		ProvideEngine,
		ProvideReadingProcessor,
		ProvideReadingGenerator,
		ProvideKafkaReadingsHandler,

		// HTTP API
		ProvideReadingsHandler,

		// Application server
		ProvideApp,
	)
	return &server.App{}, nil
}
