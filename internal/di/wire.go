//go:build wireinject
// +build wireinject

package di

import (
	"TrendPost/pkg/config"
	"TrendPost/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		ProvideLogger,
		ProvideMetrics,

		// Domain engine
		ProvideEngine,

		// Infrastructure clients
		ProvideCache,
		ProvideKafkaProducer,
		ProvidePublisher,

		// Use cases
		ProvideScheduler,

		// HTTP surface
		ProvideScheduleHandler,

		// Application server
		ProvideApp,
	)
	return &server.App{}, nil
}
