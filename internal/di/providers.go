package di

import (
	"fmt"

	"TrendPost/internal/domain/repository"
	"TrendPost/internal/handler/api"
	internalrepo "TrendPost/internal/repository"
	"TrendPost/internal/services/trend"
	"TrendPost/internal/usecase"
	"TrendPost/pkg/cache"
	"TrendPost/pkg/config"
	pkgkafka "TrendPost/pkg/kafka"
	"TrendPost/pkg/logger"
	"TrendPost/pkg/metrics"
	"TrendPost/pkg/server"
)

// ProvideLogger creates the application logger.
func ProvideLogger(cfg *config.Config) (*logger.Logger, error) {
	l, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l, nil
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics() repository.Metrics {
	return metrics.New()
}

// ProvideEngine builds the trend engine from configuration.
func ProvideEngine(cfg *config.Config) *trend.Engine {
	return trend.NewEngine(trend.Config{
		Window:            cfg.Engine.Window,
		RiseThreshold:     cfg.Engine.RiseThreshold,
		DelayMin:          cfg.Engine.DelayMin,
		DelayMax:          cfg.Engine.DelayMax,
		BestTimeOverrides: cfg.Engine.BestTimes,
	})
}

// ProvideCache creates the recommendation cache. Returns nil when caching is
// disabled; a Redis host upgrades the in-process cache to a layered one.
func ProvideCache(cfg *config.Config) (cache.Service, error) {
	if !cfg.Cache.Enabled {
		return nil, nil
	}
	if cfg.Cache.Redis.Host == "" {
		return cache.NewMemoryCache(), nil
	}

	redisCache, err := cache.NewRedisCache(
		cache.WithRedisHost(cfg.Cache.Redis.Host),
		cache.WithRedisPort(cfg.Cache.Redis.Port),
		cache.WithRedisPassword(cfg.Cache.Redis.Password),
		cache.WithRedisDB(cfg.Cache.Redis.DB),
	)
	if err != nil {
		return nil, fmt.Errorf("redis cache: %w", err)
	}
	return cache.NewLayeredCache(redisCache), nil
}

// ProvideKafkaProducer creates a Kafka producer, or nil when no brokers are
// configured.
func ProvideKafkaProducer(cfg *config.Config) (*pkgkafka.Producer, error) {
	if len(cfg.Kafka.Brokers) == 0 {
		return nil, nil
	}
	producer, err := pkgkafka.NewProducer(
		pkgkafka.WithBrokers(cfg.Kafka.Brokers),
		pkgkafka.WithCompression(cfg.Kafka.Compression),
		pkgkafka.WithRequiredAcks(cfg.Kafka.RequiredAcks),
		pkgkafka.WithBatchSize(cfg.Kafka.Producer.BatchSize),
		pkgkafka.WithBatchBytes(cfg.Kafka.Producer.BatchBytes),
		pkgkafka.WithBatchTimeout(cfg.Kafka.Producer.Linger),
		pkgkafka.WithTimeouts(cfg.Kafka.Producer.WriteTimeout, cfg.Kafka.Producer.ReadTimeout),
		pkgkafka.WithMaxAttempts(cfg.Kafka.Producer.MaxAttempts),
		pkgkafka.WithAsync(cfg.Kafka.Producer.Async),
		pkgkafka.WithHashByKey(true),
	)
	if err != nil {
		return nil, fmt.Errorf("kafka producer: %w", err)
	}
	return producer, nil
}

// ProvidePublisher creates the schedule event publisher, or nil when events
// are not published anywhere.
func ProvidePublisher(producer *pkgkafka.Producer, cfg *config.Config) repository.Publisher {
	if producer == nil {
		return nil
	}
	return internalrepo.NewKafkaPublisher(producer, cfg.Kafka.Topic)
}

// ProvideScheduler creates the scheduling use case.
func ProvideScheduler(
	engine *trend.Engine,
	m repository.Metrics,
	c cache.Service,
	pub repository.Publisher,
	l *logger.Logger,
	cfg *config.Config,
) *usecase.Scheduler {
	s := usecase.NewScheduler(engine, m, c, pub, cfg.Engine.CacheTTL)
	s.SetLogger(l)
	return s
}

// ProvideScheduleHandler creates the HTTP handler.
func ProvideScheduleHandler(l *logger.Logger, s *usecase.Scheduler) *api.ScheduleEchoHandler {
	return api.NewScheduleEchoHandler(l, s)
}

// ProvideApp creates the application server.
func ProvideApp(
	cfg *config.Config,
	l *logger.Logger,
	h *api.ScheduleEchoHandler,
	pub repository.Publisher,
	c cache.Service,
) *server.App {
	return server.New(cfg, l, h, pub, c)
}
