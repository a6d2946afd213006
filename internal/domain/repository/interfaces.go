package repository

import (
	"context"

	"TrendPost/internal/domain/models"
)

// Publisher emits schedule events to downstream consumers (dashboard,
// orchestration). Implementations must be safe for concurrent use.
type Publisher interface {
	Publish(ctx context.Context, ev *models.ScheduleEvent) error
	PublishBatch(ctx context.Context, evs []*models.ScheduleEvent) error
	Close() error
}

// Metrics records operational metrics.
type Metrics interface {
	RecordRecommendation(platform, outcome, confidence string)
	RecordError(kind string)
	RecordLastInterest(platform string, value float64)
	RecordLatency(op string, seconds float64)
	RecordCacheLookup(hit bool)
}
