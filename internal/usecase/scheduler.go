package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"TrendPost/internal/domain/models"
	domrepo "TrendPost/internal/domain/repository"
	"TrendPost/internal/services/trend"
	"TrendPost/pkg/cache"
	xlogger "TrendPost/pkg/logger"
)

// Scheduler orchestrates the trend engine: caching of computed
// recommendations, metrics, and publication of schedule events. The engine
// itself stays pure; everything clock- or I/O-related lives here.
type Scheduler struct {
	engine   *trend.Engine
	metrics  domrepo.Metrics
	cache    cache.Service // nil disables caching
	pub      domrepo.Publisher
	logger   *xlogger.Logger
	cacheTTL time.Duration
}

func NewScheduler(engine *trend.Engine, metrics domrepo.Metrics, c cache.Service, pub domrepo.Publisher, cacheTTL time.Duration) *Scheduler {
	if cacheTTL <= 0 {
		cacheTTL = 10 * time.Minute
	}
	return &Scheduler{
		engine:   engine,
		metrics:  metrics,
		cache:    c,
		pub:      pub,
		cacheTTL: cacheTTL,
	}
}

// SetLogger attaches a structured logger.
func (s *Scheduler) SetLogger(l *xlogger.Logger) { s.logger = l }

// Recommend runs one analysis and wraps the result in a ScheduleEvent.
// The recommendation itself is cached; the event envelope (ID, GeneratedAt)
// is fresh per call.
func (s *Scheduler) Recommend(ctx context.Context, req *models.RecommendRequest) (*models.ScheduleEvent, error) {
	start := time.Now()
	platform := strings.ToLower(req.Platform)

	rec, cached, err := s.recommendation(ctx, req, platform)
	if err != nil {
		s.metrics.RecordError("validation")
		return nil, err
	}

	s.metrics.RecordRecommendation(platform, string(rec.Outcome), string(rec.Confidence))
	s.metrics.RecordLastInterest(platform, rec.LastValue)
	s.metrics.RecordLatency("recommend", time.Since(start).Seconds())

	ev := s.wrap(platform, req.Keyword, rec)
	if s.pub != nil && !cached {
		if err := s.pub.Publish(ctx, ev); err != nil {
			// Publication is best-effort; the caller still gets the result.
			s.metrics.RecordError("publish")
			if s.logger != nil {
				s.logger.Warn("schedule event publish failed", xlogger.Error(err))
			}
		}
	}
	return ev, nil
}

// RecommendBatch analyzes several series in one call. Items that fail
// validation are reported by index; the rest still produce events, which are
// published as a single batch.
func (s *Scheduler) RecommendBatch(ctx context.Context, req *models.RecommendBatchRequest) (*models.BatchRecommendation, error) {
	start := time.Now()
	result := &models.BatchRecommendation{
		Events: make([]*models.ScheduleEvent, 0, len(req.Items)),
	}

	var publishable []*models.ScheduleEvent
	for i := range req.Items {
		item := &req.Items[i]
		platform := strings.ToLower(item.Platform)

		rec, cached, err := s.recommendation(ctx, item, platform)
		if err != nil {
			s.metrics.RecordError("validation")
			if result.Errors == nil {
				result.Errors = make(map[int]string)
			}
			result.Errors[i] = err.Error()
			continue
		}

		s.metrics.RecordRecommendation(platform, string(rec.Outcome), string(rec.Confidence))
		s.metrics.RecordLastInterest(platform, rec.LastValue)

		ev := s.wrap(platform, item.Keyword, rec)
		result.Events = append(result.Events, ev)
		if !cached {
			publishable = append(publishable, ev)
		}
	}

	if s.pub != nil && len(publishable) > 0 {
		if err := s.pub.PublishBatch(ctx, publishable); err != nil {
			s.metrics.RecordError("publish")
			if s.logger != nil {
				s.logger.Warn("schedule event batch publish failed", xlogger.Error(err))
			}
		}
	}

	s.metrics.RecordLatency("recommend_batch", time.Since(start).Seconds())
	return result, nil
}

// BestTimes returns the fallback posting times for a platform.
func (s *Scheduler) BestTimes(platform string) []string {
	return s.engine.TimeTable().BestTimes(platform)
}

func (s *Scheduler) recommendation(ctx context.Context, req *models.RecommendRequest, platform string) (models.Recommendation, bool, error) {
	key := s.cacheKey(req, platform)

	if s.cache != nil {
		var rec models.Recommendation
		if err := s.cache.Get(ctx, key, &rec); err == nil {
			s.metrics.RecordCacheLookup(true)
			return rec, true, nil
		} else if !errors.Is(err, cache.ErrCacheMiss) {
			s.metrics.RecordError("cache")
			if s.logger != nil {
				s.logger.Warn("recommendation cache get failed", xlogger.Error(err))
			}
		}
		s.metrics.RecordCacheLookup(false)
	}

	rec, err := s.engine.Recommend(req.Series, platform, req.Window)
	if err != nil {
		return models.Recommendation{}, false, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, rec, s.cacheTTL); err != nil {
			s.metrics.RecordError("cache")
		}
	}
	return rec, false, nil
}

func (s *Scheduler) wrap(platform, keyword string, rec models.Recommendation) *models.ScheduleEvent {
	return &models.ScheduleEvent{
		ID:             uuid.NewString(),
		Platform:       platform,
		Keyword:        keyword,
		GeneratedAt:    time.Now().UTC(),
		Recommendation: rec,
	}
}

func (s *Scheduler) cacheKey(req *models.RecommendRequest, platform string) string {
	fields := make(map[string]string, len(req.Series)+2)
	fields["platform"] = platform
	fields["window"] = strconv.Itoa(req.Window)
	for k, v := range req.Series {
		fields["p:"+k] = fmt.Sprintf("%v", v)
	}
	return cache.GenerateKey("rec", cache.HashFields(fields))
}
