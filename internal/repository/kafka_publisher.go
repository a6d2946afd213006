package repository

import (
	"context"
	"fmt"

	"TrendPost/internal/domain/models"
	"TrendPost/internal/domain/repository"
	pkgkafka "TrendPost/pkg/kafka"
)

// KafkaPublisher implements Publisher on top of a Kafka producer. Events are
// keyed by platform so consumers see per-platform ordering.
type KafkaPublisher struct {
	producer *pkgkafka.Producer
	topic    string
}

// NewKafkaPublisher creates a Kafka-backed schedule event publisher.
func NewKafkaPublisher(producer *pkgkafka.Producer, topic string) repository.Publisher {
	return &KafkaPublisher{producer: producer, topic: topic}
}

func (p *KafkaPublisher) Publish(ctx context.Context, ev *models.ScheduleEvent) error {
	if ev == nil {
		return nil
	}
	if err := p.producer.Publish(ctx, p.topic, []byte(ev.Platform), ev); err != nil {
		return fmt.Errorf("publish schedule event: %w", err)
	}
	return nil
}

func (p *KafkaPublisher) PublishBatch(ctx context.Context, evs []*models.ScheduleEvent) error {
	if len(evs) == 0 {
		return nil
	}
	msgs := make([]pkgkafka.Message, 0, len(evs))
	for _, ev := range evs {
		if ev == nil {
			continue
		}
		msgs = append(msgs, pkgkafka.Message{Key: []byte(ev.Platform), Value: ev})
	}
	if err := p.producer.PublishBatch(ctx, p.topic, msgs); err != nil {
		return fmt.Errorf("publish schedule events: %w", err)
	}
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.producer.Close()
}
