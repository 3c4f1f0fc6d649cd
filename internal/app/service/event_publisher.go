package service

import (
	"context"
	"encoding/json"
	"fmt"

	"smartpg/internal/domain/model"
	"smartpg/internal/platform/config"

	"github.com/redis/go-redis/v9"
)

// EventPublisher pushes domain events onto the notification queue consumed
// by the notification worker. Publishing is best-effort: callers log and
// move on when it fails.
type EventPublisher interface {
	Publish(ctx context.Context, event model.Event) error
}

type redisEventPublisher struct {
	rdb *redis.Client
}

func NewRedisEventPublisher(rdb *redis.Client) EventPublisher {
	return &redisEventPublisher{rdb: rdb}
}

func (p *redisEventPublisher) Publish(ctx context.Context, event model.Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("redisEventPublisher.Publish: marshal: %w", err)
	}
	if err := p.rdb.LPush(ctx, config.AppConfig.NotifyQueueName, payload).Err(); err != nil {
		return fmt.Errorf("redisEventPublisher.Publish: %w", err)
	}
	return nil
}
