package worker

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"smartpg/internal/domain/model"
	"smartpg/internal/platform/config"
	"smartpg/internal/platform/metrics"

	"github.com/redis/go-redis/v9"
)

// NotificationWorker drains the notification queue and delivers each event
// to the configured webhook, or just logs it when none is configured.
// Delivery is one-shot: a failed dispatch is logged and dropped, matching
// the no-retry policy everywhere else in the system.
type NotificationWorker struct {
	rdb        *redis.Client
	httpClient *http.Client
}

func NewNotificationWorker(rdb *redis.Client) *NotificationWorker {
	return &NotificationWorker{
		rdb:        rdb,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (w *NotificationWorker) Start(ctx context.Context) {
	log.Println("Notification worker started, listening to queue:", config.AppConfig.NotifyQueueName)
	for {
		select {
		case <-ctx.Done():
			log.Println("Notification worker stopping...")
			return
		default:
			res, err := w.rdb.BRPop(ctx, 0*time.Second, config.AppConfig.NotifyQueueName).Result()
			if err != nil {
				if errors.Is(err, redis.Nil) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
					log.Printf("Worker BRPop exiting or timed out: %v", err)
					time.Sleep(1 * time.Second)
					continue
				}
				log.Printf("ERROR: Failed to BRPop from queue '%s': %v", config.AppConfig.NotifyQueueName, err)
				time.Sleep(5 * time.Second)
				continue
			}

			// res is [queueName, payload]
			if len(res) < 2 || res[1] == "" {
				log.Println("WARN: BRPop returned empty payload.")
				continue
			}

			var event model.Event
			if err := json.Unmarshal([]byte(res[1]), &event); err != nil {
				log.Printf("ERROR: Dropping malformed notification payload: %v", err)
				continue
			}
			w.dispatch(ctx, event)
		}
	}
}

func (w *NotificationWorker) dispatch(ctx context.Context, event model.Event) {
	webhookURL := config.AppConfig.NotifyWebhookURL
	if webhookURL == "" {
		log.Printf("NOTIFY [%s] %s (%s)", event.Type, event.Summary, event.EntityID)
		metrics.NotificationsDispatchedTotal.Inc()
		return
	}

	payload, err := json.Marshal(event)
	if err != nil {
		log.Printf("ERROR: Failed to marshal event %s: %v", event.ID, err)
		return
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, webhookURL, bytes.NewReader(payload))
	if err != nil {
		log.Printf("ERROR: Failed to build webhook request for event %s: %v", event.ID, err)
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.httpClient.Do(req)
	if err != nil {
		log.Printf("ERROR: Webhook dispatch failed for event %s: %v", event.ID, err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Printf("ERROR: Webhook returned %d for event %s", resp.StatusCode, event.ID)
		return
	}
	metrics.NotificationsDispatchedTotal.Inc()
}
