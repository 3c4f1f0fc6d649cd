package service

import (
	"context"
	"log"
	"strings"
	"time"

	"smartpg/internal/common"
	"smartpg/internal/domain/model"
	"smartpg/internal/platform/config"
	"smartpg/internal/platform/metrics"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	openai "github.com/sashabaranov/go-openai"
	"github.com/sony/gobreaker"
)

// chatSystemInstruction is the fixed persona sent with every completion
// request. Residents' passwords and other credentials are explicitly out of
// bounds for the assistant.
const chatSystemInstruction = `You are the "Smart PG Assistant", a friendly and helpful AI virtual assistant for a Paying Guest (PG) management system.
Your goal is to help residents and owners with their daily queries and operational concerns, providing full information about rules, facilities, timings, policies, and procedures. You may answer any question relevant to the PG except you must never request, reveal, or handle passwords or other sensitive credentials.

Key Information for you to use:
- To raise a complaint: Go to the 'Complaints' tab and click 'Raise New Complaint'.
- PG Common Rules: No loud music after 10 PM, visitors allowed till 8 PM, keep the common areas clean.
- Facilities: 24/7 Water, Wi-Fi included, Laundry services on weekends.
- Food Timing: Breakfast (8-9 AM), Lunch (1-2 PM), Dinner (8-9 PM).
- Daily Menu: if asked about today's specific dishes, advise the user to check the notice board or contact the Warden/Admin, since real-time menus are not available to you.
- If a resident asks about the status of their complaint, tell them they can check it in the 'Complaints' dashboard.

Be concise, helpful, and professional. If you don't know something specific to this PG's real-time operations, suggest they contact the Warden/Admin.`

// CompletionFunc forwards a system instruction and one user prompt to a
// text-completion service and returns the plain-text reply.
type CompletionFunc func(ctx context.Context, systemInstruction, prompt string) (string, error)

type ChatService struct {
	rdb      *redis.Client
	complete CompletionFunc
	breaker  *gobreaker.CircuitBreaker
	lockTTL  time.Duration
}

// NewChatService wires the assistant proxy. rdb may be nil, in which case
// the one-outstanding-request lock is not enforced.
func NewChatService(rdb *redis.Client, complete CompletionFunc) *ChatService {
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "chat-completion",
		MaxRequests: 3,
		Interval:    10 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 3
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Printf("Circuit breaker %s: %s -> %s", name, from, to)
		},
	})
	return &ChatService{
		rdb:      rdb,
		complete: complete,
		breaker:  breaker,
		lockTTL:  time.Duration(config.AppConfig.ChatLockTTLSeconds) * time.Second,
	}
}

// OpenAICompletion is the production CompletionFunc backed by the
// configured completion service.
func OpenAICompletion() CompletionFunc {
	client := openai.NewClient(config.AppConfig.ChatAPIKey)
	return func(ctx context.Context, systemInstruction, prompt string) (string, error) {
		resp, err := client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model:       config.AppConfig.ChatModel,
			Temperature: 0.7,
			Messages: []openai.ChatCompletionMessage{
				{Role: openai.ChatMessageRoleSystem, Content: systemInstruction},
				{Role: openai.ChatMessageRoleUser, Content: prompt},
			},
		})
		if err != nil {
			return "", err
		}
		if len(resp.Choices) == 0 {
			return "", nil
		}
		return resp.Choices[0].Message.Content, nil
	}
}

// Reply forwards the latest user turn to the completion service. At most
// one request per user may be outstanding; a second one is rejected with
// common.ErrBusy. Completion failures degrade to the fallback apology, never to an
// error.
func (s *ChatService) Reply(ctx context.Context, userID, message string) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", common.Errorf("message is required: %w", common.ErrBadRequest)
	}

	if s.rdb != nil {
		release, err := s.acquireLock(ctx, userID)
		if err != nil {
			return "", err
		}
		defer release()
	}

	reply, err := s.breaker.Execute(func() (interface{}, error) {
		return s.complete(ctx, chatSystemInstruction, message)
	})
	if err != nil {
		log.Printf("WARN: chat completion failed for user %s: %v", userID, err)
		metrics.ChatFallbacksTotal.Inc()
		return model.ChatFallbackReply, nil
	}

	text, _ := reply.(string)
	if text == "" {
		return model.ChatEmptyReply, nil
	}
	return text, nil
}

func (s *ChatService) acquireLock(ctx context.Context, userID string) (func(), error) {
	lockKey := config.AppConfig.ChatLockKeyPrefix + userID
	lockValue := uuid.NewString()

	ok, err := s.rdb.SetNX(ctx, lockKey, lockValue, s.lockTTL).Result()
	if err != nil {
		return nil, common.Errorf("failed to acquire chat lock: %w", common.ErrServiceUnavailable)
	}
	if !ok {
		return nil, common.Errorf("assistant is still answering your previous message: %w", common.ErrBusy)
	}

	release := func() {
		// CAS delete so an expired lock taken over by a newer request is
		// not removed from under it.
		script := redis.NewScript(`
            if redis.call("get", KEYS[1]) == ARGV[1] then
                return redis.call("del", KEYS[1])
            else
                return 0
            end
        `)
		if _, err := script.Run(ctx, s.rdb, []string{lockKey}, lockValue).Result(); err != nil {
			log.Printf("ERROR: failed to release chat lock %s: %v", lockKey, err)
		}
	}
	return release, nil
}
