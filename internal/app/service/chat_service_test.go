package service

import (
	"context"
	"errors"
	"testing"

	"smartpg/internal/common"
	"smartpg/internal/domain/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatReplyReturnsCompletionText(t *testing.T) {
	svc := NewChatService(nil, func(_ context.Context, system, prompt string) (string, error) {
		assert.Contains(t, system, "Smart PG Assistant")
		assert.Equal(t, "When is dinner served?", prompt)
		return "Dinner is served 8-9 PM.", nil
	})

	reply, err := svc.Reply(context.Background(), "r1", "When is dinner served?")
	require.NoError(t, err)
	assert.Equal(t, "Dinner is served 8-9 PM.", reply)
}

func TestChatReplyFallsBackOnFailure(t *testing.T) {
	svc := NewChatService(nil, func(context.Context, string, string) (string, error) {
		return "", errors.New("upstream exploded")
	})

	reply, err := svc.Reply(context.Background(), "r1", "Hello?")
	require.NoError(t, err, "a completion failure must never surface as an error")
	assert.Equal(t, model.ChatFallbackReply, reply)
}

func TestChatReplyFallsBackWhileBreakerOpen(t *testing.T) {
	svc := NewChatService(nil, func(context.Context, string, string) (string, error) {
		return "", errors.New("upstream exploded")
	})

	// Enough consecutive failures to trip the breaker, then one more call
	// that is short-circuited by it.
	for i := 0; i < 4; i++ {
		reply, err := svc.Reply(context.Background(), "r1", "Hello?")
		require.NoError(t, err)
		assert.Equal(t, model.ChatFallbackReply, reply)
	}
}

func TestChatReplySubstitutesEmptyCompletion(t *testing.T) {
	svc := NewChatService(nil, func(context.Context, string, string) (string, error) {
		return "", nil
	})

	reply, err := svc.Reply(context.Background(), "r1", "Hello?")
	require.NoError(t, err)
	assert.Equal(t, model.ChatEmptyReply, reply)
}

func TestChatReplyRejectsEmptyMessage(t *testing.T) {
	svc := NewChatService(nil, func(context.Context, string, string) (string, error) {
		t.Fatal("completion must not be called for an empty message")
		return "", nil
	})

	_, err := svc.Reply(context.Background(), "r1", "   ")
	assert.ErrorIs(t, err, common.ErrBadRequest)
}
