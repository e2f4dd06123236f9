package redis

import (
	"context"
	"errors"
	"fmt"

	"telegram-shop-bot/internal/domain/model"
	"telegram-shop-bot/internal/domain/ports/repository"

	"github.com/go-redis/redis/v8"
)

var _ repository.StateRepository = (*StateRepo)(nil)

// StateRepo keeps the per-chat conversation state tag in Redis. Values are
// written without TTL: idle sessions persist until the instance's own expiry
// policy (if any) evicts them.
type StateRepo struct {
	client RedisClient
}

func NewStateRepo(client RedisClient) *StateRepo {
	return &StateRepo{client: client}
}

func (s *StateRepo) stateKey(chatID int64) string {
	return fmt.Sprintf("shop_state:%d", chatID)
}

func (s *StateRepo) Get(ctx context.Context, chatID int64) (model.ConversationState, bool, error) {
	val, err := s.client.Get(ctx, s.stateKey(chatID))
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	state := model.ConversationState(val)
	if !state.Known() {
		// A tag written by a different build; restarting the conversation is
		// safer than dispatching on it.
		return "", false, nil
	}
	return state, true, nil
}

func (s *StateRepo) Set(ctx context.Context, chatID int64, state model.ConversationState) error {
	return s.client.Set(ctx, s.stateKey(chatID), string(state), 0)
}
