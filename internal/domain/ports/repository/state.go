package repository

import (
	"context"

	"telegram-shop-bot/internal/domain/model"
)

// StateRepository is the port for the per-chat conversation state tag.
// Get reports ok=false when no state is stored for the chat yet; the engine
// treats that as StateStart.
type StateRepository interface {
	Get(ctx context.Context, chatID int64) (state model.ConversationState, ok bool, err error)
	Set(ctx context.Context, chatID int64, state model.ConversationState) error
}
