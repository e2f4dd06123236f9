package telegram

import (
	"context"

	"github.com/rs/zerolog"

	"telegram-shop-bot/internal/domain/ports/adapter"
)

var _ adapter.ChatTransport = (*NoopBot)(nil)

// NoopBot logs outbound calls instead of delivering them. Used for dev runs
// without a bot token.
type NoopBot struct {
	log *zerolog.Logger
}

func NewNoopBot(logger *zerolog.Logger) *NoopBot {
	return &NoopBot{log: logger}
}

func (n *NoopBot) SendMessage(ctx context.Context, chatID int64, text string) error {
	n.log.Info().Int64("chat_id", chatID).Str("text", text).Msg("noop: send message")
	return nil
}

func (n *NoopBot) SendButtons(ctx context.Context, chatID int64, text string, rows [][]adapter.InlineButton) error {
	n.log.Info().Int64("chat_id", chatID).Str("text", text).Int("rows", len(rows)).Msg("noop: send buttons")
	return nil
}

func (n *NoopBot) SendPhoto(ctx context.Context, chatID int64, photoURL, caption string, rows [][]adapter.InlineButton) error {
	n.log.Info().Int64("chat_id", chatID).Str("photo", photoURL).Msg("noop: send photo")
	return nil
}

func (n *NoopBot) EditMessageText(ctx context.Context, chatID int64, messageID int, text string) error {
	n.log.Info().Int64("chat_id", chatID).Int("message_id", messageID).Msg("noop: edit message")
	return nil
}

func (n *NoopBot) DeleteMessage(ctx context.Context, chatID int64, messageID int) error {
	n.log.Info().Int64("chat_id", chatID).Int("message_id", messageID).Msg("noop: delete message")
	return nil
}
