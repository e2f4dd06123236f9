package adapter

import "context"

type InlineButton struct {
	Text string
	Data string
	URL  string
}

// ChatTransport is the outbound boundary the conversation engine renders
// through. Implementations deliver to the chat platform; handlers never see
// platform types.
type ChatTransport interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
	SendButtons(ctx context.Context, chatID int64, text string, rows [][]InlineButton) error
	SendPhoto(ctx context.Context, chatID int64, photoURL, caption string, rows [][]InlineButton) error
	EditMessageText(ctx context.Context, chatID int64, messageID int, text string) error
	DeleteMessage(ctx context.Context, chatID int64, messageID int) error
}
