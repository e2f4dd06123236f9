package telegram

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"telegram-shop-bot/internal/config"
	"telegram-shop-bot/internal/domain/model"
	"telegram-shop-bot/internal/domain/ports/adapter"
	"telegram-shop-bot/internal/infra/logging"
	red "telegram-shop-bot/internal/infra/redis"
)

var _ adapter.ChatTransport = (*Bot)(nil)

// ActionHandler consumes normalized actions; the conversation engine
// implements it.
type ActionHandler interface {
	Handle(ctx context.Context, action model.UserAction)
}

// Bot polls Telegram updates, normalizes each into a model.UserAction and
// hands it to the engine. It also implements adapter.ChatTransport, so the
// engine's handlers render through the same instance.
type Bot struct {
	api         *tgbotapi.BotAPI
	cfg         *config.BotConfig
	rateLimiter *red.RateLimiter
	log         *zerolog.Logger

	engine        ActionHandler
	updateWorkers int
	cancelPolling context.CancelFunc
}

func NewBot(cfg *config.BotConfig, rateLimiter *red.RateLimiter, logger *zerolog.Logger) (*Bot, error) {
	if cfg == nil {
		return nil, errors.New("bot config is nil")
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = 5
	}

	api, err := tgbotapi.NewBotAPI(cfg.Token)
	if err != nil {
		return nil, err
	}

	return &Bot{
		api:           api,
		cfg:           cfg,
		rateLimiter:   rateLimiter,
		log:           logger,
		updateWorkers: workers,
	}, nil
}

// StartPolling consumes the update feed until ctx is cancelled. Updates are
// fanned out to a worker pool, so a stalled remote call holds up one chat,
// not the feed.
func (b *Bot) StartPolling(ctx context.Context, engine ActionHandler) error {
	if engine == nil {
		return errors.New("action handler is nil")
	}
	b.engine = engine

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := b.api.GetUpdatesChan(u)

	ctx, cancel := context.WithCancel(ctx)
	b.cancelPolling = cancel

	pump(ctx, updates, b.updateWorkers, func(ctx context.Context, up tgbotapi.Update) {
		if err := b.handleUpdate(ctx, up); err != nil {
			b.log.Warn().Err(err).Msg("update failed")
		}
	})
	return ctx.Err()
}

// pump fans updates out to a bounded worker pool. On cancellation the queue
// is closed and the workers drain it to the end, so no worker ever reads
// from a closed channel mid-flight.
func pump(ctx context.Context, updates <-chan tgbotapi.Update, workers int, handle func(context.Context, tgbotapi.Update)) {
	var wg sync.WaitGroup
	queue := make(chan tgbotapi.Update, 100)

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for up := range queue {
				handle(ctx, up)
			}
		}()
	}

	for {
		select {
		case <-ctx.Done():
			close(queue)
			wg.Wait()
			return
		case up := <-updates:
			queue <- up
		}
	}
}

func (b *Bot) StopPolling() {
	if b.cancelPolling != nil {
		b.cancelPolling()
	}
}

func (b *Bot) handleUpdate(ctx context.Context, up tgbotapi.Update) error {
	// Stop the telegram spinner on button presses whatever happens next.
	if up.CallbackQuery != nil {
		defer func() { _, _ = b.api.Request(tgbotapi.NewCallback(up.CallbackQuery.ID, "")) }()
	}

	action, ok := normalizeUpdate(up)
	if !ok {
		return nil
	}

	if b.rateLimiter != nil {
		allowed, err := b.rateLimiter.Allow(ctx, red.ChatKey(action.ChatID), 30, time.Minute)
		if err != nil {
			b.log.Warn().Err(err).Msg("rate limit check failed")
		} else if !allowed {
			return b.SendMessage(ctx, action.ChatID, "Rate limit exceeded. Please try again later.")
		}
	}

	ctx = logging.WithTraceID(ctx, uuid.NewString())
	ctx = logging.WithChatID(ctx, action.ChatID)
	b.engine.Handle(ctx, action)
	return nil
}

// normalizeUpdate maps a raw update onto the single action shape the engine
// consumes. Updates without a usable chat or payload are dropped.
func normalizeUpdate(up tgbotapi.Update) (model.UserAction, bool) {
	if q := up.CallbackQuery; q != nil {
		if q.Message == nil || q.Message.Chat == nil {
			return model.UserAction{}, false
		}
		data := strings.TrimSpace(q.Data)
		if data == "" {
			return model.UserAction{}, false
		}
		return model.UserAction{
			ChatID:    q.Message.Chat.ID,
			MessageID: q.Message.MessageID,
			Kind:      model.ActionSelection,
			Payload:   data,
		}, true
	}

	if m := up.Message; m != nil && m.Chat != nil {
		if m.IsCommand() {
			return model.UserAction{
				ChatID:    m.Chat.ID,
				MessageID: m.MessageID,
				Kind:      model.ActionCommand,
				Command:   "/" + m.Command(),
			}, true
		}
		text := strings.TrimSpace(m.Text)
		if text == "" {
			return model.UserAction{}, false
		}
		return model.UserAction{
			ChatID:    m.Chat.ID,
			MessageID: m.MessageID,
			Kind:      model.ActionText,
			Text:      text,
		}, true
	}

	return model.UserAction{}, false
}

// ---- adapter.ChatTransport ----

func (b *Bot) SendMessage(ctx context.Context, chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	_, err := b.api.Send(msg)
	return err
}

func (b *Bot) SendButtons(ctx context.Context, chatID int64, text string, rows [][]adapter.InlineButton) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = buildKeyboard(rows)
	_, err := b.api.Send(msg)
	return err
}

func (b *Bot) SendPhoto(ctx context.Context, chatID int64, photoURL, caption string, rows [][]adapter.InlineButton) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	msg := tgbotapi.NewPhoto(chatID, tgbotapi.FileURL(photoURL))
	msg.Caption = caption
	if len(rows) > 0 {
		msg.ReplyMarkup = buildKeyboard(rows)
	}
	_, err := b.api.Send(msg)
	return err
}

func (b *Bot) EditMessageText(ctx context.Context, chatID int64, messageID int, text string) error {
	msg := tgbotapi.NewEditMessageText(chatID, messageID, text)
	_, err := b.api.Send(msg)
	return err
}

func (b *Bot) DeleteMessage(ctx context.Context, chatID int64, messageID int) error {
	del := tgbotapi.NewDeleteMessage(chatID, messageID)
	_, err := b.api.Request(del)
	return err
}

// buildKeyboard converts transport-neutral rows into an inline keyboard.
// - If btn.URL is set, the button opens a link
// - Else if btn.Data is set, the button sends callback data
// - Else a safe fallback uses btn.Text as callback data
func buildKeyboard(rows [][]adapter.InlineButton) tgbotapi.InlineKeyboardMarkup {
	kbRows := make([][]tgbotapi.InlineKeyboardButton, 0, len(rows))
	for _, row := range rows {
		if len(row) == 0 {
			continue
		}
		r := make([]tgbotapi.InlineKeyboardButton, 0, len(row))
		for _, btn := range row {
			label := strings.TrimSpace(btn.Text)
			if label == "" {
				label = "•"
			}
			var kb tgbotapi.InlineKeyboardButton
			switch {
			case btn.URL != "":
				kb = tgbotapi.NewInlineKeyboardButtonURL(label, btn.URL)
			case btn.Data != "":
				kb = tgbotapi.NewInlineKeyboardButtonData(label, btn.Data)
			default:
				kb = tgbotapi.NewInlineKeyboardButtonData(label, label)
			}
			r = append(r, kb)
		}
		kbRows = append(kbRows, r)
	}
	return tgbotapi.NewInlineKeyboardMarkup(kbRows...)
}
