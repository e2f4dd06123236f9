// File: internal/usecase/engine.go
package usecase

import (
	"context"
	"sync"
	"time"

	"telegram-shop-bot/internal/domain/model"
	"telegram-shop-bot/internal/domain/ports/adapter"
	"telegram-shop-bot/internal/domain/ports/repository"
	"telegram-shop-bot/internal/infra/logging"
	"telegram-shop-bot/internal/infra/metrics"

	"github.com/rs/zerolog"
)

// handlerFunc processes one action for one conversation state and returns the
// next state. Handlers never touch the state repository themselves; the
// engine owns every read and write of the tag.
type handlerFunc func(ctx context.Context, action model.UserAction) (model.ConversationState, error)

// Engine is the per-user conversation state machine. For each incoming
// action it loads the stored state (or StateStart on first contact), runs the
// handler registered for it, and persists the handler's declared next state.
// A failed handler writes nothing, so the user's next action replays against
// the state exactly as it was.
type Engine struct {
	states repository.StateRepository
	shop   adapter.CommerceClient
	bot    adapter.ChatTransport
	log    *zerolog.Logger

	handlers map[model.ConversationState]handlerFunc

	mu    sync.Mutex
	chats map[int64]*sync.Mutex
}

func NewEngine(states repository.StateRepository, shop adapter.CommerceClient, bot adapter.ChatTransport, logger *zerolog.Logger) *Engine {
	e := &Engine{
		states: states,
		shop:   shop,
		bot:    bot,
		log:    logger,
		chats:  make(map[int64]*sync.Mutex),
	}
	e.handlers = map[model.ConversationState]handlerFunc{
		model.StateStart:         e.handleStart,
		model.StateMenu:          e.handleMenu,
		model.StateItemDetail:    e.cartActions(model.StateItemDetail),
		model.StateCart:          e.cartActions(model.StateCart),
		model.StateAwaitingEmail: e.handleAwaitingEmail,
	}
	return e
}

// chatLock returns the mutex serializing load-dispatch-store for one chat.
// Actions from different chats stay fully concurrent. Entries are never
// evicted: a chat's mutex has to stay stable for the process lifetime, and
// at two words per chat the map stays small even after millions of chats.
func (e *Engine) chatLock(chatID int64) *sync.Mutex {
	e.mu.Lock()
	defer e.mu.Unlock()
	l, ok := e.chats[chatID]
	if !ok {
		l = &sync.Mutex{}
		e.chats[chatID] = l
	}
	return l
}

// Handle dispatches one normalized action. This is the error boundary: every
// failure is logged and swallowed here, with no state write, so a transient
// backend outage degrades to "your last tap did nothing" rather than to a
// broken session.
func (e *Engine) Handle(ctx context.Context, action model.UserAction) {
	log := logging.With(ctx, e.log)
	defer logging.TraceDuration(log, "Engine.Handle")()
	metrics.IncAction(action.Kind.String())

	lock := e.chatLock(action.ChatID)
	lock.Lock()
	defer lock.Unlock()

	// "/start" forces the start state no matter what is stored; it is the
	// universal reset path.
	state := model.StateStart
	if !action.IsStartCommand() {
		stored, ok, err := e.states.Get(ctx, action.ChatID)
		if err != nil {
			log.Error().Err(err).Int64("chat_id", action.ChatID).Msg("load conversation state")
			return
		}
		if ok {
			state = stored
		}
	}

	handler, ok := e.handlers[state]
	if !ok {
		// Unreachable once all states are registered in NewEngine.
		log.Error().Str("state", string(state)).Msg("no handler registered for state")
		return
	}

	start := time.Now()
	next, err := handler(ctx, action)
	metrics.ObserveHandler(string(state), time.Since(start), err == nil)
	if err != nil {
		log.Error().Err(err).
			Int64("chat_id", action.ChatID).
			Str("state", string(state)).
			Msg("handler failed, state unchanged")
		return
	}

	if err := e.states.Set(ctx, action.ChatID, next); err != nil {
		log.Error().Err(err).
			Int64("chat_id", action.ChatID).
			Str("next_state", string(next)).
			Msg("store conversation state")
	}
}
