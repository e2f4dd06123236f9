// File: internal/usecase/handlers.go
package usecase

import (
	"context"
	"fmt"

	"telegram-shop-bot/internal/domain/model"
)

const (
	textMenuIntro    = "Please choose a product:"
	textAddedToCart  = "Added to your cart. Pick a quantity again or go back to the menu."
	textEmailPrompt  = "Send your email address to finish checkout:"
	textEmailInvalid = "That does not look like an email address. Please try again:"
)

// handleStart renders the top-level product menu. It runs on first contact,
// on every /start, and whenever the stored state is missing.
func (e *Engine) handleStart(ctx context.Context, action model.UserAction) (model.ConversationState, error) {
	return e.renderMenu(ctx, action)
}

// handleMenu expects a button press: either the cart shortcut or a product
// id straight from the menu keyboard. Free text while browsing the menu is a
// stale or out-of-order event and is dropped without a reply.
func (e *Engine) handleMenu(ctx context.Context, action model.UserAction) (model.ConversationState, error) {
	if action.Kind != model.ActionSelection {
		return model.StateMenu, nil
	}
	switch sel := parseSelector(action.Payload); sel.Kind {
	case selCart:
		return e.renderCart(ctx, action)
	case selOther:
		if sel.Raw == "" {
			return model.StateMenu, nil
		}
		return e.renderDetail(ctx, action, sel.Raw)
	default:
		return model.StateMenu, nil
	}
}

// cartActions builds the shared handler for the states whose keyboards carry
// cart buttons. It needs to know which state it serves so that an undefined
// action shape can leave the user exactly where they were.
func (e *Engine) cartActions(current model.ConversationState) handlerFunc {
	return func(ctx context.Context, action model.UserAction) (model.ConversationState, error) {
		if action.Kind != model.ActionSelection {
			return current, nil
		}
		switch sel := parseSelector(action.Payload); sel.Kind {
		case selBack:
			return e.renderMenu(ctx, action)
		case selCart:
			return e.renderCart(ctx, action)
		case selCheckout:
			// Repurpose the cart message as the prompt so its keyboard
			// disappears with it; without a message id, send a fresh one.
			if action.MessageID != 0 {
				if err := e.bot.EditMessageText(ctx, action.ChatID, action.MessageID, textEmailPrompt); err != nil {
					return "", err
				}
			} else if err := e.bot.SendMessage(ctx, action.ChatID, textEmailPrompt); err != nil {
				return "", err
			}
			return model.StateAwaitingEmail, nil
		case selRemove:
			if err := e.shop.RemoveCartLine(ctx, action.ChatID, sel.LineID); err != nil {
				return "", err
			}
			return e.renderCart(ctx, action)
		case selAdd:
			if err := e.shop.AddCartLine(ctx, action.ChatID, sel.ProductID, sel.Quantity); err != nil {
				return "", err
			}
			if err := e.bot.SendMessage(ctx, action.ChatID, textAddedToCart); err != nil {
				return "", err
			}
			return model.StateItemDetail, nil
		default:
			return current, nil
		}
	}
}

// handleAwaitingEmail consumes free text as an email address. Validation
// failures stay inside this handler: the user is re-prompted and the state
// does not move. On success the customer is registered with the commerce
// backend and the conversation returns to the menu.
func (e *Engine) handleAwaitingEmail(ctx context.Context, action model.UserAction) (model.ConversationState, error) {
	if action.Kind != model.ActionText {
		return model.StateAwaitingEmail, nil
	}
	email, err := parseEmail(action.Text)
	if err != nil {
		if err := e.bot.SendMessage(ctx, action.ChatID, textEmailInvalid); err != nil {
			return "", err
		}
		return model.StateAwaitingEmail, nil
	}
	if err := e.shop.RegisterCustomer(ctx, action.ChatID, email); err != nil {
		return "", err
	}
	if err := e.bot.SendMessage(ctx, action.ChatID, fmt.Sprintf("Thanks! We will contact you at %s.", email)); err != nil {
		return "", err
	}
	return e.renderMenu(ctx, action)
}

// renderMenu sends the product list keyboard and moves to StateMenu.
func (e *Engine) renderMenu(ctx context.Context, action model.UserAction) (model.ConversationState, error) {
	products, err := e.shop.ListProducts(ctx)
	if err != nil {
		return "", err
	}
	if err := e.bot.SendButtons(ctx, action.ChatID, textMenuIntro, menuKeyboard(products)); err != nil {
		return "", err
	}
	e.cleanup(ctx, action)
	return model.StateMenu, nil
}

// renderDetail sends the product card (photo, caption, quantity buttons) and
// moves to StateItemDetail.
func (e *Engine) renderDetail(ctx context.Context, action model.UserAction, productID string) (model.ConversationState, error) {
	product, err := e.shop.GetProduct(ctx, productID)
	if err != nil {
		return "", err
	}
	caption := formatProductCaption(*product)
	keyboard := detailKeyboard(product.ID)

	if product.ImageID == "" {
		if err := e.bot.SendButtons(ctx, action.ChatID, caption, keyboard); err != nil {
			return "", err
		}
	} else {
		imageURL, err := e.shop.GetImageURL(ctx, product.ImageID)
		if err != nil {
			return "", err
		}
		if err := e.bot.SendPhoto(ctx, action.ChatID, imageURL, caption, keyboard); err != nil {
			return "", err
		}
	}
	e.cleanup(ctx, action)
	return model.StateItemDetail, nil
}

// renderCart sends the cart snapshot with per-line remove buttons and moves
// to StateCart.
func (e *Engine) renderCart(ctx context.Context, action model.UserAction) (model.ConversationState, error) {
	cart, err := e.shop.GetCart(ctx, action.ChatID)
	if err != nil {
		return "", err
	}
	text, rows := formatCart(cart)
	if err := e.bot.SendButtons(ctx, action.ChatID, text, rows); err != nil {
		return "", err
	}
	e.cleanup(ctx, action)
	return model.StateCart, nil
}

// cleanup removes the message whose button (or command) triggered this
// render, so the chat keeps a single live keyboard. The message may already
// be gone after a stale tap; losing the delete is harmless, so it never
// fails the handler.
func (e *Engine) cleanup(ctx context.Context, action model.UserAction) {
	if action.MessageID == 0 {
		return
	}
	if err := e.bot.DeleteMessage(ctx, action.ChatID, action.MessageID); err != nil {
		e.log.Debug().Err(err).Int64("chat_id", action.ChatID).Int("message_id", action.MessageID).Msg("delete message")
	}
}
