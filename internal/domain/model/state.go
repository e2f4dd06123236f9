package model

// ConversationState tags which handler processes a user's next action.
// Exactly one value exists per chat at any time; everything transient
// (last viewed product, chosen quantity) is re-derived from the incoming
// event instead of being stored next to the tag.
type ConversationState string

const (
	StateStart         ConversationState = "start"
	StateMenu          ConversationState = "menu"
	StateItemDetail    ConversationState = "item_detail"
	StateCart          ConversationState = "cart"
	StateAwaitingEmail ConversationState = "awaiting_email"
)

// Known reports whether s is one of the states the engine dispatches on.
func (s ConversationState) Known() bool {
	switch s {
	case StateStart, StateMenu, StateItemDetail, StateCart, StateAwaitingEmail:
		return true
	}
	return false
}
