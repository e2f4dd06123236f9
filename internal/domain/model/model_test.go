package model

import "testing"

func TestConversationStateKnown(t *testing.T) {
	for _, s := range []ConversationState{StateStart, StateMenu, StateItemDetail, StateCart, StateAwaitingEmail} {
		if !s.Known() {
			t.Errorf("%q should be known", s)
		}
	}
	for _, s := range []ConversationState{"", "START", "checkout", "menu "} {
		if s.Known() {
			t.Errorf("%q should not be known", s)
		}
	}
}

func TestUserActionIsStartCommand(t *testing.T) {
	cases := []struct {
		action UserAction
		want   bool
	}{
		{UserAction{Kind: ActionCommand, Command: "/start"}, true},
		{UserAction{Kind: ActionCommand, Command: "/help"}, false},
		{UserAction{Kind: ActionText, Text: "/start"}, false},
		{UserAction{Kind: ActionSelection, Payload: "/start"}, false},
	}
	for _, tc := range cases {
		if got := tc.action.IsStartCommand(); got != tc.want {
			t.Errorf("%+v: IsStartCommand() = %v, want %v", tc.action, got, tc.want)
		}
	}
}

func TestCartEmpty(t *testing.T) {
	var nilCart *Cart
	if !nilCart.Empty() {
		t.Error("nil cart should be empty")
	}
	if !(&Cart{}).Empty() {
		t.Error("zero cart should be empty")
	}
	full := &Cart{Lines: []CartLine{{ID: "l1"}}}
	if full.Empty() {
		t.Error("cart with lines should not be empty")
	}
}
