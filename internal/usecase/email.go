// File: internal/usecase/email.go
package usecase

import (
	"net/mail"
	"strings"

	"telegram-shop-bot/internal/domain"
)

// parseEmail validates syntax only; uniqueness and deliverability are the
// commerce backend's concern. Display-name forms ("Bob <bob@x.y>") are
// rejected: the user is expected to type a bare address.
func parseEmail(s string) (string, error) {
	s = strings.TrimSpace(s)
	addr, err := mail.ParseAddress(s)
	if err != nil {
		return "", &domain.ValidationError{Field: "email", Reason: "not a valid address"}
	}
	if addr.Address != s {
		return "", &domain.ValidationError{Field: "email", Reason: "expected a bare address"}
	}
	return addr.Address, nil
}
