// File: internal/usecase/selector.go
package usecase

import (
	"strconv"
	"strings"
)

// Button payload vocabulary. Fixed actions are bare literals; cart line
// operations pack their argument after a pipe.
const (
	payloadCart     = "Cart"
	payloadBack     = "Back"
	payloadCheckout = "Checkout"
	payloadRemove   = "Remove"
)

type selectorKind int

const (
	selOther selectorKind = iota // not part of the vocabulary; states decide what the raw value means
	selCart
	selBack
	selCheckout
	selRemove // Remove|<lineID>
	selAdd    // <quantity>|<productID>
)

type selector struct {
	Kind      selectorKind
	Quantity  int
	ProductID string
	LineID    string
	Raw       string
}

// parseSelector classifies a callback payload. Malformed pipe payloads come
// back as selOther, which every state treats as "ignore" — chat transports
// can deliver stale button presses long after the keyboard changed.
func parseSelector(data string) selector {
	switch data {
	case payloadCart:
		return selector{Kind: selCart}
	case payloadBack:
		return selector{Kind: selBack}
	case payloadCheckout:
		return selector{Kind: selCheckout}
	}

	if left, right, ok := strings.Cut(data, "|"); ok {
		if left == payloadRemove && right != "" {
			return selector{Kind: selRemove, LineID: right}
		}
		if qty, err := strconv.Atoi(left); err == nil && qty > 0 && right != "" {
			return selector{Kind: selAdd, Quantity: qty, ProductID: right}
		}
		return selector{Kind: selOther, Raw: data}
	}
	return selector{Kind: selOther, Raw: data}
}
