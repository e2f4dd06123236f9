// File: internal/usecase/format.go
package usecase

import (
	"fmt"
	"strconv"
	"strings"

	"telegram-shop-bot/internal/domain/model"
	"telegram-shop-bot/internal/domain/ports/adapter"
)

// Presentation helpers: pure functions from commerce entities to chat text
// and keyboards. No I/O, no mutation, same output for the same input.

const textCartEmpty = "Your cart is empty."

var detailQuantities = []int{1, 5, 10}

// formatProductCaption renders the photo caption for one product card.
func formatProductCaption(p model.Product) string {
	var sb strings.Builder
	sb.WriteString(p.Name)
	sb.WriteString("\n\n")
	sb.WriteString(p.Price)
	if p.WeightKG > 0 {
		fmt.Fprintf(&sb, " / %g kg", p.WeightKG)
	}
	if p.Description != "" {
		sb.WriteString("\n\n")
		sb.WriteString(p.Description)
	}
	return sb.String()
}

// formatCart renders the cart snapshot and the keyboard that operates on it:
// one remove button per line, then checkout and back rows. An empty cart is
// a fixed sentence with only the back row.
func formatCart(cart *model.Cart) (string, [][]adapter.InlineButton) {
	backRow := []adapter.InlineButton{{Text: "◀️ Menu", Data: payloadBack}}
	if cart.Empty() {
		return textCartEmpty, [][]adapter.InlineButton{backRow}
	}

	var sb strings.Builder
	for _, line := range cart.Lines {
		sb.WriteString(line.Name)
		sb.WriteString("\n")
		if line.Description != "" {
			sb.WriteString(line.Description)
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "%s each\n%d pcs for %s\n\n", line.UnitPrice, line.Quantity, line.LineTotal)
	}
	fmt.Fprintf(&sb, "Total: %s", cart.Total)

	rows := make([][]adapter.InlineButton, 0, len(cart.Lines)+2)
	for _, line := range cart.Lines {
		rows = append(rows, []adapter.InlineButton{{
			Text: "✖️ " + line.Name,
			Data: payloadRemove + "|" + line.ID,
		}})
	}
	rows = append(rows, []adapter.InlineButton{{Text: "💳 Checkout", Data: payloadCheckout}})
	rows = append(rows, backRow)
	return sb.String(), rows
}

// menuKeyboard lists the catalog one product per row, cart shortcut last.
func menuKeyboard(products []model.Product) [][]adapter.InlineButton {
	rows := make([][]adapter.InlineButton, 0, len(products)+1)
	for _, p := range products {
		rows = append(rows, []adapter.InlineButton{{Text: p.Name, Data: p.ID}})
	}
	rows = append(rows, []adapter.InlineButton{{Text: "🛒 Cart", Data: payloadCart}})
	return rows
}

// detailKeyboard offers the fixed quantity choices for one product plus the
// cart and back shortcuts.
func detailKeyboard(productID string) [][]adapter.InlineButton {
	qtyRow := make([]adapter.InlineButton, 0, len(detailQuantities))
	for _, q := range detailQuantities {
		qtyRow = append(qtyRow, adapter.InlineButton{
			Text: strconv.Itoa(q) + " pcs",
			Data: strconv.Itoa(q) + "|" + productID,
		})
	}
	return [][]adapter.InlineButton{
		qtyRow,
		{{Text: "🛒 Cart", Data: payloadCart}},
		{{Text: "◀️ Menu", Data: payloadBack}},
	}
}
