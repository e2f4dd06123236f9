package commerce

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"telegram-shop-bot/internal/domain/model"
)

// cartRef is the remote cart reference; the backend creates the cart lazily
// on first use, so any chat id is a valid reference.
func cartRef(chatID int64) string {
	return strconv.FormatInt(chatID, 10)
}

func (c *Client) GetCart(ctx context.Context, chatID int64) (*model.Cart, error) {
	var out struct {
		Data []struct {
			ID          string `json:"id"`
			ProductID   string `json:"product_id"`
			Name        string `json:"name"`
			Description string `json:"description"`
			Quantity    int    `json:"quantity"`
			Meta        struct {
				DisplayPrice struct {
					WithTax struct {
						Unit struct {
							Formatted string `json:"formatted"`
						} `json:"unit"`
						Value struct {
							Formatted string `json:"formatted"`
						} `json:"value"`
					} `json:"with_tax"`
				} `json:"display_price"`
			} `json:"meta"`
		} `json:"data"`
		Meta struct {
			DisplayPrice struct {
				WithTax struct {
					Formatted string `json:"formatted"`
				} `json:"with_tax"`
			} `json:"display_price"`
		} `json:"meta"`
	}
	if err := c.do(ctx, "get_cart", http.MethodGet, "/v2/carts/"+cartRef(chatID)+"/items", nil, &out); err != nil {
		return nil, err
	}

	cart := &model.Cart{
		Lines: make([]model.CartLine, 0, len(out.Data)),
		Total: out.Meta.DisplayPrice.WithTax.Formatted,
	}
	for _, d := range out.Data {
		cart.Lines = append(cart.Lines, model.CartLine{
			ID:          d.ID,
			ProductID:   d.ProductID,
			Name:        d.Name,
			Description: d.Description,
			Quantity:    d.Quantity,
			UnitPrice:   d.Meta.DisplayPrice.WithTax.Unit.Formatted,
			LineTotal:   d.Meta.DisplayPrice.WithTax.Value.Formatted,
		})
	}
	return cart, nil
}

func (c *Client) AddCartLine(ctx context.Context, chatID int64, productID string, quantity int) error {
	body := map[string]any{
		"data": map[string]any{
			"id":       productID,
			"type":     "cart_item",
			"quantity": quantity,
		},
	}
	return c.do(ctx, "add_cart_line", http.MethodPost, "/v2/carts/"+cartRef(chatID)+"/items", body, nil)
}

func (c *Client) RemoveCartLine(ctx context.Context, chatID int64, lineID string) error {
	path := "/v2/carts/" + cartRef(chatID) + "/items/" + url.PathEscape(lineID)
	return c.do(ctx, "remove_cart_line", http.MethodDelete, path, nil, nil)
}
