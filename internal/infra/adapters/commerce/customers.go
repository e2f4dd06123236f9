package commerce

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// RegisterCustomer creates a customer record keyed by chat id. The backend
// requires a password even though the bot never logs in as the customer, so
// a throwaway one is generated. Email uniqueness is the backend's concern;
// a duplicate comes back as a RemoteError like any other rejection.
func (c *Client) RegisterCustomer(ctx context.Context, chatID int64, email string) error {
	body := map[string]any{
		"data": map[string]any{
			"type":     "customer",
			"name":     cartRef(chatID),
			"email":    email,
			"password": uuid.NewString(),
		},
	}
	return c.do(ctx, "register_customer", http.MethodPost, "/v2/customers", body, nil)
}
