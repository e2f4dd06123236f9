package adapter

import (
	"context"

	"telegram-shop-bot/internal/domain/model"
)

// CommerceClient is the port over the remote commerce backend. Each call maps
// 1:1 to a remote request; failures surface as *domain.RemoteError. The cart
// and the customer record are keyed by chat id, so the bot never mints its
// own identifiers.
type CommerceClient interface {
	ListProducts(ctx context.Context) ([]model.Product, error)
	GetProduct(ctx context.Context, productID string) (*model.Product, error)
	GetImageURL(ctx context.Context, imageID string) (string, error)
	GetCart(ctx context.Context, chatID int64) (*model.Cart, error)
	AddCartLine(ctx context.Context, chatID int64, productID string, quantity int) error
	RemoveCartLine(ctx context.Context, chatID int64, lineID string) error
	RegisterCustomer(ctx context.Context, chatID int64, email string) error
}
