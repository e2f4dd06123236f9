package commerce

import (
	"context"
	"net/http"
	"net/url"

	"telegram-shop-bot/internal/domain/model"
)

// productData mirrors the backend's product envelope; only the fields the
// bot renders are decoded.
type productData struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Meta        struct {
		DisplayPrice struct {
			WithTax struct {
				Formatted string `json:"formatted"`
			} `json:"with_tax"`
		} `json:"display_price"`
	} `json:"meta"`
	Weight struct {
		KG float64 `json:"kg"`
	} `json:"weight"`
	Relationships struct {
		MainImage struct {
			Data struct {
				ID string `json:"id"`
			} `json:"data"`
		} `json:"main_image"`
	} `json:"relationships"`
}

func (d productData) toModel() model.Product {
	return model.Product{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		Price:       d.Meta.DisplayPrice.WithTax.Formatted,
		WeightKG:    d.Weight.KG,
		ImageID:     d.Relationships.MainImage.Data.ID,
	}
}

func (c *Client) ListProducts(ctx context.Context) ([]model.Product, error) {
	var out struct {
		Data []productData `json:"data"`
	}
	if err := c.do(ctx, "list_products", http.MethodGet, "/v2/products", nil, &out); err != nil {
		return nil, err
	}
	products := make([]model.Product, 0, len(out.Data))
	for _, d := range out.Data {
		products = append(products, d.toModel())
	}
	return products, nil
}

func (c *Client) GetProduct(ctx context.Context, productID string) (*model.Product, error) {
	var out struct {
		Data productData `json:"data"`
	}
	if err := c.do(ctx, "get_product", http.MethodGet, "/v2/products/"+url.PathEscape(productID), nil, &out); err != nil {
		return nil, err
	}
	p := out.Data.toModel()
	return &p, nil
}

func (c *Client) GetImageURL(ctx context.Context, imageID string) (string, error) {
	var out struct {
		Data struct {
			Link struct {
				Href string `json:"href"`
			} `json:"link"`
		} `json:"data"`
	}
	if err := c.do(ctx, "get_image_url", http.MethodGet, "/v2/files/"+url.PathEscape(imageID), nil, &out); err != nil {
		return "", err
	}
	return out.Data.Link.Href, nil
}
