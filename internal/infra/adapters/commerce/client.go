// File: internal/infra/adapters/commerce/client.go
package commerce

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"telegram-shop-bot/internal/domain"
	"telegram-shop-bot/internal/domain/ports/adapter"
	"telegram-shop-bot/internal/infra/metrics"

	"github.com/rs/zerolog"
)

var _ adapter.CommerceClient = (*Client)(nil)

// TokenSource supplies the bearer token for commerce requests.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// Client is a thin typed wrapper over the commerce REST API. Every method is
// one remote call; a non-success status or an undecodable body comes back as
// *domain.RemoteError and is never retried here.
type Client struct {
	baseURL string
	tokens  TokenSource
	client  *http.Client
	log     *zerolog.Logger
}

func NewClient(baseURL string, tokens TokenSource, logger *zerolog.Logger) (*Client, error) {
	if baseURL == "" {
		return nil, errors.New("commerce base url empty")
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("invalid commerce base url: %w", err)
	}
	if tokens == nil {
		return nil, errors.New("token source is nil")
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		tokens:  tokens,
		client:  &http.Client{Timeout: 15 * time.Second},
		log:     logger,
	}, nil
}

// do issues one authorized request and decodes the response into out
// (skipped when out is nil).
func (c *Client) do(ctx context.Context, op, method, path string, body any, out any) error {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return fmt.Errorf("%s: access token: %w", op, err)
	}

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: marshal body: %w", op, err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", op, err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		metrics.IncCommerceRequest(op, 0)
		return fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s: read body: %w", op, err)
	}
	metrics.IncCommerceRequest(op, resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &domain.RemoteError{Status: resp.StatusCode, Body: string(raw)}
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		c.log.Debug().Err(err).Str("op", op).Msg("undecodable commerce response")
		return &domain.RemoteError{Status: resp.StatusCode, Body: string(raw)}
	}
	return nil
}
