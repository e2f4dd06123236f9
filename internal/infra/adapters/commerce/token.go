// File: internal/infra/adapters/commerce/token.go
package commerce

import (
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

	"github.com/rs/zerolog"
)

const tokenKey = "shop_access_token"

// TokenCache is the subset of the redis client the token source needs.
type TokenCache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
}

var _ TokenSource = (*CachedTokenSource)(nil)

// CachedTokenSource is a read-through cache over the implicit-grant oauth
// endpoint. The token lives in the cache until the expiry the backend
// declared; the next caller after that refreshes it. A cache read failure
// degrades to a fetch, never to an error.
type CachedTokenSource struct {
	baseURL  string
	clientID string
	cache    TokenCache
	client   *http.Client
	log      *zerolog.Logger
}

func NewCachedTokenSource(baseURL, clientID string, cache TokenCache, logger *zerolog.Logger) (*CachedTokenSource, error) {
	if clientID == "" {
		return nil, errors.New("shop client id empty")
	}
	return &CachedTokenSource{
		baseURL:  strings.TrimRight(baseURL, "/"),
		clientID: clientID,
		cache:    cache,
		client:   &http.Client{Timeout: 15 * time.Second},
		log:      logger,
	}, nil
}

func (t *CachedTokenSource) Token(ctx context.Context) (string, error) {
	if tok, err := t.cache.Get(ctx, tokenKey); err == nil && tok != "" {
		return tok, nil
	}

	form := url.Values{
		"client_id":  {t.clientID},
		"grant_type": {"implicit"},
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.baseURL+"/oauth/access_token", strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("build token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := t.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch access token: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read token response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &domain.RemoteError{Status: resp.StatusCode, Body: string(raw)}
	}

	var out struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int64  `json:"expires_in"`
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", &domain.RemoteError{Status: resp.StatusCode, Body: string(raw)}
	}
	if out.AccessToken == "" {
		return "", domain.ErrEmptyToken
	}

	ttl := time.Duration(out.ExpiresIn) * time.Second
	if ttl > 0 {
		if err := t.cache.Set(ctx, tokenKey, out.AccessToken, ttl); err != nil {
			t.log.Warn().Err(err).Msg("cache access token")
		}
	}
	return out.AccessToken, nil
}
