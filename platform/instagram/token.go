package instagram

import (
	"context"
	"fmt"
	"net/url"
	"time"
)

// LongLivedToken is the result of exchanging a short-lived access token.
type LongLivedToken struct {
	AccessToken string
	ExpiresAt   time.Time
}

// tokenResponse mirrors the JSON returned by GET /access_token.
type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
}

// ExchangeForLongLivedToken trades a short-lived token for a long-lived one.
// The app secret is required by the Graph API for this exchange.
func (c *Client) ExchangeForLongLivedToken(ctx context.Context, shortLivedToken, appSecret string) (*LongLivedToken, error) {
	params := url.Values{
		"grant_type":    {"ig_exchange_token"},
		"client_secret": {appSecret},
		"access_token":  {shortLivedToken},
	}

	var resp tokenResponse
	if err := c.get(ctx, "/access_token", params, &resp); err != nil {
		return nil, fmt.Errorf("exchanging token: %w", err)
	}

	return &LongLivedToken{
		AccessToken: resp.AccessToken,
		ExpiresAt:   time.Now().Add(time.Duration(resp.ExpiresIn) * time.Second),
	}, nil
}
