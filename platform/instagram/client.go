package instagram

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/poiesic/recollect/core"
	"github.com/poiesic/recollect/platform"
)

// DefaultBaseURL is the Instagram Graph API endpoint.
const DefaultBaseURL = "https://graph.instagram.com"

// Client communicates with the Instagram Graph API over HTTP.
// It lists the authenticated user's own media; the saved-post listing is
// not part of the public API.
type Client struct {
	baseURL     string
	accessToken string
	httpClient  *http.Client
}

var _ platform.SavedPostSource = (*Client)(nil)

// New creates a Client for the given access token.
// An empty baseURL selects the production Graph API.
func New(accessToken, baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		baseURL:     strings.TrimRight(baseURL, "/"),
		accessToken: accessToken,
		httpClient:  &http.Client{Timeout: 15 * time.Second},
	}
}

// UserInfo identifies the authenticated user.
type UserInfo struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// mediaResponse mirrors the JSON returned by GET /me/media.
type mediaResponse struct {
	Data []mediaEntry `json:"data"`
}

type mediaEntry struct {
	ID        string `json:"id"`
	Caption   string `json:"caption"`
	MediaType string `json:"media_type"`
	MediaURL  string `json:"media_url"`
	Permalink string `json:"permalink"`
	Timestamp string `json:"timestamp"`
}

// GetUserInfo returns the id and username of the token's user.
func (c *Client) GetUserInfo(ctx context.Context) (*UserInfo, error) {
	params := url.Values{
		"fields":       {"id,username"},
		"access_token": {c.accessToken},
	}

	var info UserInfo
	if err := c.get(ctx, "/me", params, &info); err != nil {
		return nil, fmt.Errorf("fetching user info: %w", err)
	}
	return &info, nil
}

// GetUserMedia lists the user's own media posts.
func (c *Client) GetUserMedia(ctx context.Context) ([]core.SavedPost, error) {
	params := url.Values{
		"fields":       {"id,caption,media_type,media_url,permalink,thumbnail_url,timestamp"},
		"access_token": {c.accessToken},
	}

	var media mediaResponse
	if err := c.get(ctx, "/me/media", params, &media); err != nil {
		return nil, fmt.Errorf("fetching user media: %w", err)
	}

	posts := make([]core.SavedPost, 0, len(media.Data))
	for _, entry := range media.Data {
		mediaType, err := core.ParseMediaType(entry.MediaType)
		if err != nil {
			// Skip media kinds the API may add later
			continue
		}
		timestamp, err := time.Parse(time.RFC3339, entry.Timestamp)
		if err != nil {
			timestamp = time.Time{}
		}
		posts = append(posts, core.SavedPost{
			Id:        entry.ID,
			MediaType: mediaType,
			MediaURL:  entry.MediaURL,
			Permalink: entry.Permalink,
			Timestamp: timestamp,
		})
	}
	return posts, nil
}

// SavedPosts implements platform.SavedPostSource over the user's own media.
// The Graph API offers no saved-post endpoint, so the user's media listing
// is the closest real source.
func (c *Client) SavedPosts(ctx context.Context, owner string) ([]core.SavedPost, error) {
	return c.GetUserMedia(ctx)
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("requesting %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}
