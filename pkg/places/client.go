package places

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// DefaultBaseURL is the Google Maps Web Service root.
const DefaultBaseURL = "https://maps.googleapis.com"

// defaultPageDelay is how long to wait before requesting the next page
// of search results. Google documents a short delay between a
// next_page_token being issued and it becoming valid.
const defaultPageDelay = 2 * time.Second

// Client accesses the Google Maps Web Services. All lookups are
// memoised; a Client is safe for concurrent use.
type Client struct {
	apiKey     string
	baseURL    string
	pageDelay  time.Duration
	httpClient *http.Client

	group singleflight.Group
	mu    sync.RWMutex
	cache map[string]interface{}
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at an alternate service root, mainly
// for tests.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithHTTPClient swaps the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpClient = h }
}

// WithPageDelay overrides the wait between search result pages.
func WithPageDelay(d time.Duration) Option {
	return func(c *Client) { c.pageDelay = d }
}

// NewClient returns a Maps client authenticated with the given API key.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:     apiKey,
		baseURL:    DefaultBaseURL,
		pageDelay:  defaultPageDelay,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		cache:      make(map[string]interface{}),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// cached returns the memoised value for key, computing it at most once
// across concurrent callers.
func (c *Client) cached(key string, fetch func() (interface{}, error)) (interface{}, error) {
	c.mu.RLock()
	v, ok := c.cache[key]
	c.mu.RUnlock()
	if ok {
		return v, nil
	}

	return c.do(key, fetch)
}

func (c *Client) do(key string, fetch func() (interface{}, error)) (interface{}, error) {
	v, err, _ := c.group.Do(key, func() (interface{}, error) {
		c.mu.RLock()
		v, ok := c.cache[key]
		c.mu.RUnlock()
		if ok {
			return v, nil
		}

		v, err := fetch()
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.cache[key] = v
		c.mu.Unlock()
		return v, nil
	})
	return v, err
}

// response is the envelope every Maps web service replies with.
type response struct {
	Status        string   `json:"status"`
	ErrorMessage  string   `json:"error_message"`
	Result        *Place   `json:"result"`
	Results       []Place  `json:"results"`
	Candidates    []Place  `json:"candidates"`
	NextPageToken string   `json:"next_page_token"`
}

func (c *Client) get(ctx context.Context, path string, params url.Values) (*response, error) {
	params.Set("key", c.apiKey)
	endpoint := c.baseURL + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("places: GET %s: unexpected status %s", path, resp.Status)
	}

	var payload response
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("places: failed to decode %s response: %w", path, err)
	}
	if payload.Status != "OK" && payload.Status != "ZERO_RESULTS" {
		if payload.ErrorMessage != "" {
			return nil, fmt.Errorf("places: %s: %s (%s)", path, payload.Status, payload.ErrorMessage)
		}
		return nil, fmt.Errorf("places: %s: %s", path, payload.Status)
	}
	return &payload, nil
}
