package youtube

import (
	"errors"
	"net/http"
	"time"
)

// DefaultBaseURL is the YouTube web frontend, which also serves the
// uploads feed and the innertube API.
const DefaultBaseURL = "https://www.youtube.com"

// innertubeClientVersion identifies the web client to the innertube
// player endpoint.
const innertubeClientVersion = "2.20240101.00.00"

var (
	// ErrChannelNotFound is returned when a channel page has no
	// resolvable channel id.
	ErrChannelNotFound = errors.New("youtube: channel not found")

	// ErrNoCaptions is returned when a video carries no caption track
	// in any of the requested languages.
	ErrNoCaptions = errors.New("youtube: no matching caption track")
)

// Client accesses YouTube. The zero value is not usable; use NewClient.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at an alternate frontend, mainly for
// tests.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

// WithHTTPClient swaps the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.httpClient = h }
}

// NewClient returns a YouTube client with a 30 second request timeout.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}
