package youtube

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/html"
)

// Channel is a resolved YouTube channel.
type Channel struct {
	ID   string
	URL  string
	Name string
	Host string
}

// ResolveChannel fetches a channel page and resolves its canonical
// identity. The input may be any channel address form: /channel/UC...,
// /@handle, /c/name or /user/name.
func (c *Client) ResolveChannel(ctx context.Context, channelURL string) (*Channel, error) {
	body, err := c.get(ctx, channelURL)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	canonical, name, err := parseChannelPage(body)
	if err != nil {
		return nil, err
	}

	id := ""
	if i := strings.Index(canonical, "/channel/"); i >= 0 {
		id = strings.Trim(canonical[i+len("/channel/"):], "/")
	}
	if id == "" {
		return nil, ErrChannelNotFound
	}

	host := ""
	if u, err := url.Parse(canonical); err == nil {
		host = u.Hostname()
	}

	return &Channel{
		ID:   id,
		URL:  canonical,
		Name: name,
		Host: host,
	}, nil
}

// parseChannelPage pulls the canonical link and og:title out of a
// channel page's head.
func parseChannelPage(body io.Reader) (canonical, name string, err error) {
	doc, err := html.Parse(body)
	if err != nil {
		return "", "", fmt.Errorf("youtube: failed to parse channel page: %w", err)
	}

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "link":
				if attr(n, "rel") == "canonical" {
					canonical = attr(n, "href")
				}
			case "meta":
				if attr(n, "property") == "og:title" {
					name = attr(n, "content")
				}
			}
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(doc)

	if canonical == "" {
		return "", "", ErrChannelNotFound
	}
	return canonical, name, nil
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// RecentVideos lists uploads published within the trailing window,
// most recent first, as served by the channel's uploads feed. Entries
// carry feed-level fields only; use Video for duration and captions.
func (c *Client) RecentVideos(ctx context.Context, channelID string, window time.Duration) ([]Video, error) {
	feedURL := fmt.Sprintf("%s/feeds/videos.xml?channel_id=%s", c.baseURL, url.QueryEscape(channelID))
	body, err := c.get(ctx, feedURL)
	if err != nil {
		return nil, err
	}
	defer body.Close()

	entries, err := parseUploadsFeed(body)
	if err != nil {
		return nil, err
	}

	cutoff := time.Now().Add(-window)
	var videos []Video
	for _, entry := range entries {
		if entry.PublishDate.Before(cutoff) {
			continue
		}
		entry.ChannelID = channelID
		videos = append(videos, entry)
	}
	return videos, nil
}

func (c *Client) get(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("youtube: GET %s: unexpected status %s", url, resp.Status)
	}
	return resp.Body, nil
}
