package places

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"
)

// maxSearchResults is the hard cap the text search API enforces: three
// pages of twenty results.
const maxSearchResults = 60

// SearchRequest narrows a text search. Type restricts results to a
// supported place type such as "church".
type SearchRequest struct {
	Type     string
	Query    string
	Location *LatLng
	Radius   int
	Region   string
}

func (r SearchRequest) cacheKey() string {
	key := fmt.Sprintf("search:%s:%s:%s:%d", r.Type, r.Query, r.Region, r.Radius)
	if r.Location != nil {
		key += fmt.Sprintf(":%f,%f", r.Location.Lat, r.Location.Lng)
	}
	return key
}

func (r SearchRequest) params(pageToken string) url.Values {
	params := url.Values{}
	if r.Type != "" {
		params.Set("type", r.Type)
	}
	if r.Query != "" {
		params.Set("query", r.Query)
	}
	if r.Location != nil {
		params.Set("location", fmt.Sprintf("%f,%f", r.Location.Lat, r.Location.Lng))
	}
	if r.Radius > 0 {
		params.Set("radius", strconv.Itoa(r.Radius))
	}
	if r.Region != "" {
		params.Set("region", r.Region)
	}
	if pageToken != "" {
		params.Set("pagetoken", pageToken)
	}
	return params
}

// Search runs a text search and follows next_page_token until the
// results are exhausted, waiting out the token activation delay
// between pages.
func (c *Client) Search(ctx context.Context, request SearchRequest) ([]Place, error) {
	v, err := c.cached(request.cacheKey(), func() (interface{}, error) {
		var results []Place
		pageToken := ""
		for {
			payload, err := c.get(ctx, "/maps/api/place/textsearch/json", request.params(pageToken))
			if err != nil {
				return nil, err
			}
			results = append(results, payload.Results...)

			pageToken = payload.NextPageToken
			if pageToken == "" || len(results) >= maxSearchResults {
				return results, nil
			}
			select {
			case <-time.After(c.pageDelay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	})
	if err != nil {
		return nil, err
	}
	return v.([]Place), nil
}
