package places_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/windwords/windwords/pkg/places"
)

const placeDetails = `{
	"status": "OK",
	"result": {
		"place_id": "place-1",
		"name": "Grace Community Church",
		"formatted_address": "13248 Roscoe Blvd, Los Angeles, CA 91402, USA",
		"website": "https://www.gracechurch.org/",
		"international_phone_number": "+1 818-909-5500",
		"types": ["church", "place_of_worship"],
		"address_components": [
			{"long_name": "Los Angeles", "short_name": "LA", "types": ["locality", "political"]},
			{"long_name": "United States", "short_name": "US", "types": ["country", "political"]}
		],
		"geometry": {"location": {"lat": 34.2202, "lng": -118.4226}}
	}
}`

func TestPlaceDetails(t *testing.T) {
	var calls int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&calls, 1)
		require.Equal(t, "/maps/api/place/details/json", r.URL.Path)
		require.Equal(t, "place-1", r.URL.Query().Get("place_id"))
		require.Equal(t, "secret", r.URL.Query().Get("key"))
		fmt.Fprint(w, placeDetails)
	}))
	defer server.Close()

	client := places.NewClient("secret", places.WithBaseURL(server.URL))

	place, err := client.PlaceDetails(context.Background(), "place-1")
	require.NoError(t, err)
	assert.Equal(t, "Grace Community Church", place.Name)
	assert.Equal(t, "Los Angeles", place.Component("locality"))
	assert.Equal(t, "United States", place.Component("country"))
	assert.Equal(t, "", place.Component("postal_code"))
	assert.Equal(t, 34.2202, place.Geometry.Location.Lat)

	// Second lookup is served from the cache.
	_, err = client.PlaceDetails(context.Background(), "place-1")
	require.NoError(t, err)
	assert.EqualValues(t, 1, atomic.LoadInt64(&calls))
}

func TestFindPlaceIDs(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/maps/api/place/findplacefromtext/json", r.URL.Path)
		require.Equal(t, "textquery", r.URL.Query().Get("inputtype"))
		fmt.Fprint(w, `{"status": "OK", "candidates": [{"place_id": "place-1"}, {"place_id": "place-2"}]}`)
	}))
	defer server.Close()

	client := places.NewClient("secret", places.WithBaseURL(server.URL))
	ids, err := client.FindPlaceIDs(context.Background(), "Grace Community Church")
	require.NoError(t, err)
	assert.Equal(t, []string{"place-1", "place-2"}, ids)
}

func TestSearchFollowsPagination(t *testing.T) {
	var pages int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/maps/api/place/textsearch/json", r.URL.Path)
		require.Equal(t, "church", r.URL.Query().Get("type"))
		switch atomic.AddInt64(&pages, 1) {
		case 1:
			require.Empty(t, r.URL.Query().Get("pagetoken"))
			fmt.Fprint(w, `{"status": "OK", "results": [{"place_id": "place-1"}], "next_page_token": "page-2"}`)
		default:
			require.Equal(t, "page-2", r.URL.Query().Get("pagetoken"))
			fmt.Fprint(w, `{"status": "OK", "results": [{"place_id": "place-2"}]}`)
		}
	}))
	defer server.Close()

	client := places.NewClient("secret", places.WithBaseURL(server.URL), places.WithPageDelay(0))
	results, err := client.Search(context.Background(), places.SearchRequest{
		Type:   "church",
		Region: "NZ",
	})
	require.NoError(t, err)

	require.Len(t, results, 2)
	assert.Equal(t, "place-1", results[0].PlaceID)
	assert.Equal(t, "place-2", results[1].PlaceID)
	assert.EqualValues(t, 2, atomic.LoadInt64(&pages))
}

func TestGeocode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/maps/api/geocode/json", r.URL.Path)
		require.NotEmpty(t, r.URL.Query().Get("address"))
		fmt.Fprint(w, `{"status": "OK", "results": [{"place_id": "place-1", "geometry": {"location": {"lat": -36.85, "lng": 174.76}}}]}`)
	}))
	defer server.Close()

	client := places.NewClient("secret", places.WithBaseURL(server.URL))
	results, err := client.Geocode(context.Background(), "23 Customs Street, Auckland")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, -36.85, results[0].Geometry.Location.Lat)
}

func TestZeroResultsIsNotAnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"status": "ZERO_RESULTS", "candidates": []}`)
	}))
	defer server.Close()

	client := places.NewClient("secret", places.WithBaseURL(server.URL))
	ids, err := client.FindPlaceIDs(context.Background(), "no such place")
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestRequestDeniedStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"status": "REQUEST_DENIED", "error_message": "The provided API key is invalid."}`)
	}))
	defer server.Close()

	client := places.NewClient("bogus", places.WithBaseURL(server.URL))
	_, err := client.PlaceDetails(context.Background(), "place-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "REQUEST_DENIED")
}
