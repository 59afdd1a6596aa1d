package populate_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap/zaptest"

	"github.com/windwords/windwords/pkg/model"
	"github.com/windwords/windwords/pkg/places"
	"github.com/windwords/windwords/pkg/populate"
	"github.com/windwords/windwords/pkg/store/storetest"
	"github.com/windwords/windwords/pkg/youtube"
)

// fakeYouTube serves a channel page, the channel's uploads feed, the
// player endpoint and a caption track for one sermon video.
func fakeYouTube(t *testing.T) *httptest.Server {
	t.Helper()
	var server *httptest.Server
	mux := http.NewServeMux()

	channelPage := func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `<html><head>
<link rel="canonical" href="%s/channel/UCdeadbeef">
<meta property="og:title" content="Grace Community Church">
</head><body></body></html>`, server.URL)
	}
	mux.HandleFunc("/@grace", channelPage)
	mux.HandleFunc("/channel/UCdeadbeef", channelPage)

	mux.HandleFunc("/feeds/videos.xml", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `<?xml version="1.0"?>
<feed xmlns:yt="http://www.youtube.com/xml/schemas/2015"
      xmlns:media="http://search.yahoo.com/mrss/"
      xmlns="http://www.w3.org/2005/Atom">
  <entry>
    <yt:videoId>vid1</yt:videoId>
    <title>Sunday Sermon</title>
    <published>%s</published>
    <author><name>Grace Community Church</name></author>
    <link rel="alternate" href="%s/watch?v=vid1"/>
    <media:group><media:description>Mark 8</media:description>
    <media:thumbnail url="thumb.jpg"/></media:group>
  </entry>
</feed>`, time.Now().Add(-24*time.Hour).Format(time.RFC3339), server.URL)
	})

	mux.HandleFunc("/youtubei/v1/player", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{
			"videoDetails": {
				"videoId": "vid1",
				"title": "Sunday Sermon",
				"author": "Grace Community Church",
				"channelId": "UCdeadbeef",
				"shortDescription": "Mark 8",
				"lengthSeconds": "2400",
				"thumbnail": {"thumbnails": [{"url": "thumb.jpg", "width": 120, "height": 90}]}
			},
			"microformat": {"playerMicroformatRenderer": {"publishDate": "2026-08-23"}},
			"captions": {"playerCaptionsTracklistRenderer": {"captionTracks": [
				{"baseUrl": "%s/api/timedtext?v=vid1", "vssId": "a.en",
				 "languageCode": "en", "name": {"simpleText": "English (auto-generated)"}}
			]}}
		}`, server.URL)
	})

	mux.HandleFunc("/api/timedtext", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<timedtext format="3"><body>`+
			`<p t="780" d="2320">turn with me to mark chapter 8 verse 34</p>`+
			`</body></timedtext>`)
	})

	server = httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func fakeMaps(t *testing.T) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/maps/api/place/details/json", r.URL.Path)
		fmt.Fprint(w, `{
			"status": "OK",
			"result": {
				"place_id": "place-1",
				"name": "Grace Baptist Church",
				"formatted_address": "1 Church Lane, Auckland 1010, New Zealand",
				"url": "https://maps.google.com/?cid=42",
				"website": "https://www.gracechurch.org/",
				"types": ["church", "place_of_worship"],
				"address_components": [
					{"long_name": "New Zealand", "short_name": "NZ", "types": ["country"]},
					{"long_name": "1010", "short_name": "1010", "types": ["postal_code"]}
				],
				"geometry": {"location": {"lat": -36.85, "lng": 174.76}}
			}
		}`)
	}))
	t.Cleanup(server.Close)
	return server
}

func newService(t *testing.T, s *storetest.Store, yt, maps *httptest.Server) *populate.Service {
	t.Helper()
	return populate.NewService(populate.Options{
		Store:   s,
		YouTube: youtube.NewClient(youtube.WithBaseURL(yt.URL)),
		Maps:    places.NewClient("secret", places.WithBaseURL(maps.URL), places.WithPageDelay(0)),
		Logger:  zaptest.NewLogger(t),
	})
}

func TestInsertChannelAndChurch(t *testing.T) {
	ctx := context.Background()
	s := storetest.New()
	yt := fakeYouTube(t)
	service := newService(t, s, yt, fakeMaps(t))

	_, err := service.InsertChannelAndChurch(ctx, yt.URL+"/@grace", "place-1")
	require.NoError(t, err)

	channel, err := s.FindDocument(ctx, model.CollectionChannels, bson.M{"channel_id": "UCdeadbeef"})
	require.NoError(t, err)
	assert.Equal(t, "Grace Community Church", channel["name"])

	church, err := s.FindDocument(ctx, model.CollectionChurches, bson.M{"gpid": "place-1"})
	require.NoError(t, err)
	assert.Equal(t, "Baptist", church["denomination"])
	assert.Equal(t, "New Zealand", church["country"])
	assert.Equal(t, "1010", church["postcode"])

	// Linked both ways.
	links, ok := channel["link"].(bson.M)
	require.True(t, ok)
	assert.Equal(t, church["_id"], links["church"])
	churchLinks, ok := church["link"].(bson.M)
	require.True(t, ok)
	assert.Contains(t, churchLinks["channels"], channel["_id"])

	// A second run changes nothing.
	_, err = service.InsertChannelAndChurch(ctx, yt.URL+"/@grace", "place-1")
	require.NoError(t, err)
	count, err := s.CountDocuments(ctx, model.CollectionChannels, bson.M{})
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestPopulateSermons(t *testing.T) {
	ctx := context.Background()
	s := storetest.New()
	yt := fakeYouTube(t)
	service := newService(t, s, yt, fakeMaps(t))

	_, err := service.InsertChannelAndChurch(ctx, yt.URL+"/@grace", "place-1")
	require.NoError(t, err)
	require.NoError(t, service.PopulateSermons(ctx))

	sermon, err := s.FindDocument(ctx, model.CollectionSermons, bson.M{"video_id": "vid1"})
	require.NoError(t, err)
	assert.Equal(t, "Sunday Sermon", sermon["title"])
	assert.Equal(t, model.MediaFormatVideo, sermon["media_format"])
	assert.Contains(t, sermon["scriptures"], "Mark 8:34")
	assert.NotEmpty(t, sermon["srt"])

	channel, err := s.FindDocument(ctx, model.CollectionChannels, bson.M{"channel_id": "UCdeadbeef"})
	require.NoError(t, err)
	church, err := s.FindDocument(ctx, model.CollectionChurches, bson.M{"gpid": "place-1"})
	require.NoError(t, err)

	links, ok := sermon["link"].(bson.M)
	require.True(t, ok)
	assert.Equal(t, channel["_id"], links["channel"])
	assert.Equal(t, church["_id"], links["church"])

	channelLinks, ok := channel["link"].(bson.M)
	require.True(t, ok)
	assert.Contains(t, channelLinks["sermons"], sermon["_id"])
	churchLinks, ok := church["link"].(bson.M)
	require.True(t, ok)
	assert.Contains(t, churchLinks["sermons"], sermon["_id"])

	// Harvesting again must not duplicate the sermon.
	require.NoError(t, service.PopulateSermons(ctx))
	count, err := s.CountDocuments(ctx, model.CollectionSermons, bson.M{})
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestIsVideoSermon(t *testing.T) {
	ctx := context.Background()
	s := storetest.New()
	yt := fakeYouTube(t)
	service := newService(t, s, yt, fakeMaps(t))

	t.Run("no channel", func(t *testing.T) {
		sermon, err := service.IsVideoSermon(ctx, &youtube.Video{ID: "vid1"})
		require.NoError(t, err)
		assert.False(t, sermon)
	})

	t.Run("no accepted captions", func(t *testing.T) {
		sermon, err := service.IsVideoSermon(ctx, &youtube.Video{
			ID:        "vid1",
			ChannelID: "UCdeadbeef",
			CaptionTracks: []youtube.CaptionTrack{
				{Code: "fr", BaseURL: yt.URL + "/api/timedtext?v=vid1"},
			},
		})
		require.NoError(t, err)
		assert.False(t, sermon)
	})

	t.Run("captions with scripture", func(t *testing.T) {
		sermon, err := service.IsVideoSermon(ctx, &youtube.Video{
			ID:        "vid1",
			ChannelID: "UCdeadbeef",
			CaptionTracks: []youtube.CaptionTrack{
				{Code: "a.en", BaseURL: yt.URL + "/api/timedtext?v=vid1"},
			},
		})
		require.NoError(t, err)
		assert.True(t, sermon)
	})
}

func TestInsertVideoSermonRequiresChannel(t *testing.T) {
	ctx := context.Background()
	s := storetest.New()
	service := newService(t, s, fakeYouTube(t), fakeMaps(t))

	err := service.InsertVideoSermon(ctx, &youtube.Video{ID: "vid1", ChannelID: "UCunknown"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not registered")
}
