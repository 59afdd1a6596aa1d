package youtube_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/windwords/windwords/pkg/youtube"
)

const channelPage = `<!DOCTYPE html>
<html>
<head>
<link rel="canonical" href="https://www.youtube.com/channel/UCdeadbeef">
<meta property="og:title" content="Grace Community Church">
</head>
<body></body>
</html>`

func TestResolveChannel(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, channelPage)
	}))
	defer server.Close()

	client := youtube.NewClient(youtube.WithBaseURL(server.URL))
	channel, err := client.ResolveChannel(context.Background(), server.URL+"/@gracechurch")
	require.NoError(t, err)

	assert.Equal(t, "UCdeadbeef", channel.ID)
	assert.Equal(t, "https://www.youtube.com/channel/UCdeadbeef", channel.URL)
	assert.Equal(t, "Grace Community Church", channel.Name)
	assert.Equal(t, "www.youtube.com", channel.Host)
}

func TestResolveChannelNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "<html><head></head><body></body></html>")
	}))
	defer server.Close()

	client := youtube.NewClient(youtube.WithBaseURL(server.URL))
	_, err := client.ResolveChannel(context.Background(), server.URL+"/@missing")
	assert.ErrorIs(t, err, youtube.ErrChannelNotFound)
}

func uploadsFeed(recent, old time.Time) string {
	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns:yt="http://www.youtube.com/xml/schemas/2015"
      xmlns:media="http://search.yahoo.com/mrss/"
      xmlns="http://www.w3.org/2005/Atom">
  <entry>
    <yt:videoId>video-recent</yt:videoId>
    <title>Sunday Service</title>
    <published>%s</published>
    <author><name>Grace Community Church</name></author>
    <link rel="alternate" href="https://www.youtube.com/watch?v=video-recent"/>
    <media:group>
      <media:description>Mark 8:34 and following</media:description>
      <media:thumbnail url="https://i.ytimg.com/vi/video-recent/hqdefault.jpg"/>
    </media:group>
  </entry>
  <entry>
    <yt:videoId>video-old</yt:videoId>
    <title>Last Month</title>
    <published>%s</published>
    <author><name>Grace Community Church</name></author>
    <link rel="alternate" href="https://www.youtube.com/watch?v=video-old"/>
    <media:group>
      <media:description></media:description>
      <media:thumbnail url="https://i.ytimg.com/vi/video-old/hqdefault.jpg"/>
    </media:group>
  </entry>
</feed>`, recent.Format(time.RFC3339), old.Format(time.RFC3339))
}

func TestRecentVideos(t *testing.T) {
	now := time.Now()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/feeds/videos.xml", r.URL.Path)
		require.Equal(t, "UCdeadbeef", r.URL.Query().Get("channel_id"))
		fmt.Fprint(w, uploadsFeed(now.Add(-24*time.Hour), now.Add(-40*24*time.Hour)))
	}))
	defer server.Close()

	client := youtube.NewClient(youtube.WithBaseURL(server.URL))
	videos, err := client.RecentVideos(context.Background(), "UCdeadbeef", 14*24*time.Hour)
	require.NoError(t, err)

	require.Len(t, videos, 1)
	assert.Equal(t, "video-recent", videos[0].ID)
	assert.Equal(t, "Sunday Service", videos[0].Title)
	assert.Equal(t, "Grace Community Church", videos[0].Author)
	assert.Equal(t, "UCdeadbeef", videos[0].ChannelID)
	assert.Equal(t, "https://www.youtube.com/watch?v=video-recent", videos[0].URL)
	assert.Equal(t, "Mark 8:34 and following", videos[0].Description)
}

func playerHandler(t *testing.T, captionsURL string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/youtubei/v1/player", r.URL.Path)
		require.Equal(t, http.MethodPost, r.Method)

		var request struct {
			VideoID string `json:"videoId"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&request))
		require.Equal(t, "video-recent", request.VideoID)

		fmt.Fprintf(w, `{
			"videoDetails": {
				"videoId": "video-recent",
				"title": "Sunday Service",
				"author": "Grace Community Church",
				"channelId": "UCdeadbeef",
				"shortDescription": "Mark 8:34 and following",
				"lengthSeconds": "2400",
				"thumbnail": {"thumbnails": [
					{"url": "small.jpg", "width": 120, "height": 90},
					{"url": "large.jpg", "width": 1280, "height": 720}
				]}
			},
			"microformat": {"playerMicroformatRenderer": {"publishDate": "2026-08-23"}},
			"captions": {"playerCaptionsTracklistRenderer": {"captionTracks": [
				{"baseUrl": %q, "vssId": "a.en", "languageCode": "en",
				 "name": {"simpleText": "English (auto-generated)"}}
			]}}
		}`, captionsURL)
	}
}

func TestVideo(t *testing.T) {
	server := httptest.NewServer(playerHandler(t, "https://example.com/timedtext?v=video-recent"))
	defer server.Close()

	client := youtube.NewClient(youtube.WithBaseURL(server.URL))
	video, err := client.Video(context.Background(), "video-recent")
	require.NoError(t, err)

	assert.Equal(t, "video-recent", video.ID)
	assert.Equal(t, server.URL+"/watch?v=video-recent", video.URL)
	assert.Equal(t, "Grace Community Church", video.Author)
	assert.Equal(t, 2400, video.Duration)
	assert.Equal(t, "large.jpg", video.ThumbnailURL)
	assert.Equal(t, 2026, video.PublishDate.Year())
	require.Len(t, video.CaptionTracks, 1)
	assert.Equal(t, "a.en", video.CaptionTracks[0].Code)
	assert.Equal(t, []string{"English (auto-generated)"}, video.CaptionNames())
}

func TestDownloadCaptions(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/timedtext", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "srv3", r.URL.Query().Get("fmt"))
		fmt.Fprint(w, `<timedtext format="3"><body>`+
			`<p t="780" d="2320">turn with me to mark chapter 8</p>`+
			`</body></timedtext>`)
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	client := youtube.NewClient(youtube.WithBaseURL(server.URL))
	video := &youtube.Video{
		ID: "video-recent",
		CaptionTracks: []youtube.CaptionTrack{
			{Code: "a.en", BaseURL: server.URL + "/timedtext?v=video-recent"},
		},
	}

	text, err := client.DownloadCaptions(context.Background(), video, nil)
	require.NoError(t, err)
	assert.Contains(t, text, "turn with me to mark chapter 8")
	assert.Contains(t, text, "00:00:00,780 --> 00:00:03,100")
}

func TestDownloadCaptionsNoMatchingTrack(t *testing.T) {
	client := youtube.NewClient()
	video := &youtube.Video{
		CaptionTracks: []youtube.CaptionTrack{{Code: "fr", BaseURL: "unused"}},
	}

	_, err := client.DownloadCaptions(context.Background(), video, []string{"a.en", "en"})
	assert.ErrorIs(t, err, youtube.ErrNoCaptions)
}
