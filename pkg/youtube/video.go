package youtube

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/windwords/windwords/pkg/srt"
)

// Video is a YouTube video. Feed-derived values carry identity fields
// only; Video lookups fill in duration, captions and the channel id.
type Video struct {
	ID            string
	URL           string
	Title         string
	Author        string
	ChannelID     string
	Description   string
	Duration      int
	PublishDate   time.Time
	ThumbnailURL  string
	CaptionTracks []CaptionTrack
}

// CaptionTrack is one caption language of a video. Code is the track's
// language code; auto-generated tracks are prefixed "a." ("a.en").
type CaptionTrack struct {
	Code    string
	Name    string
	BaseURL string
}

// VideoID extracts the video id from a watch, youtu.be or shorts url.
// A value without slashes or parameters is taken to be an id already.
// Returns "" when no id can be found.
func VideoID(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}
	if !strings.ContainsAny(value, "/?&=") {
		return value
	}

	parsed, err := url.Parse(value)
	if err != nil {
		return ""
	}
	if id := parsed.Query().Get("v"); id != "" {
		return id
	}
	path := strings.Trim(parsed.Path, "/")
	if strings.HasPrefix(path, "shorts/") || strings.HasPrefix(path, "embed/") {
		return strings.SplitN(path, "/", 2)[1]
	}
	if parsed.Host == "youtu.be" && path != "" && !strings.Contains(path, "/") {
		return path
	}
	return ""
}

// CaptionNames lists the display names of the video's caption tracks.
func (v *Video) CaptionNames() []string {
	names := make([]string, 0, len(v.CaptionTracks))
	for _, track := range v.CaptionTracks {
		names = append(names, track.Name)
	}
	return names
}

// playerResponse is the subset of the innertube player payload the
// harvester reads.
type playerResponse struct {
	VideoDetails struct {
		VideoID          string `json:"videoId"`
		Title            string `json:"title"`
		Author           string `json:"author"`
		ChannelID        string `json:"channelId"`
		ShortDescription string `json:"shortDescription"`
		LengthSeconds    string `json:"lengthSeconds"`
		Thumbnail        struct {
			Thumbnails []struct {
				URL    string `json:"url"`
				Width  int    `json:"width"`
				Height int    `json:"height"`
			} `json:"thumbnails"`
		} `json:"thumbnail"`
	} `json:"videoDetails"`
	Microformat struct {
		Renderer struct {
			PublishDate string `json:"publishDate"`
		} `json:"playerMicroformatRenderer"`
	} `json:"microformat"`
	Captions struct {
		Tracklist struct {
			Tracks []struct {
				BaseURL      string `json:"baseUrl"`
				VssID        string `json:"vssId"`
				LanguageCode string `json:"languageCode"`
				Name         struct {
					SimpleText string `json:"simpleText"`
				} `json:"name"`
			} `json:"captionTracks"`
		} `json:"playerCaptionsTracklistRenderer"`
	} `json:"captions"`
}

// Video fetches full video details through the innertube player
// endpoint.
func (c *Client) Video(ctx context.Context, videoID string) (*Video, error) {
	payload, err := json.Marshal(map[string]interface{}{
		"videoId": videoID,
		"context": map[string]interface{}{
			"client": map[string]string{
				"clientName":    "WEB",
				"clientVersion": innertubeClientVersion,
			},
		},
	})
	if err != nil {
		return nil, err
	}

	endpoint := c.baseURL + "/youtubei/v1/player?prettyPrint=false"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("youtube: player request for %s: unexpected status %s", videoID, resp.Status)
	}

	var player playerResponse
	if err := json.NewDecoder(resp.Body).Decode(&player); err != nil {
		return nil, fmt.Errorf("youtube: failed to decode player response: %w", err)
	}
	if player.VideoDetails.VideoID == "" {
		return nil, fmt.Errorf("youtube: video %s not found", videoID)
	}

	duration, _ := strconv.Atoi(player.VideoDetails.LengthSeconds)

	video := &Video{
		ID:           player.VideoDetails.VideoID,
		URL:          c.baseURL + "/watch?v=" + player.VideoDetails.VideoID,
		Title:        player.VideoDetails.Title,
		Author:       player.VideoDetails.Author,
		ChannelID:    player.VideoDetails.ChannelID,
		Description:  player.VideoDetails.ShortDescription,
		Duration:     duration,
		PublishDate:  parsePublishDate(player.Microformat.Renderer.PublishDate),
		ThumbnailURL: largestThumbnail(player),
	}
	for _, track := range player.Captions.Tracklist.Tracks {
		code := strings.TrimPrefix(track.VssID, ".")
		if code == "" {
			code = track.LanguageCode
		}
		video.CaptionTracks = append(video.CaptionTracks, CaptionTrack{
			Code:    code,
			Name:    track.Name.SimpleText,
			BaseURL: track.BaseURL,
		})
	}
	return video, nil
}

// parsePublishDate handles the two date shapes the player response
// serves, a bare date or a full timestamp.
func parsePublishDate(s string) time.Time {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

// DownloadCaptions fetches the first caption track matching the given
// language codes, in preference order, and returns it as srt text.
// ErrNoCaptions is returned when no track matches.
func (c *Client) DownloadCaptions(ctx context.Context, video *Video, languageCodes []string) (string, error) {
	if len(languageCodes) == 0 {
		languageCodes = []string{"a.en", "en"}
	}

	for _, code := range languageCodes {
		for _, track := range video.CaptionTracks {
			if track.Code != code {
				continue
			}
			trackURL := track.BaseURL
			if strings.Contains(trackURL, "?") {
				trackURL += "&fmt=srv3"
			} else {
				trackURL += "?fmt=srv3"
			}
			body, err := c.get(ctx, trackURL)
			if err != nil {
				return "", err
			}
			data, err := io.ReadAll(body)
			body.Close()
			if err != nil {
				return "", err
			}
			return srt.FromTimedText(data)
		}
	}
	return "", ErrNoCaptions
}
