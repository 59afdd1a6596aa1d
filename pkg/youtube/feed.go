package youtube

import (
	"encoding/xml"
	"fmt"
	"io"
	"time"
)

// uploadsFeed mirrors the Atom feed at /feeds/videos.xml. Namespaced
// elements (yt:videoId, media:group) are matched by local name.
type uploadsFeed struct {
	XMLName xml.Name    `xml:"feed"`
	Entries []feedEntry `xml:"entry"`
}

type feedEntry struct {
	VideoID   string `xml:"videoId"`
	Title     string `xml:"title"`
	Published string `xml:"published"`
	Author    struct {
		Name string `xml:"name"`
	} `xml:"author"`
	Link struct {
		Href string `xml:"href,attr"`
	} `xml:"link"`
	Group struct {
		Description string `xml:"description"`
		Thumbnail   struct {
			URL string `xml:"url,attr"`
		} `xml:"thumbnail"`
	} `xml:"group"`
}

func parseUploadsFeed(r io.Reader) ([]Video, error) {
	var feed uploadsFeed
	if err := xml.NewDecoder(r).Decode(&feed); err != nil {
		return nil, fmt.Errorf("youtube: failed to parse uploads feed: %w", err)
	}

	videos := make([]Video, 0, len(feed.Entries))
	for _, entry := range feed.Entries {
		published, err := time.Parse(time.RFC3339, entry.Published)
		if err != nil {
			return nil, fmt.Errorf("youtube: bad publish date %q: %w", entry.Published, err)
		}
		videos = append(videos, Video{
			ID:           entry.VideoID,
			URL:          entry.Link.Href,
			Title:        entry.Title,
			Author:       entry.Author.Name,
			Description:  entry.Group.Description,
			PublishDate:  published,
			ThumbnailURL: entry.Group.Thumbnail.URL,
		})
	}
	return videos, nil
}
