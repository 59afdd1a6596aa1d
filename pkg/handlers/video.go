package handlers

import (
	"context"
	"errors"
	"net/url"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/windwords/windwords/pkg/model"
	"github.com/windwords/windwords/pkg/scripture"
	"github.com/windwords/windwords/pkg/srt"
	"github.com/windwords/windwords/pkg/youtube"
)

// VideoDocument maps a YouTube video onto the sermons collection. Its
// secondary data downloads the video's captions and extracts scripture
// references from them.
type VideoDocument struct {
	Video *youtube.Video

	client    *youtube.Client
	bible     *scripture.Bible
	languages []string
}

// NewVideoDocument wraps a video. The client downloads captions in the
// given language preference order; the bible extracts references.
func NewVideoDocument(video *youtube.Video, client *youtube.Client, bible *scripture.Bible, languages []string) *VideoDocument {
	return &VideoDocument{
		Video:     video,
		client:    client,
		bible:     bible,
		languages: languages,
	}
}

func (d *VideoDocument) Kind() string { return KindSermon }

func (d *VideoDocument) Collection() string { return model.CollectionSermons }

func (d *VideoDocument) PrimaryData() bson.M {
	host := ""
	if u, err := url.Parse(d.Video.URL); err == nil {
		host = u.Hostname()
	}
	return bson.M{
		"author":        d.Video.Author,
		"captions":      d.Video.CaptionNames(),
		"description":   d.Video.Description,
		"duration":      d.Video.Duration,
		"host":          host,
		"media_format":  model.MediaFormatVideo,
		"publish_date":  d.Video.PublishDate,
		"thumbnail_url": d.Video.ThumbnailURL,
		"title":         d.Video.Title,
		"url":           d.Video.URL,
		"video_id":      d.Video.ID,
	}
}

// SecondaryData downloads the captions and derives the srt cue
// document and the scripture references. A video without a matching
// caption track yields no secondary fields.
func (d *VideoDocument) SecondaryData(ctx context.Context) (bson.M, error) {
	text, err := d.client.DownloadCaptions(ctx, d.Video, d.languages)
	if errors.Is(err, youtube.ErrNoCaptions) {
		return bson.M{}, nil
	}
	if err != nil {
		return nil, err
	}

	cues, err := srt.Parse(text)
	if err != nil {
		return nil, err
	}
	return bson.M{
		"srt":        cues,
		"scriptures": scripture.Strings(d.bible.Extract(text)),
	}, nil
}

func (d *VideoDocument) LinkSchema() map[string]LinkRule {
	return sermonLinkSchema()
}
