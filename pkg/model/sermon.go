package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MediaFormatVideo is the media format recorded on video sermons.
const MediaFormatVideo = "video"

// Cue is a single caption cue parsed from an srt track.
type Cue struct {
	Frame     int       `bson:"frame" json:"frame"`
	Caption   string    `bson:"caption" json:"caption"`
	Timecodes Timecodes `bson:"timecodes" json:"timecodes"`
}

// Timecodes holds the srt start/end timestamps of a cue.
type Timecodes struct {
	Start string `bson:"start" json:"start"`
	End   string `bson:"end" json:"end"`
}

// Sermon represents a captioned sermon video in the sermons collection.
type Sermon struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	VideoID      string             `bson:"video_id" json:"video_id"`
	URL          string             `bson:"url" json:"url"`
	Host         string             `bson:"host" json:"host"`
	Title        string             `bson:"title" json:"title"`
	Author       string             `bson:"author" json:"author"`
	Description  string             `bson:"description,omitempty" json:"description,omitempty"`
	Duration     int                `bson:"duration" json:"duration"`
	PublishDate  time.Time          `bson:"publish_date" json:"publish_date"`
	ThumbnailURL string             `bson:"thumbnail_url,omitempty" json:"thumbnail_url,omitempty"`
	Captions     []string           `bson:"captions,omitempty" json:"captions,omitempty"`
	MediaFormat  string             `bson:"media_format" json:"media_format"`
	Srt          []Cue              `bson:"srt,omitempty" json:"srt,omitempty"`
	Scriptures   []string           `bson:"scriptures,omitempty" json:"scriptures,omitempty"`
	Link         Links              `bson:"link,omitempty" json:"link,omitempty"`
	Metadata     Metadata           `bson:"metadata,omitempty" json:"metadata,omitempty"`
}
