package handlers

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/windwords/windwords/pkg/model"
	"github.com/windwords/windwords/pkg/youtube"
)

// ChannelDocument maps a resolved YouTube channel onto the channels
// collection.
type ChannelDocument struct {
	Channel *youtube.Channel
}

// NewChannelDocument wraps a resolved channel.
func NewChannelDocument(channel *youtube.Channel) *ChannelDocument {
	return &ChannelDocument{Channel: channel}
}

func (d *ChannelDocument) Kind() string { return KindChannel }

func (d *ChannelDocument) Collection() string { return model.CollectionChannels }

func (d *ChannelDocument) PrimaryData() bson.M {
	return bson.M{
		"channel_id":  d.Channel.ID,
		"channel_url": d.Channel.URL,
		"host":        d.Channel.Host,
		"name":        d.Channel.Name,
	}
}

func (d *ChannelDocument) SecondaryData(context.Context) (bson.M, error) {
	return bson.M{}, nil
}

func (d *ChannelDocument) LinkSchema() map[string]LinkRule {
	return channelLinkSchema()
}
