package populate

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/windwords/windwords/pkg/handlers"
)

// InsertChannel registers the channel at the given url. Nothing
// changes when the channel is already registered.
func (s *Service) InsertChannel(ctx context.Context, channelURL string) (*handlers.ChannelDocument, error) {
	channel, err := s.youtube.ResolveChannel(ctx, channelURL)
	if err != nil {
		return nil, err
	}

	document := handlers.NewChannelDocument(channel)
	exists, err := handlers.Exists(ctx, s.store, document)
	if err != nil {
		return nil, err
	}
	if !exists {
		id, err := handlers.Insert(ctx, s.store, document)
		if err != nil {
			return nil, err
		}
		s.logger.Info("inserted channel",
			zap.String("id", id.Hex()),
			zap.String("channel_url", channelURL),
		)
	}
	return document, nil
}

// InsertChurch registers the church with the given Google Place id.
// Nothing changes when the church is already registered.
func (s *Service) InsertChurch(ctx context.Context, placeID string) (*handlers.ChurchDocument, error) {
	if s.maps == nil {
		return nil, fmt.Errorf("populate: no maps client configured")
	}

	document, err := handlers.ChurchFromPlaceID(ctx, s.maps, placeID)
	if err != nil {
		return nil, err
	}
	exists, err := handlers.Exists(ctx, s.store, document)
	if err != nil {
		return nil, err
	}
	if !exists {
		id, err := handlers.Insert(ctx, s.store, document)
		if err != nil {
			return nil, err
		}
		s.logger.Info("inserted church",
			zap.String("id", id.Hex()),
			zap.String("gpid", placeID),
		)
	}
	return document, nil
}

// InsertChannelAndChurch registers a channel and its church and links
// the two documents in both directions.
func (s *Service) InsertChannelAndChurch(ctx context.Context, channelURL, placeID string) (*handlers.ChannelDocument, error) {
	channel, err := s.InsertChannel(ctx, channelURL)
	if err != nil {
		return nil, err
	}
	church, err := s.InsertChurch(ctx, placeID)
	if err != nil {
		return nil, err
	}
	return channel, s.ensureLinked(ctx, channel, church)
}
