package populate

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/windwords/windwords/pkg/handlers"
	"github.com/windwords/windwords/pkg/model"
	"github.com/windwords/windwords/pkg/store"
	"github.com/windwords/windwords/pkg/youtube"
)

// PopulateSermons harvests recent uploads from every registered
// channel. Channels are processed concurrently; a failing channel is
// logged and does not stop the others.
func (s *Service) PopulateSermons(ctx context.Context) error {
	documents, err := store.FindAll(ctx, s.store, model.CollectionChannels)
	if err != nil {
		return fmt.Errorf("populate: failed to list channels: %w", err)
	}

	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(s.workers)
	for _, document := range documents {
		channelURL, _ := document["channel_url"].(string)
		if channelURL == "" {
			continue
		}
		group.Go(func() error {
			if err := s.PopulateChannel(ctx, channelURL); err != nil {
				s.logger.Error("failed to populate channel",
					zap.String("channel_url", channelURL),
					zap.Error(err),
				)
			}
			return nil
		})
	}
	return group.Wait()
}

// PopulateChannel harvests the channel's uploads from the trailing
// window, inserting every video that qualifies as a sermon.
func (s *Service) PopulateChannel(ctx context.Context, channelURL string) error {
	channel, err := s.youtube.ResolveChannel(ctx, channelURL)
	if err != nil {
		return err
	}

	videos, err := s.youtube.RecentVideos(ctx, channel.ID, s.window)
	if err != nil {
		return err
	}

	for _, entry := range videos {
		video, err := s.youtube.Video(ctx, entry.ID)
		if err != nil {
			s.logger.Error("failed to resolve video",
				zap.String("video_id", entry.ID),
				zap.Error(err),
			)
			continue
		}

		logger := s.logger.With(
			zap.String("title", video.Title),
			zap.String("video_url", video.URL),
			zap.String("channel_url", channelURL),
		)
		logger.Info("checking video")

		sermon, err := s.IsVideoSermon(ctx, video)
		if err != nil {
			logger.Error("failed to assess video", zap.Error(err))
			continue
		}
		if !sermon {
			logger.Info("ignoring video: not sermon-compatible")
			continue
		}
		if err := s.InsertVideoSermon(ctx, video); err != nil {
			logger.Error("failed to insert video sermon", zap.Error(err))
		}
	}
	return nil
}

// IsVideoSermon reports whether a video qualifies as a sermon: it must
// belong to a channel, carry captions in an accepted language, and its
// captions must reference scripture at least once.
func (s *Service) IsVideoSermon(ctx context.Context, video *youtube.Video) (bool, error) {
	if video.ChannelID == "" {
		return false, nil
	}
	if !s.hasAcceptedCaptions(video) {
		return false, nil
	}

	document := handlers.NewVideoDocument(video, s.youtube, s.bible, s.languages)
	secondary, err := document.SecondaryData(ctx)
	if err != nil {
		return false, err
	}
	scriptures, _ := secondary["scriptures"].([]string)
	return len(scriptures) > 0, nil
}

func (s *Service) hasAcceptedCaptions(video *youtube.Video) bool {
	for _, language := range s.languages {
		for _, track := range video.CaptionTracks {
			if track.Code == language {
				return true
			}
		}
	}
	return false
}

// InsertVideoSermon inserts the video into the sermons collection and
// links it to its channel, and through the channel to its church. The
// channel must already be registered.
func (s *Service) InsertVideoSermon(ctx context.Context, video *youtube.Video) error {
	channelID, err := s.store.FindID(ctx, model.CollectionChannels, bson.M{"channel_id": video.ChannelID})
	if errors.Is(err, store.ErrNotFound) {
		return fmt.Errorf("populate: channel %s is not registered", video.ChannelID)
	}
	if err != nil {
		return err
	}
	channel := handlers.StoredChannel(channelID)

	sermon := handlers.NewVideoDocument(video, s.youtube, s.bible, s.languages)
	exists, err := handlers.Exists(ctx, s.store, sermon)
	if err != nil {
		return err
	}
	if !exists {
		id, err := handlers.Insert(ctx, s.store, sermon)
		if err != nil {
			return err
		}
		s.logger.Info("inserted video sermon",
			zap.String("id", id.Hex()),
			zap.String("video_url", video.URL),
		)
	}

	if err := s.ensureLinked(ctx, sermon, channel); err != nil {
		return err
	}

	churchIDs, err := handlers.LinkedIDs(ctx, s.store, channel, "church")
	if err != nil {
		return err
	}
	if len(churchIDs) == 0 {
		return nil
	}
	church := handlers.StoredChurch(churchIDs[0])
	if _, err := s.store.FindDocumentByID(ctx, model.CollectionChurches, churchIDs[0]); err != nil {
		return fmt.Errorf("populate: church %s linked to channel but not stored: %w", churchIDs[0].Hex(), err)
	}
	return s.ensureLinked(ctx, sermon, church)
}

// ensureLinked links a and b in both directions, skipping directions
// already recorded.
func (s *Service) ensureLinked(ctx context.Context, a, b handlers.Document) error {
	for _, pair := range [][2]handlers.Document{{a, b}, {b, a}} {
		doc, other := pair[0], pair[1]
		linked, err := handlers.IsLinked(ctx, s.store, doc, other)
		if err != nil {
			return err
		}
		if linked {
			continue
		}
		if err := handlers.Link(ctx, s.store, doc, other); err != nil {
			return err
		}
		s.logger.Info("linked documents",
			zap.String("from", doc.Kind()),
			zap.String("to", other.Kind()),
		)
	}
	return nil
}
