package populate

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/windwords/windwords/pkg/places"
	"github.com/windwords/windwords/pkg/scripture"
	"github.com/windwords/windwords/pkg/store"
	"github.com/windwords/windwords/pkg/youtube"
)

// DefaultWindow is the trailing period of uploads considered by a
// populate run.
const DefaultWindow = 14 * 24 * time.Hour

// defaultWorkers bounds how many channels are harvested concurrently.
const defaultWorkers = 4

// Options configures a Service. Store and YouTube are required; Maps
// is only needed for church insertion.
type Options struct {
	Store     store.Store
	YouTube   *youtube.Client
	Maps      *places.Client
	Logger    *zap.Logger
	Window    time.Duration
	Languages []string
	Workers   int
}

// Service harvests sermons into the store.
type Service struct {
	store     store.Store
	youtube   *youtube.Client
	maps      *places.Client
	bible     *scripture.Bible
	logger    *zap.Logger
	window    time.Duration
	languages []string
	workers   int
}

// NewService builds a harvesting service. Zero options fall back to a
// two week window, English captions and four workers.
func NewService(options Options) *Service {
	service := &Service{
		store:     options.Store,
		youtube:   options.YouTube,
		maps:      options.Maps,
		bible:     scripture.New(),
		logger:    options.Logger,
		window:    options.Window,
		languages: options.Languages,
		workers:   options.Workers,
	}
	if service.logger == nil {
		service.logger = zap.NewNop()
	}
	if service.window <= 0 {
		service.window = DefaultWindow
	}
	if len(service.languages) == 0 {
		service.languages = []string{"a.en", "en"}
	}
	if service.workers <= 0 {
		service.workers = defaultWorkers
	}
	return service
}

// WithWindow returns a copy of the service harvesting a different
// trailing window. Non-positive durations keep the current window.
func (s *Service) WithWindow(window time.Duration) *Service {
	if window <= 0 {
		return s
	}
	copied := *s
	copied.window = window
	return &copied
}

// Video fetches a video's metadata and caption track listing.
func (s *Service) Video(ctx context.Context, videoID string) (*youtube.Video, error) {
	return s.youtube.Video(ctx, videoID)
}
