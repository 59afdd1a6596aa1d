package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/windwords/windwords/pkg/config"
	"github.com/windwords/windwords/pkg/places"
	"github.com/windwords/windwords/pkg/populate"
	mongostore "github.com/windwords/windwords/pkg/store/mongo"
	"github.com/windwords/windwords/pkg/youtube"
)

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("bad log level %q: %w", cfg.LogLevel, err)
	}

	logConfig := zap.NewProductionConfig()
	logConfig.Level = zap.NewAtomicLevelAt(level)
	return logConfig.Build()
}

func connectStore(ctx context.Context, cfg *config.Config) (*mongostore.Store, error) {
	return mongostore.Connect(ctx, mongostore.Config{
		Username: cfg.MongoUsername,
		Password: cfg.MongoPassword,
		Cluster:  cfg.MongoCluster,
		Database: cfg.Database,
	})
}

func newService(cfg *config.Config, s *mongostore.Store, logger *zap.Logger) *populate.Service {
	var maps *places.Client
	if cfg.GoogleMapsAPIKey != "" {
		maps = places.NewClient(cfg.GoogleMapsAPIKey)
	}

	return populate.NewService(populate.Options{
		Store:     s,
		YouTube:   youtube.NewClient(),
		Maps:      maps,
		Logger:    logger,
		Window:    cfg.PopulateWindow(),
		Languages: cfg.CaptionLanguages,
	})
}

// setup loads and validates the configuration and builds the logger,
// store and harvesting service used by most commands.
func setup(ctx context.Context) (*config.Config, *zap.Logger, *mongostore.Store, *populate.Service, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, nil, nil, err
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	s, err := connectStore(ctx, cfg)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	return cfg, logger, s, newService(cfg, s, logger), nil
}
