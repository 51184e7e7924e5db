package search

import (
	"context"
	"time"

	"github.com/sedtender/tender_portal/config"
	"github.com/sedtender/tender_portal/entities"
	"github.com/sedtender/tender_portal/services"
	"go.uber.org/zap"
)

type placeholderSearchService struct {
	logger *zap.Logger
	delay  time.Duration
}

// NewPlaceholderSearchService creates a SearchService that waits for the configured
// delay and reports success without sending any request
func NewPlaceholderSearchService(logger *zap.Logger, cfg *config.AppConfig) services.SearchService {
	return &placeholderSearchService{
		logger: logger,
		delay:  time.Duration(cfg.Search.PlaceholderDelayMillis) * time.Millisecond,
	}
}

func (s *placeholderSearchService) Search(ctx context.Context, query entities.SearchQuery) error {
	s.logger.Debug("placeholder tender search", zap.String("keywords", query.Keywords),
		zap.String("province", query.Province), zap.String("budget", query.Budget))

	timer := time.NewTimer(s.delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
