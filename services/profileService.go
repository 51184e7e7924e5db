package services

import (
	"context"

	"github.com/sedtender/tender_portal/entities"
)

// ProfileService is the service for interactions with the API's company profile endpoints
type ProfileService interface {
	// GetProfile returns the stored profile, or nil when the user has none yet
	GetProfile(ctx context.Context, token string) (entities.Profile, error)
	// UpdateProfile sends a partial update and returns the score fields echoed by the API
	UpdateProfile(ctx context.Context, token string, fragment entities.Profile) (entities.Profile, error)
	// RecalculateScore asks the API to score the profile again
	RecalculateScore(ctx context.Context, token string) (entities.Profile, error)
}
