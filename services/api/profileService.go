package api

import (
	"context"
	"net/http"

	"github.com/pkg/errors"
	"github.com/sedtender/tender_portal/entities"
	"github.com/sedtender/tender_portal/services"
	"go.uber.org/zap"
)

const (
	profilesPath     = "/api/profiles"
	profileScorePath = "/api/profiles/score"
)

type apiProfileService struct {
	logger *zap.Logger
	client *Client
}

// NewAPIProfileService creates a new ProfileService that uses the tender API
func NewAPIProfileService(logger *zap.Logger, client *Client) services.ProfileService {
	return &apiProfileService{
		logger: logger,
		client: client,
	}
}

type profileRes struct {
	Profile entities.Profile `json:"profile"`
}

func (s *apiProfileService) GetProfile(ctx context.Context, token string) (entities.Profile, error) {
	var res profileRes
	err := s.client.Do(ctx, http.MethodGet, profilesPath, nil, token, &res)
	if err != nil {
		return nil, errors.Wrap(err, "could not fetch profile")
	}
	return res.Profile, nil
}

func (s *apiProfileService) UpdateProfile(ctx context.Context, token string, fragment entities.Profile) (entities.Profile, error) {
	var res profileRes
	err := s.client.Do(ctx, http.MethodPut, profilesPath, fragment, token, &res)
	if err != nil {
		return nil, errors.Wrap(err, "could not update profile")
	}
	return res.Profile, nil
}

func (s *apiProfileService) RecalculateScore(ctx context.Context, token string) (entities.Profile, error) {
	var res entities.Profile
	err := s.client.Do(ctx, http.MethodPost, profileScorePath, nil, token, &res)
	if err != nil {
		return nil, errors.Wrap(err, "could not recalculate score")
	}
	return res, nil
}
