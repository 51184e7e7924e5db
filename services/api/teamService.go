package api

import (
	"context"
	"net/http"

	"github.com/pkg/errors"
	"github.com/sedtender/tender_portal/entities"
	"github.com/sedtender/tender_portal/services"
	"go.uber.org/zap"
)

const createTeamPath = "/api/teams/create"

type apiTeamService struct {
	logger *zap.Logger
	client *Client
}

// NewAPITeamService creates a new TeamService that uses the tender API
func NewAPITeamService(logger *zap.Logger, client *Client) services.TeamService {
	return &apiTeamService{
		logger: logger,
		client: client,
	}
}

func (s *apiTeamService) CreateTeam(ctx context.Context, token string, team entities.Team) (*entities.Team, error) {
	if team.Plan == "" {
		team.Plan = entities.FreePlan
	}

	var created entities.Team
	err := s.client.Do(ctx, http.MethodPost, createTeamPath, team, token, &created)
	if err != nil {
		return nil, errors.Wrap(err, "could not create team")
	}
	if created.Name == "" {
		created.Name = team.Name
	}
	return &created, nil
}
